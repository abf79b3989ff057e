package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CompanyID    int64
	Date         types.CivilDate
	StartTime    types.TimeString
	ResourceID   *string
	CustomerName string
	Notes        *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID           string
	CompanyID    int64
	Date         types.CivilDate
	StartTime    types.TimeString
	ResourceID   *string
	Status       domain.AppointmentStatus
	CustomerName string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FromDomain конвертирует доменную модель в Response
func FromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:           a.ID,
		CompanyID:    a.CompanyID,
		Date:         a.Date,
		StartTime:    a.StartTime,
		ResourceID:   a.ResourceID,
		Status:       a.Status,
		CustomerName: a.CustomerName,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
