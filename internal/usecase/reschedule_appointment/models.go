package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	CompanyID     int64
	AppointmentID string
	Date          types.CivilDate
	StartTime     types.TimeString
	ResourceID    *string // nil - ресурс не меняется
}

// Response модель ответа с перенесённой записью
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
