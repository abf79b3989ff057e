package reschedule_appointment

import (
	"fmt"
	"time"

	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	ResourceID *string `json:"resourceId,omitempty"` // не передан - ресурс сохраняется
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(companyID int64, appointmentID string, codec DateCodec) (*rescheduleAppointment.Request, error) {
	date, err := codec.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := codec.ParseTime(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	return &rescheduleAppointment.Request{
		CompanyID:     companyID,
		AppointmentID: appointmentID,
		Date:          date,
		StartTime:     startTime,
		ResourceID:    r.ResourceID,
	}, nil
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           string    `json:"id"`
	CompanyID    int64     `json:"companyId"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	ResourceID   *string   `json:"resourceId,omitempty"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response, codec DateCodec) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		CompanyID:    resp.CompanyID,
		Date:         codec.FormatDate(resp.Date),
		StartTime:    resp.StartTime.String(),
		ResourceID:   resp.ResourceID,
		Status:       string(resp.Status),
		CustomerName: resp.CustomerName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt,
		UpdatedAt:    resp.UpdatedAt,
	}
}
