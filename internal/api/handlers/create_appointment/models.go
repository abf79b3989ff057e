package create_appointment

import (
	"fmt"
	"time"

	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date         string  `json:"date"`      // "2025-10-15"
	StartTime    string  `json:"startTime"` // "10:00"
	ResourceID   *string `json:"resourceId,omitempty"`
	CustomerName string  `json:"customerName"`
	Notes        *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(companyID int64, codec DateCodec) (*createAppointment.Request, error) {
	date, err := codec.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := codec.ParseTime(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	return &createAppointment.Request{
		CompanyID:    companyID,
		Date:         date,
		StartTime:    startTime,
		ResourceID:   r.ResourceID,
		CustomerName: r.CustomerName,
		Notes:        r.Notes,
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
func FromUseCaseResponse(resp *createAppointment.Response, codec DateCodec) *AppointmentResponse {
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
