package cancel_appointment

import (
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса; пустая причина не сохраняется
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	req := &models.CancelAppointmentRequest{}
	if r.CancellationReason != nil {
		if reason := strings.TrimSpace(*r.CancellationReason); reason != "" {
			req.CancellationReason = &reason
		}
	}
	return req
}
