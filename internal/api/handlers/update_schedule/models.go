package update_schedule

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	SlotIntervalMinutes *int           `json:"slotIntervalMinutes,omitempty"`
	MaxAdvanceDays      *int           `json:"maxAdvanceDays,omitempty"`
	ResourceScoped      *bool          `json:"resourceScoped,omitempty"`
	WorkingHours        []WorkingHours `json:"workingHours,omitempty"`
}

// WorkingHours правило рабочего времени одного дня недели
type WorkingHours struct {
	Weekday  int    `json:"weekday"`
	IsOpen   bool   `json:"isOpen"`
	OpensAt  string `json:"opensAt,omitempty"`
	ClosesAt string `json:"closesAt,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest() *models.UpdateScheduleRequest {
	req := &models.UpdateScheduleRequest{
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		MaxAdvanceDays:      r.MaxAdvanceDays,
		ResourceScoped:      r.ResourceScoped,
	}

	if r.WorkingHours != nil {
		req.WorkingHours = make([]models.WorkingHours, len(r.WorkingHours))
		for i, wh := range r.WorkingHours {
			req.WorkingHours[i] = models.WorkingHours(wh)
		}
	}

	return req
}
