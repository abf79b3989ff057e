package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	CompanyID       int64    `json:"companyId"`
	ResourceID      *string  `json:"resourceId,omitempty"`
	IsOpen          bool     `json:"isOpen"`
	Holiday         *string  `json:"holiday,omitempty"`
	IntervalMinutes int      `json:"intervalMinutes"`
	AvailableSlots  []string `json:"availableSlots"`
	Slots           []Slot   `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response, codec DateCodec) *AvailableSlotsResponse {
	available := make([]string, len(resp.AvailableSlots))
	for i, t := range resp.AvailableSlots {
		available[i] = t.String()
	}

	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            codec.FormatDate(resp.Date),
		CompanyID:       resp.CompanyID,
		ResourceID:      resp.ResourceID,
		IsOpen:          resp.IsOpen,
		Holiday:         resp.Holiday,
		IntervalMinutes: resp.IntervalMinutes,
		AvailableSlots:  available,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(companyID int64, date types.CivilDate, resourceID string) *getAvailableSlots.Request {
	req := &getAvailableSlots.Request{
		CompanyID: companyID,
		Date:      date,
	}
	if resourceID != "" {
		req.ResourceID = &resourceID
	}
	return req
}
