package get_available_slots

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CompanyID  int64           // ID компании
	Date       types.CivilDate // Дата без времени и часового пояса
	ResourceID *string         // Бокс / команда (учитывается, если компания бронирует по ресурсам)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date            types.CivilDate
	CompanyID       int64
	ResourceID      *string
	IsOpen          bool    // false - выходной или правило не настроено
	Holiday         *string // Название праздника, если дата праздничная (на доступность не влияет)
	IntervalMinutes int
	AvailableSlots  []types.TimeString // Только свободные слоты, по возрастанию
	Slots           []domain.TimeSlot  // Все слоты дня с признаком доступности
}
