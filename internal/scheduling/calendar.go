package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Clock интерфейс для получения текущего времени (для тестирования)
type Clock interface {
	Now() time.Time
}

// TodayProvider источник текущей календарной даты
type TodayProvider interface {
	Today() types.CivilDate
}

// RealClock реальный провайдер времени для production
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// Calendar определяет "сегодня" в часовом поясе бизнеса
type Calendar struct {
	clock    Clock
	location *time.Location
}

// NewCalendar создаёт календарь; nil location означает локальный пояс процесса
func NewCalendar(clock Clock, location *time.Location) *Calendar {
	if clock == nil {
		clock = RealClock{}
	}
	if location == nil {
		location = time.Local
	}
	return &Calendar{clock: clock, location: location}
}

// Today возвращает текущую дату по локальному календарю бизнеса.
// Дата извлекается из полей (год, месяц, день), без арифметики над моментами времени.
func (c *Calendar) Today() types.CivilDate {
	return types.CivilDateOf(c.clock.Now().In(c.location))
}

// Location возвращает часовой пояс календаря
func (c *Calendar) Location() *time.Location {
	return c.location
}
