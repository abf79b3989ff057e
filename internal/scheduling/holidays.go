package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Holiday праздник с фиксированной датой, повторяющийся каждый год
type Holiday struct {
	Month time.Month
	Day   int
	Name  string
}

type monthDay struct {
	month time.Month
	day   int
}

// DefaultHolidays таблица государственных праздников РФ с фиксированной датой
func DefaultHolidays() []Holiday {
	return []Holiday{
		{Month: time.January, Day: 1, Name: "Новый год"},
		{Month: time.January, Day: 7, Name: "Рождество Христово"},
		{Month: time.February, Day: 23, Name: "День защитника Отечества"},
		{Month: time.March, Day: 8, Name: "Международный женский день"},
		{Month: time.May, Day: 1, Name: "Праздник Весны и Труда"},
		{Month: time.May, Day: 9, Name: "День Победы"},
		{Month: time.June, Day: 12, Name: "День России"},
		{Month: time.November, Day: 4, Name: "День народного единства"},
	}
}

// HolidayClassifier определяет, приходится ли дата на праздник.
// Учитываются только месяц и день, год не важен.
type HolidayClassifier struct {
	names map[monthDay]string
}

// NewHolidayClassifier создаёт классификатор по таблице праздников
func NewHolidayClassifier(holidays []Holiday) (*HolidayClassifier, error) {
	names := make(map[monthDay]string, len(holidays))
	for _, h := range holidays {
		if h.Month < time.January || h.Month > time.December {
			return nil, fmt.Errorf("%w: month %d", ErrInvalidHoliday, h.Month)
		}
		// 2000 - високосный, поэтому 29 февраля допустимо
		if _, err := types.NewCivilDate(2000, int(h.Month), h.Day); err != nil {
			return nil, fmt.Errorf("%w: %02d-%02d", ErrInvalidHoliday, int(h.Month), h.Day)
		}
		if h.Name == "" {
			return nil, fmt.Errorf("%w: empty name for %02d-%02d", ErrInvalidHoliday, int(h.Month), h.Day)
		}
		names[monthDay{month: h.Month, day: h.Day}] = h.Name
	}
	return &HolidayClassifier{names: names}, nil
}

// NewDefaultHolidayClassifier создаёт классификатор со встроенной таблицей
func NewDefaultHolidayClassifier() *HolidayClassifier {
	c, err := NewHolidayClassifier(DefaultHolidays())
	if err != nil {
		panic(err)
	}
	return c
}

// IsHoliday проверяет, является ли дата праздником
func (c *HolidayClassifier) IsHoliday(d types.CivilDate) bool {
	_, ok := c.HolidayName(d)
	return ok
}

// HolidayName возвращает название праздника на дату
func (c *HolidayClassifier) HolidayName(d types.CivilDate) (string, bool) {
	if d.IsZero() {
		return "", false
	}
	name, ok := c.names[monthDay{month: d.Month(), day: d.Day()}]
	return name, ok
}

// Holidays возвращает таблицу праздников в календарном порядке
func (c *HolidayClassifier) Holidays() []Holiday {
	result := make([]Holiday, 0, len(c.names))
	for md, name := range c.names {
		result = append(result, Holiday{Month: md.month, Day: md.day, Name: name})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Month != result[j].Month {
			return result[i].Month < result[j].Month
		}
		return result[i].Day < result[j].Day
	})
	return result
}
