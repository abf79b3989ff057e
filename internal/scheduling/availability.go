package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// DayAvailability слоты одной даты с признаком доступности
type DayAvailability struct {
	Date   types.CivilDate
	IsOpen bool
	Slots  []domain.TimeSlot
}

// Available возвращает только свободные слоты в порядке возрастания
func (d *DayAvailability) Available() []types.TimeString {
	result := make([]types.TimeString, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s.Available {
			result = append(result, s.StartTime)
		}
	}
	return result
}

// Contains проверяет, что время является одним из сгенерированных слотов дня
func (d *DayAvailability) Contains(t types.TimeString) bool {
	for _, s := range d.Slots {
		if s.StartTime == t {
			return true
		}
	}
	return false
}

// AvailabilityResolver вычисляет свободные слоты на дату по недельному расписанию
type AvailabilityResolver struct {
	intervalMinutes int
}

// NewAvailabilityResolver создаёт резолвер с шагом слотов intervalMinutes
func NewAvailabilityResolver(intervalMinutes int) (*AvailabilityResolver, error) {
	if intervalMinutes <= 0 {
		return nil, ErrInvalidInterval
	}
	return &AvailabilityResolver{intervalMinutes: intervalMinutes}, nil
}

// Resolve возвращает свободные слоты даты: сгенерированные минус занятые.
// Выходной день или отсутствие правила дают пустой список.
func (r *AvailabilityResolver) Resolve(date types.CivilDate, rules *domain.WeeklySchedule, booked []types.TimeString) ([]types.TimeString, error) {
	day, err := r.Day(date, rules, booked)
	if err != nil {
		return nil, err
	}
	return day.Available(), nil
}

// Day возвращает все слоты даты с отметкой доступности
func (r *AvailabilityResolver) Day(date types.CivilDate, rules *domain.WeeklySchedule, booked []types.TimeString) (*DayAvailability, error) {
	day := &DayAvailability{
		Date:  date,
		Slots: []domain.TimeSlot{},
	}

	// 1. Правило для дня недели (0 = воскресенье)
	var rule *domain.WorkingHoursRule
	if rules != nil {
		rule = rules.ForWeekday(date.Weekday())
	}
	if rule == nil || !rule.IsOpen {
		return day, nil
	}

	// 2. Генерируем слоты рабочего дня
	starts, err := GenerateSlots(rule.OpensAt, rule.ClosesAt, r.intervalMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate slots for %s: %w", date, err)
	}
	day.IsOpen = len(starts) > 0

	// 3. Отмечаем занятые (лишние значения в booked игнорируются)
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	day.Slots = make([]domain.TimeSlot, 0, len(starts))
	for _, start := range starts {
		_, isTaken := taken[start]
		day.Slots = append(day.Slots, domain.TimeSlot{
			StartTime: start,
			Available: !isTaken,
		})
	}

	return day, nil
}
