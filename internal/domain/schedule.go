package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	// ErrInvalidWorkingHours возвращается при некорректном правиле рабочего времени
	ErrInvalidWorkingHours = errors.New("invalid working hours rule")

	// ErrInvalidScheduleConfig возвращается при некорректной конфигурации расписания
	ErrInvalidScheduleConfig = errors.New("invalid schedule config")
)

// DaysPerWeek количество правил рабочего времени на компанию
const DaysPerWeek = 7

// WorkingHoursRule правило рабочего времени для одного дня недели (0 = воскресенье ... 6 = суббота)
type WorkingHoursRule struct {
	Weekday  int
	IsOpen   bool
	OpensAt  types.TimeString
	ClosesAt types.TimeString
}

// Validate проверяет инвариант: если день рабочий, то OpensAt < ClosesAt
func (r *WorkingHoursRule) Validate() error {
	if r.Weekday < 0 || r.Weekday >= DaysPerWeek {
		return fmt.Errorf("%w: weekday %d out of range", ErrInvalidWorkingHours, r.Weekday)
	}
	if !r.IsOpen {
		return nil
	}
	if err := r.OpensAt.Validate(); err != nil {
		return fmt.Errorf("%w: opensAt: %v", ErrInvalidWorkingHours, err)
	}
	if err := r.ClosesAt.Validate(); err != nil {
		return fmt.Errorf("%w: closesAt: %v", ErrInvalidWorkingHours, err)
	}
	if !r.OpensAt.IsBefore(r.ClosesAt) {
		return fmt.Errorf("%w: opensAt %s must be before closesAt %s", ErrInvalidWorkingHours, r.OpensAt, r.ClosesAt)
	}
	return nil
}

// WeeklySchedule недельный шаблон рабочего времени, индекс = день недели.
// nil означает, что правило для дня не настроено.
type WeeklySchedule [DaysPerWeek]*WorkingHoursRule

// ForWeekday возвращает правило для дня недели или nil
func (s *WeeklySchedule) ForWeekday(weekday int) *WorkingHoursRule {
	if weekday < 0 || weekday >= DaysPerWeek {
		return nil
	}
	return s[weekday]
}

// ScheduleConfig настройки бронирования компании
type ScheduleConfig struct {
	CompanyID           int64
	SlotIntervalMinutes int
	MaxAdvanceDays      int
	ResourceScoped      bool // конфликт учитывается только в рамках одного ресурса
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultScheduleConfig возвращает конфигурацию по умолчанию
func DefaultScheduleConfig(companyID int64) *ScheduleConfig {
	return &ScheduleConfig{
		CompanyID:           companyID,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
		MaxAdvanceDays:      DefaultMaxAdvanceDays,
		ResourceScoped:      false,
	}
}

// Validate проверяет границы параметров
func (c *ScheduleConfig) Validate() error {
	if c.SlotIntervalMinutes < MinSlotIntervalMinutes || c.SlotIntervalMinutes > MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: slotIntervalMinutes must be between %d and %d",
			ErrInvalidScheduleConfig, MinSlotIntervalMinutes, MaxSlotIntervalMinutes)
	}
	if c.MaxAdvanceDays < MinAdvanceDays || c.MaxAdvanceDays > MaxAdvanceDays {
		return fmt.Errorf("%w: maxAdvanceDays must be between %d and %d",
			ErrInvalidScheduleConfig, MinAdvanceDays, MaxAdvanceDays)
	}
	return nil
}

// TimeSlot слот на конкретную дату с признаком доступности
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
}
