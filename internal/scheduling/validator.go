package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// DateValidator проверяет, что на дату можно создать запись
type DateValidator struct {
	today          TodayProvider
	maxAdvanceDays int
}

// NewDateValidator создаёт валидатор; maxAdvanceDays <= 0 означает значение по умолчанию (365)
func NewDateValidator(today TodayProvider, maxAdvanceDays int) *DateValidator {
	if maxAdvanceDays <= 0 {
		maxAdvanceDays = domain.DefaultMaxAdvanceDays
	}
	return &DateValidator{today: today, maxAdvanceDays: maxAdvanceDays}
}

// Validate проверяет дату относительно текущего дня.
// "Сегодня" читается один раз за вызов.
func (v *DateValidator) Validate(d types.CivilDate) error {
	return ValidateDate(d, v.today.Today(), v.maxAdvanceDays)
}

// ValidateString разбирает строку YYYY-MM-DD и проверяет дату
func (v *DateValidator) ValidateString(s string) (types.CivilDate, error) {
	d, err := types.ParseCivilDate(s)
	if err != nil {
		return types.CivilDate{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}
	if err := v.Validate(d); err != nil {
		return types.CivilDate{}, err
	}
	return d, nil
}

// ValidateDate чистая функция проверки даты:
//   - дата раньше today - ErrPastDate (сегодня допустимо)
//   - дата позже today + maxAdvanceDays - ErrTooFarFuture
func ValidateDate(d, today types.CivilDate, maxAdvanceDays int) error {
	if d.IsZero() {
		return ErrMalformedDate
	}

	if d.Before(today) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDate, d, today)
	}

	limit := today.AddDays(maxAdvanceDays)
	if d.After(limit) {
		return fmt.Errorf("%w: can only book %d days in advance (until %s)", ErrTooFarFuture, maxAdvanceDays, limit)
	}

	return nil
}
