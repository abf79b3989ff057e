package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ResourceID != nil && (*req.ResourceID == "" || len(*req.ResourceID) > domain.MaxResourceIDLength) {
		return fmt.Errorf("%w: resourceId must be 1..%d characters", ErrInvalidInput, domain.MaxResourceIDLength)
	}

	return nil
}

// validateDate проверяет дату относительно сегодняшнего дня и горизонта компании
func validateDate(date, today types.CivilDate, maxAdvanceDays int) error {
	err := scheduling.ValidateDate(date, today, maxAdvanceDays)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scheduling.ErrPastDate):
		return fmt.Errorf("%w: %v", ErrPastDate, err)
	case errors.Is(err, scheduling.ErrTooFarFuture):
		return fmt.Errorf("%w: %v", ErrDateTooFarInFuture, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
