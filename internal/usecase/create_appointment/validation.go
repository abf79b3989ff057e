package create_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
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

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if req.ResourceID != nil && (*req.ResourceID == "" || len(*req.ResourceID) > domain.MaxResourceIDLength) {
		return fmt.Errorf("%w: resourceId must be 1..%d characters", ErrInvalidInput, domain.MaxResourceIDLength)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
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

// outcome сопоставляет ошибку с меткой исхода для метрик
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrSlotNotAvailable):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrPastDate), errors.Is(err, ErrDateTooFarInFuture):
		return metrics.OutcomeInvalidDate
	case errors.Is(err, ErrCompanyClosed):
		return metrics.OutcomeClosed
	case errors.Is(err, ErrInvalidTimeSlot):
		return metrics.OutcomeInvalidSlot
	default:
		return metrics.OutcomeError
	}
}
