package scheduling

import (
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// GenerateSlots генерирует начала слотов на один рабочий день.
// Первый слот начинается в opensAt, каждый следующий через intervalMinutes.
// Слот, начинающийся в closesAt или позже, не включается.
// Если opensAt >= closesAt, возвращается пустой список (день не работает), а не ошибка.
func GenerateSlots(opensAt, closesAt types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	if intervalMinutes <= 0 {
		return nil, ErrInvalidInterval
	}

	open := opensAt.Minutes()
	if open < 0 {
		return nil, ErrMalformedTime
	}
	closing := closesAt.Minutes()
	if closing < 0 {
		return nil, ErrMalformedTime
	}

	if open >= closing {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0, (closing-open+intervalMinutes-1)/intervalMinutes)
	for m := open; m < closing; m += intervalMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
