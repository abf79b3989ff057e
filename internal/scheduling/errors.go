package scheduling

import "errors"

var (
	// ErrMalformedDate возвращается, когда дату не удалось разобрать
	ErrMalformedDate = errors.New("scheduling: malformed date")

	// ErrMalformedTime возвращается, когда время суток не удалось разобрать
	ErrMalformedTime = errors.New("scheduling: malformed time")

	// ErrPastDate возвращается для даты раньше сегодняшней
	ErrPastDate = errors.New("scheduling: date is in the past")

	// ErrTooFarFuture возвращается для даты дальше допустимого горизонта бронирования
	ErrTooFarFuture = errors.New("scheduling: date is too far in the future")

	// ErrInvalidInterval возвращается при неположительном шаге слотов
	ErrInvalidInterval = errors.New("scheduling: slot interval must be positive")

	// ErrInvalidHoliday возвращается при некорректной записи таблицы праздников
	ErrInvalidHoliday = errors.New("scheduling: invalid holiday")
)
