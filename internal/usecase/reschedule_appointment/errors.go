package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена в компании
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrCannotReschedule возвращается для завершённых и отменённых записей
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrPastDate возвращается для даты раньше сегодняшней
	ErrPastDate = errors.New("reschedule_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("reschedule_appointment: date is too far in the future")

	// ErrCompanyClosed возвращается, когда компания не работает в этот день
	ErrCompanyClosed = errors.New("reschedule_appointment: company is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом дня
	ErrInvalidTimeSlot = errors.New("reschedule_appointment: start time is not a valid slot")

	// ErrSlotNotAvailable возвращается, когда слот занят другой записью
	ErrSlotNotAvailable = errors.New("reschedule_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
