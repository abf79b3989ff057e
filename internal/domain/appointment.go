package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ErrInvalidStatus возвращается при неизвестном статусе записи
var ErrInvalidStatus = errors.New("invalid appointment status")

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus конвертирует строку в AppointmentStatus с валидацией
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Appointment represents a car wash appointment in a single time slot
type Appointment struct {
	ID           string
	CompanyID    int64
	Date         types.CivilDate
	StartTime    types.TimeString
	ResourceID   *string // бокс / команда; nil = без привязки к ресурсу
	Status       AppointmentStatus
	CustomerName string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment date/time can be changed
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость перехода статуса
// pending -> confirmed | completed | cancelled
// confirmed -> completed | cancelled
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// SameResource сравнивает ресурс записи с указанным (nil совпадает только с nil)
func (a *Appointment) SameResource(resourceID *string) bool {
	if a.ResourceID == nil || resourceID == nil {
		return a.ResourceID == nil && resourceID == nil
	}
	return *a.ResourceID == *resourceID
}

// AppointmentsFilter фильтр для получения записей компании
type AppointmentsFilter struct {
	CompanyID        int64              // Обязательный параметр
	StartDate        *types.CivilDate   // Начало периода (включительно)
	EndDate          *types.CivilDate   // Конец периода (включительно)
	Status           *AppointmentStatus // Фильтр по статусу
	ResourceID       *string            // Фильтр по ресурсу
	IncludeCancelled bool               // Включать ли отменённые записи
}

// IsSingleDate returns true if the filter targets exactly one date
func (f *AppointmentsFilter) IsSingleDate() bool {
	return f.StartDate != nil && f.EndDate != nil && *f.StartDate == *f.EndDate
}
