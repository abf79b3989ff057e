package scheduling

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Candidate предлагаемая запись, проверяемая на конфликт
type Candidate struct {
	Date       types.CivilDate
	StartTime  types.TimeString
	ResourceID *string
	ExcludeID  string // ID записи, которую игнорировать (при переносе)
}

// ConflictDetector определяет, занят ли слот существующей записью.
// Конфликт - это точное совпадение даты и времени начала, длительность слотов не учитывается.
type ConflictDetector struct {
	resourceScoped bool
}

// NewConflictDetector создаёт детектор.
// resourceScoped = true: записи на разные ресурсы не конфликтуют.
func NewConflictDetector(resourceScoped bool) *ConflictDetector {
	return &ConflictDetector{resourceScoped: resourceScoped}
}

// HasConflict возвращает true, если хотя бы одна активная запись занимает слот кандидата
func (d *ConflictDetector) HasConflict(candidate Candidate, existing []*domain.Appointment) bool {
	for _, a := range existing {
		if d.conflictsWith(candidate, a) {
			return true
		}
	}
	return false
}

// Conflicts возвращает все записи, занимающие слот кандидата
func (d *ConflictDetector) Conflicts(candidate Candidate, existing []*domain.Appointment) []*domain.Appointment {
	var result []*domain.Appointment
	for _, a := range existing {
		if d.conflictsWith(candidate, a) {
			result = append(result, a)
		}
	}
	return result
}

// BookedTimes возвращает времена начала, занятые активными записями на дату.
// Используется теми же правилами, что и проверка конфликта, поэтому занятый слот
// никогда не показывается доступным.
func (d *ConflictDetector) BookedTimes(date types.CivilDate, resourceID *string, existing []*domain.Appointment) []types.TimeString {
	booked := make([]types.TimeString, 0, len(existing))
	for _, a := range existing {
		if d.occupies(a, date, resourceID) {
			booked = append(booked, a.StartTime)
		}
	}
	return booked
}

func (d *ConflictDetector) conflictsWith(candidate Candidate, a *domain.Appointment) bool {
	if a == nil {
		return false
	}
	if candidate.ExcludeID != "" && a.ID == candidate.ExcludeID {
		return false
	}
	return d.occupies(a, candidate.Date, candidate.ResourceID) && a.StartTime == candidate.StartTime
}

func (d *ConflictDetector) occupies(a *domain.Appointment, date types.CivilDate, resourceID *string) bool {
	if a == nil || !a.IsActive() {
		return false
	}
	if a.Date != date {
		return false
	}
	if d.resourceScoped && !a.SameResource(resourceID) {
		return false
	}
	return true
}
