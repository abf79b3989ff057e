package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модели

// WorkingHours правило рабочего времени одного дня недели
type WorkingHours struct {
	Weekday  int    `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	IsOpen   bool   `json:"isOpen"`
	OpensAt  string `json:"opensAt,omitempty"`  // "09:00"
	ClosesAt string `json:"closesAt,omitempty"` // "18:00"
}

// UpdateScheduleRequest запрос на обновление расписания
// Все поля опциональны - обновляются только переданные значения.
// WorkingHours != nil заменяет недельный шаблон целиком.
type UpdateScheduleRequest struct {
	SlotIntervalMinutes *int           `json:"slotIntervalMinutes,omitempty"`
	MaxAdvanceDays      *int           `json:"maxAdvanceDays,omitempty"`
	ResourceScoped      *bool          `json:"resourceScoped,omitempty"`
	WorkingHours        []WorkingHours `json:"workingHours,omitempty"`
}

// ApplyToConfig применяет обновления к существующей конфигурации
func (r *UpdateScheduleRequest) ApplyToConfig(cfg *domain.ScheduleConfig) {
	if r.SlotIntervalMinutes != nil {
		cfg.SlotIntervalMinutes = *r.SlotIntervalMinutes
	}
	if r.MaxAdvanceDays != nil {
		cfg.MaxAdvanceDays = *r.MaxAdvanceDays
	}
	if r.ResourceScoped != nil {
		cfg.ResourceScoped = *r.ResourceScoped
	}
}

// ToDomainRules конвертирует недельный шаблон с валидацией каждого правила
func (r *UpdateScheduleRequest) ToDomainRules() ([]*domain.WorkingHoursRule, error) {
	seen := make(map[int]bool, len(r.WorkingHours))
	rules := make([]*domain.WorkingHoursRule, 0, len(r.WorkingHours))

	for _, wh := range r.WorkingHours {
		if seen[wh.Weekday] {
			return nil, fmt.Errorf("%w: duplicate weekday %d", domain.ErrInvalidWorkingHours, wh.Weekday)
		}
		seen[wh.Weekday] = true

		rule := &domain.WorkingHoursRule{
			Weekday:  wh.Weekday,
			IsOpen:   wh.IsOpen,
			OpensAt:  types.TimeString(wh.OpensAt),
			ClosesAt: types.TimeString(wh.ClosesAt),
		}
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// Response модели

// ScheduleResponse расписание компании
type ScheduleResponse struct {
	CompanyID           int64          `json:"companyId"`
	SlotIntervalMinutes int            `json:"slotIntervalMinutes"`
	MaxAdvanceDays      int            `json:"maxAdvanceDays"`
	ResourceScoped      bool           `json:"resourceScoped"`
	IsDefault           bool           `json:"isDefault"` // настройки не сохранялись, действуют значения по умолчанию
	WorkingHours        []WorkingHours `json:"workingHours"`
	UpdatedAt           *time.Time     `json:"updatedAt,omitempty"`
}

// FromDomain собирает ответ из настроек и недельного шаблона.
// Ненастроенный день показывается как выходной.
func FromDomain(cfg *domain.ScheduleConfig, week *domain.WeeklySchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		CompanyID:           cfg.CompanyID,
		SlotIntervalMinutes: cfg.SlotIntervalMinutes,
		MaxAdvanceDays:      cfg.MaxAdvanceDays,
		ResourceScoped:      cfg.ResourceScoped,
		IsDefault:           cfg.UpdatedAt.IsZero(),
		WorkingHours:        make([]WorkingHours, domain.DaysPerWeek),
	}

	if !cfg.UpdatedAt.IsZero() {
		updatedAt := cfg.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	for wd := 0; wd < domain.DaysPerWeek; wd++ {
		resp.WorkingHours[wd] = WorkingHours{Weekday: wd}
		if week == nil {
			continue
		}
		if rule := week.ForWeekday(wd); rule != nil {
			resp.WorkingHours[wd].IsOpen = rule.IsOpen
			if rule.IsOpen {
				resp.WorkingHours[wd].OpensAt = rule.OpensAt.String()
				resp.WorkingHours[wd].ClosesAt = rule.ClosesAt.String()
			}
		}
	}

	return resp
}
