package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// Defaults значения настроек для компаний без сохранённой конфигурации
type Defaults struct {
	SlotIntervalMinutes int
	MaxAdvanceDays      int
	ResourceScoped      bool
}

// Service сервис расписаний компаний
type Service struct {
	repo      ScheduleRepository
	txManager TransactionManager
	defaults  Defaults
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(repo ScheduleRepository, txManager TransactionManager, defaults Defaults, logger Logger) *Service {
	if defaults.SlotIntervalMinutes <= 0 {
		defaults.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if defaults.MaxAdvanceDays <= 0 {
		defaults.MaxAdvanceDays = domain.DefaultMaxAdvanceDays
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
		defaults:  defaults,
		logger:    logger,
	}
}

// GetConfig возвращает настройки компании или значения по умолчанию, если они не сохранялись
func (s *Service) GetConfig(ctx context.Context, companyID int64) (*domain.ScheduleConfig, error) {
	cfg, err := s.repo.GetConfig(ctx, companyID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			return s.defaultConfig(companyID), nil
		}
		return nil, fmt.Errorf("%w: GetConfig - repository error: %w", ErrInternal, err)
	}
	return cfg, nil
}

// GetWeeklySchedule возвращает недельный шаблон компании
func (s *Service) GetWeeklySchedule(ctx context.Context, companyID int64) (*domain.WeeklySchedule, error) {
	week, err := s.repo.GetWeeklySchedule(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %w", ErrInternal, err)
	}
	return week, nil
}

// Get получает расписание компании
func (s *Service) Get(ctx context.Context, companyID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for company=%d", companyID)

	if companyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	var (
		cfg  *domain.ScheduleConfig
		week *domain.WeeklySchedule
	)

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if cfg, err = s.GetConfig(txCtx, companyID); err != nil {
			return err
		}
		week, err = s.GetWeeklySchedule(txCtx, companyID)
		return err
	})
	if err != nil {
		s.logger.Error("Get: failed to fetch schedule for company=%d: %v", companyID, err)
		return nil, err
	}

	return models.FromDomain(cfg, week), nil
}

// Update обновляет настройки и, если передан, недельный шаблон компании
func (s *Service) Update(ctx context.Context, companyID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for company=%d", companyID)

	if companyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	var rules []*domain.WorkingHoursRule
	if req.WorkingHours != nil {
		var err error
		rules, err = req.ToDomainRules()
		if err != nil {
			s.logger.Warn("Update: invalid working hours for company=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	var (
		cfg  *domain.ScheduleConfig
		week *domain.WeeklySchedule
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Текущие настройки (или значения по умолчанию)
		current, err := s.GetConfig(txCtx, companyID)
		if err != nil {
			return err
		}

		// 2. Применяем изменения и проверяем границы
		req.ApplyToConfig(current)
		if err := current.Validate(); err != nil {
			s.logger.Warn("Update: invalid config for company=%d: %v", companyID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 3. Сохраняем
		if cfg, err = s.repo.UpsertConfig(txCtx, current); err != nil {
			return fmt.Errorf("%w: Update - upsert config: %w", ErrInternal, err)
		}

		if req.WorkingHours != nil {
			if err := s.repo.ReplaceWorkingHours(txCtx, companyID, rules); err != nil {
				return fmt.Errorf("%w: Update - replace working hours: %w", ErrInternal, err)
			}
		}

		week, err = s.GetWeeklySchedule(txCtx, companyID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			s.logger.Error("Update: failed to update schedule for company=%d: %v", companyID, err)
		}
		return nil, err
	}

	s.logger.Info("Update: schedule for company=%d saved", companyID)
	return models.FromDomain(cfg, week), nil
}

func (s *Service) defaultConfig(companyID int64) *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		CompanyID:           companyID,
		SlotIntervalMinutes: s.defaults.SlotIntervalMinutes,
		MaxAdvanceDays:      s.defaults.MaxAdvanceDays,
		ResourceScoped:      s.defaults.ResourceScoped,
	}
}
