package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const (
	configsTable      = "schedule_configs"
	workingHoursTable = "working_hours"
)

// Repository репозиторий расписаний компаний: настройки бронирования и недельный шаблон
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает настройки бронирования компании
func (r *Repository) GetConfig(ctx context.Context, companyID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"company_id",
		"slot_interval_minutes",
		"max_advance_days",
		"resource_scoped",
		"created_at",
		"updated_at",
	).
		From(configsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.CompanyID,
		&cfg.SlotIntervalMinutes,
		&cfg.MaxAdvanceDays,
		&cfg.ResourceScoped,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %w", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// UpsertConfig создает или обновляет настройки бронирования компании
func (r *Repository) UpsertConfig(ctx context.Context, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(configsTable).
		Columns(
			"company_id",
			"slot_interval_minutes",
			"max_advance_days",
			"resource_scoped",
		).
		Values(
			cfg.CompanyID,
			cfg.SlotIntervalMinutes,
			cfg.MaxAdvanceDays,
			cfg.ResourceScoped,
		).
		Suffix(`ON CONFLICT (company_id) DO UPDATE SET
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			max_advance_days = EXCLUDED.max_advance_days,
			resource_scoped = EXCLUDED.resource_scoped,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - execute upsert: %w", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// GetWeeklySchedule получает недельный шаблон рабочего времени.
// Дни без строки в таблице остаются nil (правило не настроено).
func (r *Repository) GetWeeklySchedule(ctx context.Context, companyID int64) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"opens_at",
		"closes_at",
	).
		From(workingHoursTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedule domain.WeeklySchedule
	for rows.Next() {
		var rule domain.WorkingHoursRule
		if err := rows.Scan(&rule.Weekday, &rule.IsOpen, &rule.OpensAt, &rule.ClosesAt); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
		}
		if rule.Weekday < 0 || rule.Weekday >= domain.DaysPerWeek {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - weekday %d out of range", ErrScanRow, rule.Weekday)
		}
		schedule[rule.Weekday] = &rule
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	return &schedule, nil
}

// ReplaceWorkingHours заменяет недельный шаблон компании целиком.
// Вызывать внутри транзакции, чтобы читатели не увидели пустой шаблон.
func (r *Repository) ReplaceWorkingHours(ctx context.Context, companyID int64, rules []*domain.WorkingHoursRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(workingHoursTable).
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute delete: %w", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(workingHoursTable).
		Columns("company_id", "weekday", "is_open", "opens_at", "closes_at")

	for _, rule := range rules {
		insert = insert.Values(companyID, rule.Weekday, rule.IsOpen, rule.OpensAt, rule.ClosesAt)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
