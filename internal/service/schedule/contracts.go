package schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetConfig(ctx context.Context, companyID int64) (*domain.ScheduleConfig, error)
	UpsertConfig(ctx context.Context, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	GetWeeklySchedule(ctx context.Context, companyID int64) (*domain.WeeklySchedule, error)
	ReplaceWorkingHours(ctx context.Context, companyID int64, rules []*domain.WorkingHoursRule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
