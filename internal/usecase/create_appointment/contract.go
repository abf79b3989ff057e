package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListActiveByDate(ctx context.Context, companyID int64, date types.CivilDate) ([]*domain.Appointment, error)
}

// ScheduleProvider источник расписания компании
type ScheduleProvider interface {
	GetConfig(ctx context.Context, companyID int64) (*domain.ScheduleConfig, error)
	GetWeeklySchedule(ctx context.Context, companyID int64) (*domain.WeeklySchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Calendar источник текущей даты бизнеса
type Calendar interface {
	Today() types.CivilDate
}

// Metrics учёт исходов операций планирования
type Metrics interface {
	RecordSchedulingOutcome(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
