package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListActiveByDate получает неотменённые записи компании на дату
	ListActiveByDate(ctx context.Context, companyID int64, date types.CivilDate) ([]*domain.Appointment, error)
}

// ScheduleProvider источник расписания компании (с подставленными значениями по умолчанию)
type ScheduleProvider interface {
	GetConfig(ctx context.Context, companyID int64) (*domain.ScheduleConfig, error)
	GetWeeklySchedule(ctx context.Context, companyID int64) (*domain.WeeklySchedule, error)
}

// Calendar источник текущей даты бизнеса
type Calendar interface {
	Today() types.CivilDate
}

// HolidayClassifier определяет праздники
type HolidayClassifier interface {
	HolidayName(date types.CivilDate) (string, bool)
}

// Metrics учёт выданных слотов
type Metrics interface {
	RecordSlotsServed(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
