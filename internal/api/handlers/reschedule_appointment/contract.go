package reschedule_appointment

import (
	"context"

	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type RescheduleAppointmentUseCase interface {
	Execute(ctx context.Context, req *rescheduleAppointment.Request) (*rescheduleAppointment.Response, error)
}

// DateCodec разбор и форматирование дат и времени
type DateCodec interface {
	ParseDate(s string) (types.CivilDate, error)
	ParseTime(s string) (types.TimeString, error)
	FormatDate(d types.CivilDate) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
