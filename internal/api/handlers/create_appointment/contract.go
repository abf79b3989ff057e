package create_appointment

import (
	"context"

	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
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
