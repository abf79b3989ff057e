package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные переноса"
	msgNotFound           = "запись не найдена"
	msgCannotReschedule   = "запись в текущем статусе нельзя перенести"
	msgPastDate           = "нельзя перенести запись на прошедшую дату"
	msgTooFarDate         = "дата за пределами горизонта бронирования"
	msgCompanyClosed      = "компания не работает в выбранный день"
	msgInvalidTimeSlot    = "выбранное время не совпадает со слотом"
	msgSlotNotAvailable   = "выбранный слот уже занят"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	codec   DateCodec
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, codec DateCodec, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		codec:   codec,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/companies/{companyId}/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /companies/{id}/appointments/{id}/reschedule - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	appointmentID := vars["appointmentId"]

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /companies/{id}/appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(companyID, appointmentID, h.codec)
	if err != nil {
		h.logger.Warn("PATCH /companies/{id}/appointments/{id}/reschedule - Invalid date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /companies/{id}/appointments/{id}/reschedule - Not found: company_id=%d, appointment_id=%s",
				companyID, appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrCannotReschedule):
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleAppointment.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, rescheduleAppointment.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgTooFarDate)

		case errors.Is(err, rescheduleAppointment.ErrCompanyClosed):
			handlers.RespondBadRequest(w, msgCompanyClosed)

		case errors.Is(err, rescheduleAppointment.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /companies/{id}/appointments/{id}/reschedule - Slot taken: company_id=%d, date=%s, time=%s",
				companyID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("PATCH /companies/{id}/appointments/{id}/reschedule - Failed to reschedule: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /companies/{id}/appointments/{id}/reschedule - Appointment rescheduled: appointment_id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.codec))
}
