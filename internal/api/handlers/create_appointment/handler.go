package create_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные записи"
	msgPastDate           = "нельзя записаться на прошедшую дату"
	msgTooFarDate         = "дата за пределами горизонта бронирования"
	msgCompanyClosed      = "компания не работает в выбранный день"
	msgInvalidTimeSlot    = "выбранное время не совпадает со слотом"
	msgSlotNotAvailable   = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	codec   DateCodec
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, codec DateCodec, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		codec:   codec,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/appointments - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(companyID, h.codec)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/appointments - Invalid date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/appointments - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /companies/{id}/appointments - Past date: company_id=%d, date=%s", companyID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /companies/{id}/appointments - Date too far: company_id=%d, date=%s", companyID, req.Date)
			handlers.RespondBadRequest(w, msgTooFarDate)

		case errors.Is(err, createAppointment.ErrCompanyClosed):
			h.logger.Warn("POST /companies/{id}/appointments - Company closed: company_id=%d, date=%s", companyID, req.Date)
			handlers.RespondBadRequest(w, msgCompanyClosed)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /companies/{id}/appointments - Invalid slot: company_id=%d, time=%s", companyID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /companies/{id}/appointments - Slot taken: company_id=%d, date=%s, time=%s",
				companyID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /companies/{id}/appointments - Failed to create appointment: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/appointments - Appointment created: company_id=%d, appointment_id=%s",
		companyID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.codec))
}
