package reschedule_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

type fakeUseCase struct {
	got *rescheduleAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *rescheduleAppointment.Request) (*rescheduleAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &rescheduleAppointment.Response{ID: req.AppointmentID, Date: req.Date, StartTime: req.StartTime}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"date":"2024-06-18","startTime":"11:30"}`

func serve(h *Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"companyId": "1", "appointmentId": "a-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(NewHandler(uc, scheduling.NewDateCodec(nil), nopLogger{}), body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "a-1", uc.got.AppointmentID)
	assert.Nil(t, uc.got.ResourceID)
	assert.Contains(t, rec.Body.String(), `"date":"2024-06-18"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{rescheduleAppointment.ErrInvalidInput, http.StatusBadRequest},
		{rescheduleAppointment.ErrAppointmentNotFound, http.StatusNotFound},
		{rescheduleAppointment.ErrCannotReschedule, http.StatusConflict},
		{rescheduleAppointment.ErrPastDate, http.StatusBadRequest},
		{rescheduleAppointment.ErrDateTooFarInFuture, http.StatusBadRequest},
		{rescheduleAppointment.ErrCompanyClosed, http.StatusBadRequest},
		{rescheduleAppointment.ErrInvalidTimeSlot, http.StatusBadRequest},
		{rescheduleAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{rescheduleAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, scheduling.NewDateCodec(nil), nopLogger{}), body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedTime(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(NewHandler(uc, scheduling.NewDateCodec(nil), nopLogger{}), `{"date":"2024-06-18","startTime":"11.30"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
