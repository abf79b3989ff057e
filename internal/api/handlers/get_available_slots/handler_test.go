package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, companyID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/"+companyID+"/available-slots"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"companyId": companyID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	date := types.MustCivilDate(2024, 6, 17)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            date,
		CompanyID:       3,
		IsOpen:          true,
		IntervalMinutes: 30,
		AvailableSlots:  []types.TimeString{"09:30"},
		Slots: []domain.TimeSlot{
			{StartTime: "09:00", Available: false},
			{StartTime: "09:30", Available: true},
		},
	}}
	h := NewHandler(uc, scheduling.NewDateCodec(nil), nopLogger{})

	rec := serve(h, "3", "?date=2024-06-17&resourceId=bay-1")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3), uc.got.CompanyID)
	assert.Equal(t, date, uc.got.Date)
	require.NotNil(t, uc.got.ResourceID)
	assert.Equal(t, "bay-1", *uc.got.ResourceID)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-17", body.Date)
	assert.Equal(t, []string{"09:30"}, body.AvailableSlots)
	assert.Len(t, body.Slots, 2)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		companyID  string
		query      string
		ucErr      error
		wantStatus int
	}{
		{"bad company", "abc", "?date=2024-06-17", nil, http.StatusBadRequest},
		{"missing date", "1", "", nil, http.StatusBadRequest},
		{"malformed date", "1", "?date=17.06.2024", nil, http.StatusBadRequest},
		{"impossible date", "1", "?date=2023-02-29", nil, http.StatusBadRequest},
		{"past", "1", "?date=2024-06-17", fmt.Errorf("%w: x", getAvailableSlots.ErrPastDate), http.StatusBadRequest},
		{"too far", "1", "?date=2024-06-17", getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"internal", "1", "?date=2024-06-17", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, scheduling.NewDateCodec(nil), nopLogger{})
			rec := serve(h, tt.companyID, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
