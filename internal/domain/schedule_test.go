package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestWorkingHoursRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    WorkingHoursRule
		wantErr bool
	}{
		{"open day", WorkingHoursRule{Weekday: 1, IsOpen: true, OpensAt: "08:00", ClosesAt: "20:00"}, false},
		{"closed day ignores hours", WorkingHoursRule{Weekday: 0, IsOpen: false}, false},
		{"weekday below range", WorkingHoursRule{Weekday: -1}, true},
		{"weekday above range", WorkingHoursRule{Weekday: 7}, true},
		{"opens equals closes", WorkingHoursRule{Weekday: 2, IsOpen: true, OpensAt: "09:00", ClosesAt: "09:00"}, true},
		{"opens after closes", WorkingHoursRule{Weekday: 2, IsOpen: true, OpensAt: "18:00", ClosesAt: "09:00"}, true},
		{"malformed time", WorkingHoursRule{Weekday: 3, IsOpen: true, OpensAt: "8:00", ClosesAt: "18:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkingHours)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWeeklySchedule_ForWeekday(t *testing.T) {
	var week WeeklySchedule
	monday := &WorkingHoursRule{Weekday: 1, IsOpen: true, OpensAt: types.MustTimeString("08:00"), ClosesAt: types.MustTimeString("18:00")}
	week[1] = monday

	assert.Same(t, monday, week.ForWeekday(1))
	assert.Nil(t, week.ForWeekday(0))
	assert.Nil(t, week.ForWeekday(-1))
	assert.Nil(t, week.ForWeekday(7))
}

func TestScheduleConfig_Validate(t *testing.T) {
	cfg := DefaultScheduleConfig(42)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(42), cfg.CompanyID)
	assert.Equal(t, 30, cfg.SlotIntervalMinutes)
	assert.Equal(t, 365, cfg.MaxAdvanceDays)
	assert.False(t, cfg.ResourceScoped)

	cfg.SlotIntervalMinutes = 4
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidScheduleConfig)

	cfg.SlotIntervalMinutes = 480
	cfg.MaxAdvanceDays = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidScheduleConfig)

	cfg.MaxAdvanceDays = 366
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidScheduleConfig)
}
