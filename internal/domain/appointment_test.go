package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, err := ParseAppointmentStatus(s)
		require.NoError(t, err)
		assert.Equal(t, AppointmentStatus(s), status)
	}

	_, err := ParseAppointmentStatus("Confirmed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseAppointmentStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointment_Lifecycle(t *testing.T) {
	tests := []struct {
		status         AppointmentStatus
		active         bool
		canCancel      bool
		canReschedule  bool
		allowedTargets []AppointmentStatus
	}{
		{StatusPending, true, true, true, []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusCancelled}},
		{StatusConfirmed, true, true, true, []AppointmentStatus{StatusCompleted, StatusCancelled}},
		{StatusCompleted, true, false, false, nil},
		{StatusCancelled, false, false, false, nil},
	}

	all := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.active, a.IsActive())
			assert.Equal(t, !tt.active, a.IsCancelled())
			assert.Equal(t, tt.canCancel, a.CanBeCancelled())
			assert.Equal(t, tt.canReschedule, a.CanBeRescheduled())

			for _, next := range all {
				assert.Equal(t, contains(tt.allowedTargets, next), a.CanTransitionTo(next), "-> %s", next)
			}
		})
	}
}

func TestAppointment_SameResource(t *testing.T) {
	a := &Appointment{}
	assert.True(t, a.SameResource(nil))
	assert.False(t, a.SameResource(ptr.Ptr("bay-1")))

	a.ResourceID = ptr.Ptr("bay-1")
	assert.True(t, a.SameResource(ptr.Ptr("bay-1")))
	assert.False(t, a.SameResource(ptr.Ptr("bay-2")))
	assert.False(t, a.SameResource(nil))
}

func TestAppointmentsFilter_IsSingleDate(t *testing.T) {
	d1 := types.MustCivilDate(2025, 3, 10)
	d2 := types.MustCivilDate(2025, 3, 11)

	assert.False(t, (&AppointmentsFilter{}).IsSingleDate())
	assert.False(t, (&AppointmentsFilter{StartDate: &d1}).IsSingleDate())
	assert.False(t, (&AppointmentsFilter{StartDate: &d1, EndDate: &d2}).IsSingleDate())

	same := d1
	assert.True(t, (&AppointmentsFilter{StartDate: &d1, EndDate: &same}).IsSingleDate())
}

func contains(list []AppointmentStatus, s AppointmentStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
