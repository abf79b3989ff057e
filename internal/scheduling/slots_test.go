package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func ts(values ...string) []types.TimeString {
	result := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		result = append(result, types.MustTimeString(v))
	}
	return result
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		opensAt  string
		closesAt string
		interval int
		want     []types.TimeString
	}{
		{
			name:     "closing time is excluded",
			opensAt:  "08:00",
			closesAt: "09:00",
			interval: 30,
			want:     ts("08:00", "08:30"),
		},
		{
			name:     "interval not dividing the day",
			opensAt:  "10:00",
			closesAt: "11:00",
			interval: 25,
			want:     ts("10:00", "10:25", "10:50"),
		},
		{
			name:     "interval longer than the day",
			opensAt:  "10:00",
			closesAt: "10:30",
			interval: 60,
			want:     ts("10:00"),
		},
		{
			name:     "open equals close",
			opensAt:  "09:00",
			closesAt: "09:00",
			interval: 30,
			want:     ts(),
		},
		{
			name:     "open after close",
			opensAt:  "18:00",
			closesAt: "09:00",
			interval: 30,
			want:     ts(),
		},
		{
			name:     "late closing",
			opensAt:  "22:30",
			closesAt: "23:59",
			interval: 30,
			want:     ts("22:30", "23:00", "23:30"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSlots(types.MustTimeString(tt.opensAt), types.MustTimeString(tt.closesAt), tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	_, err := GenerateSlots("08:00", "09:00", 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = GenerateSlots("08:00", "09:00", -15)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = GenerateSlots("8am", "09:00", 30)
	assert.ErrorIs(t, err, ErrMalformedTime)

	_, err = GenerateSlots("08:00", "", 30)
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestGenerateSlots_Restartable(t *testing.T) {
	first, err := GenerateSlots("09:00", "12:00", 45)
	require.NoError(t, err)
	second, err := GenerateSlots("09:00", "12:00", 45)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].IsBefore(first[i]))
	}
}
