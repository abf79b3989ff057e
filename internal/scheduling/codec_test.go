package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/memo"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestDateCodec_RoundTrip(t *testing.T) {
	cache, err := memo.NewLRU[string, types.CivilDate](16)
	require.NoError(t, err)
	codec := NewDateCodec(cache)

	start := types.MustCivilDate(2023, 12, 25)
	for i := 0; i < 800; i++ {
		d := start.AddDays(i)
		parsed, err := codec.ParseDate(codec.FormatDate(d))
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestDateCodec_ParseDateErrors(t *testing.T) {
	codec := NewDateCodec(nil)

	for _, s := range []string{"", "2024-6-1", "2024-02-30", "2023-02-29", "2024-00-10", "abcd-ef-gh", "2024-06-15T00:00:00Z"} {
		_, err := codec.ParseDate(s)
		assert.ErrorIs(t, err, ErrMalformedDate, s)
	}
}

func TestDateCodec_CacheDoesNotChangeResults(t *testing.T) {
	cache, err := memo.NewLRU[string, types.CivilDate](2)
	require.NoError(t, err)
	cached := NewDateCodec(cache)
	plain := NewDateCodec(memo.Noop[string, types.CivilDate]{})

	inputs := []string{"2024-02-29", "2024-03-01", "2024-02-29", "bad", "1999-12-31", "2024-03-01"}
	for _, s := range inputs {
		a, errA := cached.ParseDate(s)
		b, errB := plain.ParseDate(s)
		assert.Equal(t, b, a, s)
		assert.Equal(t, errB == nil, errA == nil, s)
	}

	// ошибки не кэшируются
	assert.LessOrEqual(t, cache.Len(), 2)

	cached.Reset()
	assert.Equal(t, 0, cache.Len())
}

func TestDateCodec_FromLocalInputIgnoresProcessZone(t *testing.T) {
	codec := NewDateCodec(nil)
	original := time.Local
	t.Cleanup(func() { time.Local = original })

	for _, offset := range []int{-12, -3, 0, 5, 12, 14} {
		time.Local = time.FixedZone("test", offset*3600)

		d, err := codec.FromLocalInput(2024, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 10, d.Day())
		assert.Equal(t, "2024-03-10", codec.FormatDate(d))
	}

	_, err := codec.FromLocalInput(2024, 2, 30)
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestDateCodec_ParseTime(t *testing.T) {
	codec := NewDateCodec(nil)

	got, err := codec.ParseTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), got)

	for _, s := range []string{"9:30", "24:00", "12:60", "", "12:00:00"} {
		_, err := codec.ParseTime(s)
		assert.ErrorIs(t, err, ErrMalformedTime, s)
	}
}
