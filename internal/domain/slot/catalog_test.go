//go:build unit

package slot_test

import (
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strings(ts []slot.Template) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func TestForDuration(t *testing.T) {
	one, err := slot.ForDuration(slot.OneHour)
	require.NoError(t, err)
	require.Len(t, one, 16)
	assert.Equal(t, "07:00-08:00", one[0].String())
	assert.Equal(t, "22:00-23:00", one[15].String())

	two, err := slot.ForDuration(slot.TwoHours)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"07:00-09:00", "09:00-11:00", "11:00-13:00", "13:00-15:00",
		"15:00-17:00", "17:00-19:00", "19:00-21:00", "21:00-23:00",
	}, strings(two))

	three, err := slot.ForDuration(slot.ThreeHours)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"07:00-10:00", "10:00-13:00", "13:00-16:00", "16:00-19:00", "19:00-22:00",
	}, strings(three))

	for _, d := range []slot.Duration{0, 4, -1} {
		_, err := slot.ForDuration(d)
		assert.ErrorIs(t, err, slot.ErrInvalidDuration)
	}
}

func TestForDuration_TemplatesStayInsideWindow(t *testing.T) {
	for _, d := range []slot.Duration{slot.OneHour, slot.TwoHours, slot.ThreeHours} {
		ts, err := slot.ForDuration(d)
		require.NoError(t, err)
		for _, tpl := range ts {
			assert.True(t, booking.AllowedRange(tpl.Start(), tpl.End()), tpl.String())
			assert.Equal(t, float64(d), tpl.Duration().Hours())
		}
	}
}

func TestForDuration_ReturnsCopies(t *testing.T) {
	two, err := slot.ForDuration(slot.TwoHours)
	require.NoError(t, err)
	two[0] = two[7]

	again, err := slot.ForDuration(slot.TwoHours)
	require.NoError(t, err)
	assert.Equal(t, "07:00-09:00", again[0].String())
}

func TestFreeAgainst(t *testing.T) {
	two, err := slot.ForDuration(slot.TwoHours)
	require.NoError(t, err)
	booked, err := booking.ParseTimeRange("09:00", "11:00")
	require.NoError(t, err)

	free := slot.FreeAgainst(two, []booking.TimeRange{booked})

	assert.Len(t, free, 7)
	assert.NotContains(t, strings(free), "09:00-11:00")
	assert.Equal(t, "07:00-09:00", free[0].String())
	assert.Equal(t, "11:00-13:00", free[1].String())

	assert.Len(t, slot.FreeAgainst(two, nil), 8)
}
