package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"08:00": 480,
		"9:30":  570,
		"22:00": 1320,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := TimeToMinutes(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestTimeToMinutes_Rejects(t *testing.T) {
	for _, in := range []string{"", "8", "24:00", "12:60", "12:5", "ab:cd", "123:00", "-1:00"} {
		_, err := TimeToMinutes(in)
		assert.ErrorIs(t, err, ErrInvalidClock, in)
	}
}

func TestMinutesToTime(t *testing.T) {
	s, err := MinutesToTime(545)
	require.NoError(t, err)
	assert.Equal(t, "09:05", s)

	_, err = MinutesToTime(MinutesPerDay)
	assert.ErrorIs(t, err, ErrMinutesOutside)
	_, err = MinutesToTime(-1)
	assert.ErrorIs(t, err, ErrMinutesOutside)

	assert.Equal(t, "", ClockString(1440))
}

func TestMinutesRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		s, err := MinutesToTime(m)
		require.NoError(t, err)
		back, err := TimeToMinutes(s)
		require.NoError(t, err)
		if back != m {
			t.Fatalf("round trip of %d gave %q -> %d", m, s, back)
		}
	}
}
