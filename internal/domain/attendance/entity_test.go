package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkedHours(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2024, 3, 12, h, m, 0, 0, time.UTC)
	}

	cases := []struct {
		name string
		in   time.Time
		out  time.Time
		want string
	}{
		{"standard day 09:15 to 17:30", day(9, 15), day(17, 30), "8.25"},
		{"full eight hours", day(9, 0), day(17, 0), "8"},
		{"short shift", day(10, 0), day(10, 30), "0.5"},
		{"rounds to two decimals", day(9, 0), day(9, 50), "0.83"},
		{"zero duration", day(9, 0), day(9, 0), "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorkedHours(c.in, c.out)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("present"))
	assert.True(t, ValidStatus("absent"))
	assert.True(t, ValidStatus("leave"))
	assert.False(t, ValidStatus("Present"))
	assert.False(t, ValidStatus("holiday"))
	assert.False(t, ValidStatus(""))
}
