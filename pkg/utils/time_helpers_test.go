package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{135, "2h 15m"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMinutes(tc.minutes), "минуты: %d", tc.minutes)
	}
}
