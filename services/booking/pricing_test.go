package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		rate       float64
		flexible   bool
		flex       int
		want       float64
	}{
		{"two hours fixed", 600, 720, 200, false, 0, 400},
		{"three hours with 30 flexible minutes", 600, 780, 100, true, 30, 275},
		{"flex range ignored when not flexible", 600, 780, 100, false, 30, 300},
		{"flex range capped at duration", 600, 660, 100, true, 600, 50},
		{"zero duration", 600, 600, 100, false, 0, 0},
		{"negative duration", 720, 600, 100, true, 30, 0},
		{"rounds to nearest unit", 600, 610, 10, false, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.start, tt.end, tt.rate, tt.flexible, tt.flex)
			assert.Equal(t, tt.want, got)
		})
	}
}
