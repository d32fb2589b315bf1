package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     *float64
	}{
		{
			name:     "Sem baseline retorna nulo, nunca infinito",
			current:  500,
			previous: 0,
			want:     nil,
		},
		{
			name:     "Zero sobre zero tambem e sem baseline",
			current:  0,
			previous: 0,
			want:     nil,
		},
		{
			name:     "Crescimento simples",
			current:  150,
			previous: 100,
			want:     floatPtr(50.0),
		},
		{
			name:     "Queda para zero",
			current:  0,
			previous: 200,
			want:     floatPtr(-100.0),
		},
		{
			name:     "Arredondamento half-to-even para baixo",
			current:  100.25,
			previous: 100,
			want:     floatPtr(0.2),
		},
		{
			name:     "Arredondamento half-to-even para cima",
			current:  100.75,
			previous: 100,
			want:     floatPtr(0.8),
		},
		{
			name:     "Uma casa decimal",
			current:  1234,
			previous: 1000,
			want:     floatPtr(23.4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Growth(tt.current, tt.previous)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			assert.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestPreviousWindow(t *testing.T) {
	start := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	prevStart, prevEnd := PreviousWindow(start, end)

	assert.True(t, prevStart.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, prevEnd.Equal(start))
	assert.Equal(t, end.Sub(start), prevEnd.Sub(prevStart))
}

func floatPtr(v float64) *float64 {
	return &v
}
