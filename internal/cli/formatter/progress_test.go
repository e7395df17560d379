package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		width  int
		filled int
	}{
		{"0%", 0.0, 10, 0},
		{"50%", 0.5, 10, 5},
		{"100%", 1.0, 10, 10},
		{"over 100% clamps", 1.5, 10, 10},
		{"negative clamps", -0.5, 10, 0},
		{"tiny width clamps to 2", 0.5, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderCompactBar(tt.pct, tt.width))
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "%")
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
		})
	}
}

func TestRenderProgress(t *testing.T) {
	got := stripANSI(RenderProgress(0.45, 20))
	assert.Equal(t, "[█████████░░░░░░░░░░░]  45%", got)
}
