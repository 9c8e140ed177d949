package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_FillProportions(t *testing.T) {
	cases := []struct {
		pct        float64
		width      int
		wantFilled int
	}{
		{0, 10, 0},
		{0.45, 10, 4},
		{0.5, 10, 5},
		{1, 10, 10},
		{1.7, 10, 10},
		{-0.2, 10, 0},
	}
	for _, tc := range cases {
		out := RenderProgress(tc.pct, tc.width)
		assert.Equal(t, tc.wantFilled, strings.Count(out, filledBlock), "pct=%v", tc.pct)
		assert.Equal(t, tc.width-tc.wantFilled, strings.Count(out, emptyBlock), "pct=%v", tc.pct)
	}
}

func TestRenderProgress_PercentLabel(t *testing.T) {
	assert.Contains(t, RenderProgress(0.45, 8), "45%")
	assert.Contains(t, RenderProgress(1.5, 8), "100%")
	assert.Contains(t, RenderProgress(0, 8), "0%")
}

func TestRenderProgress_MinimumWidth(t *testing.T) {
	out := RenderProgress(1, 0)
	assert.Equal(t, 2, strings.Count(out, filledBlock))
}
