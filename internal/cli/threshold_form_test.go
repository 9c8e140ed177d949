package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseThresholdMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"0", 0},
		{"5", 5},
		{" 12 ", 12},
		{"-3", 0},
		{"abc", 0},
		{"1.5", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseThresholdMinutes(tc.in), "in=%q", tc.in)
	}
}

func TestValidateOptionalMinutes(t *testing.T) {
	assert.NoError(t, validateOptionalMinutes(""))
	assert.NoError(t, validateOptionalMinutes("0"))
	assert.NoError(t, validateOptionalMinutes("45"))
	assert.Error(t, validateOptionalMinutes("-1"))
	assert.Error(t, validateOptionalMinutes("soon"))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("PLATEWATCH_TEST_INT", "7")
	assert.Equal(t, 7, envInt("PLATEWATCH_TEST_INT", 1))

	t.Setenv("PLATEWATCH_TEST_INT", "nope")
	assert.Equal(t, 1, envInt("PLATEWATCH_TEST_INT", 1))

	assert.Equal(t, 2, envInt("PLATEWATCH_TEST_UNSET", 2))
}
