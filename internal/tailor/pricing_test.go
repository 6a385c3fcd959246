package tailor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricing_Usage(t *testing.T) {
	usage := DefaultPricing().Usage(1000, 2000)

	assert.Equal(t, int64(1000), usage.InputTokens)
	assert.Equal(t, int64(2000), usage.OutputTokens)
	assert.InDelta(t, 0.033, usage.TotalCost, 1e-12)
	assert.Equal(t, "$0.0330", usage.FormattedCost)
}

func TestPricing_UsageMatchesFormula(t *testing.T) {
	cases := [][2]int64{{0, 0}, {1, 1}, {12345, 678}, {250000, 4096}, {1_000_000, 1_000_000}}

	for _, c := range cases {
		usage := DefaultPricing().Usage(c[0], c[1])
		want := float64(c[0])/1e6*3 + float64(c[1])/1e6*15
		assert.InDelta(t, want, usage.TotalCost, 1e-12)
		assert.Equal(t, FormatCost(want), usage.FormattedCost)
	}
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0000", FormatCost(0))
	assert.Equal(t, "$18.0000", FormatCost(18))
	assert.Equal(t, "$0.0123", FormatCost(0.01234))
}
