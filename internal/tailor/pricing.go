package tailor

import (
	"fmt"

	"resume-tailor/pkg/models"
)

const (
	// DefaultModel is the Claude model the service was priced against
	DefaultModel       = "claude-3-5-sonnet-20241022"
	DefaultMaxTokens   = 4096
	DefaultTemperature = 0.7

	// USD per million tokens
	DefaultInputPricePerMillion  = 3.0
	DefaultOutputPricePerMillion = 15.0

	tokensPerMillion = 1_000_000
)

// Pricing converts token counts into a dollar cost
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// DefaultPricing returns the built-in per-token prices
func DefaultPricing() Pricing {
	return Pricing{
		InputPerMillion:  DefaultInputPricePerMillion,
		OutputPerMillion: DefaultOutputPricePerMillion,
	}
}

// Usage builds the usage record for one provider call
func (p Pricing) Usage(inputTokens, outputTokens int64) models.Usage {
	inputCost := float64(inputTokens) / tokensPerMillion * p.InputPerMillion
	outputCost := float64(outputTokens) / tokensPerMillion * p.OutputPerMillion
	total := inputCost + outputCost

	return models.Usage{
		InputTokens:   inputTokens,
		OutputTokens:  outputTokens,
		TotalCost:     total,
		FormattedCost: FormatCost(total),
	}
}

// FormatCost renders a dollar amount with four decimals
func FormatCost(cost float64) string {
	return fmt.Sprintf("$%.4f", cost)
}
