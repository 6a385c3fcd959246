package tailor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/config"
	"resume-tailor/internal/llm/llmtest"
	"resume-tailor/pkg/models"
)

var sampleRequest = models.TailorRequest{
	ResumeText:     "Jane Doe, Senior Engineer at Acme",
	JobDescription: "Staff Engineer, payments",
	APIKey:         "secret",
}

func TestService_Tailor(t *testing.T) {
	stub := &llmtest.StubProvider{Text: validResumeJSON, InputTokens: 1000, OutputTokens: 2000}
	svc := NewService(stub, DefaultOptions())

	result, err := svc.Tailor(context.Background(), sampleRequest)
	require.NoError(t, err)

	assert.JSONEq(t, validResumeJSON, string(result.Content))
	assert.InDelta(t, 0.033, result.Usage.TotalCost, 1e-12)
	assert.Equal(t, "$0.0330", result.Usage.FormattedCost)
	require.NotNil(t, result.Resume)
	assert.Equal(t, "Staff Engineer", result.Resume.ProfessionalTitle)
	assert.Equal(t, 1, result.Resume.BulletCount())

	require.Equal(t, 1, stub.Calls())
	req, _ := stub.LastRequest()
	assert.Equal(t, DefaultModel, req.Model)
	assert.Equal(t, 4096, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Contains(t, req.Prompt, sampleRequest.ResumeText)
	assert.Contains(t, req.Prompt, sampleRequest.JobDescription)
}

func TestService_TailorStripsFences(t *testing.T) {
	for _, reply := range []string{
		"```json\n" + validResumeJSON + "\n```",
		"```\n" + validResumeJSON + "\n```",
	} {
		stub := &llmtest.StubProvider{Text: reply, InputTokens: 10, OutputTokens: 20}
		result, err := NewService(stub, DefaultOptions()).Tailor(context.Background(), sampleRequest)
		require.NoError(t, err)
		assert.JSONEq(t, validResumeJSON, string(result.Content))
	}
}

func TestService_TailorPassesThroughUnexpectedShape(t *testing.T) {
	stub := &llmtest.StubProvider{Text: `{"unexpected": [1, 2, 3]}`}

	result, err := NewService(stub, DefaultOptions()).Tailor(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unexpected": [1, 2, 3]}`, string(result.Content))
}

func TestService_TailorParseError(t *testing.T) {
	stub := &llmtest.StubProvider{Text: "```json\nSorry, I can't help with that.\n```"}

	_, err := NewService(stub, DefaultOptions()).Tailor(context.Background(), sampleRequest)
	require.Error(t, err)

	var tailorErr *Error
	require.True(t, errors.As(err, &tailorErr))
	assert.Equal(t, KindParse, tailorErr.Kind)
	assert.Equal(t, "ParseError", KindOf(err))

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 1, stub.Calls())
}

func TestService_TailorProviderError(t *testing.T) {
	stub := &llmtest.StubProvider{Err: errors.New("connection reset by peer")}

	_, err := NewService(stub, DefaultOptions()).Tailor(context.Background(), sampleRequest)
	require.Error(t, err)
	assert.Equal(t, "ProviderError", KindOf(err))
	assert.Equal(t, "connection reset by peer", err.Error())
	assert.Equal(t, 1, stub.Calls())
}

func TestService_TailorStrictSchema(t *testing.T) {
	opts := DefaultOptions()
	opts.StrictSchema = true

	stub := &llmtest.StubProvider{Text: `{"professionalTitle": "Engineer"}`}
	_, err := NewService(stub, opts).Tailor(context.Background(), sampleRequest)
	require.Error(t, err)
	assert.Equal(t, "SchemaError", KindOf(err))

	stub = &llmtest.StubProvider{Text: validResumeJSON}
	_, err = NewService(stub, opts).Tailor(context.Background(), sampleRequest)
	assert.NoError(t, err)
}

func TestService_TailorUnknownPromptStyle(t *testing.T) {
	opts := DefaultOptions()
	opts.PromptStyle = "limerick"
	stub := &llmtest.StubProvider{Text: validResumeJSON}

	_, err := NewService(stub, opts).Tailor(context.Background(), sampleRequest)
	assert.Equal(t, "PromptError", KindOf(err))
	assert.Equal(t, 0, stub.Calls())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tailor.PromptStyle = PromptStyleConcise
	cfg.Tailor.StrictSchema = true

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, DefaultModel, opts.Model)
	assert.Equal(t, DefaultMaxTokens, opts.MaxTokens)
	assert.InDelta(t, DefaultTemperature, opts.Temperature, 1e-9)
	assert.Equal(t, DefaultPricing(), opts.Pricing)
	assert.Equal(t, PromptStyleConcise, opts.PromptStyle)
	assert.True(t, opts.StrictSchema)
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, "InternalError", KindOf(errors.New("boom")))
}
