package tailor

import "errors"

// Kind labels the stage at which tailoring failed
type Kind string

const (
	KindProvider Kind = "ProviderError"
	KindParse    Kind = "ParseError"
	KindSchema   Kind = "SchemaError"
	KindPrompt   Kind = "PromptError"
)

// Error is returned by Service.Tailor for every failure
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or "InternalError" when err did not
// come from the tailor service
func KindOf(err error) string {
	var tailorErr *Error
	if errors.As(err, &tailorErr) {
		return string(tailorErr.Kind)
	}
	return "InternalError"
}
