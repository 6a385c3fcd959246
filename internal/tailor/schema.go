package tailor

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/tailored_resume.json
var tailoredResumeSchemaJSON string

var tailoredResumeSchema = mustCompileSchema(tailoredResumeSchemaJSON)

func mustCompileSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("invalid tailored resume schema: %v", err))
	}
	return schema
}

// FieldError is one schema violation in a provider reply
type FieldError struct {
	Field   string
	Message string
}

// ShapeError reports a well-formed reply that does not match TailoredResume
type ShapeError struct {
	Errors []FieldError
}

func (e *ShapeError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "provider reply does not match the resume schema: " + strings.Join(parts, "; ")
}

// ValidateShape checks a JSON document against the tailored resume schema
func ValidateShape(document []byte) error {
	result, err := tailoredResumeSchema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate provider reply: %w", err)
	}
	if result.Valid() {
		return nil
	}

	shapeErr := &ShapeError{}
	for _, re := range result.Errors() {
		shapeErr.Errors = append(shapeErr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return shapeErr
}
