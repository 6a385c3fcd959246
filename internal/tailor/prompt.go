package tailor

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed prompts/*.tmpl
var promptFiles embed.FS

const (
	PromptStyleDetailed = "detailed"
	PromptStyleConcise  = "concise"
)

// BuildPrompt renders the named template with the job description and resume
// embedded verbatim. Placeholders inside the inserted text are not expanded.
func BuildPrompt(style, resumeText, jobDescription string) (string, error) {
	data, err := promptFiles.ReadFile("prompts/" + style + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("unknown prompt style %q: %w", style, err)
	}

	replacer := strings.NewReplacer(
		"{{.JobDescription}}", jobDescription,
		"{{.ResumeText}}", resumeText,
	)
	return replacer.Replace(strings.TrimRight(string(data), "\n")), nil
}
