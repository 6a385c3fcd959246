package tailor

import "strings"

var fenceRemover = strings.NewReplacer(
	"```json\n", "",
	"```json", "",
	"```\n", "",
	"```", "",
)

// StripCodeFences trims the reply and, when it opens with a code fence,
// removes every ```json and ``` delimiter before trimming again.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	return strings.TrimSpace(fenceRemover.Replace(text))
}
