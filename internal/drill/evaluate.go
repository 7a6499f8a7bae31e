package drill

import (
	"strings"

	"golang.org/x/text/cases"

	"kanadrill-go/internal/kana"
)

// Feedback is the verdict on one submitted answer.
type Feedback struct {
	IsCorrect bool
	Expected  string
	Given     string
}

// Prompt is the text shown for entry when drilling in direction d.
func Prompt(entry kana.Entry, d kana.Direction) string {
	return entry.Project(d.From)
}

// Evaluate judges input against the entry's projection onto d.To. Input is
// trimmed and compared case-insensitively; anything else must match exactly.
func Evaluate(entry kana.Entry, d kana.Direction, input string) Feedback {
	expected := entry.Project(d.To)
	given := strings.TrimSpace(input)
	fold := cases.Fold()
	return Feedback{
		IsCorrect: fold.String(given) == fold.String(expected),
		Expected:  expected,
		Given:     given,
	}
}
