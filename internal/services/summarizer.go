package services

// Summary is the result of a summarization request.
type Summary struct {
	// Result is set in template mode and carries the full annotated text.
	Result string
	// Category, Priority and Text are set in plain mode.
	Category string
	Priority string
	Text     string
}

// The summarizer is deliberately not content-aware: it truncates to a fixed
// prefix and decorates with literal strings. The annotations below never
// change regardless of input.
const (
	actionLine   = "Action: Please check the mentioned tasks."
	categoryLine = "Category: Academic Notice"
	deadlineLine = "Deadline: Extracted dates if present"
)

// Summarizer truncates text to a fixed prefix length. With Template set it
// produces a single annotated result string; otherwise it produces a
// category/priority/summary triple.
type Summarizer struct {
	Cutoff   int
	Template bool
}

// NewSummarizer creates a Summarizer with the given cutoff length.
func NewSummarizer(cutoff int, template bool) *Summarizer {
	return &Summarizer{Cutoff: cutoff, Template: template}
}

// Summarize truncates text deterministically. Empty input is an error.
func (s *Summarizer) Summarize(text string) (Summary, error) {
	if text == "" {
		return Summary{}, ErrEmptyText
	}

	truncated := truncate(text, s.Cutoff)

	if s.Template {
		return Summary{
			Result: "Summary: " + truncated + "\n" + actionLine + "\n" + categoryLine + "\n" + deadlineLine,
		}, nil
	}
	return Summary{
		Category: "General",
		Priority: "Low",
		Text:     truncated,
	}, nil
}

// truncate cuts text to at most cutoff runes, marking the cut with "...".
func truncate(text string, cutoff int) string {
	runes := []rune(text)
	if len(runes) <= cutoff {
		return text
	}
	return string(runes[:cutoff]) + "..."
}
