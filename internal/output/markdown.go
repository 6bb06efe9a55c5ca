package output

import (
	"fmt"
	"io"
)

// MarkdownWriter prints each formatted commit on its own, with one blank line
// between consecutive commits and none after the last.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, entries []Entry) error {
	last := len(entries) - 1
	for i, e := range entries {
		if _, err := fmt.Fprintln(w, e.Markdown); err != nil {
			return fmt.Errorf("writing commit %d: %w", i+1, err)
		}
		if i < last {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("writing separator: %w", err)
			}
		}
	}
	return nil
}
