package format

import (
	"fmt"
	"strings"
	"sync"
)

// Mode selects how a commit body is rendered.
type Mode int

const (
	ModeRaw Mode = iota
	ModeParagraph
)

func (m Mode) String() string {
	if m == ModeParagraph {
		return "paragraph"
	}
	return "raw"
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return ModeRaw, nil
	case "paragraph":
		return ModeParagraph, nil
	default:
		return ModeRaw, fmt.Errorf("unknown mode %q (want raw or paragraph)", s)
	}
}

// SplitCommit splits a raw commit at the first newline into its subject and
// body. The body is empty when the commit has a single line.
func SplitCommit(raw string) (subject, body string, hasBody bool) {
	subject, body, hasBody = strings.Cut(raw, "\n")
	return subject, body, hasBody
}

// Format renders one raw commit as Markdown. The first line is always
// "## " followed by the subject, whatever the subject contains.
func Format(raw string, mode Mode) string {
	subject, body, hasBody := SplitCommit(raw)
	heading := "## " + subject
	if !hasBody {
		return heading
	}

	switch mode {
	case ModeParagraph:
		return heading + "\n" + Reflow(body)
	default:
		return heading + "\n" + shiftLines(body)
	}
}

// FormatAll formats each commit on its own goroutine and returns the results
// in input order. Commits share no state, so no coordination is needed beyond
// collecting the results.
func FormatAll(raws []string, mode Mode) []string {
	results := make([]string, len(raws))
	var wg sync.WaitGroup
	for i, raw := range raws {
		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			results[i] = Format(raw, mode)
		}(i, raw)
	}
	wg.Wait()
	return results
}
