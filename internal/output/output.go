package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dshills/commit-format/internal/format"
)

// Entry is one formatted commit.
type Entry struct {
	Subject  string `json:"subject"`
	Markdown string `json:"markdown"`
}

// NewEntries pairs each raw commit with its formatted Markdown.
// raws and formatted must have the same length.
func NewEntries(raws, formatted []string) []Entry {
	entries := make([]Entry, len(raws))
	for i, raw := range raws {
		subject, _, _ := format.SplitCommit(raw)
		entries[i] = Entry{Subject: subject, Markdown: formatted[i]}
	}
	return entries
}

// Writer writes entries in a specific format.
type Writer interface {
	Write(w io.Writer, entries []Entry) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "", "markdown":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Render returns the entries as a single document in the given format.
func Render(entries []Entry, format string) (string, error) {
	writer, err := GetWriter(format)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := writer.Write(&buf, entries); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteEntries writes the entries to outPath, or to stdout when outPath is
// empty.
func WriteEntries(entries []Entry, format, outPath string, stdout io.Writer) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = stdout
		if w == nil {
			w = os.Stdout
		}
	}

	return writer.Write(w, entries)
}
