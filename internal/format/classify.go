package format

import (
	"regexp"
	"strings"
)

// LineClass describes how a body line is treated in paragraph mode.
type LineClass int

const (
	ProseLine LineClass = iota
	CodeFenceMarker
	BlankLine
	AtxHeading
	StructuralLine
	SetextUnderline
)

func (c LineClass) String() string {
	switch c {
	case CodeFenceMarker:
		return "code-fence"
	case BlankLine:
		return "blank"
	case AtxHeading:
		return "heading"
	case StructuralLine:
		return "structural"
	case SetextUnderline:
		return "setext-underline"
	default:
		return "prose"
	}
}

var structuralPrefixes = []string{"  ", "\t", "- ", "* ", "|", "> "}

var orderedListItem = regexp.MustCompile(`^[0-9]+\. `)

// Classify returns the class of a single line. The first matching rule wins,
// in the order the constants are checked below. Whether the line sits inside a
// fenced block is engine state and is not considered here.
func Classify(line string) LineClass {
	switch {
	case isCodeFence(line):
		return CodeFenceMarker
	case strings.TrimSpace(line) == "":
		return BlankLine
	case strings.HasPrefix(line, "#"):
		return AtxHeading
	case isStructural(line):
		return StructuralLine
	case isSetextUnderline(line):
		return SetextUnderline
	default:
		return ProseLine
	}
}

func isCodeFence(line string) bool {
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}

func isStructural(line string) bool {
	for _, prefix := range structuralPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return orderedListItem.MatchString(line)
}

// isSetextUnderline reports whether the trimmed line is one of '=' or '-'
// repeated, e.g. "===" or "---".
func isSetextUnderline(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	first := trimmed[0]
	if first != '=' && first != '-' {
		return false
	}
	return strings.Trim(trimmed, string(first)) == ""
}

// hasHardBreak reports whether the line ends in the two-space Markdown hard
// line break marker.
func hasHardBreak(line string) bool {
	return strings.HasSuffix(line, "  ")
}
