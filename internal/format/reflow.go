package format

import "strings"

// reflowState is owned by a single Reflow call and never shared.
type reflowState struct {
	insideCodeBlock bool
	pending         []string
	output          []string
}

// flush joins the pending paragraph into one output line. No-op when empty.
func (s *reflowState) flush() {
	if len(s.pending) == 0 {
		return
	}
	s.output = append(s.output, strings.Join(s.pending, " "))
	s.pending = s.pending[:0]
}

func (s *reflowState) emit(line string) {
	s.output = append(s.output, line)
}

func (s *reflowState) flushAndEmit(line string, render func(string) string) {
	s.flush()
	s.emit(render(line))
}

func verbatim(line string) string { return line }

// Reflow joins hard-wrapped prose in body into one line per paragraph.
// Structural lines are emitted unchanged, '#'-led lines are demoted one level
// and everything between code fences is copied verbatim.
func Reflow(body string) string {
	s := &reflowState{}
	for _, line := range strings.Split(body, "\n") {
		s.step(line)
	}
	s.flush()
	return strings.Join(s.output, "\n")
}

func (s *reflowState) step(line string) {
	class := Classify(line)

	if class == CodeFenceMarker {
		s.flushAndEmit(line, verbatim)
		s.insideCodeBlock = !s.insideCodeBlock
		return
	}
	if s.insideCodeBlock {
		s.emit(line)
		return
	}

	switch class {
	case BlankLine:
		s.flushAndEmit(line, func(string) string { return "" })
	case AtxHeading:
		s.flushAndEmit(line, shiftAnyHeading)
	case StructuralLine, SetextUnderline:
		s.flushAndEmit(line, verbatim)
	default:
		s.pending = append(s.pending, line)
		if hasHardBreak(line) {
			s.flush()
		}
	}
}
