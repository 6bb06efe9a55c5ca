package format

import "strings"

// ShiftHeading demotes an ATX heading of depth two or more by one level.
// Depth-1 headings and all other lines are returned unchanged.
func ShiftHeading(line string) string {
	if strings.HasPrefix(line, "##") {
		return "#" + line
	}
	return line
}

// shiftAnyHeading demotes any '#'-led line. Paragraph mode uses this wider
// rule; raw mode keeps the "##" gate of ShiftHeading.
func shiftAnyHeading(line string) string {
	return "#" + line
}

// shiftLines applies ShiftHeading to every line of body, keeping line
// terminators and order intact.
func shiftLines(body string) string {
	lines := strings.SplitAfter(body, "\n")
	var b strings.Builder
	b.Grow(len(body) + len(lines))
	for _, line := range lines {
		b.WriteString(ShiftHeading(line))
	}
	return b.String()
}
