// Package ui prints short, coloured status lines for people at a terminal.
// Everything goes to stderr; stdout is reserved for the formatted document.
package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	ErrorColor   = color.New(color.FgRed, color.Bold)
	WarningColor = color.New(color.FgYellow)
	SuccessColor = color.New(color.FgGreen)
)

// Output is where messages are written.
var Output io.Writer = os.Stderr

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(Output, "Error: "+format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(Output, "Warning: "+format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(Output, format+"\n", a...)
}
