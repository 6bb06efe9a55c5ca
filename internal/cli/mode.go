package cli

import (
	"github.com/dshills/commit-format/internal/format"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*modeValue)(nil)

// modeValue is the --mode flag. It remembers whether it was set so an unset
// flag leaves the configured mode alone.
type modeValue struct {
	mode format.Mode
	set  bool
}

func (m *modeValue) String() string { return m.mode.String() }

func (m *modeValue) Set(s string) error {
	mode, err := format.ParseMode(s)
	if err != nil {
		return err
	}
	m.mode = mode
	m.set = true
	return nil
}

func (m *modeValue) Type() string { return "mode" }
