package output

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is replaced in tests; the real clipboard needs pbcopy,
// xclip, xsel or wl-copy on the host.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
