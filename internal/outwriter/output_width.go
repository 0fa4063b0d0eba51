package outwriter

import (
	"io"
	"os"

	"github.com/huangsam/planchart/internal/contract"
	"golang.org/x/term"
)

// Column limits for text that is truncated to the terminal.
const (
	minTextWidth = 20
	maxTextWidth = 70
)

// getTerminalWidth returns the width of stdout, falling back to 80 columns
// when it is not a terminal.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return width
}

// getMaxDescriptionWidth calculates the room left for the description column
// of the chart catalogue table.
func getMaxDescriptionWidth() int {
	// Rank + Chart + Family + Size + Series with borders/padding
	available := getTerminalWidth() - 60
	return min(max(available, minTextWidth), maxTextWidth)
}

// shouldColorize reports whether series labels written to w get colors.
// Colors are only used for interactive terminals.
func shouldColorize(cfg *contract.Config, w io.Writer) bool {
	if !cfg.UseColors {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// truncateText cuts s to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so the ellipsis leaves room for content.
func truncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}
