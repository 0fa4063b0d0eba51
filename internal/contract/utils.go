package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Console colors used for series labels. Chart colors are CSS values, so they
// are folded onto the nearest terminal color.
var (
	RedColor     = color.New(color.FgRed, color.Bold)
	GreenColor   = color.New(color.FgGreen, color.Bold)
	BlueColor    = color.New(color.FgBlue, color.Bold)
	YellowColor  = color.New(color.FgYellow)
	CyanColor    = color.New(color.FgCyan)
	MagentaColor = color.New(color.FgMagenta)
	GrayColor    = color.New(color.FgHiBlack)
	PlainColor   = color.New(color.Bold)
)

var namedColors = map[string]*color.Color{
	"red":       RedColor,
	"green":     GreenColor,
	"blue":      BlueColor,
	"steelblue": BlueColor,
	"yellow":    YellowColor,
	"orange":    YellowColor,
	"cyan":      CyanColor,
	"magenta":   MagentaColor,
	"purple":    MagentaColor,
	"gray":      GrayColor,
	"grey":      GrayColor,
	"black":     PlainColor,
	"white":     PlainColor,
}

// TerminalColor maps a CSS color (a name or #rgb / #rrggbb) to a console color.
// Unknown values map to PlainColor.
func TerminalColor(css string) *color.Color {
	css = strings.ToLower(strings.TrimSpace(css))
	if c, ok := namedColors[css]; ok {
		return c
	}
	r, g, b, ok := parseHex(css)
	if !ok {
		return PlainColor
	}
	hi := max(r, g, b)
	lo := min(r, g, b)
	if hi-lo < 0x30 {
		if hi < 0x20 || hi > 0xd0 {
			return PlainColor
		}
		return GrayColor
	}
	// A channel counts when it is close to the strongest one.
	strong := func(v int) bool { return v*10 >= hi*6 }
	switch {
	case strong(r) && strong(g):
		return YellowColor
	case strong(g) && strong(b):
		return CyanColor
	case strong(r) && strong(b):
		return MagentaColor
	case r == hi:
		return RedColor
	case g == hi:
		return GreenColor
	default:
		return BlueColor
	}
}

func parseHex(s string) (r, g, b int, ok bool) {
	hex, found := strings.CutPrefix(s, "#")
	if !found {
		return 0, 0, 0, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// ColorizeSeries returns the label painted in the series color when enabled.
func ColorizeSeries(label, css string, enabled bool) string {
	if !enabled {
		return label
	}
	return TerminalColor(css).Sprint(label)
}

// FormatValue renders a number with the given decimal precision, trimming
// trailing zeros so 12.0 prints as 12.
func FormatValue(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParsePalette parses a string like "plan=#00f,actual=green" into a map of
// series key to color.
func ParsePalette(s string) (map[string]string, error) {
	palette := make(map[string]string)
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !found || key == "" || value == "" {
			return nil, fmt.Errorf("invalid palette entry '%s', expected 'series=color'", part)
		}
		palette[key] = value
	}
	return palette, nil
}
