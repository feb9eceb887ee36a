package wallpaper

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports a background color string that is not a hex RGB
// triple such as "#1F241F".
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor parses a "#RRGGBB" color (the leading '#' is optional) into
// an opaque NRGBA. Short "#RGB" form is accepted too.
func ParseHexColor(s string) (color.NRGBA, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ContrastMode selects how line-art pixels are tone-mapped so they stay
// visible against the chosen background color.
type ContrastMode int

const (
	// ContrastLight inverts line-art luminance, for dark backgrounds.
	ContrastLight ContrastMode = iota
	// ContrastDark leaves line art untouched, for light backgrounds.
	ContrastDark
)

func (m ContrastMode) String() string {
	if m == ContrastDark {
		return "dark"
	}
	return "light"
}

// ParseContrastMode parses "light" or "dark" (case-insensitive).
func ParseContrastMode(s string) (ContrastMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ContrastLight, nil
	case "dark":
		return ContrastDark, nil
	}
	return ContrastLight, fmt.Errorf("invalid foreground mode %q (want light or dark)", s)
}
