// Package style parses prompt style strings such as "bold fg:#E95420 bg:blue"
// and renders text with them through lipgloss.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is a parsed style descriptor. The zero value renders text unchanged.
type Style struct {
	Foreground    string
	Background    string
	Bold          bool
	Italic        bool
	Underline     bool
	Dimmed        bool
	Inverted      bool
	Blink         bool
	Strikethrough bool
}

// namedColors maps color names onto ANSI palette indices.
var namedColors = map[string]int{
	"black":  0,
	"red":    1,
	"green":  2,
	"yellow": 3,
	"blue":   4,
	"purple": 5,
	"cyan":   6,
	"white":  7,
}

// Parse parses a whitespace separated style string. Tokens are case
// insensitive. "none" resets everything parsed so far.
func Parse(s string) (Style, error) {
	var st Style
	for _, token := range strings.Fields(s) {
		token = strings.ToLower(token)
		switch token {
		case "none":
			st = Style{}
		case "bold":
			st.Bold = true
		case "italic":
			st.Italic = true
		case "underline":
			st.Underline = true
		case "dimmed":
			st.Dimmed = true
		case "inverted":
			st.Inverted = true
		case "blink":
			st.Blink = true
		case "strikethrough":
			st.Strikethrough = true
		default:
			if err := st.applyColor(token); err != nil {
				return Style{}, err
			}
		}
	}
	return st, nil
}

func (st *Style) applyColor(token string) error {
	target := &st.Foreground
	switch {
	case strings.HasPrefix(token, "fg:"):
		token = strings.TrimPrefix(token, "fg:")
	case strings.HasPrefix(token, "bg:"):
		token = strings.TrimPrefix(token, "bg:")
		target = &st.Background
	}

	if token == "none" {
		*target = ""
		return nil
	}
	color, err := parseColor(token)
	if err != nil {
		return err
	}
	*target = color
	return nil
}

// parseColor converts a color token into a lipgloss color value.
func parseColor(token string) (string, error) {
	if strings.HasPrefix(token, "#") {
		hex := token[1:]
		if len(hex) != 6 {
			return "", fmt.Errorf("invalid hex color %q", token)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", fmt.Errorf("invalid hex color %q", token)
		}
		return token, nil
	}

	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("color index %d out of range", n)
		}
		return strconv.Itoa(n), nil
	}

	name := strings.TrimPrefix(token, "bright-")
	idx, ok := namedColors[name]
	if !ok {
		return "", fmt.Errorf("unknown style token %q", token)
	}
	if name != token {
		idx += 8
	}
	return strconv.Itoa(idx), nil
}

// IsZero reports whether st applies no styling at all.
func (st Style) IsZero() bool {
	return st == Style{}
}

// Lipgloss converts st into a lipgloss style.
func (st Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if st.Foreground != "" {
		ls = ls.Foreground(lipgloss.Color(st.Foreground))
	}
	if st.Background != "" {
		ls = ls.Background(lipgloss.Color(st.Background))
	}
	return ls.
		Bold(st.Bold).
		Italic(st.Italic).
		Underline(st.Underline).
		Faint(st.Dimmed).
		Reverse(st.Inverted).
		Blink(st.Blink).
		Strikethrough(st.Strikethrough)
}

// Render applies st to text. Unstyled text is returned as is.
func (st Style) Render(text string) string {
	if st.IsZero() || text == "" {
		return text
	}
	return st.Lipgloss().Render(text)
}
