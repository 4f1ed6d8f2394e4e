// Package markup understands the inline <color=#RRGGBB> tags that console
// lines may carry and renders them for ANSI terminals.
package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var tagPattern = regexp.MustCompile(`<color=(#[0-9A-Fa-f]{6})>`)

// Span is a run of text drawn in one color.
type Span struct {
	Text  string
	Color string
}

// Parse splits text into spans. Text before the first tag uses base. Tags
// that are not six digit hex colors stay in the text as written.
func Parse(text, base string) []Span {
	var spans []Span
	color := base
	last := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]], Color: color})
		}
		color = strings.ToUpper(text[m[2]:m[3]])
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:], Color: color})
	}
	return spans
}

// Strip removes every color tag from text.
func Strip(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// ANSI renders text with 24-bit foreground escapes and a trailing reset.
func ANSI(text, base string) string {
	var b strings.Builder
	for _, s := range Parse(text, base) {
		if esc, ok := foreground(s.Color); ok {
			b.WriteString(esc)
		}
		b.WriteString(s.Text)
	}
	b.WriteString("\033[0m")
	return b.String()
}

func foreground(hex string) (string, bool) {
	r, g, bl, ok := RGB(hex)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, bl), true
}

// RGB decodes a #RRGGBB color.
func RGB(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
