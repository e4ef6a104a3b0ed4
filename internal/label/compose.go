package label

import (
	"html"
	"strconv"
	"strings"
)

const ellipsis = "…"

// Compose builds the workspace name. The number and app icon are always
// present; the layout glyph and title follow only when the labelled node is
// a real window rather than the workspace standing in for itself.
func (l *Labeller) Compose(number int, app, layout Glyph, title string, isWorkspace bool) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(number))
	b.WriteString(span(app.Style, app.Text))
	if isWorkspace {
		return b.String()
	}

	b.WriteString(span(layout.Style, layout.Text))
	if l.title.Show && title != "" {
		b.WriteString(" ")
		b.WriteString(span(l.titleStyle, html.EscapeString(truncate(title, l.title.MaxLength))))
	}
	return b.String()
}

// Placeholder is the label of a workspace that has no window yet.
func (l *Labeller) Placeholder(number int) string {
	return l.Compose(number, Glyph{Text: l.glyphs.Empty, Style: l.iconStyle.Empty}, Glyph{}, "", true)
}

// span wraps text in a Pango span. Glyph text is trusted markup from the
// configuration and is not escaped here.
func span(style, text string) string {
	if text == "" {
		return ""
	}
	if style == "" {
		return text
	}
	return "<span " + style + ">" + text + "</span>"
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return ellipsis
	}
	return string(runes[:max-1]) + ellipsis
}
