// Package label turns a window and its place in the tree into a workspace
// name: the workspace number, an application icon, a glyph describing the
// layout around the window and the window title, as Pango markup.
package label

import (
	"strings"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/tree"
)

// Category groups layout glyphs that share a style.
type Category string

const (
	CategoryNone       Category = ""
	CategorySingle     Category = "single"
	CategoryHorizontal Category = "horizontal"
	CategoryVertical   Category = "vertical"
	CategoryFloating   Category = "floating"
)

// Glyph is a symbol plus the span attributes it is rendered with.
type Glyph struct {
	Text     string
	Style    string
	Category Category
}

// Labeller resolves glyphs and composes labels from one configuration. Build
// a new one per cycle so config reloads take effect between events.
type Labeller struct {
	icons       map[string]string
	glyphs      config.Glyphs
	layoutStyle config.LayoutStyle
	iconStyle   config.IconStyle
	titleStyle  string
	title       config.TitleConfig
}

// New returns a Labeller for cfg. A nil cfg means the built-in defaults.
func New(cfg *config.Config) *Labeller {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Labeller{
		icons:       cfg.Icons,
		glyphs:      cfg.Glyphs,
		layoutStyle: cfg.LayoutStyle,
		iconStyle:   cfg.IconStyle,
		titleStyle:  cfg.TitleStyle,
		title:       cfg.Title,
	}
}

// AppGlyph returns the icon for an application. Windows with no identifier
// at all get the empty-workspace icon; unknown identifiers get the unknown
// icon.
func (l *Labeller) AppGlyph(app tree.AppIdentity) Glyph {
	id := app.Resolve()
	if id == "" {
		return Glyph{Text: l.glyphs.Empty, Style: l.iconStyle.Empty}
	}
	if icon, ok := l.icons[id]; ok {
		return Glyph{Text: icon, Style: l.iconStyle.Known}
	}
	return Glyph{Text: l.glyphs.Unknown, Style: l.iconStyle.Unknown}
}

// LayoutGlyph describes the shape of the layout around window. siblings is
// the list window belongs to (its parent's floating children when window
// floats, its tiled children otherwise) and siblingCount its length.
//
// Horizontal containers with three or more children get one bar per child;
// vertical ones get a single fixed glyph regardless of position.
func (l *Labeller) LayoutGlyph(window, parent *tree.Node, siblingCount int, siblings []*tree.Node) Glyph {
	if window.IsFloating() {
		for _, s := range siblings {
			if s.ID != window.ID && s.IsFloating() {
				return l.layout(CategoryFloating, l.glyphs.FloatingPeers)
			}
		}
		return l.layout(CategoryFloating, l.glyphs.Floating)
	}

	if siblingCount == 1 {
		return l.layout(CategorySingle, l.glyphs.Single)
	}
	if parent == nil {
		return Glyph{}
	}

	switch {
	case parent.Layout.Horizontal():
		if siblingCount == 2 {
			if position(window, siblings) == 0 {
				return l.layout(CategoryHorizontal, l.glyphs.Left)
			}
			return l.layout(CategoryHorizontal, l.glyphs.Right)
		}
		var bars strings.Builder
		for _, s := range siblings {
			if s.ID == window.ID {
				bars.WriteString(l.glyphs.BarFocused)
			} else {
				bars.WriteString(l.glyphs.BarUnfocused)
			}
		}
		return l.layout(CategoryHorizontal, bars.String())

	case parent.Layout.Vertical():
		if siblingCount == 2 {
			if position(window, siblings) == 0 {
				return l.layout(CategoryVertical, l.glyphs.Top)
			}
			return l.layout(CategoryVertical, l.glyphs.Bottom)
		}
		return l.layout(CategoryVertical, l.glyphs.ManyVertical)
	}

	return Glyph{}
}

func (l *Labeller) layout(cat Category, text string) Glyph {
	var style string
	switch cat {
	case CategorySingle:
		style = l.layoutStyle.Single
	case CategoryHorizontal:
		style = l.layoutStyle.Horizontal
	case CategoryVertical:
		style = l.layoutStyle.Vertical
	case CategoryFloating:
		style = l.layoutStyle.Floating
	}
	return Glyph{Text: text, Style: style, Category: cat}
}

func position(window *tree.Node, siblings []*tree.Node) int {
	for i, s := range siblings {
		if s.ID == window.ID {
			return i
		}
	}
	return -1
}
