package label

import (
	"testing"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/tree"
)

func leaf(id int64, appID string) *tree.Node {
	return &tree.Node{ID: id, Kind: tree.KindWindow, App: tree.AppIdentity{ID: appID}}
}

func container(id int64, layout tree.Layout, children ...*tree.Node) *tree.Node {
	return &tree.Node{ID: id, Kind: tree.KindContainer, Layout: layout, Nodes: children}
}

func leaves(from int64, n int) []*tree.Node {
	out := make([]*tree.Node, n)
	for i := range out {
		out[i] = leaf(from+int64(i), "foot")
	}
	return out
}

func TestLayoutGlyph(t *testing.T) {
	g := config.BuiltinGlyphs()

	tests := []struct {
		name     string
		layout   tree.Layout
		count    int
		position int
		want     string
		category Category
	}{
		{"single child", tree.LayoutSplitH, 1, 0, g.Single, CategorySingle},
		{"single child vertical", tree.LayoutSplitV, 1, 0, g.Single, CategorySingle},
		{"horizontal pair left", tree.LayoutSplitH, 2, 0, g.Left, CategoryHorizontal},
		{"horizontal pair right", tree.LayoutSplitH, 2, 1, g.Right, CategoryHorizontal},
		{"tabbed pair right", tree.LayoutTabbed, 2, 1, g.Right, CategoryHorizontal},
		{"horizontal four, third focused", tree.LayoutSplitH, 4, 2,
			g.BarUnfocused + g.BarUnfocused + g.BarFocused + g.BarUnfocused, CategoryHorizontal},
		{"tabbed three, first focused", tree.LayoutTabbed, 3, 0,
			g.BarFocused + g.BarUnfocused + g.BarUnfocused, CategoryHorizontal},
		{"vertical pair top", tree.LayoutSplitV, 2, 0, g.Top, CategoryVertical},
		{"stacked pair bottom", tree.LayoutStacked, 2, 1, g.Bottom, CategoryVertical},
		{"vertical five, first", tree.LayoutSplitV, 5, 0, g.ManyVertical, CategoryVertical},
		{"vertical five, middle", tree.LayoutSplitV, 5, 2, g.ManyVertical, CategoryVertical},
		{"stacked five, last", tree.LayoutStacked, 5, 4, g.ManyVertical, CategoryVertical},
		{"unknown layout", tree.LayoutNone, 3, 1, "", CategoryNone},
	}

	l := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := leaves(10, tt.count)
			parent := container(1, tt.layout, children...)
			window := children[tt.position]

			got := l.LayoutGlyph(window, parent, len(children), children)
			if got.Text != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got.Text)
			}
			if got.Category != tt.category {
				t.Fatalf("expected category %q, got %q", tt.category, got.Category)
			}
		})
	}
}

func TestLayoutGlyph_HorizontalMarksDifferOnlyAtWindow(t *testing.T) {
	l := New(nil)
	children := leaves(10, 4)
	parent := container(1, tree.LayoutSplitH, children...)

	got := []rune(l.LayoutGlyph(children[2], parent, 4, children).Text)
	if len(got) != 4 {
		t.Fatalf("expected 4 marks, got %d (%q)", len(got), string(got))
	}
	for i, r := range got {
		if i == 2 {
			continue
		}
		if r == got[2] {
			t.Fatalf("mark %d equals the focused mark %q", i, string(got[2]))
		}
		if r != got[0] && i != 0 {
			t.Fatalf("unfocused marks differ: %q vs %q", string(r), string(got[0]))
		}
	}
}

func TestLayoutGlyph_Floating(t *testing.T) {
	g := config.BuiltinGlyphs()
	l := New(nil)

	alone := &tree.Node{ID: 5, Kind: tree.KindFloating}
	ws := &tree.Node{ID: 1, Kind: tree.KindWorkspace, FloatingNodes: []*tree.Node{alone}}
	got := l.LayoutGlyph(alone, ws, 1, ws.FloatingNodes)
	if got.Text != g.Floating || got.Category != CategoryFloating {
		t.Fatalf("expected single floating %q, got %+v", g.Floating, got)
	}

	peer := &tree.Node{ID: 6, Kind: tree.KindFloating}
	ws.FloatingNodes = append(ws.FloatingNodes, peer)
	got = l.LayoutGlyph(alone, ws, 2, ws.FloatingNodes)
	if got.Text != g.FloatingPeers {
		t.Fatalf("expected floating peers %q, got %q", g.FloatingPeers, got.Text)
	}
}

func TestLayoutGlyph_StyleFollowsCategory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LayoutStyle = config.LayoutStyle{Single: "s", Horizontal: "h", Vertical: "v", Floating: "f"}
	l := New(cfg)

	pair := leaves(10, 2)
	if got := l.LayoutGlyph(pair[0], container(1, tree.LayoutSplitH, pair...), 2, pair); got.Style != "h" {
		t.Fatalf("expected horizontal style, got %q", got.Style)
	}
	if got := l.LayoutGlyph(pair[0], container(1, tree.LayoutStacked, pair...), 2, pair); got.Style != "v" {
		t.Fatalf("expected vertical style, got %q", got.Style)
	}
	one := leaves(20, 1)
	if got := l.LayoutGlyph(one[0], container(2, tree.LayoutSplitV, one...), 1, one); got.Style != "s" {
		t.Fatalf("expected single style, got %q", got.Style)
	}
}

func TestAppGlyph(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Icons = map[string]string{"firefox": "F", "thunderbird": "T", "Mail": "M"}
	l := New(cfg)

	tests := []struct {
		name  string
		app   tree.AppIdentity
		want  string
		style string
	}{
		{"primary id", tree.AppIdentity{ID: "firefox"}, "F", cfg.IconStyle.Known},
		{"class fallback", tree.AppIdentity{Class: "thunderbird", Instance: "Mail"}, "T", cfg.IconStyle.Known},
		{"instance fallback", tree.AppIdentity{Instance: "Mail"}, "M", cfg.IconStyle.Known},
		{"primary wins over class", tree.AppIdentity{ID: "firefox", Class: "thunderbird"}, "F", cfg.IconStyle.Known},
		{"unknown id", tree.AppIdentity{ID: "mpv"}, cfg.Glyphs.Unknown, cfg.IconStyle.Unknown},
		{"no identity", tree.AppIdentity{}, cfg.Glyphs.Empty, cfg.IconStyle.Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.AppGlyph(tt.app)
			if got.Text != tt.want || got.Style != tt.style {
				t.Fatalf("expected %q/%q, got %q/%q", tt.want, tt.style, got.Text, got.Style)
			}
		})
	}
}
