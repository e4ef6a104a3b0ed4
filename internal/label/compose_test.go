package label

import (
	"testing"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/tree"
)

func plainConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Icons = map[string]string{"foot": "T", "firefox": "F"}
	cfg.Glyphs.Empty = "+"
	cfg.Glyphs.Unknown = "?"
	cfg.LayoutStyle = config.LayoutStyle{}
	cfg.IconStyle = config.IconStyle{}
	cfg.TitleStyle = ""
	return cfg
}

func TestPlaceholder(t *testing.T) {
	l := New(plainConfig())
	if got := l.Placeholder(3); got != "3+" {
		t.Fatalf("expected %q, got %q", "3+", got)
	}

	styled := New(config.DefaultConfig())
	want := "3<span alpha='60%'>" + config.BuiltinGlyphs().Empty + "</span>"
	if got := styled.Placeholder(3); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCompose(t *testing.T) {
	l := New(plainConfig())
	app := Glyph{Text: "F"}
	layout := Glyph{Text: "<>"}

	if got := l.Compose(1, app, layout, "Mozilla Firefox", false); got != "1F<> Mozilla Firefox" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := l.Compose(1, app, layout, "Mozilla Firefox", true); got != "1F" {
		t.Fatalf("expected workspace label without suffix, got %q", got)
	}
	if got := l.Compose(1, app, layout, "", false); got != "1F<>" {
		t.Fatalf("expected no title separator for empty title, got %q", got)
	}
}

func TestCompose_Styled(t *testing.T) {
	cfg := plainConfig()
	cfg.TitleStyle = "size='small'"
	l := New(cfg)

	got := l.Compose(2, Glyph{Text: "F", Style: "font='x'"}, Glyph{Text: "|", Style: "weight='bold'"}, "a", false)
	want := "2<span font='x'>F</span><span weight='bold'>|</span> <span size='small'>a</span>"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCompose_TitleEscapedAndTruncated(t *testing.T) {
	cfg := plainConfig()
	cfg.Title.MaxLength = 6
	l := New(cfg)

	got := l.Compose(1, Glyph{Text: "F"}, Glyph{}, "<b>&co", false)
	if got != "1F &lt;b&gt;&amp;co" {
		t.Fatalf("unexpected escaping: %q", got)
	}

	got = l.Compose(1, Glyph{Text: "F"}, Glyph{}, "ünïcödé title", false)
	if got != "1F ünïcö…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestCompose_TitleHidden(t *testing.T) {
	cfg := plainConfig()
	cfg.Title.Show = false
	l := New(cfg)

	if got := l.Compose(4, Glyph{Text: "F"}, Glyph{Text: "|"}, "title", false); got != "4F|" {
		t.Fatalf("expected title omitted, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"abc", 0, "abc"},
		{"abc", 3, "abc"},
		{"abcd", 3, "ab…"},
		{"abcd", 1, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPlaceholder_MatchesEmptyWorkspaceDescription(t *testing.T) {
	num := 7
	ws := &tree.Node{ID: 2, Kind: tree.KindWorkspace, Name: "7", Num: &num, Focused: true}
	root := &tree.Node{ID: 1, Kind: tree.KindRoot, Nodes: []*tree.Node{ws}}

	l := New(plainConfig())
	d, err := l.Describe(root, ws)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if d.Label != l.Placeholder(7) {
		t.Fatalf("expected empty workspace label %q, got %q", l.Placeholder(7), d.Label)
	}
}
