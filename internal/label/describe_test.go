package label

import (
	"testing"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/tree"
)

func loadFixture(t *testing.T) *tree.Node {
	t.Helper()
	root, err := tree.ReadSnapshotFile("testdata/i3.jsonc")
	if err != nil {
		t.Fatalf("ReadSnapshotFile: %v", err)
	}
	return root
}

func mustFind(t *testing.T, root *tree.Node, id int64) *tree.Node {
	t.Helper()
	n, ok := tree.FindByID(root, id)
	if !ok {
		t.Fatalf("node %d not in fixture", id)
	}
	return n
}

func fixtureLabeller() *Labeller {
	cfg := plainConfig()
	cfg.Icons = map[string]string{"Code": "C", "gthumb": "G"}
	return New(cfg)
}

func TestDescribe(t *testing.T) {
	g := config.BuiltinGlyphs()
	root := loadFixture(t)
	l := fixtureLabeller()

	tests := []struct {
		name        string
		target      int64
		window      int64
		isWorkspace bool
		want        string
	}{
		{"tiled window with escaped title", 13, 13, false,
			"3?" + g.BarUnfocused + g.BarUnfocused + g.BarFocused + " x&lt;y&gt;"},
		{"first of three", 11, 11, false,
			"3C" + g.BarFocused + g.BarUnfocused + g.BarUnfocused + " main.go - Code"},
		{"floating window inside wrapper", 51, 50, false, "3G" + g.Floating + " photo.png"},
		{"sole window of vertical workspace", 31, 31, false, "4C" + g.Single + " notes"},
		{"workspace itself", 10, 10, true, "3+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := l.Describe(root, mustFind(t, root, tt.target))
			if err != nil {
				t.Fatalf("Describe: %v", err)
			}
			if d.Label != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, d.Label)
			}
			if d.IsWorkspace != tt.isWorkspace {
				t.Fatalf("expected IsWorkspace=%v, got %v", tt.isWorkspace, d.IsWorkspace)
			}
			if !tt.isWorkspace && d.Layout.Text == "" {
				t.Fatalf("expected a layout glyph")
			}
			if tt.window != tt.target && d.Parent == nil {
				t.Fatalf("expected wrapper parent to be resolved")
			}
		})
	}
}

func TestDescribe_CurrentName(t *testing.T) {
	root := loadFixture(t)
	d, err := fixtureLabeller().Describe(root, mustFind(t, root, 12))
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if d.CurrentName != "3" || d.Number != 3 || d.Workspace.ID != 10 {
		t.Fatalf("unexpected workspace info: name=%q num=%d ws=%d", d.CurrentName, d.Number, d.Workspace.ID)
	}
	if d.AppID != "Chromium" {
		t.Fatalf("expected class fallback, got %q", d.AppID)
	}
	if d.Position != 1 || len(d.Siblings) != 3 || d.Parent.ID != 10 {
		t.Fatalf("expected position 1 of 3 under workspace, got %d of %d", d.Position, len(d.Siblings))
	}
}

func TestDescribe_MissingNumber(t *testing.T) {
	root := loadFixture(t)
	_, err := fixtureLabeller().Describe(root, mustFind(t, root, 21))
	if err == nil {
		t.Fatalf("expected error for workspace without number")
	}
	if !tree.IsDataIntegrity(err) {
		t.Fatalf("expected data integrity error, got %v", err)
	}
}

func TestDescribe_OutsideWorkspace(t *testing.T) {
	root := loadFixture(t)
	if _, err := fixtureLabeller().Describe(root, root); err == nil {
		t.Fatalf("expected error labelling the root")
	}
}

func TestDescribe_Idempotent(t *testing.T) {
	root := loadFixture(t)
	l := fixtureLabeller()
	target := mustFind(t, root, 13)

	first, err := l.Describe(root, target)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	second, err := l.Describe(root, target)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if first.Label != second.Label {
		t.Fatalf("labels differ: %q vs %q", first.Label, second.Label)
	}
}

func TestDescribe_IgnoresOtherWorkspaces(t *testing.T) {
	root := loadFixture(t)
	l := fixtureLabeller()
	target := mustFind(t, root, 13)

	before, err := l.Describe(root, target)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}

	other := mustFind(t, root, 30)
	other.Nodes = append(other.Nodes, &tree.Node{ID: 99, Kind: tree.KindWindow, App: tree.AppIdentity{ID: "firefox"}})
	other.Layout = tree.LayoutTabbed

	after, err := l.Describe(root, target)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if before.Label != after.Label {
		t.Fatalf("label changed with another workspace: %q vs %q", before.Label, after.Label)
	}
}
