package tree

import (
	"path/filepath"
	"strings"
	"testing"
)

func loadSession(t *testing.T) *Node {
	t.Helper()
	root, err := ReadSnapshotFile(filepath.Join("testdata", "session.jsonc"))
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	return root
}

func TestReadSnapshotFile_Kinds(t *testing.T) {
	root := loadSession(t)

	tests := []struct {
		id   int64
		kind Kind
	}{
		{1, KindRoot},
		{4, KindOutput},
		{10, KindWorkspace},
		{11, KindWindow},
		{12, KindContainer},
		{15, KindFloating},
		{30, KindFloating},
	}
	for _, tt := range tests {
		n, ok := FindByID(root, tt.id)
		if !ok {
			t.Fatalf("node %d not found", tt.id)
		}
		if n.Kind != tt.kind {
			t.Errorf("node %d: expected kind %q, got %q", tt.id, tt.kind, n.Kind)
		}
	}
}

func TestReadSnapshotFile_WindowMetadata(t *testing.T) {
	root := loadSession(t)

	ff, _ := FindByID(root, 11)
	if ff.App.ID != "firefox" || ff.Title != "Mozilla Firefox" {
		t.Fatalf("expected firefox window, got %+v", ff)
	}

	tb, _ := FindByID(root, 41)
	if tb.App.ID != "" {
		t.Fatalf("expected null app_id to decode as empty, got %q", tb.App.ID)
	}
	if got := tb.App.Resolve(); got != "thunderbird" {
		t.Fatalf("expected class fallback %q, got %q", "thunderbird", got)
	}
	if tb.Title != "Inbox - Thunderbird" {
		t.Fatalf("expected name to win over window_properties.title, got %q", tb.Title)
	}

	split, _ := FindByID(root, 12)
	if split.Layout != LayoutSplitV {
		t.Fatalf("expected splitv, got %q", split.Layout)
	}
	if split.Title != "" || split.App.Resolve() != "" {
		t.Fatalf("expected containers to carry no window metadata, got %+v", split)
	}
}

func TestReadSnapshotFile_WorkspaceNumbers(t *testing.T) {
	root := loadSession(t)

	ws, _ := FindByID(root, 10)
	num, err := ws.WorkspaceNumber()
	if err != nil || num != 1 {
		t.Fatalf("expected workspace number 1, got %d (%v)", num, err)
	}

	named, _ := FindByID(root, 40)
	if _, err := named.WorkspaceNumber(); !IsDataIntegrity(err) {
		t.Fatalf("expected data integrity error for num=-1, got %v", err)
	}
}

func TestUnmarshal_RejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestReadSnapshotFile_MissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	_, err := ReadSnapshotFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error mentioning %s, got %v", path, err)
	}
}
