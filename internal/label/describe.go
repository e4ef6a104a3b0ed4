package label

import (
	"errors"
	"fmt"

	"github.com/1broseidon/swaylabel/internal/tree"
)

// Description is everything that went into one label.
type Description struct {
	Workspace   *tree.Node
	Number      int
	CurrentName string
	Window      *tree.Node
	Parent      *tree.Node
	Siblings    []*tree.Node
	Position    int
	IsWorkspace bool
	AppID       string
	App         Glyph
	Layout      Glyph
	Label       string
}

// Describe locates target in root and computes the label of its workspace
// as seen from target.
func (l *Labeller) Describe(root, target *tree.Node) (*Description, error) {
	ws, err := tree.FindWorkspace(root, target)
	if err != nil {
		return nil, err
	}
	number, err := ws.WorkspaceNumber()
	if err != nil {
		return nil, err
	}
	name, err := ws.WorkspaceName()
	if err != nil {
		return nil, err
	}

	d := &Description{
		Workspace:   ws,
		Number:      number,
		CurrentName: name,
		Window:      target,
		Position:    -1,
		AppID:       target.App.Resolve(),
		App:         l.AppGlyph(target.App),
		IsWorkspace: target.ID == ws.ID,
	}

	if !d.IsWorkspace {
		if err := l.place(root, d); err != nil {
			return nil, err
		}
	}

	d.Label = l.Compose(d.Number, d.App, d.Layout, target.Title, d.IsWorkspace)
	return d, nil
}

// place fills in the parent, siblings and layout glyph. A window whose parent
// cannot be found is labelled as if it were the workspace itself.
func (l *Labeller) place(root *tree.Node, d *Description) error {
	window := d.Window
	parent, err := tree.FindParent(root, window)
	if errors.Is(err, tree.ErrParentNotFound) {
		d.IsWorkspace = true
		return nil
	}
	if err != nil {
		return err
	}

	// i3 wraps floating windows in a floating container; label the wrapper.
	if parent.IsFloating() && !window.IsFloating() {
		window = parent
		parent, err = tree.FindParent(root, window)
		if err != nil {
			return fmt.Errorf("floating container of window %d: %w", d.Window.ID, err)
		}
	}

	siblings := parent.Nodes
	if window.IsFloating() {
		siblings = parent.FloatingNodes
	}

	d.Parent = parent
	d.Siblings = siblings
	d.Position = position(window, siblings)
	d.Layout = l.LayoutGlyph(window, parent, len(siblings), siblings)
	return nil
}
