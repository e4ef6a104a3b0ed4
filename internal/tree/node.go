// Package tree models a window-manager tree snapshot and the read-only
// queries the labeller runs over it.
package tree

// ScratchWorkspace is the name i3 and sway give the hidden workspace that
// holds scratchpad windows.
const ScratchWorkspace = "__i3_scratch"

// Kind is the role a node plays in the tree.
type Kind string

const (
	KindRoot      Kind = "root"
	KindOutput    Kind = "output"
	KindWorkspace Kind = "workspace"
	KindContainer Kind = "container"
	KindFloating  Kind = "floating"
	KindWindow    Kind = "window"
)

// Layout is how a container arranges its tiled children.
type Layout string

const (
	LayoutNone    Layout = "none"
	LayoutSplitH  Layout = "splith"
	LayoutSplitV  Layout = "splitv"
	LayoutTabbed  Layout = "tabbed"
	LayoutStacked Layout = "stacked"
)

// Horizontal reports whether children are laid out left to right.
// Tabbed containers count as horizontal: their tabs read left to right.
func (l Layout) Horizontal() bool {
	return l == LayoutSplitH || l == LayoutTabbed
}

// Vertical reports whether children are laid out top to bottom.
func (l Layout) Vertical() bool {
	return l == LayoutSplitV || l == LayoutStacked
}

// AppIdentity identifies the application behind a window. ID is the
// Wayland app_id; Class and Instance come from X11 WM_CLASS.
type AppIdentity struct {
	ID       string
	Class    string
	Instance string
}

// Resolve returns the primary identifier, falling back to class and then
// instance. It returns "" when none is set.
func (a AppIdentity) Resolve() string {
	for _, v := range []string{a.ID, a.Class, a.Instance} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Node is one element of a snapshot. Each node owns its children outright;
// there are no back-pointers, parents are found by scanning.
type Node struct {
	ID            int64
	Kind          Kind
	Layout        Layout
	Name          string
	Nodes         []*Node
	FloatingNodes []*Node
	Focused       bool

	// Num is only set on workspace nodes.
	Num *int

	// App and Title are only set on windows.
	App   AppIdentity
	Title string
}

// IsWorkspace reports whether n is a workspace other than the scratch area.
func (n *Node) IsWorkspace() bool {
	return n.Kind == KindWorkspace && n.Name != ScratchWorkspace
}

// IsScratch reports whether n is the hidden scratch workspace.
func (n *Node) IsScratch() bool {
	return n.Kind == KindWorkspace && n.Name == ScratchWorkspace
}

// IsFloating reports whether n is a floating container.
func (n *Node) IsFloating() bool {
	return n.Kind == KindFloating
}

// WorkspaceNumber returns the workspace number, or ErrMissingWorkspaceNumber
// when the window manager did not provide one.
func (n *Node) WorkspaceNumber() (int, error) {
	if n.Num == nil || *n.Num < 0 {
		return 0, &NodeError{ID: n.ID, Err: ErrMissingWorkspaceNumber}
	}
	return *n.Num, nil
}

// WorkspaceName returns the workspace's current name.
func (n *Node) WorkspaceName() (string, error) {
	if n.Name == "" {
		return "", &NodeError{ID: n.ID, Err: ErrMissingWorkspaceName}
	}
	return n.Name, nil
}

// IndexOf returns the position of the child with the given id in Nodes,
// or -1 when it is not a tiled child of n.
func (n *Node) IndexOf(id int64) int {
	for i, child := range n.Nodes {
		if child.ID == id {
			return i
		}
	}
	return -1
}

// hasChild reports whether id is a direct tiled or floating child of n.
func (n *Node) hasChild(id int64) bool {
	for _, child := range n.Nodes {
		if child.ID == id {
			return true
		}
	}
	for _, child := range n.FloatingNodes {
		if child.ID == id {
			return true
		}
	}
	return false
}
