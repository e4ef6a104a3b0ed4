package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrFocusNotFound means the snapshot has no focused node.
	ErrFocusNotFound = errors.New("no focused node in tree")
	// ErrParentNotFound means the node is the root or is not in the tree.
	ErrParentNotFound = errors.New("parent not found")
	// ErrWorkspaceNotFound means the node has no workspace ancestor outside
	// the scratch area.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrMissingWorkspaceNumber means a workspace node carries no number.
	ErrMissingWorkspaceNumber = errors.New("workspace has no number")
	// ErrMissingWorkspaceName means a workspace node carries no name.
	ErrMissingWorkspaceName = errors.New("workspace has no name")
)

// NodeError attaches the id of the node a query was about.
type NodeError struct {
	ID  int64
	Err error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %d: %v", e.ID, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// IsDataIntegrity reports whether err means the window manager handed us a
// snapshot that breaks its own contract, as opposed to a plain lookup miss.
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrFocusNotFound) ||
		errors.Is(err, ErrMissingWorkspaceNumber) ||
		errors.Is(err, ErrMissingWorkspaceName)
}
