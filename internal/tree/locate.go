package tree

// frame is one pending visit on the traversal stack.
type frame struct {
	node   *Node
	parent *Node
}

// walk visits root and every node below it depth-first, tiled children
// before floating children, each in order. It stops as soon as visit
// returns false. The traversal uses an explicit stack so very deep trees
// cannot exhaust the goroutine stack.
func walk(root *Node, visit func(n, parent *Node) bool) {
	if root == nil {
		return
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(top.node, top.parent) {
			return
		}
		n := top.node
		for i := len(n.FloatingNodes) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: n.FloatingNodes[i], parent: n})
		}
		for i := len(n.Nodes) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: n.Nodes[i], parent: n})
		}
	}
}

// FindFocused returns the node marked as focused.
func FindFocused(root *Node) (*Node, error) {
	var found *Node
	walk(root, func(n, _ *Node) bool {
		if n.Focused {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, ErrFocusNotFound
	}
	return found, nil
}

// FindByID returns the node with the given id.
func FindByID(root *Node, id int64) (*Node, bool) {
	var found *Node
	walk(root, func(n, _ *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// FindParent returns the node whose tiled or floating children directly
// contain target. The root has no parent.
func FindParent(root, target *Node) (*Node, error) {
	if target == nil {
		return nil, ErrParentNotFound
	}
	var found *Node
	walk(root, func(n, _ *Node) bool {
		if n.hasChild(target.ID) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, &NodeError{ID: target.ID, Err: ErrParentNotFound}
	}
	return found, nil
}

// FindWorkspace returns the nearest workspace ancestor of target, which may
// be target itself. The scratch workspace is never returned.
func FindWorkspace(root, target *Node) (*Node, error) {
	if target == nil {
		return nil, ErrWorkspaceNotFound
	}

	parents := make(map[int64]*Node)
	var found *Node
	walk(root, func(n, parent *Node) bool {
		if parent != nil {
			parents[n.ID] = parent
		}
		if n.ID == target.ID {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, &NodeError{ID: target.ID, Err: ErrWorkspaceNotFound}
	}

	for n := found; n != nil; n = parents[n.ID] {
		if n.IsWorkspace() {
			return n, nil
		}
	}
	return nil, &NodeError{ID: target.ID, Err: ErrWorkspaceNotFound}
}

// Workspaces returns every workspace in tree order, skipping the scratch
// workspace.
func Workspaces(root *Node) []*Node {
	var out []*Node
	walk(root, func(n, _ *Node) bool {
		if n.IsWorkspace() {
			out = append(out, n)
		}
		return true
	})
	return out
}
