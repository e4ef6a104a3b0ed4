package tree

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// rawNode mirrors the get_tree reply shared by i3 and sway.
type rawNode struct {
	ID               int64             `json:"id"`
	Type             string            `json:"type"`
	Layout           string            `json:"layout"`
	Name             *string           `json:"name"`
	Num              *int              `json:"num"`
	Focused          bool              `json:"focused"`
	AppID            *string           `json:"app_id"`
	WindowProperties *windowProperties `json:"window_properties"`
	Nodes            []*rawNode        `json:"nodes"`
	FloatingNodes    []*rawNode        `json:"floating_nodes"`
}

type windowProperties struct {
	Class    string `json:"class"`
	Instance string `json:"instance"`
	Title    string `json:"title"`
}

// Unmarshal decodes a get_tree reply, or any single node from an event
// payload, into a Node hierarchy.
func Unmarshal(data []byte) (*Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	return convert(&raw), nil
}

// ReadSnapshotFile loads a saved get_tree dump. The file may contain
// comments and trailing commas.
func ReadSnapshotFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}
	root, err := Unmarshal(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func convert(raw *rawNode) *Node {
	type pending struct {
		raw *rawNode
		dst *Node
	}

	root := &Node{}
	stack := []pending{{raw: raw, dst: root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fill(p.dst, p.raw)

		p.dst.Nodes = make([]*Node, 0, len(p.raw.Nodes))
		for _, child := range p.raw.Nodes {
			if child == nil {
				continue
			}
			n := &Node{}
			p.dst.Nodes = append(p.dst.Nodes, n)
			stack = append(stack, pending{raw: child, dst: n})
		}
		p.dst.FloatingNodes = make([]*Node, 0, len(p.raw.FloatingNodes))
		for _, child := range p.raw.FloatingNodes {
			if child == nil {
				continue
			}
			n := &Node{}
			p.dst.FloatingNodes = append(p.dst.FloatingNodes, n)
			stack = append(stack, pending{raw: child, dst: n})
		}
	}
	return root
}

func fill(dst *Node, raw *rawNode) {
	dst.ID = raw.ID
	dst.Focused = raw.Focused
	dst.Layout = parseLayout(raw.Layout)
	if raw.Name != nil {
		dst.Name = *raw.Name
	}

	leaf := len(raw.Nodes) == 0 && len(raw.FloatingNodes) == 0
	switch raw.Type {
	case "root":
		dst.Kind = KindRoot
	case "output":
		dst.Kind = KindOutput
	case "workspace":
		dst.Kind = KindWorkspace
		if raw.Num != nil {
			num := *raw.Num
			dst.Num = &num
		}
	case "floating_con":
		dst.Kind = KindFloating
	default:
		if leaf {
			dst.Kind = KindWindow
		} else {
			dst.Kind = KindContainer
		}
	}

	if leaf && (dst.Kind == KindWindow || dst.Kind == KindFloating) {
		if raw.AppID != nil {
			dst.App.ID = *raw.AppID
		}
		if wp := raw.WindowProperties; wp != nil {
			dst.App.Class = wp.Class
			dst.App.Instance = wp.Instance
			dst.Title = wp.Title
		}
		if dst.Name != "" {
			dst.Title = dst.Name
		}
	}
}

func parseLayout(s string) Layout {
	switch Layout(s) {
	case LayoutSplitH, LayoutSplitV, LayoutTabbed, LayoutStacked:
		return Layout(s)
	default:
		return LayoutNone
	}
}
