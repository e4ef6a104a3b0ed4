package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/swaylabel/internal/label"
	"github.com/1broseidon/swaylabel/internal/tree"
)

func (s *Server) handleListWorkspaces(ctx context.Context, _ *mcpsdk.CallToolRequest, _ ListWorkspacesInput) (*mcpsdk.CallToolResult, ListWorkspacesOutput, error) {
	root, err := s.trees.Tree(ctx)
	if err != nil {
		return nil, ListWorkspacesOutput{}, fmt.Errorf("fetch tree: %w", err)
	}

	var focusedWS int64 = -1
	if focused, err := tree.FindFocused(root); err == nil {
		if ws, err := tree.FindWorkspace(root, focused); err == nil {
			focusedWS = ws.ID
		}
	}

	out := ListWorkspacesOutput{Workspaces: []WorkspaceInfo{}}
	for _, ws := range tree.Workspaces(root) {
		info := WorkspaceInfo{
			ID:      ws.ID,
			Name:    ws.Name,
			Focused: ws.ID == focusedWS,
			Windows: countWindows(ws),
		}
		if n, err := ws.WorkspaceNumber(); err == nil {
			info.Number = &n
		}
		out.Workspaces = append(out.Workspaces, info)
	}
	return nil, out, nil
}

func countWindows(ws *tree.Node) int {
	count := 0
	stack := []*tree.Node{ws}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// sway floating windows are childless floating containers.
		if n.Kind == tree.KindWindow || (n.IsFloating() && len(n.Nodes) == 0) {
			count++
		}
		stack = append(stack, n.Nodes...)
		stack = append(stack, n.FloatingNodes...)
	}
	return count
}

func (s *Server) handleExplainLabel(ctx context.Context, _ *mcpsdk.CallToolRequest, args ExplainLabelInput) (*mcpsdk.CallToolResult, ExplainLabelOutput, error) {
	root, err := s.trees.Tree(ctx)
	if err != nil {
		return nil, ExplainLabelOutput{}, fmt.Errorf("fetch tree: %w", err)
	}

	var target *tree.Node
	if args.WindowID != 0 {
		n, ok := tree.FindByID(root, args.WindowID)
		if !ok {
			return nil, ExplainLabelOutput{}, fmt.Errorf("no container with id %d", args.WindowID)
		}
		target = n
	} else {
		target, err = tree.FindFocused(root)
		if err != nil {
			return nil, ExplainLabelOutput{}, err
		}
	}

	d, err := label.New(s.config).Describe(root, target)
	if err != nil {
		return nil, ExplainLabelOutput{}, err
	}

	out := ExplainLabelOutput{
		WindowID:        target.ID,
		WorkspaceID:     d.Workspace.ID,
		WorkspaceNumber: d.Number,
		CurrentName:     d.CurrentName,
		IsWorkspace:     d.IsWorkspace,
		AppID:           d.AppID,
		SiblingCount:    len(d.Siblings),
		Position:        d.Position,
		AppGlyph:        glyphInfo(d.App),
		LayoutGlyph:     glyphInfo(d.Layout),
		Label:           d.Label,
		Unchanged:       d.Label == d.CurrentName,
	}
	if d.Parent != nil {
		out.ParentLayout = string(d.Parent.Layout)
	}
	return nil, out, nil
}

func glyphInfo(g label.Glyph) GlyphInfo {
	return GlyphInfo{Text: g.Text, Style: g.Style, Category: string(g.Category)}
}
