package mcp

// ListWorkspacesInput is the input for the list_workspaces tool.
type ListWorkspacesInput struct{}

// WorkspaceInfo describes a single workspace.
type WorkspaceInfo struct {
	ID      int64  `json:"id"`
	Number  *int   `json:"number,omitempty"`
	Name    string `json:"name"`
	Focused bool   `json:"focused"`
	Windows int    `json:"windows"`
}

// ListWorkspacesOutput is the output for the list_workspaces tool.
type ListWorkspacesOutput struct {
	Workspaces []WorkspaceInfo `json:"workspaces"`
}

// ExplainLabelInput is the input for the explain_label tool.
type ExplainLabelInput struct {
	WindowID int64 `json:"window_id,omitempty" jsonschema:"Container id to explain (default: the focused window)"`
}

// GlyphInfo is one resolved glyph.
type GlyphInfo struct {
	Text     string `json:"text"`
	Style    string `json:"style,omitempty"`
	Category string `json:"category,omitempty"`
}

// ExplainLabelOutput is the output for the explain_label tool.
type ExplainLabelOutput struct {
	WindowID        int64     `json:"window_id"`
	WorkspaceID     int64     `json:"workspace_id"`
	WorkspaceNumber int       `json:"workspace_number"`
	CurrentName     string    `json:"current_name"`
	IsWorkspace     bool      `json:"is_workspace"`
	AppID           string    `json:"app_id,omitempty"`
	ParentLayout    string    `json:"parent_layout,omitempty"`
	SiblingCount    int       `json:"sibling_count"`
	Position        int       `json:"position"`
	AppGlyph        GlyphInfo `json:"app_glyph"`
	LayoutGlyph     GlyphInfo `json:"layout_glyph"`
	Label           string    `json:"label"`
	Unchanged       bool      `json:"unchanged"`
}
