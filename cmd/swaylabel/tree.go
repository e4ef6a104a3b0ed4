package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtree "github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/term"

	"github.com/1broseidon/swaylabel/internal/platform"
	"github.com/1broseidon/swaylabel/internal/tree"
)

type treeStyles struct {
	enumerator lipgloss.Style
	root       lipgloss.Style
	workspace  lipgloss.Style
	focused    lipgloss.Style
	muted      lipgloss.Style
}

func plainTreeStyles() treeStyles {
	plain := lipgloss.NewStyle()
	return treeStyles{enumerator: plain, root: plain, workspace: plain, focused: plain, muted: plain}
}

func colorTreeStyles() treeStyles {
	return treeStyles{
		enumerator: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		root:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		workspace:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		focused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func runTree(args []string) int {
	fs := newFlagSet("tree",
		"Usage: swaylabel tree [--config PATH] [--tree FILE] [--scratch]",
		"",
		"Render the window tree as the labeller sees it.")
	configPath := fs.String("config", "", "Config file path (default: ~/.config/swaylabel/config.yaml)")
	treeFile := fs.String("tree", "", "Read the tree from a snapshot file")
	showScratch := fs.Bool("scratch", false, "Include the scratchpad workspace")
	if code := parseFlags(fs, args); code >= 0 {
		return code
	}

	var root *tree.Node
	var err error
	if *treeFile != "" {
		root, err = tree.ReadSnapshotFile(*treeFile)
	} else {
		root, err = fetchTree(*configPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	styles := plainTreeStyles()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		styles = colorTreeStyles()
	}
	fmt.Println(renderTree(root, styles, *showScratch))
	return 0
}

func fetchTree(configPath string) (*tree.Node, error) {
	res, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	sock, err := platform.DiscoverSocket(res.Config.SocketPath)
	if err != nil {
		return nil, err
	}
	backend := platform.NewSwayBackend(sock.Path)
	defer backend.Close()

	ctx, cancel := context.WithTimeout(context.Background(), oneShotTimeout)
	defer cancel()
	return backend.Tree(ctx)
}

func renderTree(root *tree.Node, styles treeStyles, showScratch bool) string {
	t := buildTree(root, styles, showScratch)
	t.Enumerator(lgtree.RoundedEnumerator).
		EnumeratorStyle(styles.enumerator).
		RootStyle(styles.root)
	return t.String()
}

func buildTree(n *tree.Node, styles treeStyles, showScratch bool) *lgtree.Tree {
	t := lgtree.Root(styleNode(n, styles))
	for _, children := range [][]*tree.Node{n.Nodes, n.FloatingNodes} {
		for _, c := range children {
			if c.IsScratch() && !showScratch {
				continue
			}
			if len(c.Nodes) == 0 && len(c.FloatingNodes) == 0 {
				t.Child(styleNode(c, styles))
				continue
			}
			t.Child(buildTree(c, styles, showScratch))
		}
	}
	return t
}

func styleNode(n *tree.Node, styles treeStyles) string {
	line := nodeLine(n)
	switch {
	case n.Focused:
		return styles.focused.Render(line)
	case n.Kind == tree.KindWorkspace:
		return styles.workspace.Render(line)
	case n.Kind == tree.KindOutput || n.Kind == tree.KindContainer:
		return styles.muted.Render(line)
	}
	return line
}

// nodeLine describes one node on a single line.
func nodeLine(n *tree.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d ", n.ID)

	switch n.Kind {
	case tree.KindRoot:
		b.WriteString("root")
	case tree.KindOutput:
		fmt.Fprintf(&b, "output %s", n.Name)
	case tree.KindWorkspace:
		fmt.Fprintf(&b, "workspace %q", n.Name)
		if num, err := n.WorkspaceNumber(); err == nil {
			fmt.Fprintf(&b, " num=%d", num)
		} else {
			b.WriteString(" num=?")
		}
		if n.Layout != tree.LayoutNone && n.Layout != "" {
			fmt.Fprintf(&b, " [%s]", n.Layout)
		}
	case tree.KindContainer:
		fmt.Fprintf(&b, "container [%s]", n.Layout)
	case tree.KindFloating, tree.KindWindow:
		if n.Kind == tree.KindFloating {
			b.WriteString("floating ")
		}
		app := n.App.Resolve()
		if app == "" {
			app = "?"
		}
		b.WriteString(app)
		if n.Title != "" {
			fmt.Fprintf(&b, " %q", n.Title)
		}
	}

	if n.Focused {
		b.WriteString(" *")
	}
	return b.String()
}
