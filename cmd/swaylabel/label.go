package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/daemon"
	"github.com/1broseidon/swaylabel/internal/label"
	"github.com/1broseidon/swaylabel/internal/platform"
	"github.com/1broseidon/swaylabel/internal/tree"
)

const oneShotTimeout = 5 * time.Second

func runLabel(args []string) int {
	fs := newFlagSet("label",
		"Usage: swaylabel label [--config PATH] [--tree FILE] [--apply] [--verbose]",
		"",
		"Print the label the daemon would give the focused workspace.",
		"--tree reads a saved get_tree snapshot (JSON or JSONC) instead of asking",
		"the window manager.")
	configPath := fs.String("config", "", "Config file path (default: ~/.config/swaylabel/config.yaml)")
	treeFile := fs.String("tree", "", "Read the tree from a snapshot file")
	apply := fs.Bool("apply", false, "Rename the workspace as well")
	verbose := fs.BoolP("verbose", "v", false, "Show how the label was derived")
	if code := parseFlags(fs, args); code >= 0 {
		return code
	}
	if *apply && *treeFile != "" {
		fmt.Fprintln(os.Stderr, "--apply cannot be used with --tree")
		return 2
	}

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var d *label.Description
	if *treeFile != "" {
		d, err = describeFocusedInFile(*treeFile, res.Config)
	} else {
		d, err = describeFocusedLive(res.Config, *apply)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *verbose {
		printDescription(d)
		return 0
	}
	fmt.Println(d.Label)
	return 0
}

func describeFocusedInFile(path string, cfg *config.Config) (*label.Description, error) {
	root, err := tree.ReadSnapshotFile(path)
	if err != nil {
		return nil, err
	}
	target, err := tree.FindFocused(root)
	if err != nil {
		return nil, err
	}
	return label.New(cfg).Describe(root, target)
}

func describeFocusedLive(cfg *config.Config, apply bool) (*label.Description, error) {
	sock, err := platform.DiscoverSocket(cfg.SocketPath)
	if err != nil {
		return nil, err
	}
	backend := platform.NewSwayBackend(sock.Path)
	defer backend.Close()

	ctx, cancel := context.WithTimeout(context.Background(), oneShotTimeout)
	defer cancel()
	return daemon.NewReactor(backend, cfg, nil).LabelFocused(ctx, apply)
}

func printDescription(d *label.Description) {
	fmt.Printf("workspace:     %d (%q)\n", d.Number, d.CurrentName)
	fmt.Printf("window:        %d\n", d.Window.ID)
	if d.AppID != "" {
		fmt.Printf("app_id:        %s\n", d.AppID)
	}
	if d.Parent != nil {
		fmt.Printf("parent:        %d (%s)\n", d.Parent.ID, d.Parent.Layout)
		fmt.Printf("position:      %d of %d\n", d.Position+1, len(d.Siblings))
	}
	fmt.Printf("app_glyph:     %s\n", d.App.Text)
	if d.Layout.Text != "" {
		fmt.Printf("layout_glyph:  %s (%s)\n", d.Layout.Text, d.Layout.Category)
	}
	fmt.Printf("label:         %s\n", d.Label)
	if d.Label == d.CurrentName {
		fmt.Println("unchanged:     true")
	}
}

func runSocket(args []string) int {
	fs := newFlagSet("socket",
		"Usage: swaylabel socket [--config PATH]",
		"",
		"Show the window manager IPC socket and where it was found:",
		"socket_path from the config, SWAYSOCK, I3SOCK, or the X11 root window.")
	configPath := fs.String("config", "", "Config file path (default: ~/.config/swaylabel/config.yaml)")
	if code := parseFlags(fs, args); code >= 0 {
		return code
	}

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	sock, err := platform.DiscoverSocket(res.Config.SocketPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("path:   %s\n", sock.Path)
	fmt.Printf("source: %s\n", sock.Source)
	if sock.WindowManager != "" {
		fmt.Printf("wm:     %s\n", sock.WindowManager)
	}
	return 0
}
