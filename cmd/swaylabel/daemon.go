package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/daemon"
	"github.com/1broseidon/swaylabel/internal/ipc"
	"github.com/1broseidon/swaylabel/internal/logging"
	"github.com/1broseidon/swaylabel/internal/platform"
)

func runDaemon(args []string) int {
	fs := newFlagSet("daemon",
		"Usage: swaylabel daemon [--config PATH] [--log-level LEVEL]",
		"",
		"Subscribe to window manager events and keep workspace names labelled.",
		"SIGHUP or 'swaylabel reload' re-reads the config file.")
	configPath := fs.String("config", "", "Config file path (default: ~/.config/swaylabel/config.yaml)")
	logLevel := fs.String("log-level", "", "Override logging.level (debug, info, warn, error)")
	if code := parseFlags(fs, args); code >= 0 {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "daemon takes no arguments")
		fs.Usage()
		return 2
	}

	load := func() (*config.LoadResult, error) {
		res, err := loadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		if *logLevel != "" {
			res.Config.Logging.Level = *logLevel
		}
		return res, nil
	}

	res, err := load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := res.Config

	logs, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer logs.Close()
	logger := logs.Logger

	if res.File != "" {
		logger.Info("configuration loaded", "file", res.File, "icons", len(cfg.Icons))
	} else {
		logger.Info("no config file, using defaults")
	}

	sock, err := platform.DiscoverSocket(cfg.SocketPath)
	if err != nil {
		logger.Error("cannot locate window manager", "error", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := platform.NewSwayBackend(sock.Path)
	defer backend.Close()

	version, err := backend.Version(ctx)
	if err != nil {
		logger.Error("cannot talk to window manager", "socket", sock.Path, "error", err)
		return 1
	}
	logger.Info("connected to window manager",
		"socket", sock.Path,
		"source", sock.Source,
		"version", version.HumanReadable)

	reactor := daemon.NewReactor(backend, cfg, logger)

	reload := func() error {
		res, err := load()
		if err != nil {
			logger.Error("config reload failed", "error", err)
			return err
		}
		reactor.UpdateConfig(res.Config)
		logs.SetLevel(res.Config.Logging.Level)
		logger.Info("config reloaded", "file", res.File)
		return nil
	}

	ipcServer, err := ipc.NewServer(ipc.ServerConfig{
		Stats:    reactor,
		Reload:   reload,
		WMSocket: sock.Path,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("failed to create control socket", "error", err)
		return 1
	}
	if err := ipcServer.Start(); err != nil {
		logger.Error("failed to start control socket", "error", err)
		return 1
	}
	defer ipcServer.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)
	go func() {
		for {
			select {
			case sig := <-sigCh:
				if sig == syscall.SIGHUP {
					logger.Info("received SIGHUP, reloading config")
					_ = reload()
					continue
				}
				logger.Info("shutting down", "signal", sig.String())
				cancel()
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	// Names can be stale from a previous run; fix the focused one before
	// waiting for the first event.
	if _, err := reactor.LabelFocused(ctx, true); err != nil {
		logger.Warn("initial label failed", "error", err)
	}

	if err := reactor.Run(ctx); err != nil {
		logger.Error("event loop ended", "error", err)
		return 1
	}
	return 0
}
