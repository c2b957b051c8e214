// swgrt: SWG Resource Tracker
//
// A terminal record manager for resource spawns surveyed in game and the
// quantities held in the stockroom.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/swgrt/swgrt/internal/config"
	"github.com/swgrt/swgrt/internal/seed"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/storage"
	"github.com/swgrt/swgrt/internal/tui"
	"golang.org/x/term"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to configuration file")
		seedData   = flag.Bool("seed", false, "Add a sample survey to an empty store and exit")
		showPath   = flag.Bool("path", false, "Print the data file path and exit")
		showVer    = flag.Bool("version", false, "Show version and exit")
		debugMode  = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("swgrt version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *seedData, *showPath, *debugMode); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, seedData, showPath, debugMode bool) error {
	cfg, cfgPath, err := config.Load(configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	dataDir := config.DataDir(cfg, storage.DefaultDir())
	dataPath := config.DataFile(cfg, dataDir)

	if showPath {
		fmt.Println(dataPath)
		return nil
	}

	logLevel := cfg.Logging.Level.SlogLevel()
	if debugMode {
		logLevel = slog.LevelDebug
	}

	logPath, err := config.EnsureLogFile(cfg, dataDir)
	if err != nil {
		return fmt.Errorf("preparing log file: %w", err)
	}

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()

		slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: logLevel,
		})))
	} else {
		slog.SetDefault(slog.New(consoleHandler(os.Stderr, logLevel)))
	}

	slog.Info("swgrt starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
		"backend", cfg.Storage.Backend,
	)

	gateway, closeGateway := openGateway(ctx, cfg, dataPath)
	defer closeGateway()

	svc := tracker.NewService(gateway)

	if seedData {
		svc.Load(ctx)
		result, err := seed.NewGenerator(svc, seed.DefaultConfig()).Generate(ctx)
		if errors.Is(err, seed.ErrNotEmpty) {
			slog.Warn("store already contains records, skipping seed generation", "path", svc.DataPath())
			return nil
		}
		if err != nil {
			return fmt.Errorf("generating seed data: %w", err)
		}
		fmt.Printf("seeded %d resources and %d stock entries into %s\n", result.Resources, result.Inventory, svc.DataPath())
		return nil
	}

	tui.Version = Version
	tui.BuildTime = BuildTime

	slog.Info("starting TUI", "path", svc.DataPath())

	if err := tui.Run(ctx, svc, cfg); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("swgrt shutdown complete")
	return nil
}

// openGateway opens the configured storage adapter. When it cannot be opened
// the tracker runs without persistence.
func openGateway(ctx context.Context, cfg *config.Config, path string) (storage.Gateway, func()) {
	noop := func() {}

	if cfg.Storage.Backend != config.BackendSQLite {
		return storage.NewFileGateway(path), noop
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		slog.Error("creating data directory", "path", path, "error", err)
		return nil, noop
	}

	gw, err := storage.OpenSQLiteGateway(ctx, path)
	if err != nil {
		slog.Error("opening sqlite store, records will not be saved", "path", path, "error", err)
		return nil, noop
	}
	return gw, func() {
		if err := gw.Close(); err != nil {
			slog.Error("closing sqlite store", "error", err)
		}
	}
}

func consoleHandler(w io.Writer, level slog.Level) slog.Handler {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}
