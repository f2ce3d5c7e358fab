package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/harrison/uniqyou/internal/catalog"
	"github.com/harrison/uniqyou/internal/config"
	"github.com/harrison/uniqyou/internal/display"
	"github.com/harrison/uniqyou/internal/logger"
	"github.com/harrison/uniqyou/internal/session"
	"github.com/harrison/uniqyou/internal/storage"
	"github.com/spf13/cobra"
)

// app bundles everything a command needs once flags and config are merged.
type app struct {
	cfg     *config.Config
	home    string
	log     *logger.MultiLogger
	fileLog *logger.FileLogger
	backend storage.Backend
	store   *storage.Storage
	catalog *catalog.Catalog
}

// newApp loads config, opens the store and builds loggers from the global
// flags of cmd. Callers must Close the result.
func newApp(cmd *cobra.Command) (*app, error) {
	flags := cmd.Flags()

	home, _ := flags.GetString("home")
	if home == "" {
		var err error
		home, err = config.GetHome()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve uniqyou home: %w", err)
		}
	}

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = filepath.Join(home, "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevelPtr, storePtr, leavePtr *string
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevelPtr = &v
	}
	if flags.Changed("store") {
		v, _ := flags.GetString("store")
		storePtr = &v
	}
	if f := flags.Lookup("leave-policy"); f != nil && f.Changed {
		v := f.Value.String()
		leavePtr = &v
	}
	cfg.MergeWithFlags(logLevelPtr, nil, storePtr, leavePtr)
	cfg.ResolvePaths(home)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &app{cfg: cfg, home: home}

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	sinks := []logger.Sink{console}
	if cfg.Store.Backend != storage.KindMemory {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			console.LogWarn(fmt.Sprintf("File logging disabled: %v", err))
		} else {
			a.fileLog = fileLog
			sinks = append(sinks, fileLog)
		}
	}
	a.log = logger.NewMultiLogger(sinks...)

	a.backend, err = storage.Open(storage.Options{Kind: cfg.Store.Backend, Path: cfg.Store.Path})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	a.store = storage.New(a.backend, cfg.Store.Namespace, a.log)

	if cfg.Catalog.Path != "" {
		a.catalog, err = catalog.LoadFile(cfg.Catalog.Path)
	} else {
		a.catalog, err = catalog.Default()
	}
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load question catalog: %w", err)
	}

	a.log.LogDebug(fmt.Sprintf("Using home %s, %s store at %s", home, cfg.Store.Backend, cfg.Store.Path))
	return a, nil
}

// session builds a started session controller.
func (a *app) session() (*session.Controller, error) {
	policy, err := session.ParseLeavePolicy(a.cfg.Navigation.LeavePolicy)
	if err != nil {
		return nil, err
	}
	c := session.New(a.catalog, a.store, session.Options{LeavePolicy: policy, Logger: a.log})
	c.Start()
	return c, nil
}

// theme returns the display theme for out, honoring the stored dark mode.
func (a *app) theme(out io.Writer) *display.Theme {
	return display.NewTheme(a.store.LoadPreferences().DarkMode, display.IsTerminal(out))
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.log.LogWarn(fmt.Sprintf("Failed to close store: %v", err))
		}
	}
	if a.fileLog != nil {
		a.fileLog.Close()
	}
}
