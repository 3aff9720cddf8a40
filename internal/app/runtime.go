package app

import (
	"fmt"
	"log/slog"
	"sync"

	"airtimegraph/internal/bus"
	"airtimegraph/internal/config"
	"airtimegraph/internal/graph"
	"airtimegraph/internal/logging"
)

// Runtime wires the long-lived application services: configuration, logging,
// the message bus and the graph engine.
type Runtime struct {
	mu sync.Mutex

	Paths  Paths
	Config config.AppConfig

	LogManager *logging.Manager
	Bus        *bus.PubSubBus
	Engine     *graph.Engine
}

func Initialize() (*Runtime, error) {
	paths, err := ResolvePaths()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Paths:  paths,
		Config: cfg,
	}

	logMgr := logging.NewManager()
	if err := logMgr.Configure(cfg.Logging, paths.LogFile); err != nil {
		_ = logMgr.Close()
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	rt.LogManager = logMgr
	slog.Info("starting airtimegraph runtime", "version", BuildVersion(), "build_date", BuildDateYMD())

	rt.Bus = bus.New(logMgr.Logger("bus"))
	rt.Engine = graph.NewEngine(logMgr.Logger("graph"), rt.Bus)

	return rt, nil
}

// SaveConfig persists the configuration and reapplies logging settings.
func (rt *Runtime) SaveConfig(cfg config.AppConfig) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if err := config.Save(rt.Paths.ConfigFile, cfg); err != nil {
		return err
	}
	if cfg.Logging != rt.Config.Logging {
		if err := rt.LogManager.Configure(cfg.Logging, rt.Paths.LogFile); err != nil {
			return fmt.Errorf("reconfigure logging: %w", err)
		}
	}
	rt.Config = cfg

	return nil
}

func (rt *Runtime) Close() error {
	if rt.Bus != nil {
		rt.Bus.Close()
	}
	if rt.LogManager != nil {
		return rt.LogManager.Close()
	}

	return nil
}
