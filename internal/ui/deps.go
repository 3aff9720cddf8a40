package ui

import (
	"log/slog"

	"airtimegraph/internal/bus"
	"airtimegraph/internal/config"
	"airtimegraph/internal/graph"
)

// Dependencies carries everything the UI needs from the app runtime.
type Dependencies struct {
	Config config.AppConfig
	Bus    bus.MessageBus
	Engine *graph.Engine
	Logger *slog.Logger

	// OnSaveConfig persists updated preferences (window geometry).
	OnSaveConfig func(config.AppConfig) error
	// OnQuit tears down the runtime after the window closes.
	OnQuit func()
}
