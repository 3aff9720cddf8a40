package main

import (
	"log/slog"
	"os"
	"sync"

	"airtimegraph/internal/app"
	"airtimegraph/internal/ui"
)

func main() {
	rt, err := app.Initialize()
	if err != nil {
		slog.Error("initialize app runtime", "error", err)
		os.Exit(1)
	}

	var closeOnce sync.Once
	closeRuntime := func() {
		closeOnce.Do(func() {
			_ = rt.Close()
		})
	}
	defer closeRuntime()

	err = ui.Run(ui.Dependencies{
		Config:       rt.Config,
		Bus:          rt.Bus,
		Engine:       rt.Engine,
		Logger:       rt.LogManager.Logger("ui"),
		OnSaveConfig: rt.SaveConfig,
		OnQuit:       closeRuntime,
	})
	if err != nil {
		slog.Error("run ui", "error", err)
		os.Exit(1)
	}
}
