// Command courtyard renders the textured courtyard scene in a window.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/toxichemicals/GO/courtyard/internal/app"
	"github.com/toxichemicals/GO/courtyard/internal/config"
	"github.com/toxichemicals/GO/courtyard/internal/logger"
)

func init() {
	runtime.LockOSThread() // GLFW requires this
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgErr := config.LoadDefault()
	if cfgErr != nil {
		cfg = config.Default()
	}
	if err := logger.Init(logger.Options{Debug: cfg.Log.Debug, File: cfg.Log.File}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Log.Error("failed to load config", zap.Error(cfgErr))
		return -1
	}

	a := app.New(cfg)
	if err := a.Init(); err != nil {
		logger.Log.Error("initialization failed", zap.Error(err))
		a.Shutdown()
		return -1
	}
	defer a.Shutdown()

	a.Run()
	return 0
}
