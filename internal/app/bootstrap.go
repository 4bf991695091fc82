package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"futures_bot/internal/exchange"
	"futures_bot/internal/exchange/binance"
	"futures_bot/internal/infra"
	"futures_bot/internal/ui"
)

// App bundles everything a command needs: config, logger, renderer and
// a lazy exchange constructor. The exchange is built per invocation so
// commands that never reach the network (dry runs, validation failures)
// work without credentials.
type App struct {
	Config      *infra.Config
	Log         *zap.Logger
	UI          *ui.Renderer
	NewExchange func() (exchange.Exchange, error)
}

// Bootstrap performs startup: config, log directory, logger, renderer.
func Bootstrap() (*App, error) {
	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		return nil, err
	}

	logDir := filepath.Join(infra.GetWorkspaceDir(), "logs")
	logger, err := infra.NewLogger(cfg, logDir)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Log:    logger,
		UI:     ui.NewRenderer(os.Stdout, os.Stdin),
	}
	a.NewExchange = func() (exchange.Exchange, error) {
		return binance.NewClient(cfg, logger)
	}

	logger.Debug("bootstrap complete", zap.String("log_dir", logDir))
	return a, nil
}

// Close flushes the log sinks.
func (a *App) Close() {
	if a.Log != nil {
		_ = a.Log.Sync()
	}
}
