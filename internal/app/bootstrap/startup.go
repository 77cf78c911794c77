// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/stratamood/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after backends are connected, but before the HTTP
// handler is built and requests are served.
//
// Returning a non-nil error will abort startup and prevent the server
// from starting.
//
// The context will be cancelled if the process is asked to shut down
// while Startup is running; honor it in any long-running work.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("configured operation timeouts from environment", zap.Int("overrides", n))
	}

	// Probe the metrics backend once so an unreachable backend is visible
	// at startup rather than as a wall of fetch warnings later.
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	if err := deps.Metrics.Ping(pingCtx); err != nil {
		if appCfg.RequireBackend {
			logger.Error("metrics backend unreachable", zap.Error(err))
			return err
		}
		logger.Warn("metrics backend unreachable; charts will serve empty data until it recovers",
			zap.String("base_url", deps.Metrics.BaseURL()),
			zap.Error(err))
		return nil
	}

	logger.Info("metrics backend reachable", zap.String("base_url", deps.Metrics.BaseURL()))
	return nil
}
