// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectBackends builds clients for external backends.
//
// WAFFLE calls this after configuration is loaded but before Startup.
// The metrics client is plain HTTP, so there is no connection to open
// here; reachability is verified in Startup where failure policy is
// configurable.
func ConnectBackends(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client := metricsapi.New(appCfg.MetricsBaseURL, appCfg.FetchTimeout, logger)

	logger.Info("configured metrics backend client",
		zap.String("base_url", appCfg.MetricsBaseURL),
		zap.Duration("fetch_timeout", appCfg.FetchTimeout),
	)

	return Deps{Metrics: client}, nil
}
