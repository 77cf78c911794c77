// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown is invoked during WAFFLE's shutdown phase, after the HTTP
// server has stopped accepting new requests.
//
// Closing a component unsubscribes it from the graph state store and
// cancels any fetch still in flight, so no goroutine outlives the
// server. The metrics client itself is plain HTTP and needs no
// teardown.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	logger.Info("closing chart components", zap.Int("count", len(closers)))
	for _, c := range closers {
		c.Close()
	}
	closers = nil
	return nil
}
