// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
)

// Deps holds backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectBackends and passed to subsequent
// lifecycle hooks: Startup, BuildHandler, and Shutdown. The dashboard
// keeps no state of its own; its only backend is the metrics API the
// chart components fetch from.
type Deps struct {
	// Metrics is the typed client for the analysis backend.
	Metrics *metricsapi.Client
}
