// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/dalemusser/stratamood/internal/domain/models"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
type AppConfig struct {
	// Metrics backend connection configuration
	MetricsBaseURL string        // Base URL of the metrics/analysis API (e.g., http://localhost:8000)
	FetchTimeout   time.Duration // Per-request timeout for backend fetches (default: 10s)

	// Initial dashboard state
	DefaultView models.View // View granularity the charts start on (default: month)

	// Backend reachability at startup
	RequireBackend bool // Fail startup when the metrics backend is unreachable (default: false)
}
