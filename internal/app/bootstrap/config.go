// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/stratamood/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
// Change this constant when forking stratamood for a new project.
const EnvVarPrefix = "STRATAMOOD"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: metrics_base_url, fetch_timeout, etc.
//   - Environment variables: STRATAMOOD_METRICS_BASE_URL, etc.
//   - Command-line flags: --metrics_base_url, --fetch_timeout, etc.
var appConfigKeys = []config.AppKey{
	{Name: "metrics_base_url", Default: "http://localhost:8000", Desc: "Base URL of the metrics/analysis backend"},
	{Name: "fetch_timeout", Default: "10s", Desc: "Per-request timeout for backend fetches (e.g., 5s, 30s)"},
	{Name: "default_view", Default: "month", Desc: "Initial chart view granularity: day, week, or month"},
	{Name: "require_backend", Default: false, Desc: "Fail startup if the metrics backend is unreachable"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STRATAMOOD_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MetricsBaseURL: appValues.String("metrics_base_url"),
		FetchTimeout:   appValues.Duration("fetch_timeout", 10*time.Second),
		DefaultView:    models.View(appValues.String("default_view")),
		RequireBackend: appValues.Bool("require_backend"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.MetricsBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		logger.Error("invalid metrics backend URL", zap.String("metrics_base_url", appCfg.MetricsBaseURL))
		return fmt.Errorf("invalid metrics_base_url %q: need an absolute http(s) URL", appCfg.MetricsBaseURL)
	}

	if _, err := models.ParseView(string(appCfg.DefaultView)); err != nil {
		return fmt.Errorf("invalid default_view: %w", err)
	}

	if appCfg.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", appCfg.FetchTimeout)
	}

	return nil
}
