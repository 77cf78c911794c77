// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	flowriverfeature "github.com/dalemusser/stratamood/internal/app/features/flowriver"
	graphsfeature "github.com/dalemusser/stratamood/internal/app/features/graphs"
	healthfeature "github.com/dalemusser/stratamood/internal/app/features/health"
	histogramfeature "github.com/dalemusser/stratamood/internal/app/features/histogram"
	spiderfeature "github.com/dalemusser/stratamood/internal/app/features/spider"
	vascatterfeature "github.com/dalemusser/stratamood/internal/app/features/vascatter"
	wheelfeature "github.com/dalemusser/stratamood/internal/app/features/wheel"
	"github.com/dalemusser/stratamood/internal/app/system/graphstate"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// closers collects the chart components so Shutdown can tear down their
// subscriptions and in-flight fetches.
var closers []interface{ Close() }

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, and the
// Startup hook have completed.
//
// The graph state store is built here, then every chart component is
// constructed against it. Construction order is the subscription order:
// each component immediately receives the initial (view, filter) snapshot
// and starts its first fetch, so the dashboard warms itself before the
// first request arrives.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	state := graphstate.New(appCfg.DefaultView)

	flowComp := flowriverfeature.NewComponent(state, deps.Metrics, logger)
	histComp := histogramfeature.NewComponent(state, deps.Metrics, logger)
	scatterComp := vascatterfeature.NewComponent(state, deps.Metrics, logger)
	wheelComp := wheelfeature.NewComponent(state, deps.Metrics, logger)
	spiderComp := spiderfeature.NewComponent(state, deps.Metrics, logger)
	closers = []interface{ Close() }{flowComp, histComp, scatterComp, wheelComp, spiderComp}

	r := chi.NewRouter()

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Dashboard control surface: view/filter state shared by every chart.
	r.Mount("/api/graphs", graphsfeature.Routes(&graphsfeature.Handler{State: state, Log: logger}))

	// Chart view models.
	r.Route("/api/charts", func(cr chi.Router) {
		cr.Mount("/flow", flowriverfeature.Routes(&flowriverfeature.Handler{Comp: flowComp, Log: logger}))
		cr.Mount("/histogram", histogramfeature.Routes(&histogramfeature.Handler{Comp: histComp, Log: logger}))
		cr.Mount("/scatter", vascatterfeature.Routes(&vascatterfeature.Handler{Comp: scatterComp, Log: logger}))
		cr.Mount("/wheel", wheelfeature.Routes(&wheelfeature.Handler{Comp: wheelComp, Log: logger}))
		cr.Mount("/spider", spiderfeature.Routes(&spiderfeature.Handler{Comp: spiderComp, Log: logger}))
	})

	// Health check endpoints for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.Metrics, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	return r, nil
}
