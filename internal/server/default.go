package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
	"github.com/iota-uz/hrp/modules/hrp/presentation/controllers"
	"github.com/iota-uz/hrp/pkg/configuration"
	"github.com/iota-uz/hrp/pkg/httpapi"
	"github.com/iota-uz/hrp/pkg/metrics"
	"github.com/iota-uz/hrp/pkg/middleware"
	"github.com/iota-uz/hrp/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	// Fetcher backs the /hrp/ routes, normally a file-backed mock.
	Fetcher hrpws.Fetcher
}

// Default builds the mock HRP server: resources under /hrp/, /health and,
// when enabled, the prometheus endpoint.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	logger := options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	fetcher := options.Fetcher
	if fetcher == nil {
		fetcher = hrpws.NewMockFetcher(hrpws.WithMockLogger(logrus.NewEntry(logger)))
	}

	requestIDHeader := ""
	var origins []string
	if options.Configuration != nil {
		requestIDHeader = options.Configuration.RequestIDHeader
		origins = options.Configuration.MockServerCORSOrigins
	}
	var middlewares []mux.MiddlewareFunc
	if len(origins) > 0 {
		middlewares = append(middlewares, corsMiddleware(origins, requestIDHeader))
	}
	middlewares = append(middlewares,
		middleware.WithLogger(logger, requestIDHeader),
		middleware.TracedMiddleware("hrp"),
	)

	ctrls := []server.Controller{
		controllers.NewResourceController(fetcher),
		healthController{},
	}
	if options.Configuration != nil && options.Configuration.Prometheus.Enabled {
		ctrls = append(ctrls, metrics.NewPrometheusController(options.Configuration.Prometheus.Path))
	}
	for _, c := range ctrls {
		logger.WithField("controller", c.Key()).Debug("controller registered")
	}

	return server.NewHTTPServer(
		ctrls,
		middlewares,
		http.HandlerFunc(notFound),
		http.HandlerFunc(methodNotAllowed),
	), nil
}

func corsMiddleware(origins []string, requestIDHeader string) mux.MiddlewareFunc {
	if requestIDHeader == "" {
		requestIDHeader = middleware.DefaultRequestIDHeader
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"Accept", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         600,
	}).Handler
}

type healthController struct{}

func (healthController) Key() string { return "/health" }

func (healthController) Register(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": hrpws.ServiceName})
	}).Methods(http.MethodGet)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found", map[string]string{"path": r.URL.Path})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", map[string]string{
		"method": r.Method,
		"path":   r.URL.Path,
	})
}
