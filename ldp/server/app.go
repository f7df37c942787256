// Package server implements the LDP resource controller: the HTTP
// state machine driving GET/HEAD/PUT/POST/DELETE/OPTIONS over a
// pluggable ldp/backend.Backend.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-ldp/ldpserver/internal/dcontext"
	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/uri"
)

// Config is the subset of the server's configuration the controller
// needs directly; the listen address and storage selection are consumed
// by cmd/ldpserver before the App is constructed.
type Config struct {
	// AppBase is the absolute external base URL, e.g.
	// "http://localhost:8080", prepended to request paths to form
	// resource URIs.
	AppBase string

	// Prefix is the router's mount path, e.g. "/r".
	Prefix string
}

// App is the shared, request-independent state every LDP request is
// dispatched against.
type App struct {
	Config    Config
	Backend   backend.Backend
	Allocator *uri.Allocator

	router *mux.Router
}

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ldp_requests_total",
	Help: "Total LDP requests, by method and response status class.",
}, []string{"method", "status_class"})

// NewApp builds an App around b, mounting routes under cfg.Prefix, and
// returns it ready to serve.
func NewApp(cfg Config, b backend.Backend) *App {
	app := &App{
		Config:    cfg,
		Backend:   b,
		Allocator: uri.NewAllocator(b),
		router:    mux.NewRouter(),
	}
	app.registerRoutes()
	return app
}

// registerRoutes mounts /metrics plus one route matching any path under
// the configured prefix; LDP resources are identified purely by URI, so
// every LDP method shares that single route.
func (app *App) registerRoutes() {
	app.router.Handle("/metrics", promhttp.Handler())

	sub := app.router.PathPrefix(app.Config.Prefix).Subrouter()
	sub.PathPrefix("/").Handler(app.dispatcher(dispatchByMethod)).Methods(
		http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPost,
		http.MethodDelete, http.MethodOptions,
	)
}

func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

// dispatchFunc handles one fully-resolved request.
type dispatchFunc func(ctx *Context, w http.ResponseWriter, r *http.Request)

// dispatcher wraps dispatch with per-request Context construction and
// response-status accounting.
func (app *App) dispatcher(dispatch dispatchFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := app.newContext(r)
		ssrw := &statusCapturingWriter{ResponseWriter: w, status: 200}

		dispatch(ctx, ssrw, r)

		requestsTotal.WithLabelValues(r.Method, statusClass(ssrw.status)).Inc()
		dcontext.GetLogger(ctx, dcontext.RequestIDKey).Infof("%s %s -> %d", r.Method, ctx.URI, ssrw.status)
	})
}

type statusCapturingWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusCapturingWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func statusClass(status int) string {
	switch status / 100 {
	case 2:
		return "2xx"
	case 3:
		return "3xx"
	case 4:
		return "4xx"
	default:
		return "5xx"
	}
}

func dispatchByMethod(ctx *Context, w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		GetResource(ctx, w, r, true)
	case http.MethodHead:
		GetResource(ctx, w, r, false)
	case http.MethodPut:
		PutResource(ctx, w, r)
	case http.MethodPost:
		PostResource(ctx, w, r)
	case http.MethodDelete:
		DeleteResource(ctx, w, r)
	case http.MethodOptions:
		OptionsResource(ctx, w, r)
	default:
		w.Header().Set("Allow", "GET,HEAD,PUT,POST,DELETE,OPTIONS")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
