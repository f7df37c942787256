package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	gorhandlers "github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"

	"github.com/go-ldp/ldpserver/internal/configuration"
	"github.com/go-ldp/ldpserver/internal/dcontext"
	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/backend/memory"
	"github.com/go-ldp/ldpserver/ldp/server"
)

// Server is a complete, running instance of ldpserver: the LDP App
// wired to a backend, wrapped in access logging, bound to a listener.
type Server struct {
	config *configuration.Configuration
	app    *server.App
	http   *http.Server
	ln     net.Listener
}

// NewServer constructs the backend and App named by cfg, ready to
// serve once ListenAndServe is called.
func NewServer(cfg *configuration.Configuration) (*Server, error) {
	configureLogging(cfg)

	b, err := newBackend(cfg.Storage.Type(), cfg.Storage.Parameters())
	if err != nil {
		return nil, err
	}

	app := server.NewApp(server.Config{
		AppBase: cfg.HTTP.AppBase,
		Prefix:  cfg.HTTP.Prefix,
	}, b)

	handler := gorhandlers.CombinedLoggingHandler(os.Stdout, app)

	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.HTTP.Addr, err)
	}

	return &Server{
		config: cfg,
		app:    app,
		http:   &http.Server{Handler: handler},
		ln:     ln,
	}, nil
}

// ListenAndServe blocks, serving on the configured address.
func (s *Server) ListenAndServe() error {
	dcontext.GetLogger(context.Background()).Infof("ldpserver listening on %s, context path %s", s.config.HTTP.Addr, s.config.HTTP.Prefix)
	return s.http.Serve(s.ln)
}

func configureLogging(cfg *configuration.Configuration) {
	level, err := logrus.ParseLevel(string(cfg.Loglevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger := logrus.StandardLogger()
	logger.SetLevel(level)
	dcontext.SetDefaultLogger(logrus.NewEntry(logger))
}

// backendFactories maps a configuration storage type name to its
// constructor. Only "memory" ships in this tree; production deployments
// register their own Backend here.
var backendFactories = map[string]func(configuration.Parameters) (backend.Backend, error){
	"memory": func(configuration.Parameters) (backend.Backend, error) {
		return memory.New(), nil
	},
}

func newBackend(typ string, params configuration.Parameters) (backend.Backend, error) {
	factory, ok := backendFactories[typ]
	if !ok {
		return nil, fmt.Errorf("ldpserver: unknown storage type %q", typ)
	}
	b, err := factory(params)
	if err != nil {
		return nil, err
	}
	if err := b.Init(params); err != nil {
		return nil, fmt.Errorf("ldpserver: init %q backend: %w", typ, err)
	}
	return b, nil
}
