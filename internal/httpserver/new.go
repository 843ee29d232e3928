package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	eventHTTP "voice-calendar-assistant/internal/event/delivery/http"
	"voice-calendar-assistant/internal/middleware"
	"voice-calendar-assistant/pkg/log"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Event domain
	eventHandler eventHTTP.Handler
	mw           middleware.Middleware

	// Health probes
	llmPinger Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	EventHandler eventHTTP.Handler
	Middleware   middleware.Middleware

	// LLMPinger is optional; when set, /health reports LLM reachability.
	LLMPinger Pinger
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		eventHandler: cfg.EventHandler,
		mw:           cfg.Middleware,
		llmPinger:    cfg.LLMPinger,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventHandler == nil {
		return errors.New("event handler is required")
	}
	return nil
}
