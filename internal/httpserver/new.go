package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	itemDelivery "mypantry/internal/item/delivery/http"
	pantryDelivery "mypantry/internal/pantry/delivery/http"
	"mypantry/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	pantryHandler pantryDelivery.Handler
	itemHandler   itemDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PantryHandler pantryDelivery.Handler
	ItemHandler   itemDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             cfg.Logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		pantryHandler: cfg.PantryHandler,
		itemHandler:   cfg.ItemHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Run registers all routes and serves until the listener stops.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
