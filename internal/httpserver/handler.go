package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.pantryHandler != nil {
		api.GET("/pantries", srv.pantryHandler.ListPantries)
		api.POST("/pantries", srv.pantryHandler.CreatePantry)
		api.PUT("/pantries/:id", srv.pantryHandler.UpdatePantry)
		api.DELETE("/pantries/:id", srv.pantryHandler.DeletePantry)
		api.POST("/pantries/:id/share", srv.pantryHandler.SharePantry)
		api.GET("/pantries/:id/participants", srv.pantryHandler.ListParticipants)
		api.DELETE("/pantries/:id/participants/:userId", srv.pantryHandler.RemoveParticipant)
		api.POST("/shares/accept", srv.pantryHandler.AcceptShare)
		srv.l.Infof(ctx, "pantry routes registered under /api/v1/pantries")
	} else {
		srv.l.Infof(ctx, "pantry handler not configured, skipping pantry routes")
	}

	if srv.itemHandler != nil {
		api.GET("/pantries/:id/items", srv.itemHandler.ListItems)
		api.POST("/pantries/:id/items", srv.itemHandler.AddItem)
		api.PUT("/pantries/:id/items/:itemId", srv.itemHandler.UpdateItem)
		api.DELETE("/pantries/:id/items/:itemId", srv.itemHandler.DeleteItem)
		srv.l.Infof(ctx, "item routes registered under /api/v1/pantries/:id/items")
	} else {
		srv.l.Infof(ctx, "item handler not configured, skipping item routes")
	}

	return nil
}
