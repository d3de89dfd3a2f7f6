package http

import (
	"github.com/gin-gonic/gin"

	"mypantry/internal/identity"
	"mypantry/internal/pantry"
	pkgLog "mypantry/pkg/log"
)

// Handler is the interface for the pantry HTTP delivery handler.
type Handler interface {
	ListPantries(c *gin.Context)
	CreatePantry(c *gin.Context)
	UpdatePantry(c *gin.Context)
	DeletePantry(c *gin.Context)
	SharePantry(c *gin.Context)
	AcceptShare(c *gin.Context)
	ListParticipants(c *gin.Context)
	RemoveParticipant(c *gin.Context)
}

// New creates a new pantry delivery handler.
func New(l pkgLog.Logger, uc pantry.UseCase, ids identity.Provider) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		ids: ids,
	}
}

type handler struct {
	l   pkgLog.Logger
	uc  pantry.UseCase
	ids identity.Provider
}
