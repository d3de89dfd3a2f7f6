package http

import (
	"github.com/gin-gonic/gin"

	"mypantry/internal/identity"
	"mypantry/internal/item"
	"mypantry/internal/pantry"
	pkgLog "mypantry/pkg/log"
)

// Handler is the interface for the item HTTP delivery handler.
type Handler interface {
	ListItems(c *gin.Context)
	AddItem(c *gin.Context)
	UpdateItem(c *gin.Context)
	DeleteItem(c *gin.Context)
}

// New creates a new item delivery handler. The pantry usecase is needed to
// resolve the owning pantry so item operations target the right partition
// and zone.
func New(l pkgLog.Logger, uc item.UseCase, pantryUC pantry.UseCase, ids identity.Provider) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		pantryUC: pantryUC,
		ids:      ids,
	}
}

type handler struct {
	l        pkgLog.Logger
	uc       item.UseCase
	pantryUC pantry.UseCase
	ids      identity.Provider
}
