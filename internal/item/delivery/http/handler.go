package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mypantry/internal/item"
	"mypantry/internal/model"
	"mypantry/pkg/response"
)

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	ctx := c.Request.Context()
	if !h.ids.IsSignedIn(ctx) {
		response.Unauthorized(c)
		return model.Scope{}, false
	}
	userID, err := h.ids.CurrentUserID(ctx)
	if err != nil {
		response.Unauthorized(c)
		return model.Scope{}, false
	}
	return model.Scope{UserID: userID}, true
}

// resolvePantry locates the owning pantry so the item call targets the
// partition and zone the pantry actually lives in.
func (h *handler) resolvePantry(c *gin.Context, sc model.Scope, pantryID string) (model.Pantry, item.Location, bool) {
	out, err := h.pantryUC.FetchPantries(c.Request.Context(), sc)
	if err != nil {
		response.InternalError(c, err)
		return model.Pantry{}, item.Location{}, false
	}
	for _, p := range append(out.Private, out.Shared...) {
		if p.ID == pantryID {
			return p, item.LocationFor(p, sc), true
		}
	}
	response.NotFound(c, item.ErrPantryIDRequired)
	return model.Pantry{}, item.Location{}, false
}

// ListItems handles GET /api/v1/pantries/:id/items.
func (h *handler) ListItems(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	p, loc, ok := h.resolvePantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	items, err := h.uc.FetchItems(c.Request.Context(), loc, p.ID)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "item handler: list for pantry %s failed: %v", p.ID, err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, toItemPayloads(items))
}

// AddItem handles POST /api/v1/pantries/:id/items.
func (h *handler) AddItem(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	p, loc, ok := h.resolvePantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	saved, err := h.uc.AddItem(c.Request.Context(), loc, req.toModel(), p.ID)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "item handler: add to pantry %s failed: %v", p.ID, err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, toItemPayload(saved))
}

// UpdateItem handles PUT /api/v1/pantries/:id/items/:itemId.
func (h *handler) UpdateItem(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	p, loc, ok := h.resolvePantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	it := req.toModel()
	it.ID = c.Param("itemId")
	it.PantryID = p.ID

	updated, err := h.uc.UpdateItem(c.Request.Context(), loc, it)
	if err != nil {
		if errors.Is(err, item.ErrItemHasNoID) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(c.Request.Context(), "item handler: update of %s failed: %v", it.ID, err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, toItemPayload(updated))
}

// DeleteItem handles DELETE /api/v1/pantries/:id/items/:itemId.
func (h *handler) DeleteItem(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	p, loc, ok := h.resolvePantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	it := model.Item{ID: c.Param("itemId"), PantryID: p.ID}
	if err := h.uc.DeleteItem(c.Request.Context(), loc, it); err != nil {
		if errors.Is(err, item.ErrItemHasNoID) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(c.Request.Context(), "item handler: delete of %s failed: %v", it.ID, err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": it.ID})
}
