package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mypantry/internal/model"
	"mypantry/internal/pantry"
	"mypantry/internal/sharing"
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

// findPantry resolves a pantry by id from the caller's view, so partition
// routing always uses the entity's persisted state.
func (h *handler) findPantry(c *gin.Context, sc model.Scope, id string) (model.Pantry, bool) {
	out, err := h.uc.FetchPantries(c.Request.Context(), sc)
	if err != nil {
		response.InternalError(c, err)
		return model.Pantry{}, false
	}
	for _, p := range append(out.Private, out.Shared...) {
		if p.ID == id {
			return p, true
		}
	}
	response.NotFound(c, pantry.ErrInvalidPantryID)
	return model.Pantry{}, false
}

// ListPantries handles GET /api/v1/pantries.
func (h *handler) ListPantries(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	out, err := h.uc.FetchPantries(c.Request.Context(), sc)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "pantry handler: list failed: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, listPantriesResponse{
		Private: toPantryPayloads(out.Private),
		Shared:  toPantryPayloads(out.Shared),
	})
}

// CreatePantry handles POST /api/v1/pantries.
func (h *handler) CreatePantry(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var req createPantryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	saved, err := h.uc.SavePantry(c.Request.Context(), sc, model.Pantry{Name: req.Name}, req.IsShared)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "pantry handler: create failed: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, toPantryPayload(saved))
}

// UpdatePantry handles PUT /api/v1/pantries/:id.
func (h *handler) UpdatePantry(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var req updatePantryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	p, ok := h.findPantry(c, sc, c.Param("id"))
	if !ok {
		return
	}
	p.Name = req.Name

	updated, err := h.uc.UpdatePantry(c.Request.Context(), p)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "pantry handler: update failed: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, toPantryPayload(updated))
}

// DeletePantry handles DELETE /api/v1/pantries/:id.
func (h *handler) DeletePantry(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	p, ok := h.findPantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	if err := h.uc.DeletePantry(c.Request.Context(), p); err != nil {
		h.l.Errorf(c.Request.Context(), "pantry handler: delete failed: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": p.ID})
}

// SharePantry handles POST /api/v1/pantries/:id/share.
func (h *handler) SharePantry(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	p, ok := h.findPantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	info, err := h.uc.CreateSharedPantry(c.Request.Context(), p)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "pantry handler: share failed: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, sharingInfoResponse{
		Pantry: toPantryPayload(info.Pantry),
		Share: sharePayload{
			ID:     info.Share.ID,
			ZoneID: info.Share.Zone,
			Token:  info.Share.Token,
			Title:  info.Share.Title,
		},
	})
}

// AcceptShare handles POST /api/v1/shares/accept.
func (h *handler) AcceptShare(c *gin.Context) {
	if _, ok := h.scope(c); !ok {
		return
	}

	var req acceptShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.AcceptShareInvitation(c.Request.Context(), req.Token); err != nil {
		h.l.Errorf(c.Request.Context(), "pantry handler: accept share failed: %v", err)
		response.Error(c, err, nil)
		return
	}
	response.OK(c, gin.H{"accepted": true})
}

// ListParticipants handles GET /api/v1/pantries/:id/participants.
func (h *handler) ListParticipants(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	p, ok := h.findPantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	participants, err := h.uc.ListParticipants(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, sharing.ErrZoneNotFound) {
			response.NotFound(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toParticipantPayloads(participants))
}

// RemoveParticipant handles DELETE /api/v1/pantries/:id/participants/:userId.
func (h *handler) RemoveParticipant(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	p, ok := h.findPantry(c, sc, c.Param("id"))
	if !ok {
		return
	}

	err := h.uc.RemoveParticipant(c.Request.Context(), c.Param("userId"), p)
	if err != nil {
		if errors.Is(err, sharing.ErrParticipantNotFound) || errors.Is(err, sharing.ErrZoneNotFound) {
			response.NotFound(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"removed": c.Param("userId")})
}
