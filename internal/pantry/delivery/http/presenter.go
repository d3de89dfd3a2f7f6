package http

import (
	"mypantry/internal/model"
)

type pantryPayload struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	OwnerID          string `json:"owner_id"`
	IsShared         bool   `json:"is_shared"`
	ShareReferenceID string `json:"share_reference_id,omitempty"`
	ZoneID           string `json:"zone_id,omitempty"`
}

func toPantryPayload(p model.Pantry) pantryPayload {
	return pantryPayload{
		ID:               p.ID,
		Name:             p.Name,
		OwnerID:          p.OwnerID,
		IsShared:         p.IsShared,
		ShareReferenceID: p.ShareReferenceID,
		ZoneID:           p.Zone,
	}
}

func toPantryPayloads(pantries []model.Pantry) []pantryPayload {
	out := make([]pantryPayload, 0, len(pantries))
	for _, p := range pantries {
		out = append(out, toPantryPayload(p))
	}
	return out
}

type listPantriesResponse struct {
	Private []pantryPayload `json:"private"`
	Shared  []pantryPayload `json:"shared"`
}

type createPantryRequest struct {
	Name     string `json:"name" binding:"required"`
	IsShared bool   `json:"is_shared"`
}

type updatePantryRequest struct {
	Name string `json:"name" binding:"required"`
}

type sharingInfoResponse struct {
	Pantry pantryPayload `json:"pantry"`
	Share  sharePayload  `json:"share"`
}

type sharePayload struct {
	ID     string `json:"id"`
	ZoneID string `json:"zone_id"`
	Token  string `json:"token"`
	Title  string `json:"title"`
}

type acceptShareRequest struct {
	Token string `json:"token" binding:"required"`
}

type participantPayload struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name,omitempty"`
	Permission string `json:"permission"`
}

func toParticipantPayloads(participants []model.Participant) []participantPayload {
	out := make([]participantPayload, 0, len(participants))
	for _, p := range participants {
		out = append(out, participantPayload{
			UserID:     p.UserID,
			Name:       p.Name,
			Permission: string(p.Permission),
		})
	}
	return out
}
