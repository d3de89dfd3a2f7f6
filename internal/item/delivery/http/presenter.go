package http

import (
	"time"

	"mypantry/internal/model"
	"mypantry/pkg/response"
)

type itemPayload struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Quantity        int               `json:"quantity"`
	QuantityDesired *int              `json:"quantity_desired,omitempty"`
	Barcode         *string           `json:"barcode,omitempty"`
	Favorite        bool              `json:"favorite"`
	CustomContent1  *string           `json:"custom_content_1,omitempty"`
	CustomContent2  *string           `json:"custom_content_2,omitempty"`
	CustomContent3  *string           `json:"custom_content_3,omitempty"`
	DateAdded       response.DateTime `json:"date_added"`
	DateLastUpdated response.DateTime `json:"date_last_updated"`
	ExpireDate      *response.Date    `json:"expire_date,omitempty"`
	Note            *string           `json:"note,omitempty"`
	PantryID        string            `json:"pantry_id"`
	Status          string            `json:"status"`
	StatusCode      int               `json:"status_code"`
}

func toItemPayload(it model.Item) itemPayload {
	var expire *response.Date
	if it.ExpireDate != nil {
		d := response.Date(*it.ExpireDate)
		expire = &d
	}

	return itemPayload{
		ID:              it.ID,
		Name:            it.Name,
		Quantity:        it.Quantity,
		QuantityDesired: it.QuantityDesired,
		Barcode:         it.Barcode,
		Favorite:        it.Favorite,
		CustomContent1:  it.CustomContent1,
		CustomContent2:  it.CustomContent2,
		CustomContent3:  it.CustomContent3,
		DateAdded:       response.DateTime(it.DateAdded),
		DateLastUpdated: response.DateTime(it.DateLastUpdated),
		ExpireDate:      expire,
		Note:            it.Note,
		PantryID:        it.PantryID,
		Status:          it.Status.String(),
		StatusCode:      int(it.Status),
	}
}

func toItemPayloads(items []model.Item) []itemPayload {
	out := make([]itemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, toItemPayload(it))
	}
	return out
}

type itemRequest struct {
	Name            string     `json:"name" binding:"required"`
	Quantity        int        `json:"quantity"`
	QuantityDesired *int       `json:"quantity_desired"`
	Barcode         *string    `json:"barcode"`
	Favorite        bool       `json:"favorite"`
	CustomContent1  *string    `json:"custom_content_1"`
	CustomContent2  *string    `json:"custom_content_2"`
	CustomContent3  *string    `json:"custom_content_3"`
	ExpireDate      *time.Time `json:"expire_date"`
	Note            *string    `json:"note"`
	Status          int        `json:"status_code"`
}

func (r itemRequest) toModel() model.Item {
	return model.Item{
		Name:            r.Name,
		Quantity:        r.Quantity,
		QuantityDesired: r.QuantityDesired,
		Barcode:         r.Barcode,
		Favorite:        r.Favorite,
		CustomContent1:  r.CustomContent1,
		CustomContent2:  r.CustomContent2,
		CustomContent3:  r.CustomContent3,
		ExpireDate:      r.ExpireDate,
		Note:            r.Note,
		Status:          model.Status(r.Status),
	}
}
