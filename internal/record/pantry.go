package record

import "mypantry/internal/model"

// TypePantry is the record type tag for pantries.
const TypePantry = "Pantry"

// Pantry field keys.
const (
	pantryFieldName           = "name"
	pantryFieldOwnerID        = "ownerId"
	pantryFieldIsShared       = "isShared"
	pantryFieldShareReference = "shareReference"
)

// PantryToRecord encodes a pantry. Total: any well-formed pantry encodes.
func PantryToRecord(p model.Pantry) Record {
	fields := make(Fields)
	fields.SetString(pantryFieldName, p.Name)
	fields.SetString(pantryFieldOwnerID, p.OwnerID)
	fields.SetBool(pantryFieldIsShared, p.IsShared)
	if p.ShareReferenceID != "" {
		fields.SetReference(pantryFieldShareReference, p.ShareReferenceID)
	}

	return Record{
		Type:   TypePantry,
		ID:     p.ID,
		Zone:   ZoneID(p.Zone),
		Fields: fields,
	}
}

// PantryFromRecord decodes a pantry record. ok is false when the record type
// is wrong or any required field is missing or mistyped.
func PantryFromRecord(r Record) (model.Pantry, bool) {
	if r.Type != TypePantry {
		return model.Pantry{}, false
	}

	name, ok := r.Fields.GetString(pantryFieldName)
	if !ok {
		return model.Pantry{}, false
	}
	ownerID, ok := r.Fields.GetString(pantryFieldOwnerID)
	if !ok {
		return model.Pantry{}, false
	}
	isShared, ok := r.Fields.GetBool(pantryFieldIsShared)
	if !ok {
		return model.Pantry{}, false
	}
	shareRef, ok := r.Fields.GetOptionalReference(pantryFieldShareReference)
	if !ok {
		return model.Pantry{}, false
	}

	p := model.Pantry{
		ID:       r.ID,
		Name:     name,
		OwnerID:  ownerID,
		IsShared: isShared,
		Zone:     string(r.Zone),
	}
	if shareRef != nil {
		p.ShareReferenceID = *shareRef
	}
	return p, true
}
