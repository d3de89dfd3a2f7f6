package record

import "mypantry/internal/model"

// TypeItem is the record type tag for items.
const TypeItem = "Item"

// FieldPantryID is exported because the item service pushes an equality
// filter on it down to the store.
const FieldPantryID = "pantryId"

// Item field keys.
const (
	itemFieldName            = "name"
	itemFieldQuantity        = "quantity"
	itemFieldQuantityDesired = "quantityDesired"
	itemFieldBarcode         = "barcode"
	itemFieldFavorite        = "favorite"
	itemFieldCustomContent1  = "customContent1"
	itemFieldCustomContent2  = "customContent2"
	itemFieldCustomContent3  = "customContent3"
	itemFieldDateAdded       = "dateAdded"
	itemFieldDateLastUpdated = "dateLastUpdated"
	itemFieldExpireDate      = "expireDate"
	itemFieldNote            = "note"
	itemFieldStatus          = "status"
)

// ItemToRecord encodes an item. Total: any well-formed item encodes.
func ItemToRecord(it model.Item, zone ZoneID) Record {
	fields := make(Fields)
	fields.SetString(itemFieldName, it.Name)
	fields.SetInt(itemFieldQuantity, int64(it.Quantity))
	fields.SetOptionalInt(itemFieldQuantityDesired, it.QuantityDesired)
	fields.SetOptionalString(itemFieldBarcode, it.Barcode)
	fields.SetBool(itemFieldFavorite, it.Favorite)
	fields.SetOptionalString(itemFieldCustomContent1, it.CustomContent1)
	fields.SetOptionalString(itemFieldCustomContent2, it.CustomContent2)
	fields.SetOptionalString(itemFieldCustomContent3, it.CustomContent3)
	fields.SetTime(itemFieldDateAdded, it.DateAdded)
	fields.SetTime(itemFieldDateLastUpdated, it.DateLastUpdated)
	fields.SetOptionalTime(itemFieldExpireDate, it.ExpireDate)
	fields.SetOptionalString(itemFieldNote, it.Note)
	fields.SetString(FieldPantryID, it.PantryID)
	fields.SetInt(itemFieldStatus, int64(it.Status))

	return Record{
		Type:   TypeItem,
		ID:     it.ID,
		Zone:   zone,
		Fields: fields,
	}
}

// ItemFromRecord decodes an item record. ok is false when the record type is
// wrong, a required field is missing or mistyped, or the status code falls
// outside the known set.
func ItemFromRecord(r Record) (model.Item, bool) {
	if r.Type != TypeItem {
		return model.Item{}, false
	}

	name, ok := r.Fields.GetString(itemFieldName)
	if !ok {
		return model.Item{}, false
	}
	quantity, ok := r.Fields.GetInt(itemFieldQuantity)
	if !ok {
		return model.Item{}, false
	}
	favorite, ok := r.Fields.GetBool(itemFieldFavorite)
	if !ok {
		return model.Item{}, false
	}
	dateAdded, ok := r.Fields.GetTime(itemFieldDateAdded)
	if !ok {
		return model.Item{}, false
	}
	dateLastUpdated, ok := r.Fields.GetTime(itemFieldDateLastUpdated)
	if !ok {
		return model.Item{}, false
	}
	pantryID, ok := r.Fields.GetString(FieldPantryID)
	if !ok {
		return model.Item{}, false
	}
	statusCode, ok := r.Fields.GetInt(itemFieldStatus)
	if !ok {
		return model.Item{}, false
	}
	status := model.Status(statusCode)
	if !status.Valid() {
		return model.Item{}, false
	}

	quantityDesired, ok := r.Fields.GetOptionalInt(itemFieldQuantityDesired)
	if !ok {
		return model.Item{}, false
	}
	barcode, ok := r.Fields.GetOptionalString(itemFieldBarcode)
	if !ok {
		return model.Item{}, false
	}
	custom1, ok := r.Fields.GetOptionalString(itemFieldCustomContent1)
	if !ok {
		return model.Item{}, false
	}
	custom2, ok := r.Fields.GetOptionalString(itemFieldCustomContent2)
	if !ok {
		return model.Item{}, false
	}
	custom3, ok := r.Fields.GetOptionalString(itemFieldCustomContent3)
	if !ok {
		return model.Item{}, false
	}
	expireDate, ok := r.Fields.GetOptionalTime(itemFieldExpireDate)
	if !ok {
		return model.Item{}, false
	}
	note, ok := r.Fields.GetOptionalString(itemFieldNote)
	if !ok {
		return model.Item{}, false
	}

	return model.Item{
		ID:              r.ID,
		Name:            name,
		Quantity:        int(quantity),
		QuantityDesired: quantityDesired,
		Barcode:         barcode,
		Favorite:        favorite,
		CustomContent1:  custom1,
		CustomContent2:  custom2,
		CustomContent3:  custom3,
		DateAdded:       dateAdded,
		DateLastUpdated: dateLastUpdated,
		ExpireDate:      expireDate,
		Note:            note,
		PantryID:        pantryID,
		Status:          status,
	}, true
}
