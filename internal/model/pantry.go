package model

// Pantry is a named collection of items owned by a single user. A pantry
// starts private; sharing moves its records into a dedicated zone exactly
// once — there is no transition back to private.
type Pantry struct {
	ID               string
	Name             string
	OwnerID          string
	IsShared         bool
	ShareReferenceID string // record id of the share, set after sharing
	Zone             string // dedicated zone id; non-empty whenever IsShared
}

// ShareHandle is the opaque credential granting other users access to a
// shared zone's records.
type ShareHandle struct {
	ID    string
	Zone  string
	Token string
	Title string
}

// SharingInfo pairs a pantry with its current share handle. It is produced
// by the sharing flow and consumed by the caller to drive an invitation; it
// is never persisted.
type SharingInfo struct {
	Pantry Pantry
	Share  ShareHandle
}

// Permission is the access level a participant holds on a share.
type Permission string

const (
	PermissionOwner     Permission = "owner"
	PermissionReadWrite Permission = "readWrite"
	PermissionReadOnly  Permission = "readOnly"
)

// Participant is a user identity bound to a share.
type Participant struct {
	UserID     string
	Name       string
	Permission Permission
}
