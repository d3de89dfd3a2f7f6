package model

// Scope carries the request-scoped caller identity through the usecase layer.
type Scope struct {
	UserID string
}
