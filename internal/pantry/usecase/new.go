package usecase

import (
	"mypantry/internal/pantry"
	"mypantry/internal/sharing"
	"mypantry/internal/store"
	pkgLog "mypantry/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	store  store.Store
	broker sharing.Broker
}

// New creates a new pantry UseCase instance.
func New(l pkgLog.Logger, st store.Store, broker sharing.Broker) pantry.UseCase {
	return &implUseCase{
		l:      l,
		store:  st,
		broker: broker,
	}
}
