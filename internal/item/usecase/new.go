package usecase

import (
	"time"

	"mypantry/internal/item"
	"mypantry/internal/store"
	pkgLog "mypantry/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store store.Store
	now   func() time.Time
}

// New creates a new item UseCase instance.
func New(l pkgLog.Logger, st store.Store) item.UseCase {
	return &implUseCase{
		l:     l,
		store: st,
		now:   time.Now,
	}
}
