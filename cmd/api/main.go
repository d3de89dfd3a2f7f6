package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mypantry/config"
	"mypantry/internal/httpserver"
	"mypantry/internal/identity"
	itemDelivery "mypantry/internal/item/delivery/http"
	itemUC "mypantry/internal/item/usecase"
	pantryDelivery "mypantry/internal/pantry/delivery/http"
	pantryUC "mypantry/internal/pantry/usecase"
	"mypantry/internal/sharing/broker"
	"mypantry/internal/store"
	"mypantry/internal/store/memory"
	"mypantry/internal/store/remote"
	"mypantry/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MyPantry sync service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Record store
	var (
		recordStore store.Store
		shareStore  store.ShareStore
	)
	if cfg.Store.URL != "" {
		client := remote.NewClient(cfg.Store.URL, cfg.Store.AccessToken, cfg.Store.RequestsPerSec)
		st := remote.New(client, logger)
		recordStore, shareStore = st, st
		logger.Infof(ctx, "Store: remote at %s", cfg.Store.URL)
	} else {
		mem := memory.New()
		mem.CurrentUser = cfg.Identity.UserID
		recordStore, shareStore = mem, mem
		logger.Warn(ctx, "Store: in-memory (store.url not configured, data is not persisted)")
	}

	// 4. Identity
	ids := identity.NewStatic(cfg.Identity.UserID)
	if !ids.IsSignedIn(ctx) {
		logger.Warn(ctx, "No user identity configured, requests will be rejected as unauthorized")
	}

	// 5. Sharing broker
	shareBroker := broker.New(logger, recordStore, shareStore)

	// 6. UseCases
	pantryUseCase := pantryUC.New(logger, recordStore, shareBroker)
	itemUseCase := itemUC.New(logger, recordStore)

	// 7. Delivery handlers
	pantryHandler := pantryDelivery.New(logger, pantryUseCase, ids)
	itemHandler := itemDelivery.New(logger, itemUseCase, pantryUseCase, ids)

	// 8. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		PantryHandler: pantryHandler,
		ItemHandler:   itemHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
