package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nsdeveloper33/Al-Qadir-sub000/config"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/auth"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/autosave"
	handler "github.com/nsdeveloper33/Al-Qadir-sub000/internal/handler/http"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/middleware"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/repository"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/repository/postgres"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/service"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/session"
	"go.uber.org/zap"
)

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	token := auth.NewAuthToken([]byte(cfg.OperatorKey))

	// operators obtain their import credential from the same key the
	// server verifies against
	if cfg.MintTokenSubject != "" {
		minted, err := token.CreateToken(cfg.MintTokenSubject)
		if err != nil {
			logger.Fatal("Error minting operator token", zap.Error(err))
		}
		fmt.Println(minted)
		return
	}

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	err = db.Migrate()
	if err != nil {
		logger.Fatal("Error migrating database", zap.Error(err))
	}

	// dependency injection
	// catalog
	catalogRepo := repository.NewCatalogRepository(db)
	catalogService := service.NewCatalogService(catalogRepo)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// order
	orderRepo := repository.NewOrderRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	orderService := service.NewOrderService(orderRepo, catalogRepo, draftRepo, cfg.OrderIDPrefix, cfg.OrderIDWidth, logger)

	// draft
	draftService := service.NewDraftService(draftRepo, orderService, cfg.MinFilledFields, logger)
	draftHandler := handler.NewDraftHandler(draftService, logger)

	// session autosaves feed the draft store
	saveDraft := func(ctx context.Context, draft models.Draft) (bool, error) {
		return draftService.Save(ctx, &draft)
	}
	sessions := session.NewManager(ctx, cfg.AutosaveInterval, cfg.SessionTTL, cfg.HistorySize, autosave.SaveFunc(saveDraft), logger)
	go sessions.Run(ctx)
	sessionHandler := handler.NewSessionHandler(sessions, logger)

	orderHandler := handler.NewOrderHandler(orderService, sessions, logger)

	// import
	importService := service.NewImportService(orderRepo, catalogRepo, orderService, logger)
	importHandler := handler.NewImportHandler(importService, logger)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Get("/api/catalog", catalogHandler.ListItems())
	router.Get("/api/catalog/{id}", catalogHandler.GetItem())
	router.Get("/api/catalog/{id}/quantities", catalogHandler.QuantityOptions())

	router.Post("/api/draft", draftHandler.SaveDraft())
	router.Get("/api/draft", draftHandler.GetDraft())
	router.Delete("/api/draft", draftHandler.DeleteDraft())

	router.Post("/api/orders", orderHandler.SubmitOrder())
	router.Get("/api/orders", orderHandler.ListOrders())

	router.Get("/api/session", sessionHandler.GetSession())
	router.Post("/api/session/form", sessionHandler.UpdateForm())
	router.Post("/api/session/events", sessionHandler.LifecycleEvent())

	// routes that require operator authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Post("/api/orders/import", importHandler.ImportOrders())
	})

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
