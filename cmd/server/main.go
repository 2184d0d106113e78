package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/v2"

	"go-intranet-app/internal/auth"
	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/config"
	"go-intranet-app/internal/data"
	"go-intranet-app/internal/handler"
	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/markdown"
	"go-intranet-app/internal/middleware"
	"go-intranet-app/internal/service"
	"go-intranet-app/internal/storage"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, nil)

	// --- Database Initialization and Migration ---
	log.Info("Applying database migrations...")
	if err := data.ApplyMigrations(cfg.DB.DSN, "migrations"); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	// --- Object Storage Initialization ---
	log.Info("Connecting to object storage...")
	objectStore, err := storage.NewMinioStore(cfg.Storage)
	if err != nil {
		log.Fatal(err, "Failed to initialize object storage")
	}
	log.Info("Object storage connection successful.")

	// --- Session Management Setup ---
	sessionManager := scs.New()
	sessionManager.Store = mysqlstore.New(db.DB)
	sessionManager.Lifetime = time.Duration(cfg.Session.Lifetime) * time.Hour
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Server.TLS.Enabled

	// --- Authorization Setup ---
	log.Info("Initializing authorization...")
	enforcer, err := auth.NewEnforcer("mysql", cfg.DB.DSN, "auth_model.conf")
	if err != nil {
		log.Fatal(err, "Failed to initialize enforcer")
	}
	auth.SeedDefaultPolicies(enforcer, log)
	log.Info("Authorization initialized and policies seeded.")

	// --- Query Cache Initialization ---
	queryCache := cache.New(cfg.Backend.RequestTimeout)

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	renderer := markdown.New()
	categoryRepository := data.NewCategoryRepository(db)
	documentRepository := data.NewDocumentRepository(db)
	quickLinkRepository := data.NewQuickLinkRepository(db)
	siteSettingRepository := data.NewSiteSettingRepository(db)
	userRepository := data.NewUserRepository(db)

	categoryService := service.NewCategoryService(categoryRepository, documentRepository, queryCache, renderer, log, cfg.Backend.RequestTimeout)
	documentService := service.NewDocumentService(documentRepository, objectStore, queryCache, renderer, log, cfg.Backend.RequestTimeout, cfg.Backend.SignedURLTTL)
	searchService := service.NewSearchService(documentService, categoryService, log)
	siteService := service.NewSiteService(quickLinkRepository, siteSettingRepository, queryCache, log, cfg.Backend.RequestTimeout)

	handlers := handler.Handlers{
		Categories: handler.NewCategoryHandler(categoryService, log),
		Documents:  handler.NewDocumentHandler(documentService, log),
		Search:     handler.NewSearchHandler(searchService, log),
		Site:       handler.NewSiteHandler(siteService, log),
		Auth:       handler.NewAuthHandler(userRepository, auth.NewHasher(), sessionManager, log),
	}

	authzMiddleware := middleware.Authorizer(enforcer, sessionManager)

	// --- Router Setup ---
	router := handler.NewRouter(handlers, log, sessionManager.LoadAndSave, authzMiddleware)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
