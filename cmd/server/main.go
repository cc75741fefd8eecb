package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bruno-soares-web/techmanage/internal/http/health"
	"github.com/bruno-soares-web/techmanage/internal/http/v1/routes"
	"github.com/bruno-soares-web/techmanage/internal/platform/apierror"
	"github.com/bruno-soares-web/techmanage/internal/platform/firebase"
	"github.com/bruno-soares-web/techmanage/internal/platform/logging"
	appmiddleware "github.com/bruno-soares-web/techmanage/internal/platform/middleware"
	"github.com/bruno-soares-web/techmanage/internal/user"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	_ = godotenv.Load()

	defer func() {
		if err := logging.Sync(); err != nil {
			logging.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := logging.Err(); err != nil {
		logging.LogError(context.Background(), "logger init error", err)
	}

	ctx := context.Background()
	store, closeStore, err := newStore(ctx)
	if err != nil {
		logging.LogFatal(ctx, "store init failed", err)
	}
	defer closeStore()

	router := chi.NewRouter()
	router.NotFound(apierror.NotFoundHandler())
	router.MethodNotAllowed(apierror.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// Only safe behind a trusted reverse proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		logging.RequestLogger(),
		logging.AccessLogger(),
		apierror.Recoverer(),
	)

	router.Get("/health", health.Handler)

	apierror.Install()
	cfg := huma.DefaultConfig("TechManage API", Version)
	cfg.DocsPath = "/api-docs"
	// Response bodies carry no $schema link key.
	cfg.CreateHooks = nil
	cfg.Transformers = nil
	api := humachi.New(router, cfg)

	routes.Register(api, user.NewService(store))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		logging.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		logging.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		logging.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.LogError(shutdownCtx, "server shutdown error", err)
	}
	logging.LogInfo(context.Background(), "server exited")
}

// newStore selects the persistence backend: Firestore when a project id is
// configured, otherwise an in-memory store for local runs.
func newStore(ctx context.Context) (user.Store, func(), error) {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		logging.LogWarn(ctx, "FIREBASE_PROJECT_ID not set, using in-memory store")
		return user.NewMemoryStore(), func() {}, nil
	}

	client, err := firebase.NewFirestoreClient(ctx, firebase.Config{
		ProjectID:                    projectID,
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	})
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := client.Close(); err != nil {
			logging.LogError(context.Background(), "firestore close error", err)
		}
	}
	return user.NewFirestoreStore(client), closeStore, nil
}
