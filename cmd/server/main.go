package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/profile-gallery/internal/gallery"
	"github.com/janisto/profile-gallery/internal/http/health"
	"github.com/janisto/profile-gallery/internal/http/v1/routes"
	"github.com/janisto/profile-gallery/internal/http/web"
	"github.com/janisto/profile-gallery/internal/platform/config"
	applog "github.com/janisto/profile-gallery/internal/platform/logging"
	appmiddleware "github.com/janisto/profile-gallery/internal/platform/middleware"
	"github.com/janisto/profile-gallery/internal/platform/respond"
	"github.com/janisto/profile-gallery/internal/service/randomuser"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiPrefix = "/v1"
	docsPath  = "/api-docs"
)

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}
	applog.SetLevel(cfg.Logging.Level)
	applog.SetProjectID(cfg.Logging.ProjectID)

	store := gallery.NewStore()
	loadProfiles(context.Background(), cfg, store)
	registry := gallery.NewRegistry(store, cfg.Gallery.MaxSessions)

	router := newRouter(cfg, registry, Version)
	srv := newHTTPServer(cfg.Server.Port, router)

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// loadProfiles runs the one startup fetch. Failures leave the store empty.
func loadProfiles(ctx context.Context, cfg *config.Config, store *gallery.Store) int {
	ctx, cancel := context.WithTimeout(ctx, cfg.RandomUser.FetchTimeout)
	defer cancel()

	client := randomuser.NewClient(
		&http.Client{Timeout: cfg.RandomUser.FetchTimeout},
		randomuser.WithBaseURL(cfg.RandomUser.URL),
		randomuser.WithResults(cfg.RandomUser.Results),
		randomuser.WithNationality(cfg.RandomUser.Nationality),
	)
	return randomuser.NewGateway(client).LoadInto(ctx, store)
}

func newRouter(cfg *config.Config, registry *gallery.Registry, version string) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(imageHosts(cfg.RandomUser.URL), apiPrefix+docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(registry.Store()))
	web.NewHandler(registry).Register(router)

	router.Route(apiPrefix, func(r chi.Router) {
		humaCfg := huma.DefaultConfig("Profile Gallery API", version)
		humaCfg.DocsPath = docsPath
		humaCfg.Servers = []*huma.Server{{URL: apiPrefix}}
		api := humachi.New(r, humaCfg)
		addCBORContent(api)
		routes.Register(api, registry)
	})
	return router
}

// addCBORContent advertises application/cbor next to every JSON body in the OpenAPI document.
func addCBORContent(api huma.API) {
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}

func newHTTPServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// imageHosts is the avatar origin allowed by the content security policy.
func imageHosts(upstream string) []string {
	u, err := url.Parse(upstream)
	if err != nil || u.Host == "" {
		return nil
	}
	return []string{u.Scheme + "://" + u.Host}
}
