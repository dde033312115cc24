package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/liquorlocker/internal/adapter/driven/assetfs"
	"github.com/ericfisherdev/liquorlocker/internal/adapter/driven/jsonfile"
	"github.com/ericfisherdev/liquorlocker/internal/adapter/driven/raster"
	httphandler "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web"
	"github.com/ericfisherdev/liquorlocker/internal/application"
	"github.com/ericfisherdev/liquorlocker/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	if err := config.LoadEnvFile(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"public_dir", cfg.PublicDir,
		"catalog_path", cfg.CatalogPath,
		"asset_mode", cfg.AssetMode,
		"site_url", cfg.SiteURL,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire adapters. The public directory is read live so new product
	// images and catalog edits show up without a restart.
	public := os.DirFS(cfg.PublicDir)
	assetDir, assetPrefix := cfg.AssetRoot()

	catalogStore := jsonfile.NewCatalogFile(cfg.CatalogPath)
	assetLister := assetfs.NewLister(public, assetDir, assetPrefix, cfg.AssetMode == config.AssetModeRecursive)
	imageSource := assetfs.NewImages(public)
	rasterizer := raster.New()

	// 4. Create application services.
	catalogSvc := application.NewCatalogService(catalogStore, assetLister)
	heroSvc := application.NewHeroService(catalogSvc, imageSource, rasterizer)
	imageSvc := application.NewImageService(imageSource, rasterizer)

	// 5. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(catalogSvc, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 6. Create web handler and register page routes.
	webHandler := webhandler.NewHandler(catalogSvc, heroSvc, imageSvc, public, cfg.SiteURL, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	// 7. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 8. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
