package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vrsandeep/mango-marks/internal/api"
	"github.com/vrsandeep/mango-marks/internal/config"
	"github.com/vrsandeep/mango-marks/internal/core"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers"
	"github.com/vrsandeep/mango-marks/internal/watcher"
)

// version is set at build time.
var version = "dev"

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Register all available metadata providers here.
	providers.RegisterDefaults(cfg)

	// Initialize the core application components
	app, err := core.New(cfg, version)
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}
	defer app.Close()

	// Reload the exported bookmarks file whenever it changes
	if path := cfg.Bookmarks.WatchFile; path != "" {
		fileWatcher := watcher.NewWatcherService(path, cfg.Bookmarks.Debounce, app.Loads())
		if err := fileWatcher.Start(); err != nil {
			log.Printf("Warning: could not watch bookmarks file %s: %v", path, err)
		} else {
			defer fileWatcher.Stop()
		}
	}

	// Setup the API server
	server := api.NewServer(app)
	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}
	// --- Graceful Shutdown ---
	// Start the server in a goroutine so it doesn't block.
	go func() {
		log.Printf("Starting web server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	// Wait for an interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create a context with a timeout to allow existing connections to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt a graceful shutdown.
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
