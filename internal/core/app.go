package core

import (
	"fmt"
	"log"

	"github.com/vrsandeep/mango-marks/internal/config"
	"github.com/vrsandeep/mango-marks/internal/loads"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers"
	"github.com/vrsandeep/mango-marks/internal/models"
	"github.com/vrsandeep/mango-marks/internal/tracker"
	"github.com/vrsandeep/mango-marks/internal/view"
	"github.com/vrsandeep/mango-marks/internal/websocket"
)

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	config   *config.Config
	version  string
	wsHub    *websocket.Hub
	provider models.MetadataProvider
	pipeline *tracker.Pipeline
	view     *view.Store
	loads    *loads.Manager
}

// New wires the application from cfg. Providers must already be
// registered; the configured one backs metadata lookups.
func New(cfg *config.Config, version string) (*App, error) {
	provider, err := providers.Default(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to select metadata provider: %w", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	app := NewWith(cfg, version, provider, hub)
	log.Printf("Core application setup complete (metadata provider: %s, %d noise tokens).",
		provider.GetInfo().ID, len(app.pipeline.Cleaner.Tokens()))
	return app, nil
}

// NewWith builds an App around already constructed parts.
func NewWith(cfg *config.Config, version string, provider models.MetadataProvider, hub *websocket.Hub) *App {
	app := &App{
		config:   cfg,
		version:  version,
		wsHub:    hub,
		provider: provider,
		pipeline: NewPipeline(cfg, provider),
		view:     view.NewStore(),
	}
	app.loads = loads.NewManager(app)
	return app
}

// NewPipeline builds the normalization pipeline described by cfg.
func NewPipeline(cfg *config.Config, provider models.MetadataProvider) *tracker.Pipeline {
	p := cfg.Pipeline
	return tracker.NewPipeline(
		tracker.NewClassifier(p.Keywords),
		tracker.NewCleaner(p.NoiseTokens),
		tracker.NewEnricher(provider),
		p.DropUnknown,
	)
}

func (a *App) Config() *config.Config            { return a.config }
func (a *App) Version() string                   { return a.version }
func (a *App) WsHub() *websocket.Hub             { return a.wsHub }
func (a *App) Provider() models.MetadataProvider { return a.provider }
func (a *App) Pipeline() *tracker.Pipeline       { return a.pipeline }
func (a *App) View() *view.Store                 { return a.view }
func (a *App) Loads() *loads.Manager             { return a.loads }

// Close waits for in-flight loads to finish.
func (a *App) Close() {
	if a.loads != nil {
		a.loads.Wait()
	}
}
