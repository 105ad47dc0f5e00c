// Shared test setup utilities, which simplify the API and watcher tests.

package testutil

import (
	"testing"

	"github.com/vrsandeep/mango-marks/internal/config"
	"github.com/vrsandeep/mango-marks/internal/core"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers/mockadex"
	"github.com/vrsandeep/mango-marks/internal/websocket"
)

// TestConfig returns the configuration the tests run with: defaults,
// unknown bookmarks dropped, offline metadata.
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Port = 8080
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Pipeline.DropUnknown = true
	cfg.Metadata.Provider = "mockadex"
	cfg.Extension.MinVersion = "1.0.0"
	return cfg
}

// SetupTestApp builds a core.App backed by the mockadex provider.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()
	hub := websocket.NewHub()
	go hub.Run()

	t.Cleanup(func() {
		providers.UnregisterAll()
	})

	// Register providers for the test environment
	provider := mockadex.New()
	providers.Register(provider)

	app := core.NewWith(TestConfig(), "test", provider, hub)
	t.Cleanup(app.Close)
	return app
}
