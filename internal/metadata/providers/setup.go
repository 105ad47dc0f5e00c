package providers

import (
	"fmt"

	"github.com/vrsandeep/mango-marks/internal/config"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers/kitsu"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers/mangadex"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers/mockadex"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers/none"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers/weebcentral"
	"github.com/vrsandeep/mango-marks/internal/models"
)

// Builtin constructs every built-in provider, configured from cfg.
func Builtin(cfg *config.Config) []models.MetadataProvider {
	md := cfg.Metadata
	return []models.MetadataProvider{
		kitsu.NewWithBaseURL(md.Kitsu.BaseURL, md.Timeout),
		mangadex.NewWithBaseURL(md.MangaDex.BaseURL, md.MangaDex.CoverBaseURL, md.Timeout),
		weebcentral.NewWithBaseURL(md.WeebCentral.BaseURL, md.Timeout),
		mockadex.New(),
		none.New(),
	}
}

// RegisterDefaults registers every built-in provider, configured from cfg.
// It must only be called once per process.
func RegisterDefaults(cfg *config.Config) {
	for _, p := range Builtin(cfg) {
		Register(p)
	}
}

// Default returns the provider named by metadata.provider.
func Default(cfg *config.Config) (models.MetadataProvider, error) {
	p, ok := Get(cfg.Metadata.Provider)
	if !ok {
		return nil, fmt.Errorf("unknown metadata provider %q", cfg.Metadata.Provider)
	}
	return p, nil
}
