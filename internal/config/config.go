// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vrsandeep/mango-marks/internal/tracker"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port int `mapstructure:"port"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Pipeline struct {
		DropUnknown bool               `mapstructure:"drop_unknown"`
		NoiseTokens []string           `mapstructure:"noise_tokens"`
		Keywords    tracker.KeywordSet `mapstructure:"keywords"`
	} `mapstructure:"pipeline"`
	Metadata struct {
		Provider string        `mapstructure:"provider"`
		Timeout  time.Duration `mapstructure:"timeout"`
		Kitsu    struct {
			BaseURL string `mapstructure:"base_url"`
		} `mapstructure:"kitsu"`
		MangaDex struct {
			BaseURL      string `mapstructure:"base_url"`
			CoverBaseURL string `mapstructure:"cover_base_url"`
		} `mapstructure:"mangadex"`
		WeebCentral struct {
			BaseURL string `mapstructure:"base_url"`
		} `mapstructure:"weebcentral"`
	} `mapstructure:"metadata"`
	Bookmarks struct {
		WatchFile string        `mapstructure:"watch_file"`
		Debounce  time.Duration `mapstructure:"debounce"`
	} `mapstructure:"bookmarks"`
	Extension struct {
		MinVersion string `mapstructure:"min_version"`
	} `mapstructure:"extension"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path falls back
// to looking for config.yml in the current directory.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config") // name of config file (without extension)
		v.SetConfigType("yml")    // or "yaml"
		v.AddConfigPath(".")      // looking for config in the current directory
	}

	// --- Environment Variable Overrides ---
	// e.g., MANGO_MARKS_METADATA_PROVIDER overrides `metadata.provider`.
	v.SetEnvPrefix("MANGO_MARKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			// Config file was found but another error was produced,
			// or an explicitly requested file is missing.
			return nil, err
		}
		// Config file not found; ignore error and use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	keywords := tracker.DefaultKeywords()

	v.SetDefault("port", 8080)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("pipeline.drop_unknown", true)
	v.SetDefault("pipeline.noise_tokens", tracker.DefaultNoiseTokens)
	v.SetDefault("pipeline.keywords.manhwa", keywords.Manhwa)
	v.SetDefault("pipeline.keywords.manhua", keywords.Manhua)
	v.SetDefault("pipeline.keywords.manga", keywords.Manga)
	v.SetDefault("metadata.provider", "kitsu")
	v.SetDefault("metadata.timeout", "20s")
	v.SetDefault("metadata.kitsu.base_url", "https://kitsu.io")
	v.SetDefault("metadata.mangadex.base_url", "https://api.mangadex.org")
	v.SetDefault("metadata.mangadex.cover_base_url", "https://uploads.mangadex.org")
	v.SetDefault("metadata.weebcentral.base_url", "https://weebcentral.com")
	v.SetDefault("bookmarks.watch_file", "")
	v.SetDefault("bookmarks.debounce", "2s")
	v.SetDefault("extension.min_version", "1.0.0")
}
