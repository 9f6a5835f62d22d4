package lives

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the process-level settings of a lives server, read from
// the environment. Gameplay tunables live in each world's HardcoreConfig.
type ServerConfig struct {
	ListenAddress    string        `env:"LIVES_LISTEN_ADDR" envDefault:":19132"`
	ServerName       string        `env:"LIVES_SERVER_NAME" envDefault:"Hardcore"`
	WorldFolder      string        `env:"LIVES_WORLD_FOLDER" envDefault:"world"`
	Store            string        `env:"LIVES_STORE" envDefault:"bolt"`
	DataPath         string        `env:"LIVES_DATA_PATH"`
	SaveSlot         string        `env:"LIVES_SAVE_SLOT"`
	Operators        []string      `env:"LIVES_OPERATORS" envSeparator:","`
	AutosaveInterval time.Duration `env:"LIVES_AUTOSAVE_INTERVAL" envDefault:"30s"`
	LogLevel         slog.Level    `env:"LIVES_LOG_LEVEL" envDefault:"INFO"`
}

// LoadServerConfig reads a ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var c ServerConfig
	if err := env.Parse(&c); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if c.AutosaveInterval <= 0 {
		return ServerConfig{}, fmt.Errorf("LIVES_AUTOSAVE_INTERVAL must be positive, got %s", c.AutosaveInterval)
	}
	return c, nil
}

// RegionPath returns the file the region is stored in. It defaults to a file
// inside the world folder named after the store backend.
func (c ServerConfig) RegionPath() string {
	if strings.TrimSpace(c.DataPath) != "" {
		return c.DataPath
	}
	switch c.Store {
	case "sqlite":
		return filepath.Join(c.WorldFolder, "lives.sqlite")
	default:
		return filepath.Join(c.WorldFolder, "lives.db")
	}
}

// OpenRegion opens the region selected by the Store setting: "bolt" (the
// default) or "sqlite".
func (c ServerConfig) OpenRegion() (Region, error) {
	switch strings.ToLower(strings.TrimSpace(c.Store)) {
	case "", "bolt":
		return OpenBoltRegion(c.RegionPath())
	case "sqlite":
		return OpenSQLiteRegion(c.RegionPath())
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}
}
