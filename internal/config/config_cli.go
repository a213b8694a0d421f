package config

import (
	"fmt"
	"time"
)

// CLIConfig is the configuration of the plantctl operator tool. It is read
// from the environment only; command flags are handled by the CLI itself.
type CLIConfig struct {
	// App carries the same key variables as the server.
	App CLIApp `envPrefix:"APP_"`
	// Adapter points the CLI at a running server.
	Adapter CLIAdapter `envPrefix:"PLANTCTL_"`
}

// CLIApp holds the field-encryption keys used by seal, open and index.
type CLIApp struct {
	DataKeyB64  string `env:"DATA_KEY_B64"`
	IndexKeyB64 string `env:"INDEX_KEY_B64"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// CLIAdapter holds API client settings.
type CLIAdapter struct {
	// ServerURL is the base URL of the server.
	// Env: PLANTCTL_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	// RequestTimeout bounds each API call.
	// Env: PLANTCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	// Token is a bearer token from a previous "plantctl login".
	// Env: PLANTCTL_TOKEN
	Token string `env:"TOKEN"`
}

// GetCLIConfig reads and validates [CLIConfig] from the environment.
func GetCLIConfig() (*CLIConfig, error) {
	cfg := &CLIConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get cli config: %w", err)
	}
	return cfg, cfg.validate()
}
