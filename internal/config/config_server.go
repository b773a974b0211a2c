package config

import (
	"fmt"
	"time"
)

// ServerConfig is the remote authority's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Log     Log

	// IssueTokenFor switches the binary into token issuing mode.
	IssueTokenFor string
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg onto the server view and fills defaults.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Log:     cfg.Log,

		IssueTokenFor: cfg.IssueTokenFor,
	}

	setDefault(&serverCfg.Server.RequestTimeout, 30*time.Second)
	setDefault(&serverCfg.App.TokenDuration, 24*time.Hour)
	setDefault(&serverCfg.App.TokenIssuer, "go-sync-keeper")

	return serverCfg
}
