package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when no source sets a value.
const (
	DefaultSyncInterval     = 5 * time.Minute
	DefaultRetryBaseDelay   = time.Second
	DefaultRetryMaxDelay    = 30 * time.Second
	DefaultMaxRetryAttempts = 3
	DefaultBatchSize        = 10
	DefaultCacheTimeout     = 5 * time.Minute
	DefaultProbeInterval    = 15 * time.Second
	DefaultRequestTimeout   = 10 * time.Second
	DefaultLogMaxSizeMB     = 10
	DefaultLogMaxBackups    = 3
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey signs outgoing request bodies. Empty disables signing.
	HashKey string
}

// ClientAdapter holds the settings used to reach the remote authority.
type ClientAdapter struct {
	// HTTPAddress is the remote authority base address.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
	// Token is the bearer token sent with every request.
	Token string
	// ProbeInterval is how often connectivity is re-checked.
	ProbeInterval time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file the local record store lives in.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the sync scheduler settings.
type ClientWorkers struct {
	SyncInterval     time.Duration
	RetryBaseDelay   time.Duration
	RetryMaxDelay    time.Duration
	MaxRetryAttempts int
	BatchSize        int
}

// ClientCache contains the in-memory cache settings.
type ClientCache struct {
	Timeout time.Duration
}

// ClientLog contains the client log file settings.
type ClientLog struct {
	Level      string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Cache   ClientCache
	Log     ClientLog

	// Command is the client command line, e.g. ["save", "profile", "{}"].
	Command []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto the client view and fills defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
			ProbeInterval:  cfg.Adapter.ProbeInterval,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:     cfg.Workers.SyncInterval,
			RetryBaseDelay:   cfg.Workers.RetryBaseDelay,
			RetryMaxDelay:    cfg.Workers.RetryMaxDelay,
			MaxRetryAttempts: cfg.Workers.MaxRetryAttempts,
			BatchSize:        cfg.Workers.BatchSize,
		},
		Cache: ClientCache{Timeout: cfg.Cache.Timeout},
		Log: ClientLog{
			Level:      cfg.Log.Level,
			FilePath:   cfg.Log.FilePath,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		},
		Command: cfg.Args,
	}
	clientCfg.setDefaults()

	return clientCfg
}

func (cfg *ClientConfig) setDefaults() {
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Adapter.ProbeInterval, DefaultProbeInterval)
	setDefault(&cfg.Workers.SyncInterval, DefaultSyncInterval)
	setDefault(&cfg.Workers.RetryBaseDelay, DefaultRetryBaseDelay)
	setDefault(&cfg.Workers.RetryMaxDelay, DefaultRetryMaxDelay)
	setDefault(&cfg.Workers.MaxRetryAttempts, DefaultMaxRetryAttempts)
	setDefault(&cfg.Workers.BatchSize, DefaultBatchSize)
	setDefault(&cfg.Cache.Timeout, DefaultCacheTimeout)
	setDefault(&cfg.Log.MaxSizeMB, DefaultLogMaxSizeMB)
	setDefault(&cfg.Log.MaxBackups, DefaultLogMaxBackups)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
