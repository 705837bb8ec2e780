package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the acervo
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session signing key
	// and session lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// relational database, the redis session store, and the asset area.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// lifecycle.
type App struct {
	// SessionSignKey is the secret key used to sign the session cookie
	// container with HMAC-SHA256. Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every signed session
	// container. Containers whose issuer does not match are rejected.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER" envDefault:"acervo"`

	// SessionTTL is the idle/absolute lifetime of a server-side session.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the session store connection settings.
	Redis Redis `envPrefix:"REDIS_"`

	// Assets holds the file-system storage settings for uploaded documents.
	Assets Assets `envPrefix:"ASSETS_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver selects the database/sql driver: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" envDefault:"pgx"`

	// DSN is the database connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Redis holds the connection settings of the session store.
type Redis struct {
	// Address is the redis server address in host:port form.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS" envDefault:"localhost:6379"`

	// Password is the optional redis AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the redis logical database number.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB" envDefault:"0"`
}

// Assets holds the file-system storage settings for uploaded documents.
type Assets struct {
	// Dir is the root directory under which one sub-directory per asset
	// category is created.
	// Env: STORAGE_ASSETS_DIR
	Dir string `env:"DIR" envDefault:"uploads"`

	// MaxUploadBytes caps the total size of an incoming registration
	// request, enforced at the transport boundary before any file is read.
	// Env: STORAGE_ASSETS_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"` // 10 MiB
}

// Server holds network address and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds the processing time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is the period between two runs of the orphaned-asset
	// reconciliation sweep. Zero disables the sweeper.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources.
//
// Priority order (later sources fill fields still zero after earlier ones):
// environment variables, command-line flags, JSON config file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
