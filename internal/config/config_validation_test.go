package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSignKey: "secret",
			SessionIssuer:  "acervo",
			SessionTTL:     24 * time.Hour,
		},
		Storage: Storage{
			DB:     DB{Driver: "pgx", DSN: "postgres://localhost/acervo"},
			Redis:  Redis{Address: "localhost:6379"},
			Assets: Assets{Dir: "uploads", MaxUploadBytes: 10 << 20},
		},
		Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing session sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero session TTL",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionTTL = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty uploads dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Assets.Dir = "" },
			wantErr: ErrInvalidAssetConfigs,
		},
		{
			name:    "non-positive upload cap",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Assets.MaxUploadBytes = 0 },
			wantErr: ErrInvalidAssetConfigs,
		},
		{
			name:    "empty server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
