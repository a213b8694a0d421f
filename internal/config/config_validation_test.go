package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := minimalConfig()
	cfg.applyDefaults()
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing keys are allowed", mutate: func(c *StructuredConfig) {
			c.App.DataKeyB64, c.App.IndexKeyB64 = "", ""
		}},
		{name: "valid base64 keys", mutate: func(c *StructuredConfig) {
			c.App.DataKeyB64 = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
			c.App.IndexKeyB64 = "aW5kZXg="
		}},
		{name: "bad data key", mutate: func(c *StructuredConfig) { c.App.DataKeyB64 = "***" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad index key", mutate: func(c *StructuredConfig) { c.App.IndexKeyB64 = "%%%" }, wantErr: ErrInvalidAppConfigs},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "bad mfa store", mutate: func(c *StructuredConfig) { c.MFA.Store = "etcd" }, wantErr: ErrInvalidMFAConfigs},
		{name: "redis without address", mutate: func(c *StructuredConfig) { c.MFA.Store = MFAStoreRedis }, wantErr: ErrInvalidMFAConfigs},
		{name: "redis with address", mutate: func(c *StructuredConfig) {
			c.MFA.Store = MFAStoreRedis
			c.MFA.Redis.Address = "localhost:6379"
		}},
		{name: "negative ttl", mutate: func(c *StructuredConfig) { c.MFA.CodeTTL = -1 }, wantErr: ErrInvalidMFAConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetCLIConfig(t *testing.T) {
	t.Setenv("APP_INDEX_KEY_B64", "aW5kZXg=")

	cfg, err := GetCLIConfig()
	require.NoError(t, err)
	assert.Equal(t, "aW5kZXg=", cfg.App.IndexKeyB64)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerURL)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestGetCLIConfig_Invalid(t *testing.T) {
	t.Setenv("PLANTCTL_REQUEST_TIMEOUT", "0s")

	_, err := GetCLIConfig()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
