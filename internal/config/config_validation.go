// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Missing field-encryption keys are not an error here: every operation that
// needs them fails closed on its own. A key that is present but not base64
// is rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}
	for name, key := range map[string]string{"data key": cfg.App.DataKeyB64, "index key": cfg.App.IndexKeyB64} {
		if key == "" {
			continue
		}
		if _, err := base64.StdEncoding.DecodeString(key); err != nil {
			return fmt.Errorf("%w: %s is not valid base64", ErrInvalidAppConfigs, name)
		}
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.MFA.CodeTTL <= 0 {
		return ErrInvalidMFAConfigs
	}
	switch cfg.MFA.Store {
	case MFAStoreMemory:
	case MFAStoreRedis:
		if cfg.MFA.Redis.Address == "" {
			return fmt.Errorf("%w: redis store needs an address", ErrInvalidMFAConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported store %q", ErrInvalidMFAConfigs, cfg.MFA.Store)
	}

	return nil
}

func (cfg *CLIConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
