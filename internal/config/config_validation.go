// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// [StructuredConfig.applyDefaults].
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	if app.AccessTokenKey == "" || app.RefreshTokenKey == "" || app.ResetTokenKey == "" {
		return fmt.Errorf("%w: access, refresh and reset token keys are required", ErrInvalidAppConfigs)
	}
	if app.AccessTokenDuration <= 0 || app.RefreshTokenDuration <= 0 || app.ResetTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if app.BcryptCost < minBcryptCost || app.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, app.BcryptCost)
	}
	if _, err := url.ParseRequestURI(app.PublicURL); err != nil {
		return fmt.Errorf("%w: public url: %v", ErrInvalidAppConfigs, err)
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if _, err := url.ParseRequestURI(cfg.Adapter.PlaceholderURL); err != nil {
		return fmt.Errorf("%w: placeholder url: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Mail.Host != "" && cfg.Mail.From == "" {
		return fmt.Errorf("%w: sender address is required with a mail host", ErrInvalidMailConfigs)
	}

	if cfg.Workers.PostsRefreshInterval < 0 {
		return fmt.Errorf("%w: negative posts refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
