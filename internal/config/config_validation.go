// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if cfg.App.PageSize < 1 {
		return ErrInvalidPageSize
	}

	return nil
}
