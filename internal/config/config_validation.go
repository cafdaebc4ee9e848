// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// minMemBudget is the smallest Argon2id memLimit (bytes); a budget below it
// would reject every account.
const minMemBudget = 8 * 1024

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Crypto.MaxMemLimit != 0 && cfg.Crypto.MaxMemLimit < minMemBudget {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
