// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultClientPackage  = "io.gopass.unlock"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// ClientPackage is sent as X-Client-Package on every request.
	ClientPackage string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the auth API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientCrypto is the device KDF budget. Zero values mean "use the
// crypto package defaults".
type ClientCrypto struct {
	MaxMemLimit uint64
	MaxOpsLimit uint32
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Crypto  ClientCrypto
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps the structured config onto the client view and
// fills defaults for optional settings.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{ClientPackage: cfg.App.ClientPackage},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Crypto: ClientCrypto{
			MaxMemLimit: cfg.Crypto.MaxMemLimit,
			MaxOpsLimit: cfg.Crypto.MaxOpsLimit,
		},
	}

	if clientCfg.App.ClientPackage == "" {
		clientCfg.App.ClientPackage = defaultClientPackage
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg
}
