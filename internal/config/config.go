// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings sent with every request.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the remote auth API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds the device budget for password key derivation.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ClientPackage identifies this client to the server
	// (X-Client-Package header).
	// Env: APP_CLIENT_PACKAGE
	ClientPackage string `env:"CLIENT_PACKAGE"`
}

// Adapter holds configuration of the remote auth API.
type Adapter struct {
	// HTTPAddress is the base URL of the API (e.g. "https://api.example.com").
	// A bare host:port is accepted and treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Crypto bounds the Argon2id cost this device is willing to run. Parameters
// above the budget are reported to the user as a weak device.
type Crypto struct {
	// MaxMemLimit is the largest accepted memLimit in bytes.
	// Env: CRYPTO_MAX_MEM_LIMIT
	MaxMemLimit uint64 `env:"MAX_MEM_LIMIT"`

	// MaxOpsLimit is the largest accepted opsLimit.
	// Env: CRYPTO_MAX_OPS_LIMIT
	MaxOpsLimit uint32 `env:"MAX_OPS_LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
