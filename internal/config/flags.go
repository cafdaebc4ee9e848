// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a API base URL (or host:port)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-client-package client package identifier
//	-d session database path
//	-max-mem-limit largest accepted KDF memLimit in bytes
//	-max-ops-limit largest accepted KDF opsLimit
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		clientPackage  string
		databaseDSN    string
		maxMemLimit    uint64
		maxOpsLimit    uint
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&clientPackage, "client-package", "", "Client package identifier")
	fs.StringVar(&databaseDSN, "d", "", "Session database path")
	fs.Uint64Var(&maxMemLimit, "max-mem-limit", 0, "Largest accepted KDF memLimit (bytes)")
	fs.UintVar(&maxOpsLimit, "max-ops-limit", 0, "Largest accepted KDF opsLimit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{ClientPackage: clientPackage},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Crypto: Crypto{
			MaxMemLimit: maxMemLimit,
			MaxOpsLimit: uint32(maxOpsLimit),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
