// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-enclave-url key backup service base URL
//	-enclave-name enclave deployment name
//	-service-id hex-encoded service identity
//	-auth-username enclave auth username
//	-auth-password enclave auth password
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d local database DSN
//	-log-dir log output directory
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var enclaveURL string
	var enclaveName string
	var serviceID string
	var authUsername string
	var authPassword string
	var requestTimeout time.Duration
	var databaseDSN string
	var logDir string
	var jsonConfigPath string

	flag.StringVar(&enclaveURL, "enclave-url", "", "Key backup service base URL")
	flag.StringVar(&enclaveName, "enclave-name", "", "Enclave deployment name")
	flag.StringVar(&serviceID, "service-id", "", "Hex-encoded service identity")
	flag.StringVar(&authUsername, "auth-username", "", "Enclave auth username")
	flag.StringVar(&authPassword, "auth-password", "", "Enclave auth password")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&logDir, "log-dir", "", "Log output directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ServiceID: serviceID,
		},
		Enclave: Enclave{
			BaseURL:        enclaveURL,
			Name:           enclaveName,
			RequestTimeout: requestTimeout,
			AuthUsername:   authUsername,
			AuthPassword:   authPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Log: Log{
			Dir: logDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
