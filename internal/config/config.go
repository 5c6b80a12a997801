// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the key
// backup client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json      — field name inside the optional JSON config file.
type StructuredConfig struct {
	// App holds application-level settings such as the service identity
	// and diagnostics switches.
	App App `envPrefix:"APP_" json:"app"`

	// Enclave holds the key backup enclave endpoint settings.
	Enclave Enclave `envPrefix:"ENCLAVE_" json:"enclave"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Device holds the device-role settings this client runs under.
	Device Device `envPrefix:"DEVICE_" json:"device"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and its values fill only the fields
	// still empty after environment variables and flags; those earlier
	// layers win.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// ServiceID is the hex encoding of the compile-time service identity
	// included in every enclave request. Must be non-empty valid hex.
	// Env: APP_SERVICE_ID
	ServiceID string `env:"SERVICE_ID" json:"service_id"`

	// TestMode relaxes the primary-device restriction on synced derived
	// keys. Diagnostics only; never enable in production.
	// Env: APP_TEST_MODE
	TestMode bool `env:"TEST_MODE" json:"test_mode"`
}

// Enclave holds the key backup enclave endpoint settings.
type Enclave struct {
	// BaseURL is the HTTPS endpoint of the key backup service front.
	// Env: ENCLAVE_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// Name selects the enclave deployment in request paths.
	// Env: ENCLAVE_NAME
	Name string `env:"NAME" json:"name"`

	// RequestTimeout bounds every enclave round trip (e.g. "15s").
	// Env: ENCLAVE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// AuthUsername and AuthPassword form the account credential presented
	// to the attestation and key backup endpoints.
	// Env: ENCLAVE_AUTH_USERNAME / ENCLAVE_AUTH_PASSWORD
	AuthUsername string `env:"AUTH_USERNAME" json:"auth_username"`
	AuthPassword string `env:"AUTH_PASSWORD" json:"auth_password"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path (or ":memory:").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Device holds the device-role settings.
type Device struct {
	// Primary marks this device as the account owner. Linked devices set
	// this to false and receive derived keys over the sync channel.
	// Env: DEVICE_PRIMARY
	Primary bool `env:"PRIMARY" json:"primary"`

	// Registered marks the account as registered and fully provisioned.
	// Env: DEVICE_REGISTERED
	Registered bool `env:"REGISTERED" json:"registered"`
}

// Log holds logging output settings.
type Log struct {
	// Dir is the directory the log file is written to; empty means stdout.
	// Env: LOG_DIR
	Dir string `env:"DIR" json:"dir"`
}
