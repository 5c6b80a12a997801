// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// ServiceID is the decoded service identity bytes.
	ServiceID []byte
	// TestMode relaxes the primary-device restriction on synced keys.
	TestMode bool
}

// ClientEnclave holds enclave endpoint settings used by the transport
// layer.
type ClientEnclave struct {
	// BaseURL is the key backup service endpoint.
	BaseURL string
	// Name selects the enclave deployment.
	Name string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// AuthUsername and AuthPassword form the account credential.
	AuthUsername string
	AuthPassword string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientDevice holds the device-role settings.
type ClientDevice struct {
	Primary    bool
	Registered bool
}

// ClientLog holds logging settings.
type ClientLog struct {
	Dir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Enclave contains enclave endpoint settings.
	Enclave ClientEnclave
	// Storage contains client storage settings.
	Storage ClientStorage
	// Device contains device-role settings.
	Device ClientDevice
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client config.
//
// It merges environment variables, command-line flags, and the optional
// JSON file (in that precedence order), maps the result onto [ClientConfig],
// applies defaults, and validates the required enclave settings.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetClientConfigFromEnv builds the client config from environment
// variables and the optional JSON file only. Used by entry points that own
// their command line (e.g. kbsctl), where stdlib flag parsing would fight
// the subcommand parser.
func GetClientConfigFromEnv() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	serviceID, err := validateStructured(cfg)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ServiceID: serviceID,
			TestMode:  cfg.App.TestMode,
		},
		Enclave: ClientEnclave{
			BaseURL:        cfg.Enclave.BaseURL,
			Name:           cfg.Enclave.Name,
			RequestTimeout: cfg.Enclave.RequestTimeout,
			AuthUsername:   cfg.Enclave.AuthUsername,
			AuthPassword:   cfg.Enclave.AuthPassword,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Device: ClientDevice{
			Primary:    cfg.Device.Primary,
			Registered: cfg.Device.Registered,
		},
		Log: ClientLog{Dir: cfg.Log.Dir},
	}

	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = "key-backup.db"
	}
	if clientCfg.Enclave.RequestTimeout <= 0 {
		clientCfg.Enclave.RequestTimeout = 15 * time.Second
	}

	return clientCfg, nil
}
