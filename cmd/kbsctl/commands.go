// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-backup/internal/adapter"
	"github.com/MKhiriev/go-key-backup/internal/config"
	"github.com/MKhiriev/go-key-backup/internal/crypto"
	"github.com/MKhiriev/go-key-backup/internal/events"
	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/internal/service"
	"github.com/MKhiriev/go-key-backup/internal/store"
	"github.com/MKhiriev/go-key-backup/models"
)

// staticAccount satisfies [store.Account] from the device-role config.
type staticAccount struct {
	cfg config.ClientDevice
}

func (a staticAccount) IsPrimaryDevice() bool           { return a.cfg.Primary }
func (a staticAccount) IsRegisteredPrimaryDevice() bool { return a.cfg.Primary && a.cfg.Registered }
func (a staticAccount) IsRegisteredAndReady() bool      { return a.cfg.Registered }

// app bundles the wired client for command handlers.
type app struct {
	backup  service.KeyBackupService
	derived service.DerivedKeys
	keys    store.KeyStore
	tokens  store.TokenStore
	log     *logger.Logger
}

// buildApp wires config → logger → storage → transport → services and warms
// the key cache.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.GetClientConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger("kbsctl", cfg.Log.Dir)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	account := staticAccount{cfg: cfg.Device}
	bus := events.NewBus()
	bus.Subscribe(events.ManifestNeedsRebuild, func() {
		log.Info().Msg("storage service manifest needs rebuild")
	})
	bus.Subscribe(events.SendKeysSyncMessage, func() {
		log.Info().Msg("linked devices need a keys sync message")
	})

	keys := store.NewKeyStore(storages.KeyValues, account, bus, log, cfg.App.TestMode)
	if err = keys.WarmCaches(ctx); err != nil {
		return nil, fmt.Errorf("warm key caches: %w", err)
	}
	tokens := store.NewTokenStore(storages.KeyValues, log)

	attestor := adapter.NewHTTPAttestationService(adapter.AttestationConfig{
		BaseURL:     cfg.Enclave.BaseURL,
		EnclaveName: cfg.Enclave.Name,
		Timeout:     cfg.Enclave.RequestTimeout,
		Auth: models.AttestationAuth{
			Username: cfg.Enclave.AuthUsername,
			Password: cfg.Enclave.AuthPassword,
		},
	}, log)

	enclave := adapter.NewEnclaveHTTPClient(adapter.HTTPClientConfig{
		BaseURL: cfg.Enclave.BaseURL,
		Timeout: cfg.Enclave.RequestTimeout,
	}, attestor, tokens, log)

	backup, err := service.NewKeyBackupService(
		enclave,
		crypto.NewKeyDerivation(),
		crypto.NewEnvelopeSealer(),
		keys,
		tokens,
		service.NewSystemClock(),
		cfg.App.ServiceID,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("build backup service: %w", err)
	}

	derived := service.NewDerivedKeys(keys, crypto.NewKeyDerivation(), account, cfg.App.TestMode, log)

	return &app{backup: backup, derived: derived, keys: keys, tokens: tokens, log: log}, nil
}

func runEnroll(ctx context.Context, pin string) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	if err = a.backup.GenerateAndBackup(ctx, pin); err != nil {
		return err
	}

	fmt.Println("master key backed up")
	return nil
}

func runRestore(ctx context.Context, pin string) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	err = a.backup.RestoreKeys(ctx, pin, nil)

	var invalidPin *service.InvalidPinError
	switch {
	case err == nil:
		fmt.Println("master key restored")
		return nil
	case errors.As(err, &invalidPin):
		return fmt.Errorf("wrong PIN, %d tries left", invalidPin.TriesRemaining)
	case errors.Is(err, service.ErrBackupMissing):
		return errors.New("backup not found, re-enroll with `kbsctl enroll`")
	default:
		return err
	}
}

func runDelete(ctx context.Context) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	if err = a.backup.DeleteKeys(ctx); err != nil {
		return err
	}

	fmt.Println("backup deleted, local keys cleared")
	return nil
}

func runVerifyPin(ctx context.Context, pin string) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	if !a.backup.VerifyPin(ctx, pin) {
		return errors.New("pin does not match")
	}

	fmt.Println("pin ok")
	return nil
}

func runStatus(ctx context.Context) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("master key present:   %v\n", a.backup.HasMasterKey())
	if pinType := a.backup.CurrentPinType(); pinType != nil {
		fmt.Printf("pin type:             %s\n", pinType)
	} else {
		fmt.Println("pin type:             none")
	}
	fmt.Printf("backup retry pending: %v\n", a.keys.HasBackupKeyRequestFailed())

	token, err := a.tokens.Current(ctx)
	if err != nil {
		return err
	}
	if token != nil {
		fmt.Printf("enclave tries left:   %d\n", token.Tries)
	} else {
		fmt.Println("enclave tries left:   unknown (no token)")
	}

	return nil
}

func runRegLockToken(ctx context.Context) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	token, ok := a.derived.RegistrationLockToken()
	if !ok {
		return errors.New("registration lock unavailable: no master key")
	}

	fmt.Println(token)
	return nil
}
