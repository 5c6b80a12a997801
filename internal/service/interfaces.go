// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the key backup protocol on top of the enclave
// transport, the key derivation primitives, and the local stores: the
// backup/restore/delete state machine with its one-shot-token discipline,
// local PIN verification, and the derived-key API the rest of the
// application consumes.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-backup/models"
)

// KeyBackupService drives the PIN-gated key backup protocol. Operations are
// not serialized against each other; a caller issuing two protocol
// operations concurrently will spend the same one-shot token twice and the
// second will fail. Gate concurrent access through a higher-level lock.
type KeyBackupService interface {
	// GenerateAndBackup enrolls (or re-enrolls) the device: it reuses the
	// cached master key or generates a fresh one, seals it under the
	// PIN-derived encryption key, stores the envelope on the enclave with
	// a full attempt budget, and persists the key material locally.
	GenerateAndBackup(ctx context.Context, pin string) error

	// RestoreKeys recovers the master key from the enclave using the PIN.
	// On success it immediately re-backs up the envelope to re-arm the
	// server's attempt budget, then persists the recovered key locally.
	//
	// Returns [*InvalidPinError] on a PIN mismatch (with the authoritative
	// remaining-attempts count), [ErrBackupMissing] when no record exists,
	// and [*AssertionError] for everything unexpected.
	//
	// auth optionally overrides the attestation credential, for restores
	// that run before the account has one of its own. If the post-restore
	// re-backup fails, the call fails without persisting anything locally;
	// the server's remaining-tries is then one lower until a later
	// successful restore.
	RestoreKeys(ctx context.Context, pin string, auth *models.AttestationAuth) error

	// DeleteKeys asks the enclave to destroy the backup record, then —
	// regardless of the request outcome — clears all local key material
	// and the stored token.
	DeleteKeys(ctx context.Context) error

	// VerifyPin checks pin against the locally stored verification string.
	// Purely local, never errors: any failure path yields false.
	VerifyPin(ctx context.Context, pin string) bool

	// HasMasterKey reports whether a master key is available locally.
	HasMasterKey() bool

	// CurrentPinType returns the stored pin classification, or nil when no
	// PIN is set.
	CurrentPinType() *models.PinType
}

// DerivedKeys resolves, and encrypts under, the application keys derived
// from the master key.
type DerivedKeys interface {
	// DataFor resolves the key bytes for the given slot, walking the
	// parent-derivation chain. On linked devices (and in test mode) synced
	// keys take precedence. Returns nil when no parent material is
	// available on this device.
	DataFor(key models.DerivedKey) []byte

	// Encrypt seals plaintext under the named derived key with AES-GCM.
	// Output layout: iv ‖ ciphertext ‖ tag, with a fresh random IV per
	// call.
	Encrypt(key models.DerivedKey, plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Returns [ErrKeyUnavailable] or
	// [ErrDecryptionFailed]; crypto-internal failure detail is not
	// surfaced.
	Decrypt(key models.DerivedKey, ciphertext []byte) ([]byte, error)

	// RegistrationLockToken returns the uppercase-hex registration-lock
	// token, or ok == false when the key is unavailable.
	RegistrationLockToken() (token string, ok bool)
}

// Clock abstracts time for the protocol's validity-window stamping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock { return systemClock{} }
