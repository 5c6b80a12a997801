// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the key backup client's durable state — key
// material, PIN metadata, and the one-shot enclave token — in a local
// SQLite key-value table, and fronts it with an in-memory cache guarded by
// a single critical section.
//
// Two logical collections exist: "keyBackupService/keys" for key material
// and flags, and "keyBackupService/token" for the enclave token. Multi-field
// updates always run inside one SQL transaction, so readers observe either
// the pre-state or the post-state of an operation, never a mix.
package store

import (
	"context"

	"github.com/MKhiriev/go-key-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Account exposes the device-role facts the store and service layers branch
// on. Implementations live with the account subsystem; tests use fixed
// values.
type Account interface {
	// IsPrimaryDevice reports whether this device owns the account (as
	// opposed to a linked device provisioned over the sync channel).
	IsPrimaryDevice() bool

	// IsRegisteredPrimaryDevice reports whether this device is primary and
	// has completed registration.
	IsRegisteredPrimaryDevice() bool

	// IsRegisteredAndReady reports whether the account is registered and
	// fully provisioned; downstream notifications are suppressed before
	// that point.
	IsRegisteredAndReady() bool
}

// KeyValueRepository is the durable backing of the two key backup
// collections.
type KeyValueRepository interface {
	// Get returns the value stored under collection/name, or
	// [ErrValueNotFound].
	Get(ctx context.Context, collection, name string) ([]byte, error)

	// GetAll returns every name → value pair of a collection in one
	// snapshot.
	GetAll(ctx context.Context, collection string) (map[string][]byte, error)

	// Apply atomically writes every pair in set and removes every name in
	// remove, all inside a single transaction.
	Apply(ctx context.Context, collection string, set map[string][]byte, remove []string) error
}

// KeyStore owns the client's key material: the master key, PIN metadata,
// the transitional storage-service key, and derived keys received over the
// sync channel. All getters read the in-memory cache, which WarmCaches
// populates at startup and every mutation keeps in lockstep with the
// database.
type KeyStore interface {
	// WarmCaches loads all persisted fields into the cache. On a primary
	// device with no storage-service key yet, a fresh random key is
	// generated and persisted.
	WarmCaches(ctx context.Context) error

	// Store persists the master key, pin type, and verification string as
	// one atomic group and resets the backup-request-failed flag. If none
	// of the three changed it is a no-op. On a master-key change on a
	// registered-and-ready account it emits the manifest-rebuild and
	// key-sync events after the write completes.
	Store(ctx context.Context, masterKey []byte, pinType models.PinType, verificationString string) error

	// ClearKeys removes everything except the transitional storage-service
	// key, from the database and the cache atomically.
	ClearKeys(ctx context.Context) error

	// StoreSyncedKey records a derived key received over the sync channel.
	// Rejected on primary devices (outside test mode) and for keys outside
	// the sync allow-list. A change to the storage-service key triggers a
	// manifest-rebuild event.
	StoreSyncedKey(ctx context.Context, key models.DerivedKey, data []byte) error

	// MasterKey returns the cached master key, or nil.
	MasterKey() []byte

	// StorageServiceKey returns the cached transitional storage-service
	// key, or nil.
	StorageServiceKey() []byte

	// SyncedKey returns the cached synced value for key, or nil.
	SyncedKey(key models.DerivedKey) []byte

	// PinType returns the cached pin type, or nil when no PIN is set.
	PinType() *models.PinType

	// VerificationString returns the cached encoded verification string, or
	// "".
	VerificationString() string

	// HasMasterKey reports whether a master key is cached.
	HasMasterKey() bool

	// HasBackupKeyRequestFailed reports whether the last backup request
	// failed mid-flight; retry scheduling keys off this flag.
	HasBackupKeyRequestFailed() bool

	// SetBackupKeyRequestFailed persists and caches the failure flag.
	SetBackupKeyRequestFailed(ctx context.Context, failed bool) error
}

// TokenStore persists the enclave's one-shot token. Every enclave response
// replaces the stored token with the token for the next request.
type TokenStore interface {
	// Current returns the stored token, or nil when no complete,
	// well-formed token is persisted (the caller then refetches from the
	// enclave).
	Current(ctx context.Context) (*models.Token, error)

	// UpdateNext stores the next token. data is required; a nil backupID or
	// tries is merged from persisted state. Fails with
	// [ErrTokenFieldMissing] when a required field is available from
	// neither source.
	UpdateNext(ctx context.Context, data, backupID []byte, tries *uint32) (models.Token, error)

	// UpdateNextFromBootstrap stores the initial token delivered by the
	// enclave's token endpoint.
	UpdateNextFromBootstrap(ctx context.Context, resp models.TokenResponse) (models.Token, error)

	// ClearNext removes the stored token.
	ClearNext(ctx context.Context) error
}
