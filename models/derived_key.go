// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
)

// DerivedKeyKind enumerates the application keys that are produced from the
// master key by HMAC-based domain separation.
type DerivedKeyKind int

const (
	// DerivedKeyRegistrationLock is the registration-lock proof key,
	// derived directly from the master key.
	DerivedKeyRegistrationLock DerivedKeyKind = iota + 1

	// DerivedKeyStorageService is the storage-service root key. On primary
	// devices it is currently held as an independent random key rather than
	// derived from the master key; see the derived-key service for the
	// transitional lookup order.
	DerivedKeyStorageService

	// DerivedKeyStorageServiceManifest is the per-manifest-version key,
	// derived from the storage-service key.
	DerivedKeyStorageServiceManifest

	// DerivedKeyStorageServiceRecord is the per-record key, derived from
	// the storage-service key.
	DerivedKeyStorageServiceRecord
)

// DerivedKey names one slot in the derivation tree. The zero value is not a
// valid key; use the constructors.
type DerivedKey struct {
	Kind DerivedKeyKind

	// ManifestVersion is set for DerivedKeyStorageServiceManifest only.
	ManifestVersion uint64

	// RecordID is set for DerivedKeyStorageServiceRecord only.
	RecordID []byte
}

// RegistrationLockKey names the registration-lock derived key.
func RegistrationLockKey() DerivedKey {
	return DerivedKey{Kind: DerivedKeyRegistrationLock}
}

// StorageServiceKey names the storage-service root derived key.
func StorageServiceKey() DerivedKey {
	return DerivedKey{Kind: DerivedKeyStorageService}
}

// StorageServiceManifestKey names the derived key for one manifest version.
func StorageServiceManifestKey(version uint64) DerivedKey {
	return DerivedKey{Kind: DerivedKeyStorageServiceManifest, ManifestVersion: version}
}

// StorageServiceRecordKey names the derived key for one storage record.
func StorageServiceRecordKey(id []byte) DerivedKey {
	return DerivedKey{Kind: DerivedKeyStorageServiceRecord, RecordID: id}
}

// Label returns the domain-separation string fed to HMAC-SHA-256 together
// with the parent key. Labels are part of the ciphertext compatibility
// surface and must never change.
func (k DerivedKey) Label() string {
	switch k.Kind {
	case DerivedKeyRegistrationLock:
		return "Registration Lock"
	case DerivedKeyStorageService:
		return "Storage Service Encryption"
	case DerivedKeyStorageServiceManifest:
		return fmt.Sprintf("Manifest_%d", k.ManifestVersion)
	case DerivedKeyStorageServiceRecord:
		return fmt.Sprintf("Item_%s", base64.StdEncoding.EncodeToString(k.RecordID))
	default:
		return ""
	}
}

// Syncable reports whether this key may be delivered to linked devices over
// the key-sync channel. Linked devices never see the master key, so only
// keys on the allow-list are ever transmitted. The label doubles as the
// persistence name for a received synced key.
func (k DerivedKey) Syncable() bool {
	return k.Kind == DerivedKeyStorageService
}

// SyncableKeys lists every derived key that may arrive over the sync
// channel, in persistence order.
func SyncableKeys() []DerivedKey {
	return []DerivedKey{StorageServiceKey()}
}
