// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-key-backup/internal/crypto"
	"github.com/MKhiriev/go-key-backup/internal/events"
	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/models"
)

// Logical collections in the key_value table.
const (
	CollectionKeys  = "keyBackupService/keys"
	CollectionToken = "keyBackupService/token"
)

// Field names inside CollectionKeys. Synced derived keys are stored under
// their derivation label.
const (
	masterKeyName          = "masterKey"
	storageServiceKeyName  = "storageServiceKey"
	pinTypeName            = "pinType"
	verificationStringName = "encodedVerificationString"
	backupFailedFlagName   = "hasBackupKeyRequestFailed"
)

const storageServiceKeyLength = 32

// keyCache is the in-memory mirror of CollectionKeys. Every read goes
// through it; every write updates it together with the database.
type keyCache struct {
	masterKey              []byte
	storageServiceKey      []byte
	pinType                *models.PinType
	verificationString     string
	syncedKeys             map[string][]byte
	backupKeyRequestFailed bool
}

// keyStore is the private implementation of [KeyStore].
type keyStore struct {
	repo     KeyValueRepository
	account  Account
	bus      *events.Bus
	logger   *logger.Logger
	testMode bool

	// mu is the cache critical section. Held only for cache reads and
	// assignments, never across I/O.
	mu    sync.Mutex
	cache keyCache
}

// NewKeyStore constructs a [KeyStore]. testMode relaxes the primary-device
// restriction on synced keys for diagnostics; it must stay false in
// production wiring.
func NewKeyStore(repo KeyValueRepository, account Account, bus *events.Bus, log *logger.Logger, testMode bool) KeyStore {
	return &keyStore{
		repo:     repo,
		account:  account,
		bus:      bus,
		logger:   log,
		testMode: testMode,
		cache:    keyCache{syncedKeys: make(map[string][]byte)},
	}
}

// WarmCaches implements [KeyStore].
func (s *keyStore) WarmCaches(ctx context.Context) error {
	values, err := s.repo.GetAll(ctx, CollectionKeys)
	if err != nil {
		return fmt.Errorf("warm key caches: %w", err)
	}

	warmed := keyCache{syncedKeys: make(map[string][]byte)}

	for name, value := range values {
		switch name {
		case masterKeyName:
			warmed.masterKey = value
		case storageServiceKeyName:
			warmed.storageServiceKey = value
		case verificationStringName:
			warmed.verificationString = string(value)
		case backupFailedFlagName:
			warmed.backupKeyRequestFailed = string(value) == "1"
		case pinTypeName:
			raw, convErr := strconv.Atoi(string(value))
			if convErr != nil || !models.PinType(raw).Valid() {
				s.logger.Warn().Str("value", string(value)).Msg("dropping corrupt persisted pin type")
				continue
			}
			pt := models.PinType(raw)
			warmed.pinType = &pt
		default:
			warmed.syncedKeys[name] = value
		}
	}

	// The storage-service key is currently an independent random key on
	// primary devices; mint one on first warm so the storage service can
	// run before a PIN is ever set. Linked devices wait for it to arrive
	// over the sync channel instead.
	if warmed.storageServiceKey == nil && s.account.IsPrimaryDevice() {
		key, genErr := crypto.RandomBytes(storageServiceKeyLength)
		if genErr != nil {
			return fmt.Errorf("generate storage service key: %w", genErr)
		}
		if err = s.repo.Apply(ctx, CollectionKeys, map[string][]byte{storageServiceKeyName: key}, nil); err != nil {
			return fmt.Errorf("persist storage service key: %w", err)
		}
		warmed.storageServiceKey = key
		s.logger.Info().Msg("generated storage service key on first warm")
	}

	s.mu.Lock()
	s.cache = warmed
	s.mu.Unlock()

	return nil
}

// Store implements [KeyStore].
func (s *keyStore) Store(ctx context.Context, masterKey []byte, pinType models.PinType, verificationString string) error {
	if len(masterKey) != 32 {
		return fmt.Errorf("%w: got %d bytes", ErrMasterKeyLength, len(masterKey))
	}

	s.mu.Lock()
	masterKeyChanged := !bytes.Equal(s.cache.masterKey, masterKey)
	unchanged := !masterKeyChanged &&
		s.cache.pinType != nil && *s.cache.pinType == pinType &&
		s.cache.verificationString == verificationString
	s.mu.Unlock()

	if unchanged {
		return nil
	}

	set := map[string][]byte{
		masterKeyName:          masterKey,
		pinTypeName:            []byte(strconv.Itoa(int(pinType))),
		verificationStringName: []byte(verificationString),
		backupFailedFlagName:   []byte("0"),
	}
	if err := s.repo.Apply(ctx, CollectionKeys, set, nil); err != nil {
		return fmt.Errorf("store keys: %w", err)
	}

	s.mu.Lock()
	s.cache.masterKey = masterKey
	s.cache.pinType = &pinType
	s.cache.verificationString = verificationString
	s.cache.backupKeyRequestFailed = false
	s.mu.Unlock()

	s.logger.Info().
		Bool("masterKeyChanged", masterKeyChanged).
		Str("pinType", pinType.String()).
		Msg("stored key backup keys")

	if masterKeyChanged && s.account.IsRegisteredAndReady() {
		s.bus.Publish(events.ManifestNeedsRebuild)
		s.bus.Publish(events.SendKeysSyncMessage)
	}

	return nil
}

// ClearKeys implements [KeyStore].
func (s *keyStore) ClearKeys(ctx context.Context) error {
	s.mu.Lock()
	remove := []string{masterKeyName, pinTypeName, verificationStringName, backupFailedFlagName}
	for name := range s.cache.syncedKeys {
		remove = append(remove, name)
	}
	s.mu.Unlock()

	if err := s.repo.Apply(ctx, CollectionKeys, nil, remove); err != nil {
		return fmt.Errorf("clear keys: %w", err)
	}

	s.mu.Lock()
	storageServiceKey := s.cache.storageServiceKey
	s.cache = keyCache{
		storageServiceKey: storageServiceKey,
		syncedKeys:        make(map[string][]byte),
	}
	s.mu.Unlock()

	s.logger.Info().Msg("cleared key backup keys")

	return nil
}

// StoreSyncedKey implements [KeyStore].
func (s *keyStore) StoreSyncedKey(ctx context.Context, key models.DerivedKey, data []byte) error {
	if s.account.IsPrimaryDevice() && !s.testMode {
		s.logger.Error().Str("key", key.Label()).Msg("ignoring synced key write on primary device")
		return ErrPrimarySyncedKeyWrite
	}
	if !key.Syncable() {
		return fmt.Errorf("%w: %s", ErrKeyNotSyncable, key.Label())
	}
	if len(data) != storageServiceKeyLength {
		return fmt.Errorf("%w: got %d bytes", ErrSyncedKeyLength, len(data))
	}

	label := key.Label()

	s.mu.Lock()
	changed := !bytes.Equal(s.cache.syncedKeys[label], data)
	s.mu.Unlock()

	if !changed {
		return nil
	}

	if err := s.repo.Apply(ctx, CollectionKeys, map[string][]byte{label: data}, nil); err != nil {
		return fmt.Errorf("store synced key: %w", err)
	}

	s.mu.Lock()
	s.cache.syncedKeys[label] = data
	s.mu.Unlock()

	s.logger.Info().Str("key", label).Msg("stored synced derived key")

	if key.Kind == models.DerivedKeyStorageService {
		s.bus.Publish(events.ManifestNeedsRebuild)
	}

	return nil
}

// MasterKey implements [KeyStore].
func (s *keyStore) MasterKey() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.masterKey
}

// StorageServiceKey implements [KeyStore].
func (s *keyStore) StorageServiceKey() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.storageServiceKey
}

// SyncedKey implements [KeyStore].
func (s *keyStore) SyncedKey(key models.DerivedKey) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.syncedKeys[key.Label()]
}

// PinType implements [KeyStore].
func (s *keyStore) PinType() *models.PinType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.pinType
}

// VerificationString implements [KeyStore].
func (s *keyStore) VerificationString() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.verificationString
}

// HasMasterKey implements [KeyStore].
func (s *keyStore) HasMasterKey() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.masterKey != nil
}

// HasBackupKeyRequestFailed implements [KeyStore].
func (s *keyStore) HasBackupKeyRequestFailed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.backupKeyRequestFailed
}

// SetBackupKeyRequestFailed implements [KeyStore].
func (s *keyStore) SetBackupKeyRequestFailed(ctx context.Context, failed bool) error {
	flag := []byte("0")
	if failed {
		flag = []byte("1")
	}
	if err := s.repo.Apply(ctx, CollectionKeys, map[string][]byte{backupFailedFlagName: flag}, nil); err != nil {
		return fmt.Errorf("set backup failed flag: %w", err)
	}

	s.mu.Lock()
	s.cache.backupKeyRequestFailed = failed
	s.mu.Unlock()

	return nil
}
