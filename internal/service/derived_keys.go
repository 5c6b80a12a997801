// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-key-backup/internal/crypto"
	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/internal/store"
	"github.com/MKhiriev/go-key-backup/models"
)

// derivedKeyService is the private implementation of [DerivedKeys].
type derivedKeyService struct {
	keys       store.KeyStore
	derivation crypto.KeyDerivation
	account    store.Account
	testMode   bool
	logger     *logger.Logger
}

// NewDerivedKeys constructs a [DerivedKeys] service. testMode lets a
// primary device read synced keys, mirroring the key store's test-mode
// carve-out.
func NewDerivedKeys(keys store.KeyStore, derivation crypto.KeyDerivation, account store.Account, testMode bool, log *logger.Logger) DerivedKeys {
	return &derivedKeyService{
		keys:       keys,
		derivation: derivation,
		account:    account,
		testMode:   testMode,
		logger:     log,
	}
}

// DataFor implements [DerivedKeys].
func (s *derivedKeyService) DataFor(key models.DerivedKey) []byte {
	// Linked devices never hold the master key; keys they received over
	// the sync channel win.
	if (!s.account.IsPrimaryDevice() || s.testMode) && key.Syncable() {
		if data := s.keys.SyncedKey(key); data != nil {
			return data
		}
	}

	switch key.Kind {
	case models.DerivedKeyRegistrationLock:
		masterKey := s.keys.MasterKey()
		if masterKey == nil {
			return nil
		}
		return s.derivation.DeriveNamed(masterKey, key.Label())

	case models.DerivedKeyStorageService:
		// Transitional: primary devices hold the storage-service key as an
		// independent random value. Once that goes away this falls through
		// to master-key derivation and nothing else changes.
		if held := s.keys.StorageServiceKey(); held != nil {
			return held
		}
		masterKey := s.keys.MasterKey()
		if masterKey == nil {
			return nil
		}
		return s.derivation.DeriveNamed(masterKey, key.Label())

	case models.DerivedKeyStorageServiceManifest, models.DerivedKeyStorageServiceRecord:
		parent := s.DataFor(models.StorageServiceKey())
		if parent == nil {
			return nil
		}
		return s.derivation.DeriveNamed(parent, key.Label())

	default:
		return nil
	}
}

// Encrypt implements [DerivedKeys].
func (s *derivedKeyService) Encrypt(key models.DerivedKey, plaintext []byte) ([]byte, error) {
	data := s.DataFor(key)
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyUnavailable, key.Label())
	}

	iv, ciphertext, tag, err := crypto.AESGCMSeal(data, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("encrypt under %s: %w", key.Label(), err)
	}

	out := make([]byte, 0, len(iv)+len(ciphertext)+len(tag))
	out = append(out, iv...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out, nil
}

// Decrypt implements [DerivedKeys].
func (s *derivedKeyService) Decrypt(key models.DerivedKey, ciphertext []byte) ([]byte, error) {
	data := s.DataFor(key)
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyUnavailable, key.Label())
	}

	if len(ciphertext) < crypto.GCMIVLength+crypto.GCMTagLength {
		return nil, ErrDecryptionFailed
	}

	iv := ciphertext[:crypto.GCMIVLength]
	tag := ciphertext[len(ciphertext)-crypto.GCMTagLength:]
	body := ciphertext[crypto.GCMIVLength : len(ciphertext)-crypto.GCMTagLength]

	plaintext, err := crypto.AESGCMOpen(data, iv, body, tag, nil)
	if err != nil {
		s.logger.Warn().Str("key", key.Label()).Msg("derived key decryption failed")
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// RegistrationLockToken implements [DerivedKeys].
func (s *derivedKeyService) RegistrationLockToken() (string, bool) {
	data := s.DataFor(models.RegistrationLockKey())
	if data == nil {
		return "", false
	}
	return strings.ToUpper(hex.EncodeToString(data)), true
}
