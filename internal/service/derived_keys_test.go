package service

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-backup/internal/crypto"
	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/models"
)

func newTestDerivedKeys(keys *fakeKeyStore, account fakeAccount, testMode bool) DerivedKeys {
	return NewDerivedKeys(keys, crypto.NewKeyDerivation(), account, testMode, logger.Nop())
}

func TestDerivedKeys_RegistrationLockFromMasterKey(t *testing.T) {
	keys := newFakeKeyStore()
	keys.masterKey = bytes.Repeat([]byte{0xA1}, 32)
	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)

	got := svc.DataFor(models.RegistrationLockKey())
	want := crypto.NewKeyDerivation().DeriveNamed(keys.masterKey, "Registration Lock")
	assert.Equal(t, want, got)
}

func TestDerivedKeys_UnavailableWithoutMasterKey(t *testing.T) {
	svc := newTestDerivedKeys(newFakeKeyStore(), fakeAccount{primary: true, registered: true}, false)
	assert.Nil(t, svc.DataFor(models.RegistrationLockKey()))
}

func TestDerivedKeys_StorageServicePrefersHeldKey(t *testing.T) {
	keys := newFakeKeyStore()
	keys.masterKey = bytes.Repeat([]byte{0xA1}, 32)
	keys.storageServiceKey = bytes.Repeat([]byte{0x55}, 32)
	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)

	assert.Equal(t, keys.storageServiceKey, svc.DataFor(models.StorageServiceKey()))
}

func TestDerivedKeys_StorageServiceFallsBackToMasterKeyDerivation(t *testing.T) {
	keys := newFakeKeyStore()
	keys.masterKey = bytes.Repeat([]byte{0xA1}, 32)
	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)

	want := crypto.NewKeyDerivation().DeriveNamed(keys.masterKey, "Storage Service Encryption")
	assert.Equal(t, want, svc.DataFor(models.StorageServiceKey()))
}

func TestDerivedKeys_ManifestAndRecordChainThroughStorageService(t *testing.T) {
	keys := newFakeKeyStore()
	keys.storageServiceKey = bytes.Repeat([]byte{0x55}, 32)
	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)

	derivation := crypto.NewKeyDerivation()

	manifest := svc.DataFor(models.StorageServiceManifestKey(7))
	assert.Equal(t, derivation.DeriveNamed(keys.storageServiceKey, "Manifest_7"), manifest)

	recordID := []byte{0x01, 0x02, 0x03}
	record := svc.DataFor(models.StorageServiceRecordKey(recordID))
	assert.Equal(t, derivation.DeriveNamed(keys.storageServiceKey, "Item_AQID"), record)

	assert.NotEqual(t, manifest, record)
}

func TestDerivedKeys_LinkedDeviceUsesSyncedKey(t *testing.T) {
	keys := newFakeKeyStore()
	synced := bytes.Repeat([]byte{0xCD}, 32)
	keys.synced["Storage Service Encryption"] = synced
	svc := newTestDerivedKeys(keys, fakeAccount{primary: false, registered: true}, false)

	assert.Equal(t, synced, svc.DataFor(models.StorageServiceKey()))

	// Child keys chain through the synced parent.
	want := crypto.NewKeyDerivation().DeriveNamed(synced, "Manifest_1")
	assert.Equal(t, want, svc.DataFor(models.StorageServiceManifestKey(1)))

	// Linked devices never hold the master key.
	assert.Nil(t, svc.DataFor(models.RegistrationLockKey()))
}

func TestDerivedKeys_PrimaryIgnoresSyncedKeysOutsideTestMode(t *testing.T) {
	keys := newFakeKeyStore()
	keys.storageServiceKey = bytes.Repeat([]byte{0x55}, 32)
	keys.synced["Storage Service Encryption"] = bytes.Repeat([]byte{0xCD}, 32)

	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)
	assert.Equal(t, keys.storageServiceKey, svc.DataFor(models.StorageServiceKey()))

	testModeSvc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, true)
	assert.Equal(t, keys.synced["Storage Service Encryption"], testModeSvc.DataFor(models.StorageServiceKey()))
}

func TestDerivedKeys_EncryptDecryptRoundTrip(t *testing.T) {
	keys := newFakeKeyStore()
	keys.storageServiceKey = bytes.Repeat([]byte{0x55}, 32)
	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)

	plaintext := []byte("storage record payload")
	ciphertext, err := svc.Encrypt(models.StorageServiceRecordKey([]byte{0x01}), plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := svc.Decrypt(models.StorageServiceRecordKey([]byte{0x01}), ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	// A different record key must not open it.
	_, err = svc.Decrypt(models.StorageServiceRecordKey([]byte{0x02}), ciphertext)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDerivedKeys_DecryptGarbage(t *testing.T) {
	keys := newFakeKeyStore()
	keys.storageServiceKey = bytes.Repeat([]byte{0x55}, 32)
	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)

	_, err := svc.Decrypt(models.StorageServiceKey(), []byte("short"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDerivedKeys_EncryptUnavailableKey(t *testing.T) {
	svc := newTestDerivedKeys(newFakeKeyStore(), fakeAccount{primary: true, registered: true}, false)

	_, err := svc.Encrypt(models.RegistrationLockKey(), []byte("payload"))
	assert.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestDerivedKeys_RegistrationLockToken(t *testing.T) {
	keys := newFakeKeyStore()
	keys.masterKey = bytes.Repeat([]byte{0xA1}, 32)
	svc := newTestDerivedKeys(keys, fakeAccount{primary: true, registered: true}, false)

	token, ok := svc.RegistrationLockToken()
	require.True(t, ok)

	want := crypto.NewKeyDerivation().DeriveNamed(keys.masterKey, "Registration Lock")
	assert.Equal(t, strings.ToUpper(hex.EncodeToString(want)), token)

	// Unavailable after the master key is gone.
	keys.masterKey = nil
	_, ok = svc.RegistrationLockToken()
	assert.False(t, ok)
}
