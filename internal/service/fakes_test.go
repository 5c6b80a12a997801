package service

import (
	"bytes"
	"context"
	"time"

	"github.com/MKhiriev/go-key-backup/models"
)

// fakeKeyStore is an in-memory store.KeyStore for service tests.
type fakeKeyStore struct {
	masterKey          []byte
	storageServiceKey  []byte
	pinType            *models.PinType
	verificationString string
	synced             map[string][]byte
	failedFlag         bool
	storeCalls         int
}

func newFakeKeyStore() *fakeKeyStore {
	return &fakeKeyStore{synced: make(map[string][]byte)}
}

func (f *fakeKeyStore) WarmCaches(context.Context) error { return nil }

func (f *fakeKeyStore) Store(_ context.Context, masterKey []byte, pinType models.PinType, verificationString string) error {
	f.masterKey = bytes.Clone(masterKey)
	f.pinType = &pinType
	f.verificationString = verificationString
	f.failedFlag = false
	f.storeCalls++
	return nil
}

func (f *fakeKeyStore) ClearKeys(context.Context) error {
	f.masterKey = nil
	f.pinType = nil
	f.verificationString = ""
	f.failedFlag = false
	f.synced = make(map[string][]byte)
	return nil
}

func (f *fakeKeyStore) StoreSyncedKey(_ context.Context, key models.DerivedKey, data []byte) error {
	f.synced[key.Label()] = bytes.Clone(data)
	return nil
}

func (f *fakeKeyStore) MasterKey() []byte         { return f.masterKey }
func (f *fakeKeyStore) StorageServiceKey() []byte { return f.storageServiceKey }
func (f *fakeKeyStore) SyncedKey(key models.DerivedKey) []byte {
	return f.synced[key.Label()]
}
func (f *fakeKeyStore) PinType() *models.PinType   { return f.pinType }
func (f *fakeKeyStore) VerificationString() string { return f.verificationString }
func (f *fakeKeyStore) HasMasterKey() bool         { return f.masterKey != nil }
func (f *fakeKeyStore) HasBackupKeyRequestFailed() bool {
	return f.failedFlag
}
func (f *fakeKeyStore) SetBackupKeyRequestFailed(_ context.Context, failed bool) error {
	f.failedFlag = failed
	return nil
}

// fakeTokenStore is an in-memory store.TokenStore recording every update.
type fakeTokenStore struct {
	token   *models.Token
	updates []models.Token
}

func (f *fakeTokenStore) Current(context.Context) (*models.Token, error) {
	return f.token, nil
}

func (f *fakeTokenStore) UpdateNext(_ context.Context, data, backupID []byte, tries *uint32) (models.Token, error) {
	token := models.Token{}
	if f.token != nil {
		token = *f.token
	}
	token.Data = data
	if backupID != nil {
		token.BackupID = backupID
	}
	if tries != nil {
		token.Tries = *tries
	}
	f.token = &token
	f.updates = append(f.updates, token)
	return token, nil
}

func (f *fakeTokenStore) UpdateNextFromBootstrap(_ context.Context, resp models.TokenResponse) (models.Token, error) {
	token, err := models.NewToken(resp.BackupID, resp.Token, resp.Tries)
	if err != nil {
		return models.Token{}, err
	}
	f.token = &token
	f.updates = append(f.updates, token)
	return token, nil
}

func (f *fakeTokenStore) ClearNext(context.Context) error {
	f.token = nil
	return nil
}

// fakeAccount is a fixed-answer store.Account.
type fakeAccount struct {
	primary    bool
	registered bool
}

func (a fakeAccount) IsPrimaryDevice() bool           { return a.primary }
func (a fakeAccount) IsRegisteredPrimaryDevice() bool { return a.primary && a.registered }
func (a fakeAccount) IsRegisteredAndReady() bool      { return a.registered }

// fakeClock pins the protocol clock.
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }
