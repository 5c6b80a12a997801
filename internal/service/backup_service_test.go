package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-backup/internal/adapter"
	"github.com/MKhiriev/go-key-backup/internal/crypto"
	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/internal/mock"
	"github.com/MKhiriev/go-key-backup/models"
)

var (
	testBackupID  = bytes.Repeat([]byte{0x0B}, 32)
	testServiceID = []byte{0xDE, 0xAD, 0xBE, 0xEF}
)

func testToken(data byte, tries uint32) models.Token {
	return models.Token{
		BackupID: testBackupID,
		Data:     bytes.Repeat([]byte{data}, 32),
		Tries:    tries,
	}
}

// newTestBackupService wires a service over real crypto, in-memory stores,
// and a gomock enclave client.
func newTestBackupService(t *testing.T) (KeyBackupService, *mock.MockEnclaveClient, *fakeKeyStore, *fakeTokenStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockEnclave := mock.NewMockEnclaveClient(ctrl)
	keys := newFakeKeyStore()
	tokens := &fakeTokenStore{}

	svc, err := NewKeyBackupService(
		mockEnclave,
		crypto.NewKeyDerivation(),
		crypto.NewEnvelopeSealer(),
		keys,
		tokens,
		fakeClock{now: time.Unix(1_700_000_000, 0)},
		testServiceID,
		logger.Nop(),
	)
	require.NoError(t, err)

	return svc, mockEnclave, keys, tokens
}

func TestNewKeyBackupService_RejectsEmptyServiceID(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewKeyBackupService(
		mock.NewMockEnclaveClient(ctrl),
		crypto.NewKeyDerivation(),
		crypto.NewEnvelopeSealer(),
		newFakeKeyStore(),
		&fakeTokenStore{},
		NewSystemClock(),
		nil,
		logger.Nop(),
	)
	assert.Error(t, err)
}

func TestGenerateAndBackup_Success(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)
	ctx := context.Background()

	current := testToken(0x10, 10)
	tokens.token = &current
	next := bytes.Repeat([]byte{0x11}, 32)

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			backup, ok := opt.(*adapter.BackupOption)
			require.True(t, ok, "expected a backup option")

			req := backup.Build(current)
			assert.Equal(t, testServiceID, req.ServiceID)
			assert.Equal(t, testBackupID, req.BackupID)
			assert.Equal(t, current.Data, req.Token)
			assert.Len(t, req.Pin, 32)
			assert.Len(t, req.Data, crypto.EnvelopeLength)
			assert.Equal(t, models.MaximumKeyAttempts, req.Tries)
			// validFrom is a day in the past of the pinned clock.
			assert.Equal(t, time.Unix(1_700_000_000, 0).Add(-24*time.Hour).Unix(), req.ValidFrom)

			backup.Response = models.BackupResponse{Status: models.BackupStatusOK, Token: next}
			return nil
		})

	require.NoError(t, svc.GenerateAndBackup(ctx, "1234"))

	assert.True(t, svc.HasMasterKey())
	assert.Len(t, keys.masterKey, 32)
	require.NotNil(t, svc.CurrentPinType())
	assert.Equal(t, models.PinTypeNumeric, *svc.CurrentPinType())
	assert.True(t, svc.VerifyPin(ctx, "1234"))
	assert.False(t, svc.VerifyPin(ctx, "0000"))
	assert.False(t, keys.failedFlag)

	require.NotNil(t, tokens.token)
	assert.Equal(t, next, tokens.token.Data)
	assert.Equal(t, testBackupID, tokens.token.BackupID)
	assert.Equal(t, uint32(10), tokens.token.Tries)
}

func TestGenerateAndBackup_ReusesExistingMasterKey(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	existing := bytes.Repeat([]byte{0xAB}, 32)
	keys.masterKey = bytes.Clone(existing)
	current := testToken(0x10, 10)
	tokens.token = &current

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.BackupOption).Response = models.BackupResponse{
				Status: models.BackupStatusOK,
				Token:  bytes.Repeat([]byte{0x11}, 32),
			}
			return nil
		})

	require.NoError(t, svc.GenerateAndBackup(context.Background(), "5678"))
	assert.Equal(t, existing, keys.masterKey, "changing the pin must not rotate the master key")
}

func TestGenerateAndBackup_NetworkFailureSetsRetryFlag(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	current := testToken(0x10, 10)
	tokens.token = &current

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).Return(errors.New("connection reset"))

	err := svc.GenerateAndBackup(context.Background(), "1234")

	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)
	assert.True(t, keys.failedFlag, "expected the failure flag so retry can be scheduled")
	assert.Zero(t, keys.storeCalls)
}

func TestGenerateAndBackup_NotYetValid(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	current := testToken(0x10, 10)
	tokens.token = &current
	next := bytes.Repeat([]byte{0x11}, 32)

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.BackupOption).Response = models.BackupResponse{Status: models.BackupStatusNotYetValid, Token: next}
			return nil
		})

	err := svc.GenerateAndBackup(context.Background(), "1234")

	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)
	assert.Zero(t, keys.storeCalls)
	// The rotated token was persisted before the status branch.
	require.NotNil(t, tokens.token)
	assert.Equal(t, next, tokens.token.Data)
}

func TestGenerateAndBackup_AlreadyExistsCompletesEnrollment(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	current := testToken(0x10, 10)
	tokens.token = &current

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.BackupOption).Response = models.BackupResponse{
				Status: models.BackupStatusAlreadyExists,
				Token:  bytes.Repeat([]byte{0x11}, 32),
			}
			return nil
		})

	require.NoError(t, svc.GenerateAndBackup(context.Background(), "1234"))
	assert.Equal(t, 1, keys.storeCalls, "an identical deterministic backup already landed; local enrollment completes")
}

func TestRestoreKeys_Success(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)
	ctx := context.Background()

	// The original enrollment this device is recovering.
	masterKey := bytes.Repeat([]byte{0xA1}, 32)
	derivation := crypto.NewKeyDerivation()
	encKey, accessKey, err := derivation.DeriveEncryptionAndAccessKey("1234", testBackupID)
	require.NoError(t, err)
	envelope, err := crypto.NewEnvelopeSealer().Seal(masterKey, encKey)
	require.NoError(t, err)

	current := testToken(0x10, 9)
	tokens.token = &current
	t2 := bytes.Repeat([]byte{0x12}, 32)
	t3 := bytes.Repeat([]byte{0x13}, 32)

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	gomock.InOrder(
		mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
				restore, ok := opt.(*adapter.RestoreOption)
				require.True(t, ok, "expected a restore option first")

				req := restore.Build(current)
				assert.Equal(t, accessKey, req.Pin)
				assert.Equal(t, current.Data, req.Token)

				restore.Response = models.RestoreResponse{
					Status: models.RestoreStatusOK,
					Token:  t2,
					Tries:  10,
					Data:   envelope,
				}
				return nil
			}),
		mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
				backup, ok := opt.(*adapter.BackupOption)
				require.True(t, ok, "expected the post-restore backup second")

				req := backup.Build(models.Token{BackupID: testBackupID, Data: t2, Tries: 10})
				assert.Equal(t, envelope, req.Data, "re-backup reuses the restored envelope")
				assert.Equal(t, models.MaximumKeyAttempts, req.Tries)

				backup.Response = models.BackupResponse{Status: models.BackupStatusOK, Token: t3}
				return nil
			}),
	)

	require.NoError(t, svc.RestoreKeys(ctx, "1234", nil))

	assert.Equal(t, masterKey, keys.masterKey, "recovered master key must match the original")
	require.NotNil(t, svc.CurrentPinType())
	assert.Equal(t, models.PinTypeNumeric, *svc.CurrentPinType())
	assert.True(t, svc.VerifyPin(ctx, "1234"))

	require.NotNil(t, tokens.token)
	assert.Equal(t, t3, tokens.token.Data)
	assert.Equal(t, uint32(10), tokens.token.Tries)
}

func TestRestoreKeys_PinMismatch(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	current := testToken(0x10, 8)
	tokens.token = &current
	t4 := bytes.Repeat([]byte{0x14}, 32)

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.RestoreOption).Response = models.RestoreResponse{
				Status: models.RestoreStatusPinMismatch,
				Token:  t4,
				Tries:  7,
			}
			return nil
		})

	err := svc.RestoreKeys(context.Background(), "0000", nil)

	var invalidPin *InvalidPinError
	require.ErrorAs(t, err, &invalidPin)
	assert.Equal(t, uint32(7), invalidPin.TriesRemaining)

	// The rotated token and the authoritative tries were persisted.
	require.NotNil(t, tokens.token)
	assert.Equal(t, t4, tokens.token.Data)
	assert.Equal(t, uint32(7), tokens.token.Tries)

	assert.False(t, keys.HasMasterKey(), "a failed restore must not touch local keys")
}

func TestRestoreKeys_Missing(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	current := testToken(0x10, 10)
	tokens.token = &current

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.RestoreOption).Response = models.RestoreResponse{Status: models.RestoreStatusMissing}
			return nil
		})

	err := svc.RestoreKeys(context.Background(), "1234", nil)
	assert.ErrorIs(t, err, ErrBackupMissing)

	// A missing record carries no token; the store is untouched.
	assert.Empty(t, tokens.updates)
	assert.False(t, keys.HasMasterKey())
}

func TestRestoreKeys_TokenMismatch(t *testing.T) {
	svc, mockEnclave, _, tokens := newTestBackupService(t)

	current := testToken(0x10, 10)
	tokens.token = &current
	fresh := bytes.Repeat([]byte{0x15}, 32)

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.RestoreOption).Response = models.RestoreResponse{
				Status: models.RestoreStatusTokenMismatch,
				Token:  fresh,
				Tries:  10,
			}
			return nil
		})

	err := svc.RestoreKeys(context.Background(), "1234", nil)

	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)

	// The fresh token is stored, so an immediate retry can succeed.
	require.NotNil(t, tokens.token)
	assert.Equal(t, fresh, tokens.token.Data)
}

func TestRestoreKeys_ReBackupAlreadyExistsIsAssertion(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	masterKey := bytes.Repeat([]byte{0xA1}, 32)
	derivation := crypto.NewKeyDerivation()
	encKey, _, err := derivation.DeriveEncryptionAndAccessKey("1234", testBackupID)
	require.NoError(t, err)
	envelope, err := crypto.NewEnvelopeSealer().Seal(masterKey, encKey)
	require.NoError(t, err)

	current := testToken(0x10, 9)
	tokens.token = &current

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	gomock.InOrder(
		mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
				opt.(*adapter.RestoreOption).Response = models.RestoreResponse{
					Status: models.RestoreStatusOK,
					Token:  bytes.Repeat([]byte{0x12}, 32),
					Tries:  10,
					Data:   envelope,
				}
				return nil
			}),
		mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
				opt.(*adapter.BackupOption).Response = models.BackupResponse{
					Status: models.BackupStatusAlreadyExists,
					Token:  bytes.Repeat([]byte{0x13}, 32),
				}
				return nil
			}),
	)

	err = svc.RestoreKeys(context.Background(), "1234", nil)

	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)
	assert.Zero(t, keys.storeCalls, "nothing persists when the post-restore backup misbehaves")
}

func TestRestoreKeys_WrongEnvelopeKeyIsAssertion(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	// Envelope sealed under a different pin's encryption key.
	otherEnc, _, err := crypto.NewKeyDerivation().DeriveEncryptionAndAccessKey("9999", testBackupID)
	require.NoError(t, err)
	envelope, err := crypto.NewEnvelopeSealer().Seal(bytes.Repeat([]byte{0xA1}, 32), otherEnc)
	require.NoError(t, err)

	current := testToken(0x10, 9)
	tokens.token = &current

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), gomock.Nil()).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.RestoreOption).Response = models.RestoreResponse{
				Status: models.RestoreStatusOK,
				Token:  bytes.Repeat([]byte{0x12}, 32),
				Tries:  10,
				Data:   envelope,
			}
			return nil
		})

	err = svc.RestoreKeys(context.Background(), "1234", nil)

	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)
	assert.Zero(t, keys.storeCalls)
}

func TestRestoreKeys_ForwardsExplicitAuth(t *testing.T) {
	svc, mockEnclave, _, tokens := newTestBackupService(t)

	auth := &models.AttestationAuth{Username: "reregistration", Password: "secret"}
	current := testToken(0x10, 10)
	tokens.token = &current

	mockEnclave.EXPECT().FetchBackupID(gomock.Any(), auth).Return(testBackupID, nil)
	mockEnclave.EXPECT().Request(gomock.Any(), auth, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.RestoreOption).Response = models.RestoreResponse{Status: models.RestoreStatusMissing}
			return nil
		})

	err := svc.RestoreKeys(context.Background(), "1234", auth)
	assert.ErrorIs(t, err, ErrBackupMissing)
}

func TestDeleteKeys_ClearsLocalState(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	keys.masterKey = bytes.Repeat([]byte{0xA1}, 32)
	keys.storageServiceKey = bytes.Repeat([]byte{0x55}, 32)
	current := testToken(0x10, 10)
	tokens.token = &current

	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.AttestationAuth, opt adapter.RequestOption) error {
			opt.(*adapter.DeleteOption).Response = models.DeleteResponse{Status: "ok"}
			return nil
		})

	require.NoError(t, svc.DeleteKeys(context.Background()))

	assert.False(t, keys.HasMasterKey())
	assert.Nil(t, keys.PinType())
	assert.NotNil(t, keys.StorageServiceKey(), "the transitional storage-service key survives deletion")
	assert.Nil(t, tokens.token)
}

func TestDeleteKeys_ClearsLocalStateEvenWhenRequestFails(t *testing.T) {
	svc, mockEnclave, keys, tokens := newTestBackupService(t)

	keys.masterKey = bytes.Repeat([]byte{0xA1}, 32)
	current := testToken(0x10, 10)
	tokens.token = &current

	mockEnclave.EXPECT().Request(gomock.Any(), gomock.Nil(), gomock.Any()).Return(errors.New("connection reset"))

	err := svc.DeleteKeys(context.Background())

	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)
	assert.False(t, keys.HasMasterKey())
	assert.Nil(t, tokens.token)
}

func TestVerifyPin_NoVerificationString(t *testing.T) {
	svc, _, _, _ := newTestBackupService(t)
	assert.False(t, svc.VerifyPin(context.Background(), "1234"))
}
