// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-key-backup/internal/adapter"
	"github.com/MKhiriev/go-key-backup/internal/crypto"
	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/internal/pin"
	"github.com/MKhiriev/go-key-backup/internal/store"
	"github.com/MKhiriev/go-key-backup/models"
)

// validFromSkew backdates the request validity stamp so a client clock up
// to a day ahead of the enclave still produces acceptable requests.
const validFromSkew = 24 * time.Hour

// keyBackupService is the private implementation of [KeyBackupService].
type keyBackupService struct {
	enclave    adapter.EnclaveClient
	derivation crypto.KeyDerivation
	sealer     crypto.EnvelopeSealer
	keys       store.KeyStore
	tokens     store.TokenStore
	clock      Clock
	serviceID  []byte
	logger     *logger.Logger
}

// NewKeyBackupService constructs a [KeyBackupService]. serviceID is the
// compile-time service identity included in every inner request; it must be
// non-empty.
func NewKeyBackupService(
	enclave adapter.EnclaveClient,
	derivation crypto.KeyDerivation,
	sealer crypto.EnvelopeSealer,
	keys store.KeyStore,
	tokens store.TokenStore,
	clock Clock,
	serviceID []byte,
	log *logger.Logger,
) (KeyBackupService, error) {
	if len(serviceID) == 0 {
		return nil, fmt.Errorf("service id must not be empty")
	}

	return &keyBackupService{
		enclave:    enclave,
		derivation: derivation,
		sealer:     sealer,
		keys:       keys,
		tokens:     tokens,
		clock:      clock,
		serviceID:  serviceID,
		logger:     log,
	}, nil
}

// GenerateAndBackup implements [KeyBackupService].
func (s *keyBackupService) GenerateAndBackup(ctx context.Context, p string) error {
	log := s.opLogger("generateAndBackup")

	backupID, err := s.enclave.FetchBackupID(ctx, nil)
	if err != nil {
		return s.assertion(log, "fetch backup id", err)
	}

	// Re-enrolling with a new PIN keeps the existing master key, so
	// previously derived keys stay valid.
	masterKey := s.keys.MasterKey()
	if masterKey == nil {
		if masterKey, err = crypto.GenerateMasterKey(); err != nil {
			return s.assertion(log, "generate master key", err)
		}
		log.Info().Msg("generated fresh master key")
	}

	encKey, accessKey, err := s.derivation.DeriveEncryptionAndAccessKey(p, backupID)
	if err != nil {
		return s.assertion(log, "derive keys from pin", err)
	}

	envelope, err := s.sealer.Seal(masterKey, encKey)
	if err != nil {
		return s.assertion(log, "seal master key", err)
	}

	opt := &adapter.BackupOption{Build: func(token models.Token) models.BackupRequest {
		return models.BackupRequest{
			ServiceID: s.serviceID,
			BackupID:  token.BackupID,
			Token:     token.Data,
			ValidFrom: s.validFrom(),
			Data:      envelope,
			Pin:       accessKey,
			Tries:     models.MaximumKeyAttempts,
		}
	}}

	if err = s.enclave.Request(ctx, nil, opt); err != nil {
		// Flag the interrupted enrollment so a scheduler can retry it.
		if flagErr := s.keys.SetBackupKeyRequestFailed(ctx, true); flagErr != nil {
			log.Err(flagErr).Msg("failed to persist backup failure flag")
		}
		return s.assertion(log, "backup request", err)
	}

	if _, err = s.tokens.UpdateNext(ctx, opt.Response.Token, nil, nil); err != nil {
		return s.assertion(log, "persist next token", err)
	}

	return s.finishBackup(ctx, log, p, masterKey, opt.Response.Status, false)
}

// RestoreKeys implements [KeyBackupService].
func (s *keyBackupService) RestoreKeys(ctx context.Context, p string, auth *models.AttestationAuth) error {
	log := s.opLogger("restoreKeys")

	backupID, err := s.enclave.FetchBackupID(ctx, auth)
	if err != nil {
		return s.assertion(log, "fetch backup id", err)
	}

	encKey, accessKey, err := s.derivation.DeriveEncryptionAndAccessKey(p, backupID)
	if err != nil {
		return s.assertion(log, "derive keys from pin", err)
	}

	opt := &adapter.RestoreOption{Build: func(token models.Token) models.RestoreRequest {
		return models.RestoreRequest{
			ServiceID: s.serviceID,
			BackupID:  token.BackupID,
			Token:     token.Data,
			ValidFrom: s.validFrom(),
			Pin:       accessKey,
		}
	}}

	if err = s.enclave.Request(ctx, auth, opt); err != nil {
		return s.assertion(log, "restore request", err)
	}
	resp := opt.Response

	// A missing record carries no token; everything else rotates it, and
	// the tries count in the response is authoritative.
	if resp.Status != models.RestoreStatusMissing {
		if _, err = s.tokens.UpdateNext(ctx, resp.Token, nil, &resp.Tries); err != nil {
			return s.assertion(log, "persist next token", err)
		}
	}

	switch resp.Status {
	case models.RestoreStatusTokenMismatch:
		// The stored token was already spent, likely by a concurrent
		// operation; the response carried a fresh one, so a retry will go
		// through.
		return s.assertion(log, "restore with spent token", nil)

	case models.RestoreStatusPinMismatch:
		log.Info().Uint32("triesRemaining", resp.Tries).Msg("enclave rejected pin")
		return &InvalidPinError{TriesRemaining: resp.Tries}

	case models.RestoreStatusMissing:
		log.Info().Msg("no backup record exists")
		return ErrBackupMissing

	case models.RestoreStatusNotYetValid:
		return s.assertion(log, "restore request not yet valid, check client clock", nil)

	case models.RestoreStatusOK:
		masterKey, openErr := s.sealer.Open(resp.Data, encKey)
		if openErr != nil {
			return s.assertion(log, "open restored envelope", openErr)
		}

		// The server decremented tries for this restore and a success does
		// not reset the counter, so immediately overwrite the record with
		// a full budget.
		backOpt := &adapter.BackupOption{Build: func(token models.Token) models.BackupRequest {
			return models.BackupRequest{
				ServiceID: s.serviceID,
				BackupID:  token.BackupID,
				Token:     token.Data,
				ValidFrom: s.validFrom(),
				Data:      resp.Data,
				Pin:       accessKey,
				Tries:     models.MaximumKeyAttempts,
			}
		}}
		if err = s.enclave.Request(ctx, auth, backOpt); err != nil {
			return s.assertion(log, "post-restore backup request", err)
		}
		if _, err = s.tokens.UpdateNext(ctx, backOpt.Response.Token, nil, nil); err != nil {
			return s.assertion(log, "persist next token", err)
		}

		return s.finishBackup(ctx, log, p, masterKey, backOpt.Response.Status, true)

	default:
		return s.assertion(log, fmt.Sprintf("unknown restore status %q", resp.Status), nil)
	}
}

// DeleteKeys implements [KeyBackupService].
func (s *keyBackupService) DeleteKeys(ctx context.Context) error {
	log := s.opLogger("deleteKeys")

	opt := &adapter.DeleteOption{Build: func(token models.Token) models.DeleteRequest {
		return models.DeleteRequest{
			ServiceID: s.serviceID,
			BackupID:  token.BackupID,
		}
	}}
	reqErr := s.enclave.Request(ctx, nil, opt)

	// Local state goes regardless of what the enclave said: the user asked
	// for the keys to be gone.
	if err := s.keys.ClearKeys(ctx); err != nil {
		return s.assertion(log, "clear local keys", err)
	}
	if err := s.tokens.ClearNext(ctx); err != nil {
		return s.assertion(log, "clear local token", err)
	}

	if reqErr != nil {
		return s.assertion(log, "delete request", reqErr)
	}

	log.Info().Msg("deleted key backup")
	return nil
}

// VerifyPin implements [KeyBackupService].
func (s *keyBackupService) VerifyPin(_ context.Context, p string) bool {
	encoded := s.keys.VerificationString()
	if encoded == "" {
		return false
	}
	return s.derivation.VerifyPin(p, encoded)
}

// HasMasterKey implements [KeyBackupService].
func (s *keyBackupService) HasMasterKey() bool { return s.keys.HasMasterKey() }

// CurrentPinType implements [KeyBackupService].
func (s *keyBackupService) CurrentPinType() *models.PinType { return s.keys.PinType() }

// finishBackup branches on a backup response status and, when the backup
// landed, derives the verification string and persists the key material.
func (s *keyBackupService) finishBackup(ctx context.Context, log *logger.Logger, p string, masterKey []byte, status models.BackupStatus, isReBackup bool) error {
	switch status {
	case models.BackupStatusAlreadyExists:
		if isReBackup {
			return s.assertion(log, "post-restore backup reported already exists", nil)
		}
		// Our token had already been spent on an identical backup (the
		// envelope is deterministic), so the record is in place; finish
		// the local half with the fresh token now stored.
		log.Warn().Msg("backup already exists for spent token")

	case models.BackupStatusOK:

	case models.BackupStatusNotYetValid:
		return s.assertion(log, "backup request not yet valid, check client clock", nil)

	default:
		return s.assertion(log, fmt.Sprintf("unknown backup status %q", status), nil)
	}

	verificationString, err := s.derivation.DeriveVerificationString(p)
	if err != nil {
		return s.assertion(log, "derive verification string", err)
	}

	if err = s.keys.Store(ctx, masterKey, pin.TypeOf(p), verificationString); err != nil {
		return s.assertion(log, "persist key material", err)
	}

	log.Info().Msg("key backup completed")
	return nil
}

func (s *keyBackupService) validFrom() int64 {
	return s.clock.Now().Add(-validFromSkew).Unix()
}

// opLogger returns a child logger carrying the operation name and a fresh
// correlation id.
func (s *keyBackupService) opLogger(op string) *logger.Logger {
	child := s.logger.With().Str("op", op).Str("opId", uuid.NewString()).Logger()
	return &logger.Logger{Logger: child}
}

func (s *keyBackupService) assertion(log *logger.Logger, msg string, err error) error {
	log.Error().Err(err).Msg(msg)
	return &AssertionError{Msg: msg, Err: err}
}
