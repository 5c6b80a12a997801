// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/models"
)

// Field names inside CollectionToken.
const (
	tokenBackupIDName = "backupIdKey"
	tokenDataName     = "dataKey"
	tokenTriesName    = "triesKey"
)

// tokenStore is the private implementation of [TokenStore].
type tokenStore struct {
	repo   KeyValueRepository
	logger *logger.Logger
}

// NewTokenStore constructs a [TokenStore] over repo.
func NewTokenStore(repo KeyValueRepository, log *logger.Logger) TokenStore {
	return &tokenStore{repo: repo, logger: log}
}

// Current implements [TokenStore]. All three fields are read in one
// snapshot; an incomplete or corrupt record yields nil so the caller
// refetches from the enclave instead of sending a doomed request.
func (s *tokenStore) Current(ctx context.Context) (*models.Token, error) {
	values, err := s.repo.GetAll(ctx, CollectionToken)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	backupID, okBackupID := values[tokenBackupIDName]
	data, okData := values[tokenDataName]
	triesRaw, okTries := values[tokenTriesName]
	if !okBackupID || !okData || !okTries {
		return nil, nil
	}

	tries, err := strconv.ParseUint(string(triesRaw), 10, 32)
	if err != nil {
		s.logger.Warn().Str("tries", string(triesRaw)).Msg("dropping corrupt persisted token")
		return nil, nil
	}

	token, err := models.NewToken(backupID, data, uint32(tries))
	if err != nil {
		s.logger.Warn().Err(err).Msg("dropping corrupt persisted token")
		return nil, nil
	}

	return &token, nil
}

// UpdateNext implements [TokenStore].
func (s *tokenStore) UpdateNext(ctx context.Context, data, backupID []byte, tries *uint32) (models.Token, error) {
	if data == nil {
		return models.Token{}, fmt.Errorf("%w: data", ErrTokenFieldMissing)
	}

	if backupID == nil {
		persisted, err := s.persistedField(ctx, tokenBackupIDName)
		if err != nil {
			return models.Token{}, fmt.Errorf("%w: backupId", ErrTokenFieldMissing)
		}
		backupID = persisted
	}

	var triesValue uint32
	if tries != nil {
		triesValue = *tries
	} else {
		persisted, err := s.persistedField(ctx, tokenTriesName)
		if err != nil {
			return models.Token{}, fmt.Errorf("%w: tries", ErrTokenFieldMissing)
		}
		parsed, err := strconv.ParseUint(string(persisted), 10, 32)
		if err != nil {
			return models.Token{}, fmt.Errorf("%w: tries", ErrTokenFieldMissing)
		}
		triesValue = uint32(parsed)
	}

	token, err := models.NewToken(backupID, data, triesValue)
	if err != nil {
		return models.Token{}, fmt.Errorf("update token: %w", err)
	}

	if err = s.write(ctx, token); err != nil {
		return models.Token{}, err
	}

	return token, nil
}

// UpdateNextFromBootstrap implements [TokenStore].
func (s *tokenStore) UpdateNextFromBootstrap(ctx context.Context, resp models.TokenResponse) (models.Token, error) {
	token, err := models.NewToken(resp.BackupID, resp.Token, resp.Tries)
	if err != nil {
		return models.Token{}, fmt.Errorf("bootstrap token: %w", err)
	}

	if err = s.write(ctx, token); err != nil {
		return models.Token{}, err
	}

	return token, nil
}

// ClearNext implements [TokenStore].
func (s *tokenStore) ClearNext(ctx context.Context) error {
	remove := []string{tokenBackupIDName, tokenDataName, tokenTriesName}
	if err := s.repo.Apply(ctx, CollectionToken, nil, remove); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *tokenStore) write(ctx context.Context, token models.Token) error {
	set := map[string][]byte{
		tokenBackupIDName: token.BackupID,
		tokenDataName:     token.Data,
		tokenTriesName:    []byte(strconv.FormatUint(uint64(token.Tries), 10)),
	}
	if err := s.repo.Apply(ctx, CollectionToken, set, nil); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *tokenStore) persistedField(ctx context.Context, name string) ([]byte, error) {
	value, err := s.repo.Get(ctx, CollectionToken, name)
	if err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("read token field %s: %w", name, err)
	}
	return value, nil
}
