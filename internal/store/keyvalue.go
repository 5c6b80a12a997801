// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-key-backup/internal/logger"
)

// keyValueRepository is the SQLite-backed implementation of
// [KeyValueRepository].
type keyValueRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyValueRepository constructs a [KeyValueRepository] over db.
func NewKeyValueRepository(db *DB, log *logger.Logger) KeyValueRepository {
	return &keyValueRepository{db: db, logger: log}
}

// Get implements [KeyValueRepository].
func (r *keyValueRepository) Get(ctx context.Context, collection, name string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, getKeyValue, collection, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrValueNotFound, collection, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// GetAll implements [KeyValueRepository].
func (r *keyValueRepository) GetAll(ctx context.Context, collection string) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, getAllKeyValues, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string][]byte)
	for rows.Next() {
		var name string
		var value []byte
		if err = rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[name] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

// Apply implements [KeyValueRepository]. Writes and removals run inside one
// transaction; on any failure the transaction is rolled back and the
// collection is left untouched.
func (r *keyValueRepository) Apply(ctx context.Context, collection string, set map[string][]byte, remove []string) error {
	if len(set) == 0 && len(remove) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// Deterministic write order keeps transactions comparable in logs and
	// tests.
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err = tx.ExecContext(ctx, upsertKeyValue, collection, name, set[name]); err != nil {
			return fmt.Errorf("%w: upsert %s/%s: %w", ErrExecutingStatement, collection, name, err)
		}
	}
	for _, name := range remove {
		if _, err = tx.ExecContext(ctx, deleteKeyValue, collection, name); err != nil {
			return fmt.Errorf("%w: delete %s/%s: %w", ErrExecutingStatement, collection, name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
