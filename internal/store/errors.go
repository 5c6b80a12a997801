// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrValueNotFound is returned when a key-value lookup targets a name
	// that has never been written (or has been deleted) in its collection.
	ErrValueNotFound = errors.New("value not found")

	// ErrMasterKeyLength is returned when Store is called with a master key
	// that is not exactly 32 bytes.
	ErrMasterKeyLength = errors.New("master key has wrong length")

	// ErrSyncedKeyLength is returned when a synced derived key does not
	// decode to 32 bytes.
	ErrSyncedKeyLength = errors.New("synced key has wrong length")

	// ErrPrimarySyncedKeyWrite is returned when a primary device attempts
	// to store a synced derived key. Primary devices derive keys from the
	// master key; only linked devices receive keys over the sync channel.
	ErrPrimarySyncedKeyWrite = errors.New("synced key write on primary device")

	// ErrKeyNotSyncable is returned when a synced-key write names a derived
	// key outside the sync allow-list.
	ErrKeyNotSyncable = errors.New("derived key is not syncable")

	// ErrTokenFieldMissing is returned when UpdateNext cannot complete
	// because a required token field is neither supplied by the caller nor
	// present in persisted state.
	ErrTokenFieldMissing = errors.New("token field missing")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the key-value repository when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values from a result
	// set fails.
	ErrScanningRows = errors.New("failed to scan key-value rows")
)
