// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// The public API surfaces exactly three kinds of failure: InvalidPinError,
// ErrBackupMissing, and AssertionError. Everything unexpected — malformed
// responses, length mismatches, spent tokens, clock skew, decryption
// failures — is wrapped into an AssertionError so callers have a single
// "treat as bug, show generic failure" branch.

// InvalidPinError is returned when the enclave rejects the PIN. The
// remaining-attempts count is authoritative and must be shown to the user.
type InvalidPinError struct {
	TriesRemaining uint32
}

func (e *InvalidPinError) Error() string {
	return fmt.Sprintf("invalid pin, %d tries remaining", e.TriesRemaining)
}

// ErrBackupMissing is returned when no backup record exists for this
// account; the master key is not recoverable through the backup service and
// the user must re-enroll.
var ErrBackupMissing = errors.New("no key backup exists for this account")

// AssertionError marks a shape violation or an unexpected protocol state.
// It wraps the underlying cause for logs; callers treat it as opaque.
type AssertionError struct {
	Msg string
	Err error
}

func (e *AssertionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AssertionError) Unwrap() error { return e.Err }

// Errors returned by the derived-key service.
var (
	// ErrKeyUnavailable is returned when the derived key's parent chain
	// cannot be resolved on this device (no master key, no synced key).
	ErrKeyUnavailable = errors.New("derived key unavailable")

	// ErrDecryptionFailed is returned when a derived-key ciphertext cannot
	// be decrypted. Crypto-internal detail is deliberately withheld.
	ErrDecryptionFailed = errors.New("decryption failed")
)
