// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Sizes of the two opaque byte fields of an enclave token. The enclave
// rejects requests whose token fields deviate from these lengths, so the
// client enforces them at construction time instead of discovering the
// problem one round trip later.
const (
	BackupIDLength  = 32
	TokenDataLength = 32
)

// MaximumKeyAttempts is the number of PIN guesses the enclave allows before
// it destroys the backup record. Every backup request re-arms the counter to
// this value.
const MaximumKeyAttempts uint32 = 10

// ErrTokenFieldLength is returned when a token is constructed from fields of
// the wrong length, typically after reading corrupt persisted state.
var ErrTokenFieldLength = errors.New("token field has wrong length")

// Token is the enclave's single-use anti-replay cookie. Every request
// consumes the current token and the response carries the token for the
// *next* request; a token value is never sent twice.
type Token struct {
	// BackupID identifies the backup record on the enclave. It is assigned
	// on first contact and stays stable across token rotations.
	BackupID []byte

	// Data is the opaque one-shot token value itself.
	Data []byte

	// Tries is the remaining number of PIN attempts the enclave will accept
	// before destroying the record.
	Tries uint32
}

// NewToken validates field lengths and assembles a Token.
func NewToken(backupID, data []byte, tries uint32) (Token, error) {
	if len(backupID) != BackupIDLength {
		return Token{}, fmt.Errorf("%w: backupId is %d bytes, want %d", ErrTokenFieldLength, len(backupID), BackupIDLength)
	}
	if len(data) != TokenDataLength {
		return Token{}, fmt.Errorf("%w: data is %d bytes, want %d", ErrTokenFieldLength, len(data), TokenDataLength)
	}

	return Token{BackupID: backupID, Data: data, Tries: tries}, nil
}
