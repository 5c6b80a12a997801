// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-key-backup/internal/pin"
	"github.com/MKhiriev/go-key-backup/models"
)

// Sentinel errors returned by key derivation. Callers match with errors.Is.
var (
	// ErrBackupIDLength is returned when the derivation salt is not a valid
	// 32-byte backup id.
	ErrBackupIDLength = errors.New("backup id has wrong length")
)

// keyDerivation is the private implementation of [KeyDerivation].
type keyDerivation struct {
	// Argon2id parameters for the PIN → (encKey, accessKey) derivation.
	// Tuned for interactive use on mobile-class hardware; the derivation is
	// rate limited server-side, not by work factor.
	accessTime    uint32
	accessMemory  uint32 // KiB
	accessThreads uint8
	accessKeyLen  uint32

	// Argon2i parameters for the local verification string. Deliberately
	// lighter: the string only gates re-prompting the user, not key
	// material.
	verifyTime    uint32
	verifyMemory  uint32 // KiB
	verifyThreads uint8
	verifyKeyLen  uint32
	verifySaltLen int
}

// NewKeyDerivation constructs a [KeyDerivation] with the production
// parameters:
//   - access/encryption keys: Argon2id, 32 iterations, 16 MiB, 1 thread,
//     64-byte output (split into two 32-byte keys);
//   - verification string: Argon2i, 64 iterations, 512 KiB, 1 thread,
//     32-byte output over a random 16-byte salt.
func NewKeyDerivation() KeyDerivation {
	return &keyDerivation{
		accessTime:    32,
		accessMemory:  16 * 1024, // 16 MiB
		accessThreads: 1,
		accessKeyLen:  64,

		verifyTime:    64,
		verifyMemory:  512, // 512 KiB
		verifyThreads: 1,
		verifyKeyLen:  32,
		verifySaltLen: 16,
	}
}

// DeriveEncryptionAndAccessKey implements [KeyDerivation]. The normalized
// PIN is hashed with Argon2id using the backup id as salt; bytes [0..32) of
// the output are the encryption key, bytes [32..64) the access key.
func (k *keyDerivation) DeriveEncryptionAndAccessKey(p string, backupID []byte) ([]byte, []byte, error) {
	if len(backupID) != models.BackupIDLength {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBackupIDLength, len(backupID), models.BackupIDLength)
	}

	normalized := pin.Normalize(p)
	raw := argon2.IDKey([]byte(normalized), backupID, k.accessTime, k.accessMemory, k.accessThreads, k.accessKeyLen)

	return raw[:32], raw[32:], nil
}

// DeriveVerificationString implements [KeyDerivation].
func (k *keyDerivation) DeriveVerificationString(p string) (string, error) {
	salt, err := RandomBytes(k.verifySaltLen)
	if err != nil {
		return "", fmt.Errorf("verification salt: %w", err)
	}
	return k.deriveVerificationString(p, salt), nil
}

// deriveVerificationString hashes the normalized PIN with Argon2i and
// encodes it in the PHC format:
//
//	$argon2i$v=19$m=<memory>,t=<time>,p=<threads>$<b64 salt>$<b64 hash>
//
// The string is self-describing, so parameters can be tuned without
// invalidating previously stored strings.
func (k *keyDerivation) deriveVerificationString(p string, salt []byte) string {
	normalized := pin.Normalize(p)
	hash := argon2.Key([]byte(normalized), salt, k.verifyTime, k.verifyMemory, k.verifyThreads, k.verifyKeyLen)

	return fmt.Sprintf("$argon2i$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		k.verifyMemory, k.verifyTime, k.verifyThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

// VerifyPin implements [KeyDerivation]. It recomputes the Argon2i hash with
// the parameters and salt embedded in encoded and compares in constant
// time. False on any malformed input; it never panics or errors.
func (k *keyDerivation) VerifyPin(p, encoded string) bool {
	params, salt, want, err := parseVerificationString(encoded)
	if err != nil {
		return false
	}

	normalized := pin.Normalize(p)
	got := argon2.Key([]byte(normalized), salt, params.time, params.memory, params.threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1
}

// DeriveNamed implements [KeyDerivation].
func (k *keyDerivation) DeriveNamed(parentKey []byte, label string) []byte {
	mac := hmac.New(sha256.New, parentKey)
	mac.Write([]byte(label))
	return mac.Sum(nil)
}

type verificationParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// parseVerificationString splits a PHC-encoded Argon2i string into its
// parameters, salt, and hash.
func parseVerificationString(encoded string) (verificationParams, []byte, []byte, error) {
	var params verificationParams
	var version int
	var saltB64, hashB64 string

	n, err := fmt.Sscanf(encoded, "$argon2i$v=%d$m=%d,t=%d,p=%d$%s",
		&version, &params.memory, &params.time, &params.threads, &saltB64)
	if err != nil || n != 5 {
		return verificationParams{}, nil, nil, fmt.Errorf("malformed verification string")
	}
	if version != argon2.Version {
		return verificationParams{}, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	// Sscanf leaves "<salt>$<hash>" in the final %s verb.
	var ok bool
	saltB64, hashB64, ok = cutLast(saltB64)
	if !ok {
		return verificationParams{}, nil, nil, fmt.Errorf("malformed verification string")
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return verificationParams{}, nil, nil, fmt.Errorf("decode salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return verificationParams{}, nil, nil, fmt.Errorf("decode hash: %w", err)
	}
	if len(hash) == 0 {
		return verificationParams{}, nil, nil, fmt.Errorf("empty hash")
	}

	return params, salt, hash, nil
}

func cutLast(s string) (before, after string, ok bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '$' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
