// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the key material side of the key backup client:
// PIN-based key derivation, the deterministic master-key envelope, and the
// AES-GCM helpers used by the attested transport and the derived-key
// service. It knows nothing about the network, persistence, or users.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDerivation turns a user PIN into the keys the rest of the client works
// with. All methods are CPU-heavy (Argon2) or cheap and pure (HMAC); none of
// them touch I/O.
//
// Derivation scheme:
//
//	encKey ‖ accessKey = Argon2id(normalize(pin), salt=backupId)  (64 bytes, split in half)
//	verification       = Argon2i(normalize(pin), salt=random16)   (encoded, self-describing)
//	derived[label]     = HMAC-SHA-256(parentKey, label)
//
// accessKey is the only PIN-derived value the server ever sees; encKey wraps
// the master key locally and never leaves the device.
type KeyDerivation interface {
	// DeriveEncryptionAndAccessKey derives the 32-byte encryption key and
	// the 32-byte access key from pin, salted with the 32-byte backupID.
	// Deterministic: the same pin and backupID always produce the same
	// pair. Returns an error if backupID has the wrong length.
	DeriveEncryptionAndAccessKey(pin string, backupID []byte) (encKey, accessKey []byte, err error)

	// DeriveVerificationString hashes pin with a fresh random 16-byte salt
	// and returns a self-describing encoded string suitable for later
	// offline verification with VerifyPin.
	DeriveVerificationString(pin string) (string, error)

	// VerifyPin reports whether pin matches the encoded verification
	// string. It never fails: any parse or hashing problem yields false.
	VerifyPin(pin, encoded string) bool

	// DeriveNamed computes HMAC-SHA-256(parentKey, label), the
	// domain-separated child key for the given label.
	DeriveNamed(parentKey []byte, label string) []byte
}

// EnvelopeSealer is the deterministic authenticated encryption used to wrap
// the 32-byte master key under the PIN-derived encryption key before it is
// stored on the server.
type EnvelopeSealer interface {
	// Seal encrypts the 32-byte masterKey under the 32-byte encKey and
	// returns the 48-byte envelope iv ‖ ciphertext. Deterministic: equal
	// inputs produce equal envelopes.
	Seal(masterKey, encKey []byte) ([]byte, error)

	// Open decrypts a 48-byte envelope and returns the 32-byte master key.
	// Returns an error on a length violation or authentication failure.
	Open(envelope, encKey []byte) ([]byte, error)
}
