// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
)

// Envelope layout: 16-byte synthetic IV followed by the 32-byte ciphertext.
const (
	EnvelopeIVLength = 16
	EnvelopeLength   = EnvelopeIVLength + 32

	masterKeyLength     = 32
	encryptionKeyLength = 32
)

var (
	// ErrEnvelopeLength is returned when Seal or Open receives input of the
	// wrong size.
	ErrEnvelopeLength = errors.New("envelope input has wrong length")

	// ErrEnvelopeAuth is returned when the envelope fails authentication,
	// i.e. it was sealed under a different key or has been tampered with.
	ErrEnvelopeAuth = errors.New("envelope authentication failed")
)

// envelopeSealer is the private implementation of [EnvelopeSealer]. It is an
// SIV construction over HMAC-SHA-256 and AES-256-CTR: two subkeys are
// derived from the encryption key, the IV is the truncated MAC of the
// plaintext under the first, and the plaintext is encrypted under the
// second with that IV. The MAC-then-encrypt order makes the scheme
// deterministic and the IV doubles as the authenticator on the way back.
type envelopeSealer struct{}

// NewEnvelopeSealer constructs an [EnvelopeSealer].
func NewEnvelopeSealer() EnvelopeSealer {
	return &envelopeSealer{}
}

// Seal implements [EnvelopeSealer].
func (e *envelopeSealer) Seal(masterKey, encKey []byte) ([]byte, error) {
	if len(masterKey) != masterKeyLength {
		return nil, fmt.Errorf("%w: master key is %d bytes, want %d", ErrEnvelopeLength, len(masterKey), masterKeyLength)
	}
	if len(encKey) != encryptionKeyLength {
		return nil, fmt.Errorf("%w: encryption key is %d bytes, want %d", ErrEnvelopeLength, len(encKey), encryptionKeyLength)
	}

	authKey, cipherKey := envelopeSubkeys(encKey)

	iv := envelopeIV(authKey, masterKey)

	block, err := aes.NewCipher(cipherKey)
	if err != nil {
		return nil, fmt.Errorf("init envelope cipher: %w", err)
	}

	out := make([]byte, EnvelopeLength)
	copy(out, iv)
	cipher.NewCTR(block, iv).XORKeyStream(out[EnvelopeIVLength:], masterKey)

	return out, nil
}

// Open implements [EnvelopeSealer]. The candidate plaintext is decrypted
// first, then its synthetic IV is recomputed and compared against the one
// carried in the envelope; a mismatch means the wrong key or a modified
// ciphertext.
func (e *envelopeSealer) Open(envelope, encKey []byte) ([]byte, error) {
	if len(envelope) != EnvelopeLength {
		return nil, fmt.Errorf("%w: envelope is %d bytes, want %d", ErrEnvelopeLength, len(envelope), EnvelopeLength)
	}
	if len(encKey) != encryptionKeyLength {
		return nil, fmt.Errorf("%w: encryption key is %d bytes, want %d", ErrEnvelopeLength, len(encKey), encryptionKeyLength)
	}

	authKey, cipherKey := envelopeSubkeys(encKey)

	iv := envelope[:EnvelopeIVLength]
	ciphertext := envelope[EnvelopeIVLength:]

	block, err := aes.NewCipher(cipherKey)
	if err != nil {
		return nil, fmt.Errorf("init envelope cipher: %w", err)
	}

	masterKey := make([]byte, masterKeyLength)
	cipher.NewCTR(block, iv).XORKeyStream(masterKey, ciphertext)

	if subtle.ConstantTimeCompare(envelopeIV(authKey, masterKey), iv) != 1 {
		return nil, ErrEnvelopeAuth
	}

	return masterKey, nil
}

// envelopeSubkeys derives the authentication and encryption subkeys from
// the outer encryption key. The single-byte labels keep the two roles
// domain separated.
func envelopeSubkeys(encKey []byte) (authKey, cipherKey []byte) {
	return hmacSHA256(encKey, []byte{0x01}), hmacSHA256(encKey, []byte{0x02})
}

// envelopeIV is the synthetic IV: the MAC of the plaintext under the auth
// subkey, truncated to the AES block size.
func envelopeIV(authKey, plaintext []byte) []byte {
	return hmacSHA256(authKey, plaintext)[:EnvelopeIVLength]
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
