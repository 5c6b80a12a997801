// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// AES-GCM framing shared by the attested transport and the derived-key
// service.
const (
	GCMIVLength  = 12
	GCMTagLength = 16
)

// ErrGCMOpen is returned when AES-GCM authentication fails. The underlying
// cipher error is deliberately not exposed.
var ErrGCMOpen = errors.New("aes-gcm decryption failed")

// AESGCMSeal encrypts plaintext under key with a fresh random 12-byte IV
// and returns iv, ciphertext, and the 16-byte tag separately. aad may be
// nil.
func AESGCMSeal(key, plaintext, aad []byte) (iv, ciphertext, tag []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, nil, err
	}

	iv, err = RandomBytes(GCMIVLength)
	if err != nil {
		return nil, nil, nil, err
	}

	sealed := gcm.Seal(nil, iv, plaintext, aad)
	split := len(sealed) - GCMTagLength

	return iv, sealed[:split], sealed[split:], nil
}

// AESGCMOpen decrypts a ciphertext produced by AESGCMSeal (or any AES-GCM
// with a detached 16-byte tag). Returns [ErrGCMOpen] on authentication
// failure and a descriptive error on malformed framing.
func AESGCMOpen(key, iv, ciphertext, tag, aad []byte) ([]byte, error) {
	if len(iv) != GCMIVLength {
		return nil, fmt.Errorf("aes-gcm iv is %d bytes, want %d", len(iv), GCMIVLength)
	}
	if len(tag) != GCMTagLength {
		return nil, fmt.Errorf("aes-gcm tag is %d bytes, want %d", len(tag), GCMTagLength)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, aad)
	if err != nil {
		return nil, ErrGCMOpen
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init aes cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return gcm, nil
}
