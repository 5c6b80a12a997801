// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// AttestationKeys holds the two AES-256-GCM session keys negotiated during
// remote attestation. ClientKey encrypts requests to the enclave, ServerKey
// decrypts its responses.
type AttestationKeys struct {
	ClientKey []byte
	ServerKey []byte
}

// AttestationAuth carries the basic-auth credential the key backup endpoints
// expect. It is normally minted by the account layer; during
// re-registration the caller may supply an explicit credential instead.
type AttestationAuth struct {
	Username string
	Password string
}

// RemoteAttestation is the result of one attestation handshake with the key
// backup enclave. It is valid for a short window and is fetched fresh for
// every enclave operation.
type RemoteAttestation struct {
	// RequestID is the opaque per-attestation identifier. It is echoed in
	// the outer request and bound into the request ciphertext as GCM
	// additional data.
	RequestID []byte

	// EnclaveName selects the enclave deployment in the request path.
	EnclaveName string

	Keys AttestationKeys
	Auth AttestationAuth

	// Cookies pin follow-up requests to the host that performed the
	// handshake.
	Cookies []*http.Cookie
}
