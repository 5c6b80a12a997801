// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the key
// backup enclave.
//
// The primary abstraction is [EnclaveClient], the attested encrypted
// request pipeline: every call performs a fresh remote attestation, ensures
// a one-shot token, encrypts the inner request under the attestation's
// client key, and decrypts the response under the server key. The three
// enclave operations plug into the pipeline as [RequestOption] values, so
// the pipeline itself stays operation-agnostic.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-key-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AttestationService performs the remote attestation handshake with the key
// backup enclave. Implementations are external to this package's concerns;
// the pipeline only consumes the resulting session material.
type AttestationService interface {
	// PerformForKeyBackup runs one attestation round trip and returns the
	// negotiated session. auth overrides the account credential when
	// non-nil (used during re-registration, before the account has auth).
	PerformForKeyBackup(ctx context.Context, auth *models.AttestationAuth) (models.RemoteAttestation, error)
}

// RequestOption describes one enclave operation to the request pipeline:
// how to attach the inner request to the envelope, how to pull the typed
// inner response back out, and the tag that names the operation in the
// request path. Concrete options ([BackupOption], [RestoreOption],
// [DeleteOption]) also hold the typed response after a successful call.
type RequestOption interface {
	// Tag names the operation in the HTTP request path.
	Tag() models.KBSRequestTag

	// Attach builds the inner request with the current one-shot token and
	// sets it on the envelope.
	Attach(env *models.KBSRequest, token models.Token)

	// Extract pulls the operation's inner response out of the decrypted
	// envelope. Returns an error if the envelope does not carry it.
	Extract(env *models.KBSResponse) error
}

// EnclaveClient is the attested encrypted request pipeline.
type EnclaveClient interface {
	// Request performs one enclave operation: attestation, token
	// ensurance, inner-request encryption, the HTTP round trip, and
	// response decryption. On success the typed response is available on
	// opt. The consumed token is NOT replaced here — the caller persists
	// the next token carried in the response.
	Request(ctx context.Context, auth *models.AttestationAuth, opt RequestOption) error

	// FetchBackupID returns the backup id of the stored token, fetching
	// the initial token from the enclave (and persisting it) when none is
	// stored.
	FetchBackupID(ctx context.Context, auth *models.AttestationAuth) ([]byte, error)
}
