// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrBadRequest is returned for HTTP 400 responses.
	ErrBadRequest = errors.New("enclave rejected request")

	// ErrUnauthorized is returned for HTTP 401/403 responses; the
	// attestation auth credential is missing or stale.
	ErrUnauthorized = errors.New("enclave authorization failed")

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("enclave endpoint not found")

	// ErrServerFailure is returned for HTTP 5xx responses.
	ErrServerFailure = errors.New("enclave server failure")

	// ErrMalformedResponse is returned when a response cannot be decoded,
	// fails decryption, or lacks the inner response for the requested
	// operation.
	ErrMalformedResponse = errors.New("malformed enclave response")
)
