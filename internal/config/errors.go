// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrEnclaveURLMissing is returned when no key backup service URL is
	// configured.
	ErrEnclaveURLMissing = errors.New("enclave base url is required")

	// ErrEnclaveNameMissing is returned when no enclave deployment name is
	// configured.
	ErrEnclaveNameMissing = errors.New("enclave name is required")

	// ErrServiceIDInvalid is returned when the service identity is missing
	// or is not valid hex.
	ErrServiceIDInvalid = errors.New("service id must be non-empty hex")
)
