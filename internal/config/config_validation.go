// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
)

// validateStructured checks the required fields of the merged config and
// returns the decoded service identity bytes.
func validateStructured(cfg *StructuredConfig) ([]byte, error) {
	if cfg.Enclave.BaseURL == "" {
		return nil, ErrEnclaveURLMissing
	}
	if cfg.Enclave.Name == "" {
		return nil, ErrEnclaveNameMissing
	}

	if cfg.App.ServiceID == "" {
		return nil, ErrServiceIDInvalid
	}
	serviceID, err := hex.DecodeString(cfg.App.ServiceID)
	if err != nil || len(serviceID) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrServiceIDInvalid, cfg.App.ServiceID)
	}

	return serviceID, nil
}
