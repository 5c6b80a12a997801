// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/models"
)

// AttestationConfig configures the HTTP attestation client.
type AttestationConfig struct {
	BaseURL     string
	EnclaveName string
	Timeout     time.Duration

	// Auth is the account credential attached to attestation requests
	// when the caller does not supply an explicit one.
	Auth models.AttestationAuth
}

// attestationResponse is the wire shape of the attestation endpoint.
// Quote verification happens inside the handshake service; this client
// consumes only the negotiated session material.
type attestationResponse struct {
	RequestID []byte `json:"requestId"`
	ClientKey []byte `json:"clientKey"`
	ServerKey []byte `json:"serverKey"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// httpAttestationService is the HTTP implementation of
// [AttestationService].
type httpAttestationService struct {
	client *resty.Client
	cfg    AttestationConfig
	logger *logger.Logger
}

// NewHTTPAttestationService constructs an [AttestationService] over HTTP.
func NewHTTPAttestationService(cfg AttestationConfig, log *logger.Logger) AttestationService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAttestationService{client: cli, cfg: cfg, logger: log}
}

// PerformForKeyBackup implements [AttestationService].
func (a *httpAttestationService) PerformForKeyBackup(ctx context.Context, auth *models.AttestationAuth) (models.RemoteAttestation, error) {
	credential := a.cfg.Auth
	if auth != nil {
		credential = *auth
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetBasicAuth(credential.Username, credential.Password).
		Post(fmt.Sprintf("/v1/attestation/%s", a.cfg.EnclaveName))
	if err != nil {
		return models.RemoteAttestation{}, fmt.Errorf("attestation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteAttestation{}, err
	}

	var decoded attestationResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return models.RemoteAttestation{}, fmt.Errorf("%w: decode attestation response: %w", ErrMalformedResponse, err)
	}
	if len(decoded.RequestID) == 0 || len(decoded.ClientKey) != 32 || len(decoded.ServerKey) != 32 {
		return models.RemoteAttestation{}, fmt.Errorf("%w: attestation session material has wrong shape", ErrMalformedResponse)
	}

	// Fall back to the credential we authenticated with when the enclave
	// does not mint a dedicated one.
	username, password := decoded.Username, decoded.Password
	if username == "" {
		username, password = credential.Username, credential.Password
	}

	a.logger.Debug().Str("enclave", a.cfg.EnclaveName).Msg("performed key backup attestation")

	return models.RemoteAttestation{
		RequestID:   decoded.RequestID,
		EnclaveName: a.cfg.EnclaveName,
		Keys: models.AttestationKeys{
			ClientKey: decoded.ClientKey,
			ServerKey: decoded.ServerKey,
		},
		Auth:    models.AttestationAuth{Username: username, Password: password},
		Cookies: resp.Cookies(),
	}, nil
}
