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

	"github.com/MKhiriev/go-key-backup/internal/crypto"
	"github.com/MKhiriev/go-key-backup/internal/logger"
	"github.com/MKhiriev/go-key-backup/internal/store"
	"github.com/MKhiriev/go-key-backup/models"
)

// HTTPClientConfig configures the enclave HTTP pipeline.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// enclaveHTTPClient is the resty-backed implementation of [EnclaveClient].
type enclaveHTTPClient struct {
	client   *resty.Client
	attestor AttestationService
	tokens   store.TokenStore
	logger   *logger.Logger
}

// NewEnclaveHTTPClient constructs an [EnclaveClient] over HTTP.
func NewEnclaveHTTPClient(cfg HTTPClientConfig, attestor AttestationService, tokens store.TokenStore, log *logger.Logger) EnclaveClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &enclaveHTTPClient{client: cli, attestor: attestor, tokens: tokens, logger: log}
}

// Request implements [EnclaveClient].
func (c *enclaveHTTPClient) Request(ctx context.Context, auth *models.AttestationAuth, opt RequestOption) error {
	attestation, err := c.attestor.PerformForKeyBackup(ctx, auth)
	if err != nil {
		return fmt.Errorf("attestation: %w", err)
	}

	token, err := c.ensureToken(ctx, attestation)
	if err != nil {
		return err
	}

	var env models.KBSRequest
	opt.Attach(&env, token)

	plaintext, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode inner request: %w", err)
	}

	// The request id doubles as GCM additional data, binding the
	// ciphertext to this attestation session.
	iv, ciphertext, mac, err := crypto.AESGCMSeal(attestation.Keys.ClientKey, plaintext, attestation.RequestID)
	if err != nil {
		return fmt.Errorf("encrypt inner request: %w", err)
	}

	body := models.EnclaveRequest{
		RequestID: attestation.RequestID,
		IV:        iv,
		Data:      ciphertext,
		MAC:       mac,
	}

	c.logger.Debug().
		Str("operation", string(opt.Tag())).
		Str("enclave", attestation.EnclaveName).
		Uint32("tokenTries", token.Tries).
		Msg("sending enclave request")

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBasicAuth(attestation.Auth.Username, attestation.Auth.Password).
		SetCookies(attestation.Cookies).
		SetBody(body).
		Post(fmt.Sprintf("/v1/backup/%s/%s", attestation.EnclaveName, opt.Tag()))
	if err != nil {
		return fmt.Errorf("enclave %s request: %w", opt.Tag(), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	inner, err := c.decryptResponse(attestation, resp.Body())
	if err != nil {
		return err
	}

	return opt.Extract(inner)
}

// FetchBackupID implements [EnclaveClient].
func (c *enclaveHTTPClient) FetchBackupID(ctx context.Context, auth *models.AttestationAuth) ([]byte, error) {
	token, err := c.tokens.Current(ctx)
	if err != nil {
		return nil, err
	}
	if token != nil {
		return token.BackupID, nil
	}

	attestation, err := c.attestor.PerformForKeyBackup(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("attestation: %w", err)
	}

	fetched, err := c.fetchToken(ctx, attestation)
	if err != nil {
		return nil, err
	}

	return fetched.BackupID, nil
}

// ensureToken returns the stored one-shot token, bootstrapping it from the
// enclave's token endpoint when the store is empty.
func (c *enclaveHTTPClient) ensureToken(ctx context.Context, attestation models.RemoteAttestation) (models.Token, error) {
	token, err := c.tokens.Current(ctx)
	if err != nil {
		return models.Token{}, err
	}
	if token != nil {
		return *token, nil
	}

	return c.fetchToken(ctx, attestation)
}

func (c *enclaveHTTPClient) fetchToken(ctx context.Context, attestation models.RemoteAttestation) (models.Token, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBasicAuth(attestation.Auth.Username, attestation.Auth.Password).
		SetCookies(attestation.Cookies).
		Get(fmt.Sprintf("/v1/token/%s", attestation.EnclaveName))
	if err != nil {
		return models.Token{}, fmt.Errorf("token fetch: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var tokenResp models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return models.Token{}, fmt.Errorf("%w: decode token response: %w", ErrMalformedResponse, err)
	}

	token, err := c.tokens.UpdateNextFromBootstrap(ctx, tokenResp)
	if err != nil {
		return models.Token{}, err
	}

	c.logger.Debug().Uint32("tries", token.Tries).Msg("bootstrapped enclave token")

	return token, nil
}

// decryptResponse parses the outer response, decrypts it under the
// attestation server key, and decodes the inner envelope.
func (c *enclaveHTTPClient) decryptResponse(attestation models.RemoteAttestation, body []byte) (*models.KBSResponse, error) {
	var outer models.EnclaveResponse
	if err := json.Unmarshal(body, &outer); err != nil {
		return nil, fmt.Errorf("%w: decode outer response: %w", ErrMalformedResponse, err)
	}

	plaintext, err := crypto.AESGCMOpen(attestation.Keys.ServerKey, outer.IV, outer.Data, outer.MAC, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	var inner models.KBSResponse
	if err = json.Unmarshal(plaintext, &inner); err != nil {
		return nil, fmt.Errorf("%w: decode inner response: %w", ErrMalformedResponse, err)
	}

	return &inner, nil
}
