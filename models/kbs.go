// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Wire messages exchanged with the key backup enclave. The outer layer is
// what travels over HTTP; the inner layer is serialized to JSON and
// encrypted under the attestation session keys before it is placed into the
// outer request. []byte fields marshal as base64 strings, matching the
// service's encoding.

// KBSRequestTag names one of the three enclave operations. The tag appears
// in the HTTP request path and selects which inner request the envelope
// carries.
type KBSRequestTag string

const (
	TagBackup  KBSRequestTag = "backup"
	TagRestore KBSRequestTag = "restore"
	TagDelete  KBSRequestTag = "delete"
)

// EnclaveRequest is the outer encrypted request body.
type EnclaveRequest struct {
	RequestID []byte `json:"requestId"`
	IV        []byte `json:"iv"`
	Data      []byte `json:"data"`
	MAC       []byte `json:"mac"`
}

// EnclaveResponse is the outer encrypted response body. IV must decode to
// 12 bytes and MAC to 16; anything else is treated as a malformed response.
type EnclaveResponse struct {
	IV   []byte `json:"iv"`
	Data []byte `json:"data"`
	MAC  []byte `json:"mac"`
}

// TokenResponse is the plaintext body of the token bootstrap endpoint. It
// seeds the token store on first contact with the enclave.
type TokenResponse struct {
	BackupID []byte `json:"backupId"`
	Token    []byte `json:"token"`
	Tries    uint32 `json:"tries"`
}

// KBSRequest is the inner request envelope. Exactly one of the operation
// fields is set.
type KBSRequest struct {
	Backup  *BackupRequest  `json:"backup,omitempty"`
	Restore *RestoreRequest `json:"restore,omitempty"`
	Delete  *DeleteRequest  `json:"delete,omitempty"`
}

// BackupRequest stores (or overwrites) the caller's envelope-encrypted
// master key under the record named by BackupID.
type BackupRequest struct {
	ServiceID []byte `json:"serviceId"`
	BackupID  []byte `json:"backupId"`
	Token     []byte `json:"token"`

	// ValidFrom is seconds since the Unix epoch, set one day in the past so
	// modest clock skew between client and enclave does not reject the
	// request.
	ValidFrom int64 `json:"validFrom"`

	// Data is the 48-byte master-key envelope.
	Data []byte `json:"data"`

	// Pin is the PIN-derived access key, the only PIN material the server
	// ever sees.
	Pin []byte `json:"pin"`

	// Tries re-arms the remaining-attempts counter.
	Tries uint32 `json:"tries"`
}

// RestoreRequest asks the enclave to release the stored envelope if Pin
// matches. Every restore attempt, successful or not, costs one try.
type RestoreRequest struct {
	ServiceID []byte `json:"serviceId"`
	BackupID  []byte `json:"backupId"`
	Token     []byte `json:"token"`
	ValidFrom int64  `json:"validFrom"`
	Pin       []byte `json:"pin"`
}

// DeleteRequest destroys the backup record.
type DeleteRequest struct {
	ServiceID []byte `json:"serviceId"`
	BackupID  []byte `json:"backupId"`
}

// KBSResponse is the inner response envelope. Exactly one of the operation
// fields is set, mirroring the request.
type KBSResponse struct {
	Backup  *BackupResponse  `json:"backup,omitempty"`
	Restore *RestoreResponse `json:"restore,omitempty"`
	Delete  *DeleteResponse  `json:"delete,omitempty"`
}

// BackupStatus is the status field of a backup response.
type BackupStatus string

const (
	BackupStatusOK            BackupStatus = "ok"
	BackupStatusAlreadyExists BackupStatus = "alreadyExists"
	BackupStatusNotYetValid   BackupStatus = "notYetValid"
)

// BackupResponse carries the next token alongside the operation status.
type BackupResponse struct {
	Status BackupStatus `json:"status"`
	Token  []byte       `json:"token"`
}

// RestoreStatus is the status field of a restore response.
type RestoreStatus string

const (
	RestoreStatusOK            RestoreStatus = "ok"
	RestoreStatusTokenMismatch RestoreStatus = "tokenMismatch"
	RestoreStatusPinMismatch   RestoreStatus = "pinMismatch"
	RestoreStatusMissing       RestoreStatus = "missing"
	RestoreStatusNotYetValid   RestoreStatus = "notYetValid"
)

// RestoreResponse carries the released envelope on success, the remaining
// tries on a PIN mismatch, and nothing at all when the record is missing.
type RestoreResponse struct {
	Status RestoreStatus `json:"status"`
	Token  []byte        `json:"token"`
	Tries  uint32        `json:"tries"`
	Data   []byte        `json:"data"`
}

// DeleteResponse acknowledges a delete. The operation is idempotent and has
// no failure statuses of its own.
type DeleteResponse struct {
	Status string `json:"status"`
}
