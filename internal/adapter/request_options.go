// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-key-backup/models"
)

// BackupOption runs a backup request through the pipeline. Build receives
// the current one-shot token; the typed response lands in Response.
type BackupOption struct {
	Build    func(token models.Token) models.BackupRequest
	Response models.BackupResponse
}

func (o *BackupOption) Tag() models.KBSRequestTag { return models.TagBackup }

func (o *BackupOption) Attach(env *models.KBSRequest, token models.Token) {
	req := o.Build(token)
	env.Backup = &req
}

func (o *BackupOption) Extract(env *models.KBSResponse) error {
	if env.Backup == nil {
		return fmt.Errorf("%w: missing inner backup response", ErrMalformedResponse)
	}
	o.Response = *env.Backup
	return nil
}

// RestoreOption runs a restore request through the pipeline.
type RestoreOption struct {
	Build    func(token models.Token) models.RestoreRequest
	Response models.RestoreResponse
}

func (o *RestoreOption) Tag() models.KBSRequestTag { return models.TagRestore }

func (o *RestoreOption) Attach(env *models.KBSRequest, token models.Token) {
	req := o.Build(token)
	env.Restore = &req
}

func (o *RestoreOption) Extract(env *models.KBSResponse) error {
	if env.Restore == nil {
		return fmt.Errorf("%w: missing inner restore response", ErrMalformedResponse)
	}
	o.Response = *env.Restore
	return nil
}

// DeleteOption runs a delete request through the pipeline.
type DeleteOption struct {
	Build    func(token models.Token) models.DeleteRequest
	Response models.DeleteResponse
}

func (o *DeleteOption) Tag() models.KBSRequestTag { return models.TagDelete }

func (o *DeleteOption) Attach(env *models.KBSRequest, token models.Token) {
	req := o.Build(token)
	env.Delete = &req
}

func (o *DeleteOption) Extract(env *models.KBSResponse) error {
	if env.Delete == nil {
		return fmt.Errorf("%w: missing inner delete response", ErrMalformedResponse)
	}
	o.Response = *env.Delete
	return nil
}
