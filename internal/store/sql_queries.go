// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getKeyValue = `SELECT value
		FROM key_value
		WHERE collection = ? AND name = ?;`

	getAllKeyValues = `SELECT name, value
		FROM key_value
		WHERE collection = ?;`

	upsertKeyValue = `INSERT INTO key_value (collection, name, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (collection, name)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteKeyValue = `DELETE FROM key_value
		WHERE collection = ? AND name = ?;`
)
