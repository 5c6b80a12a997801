package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-backup/internal/logger"
)

func newMockRepo(t *testing.T) (KeyValueRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewKeyValueRepository(db, logger.Nop()), mock
}

func TestKeyValueRepository_Get(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT value`).
		WithArgs(CollectionKeys, "masterKey").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte{0x01, 0x02}))

	got, err := repo.Get(context.Background(), CollectionKeys, "masterKey")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT value`).
		WithArgs(CollectionKeys, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), CollectionKeys, "missing")
	assert.ErrorIs(t, err, ErrValueNotFound)
}

func TestKeyValueRepository_GetAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT name, value`).
		WithArgs(CollectionToken).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow("backupIdKey", []byte{0xAA}).
			AddRow("triesKey", []byte("10")))

	got, err := repo.GetAll(context.Background(), CollectionToken)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []byte("10"), got["triesKey"])
}

func TestKeyValueRepository_Apply_SingleTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO key_value`).
		WithArgs(CollectionKeys, "a", []byte{0x01}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO key_value`).
		WithArgs(CollectionKeys, "b", []byte{0x02}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM key_value`).
		WithArgs(CollectionKeys, "c").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Apply(context.Background(),
		CollectionKeys,
		map[string][]byte{"a": {0x01}, "b": {0x02}},
		[]string{"c"},
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Apply_RollsBackOnFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO key_value`).
		WithArgs(CollectionKeys, "a", []byte{0x01}).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Apply(context.Background(), CollectionKeys, map[string][]byte{"a": {0x01}}, nil)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Apply_EmptyIsNoop(t *testing.T) {
	repo, mock := newMockRepo(t)

	require.NoError(t, repo.Apply(context.Background(), CollectionKeys, nil, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
