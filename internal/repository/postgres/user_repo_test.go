package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsd/internal/errs"
	"wsd/internal/models"
)

func newMockDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &DB{Pool: mock}, mock
}

func userFixture() *models.User {
	return &models.User{
		ID:        uuid.New(),
		Username:  "writer1",
		Role:      models.RoleWriter,
		PwdHash:   []byte{0x01, 0x02},
		SaltAuth:  []byte{0x03, 0x04},
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	u := userFixture()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Username, u.Role, u.PwdHash, u.SaltAuth).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CreateDuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	u := userFixture()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Username, u.Role, u.PwdHash, u.SaltAuth).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), u)
	assert.True(t, errors.Is(err, errs.ErrAlreadyExists))
}

func TestUserRepo_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	u := userFixture()

	rows := pgxmock.NewRows([]string{"id", "username", "role", "pwd_hash", "salt_auth", "created_at"}).
		AddRow(u.ID, u.Username, u.Role, u.PwdHash, u.SaltAuth, u.CreatedAt)
	mock.ExpectQuery("SELECT id, username, role, pwd_hash, salt_auth, created_at").
		WithArgs(u.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)
	assert.Equal(t, u.PwdHash, got.PwdHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	u := userFixture()

	rows := pgxmock.NewRows([]string{"id", "username", "role", "pwd_hash", "salt_auth", "created_at"}).
		AddRow(u.ID, u.Username, u.Role, u.PwdHash, u.SaltAuth, u.CreatedAt)
	mock.ExpectQuery("SELECT id, username, role, pwd_hash, salt_auth, created_at").
		WithArgs(u.Username).
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserRepo_GetByUsernameMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT id, username, role, pwd_hash, salt_auth, created_at").
		WithArgs("ghost").
		WillReturnError(errors.New("no rows in result set"))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
