package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-token-api/internal/domain/entity"
	"github.com/oksasatya/go-user-token-api/internal/domain/repository"
)

func newRepoWithMock(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users \(email, password_hash, name\)`).
		WithArgs("test@test.com", "hash", "Test name").
		WillReturnRows(pgxmock.NewRows([]string{"id", "is_active", "created_at", "updated_at"}).
			AddRow("u-1", true, now, now))

	u := &entity.User{Email: "test@test.com", Password: "hash", Name: "Test name"}
	require.NoError(t, repo.Create(context.Background(), u))

	assert.Equal(t, "u-1", u.ID)
	assert.True(t, u.IsActive)
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("test@test.com", "hash", "").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &entity.User{Email: "test@test.com", Password: "hash"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@b.c", "hash", "").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &entity.User{Email: "a@b.c", Password: "hash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert user: db down")
	assert.NotErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, password_hash, name, is_active, created_at, updated_at\s+FROM users\s+WHERE email = \$1`).
		WithArgs("test@test.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "is_active", "created_at", "updated_at"}).
			AddRow("u-1", "test@test.com", "hash", "Test", true, now, now))

	u, err := repo.GetByEmail(context.Background(), "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "hash", u.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users\s+WHERE email = \$1`).
		WithArgs("nobody@test.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@test.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExistsByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("test@test.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsByEmail(context.Background(), "test@test.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
