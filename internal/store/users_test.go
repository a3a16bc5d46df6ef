package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/safar/ecommerce-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice@example.com", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password"}).
			AddRow(1, "alice@example.com", "$2a$10$hash"))

	user, err := CreateUser(context.Background(), db, "alice@example.com", "$2a$10$hash")
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = CreateUser(context.Background(), db, "alice@example.com", "$2a$10$hash")
	assert.ErrorIs(t, err, database.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err = GetUser(context.Background(), db, 7)
	assert.ErrorIs(t, err, database.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = GetUserByEmail(context.Background(), db, "nobody@example.com")
	assert.ErrorIs(t, err, database.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
