package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	require.NoError(t, MapError(nil))

	err := MapError(fmt.Errorf("scan: %w", pgx.ErrNoRows))
	require.True(t, IsNotFound(err))
	require.False(t, IsDuplicateKey(err))
	require.ErrorIs(t, err, pgx.ErrNoRows)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	err = MapError(pgErr)
	require.True(t, IsDuplicateKey(err))
	var got *pgconn.PgError
	require.True(t, errors.As(err, &got))
	require.Equal(t, "users_username_key", got.ConstraintName)

	// already mapped errors are not wrapped twice
	require.Same(t, err, MapError(err))

	other := &pgconn.PgError{Code: "23503"}
	require.Same(t, error(other), MapError(other))

	plain := errors.New("boom")
	require.Equal(t, plain, MapError(plain))
	require.Contains(t, MapError(pgErr).Error(), "duplicate key")
}
