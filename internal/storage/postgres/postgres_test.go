package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-tasks/internal/storage"
)

func TestUserConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate name",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: usersNameConstraint},
			want: storage.ErrUserNameTaken,
		},
		{
			name: "duplicate email",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: usersEmailConstraint},
			want: storage.ErrUserEmailTaken,
		},
		{
			name: "wrapped duplicate email",
			err: fmt.Errorf("scan: %w",
				&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: usersEmailConstraint}),
			want: storage.ErrUserEmailTaken,
		},
		{
			name: "unique violation on another constraint",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "sessions_pkey"},
		},
		{
			name: "other postgres error",
			err:  &pgconn.PgError{Code: pgerrcode.NotNullViolation, ConstraintName: usersNameConstraint},
		},
		{
			name: "not a postgres error",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := userConflict(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestStorage_InTxReusesOpenTransaction(t *testing.T) {
	s := &Storage{inTx: true}

	var inner storage.Storage
	err := s.InTx(context.Background(), func(st storage.Storage) error {
		inner = st
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, s, inner)

	fnErr := errors.New("boom")
	err = s.InTx(context.Background(), func(storage.Storage) error {
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)
}
