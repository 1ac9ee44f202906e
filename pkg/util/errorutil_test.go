package util

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestKindStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		kind   Kind
		status int
	}{
		{NewBadRequest("bad"), KindBadRequest, 400},
		{NewUnauthenticated("nope"), KindUnauthenticated, 401},
		{NewNotFound("card"), KindNotFound, 404},
		{NewConflict("dup"), KindConflict, 409},
		{NewInternalError(errors.New("boom")), KindInternal, 500},
	}

	for _, tc := range cases {
		var domainErr *DomainError
		require.ErrorAs(t, tc.err, &domainErr)
		require.Equal(t, tc.kind, domainErr.Kind)
		require.Equal(t, tc.status, domainErr.HTTPStatus())
	}
}

func TestInternalMessageNeverLeaksCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: connection refused to 10.0.0.5")
	domainErr := ToDomainError(NewInternalError(cause))

	require.Equal(t, InternalMessage, domainErr.ClientMessage())
	require.NotContains(t, domainErr.ClientMessage(), "10.0.0.5")
	// The cause stays reachable for logging.
	require.ErrorIs(t, domainErr, cause)
}

func TestTranslateStorageError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   error
		kind Kind
	}{
		{"no rows", pgx.ErrNoRows, KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindConflict},
		{"invalid text value", &pgconn.PgError{Code: "22P02"}, KindBadRequest},
		{"check violation", &pgconn.PgError{Code: "23514"}, KindBadRequest},
		{"fk violation", &pgconn.PgError{Code: "23503"}, KindNotFound},
		{"unknown pg code", &pgconn.PgError{Code: "57014"}, KindInternal},
		{"arbitrary error", errors.New("socket closed"), KindInternal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateStorageError("card", tc.in)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			require.Equal(t, tc.kind, domainErr.Kind)
		})
	}
}

func TestTranslateStorageError_PassThrough(t *testing.T) {
	t.Parallel()

	original := NewConflict("user already exists")
	translated := TranslateStorageError("user", original)

	// Already-classified failures propagate unchanged, never re-wrapped.
	require.Same(t, original, translated)
}

func TestTranslateStorageError_Nil(t *testing.T) {
	t.Parallel()
	require.NoError(t, TranslateStorageError("card", nil))
}

func TestTranslateStorageError_RetainsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("driver melted")
	err := TranslateStorageError("card", cause)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, KindInternal, domainErr.Kind)
	require.ErrorIs(t, err, cause)
}
