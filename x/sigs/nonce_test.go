package sigs

import (
	"testing"

	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/stretchr/testify/require"
)

func TestNonce(t *testing.T) {
	db := store.MemStore()

	n, err := CurrentNonce(db)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	require.NoError(t, CheckNonce(db, 0))

	err = CheckNonce(db, 3)
	require.True(t, ErrInvalidNonce.Is(err), "%+v", err)
	nerr, ok := errors.Find(err, func(e error) bool {
		_, ok := e.(*NonceError)
		return ok
	}).(*NonceError)
	require.True(t, ok)
	require.EqualValues(t, 0, nerr.Expected)
	require.EqualValues(t, 3, nerr.Got)

	n, err = IncrementNonce(db)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, CheckNonce(db, 1))
	require.True(t, ErrInvalidNonce.Is(CheckNonce(db, 0)))
}
