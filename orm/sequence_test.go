package orm

import (
	"bytes"
	"testing"

	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := map[string]struct {
		bucket     string
		name       string
		init       uint64
		increments uint64
	}{
		"fresh sequence": {"props", "id", 0, 22},
		"other sequence": {"props", "nonce", 0, 11},
		"continue":       {"props", "id", 22, 18},
		"other bucket":   {"other", "id", 0, 77},
	}

	// Cases share the database, so run them in a fixed order.
	for _, name := range []string{"fresh sequence", "other sequence", "continue", "other bucket"} {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			orig, err := s.Current(db)
			require.NoError(t, err)
			assert.Equal(t, tc.init, orig)

			var val uint64
			for i := uint64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
				assert.Equal(t, tc.init+i, val)
			}
			last, err := s.Current(db)
			require.NoError(t, err)
			assert.Equal(t, tc.init+tc.increments, last)

			// Encoded values sort in the same order as the numbers.
			assert.Equal(t, 1, bytes.Compare(EncodeSequence(last), EncodeSequence(orig)))
		})
	}
}

func TestSequenceNextVal(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("props", "id")

	first, err := s.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, first)

	second, err := s.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, second)
}

func TestDecodeSequence(t *testing.T) {
	cases := map[string]struct {
		raw     []byte
		want    uint64
		wantErr *errors.Error
	}{
		"missing":   {raw: nil, want: 0},
		"one":       {raw: []byte{0, 0, 0, 0, 0, 0, 0, 1}, want: 1},
		"big":       {raw: []byte{1, 0, 0, 0, 0, 0, 0, 0}, want: 1 << 56},
		"too short": {raw: []byte{1}, wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := DecodeSequence(tc.raw)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
