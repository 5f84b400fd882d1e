package linera

import (
	"encoding/json"
	"testing"

	"github.com/keyper-labs/linera.dev/errors"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	type conf struct {
		Threshold int `json:"threshold"`
	}

	cases := map[string]struct {
		json    string
		want    conf
		wantErr *errors.Error
	}{
		"happy path": {
			json: `{"multisig": {"threshold": 2}}`,
			want: conf{Threshold: 2},
		},
		"missing key is a noop": {
			json: `{"cash": []}`,
			want: conf{Threshold: 9},
		},
		"wrong value": {
			json:    `{"multisig": {"threshold": "two"}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var o Options
			require.NoError(t, json.Unmarshal([]byte(tc.json), &o))
			got := conf{Threshold: 9}
			err := o.ReadOptions("multisig", &got)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

type initFunc func(Options, KVStore) error

func (f initFunc) FromGenesis(o Options, db KVStore) error { return f(o, db) }

func TestChainInitializers(t *testing.T) {
	var calls []string
	record := func(name string, err error) Initializer {
		return initFunc(func(Options, KVStore) error {
			calls = append(calls, name)
			return err
		})
	}

	chain := ChainInitializers{record("cash", nil), record("multisig", errors.ErrEmpty), record("never", nil)}
	err := chain.FromGenesis(Options{}, nil)
	require.True(t, errors.ErrEmpty.Is(err))
	require.Equal(t, []string{"cash", "multisig"}, calls)
}
