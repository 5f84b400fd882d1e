package multisig

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

func TestGenesis(t *testing.T) {
	a := vaulttest.NewCondition().Address()
	b := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		genesis  string
		wantErr  *errors.Error
		wantReg  *Registry
		wantConf *Configuration
	}{
		"registry with defaults": {
			genesis: fmt.Sprintf(`{"multisig": {"owners": ["%s", "%s"], "threshold": 2}}`, a, b),
			wantReg: &Registry{Owners: []linera.Address{a, b}, Threshold: 2},
			wantConf: &Configuration{
				ProposalLifetime: DefaultProposalLifetime,
				TimeDelay:        DefaultTimeDelay,
			},
		},
		"registry and configuration": {
			genesis: fmt.Sprintf(`{
				"multisig": {"owners": ["%s"], "threshold": 1},
				"conf": {"multisig": {"proposal_lifetime": 3600, "time_delay": 60}}
			}`, a),
			wantReg:  &Registry{Owners: []linera.Address{a}, Threshold: 1},
			wantConf: &Configuration{ProposalLifetime: 3600, TimeDelay: 60},
		},
		"missing registry": {
			genesis: `{}`,
			wantErr: errors.ErrEmpty,
		},
		"threshold too high": {
			genesis: fmt.Sprintf(`{"multisig": {"owners": ["%s"], "threshold": 2}}`, a),
			wantErr: errors.ErrInput,
		},
		"invalid aggregate key": {
			genesis: fmt.Sprintf(`{
				"multisig": {"owners": ["%s"], "threshold": 1},
				"conf": {"multisig": {"aggregate_key": "AAEC"}}
			}`, a),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts linera.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			reg, err := NewRegistryBucket().Load(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantReg, reg)

			conf, err := LoadConfig(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantConf, conf)
		})
	}
}
