package linera

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/keyper-labs/linera.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampConversion(t *testing.T) {
	now := time.Date(2021, 6, 1, 8, 30, 0, 123456789, time.UTC)
	ts := AsTimestamp(now)
	assert.Equal(t, now.Truncate(time.Microsecond), ts.Time())
	assert.Equal(t, ts+Timestamp(90*time.Second/time.Microsecond), ts.Add(90*time.Second))
	assert.False(t, ts.IsZero())
	assert.NoError(t, ts.Validate())
	assert.Error(t, Timestamp(-1).Validate())
}

func TestTimestampAddSeconds(t *testing.T) {
	ts, err := Timestamp(1000).AddSeconds(604800)
	require.NoError(t, err)
	assert.Equal(t, Timestamp(1000+604800*1000000), ts)

	_, err = Timestamp(0).AddSeconds(math.MaxUint64)
	assert.True(t, errors.ErrOverflow.Is(err))
	_, err = Timestamp(math.MaxInt64 - 10).AddSeconds(1)
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestTimestampSecondsUntil(t *testing.T) {
	cases := map[string]struct {
		now, future Timestamp
		want        uint64
	}{
		"past":          {now: 100, future: 50, want: 0},
		"now":           {now: 100, future: 100, want: 0},
		"exact seconds": {now: 0, future: 3000000, want: 3},
		"rounded up":    {now: 0, future: 3000001, want: 4},
		"below second":  {now: 10, future: 11, want: 1},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.now.SecondsUntil(tc.future))
		})
	}
}

func TestTimestampUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Timestamp
		wantErr *errors.Error
	}{
		"number": {
			raw:  `1500000`,
			want: 1500000,
		},
		"time string": {
			raw:  `"1970-01-01T00:00:02Z"`,
			want: 2000000,
		},
		"negative number": {
			raw:     `-4`,
			wantErr: errors.ErrInput,
		},
		"before epoch": {
			raw:     `"1960-01-01T00:00:00Z"`,
			wantErr: errors.ErrInput,
		},
		"garbage": {
			raw:     `"yesterday"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got Timestamp
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
