package linera

import (
	"encoding/json"
	"math"
	"time"

	"github.com/keyper-labs/linera.dev/errors"
)

// Timestamp represents a point in time as the number of microseconds elapsed
// since the UNIX epoch. Microsecond precision is what the host clock
// provides, so no information is lost when converting.
//
// When used in a protobuf declaration, use gogoproto's typecasting
//
//   int64 expires_at = 1 [(gogoproto.casttype) = "github.com/keyper-labs/linera.dev.Timestamp"];
//
type Timestamp int64

const microsPerSecond = int64(time.Second / time.Microsecond)

// AsTimestamp converts given Time structure into its Timestamp representation.
func AsTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UnixNano() / int64(time.Microsecond))
}

// Time returns a time.Time structure that represents the same moment in time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t)/microsPerSecond, (int64(t)%microsPerSecond)*int64(time.Microsecond)).UTC()
}

// IsZero returns true if this time represents a zero value.
func (t Timestamp) IsZero() bool {
	return t == 0
}

// Add modifies this timestamp by given duration. This is compatible with
// time.Time.Add method.
func (t Timestamp) Add(d time.Duration) Timestamp {
	return t + Timestamp(d/time.Microsecond)
}

// AddSeconds returns the timestamp moved forward by given amount of seconds.
// An error is returned if the result cannot be represented.
func (t Timestamp) AddSeconds(seconds uint64) (Timestamp, error) {
	if seconds > uint64(math.MaxInt64/microsPerSecond) {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d seconds", seconds)
	}
	delta := int64(seconds) * microsPerSecond
	if int64(t) > math.MaxInt64-delta {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d seconds after %d", seconds, t)
	}
	return t + Timestamp(delta), nil
}

// SecondsUntil returns the number of whole seconds that must pass before
// given time is reached, rounding up so that a non zero wait is never
// reported as zero. Zero is returned if given time is not in the future.
func (t Timestamp) SecondsUntil(future Timestamp) uint64 {
	if future <= t {
		return 0
	}
	diff := int64(future - t)
	secs := diff / microsPerSecond
	if diff%microsPerSecond != 0 {
		secs++
	}
	return uint64(secs)
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a number.
// Usually a number is used as a representation of this time in JSON but it is
// convenient to use a string format in configurations (ie genesis file).
func (t *Timestamp) UnmarshalJSON(raw []byte) error {
	var micros int64
	if err := json.Unmarshal(raw, &micros); err == nil {
		if micros < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = Timestamp(micros)
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		ts := AsTimestamp(stdtime)
		if ts < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = ts
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// Validate returns an error if this time value is invalid.
func (t Timestamp) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

// String returns the usual string representation of this time as the
// time.Time structure would.
func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339Nano)
}
