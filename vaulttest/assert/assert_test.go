package assert

import (
	"fmt"
	"testing"

	"github.com/keyper-labs/linera.dev/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"same error": {
			want: errors.ErrEmpty,
			got:  errors.ErrEmpty,
		},
		"wrapped error": {
			want: errors.ErrEmpty,
			got:  errors.Wrap(errors.ErrEmpty, "owners"),
		},
		"different error": {
			want:     errors.ErrEmpty,
			got:      errors.ErrNotFound,
			wantFail: true,
		},
		"not registered error": {
			want:     errors.ErrEmpty,
			got:      fmt.Errorf("empty"),
			wantFail: true,
		},
		"nil error": {
			want:     errors.ErrEmpty,
			got:      nil,
			wantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var rec recorder
			func() {
				// Fatal calls runtime.Goexit in a real test.
				defer func() { _ = recover() }()
				IsErr(&rec, tc.want, tc.got)
			}()
			if rec.failed != tc.wantFail {
				t.Fatalf("want failure %v, got %v", tc.wantFail, rec.failed)
			}
		})
	}
}

func TestNil(t *testing.T) {
	var nilPtr *int
	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"nil":            {value: nil},
		"nil pointer":    {value: nilPtr},
		"nil error":      {value: error(nil)},
		"zero int":       {value: 0, wantFail: true},
		"not nil error":  {value: errors.ErrEmpty, wantFail: true},
		"not nil string": {value: "", wantFail: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var rec recorder
			func() {
				defer func() { _ = recover() }()
				Nil(&rec, tc.value)
			}()
			if rec.failed != tc.wantFail {
				t.Fatalf("want failure %v, got %v", tc.wantFail, rec.failed)
			}
		})
	}
}

// recorder is a Tester that panics instead of terminating the goroutine.
type recorder struct {
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Fatal(args ...interface{}) {
	r.failed = true
	panic("fatal")
}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.failed = true
	panic("fatal")
}
