package errorutil_test

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriparts/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	wrapped := errorutil.NewWrapperError(errSentinel, io.EOF)

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"error", []any{io.EOF}, "sentinel: EOF", []error{errSentinel, io.EOF}},
		{"already wrapped", []any{wrapped}, "sentinel: EOF", []error{errSentinel, io.EOF}},
		{"message", []any{"bad thing"}, "sentinel: bad thing", []error{errSentinel}},
		{"format", []any{"bad %s #%d", "thing", 2}, "sentinel: bad thing #2", []error{errSentinel}},
		{"unknown arg", []any{42}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := errorutil.NewWrapperError(errSentinel, c.args...)
			if got.Error() != c.wantMsg {
				t.Errorf("errorutil.NewWrapperError(%v).Error() = %q, want %q", c.args, got.Error(), c.wantMsg)
			}
			for _, want := range c.wantIs {
				if !errors.Is(got, want) {
					t.Errorf("errors.Is(%v, %v) = false, want true", got, want)
				}
			}
		})
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	e1 := errors.New("first")
	e2 := errors.New("second\nline")

	cases := []struct {
		name    string
		errs    []error
		wantMsg string
		wantErr error
	}{
		{"none", nil, "", nil},
		{"only nils", []error{nil, nil}, "", nil},
		{"single", []error{nil, e1}, "failed: first", e1},
		{"multiple", []error{e1, nil, e2}, "failed:\n  - first\n  - second\n    line", e2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := errorutil.JoinPrefix("failed:", c.errs...)
			if c.wantErr == nil {
				if got != nil {
					t.Fatalf("errorutil.JoinPrefix() = %v, want nil", got)
				}
				return
			}
			if got.Error() != c.wantMsg {
				t.Errorf("errorutil.JoinPrefix().Error() = %q, want %q", got.Error(), c.wantMsg)
			}
			if diff := cmp.Diff(got, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("errorutil.JoinPrefix() = %v, want %v\ndiff (-got +want):\n%v", got, c.wantErr, diff)
			}
		})
	}
}
