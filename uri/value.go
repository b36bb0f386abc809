package uri

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparts/internal/util"
)

// Value is an optional string.
// The zero Value is absent, which is distinct from a present empty string.
type Value struct {
	s  string
	ok bool
}

// NoValue is the absent [Value].
var NoValue Value

// NewValue returns a present [Value] holding s.
func NewValue(s string) Value { return Value{s: s, ok: true} }

// nonEmpty maps the empty string to [NoValue].
func nonEmpty(s string) Value {
	if s == "" {
		return NoValue
	}
	return NewValue(s)
}

// Get returns the string and a flag reporting whether the value is present.
func (v Value) Get() (string, bool) { return v.s, v.ok }

// IsSet reports whether the value is present.
func (v Value) IsSet() bool { return v.ok }

// String returns the held string or an empty string if the value is absent.
func (v Value) String() string { return v.s }

// Equal compares this value with another for equality.
// Two absent values are equal, an absent value never equals a present one.
func (v Value) Equal(val any) bool {
	var other Value
	switch o := val.(type) {
	case Value:
		other = o
	case *Value:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return v.ok == other.ok && v.s == other.s
}

// MarshalJSON implements [encoding/json.Marshaler]. Absent values are encoded as null.
// HTML characters are not escaped.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(util.MarshalJSON(v.s))
}

// LogValue implements [slog.LogValuer].
func (v Value) LogValue() slog.Value {
	if !v.ok {
		return slog.AnyValue(nil)
	}
	return slog.StringValue(v.s)
}
