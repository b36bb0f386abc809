package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparts/internal/constraints"
	"github.com/ghettovoice/uriparts/internal/errorutil"
	"github.com/ghettovoice/uriparts/internal/util"
)

// ErrInvalidURI is returned when the input can not be split into URI components.
const ErrInvalidURI errorutil.Error = "invalid URI"

// URI is a parsed URI reference.
//
// All components are computed by [Parse] and never change afterwards,
// so a URI is safe for concurrent use.
type URI struct {
	raw       string
	scheme    Value
	authority Value
	path      string
	query     Value
	fragment  Value
	auth      Authority
	segments  []string
	params    Params
}

// Parse parses a URI from the given input src (string or []byte).
//
// Parsing is permissive: malformed input is split by the first occurrence rules
// rather than rejected. Empty input yields a URI with an empty path.
// The only possible error is [ErrInvalidURI].
func Parse[T constraints.Byteseq](src T) (*URI, error) {
	return errtrace.Wrap2(parse(string(src), uriPattern.FindStringSubmatchIndex))
}

// MustParse is like [Parse] but panics on error.
func MustParse[T constraints.Byteseq](src T) *URI {
	return util.Must2(Parse(src))
}

func parse(s string, match matchFunc) (*URI, error) {
	c, ok := split(s, match)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, "no components found in %q", s))
	}

	u := &URI{
		raw:       s,
		scheme:    c.scheme,
		authority: c.authority,
		path:      c.path,
		query:     c.query,
		fragment:  c.fragment,
		segments:  splitPath(c.path),
	}
	if a, ok := c.authority.Get(); ok {
		u.auth = ParseAuthority(a)
	}
	if q, ok := c.query.Get(); ok {
		u.params = ParseQuery(q)
	}
	return u, nil
}

// String returns the original input.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.raw
}

// Scheme returns the scheme without the trailing ':'.
func (u *URI) Scheme() (string, bool) { return u.scheme.Get() }

// Authority returns the raw authority without the leading "//".
func (u *URI) Authority() (string, bool) { return u.authority.Get() }

// Path returns the raw path. The path is always present but may be empty.
func (u *URI) Path() string { return u.path }

// Query returns the raw query without the leading '?'.
func (u *URI) Query() (string, bool) { return u.query.Get() }

// Fragment returns the raw fragment without the leading '#'.
func (u *URI) Fragment() (string, bool) { return u.fragment.Get() }

// User returns the userinfo part before the first ':'.
func (u *URI) User() (string, bool) { return u.auth.User.Get() }

// Password returns the userinfo part after the first ':'.
func (u *URI) Password() (string, bool) { return u.auth.Password.Get() }

// Host returns the host-port part before the first ':'.
func (u *URI) Host() (string, bool) { return u.auth.Host.Get() }

// Port returns the host-port part after the first ':'.
func (u *URI) Port() (string, bool) { return u.auth.Port.Get() }

// AuthorityParts returns the decomposed authority.
func (u *URI) AuthorityParts() Authority { return u.auth }

// Segments returns a copy of the path segments.
func (u *URI) Segments() []string { return slices.Clone(u.segments) }

// Params returns the query parameters.
func (u *URI) Params() Params { return u.params }

// Equal compares this URI with another for equality.
// URIs are equal when their original inputs are equal.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.raw == other.raw
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Format implements [fmt.Formatter] for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if u == nil || !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.AnyValue(nil)
	}

	attrs := make([]slog.Attr, 0, 12)
	attrs = append(attrs, slog.String("raw", u.raw))
	add := func(k string, v Value) {
		if s, ok := v.Get(); ok {
			attrs = append(attrs, slog.String(k, s))
		}
	}
	add("scheme", u.scheme)
	add("user", u.auth.User)
	add("host", u.auth.Host)
	add("port", u.auth.Port)
	attrs = append(attrs, slog.String("path", u.path))
	if !u.params.IsEmpty() {
		attrs = append(attrs, slog.Any("params", u.params))
	}
	add("fragment", u.fragment)
	return slog.GroupValue(attrs...)
}
