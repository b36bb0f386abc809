// Package report renders parsed URIs for the uriparts command.
package report

//go:generate go tool errtrace -w .

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/uriparts/internal/errorutil"
	"github.com/ghettovoice/uriparts/internal/util"
	"github.com/ghettovoice/uriparts/uri"
)

// HostKind classifies the host component.
type HostKind string

const (
	HostIPv4   HostKind = "ipv4"
	HostIPv6   HostKind = "ipv6"
	HostFQDN   HostKind = "fqdn"
	HostDomain HostKind = "domain"
	HostOther  HostKind = "other"
)

// ClassifyHost reports whether host is an IP literal, a fully qualified domain name,
// a relative domain name or something else.
func ClassifyHost(host string) HostKind {
	if addr, err := netip.ParseAddr(strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")); err == nil {
		if addr.Is4() {
			return HostIPv4
		}
		return HostIPv6
	}
	if _, ok := dns.IsDomainName(host); ok {
		if dns.IsFqdn(host) {
			return HostFQDN
		}
		return HostDomain
	}
	return HostOther
}

// Options controls what goes into a [Report].
type Options struct {
	HostKind bool
}

// Report is a flat view of a parsed URI. Absent components are omitted from JSON.
type Report struct {
	Raw       string    `json:"raw"`
	Scheme    uri.Value `json:"scheme,omitzero"`
	Authority uri.Value `json:"authority,omitzero"`
	User      uri.Value `json:"user,omitzero"`
	Password  uri.Value `json:"password,omitzero"`
	Host      uri.Value `json:"host,omitzero"`
	HostKind  HostKind  `json:"host_kind,omitempty"`
	Port      uri.Value `json:"port,omitzero"`
	Path      string    `json:"path"`
	Segments  []string  `json:"segments,omitempty"`
	Query     uri.Value `json:"query,omitzero"`
	Params    Params    `json:"params,omitzero"`
	Fragment  uri.Value `json:"fragment,omitzero"`
}

// New builds a report of u.
func New(u *uri.URI, opts Options) Report {
	a := u.AuthorityParts()
	r := Report{
		Raw:       u.String(),
		Scheme:    value(u.Scheme()),
		Authority: value(u.Authority()),
		User:      a.User,
		Password:  a.Password,
		Host:      a.Host,
		Port:      a.Port,
		Path:      u.Path(),
		Segments:  u.Segments(),
		Query:     value(u.Query()),
		Params:    Params{u.Params()},
		Fragment:  value(u.Fragment()),
	}
	if h, ok := a.Host.Get(); ok && opts.HostKind {
		r.HostKind = ClassifyHost(h)
	}
	return r
}

func value(s string, ok bool) uri.Value {
	if !ok {
		return uri.NoValue
	}
	return uri.NewValue(s)
}

// Params encodes query parameters as a JSON object with keys in order of first occurrence.
type Params struct {
	uri.Params
}

// IsZero reports whether there are no parameters.
func (p Params) IsZero() bool { return p.IsEmpty() }

// MarshalJSON implements [json.Marshaler].
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := util.MarshalJSON(k)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		vb, err := util.MarshalJSON(p.Get(k))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ErrUnknownFormat is returned by [NewWriter] for unsupported formats.
const ErrUnknownFormat errorutil.Error = "unknown report format"

// Writer writes a single report.
type Writer func(w io.Writer, r Report) error

// NewWriter returns the writer for format "text" or "json".
func NewWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return WriteText, nil
	case "json":
		return WriteJSON, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownFormat, "%q", format))
	}
}

// WriteJSON writes r as a single JSON line.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return errtrace.Wrap(enc.Encode(r))
}

// WriteText writes r as aligned "name: value" lines followed by an empty line.
func WriteText(w io.Writer, r Report) error {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	line := func(name, val string) {
		fmt.Fprintf(sb, "%-10s %s\n", name+":", val)
	}
	opt := func(name string, v uri.Value) {
		if s, ok := v.Get(); ok {
			line(name, strconv.Quote(s))
		}
	}

	line("raw", strconv.Quote(r.Raw))
	opt("scheme", r.Scheme)
	opt("authority", r.Authority)
	opt("user", r.User)
	opt("password", r.Password)
	opt("host", r.Host)
	if r.HostKind != "" {
		line("host kind", string(r.HostKind))
	}
	opt("port", r.Port)
	line("path", strconv.Quote(r.Path))
	if len(r.Segments) > 0 {
		line("segments", fmt.Sprintf("%q", r.Segments))
	}
	opt("query", r.Query)
	if !r.Params.IsEmpty() {
		sb.WriteString("params:\n")
		for _, p := range r.Params.Pairs() {
			if s, ok := p.Value.Get(); ok {
				fmt.Fprintf(sb, "  %q = %q\n", p.Key, s)
			} else {
				fmt.Fprintf(sb, "  %q\n", p.Key)
			}
		}
	}
	opt("fragment", r.Fragment)
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return errtrace.Wrap(err)
}
