// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/uriparts/internal/constraints"
	"github.com/ghettovoice/uriparts/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(p uri.Params) slog.Value {
		return p.LogValue()
	}),
	slogformatter.FormatByType(func(a uri.Authority) slog.Value {
		attrs := make([]slog.Attr, 0, 4)
		for _, kv := range []struct {
			k string
			v uri.Value
		}{{"user", a.User}, {"host", a.Host}, {"port", a.Port}} {
			if s, ok := kv.v.Get(); ok {
				attrs = append(attrs, slog.String(kv.k, s))
			}
		}
		if a.Password.IsSet() {
			attrs = append(attrs, slog.String("password", "***"))
		}
		return slog.GroupValue(attrs...)
	}),
)

// Kind selects a logger flavour.
type Kind string

const (
	KindConsole Kind = "console"
	KindDev     Kind = "dev"
	KindNone    Kind = "none"
)

// New creates a logger of the given kind writing to w.
// Unknown kinds fall back to [KindConsole].
func New(kind Kind, level slog.Leveler, w io.Writer) *slog.Logger {
	switch kind {
	case KindNone:
		return Noop
	case KindDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	default:
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				AddSource:  true,
				Level:      level,
				TimeFormat: time.RFC3339Nano,
				NoColor:    true,
			}),
		))
	}
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err) //errtrace:skip
	}
	return lvl, nil
}

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
