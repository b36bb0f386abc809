package uri

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/ghettovoice/uriparts/internal/constraints"
)

// Params is a read-only ordered multimap of query parameters.
// Keys keep the order of their first occurrence, values of each key keep the order of appearance.
// The zero Params is empty and ready to use.
type Params struct {
	keys  []string
	vals  map[string][]Value
	count int
}

// Pair is a single query parameter.
type Pair struct {
	Key   string
	Value Value
}

type queryState uint8

const (
	queryKey queryState = iota
	queryValue
)

// ParseQuery splits a query component (without the leading '?') given as string or []byte.
//
// Tokens are separated by '&', the first '=' of a token separates the key from the value.
// A token without '=' yields the whole token as key with an absent value.
// An empty input yields empty Params, otherwise exactly one pair per token is produced.
func ParseQuery[T constraints.Byteseq](src T) Params {
	var (
		s     = string(src)
		p     Params
		state = queryKey
		start int
		key   string
	)
	if s == "" {
		return p
	}
	for cur := 0; ; cur++ {
		if cur == len(s) || s[cur] == '&' {
			if state == queryValue {
				p.add(key, NewValue(s[start:cur]))
			} else {
				p.add(s[start:cur], NoValue)
			}
			if cur == len(s) {
				break
			}
			state, key, start = queryKey, "", cur+1
			continue
		}
		if s[cur] == '=' && state == queryKey {
			key, state, start = s[start:cur], queryValue, cur+1
		}
	}
	return p
}

func (p *Params) add(key string, val Value) {
	if p.vals == nil {
		p.vals = make(map[string][]Value)
	}
	vs, ok := p.vals[key]
	if !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = append(vs, val)
	p.count++
}

// Len returns the number of distinct keys.
func (p Params) Len() int { return len(p.keys) }

// Count returns the total number of parameters across all keys.
func (p Params) Count() int { return p.count }

// IsEmpty reports whether there are no parameters.
func (p Params) IsEmpty() bool { return p.count == 0 }

// Keys returns the keys in order of first occurrence.
func (p Params) Keys() []string { return slices.Clone(p.keys) }

// Has checks whether the key is present.
func (p Params) Has(key string) bool {
	_, ok := p.vals[key]
	return ok
}

// Get returns the values associated with the key.
// If there are no values associated with the key, Get returns nil.
func (p Params) Get(key string) []Value { return slices.Clone(p.vals[key]) }

// First returns the first value of the key and a flag indicating whether the key is present.
func (p Params) First(key string) (Value, bool) {
	vs := p.vals[key]
	if len(vs) == 0 {
		return NoValue, false
	}
	return vs[0], true
}

// All returns an iterator over keys and their values in order of first occurrence.
func (p Params) All() iter.Seq2[string, []Value] {
	return func(yield func(string, []Value) bool) {
		for _, k := range p.keys {
			if !yield(k, slices.Clone(p.vals[k])) {
				return
			}
		}
	}
}

// Pairs returns all parameters grouped by key, keys in order of first occurrence.
func (p Params) Pairs() []Pair {
	if p.count == 0 {
		return nil
	}
	pairs := make([]Pair, 0, p.count)
	for _, k := range p.keys {
		for _, v := range p.vals[k] {
			pairs = append(pairs, Pair{k, v})
		}
	}
	return pairs
}

// Equal compares these params with another for equality, including the order of keys and values.
func (p Params) Equal(val any) bool {
	var other Params
	switch o := val.(type) {
	case Params:
		other = o
	case *Params:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}

	if p.count != other.count || !slices.Equal(p.keys, other.keys) {
		return false
	}
	for _, k := range p.keys {
		if !slices.EqualFunc(p.vals[k], other.vals[k], func(a, b Value) bool { return a.Equal(b) }) {
			return false
		}
	}
	return true
}

// LogValue implements [slog.LogValuer].
func (p Params) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(p.keys))
	for _, k := range p.keys {
		vs := p.vals[k]
		if len(vs) == 1 {
			attrs = append(attrs, slog.Any(k, vs[0]))
			continue
		}
		anys := make([]any, len(vs))
		for i, v := range vs {
			if s, ok := v.Get(); ok {
				anys[i] = s
			}
		}
		attrs = append(attrs, slog.Any(k, anys))
	}
	return slog.GroupValue(attrs...)
}
