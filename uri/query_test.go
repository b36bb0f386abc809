package uri_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriparts/uri"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		wantKeys []string
		want     []uri.Pair
	}{
		{"empty", "", nil, nil},
		{"flag", "flag", []string{"flag"}, []uri.Pair{{"flag", no}}},
		{"pair", "k=v", []string{"k"}, []uri.Pair{{"k", v("v")}}},
		{"empty value", "k=", []string{"k"}, []uri.Pair{{"k", v("")}}},
		{"empty key", "=v", []string{""}, []uri.Pair{{"", v("v")}}},
		{"empty key with equals in value", "=a=b", []string{""}, []uri.Pair{{"", v("a=b")}}},
		{"equals in value", "a=1=2", []string{"a"}, []uri.Pair{{"a", v("1=2")}}},
		{"repeated keys", "a=1&a=2", []string{"a"}, []uri.Pair{{"a", v("1")}, {"a", v("2")}}},
		{
			"grouped by first occurrence",
			"b=1&a&b=2&a=3",
			[]string{"b", "a"},
			[]uri.Pair{{"b", v("1")}, {"b", v("2")}, {"a", no}, {"a", v("3")}},
		},
		{"single ampersand", "&", []string{""}, []uri.Pair{{"", no}, {"", no}}},
		{"trailing ampersand", "a&", []string{"a", ""}, []uri.Pair{{"a", no}, {"", no}}},
		{"leading ampersand", "&a=1", []string{"", "a"}, []uri.Pair{{"", no}, {"a", v("1")}}},
		{"no decoding", "q=a%20b+c", []string{"q"}, []uri.Pair{{"q", v("a%20b+c")}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := uri.ParseQuery(c.input)
			if diff := cmp.Diff(got.Pairs(), c.want); diff != "" {
				t.Errorf("uri.ParseQuery(%q).Pairs() = %+v, want %+v\ndiff (-got +want):\n%v",
					c.input, got.Pairs(), c.want, diff,
				)
			}
			if diff := cmp.Diff(got.Keys(), c.wantKeys, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("uri.ParseQuery(%q).Keys() = %q, want %q\ndiff (-got +want):\n%v",
					c.input, got.Keys(), c.wantKeys, diff,
				)
			}
			if got.IsEmpty() != (c.input == "") {
				t.Errorf("uri.ParseQuery(%q).IsEmpty() = %v, want %v", c.input, got.IsEmpty(), c.input == "")
			}
			if !uri.ParseQuery([]byte(c.input)).Equal(got) {
				t.Errorf("uri.ParseQuery([]byte(%q)) != uri.ParseQuery(%q)", c.input, c.input)
			}
		})
	}
}

func TestParseQuery_Count(t *testing.T) {
	t.Parallel()

	queries := []string{"a", "&", "&&", "a=1&b", "a&&b=&=c&", "x=y=z&&&", "k1=v1&k2=v2&flag"}
	for _, q := range queries {
		want := 1 + strings.Count(q, "&")
		if got := uri.ParseQuery(q).Count(); got != want {
			t.Errorf("uri.ParseQuery(%q).Count() = %d, want %d", q, got, want)
		}
		if got := len(uri.ParseQuery(q).Pairs()); got != want {
			t.Errorf("len(uri.ParseQuery(%q).Pairs()) = %d, want %d", q, got, want)
		}
	}
}

func TestParams_Accessors(t *testing.T) {
	t.Parallel()

	p := uri.ParseQuery("k1=v1&k2=v2&flag&k1=v3")

	if got := p.Len(); got != 3 {
		t.Errorf("p.Len() = %d, want 3", got)
	}
	if got := p.Count(); got != 4 {
		t.Errorf("p.Count() = %d, want 4", got)
	}
	if !p.Has("flag") || p.Has("missing") {
		t.Errorf("p.Has() = (%v, %v), want (true, false)", p.Has("flag"), p.Has("missing"))
	}
	if diff := cmp.Diff(p.Get("k1"), []uri.Value{v("v1"), v("v3")}); diff != "" {
		t.Errorf("p.Get(%q) diff (-got +want):\n%v", "k1", diff)
	}
	if got := p.Get("missing"); got != nil {
		t.Errorf("p.Get(%q) = %v, want nil", "missing", got)
	}
	if got, ok := p.First("flag"); !ok || got.IsSet() {
		t.Errorf("p.First(%q) = (%v, %v), want (absent, true)", "flag", got, ok)
	}
	if _, ok := p.First("missing"); ok {
		t.Errorf("p.First(%q) ok = true, want false", "missing")
	}

	var keys []string
	for k, vs := range p.All() {
		keys = append(keys, k)
		if len(vs) == 0 {
			t.Errorf("p.All() yielded no values for %q", k)
		}
		if k == "k2" {
			break
		}
	}
	if diff := cmp.Diff(keys, []string{"k1", "k2"}); diff != "" {
		t.Errorf("p.All() keys diff (-got +want):\n%v", diff)
	}

	var zero uri.Params
	if !zero.IsEmpty() || zero.Len() != 0 || zero.Has("") || zero.Pairs() != nil {
		t.Error("zero Params is not empty")
	}
}

func TestParams_Equal(t *testing.T) {
	t.Parallel()

	p := uri.ParseQuery("a=1&b&a=2")

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"same", p, true},
		{"pointer", &p, true},
		{"nil pointer", (*uri.Params)(nil), false},
		{"equal", uri.ParseQuery("a=1&b&a=2"), true},
		{"same groups", uri.ParseQuery("a=1&a=2&b"), true},
		{"different key order", uri.ParseQuery("b&a=1&a=2"), false},
		{"different value order", uri.ParseQuery("a=2&b&a=1"), false},
		{"absent vs empty", uri.ParseQuery("a=1&b=&a=2"), false},
		{"other type", "a=1&b&a=2", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := p.Equal(c.val); got != c.want {
				t.Errorf("p.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}
