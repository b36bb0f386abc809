package uri

import "regexp"

// uriPattern is the generic URI pattern: scheme, authority, path, query and fragment.
// Every group except the path is optional, so any text matches.
var uriPattern = regexp.MustCompile(`(?s)^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// Submatch indexes of the components in uriPattern.
const (
	groupScheme    = 2
	groupAuthority = 4
	groupPath      = 5
	groupQuery     = 7
	groupFragment  = 9
)

// matchFunc returns submatch index pairs like [regexp.Regexp.FindStringSubmatchIndex].
type matchFunc func(s string) []int

type components struct {
	scheme    Value
	authority Value
	path      string
	query     Value
	fragment  Value
}

// split divides s into top-level components.
// It returns false if match finds nothing.
func split(s string, match matchFunc) (components, bool) {
	loc := match(s)
	if loc == nil {
		return components{}, false
	}
	group := func(i int) Value {
		if 2*i+1 >= len(loc) || loc[2*i] < 0 {
			return NoValue
		}
		return NewValue(s[loc[2*i]:loc[2*i+1]])
	}
	return components{
		scheme:    group(groupScheme),
		authority: group(groupAuthority),
		path:      group(groupPath).String(),
		query:     group(groupQuery),
		fragment:  group(groupFragment),
	}, true
}
