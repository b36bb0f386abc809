package uri

import "github.com/ghettovoice/uriparts/internal/constraints"

// Authority holds the parts of the authority component "user:password@host:port".
// Each part is absent when it is missing or empty in the input.
type Authority struct {
	User     Value
	Password Value
	Host     Value
	Port     Value
}

// IsEmpty reports whether all parts of the authority are absent.
func (a Authority) IsEmpty() bool {
	return !a.User.IsSet() && !a.Password.IsSet() && !a.Host.IsSet() && !a.Port.IsSet()
}

type authState uint8

const (
	authHost authState = iota
	authPort
)

// ParseAuthority splits an authority component given as string or []byte.
//
// The first '@' separates the userinfo from the host-port, later '@' are kept in the host-port part.
// Inside each part the first ':' separates user from password and host from port.
// The input is never rejected, malformed authorities are resolved by the first occurrence rule.
func ParseAuthority[T constraints.Byteseq](src T) Authority {
	var (
		s        = string(src)
		a        Authority
		state    = authHost
		start    int
		userDone bool
	)
	for cur := 0; cur < len(s); cur++ {
		switch s[cur] {
		case ':':
			// later colons belong to the port or password
			if state == authHost {
				a.Host = nonEmpty(s[start:cur])
				state = authPort
				start = cur + 1
			}
		case '@':
			if userDone {
				continue
			}
			userDone = true
			// everything scanned so far was the userinfo
			if state == authPort {
				a.User, a.Host = a.Host, NoValue
				a.Password = nonEmpty(s[start:cur])
			} else {
				a.User = nonEmpty(s[start:cur])
			}
			state = authHost
			start = cur + 1
		}
	}
	if state == authHost {
		a.Host = nonEmpty(s[start:])
	} else {
		a.Port = nonEmpty(s[start:])
	}
	return a
}
