package model

import (
	"fmt"
	"strings"
)

// QName is a namespace-qualified XML name.
type QName struct {
	Space string // namespace URI, may be empty
	Local string // local part
}

// NewQName creates a QName.
func NewQName(space, local string) QName {
	return QName{Space: space, Local: local}
}

// String returns the name in Clark notation: "{uri}local", or just "local"
// when the namespace is empty.
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}

	return "{" + q.Space + "}" + q.Local
}

// IsZero returns true if both parts are empty.
func (q QName) IsZero() bool {
	return q.Space == "" && q.Local == ""
}

// ParseQName parses Clark notation ("{uri}local" or "local").
func ParseQName(s string) (QName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return QName{}, fmt.Errorf("empty qualified name")
	}

	if !strings.HasPrefix(s, "{") {
		if strings.ContainsAny(s, "{}") {
			return QName{}, fmt.Errorf("invalid qualified name %q", s)
		}

		return QName{Local: s}, nil
	}

	end := strings.IndexByte(s, '}')
	if end < 0 {
		return QName{}, fmt.Errorf("invalid qualified name %q: missing '}'", s)
	}

	local := s[end+1:]
	if local == "" || strings.ContainsAny(local, "{}") {
		return QName{}, fmt.Errorf("invalid qualified name %q: bad local part", s)
	}

	return QName{Space: s[1:end], Local: local}, nil
}
