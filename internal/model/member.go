package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Member is a person on the team sharing the cash box.
type Member struct {
	ID   string
	Name string
}

// Initial returns the upper-cased first character of the member's name, used
// as an avatar. Members without a name get "?".
func (m Member) Initial() string {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// MemberNames returns the display names of members in order.
func MemberNames(members []Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		if m.Name == "" {
			continue
		}
		names = append(names, m.Name)
	}
	return names
}
