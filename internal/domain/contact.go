package domain

import (
	"strings"
	"time"
)

type Contact struct {
	ID        string
	Name      string
	Phone     *string
	Email     *string
	Company   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OptionalStr trims s and returns nil when nothing remains. Optional
// contact and deal fields are stored as NULL, never as the empty string,
// so backups round-trip byte-for-byte.
func OptionalStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StrFromPtr returns the pointed-to string, or "" for nil.
func StrFromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// MatchesQuery reports whether the contact matches a case-insensitive
// substring search over name, phone, email and company. An empty query
// matches everything.
func (c *Contact) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{c.Name, StrFromPtr(c.Phone), StrFromPtr(c.Email), StrFromPtr(c.Company)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
