package rules

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OrgDomain is the organizational mail domain every canonical identity
// must belong to.
const OrgDomain = "starbank.com.br"

// ErrInvalidIdentity is returned when a login input cannot be mapped to
// an identity inside the organizational domain.
var ErrInvalidIdentity = errors.New("identity is not a valid organizational login")

var titler = cases.Title(language.BrazilianPortuguese)

// Normalize maps a free-text login input to the canonical email-form
// identity used as the owner key on sale records.
//
// Inputs that already look like an email are accepted unchanged, but
// only when they belong to the organizational domain. Anything else is
// treated as a display name: lower-cased, spaces become dots, and the
// organizational domain is appended.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidIdentity
	}

	if strings.Contains(raw, "@") {
		if !strings.HasSuffix(raw, "@"+OrgDomain) {
			return "", ErrInvalidIdentity
		}
		return raw, nil
	}

	local := strings.ReplaceAll(strings.ToLower(raw), " ", ".")
	return local + "@" + OrgDomain, nil
}

// Denormalize converts a canonical identity back into a display name.
// It is a best-effort inverse of Normalize: lossy for local parts that
// originally contained a literal dot.
func Denormalize(canonical string) string {
	name := strings.TrimSuffix(canonical, "@"+OrgDomain)
	name = strings.ReplaceAll(name, ".", " ")
	return titler.String(name)
}
