// Package email normalises recipient and sender addresses.
package email

import (
	"net/mail"
	"strings"

	dErrors "giftmatch/pkg/domain-errors"
)

// Normalize trims surrounding whitespace and lowercases the domain part.
// The local part is left as given; some providers treat it case-sensitively.
func Normalize(addr string) string {
	addr = strings.TrimSpace(addr)
	at := strings.LastIndexByte(addr, '@')
	if at < 0 {
		return addr
	}
	return addr[:at+1] + strings.ToLower(addr[at+1:])
}

// Parse validates a bare address (no display name) and returns it normalised.
//
// Errors: CodeInvalidInput when empty, malformed or carrying a display name.
func Parse(addr string) (string, error) {
	addr = Normalize(addr)
	if addr == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "email cannot be empty")
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid email")
	}
	if parsed.Name != "" || parsed.Address != addr {
		return "", dErrors.New(dErrors.CodeInvalidInput, "email must be a bare address")
	}
	return parsed.Address, nil
}
