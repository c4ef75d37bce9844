//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseGiftCode tests that parsing never panics on arbitrary input
// and always returns either a valid code or an error.
func FuzzParseGiftCode(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		code, err := ParseGiftCode(input)

		if err == nil {
			if code.IsNil() {
				t.Error("nil code accepted")
			}
			roundTrip, err2 := ParseGiftCode(code.String())
			if err2 != nil {
				t.Errorf("valid code failed round-trip: %v", err2)
			}
			if roundTrip != code {
				t.Error("round-trip changed code value")
			}
		}

		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}
