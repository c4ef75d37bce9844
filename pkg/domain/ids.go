package domain

import (
	"github.com/google/uuid"

	dErrors "giftmatch/pkg/domain-errors"
)

// GiftCode uniquely identifies a gift in the pool. It is assigned once when the
// gift is built and never changes; freight shipments and mail bodies quote it.
type GiftCode uuid.UUID

// NewGiftCode mints a fresh random code.
func NewGiftCode() GiftCode {
	return GiftCode(uuid.New())
}

// ParseGiftCode constructs a GiftCode from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed or the
// nil UUID.
func ParseGiftCode(s string) (GiftCode, error) {
	if s == "" {
		return GiftCode{}, dErrors.New(dErrors.CodeInvalidInput, "gift code cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return GiftCode{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid gift code")
	}
	if parsed == uuid.Nil {
		return GiftCode{}, dErrors.New(dErrors.CodeInvalidInput, "gift code cannot be nil")
	}
	return GiftCode(parsed), nil
}

func (c GiftCode) String() string {
	return uuid.UUID(c).String()
}

func (c GiftCode) IsNil() bool {
	return uuid.UUID(c) == uuid.Nil
}
