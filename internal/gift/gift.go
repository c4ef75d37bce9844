// Package gift models the purchasable items in a distribution pool and the
// rule that decides whether an item counts as valuable.
package gift

import (
	"giftmatch/pkg/domain"
	dErrors "giftmatch/pkg/domain-errors"
)

// ValuableThreshold is the minimum price for any gift to be considered valuable.
const ValuableThreshold = 5000

// Kind names the concrete gift variant. Used for log attributes and metric labels.
type Kind string

const (
	KindClothing   Kind = "clothing"
	KindToy        Kind = "toy"
	KindPerfume    Kind = "perfume"
	KindExperience Kind = "experience"
	KindVoucher    Kind = "voucher"
)

func (k Kind) String() string {
	return string(k)
}

// Gift is the behaviour every variant shares.
//
// Invariants:
//   - Price is never negative
//   - Code is assigned at construction and never changes
//   - IsValuable is a pure function of the gift's immutable fields
type Gift interface {
	Code() domain.GiftCode
	Price() int
	Brand() string
	Kind() Kind
	IsValuable() bool
}

// base holds the fields common to every variant.
type base struct {
	code  domain.GiftCode
	price int
	brand string
}

func newBase(price int, brand string) (base, error) {
	if price < 0 {
		return base{}, dErrors.New(dErrors.CodeInvariantViolation, "gift price cannot be negative")
	}
	return base{code: domain.NewGiftCode(), price: price, brand: brand}, nil
}

func (b base) Code() domain.GiftCode { return b.code }
func (b base) Price() int            { return b.price }
func (b base) Brand() string         { return b.brand }

// valuable is the fixed valuation rule: the price threshold first, then the
// variant's own condition. The condition is not evaluated for cheap gifts.
func valuable(b base, specificCondition func() bool) bool {
	return b.price >= ValuableThreshold && specificCondition()
}
