package gift

import (
	"slices"
	"time"
)

// valuableBrands is the clothing allowlist.
var valuableBrands = []string{"Jordache", "Lee", "Charro", "Moto Oil"}

// ValuableBrands returns a copy of the clothing brand allowlist.
func ValuableBrands() []string {
	return slices.Clone(valuableBrands)
}

// Clothing is valuable when its brand is on the allowlist.
type Clothing struct {
	base
}

func NewClothing(price int, brand string) (*Clothing, error) {
	b, err := newBase(price, brand)
	if err != nil {
		return nil, err
	}
	return &Clothing{base: b}, nil
}

func (c *Clothing) Kind() Kind { return KindClothing }

func (c *Clothing) IsValuable() bool {
	return valuable(c.base, func() bool { return slices.Contains(valuableBrands, c.brand) })
}

// Toy is valuable when it was released before 2000.
type Toy struct {
	base
	ReleaseYear int
}

func NewToy(price int, brand string, releaseYear int) (*Toy, error) {
	b, err := newBase(price, brand)
	if err != nil {
		return nil, err
	}
	return &Toy{base: b, ReleaseYear: releaseYear}, nil
}

func (t *Toy) Kind() Kind { return KindToy }

func (t *Toy) IsValuable() bool {
	return valuable(t.base, func() bool { return t.ReleaseYear < 2000 })
}

// Perfume is valuable when it is imported.
type Perfume struct {
	base
	ForeignOrigin bool
}

func NewPerfume(price int, brand string, foreignOrigin bool) (*Perfume, error) {
	b, err := newBase(price, brand)
	if err != nil {
		return nil, err
	}
	return &Perfume{base: b, ForeignOrigin: foreignOrigin}, nil
}

func (p *Perfume) Kind() Kind { return KindPerfume }

func (p *Perfume) IsValuable() bool {
	return valuable(p.base, func() bool { return p.ForeignOrigin })
}

// Experience is valuable when it happens on a Friday.
type Experience struct {
	base
	Day time.Weekday
}

func NewExperience(price int, brand string, day time.Weekday) (*Experience, error) {
	b, err := newBase(price, brand)
	if err != nil {
		return nil, err
	}
	return &Experience{base: b, Day: day}, nil
}

func (e *Experience) Kind() Kind { return KindExperience }

func (e *Experience) IsValuable() bool {
	return valuable(e.base, func() bool { return e.Day == time.Friday })
}

const (
	// VoucherPrice is the fixed face value of the fallback voucher.
	VoucherPrice = 2000
	// VoucherBrand is the fixed brand printed on every voucher.
	VoucherBrand = "Gift Voucher"
)

// Voucher is the fallback handed out when nothing in the pool matches.
// It is never valuable, whatever the generic rule would say.
type Voucher struct {
	base
}

// NewVoucher returns a fresh voucher with its own code. Vouchers are never
// shared between recipients.
func NewVoucher() *Voucher {
	b, _ := newBase(VoucherPrice, VoucherBrand)
	return &Voucher{base: b}
}

func (v *Voucher) Kind() Kind { return KindVoucher }

func (v *Voucher) IsValuable() bool { return false }
