package gift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	dErrors "giftmatch/pkg/domain-errors"
)

// =============================================================================
// Gift Valuation Test Suite
// =============================================================================
// Justification for unit tests: valuation is pure domain logic combining a
// shared price threshold with one condition per variant; the edges of both
// halves are easiest to pin down here.

type GiftSuite struct {
	suite.Suite
}

func TestGiftSuite(t *testing.T) {
	suite.Run(t, new(GiftSuite))
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *GiftSuite) TestConstructors() {
	s.Run("negative price is rejected for every variant", func() {
		_, err := NewClothing(-1, "Lee")
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		_, err = NewToy(-1, "Mattel", 1990)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		_, err = NewPerfume(-1, "Chanel", true)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		_, err = NewExperience(-1, "Spa", time.Friday)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("zero price is allowed", func() {
		g, err := NewToy(0, "Free", 2020)
		s.Require().NoError(err)
		s.Equal(0, g.Price())
	})

	s.Run("every gift gets a distinct code", func() {
		a, err := NewClothing(100, "Lee")
		s.Require().NoError(err)
		b, err := NewClothing(100, "Lee")
		s.Require().NoError(err)

		s.False(a.Code().IsNil())
		s.NotEqual(a.Code(), b.Code())
	})

	s.Run("fields are exposed as constructed", func() {
		g, err := NewPerfume(7500, "Acme", true)
		s.Require().NoError(err)
		s.Equal(7500, g.Price())
		s.Equal("Acme", g.Brand())
		s.Equal(KindPerfume, g.Kind())
		s.True(g.ForeignOrigin)
	})
}

// =============================================================================
// Valuation Tests
// =============================================================================

func (s *GiftSuite) TestClothingValuation() {
	s.Run("allowlisted brand at threshold is valuable", func() {
		g, _ := NewClothing(ValuableThreshold, "Jordache")
		s.True(g.IsValuable())
	})

	s.Run("allowlisted brand below threshold is not valuable", func() {
		g, _ := NewClothing(ValuableThreshold-1, "Moto Oil")
		s.False(g.IsValuable())
	})

	s.Run("unknown brand is not valuable", func() {
		g, _ := NewClothing(20000, "Generic")
		s.False(g.IsValuable())
	})

	s.Run("brand match is case sensitive", func() {
		g, _ := NewClothing(20000, "lee")
		s.False(g.IsValuable())
	})

	s.Run("allowlist copy cannot mutate the rule", func() {
		brands := ValuableBrands()
		s.Len(brands, 4)
		brands[0] = "Generic"

		g, _ := NewClothing(20000, "Jordache")
		s.True(g.IsValuable())
	})
}

func (s *GiftSuite) TestToyValuation() {
	s.Run("released before 2000 is valuable", func() {
		g, _ := NewToy(6000, "Mattel", 1999)
		s.True(g.IsValuable())
	})

	s.Run("released in 2000 is not valuable", func() {
		g, _ := NewToy(6000, "Mattel", 2000)
		s.False(g.IsValuable())
	})
}

func (s *GiftSuite) TestPerfumeValuation() {
	imported, _ := NewPerfume(5000, "Chanel", true)
	local, _ := NewPerfume(5000, "Local", false)

	s.True(imported.IsValuable())
	s.False(local.IsValuable())
}

func (s *GiftSuite) TestExperienceValuation() {
	friday, _ := NewExperience(9000, "Spa", time.Friday)
	saturday, _ := NewExperience(9000, "Spa", time.Saturday)

	s.True(friday.IsValuable())
	s.False(saturday.IsValuable())
}

func (s *GiftSuite) TestVoucher() {
	s.Run("has the fixed price and brand", func() {
		v := NewVoucher()
		s.Equal(VoucherPrice, v.Price())
		s.Equal(VoucherBrand, v.Brand())
		s.Equal(KindVoucher, v.Kind())
	})

	s.Run("is never valuable", func() {
		s.False(NewVoucher().IsValuable())
	})

	s.Run("each voucher is a distinct value with its own code", func() {
		a, b := NewVoucher(), NewVoucher()
		s.NotSame(a, b)
		s.NotEqual(a.Code(), b.Code())
		s.Equal(a.Price(), b.Price())
		s.Equal(a.Brand(), b.Brand())
	})
}

// =============================================================================
// Property Tests
// =============================================================================

// drawGift builds an arbitrary non-voucher gift at the given price.
func drawGift(t *rapid.T, price int) Gift {
	brand := rapid.SampledFrom(append(ValuableBrands(), "Acme", "Generic")).Draw(t, "brand")
	switch rapid.SampledFrom([]Kind{KindClothing, KindToy, KindPerfume, KindExperience}).Draw(t, "kind") {
	case KindClothing:
		g, _ := NewClothing(price, brand)
		return g
	case KindToy:
		g, _ := NewToy(price, brand, rapid.IntRange(1950, 2030).Draw(t, "year"))
		return g
	case KindPerfume:
		g, _ := NewPerfume(price, brand, rapid.Bool().Draw(t, "foreign"))
		return g
	default:
		day := time.Weekday(rapid.IntRange(0, 6).Draw(t, "day"))
		g, _ := NewExperience(price, brand, day)
		return g
	}
}

func TestProperty_CheapGiftsAreNeverValuable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGift(t, rapid.IntRange(0, ValuableThreshold-1).Draw(t, "price"))
		if g.IsValuable() {
			t.Fatalf("%s priced %d reported valuable", g.Kind(), g.Price())
		}
	})
}

func TestProperty_VoucherIsNeverValuable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		_ = rapid.IntRange(0, 100).Draw(t, "iteration")
		if NewVoucher().IsValuable() {
			t.Fatal("voucher reported valuable")
		}
	})
}

func TestProperty_ValuableImpliesThreshold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGift(t, rapid.IntRange(0, 50000).Draw(t, "price"))
		if g.IsValuable() && g.Price() < ValuableThreshold {
			t.Fatalf("%s priced %d valuable below threshold", g.Kind(), g.Price())
		}
	})
}
