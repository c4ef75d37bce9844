// Package preference decides whether a person likes a gift.
//
// Each Criterion is a small, stateless rule; Combined composes rules into a
// tree that is satisfied when any branch is.
package preference

import (
	"fmt"
	"strings"

	"giftmatch/internal/gift"
)

// Criterion is a rule deciding whether a gift is liked. Implementations are
// total and free of side effects.
type Criterion interface {
	Likes(g gift.Gift) bool
	String() string
}

// Unconditional likes everything.
type Unconditional struct{}

func (Unconditional) Likes(gift.Gift) bool { return true }
func (Unconditional) String() string       { return "unconditional" }

// ValueThreshold likes gifts priced at or above MinValue.
type ValueThreshold struct {
	MinValue float64
}

func (c ValueThreshold) Likes(g gift.Gift) bool {
	return float64(g.Price()) >= c.MinValue
}

func (c ValueThreshold) String() string {
	return fmt.Sprintf("value_threshold(%g)", c.MinValue)
}

// Demanding only likes valuable gifts.
type Demanding struct{}

func (Demanding) Likes(g gift.Gift) bool { return g.IsValuable() }
func (Demanding) String() string         { return "demanding" }

// BrandLoyal likes gifts of exactly one brand.
type BrandLoyal struct {
	Brand string
}

func (c BrandLoyal) Likes(g gift.Gift) bool {
	return g.Brand() == c.Brand
}

func (c BrandLoyal) String() string {
	return fmt.Sprintf("brand_loyal(%q)", c.Brand)
}

// Combined likes a gift when any child does. Children are evaluated in the
// order they were added and evaluation stops at the first match, so an empty
// Combined likes nothing. Callers must not build cycles.
type Combined struct {
	children []Criterion
}

// Any builds a Combined over the given criteria.
func Any(children ...Criterion) *Combined {
	c := &Combined{}
	c.Add(children...)
	return c
}

// Add appends children, skipping nils.
func (c *Combined) Add(children ...Criterion) {
	for _, child := range children {
		if child != nil {
			c.children = append(c.children, child)
		}
	}
}

// Children returns a copy of the direct children in evaluation order.
func (c *Combined) Children() []Criterion {
	out := make([]Criterion, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Combined) Likes(g gift.Gift) bool {
	for _, child := range c.children {
		if child.Likes(g) {
			return true
		}
	}
	return false
}

func (c *Combined) String() string {
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		parts[i] = child.String()
	}
	return "any(" + strings.Join(parts, ", ") + ")"
}
