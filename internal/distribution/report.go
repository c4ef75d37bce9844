package distribution

import (
	"giftmatch/internal/gift"
	"giftmatch/internal/person"
)

// Stage names the step of a person's delivery that failed.
type Stage string

const (
	// StageMatch means the person's criterion could not be evaluated.
	StageMatch Stage = "match"
	// StageReceipt means the delivery itself failed: incomplete identity or
	// an observer error.
	StageReceipt Stage = "receipt"
)

// Assignment records which gift a person was given. Fallback is true when no
// pool gift matched and a fresh fallback gift was used.
type Assignment struct {
	Person   *person.Person
	Gift     gift.Gift
	Fallback bool
}

// Failure records a per-person error. A receipt failure may still have an
// Assignment when the gift was recorded before an observer failed.
type Failure struct {
	Person *person.Person
	Stage  Stage
	Err    error
}

// Report is the outcome of one pass, in person iteration order.
type Report struct {
	Assignments []Assignment
	Failures    []Failure
}

// GiftFor returns the gift assigned to p in this pass.
func (r *Report) GiftFor(p *person.Person) (gift.Gift, bool) {
	for _, a := range r.Assignments {
		if a.Person == p {
			return a.Gift, true
		}
	}
	return nil, false
}

// FallbackCount is the number of people who got the fallback gift.
func (r *Report) FallbackCount() int {
	n := 0
	for _, a := range r.Assignments {
		if a.Fallback {
			n++
		}
	}
	return n
}
