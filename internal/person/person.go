// Package person models a gift recipient: who they are, what they currently
// like, what they have received, and who reacts when they receive something.
package person

import (
	"context"
	"fmt"
	"strings"

	"giftmatch/internal/gift"
	"giftmatch/internal/preference"
	dErrors "giftmatch/pkg/domain-errors"
	"giftmatch/pkg/email"
)

// ReceiptObserver reacts once a gift has been recorded for a person.
// Implementations may call out to collaborators or change the person's
// criterion; they must not keep per-person state of their own.
type ReceiptObserver interface {
	Name() string
	OnReceipt(ctx context.Context, g gift.Gift, p *Person) error
}

// Person is a gift recipient.
//
// Invariants:
//   - Name, NationalID, Address and Email are set before any delivery
//   - Received gifts are append-only, in receipt order
//   - Observers are fixed once registered and run in registration order
//
// The criterion is the only other mutable field. It changes through
// SetCriterion, typically from a receipt observer.
type Person struct {
	Name       string
	NationalID string
	Address    string
	Email      string

	criterion preference.Criterion
	received  []gift.Gift
	observers []ReceiptObserver
}

type Option func(p *Person)

func WithCriterion(c preference.Criterion) Option {
	return func(p *Person) {
		p.criterion = c
	}
}

func WithObservers(observers ...ReceiptObserver) Option {
	return func(p *Person) {
		p.Observe(observers...)
	}
}

// New builds a person with a complete identity.
//
// Errors: CodeInvalidInput when an identity field is blank or the email is
// malformed.
func New(name, nationalID, address, emailAddr string, opts ...Option) (*Person, error) {
	p := &Person{
		Name:       strings.TrimSpace(name),
		NationalID: strings.TrimSpace(nationalID),
		Address:    strings.TrimSpace(address),
	}
	if missing := p.missingIdentity(); missing != "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, missing+" is required")
	}
	addr, err := email.Parse(emailAddr)
	if err != nil {
		return nil, err
	}
	p.Email = addr

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Observe registers observers. There is no way to remove one.
func (p *Person) Observe(observers ...ReceiptObserver) {
	for _, o := range observers {
		if o != nil {
			p.observers = append(p.observers, o)
		}
	}
}

// Observers returns the registered observers in firing order.
func (p *Person) Observers() []ReceiptObserver {
	out := make([]ReceiptObserver, len(p.observers))
	copy(out, p.observers)
	return out
}

func (p *Person) Criterion() preference.Criterion {
	return p.criterion
}

func (p *Person) SetCriterion(c preference.Criterion) {
	p.criterion = c
}

// Likes delegates to the current criterion.
//
// Errors: CodeConfiguration when no criterion has been assigned.
func (p *Person) Likes(g gift.Gift) (bool, error) {
	if p.criterion == nil {
		return false, dErrors.New(dErrors.CodeConfiguration, "person has no preference criterion")
	}
	return p.criterion.Likes(g), nil
}

// ReceivedGifts returns the delivery history in receipt order.
func (p *Person) ReceivedGifts() []gift.Gift {
	out := make([]gift.Gift, len(p.received))
	copy(out, p.received)
	return out
}

// ReceivedCount is the number of gifts received so far.
func (p *Person) ReceivedCount() int {
	return len(p.received)
}

// ReceiveGift records g and then notifies every observer in registration
// order. The first observer error stops the remaining notifications and is
// returned; g stays recorded either way.
//
// Errors: CodeConfiguration when the identity is incomplete (nothing is
// recorded then); otherwise whatever the failing observer returned, prefixed
// with its name.
func (p *Person) ReceiveGift(ctx context.Context, g gift.Gift) error {
	if missing := p.missingIdentity(); missing != "" {
		return dErrors.New(dErrors.CodeConfiguration, "cannot deliver to person without "+missing)
	}
	if p.Email == "" {
		return dErrors.New(dErrors.CodeConfiguration, "cannot deliver to person without email")
	}

	p.received = append(p.received, g)

	for _, o := range p.observers {
		if err := o.OnReceipt(ctx, g, p); err != nil {
			return fmt.Errorf("observer %s: %w", o.Name(), err)
		}
	}
	return nil
}

func (p *Person) missingIdentity() string {
	switch {
	case p.Name == "":
		return "name"
	case p.NationalID == "":
		return "national id"
	case p.Address == "":
		return "address"
	}
	return ""
}
