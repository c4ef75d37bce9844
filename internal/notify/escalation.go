package notify

import (
	"context"
	"log/slog"

	"giftmatch/internal/gift"
	"giftmatch/internal/person"
	"giftmatch/internal/preference"
)

const (
	// EscalationPrice is the price a gift must exceed to raise the
	// recipient's expectations.
	EscalationPrice = 10000
	// EscalatedMinValue is the threshold the recipient moves to.
	EscalatedMinValue = 5000
)

// PreferenceEscalator makes a person who received an expensive gift expect
// at least EscalatedMinValue from then on. Repeating it resets the same
// threshold.
type PreferenceEscalator struct {
	observerBase
}

func NewPreferenceEscalator(opts ...Option) *PreferenceEscalator {
	e := &PreferenceEscalator{observerBase: newObserverBase()}
	for _, opt := range opts {
		opt(&e.observerBase)
	}
	return e
}

func (e *PreferenceEscalator) Name() string { return "preference_escalator" }

func (e *PreferenceEscalator) OnReceipt(ctx context.Context, g gift.Gift, p *person.Person) error {
	return e.run(ctx, e.Name(), g, p, func(ctx context.Context, logger *slog.Logger) error {
		if g.Price() <= EscalationPrice {
			return nil
		}
		previous := p.Criterion()
		next := preference.ValueThreshold{MinValue: EscalatedMinValue}
		p.SetCriterion(next)
		logger.InfoContext(ctx, "preference escalated",
			"person", p.Name,
			"from", describe(previous),
			"to", next.String(),
		)
		return nil
	})
}

func describe(c preference.Criterion) string {
	if c == nil {
		return "none"
	}
	return c.String()
}
