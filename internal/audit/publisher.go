package audit

import (
	"context"
	"time"

	dErrors "giftmatch/pkg/domain-errors"
)

// Publisher captures structured audit events. It is append-only and uses the
// store for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
	now   func() time.Time
}

type PublisherOption func(p *Publisher)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) PublisherOption {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if p.store == nil {
		return dErrors.New(dErrors.CodeConfiguration, "audit store is required")
	}
	if base.Timestamp.IsZero() {
		base.Timestamp = p.now()
	}
	if err := p.store.Append(ctx, base); err != nil {
		return dErrors.Wrap(err, dErrors.CodeDependencyFailure, "append audit event")
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, nationalID string) ([]Event, error) {
	if p.store == nil {
		return nil, dErrors.New(dErrors.CodeConfiguration, "audit store is required")
	}
	return p.store.ListByPerson(ctx, nationalID)
}
