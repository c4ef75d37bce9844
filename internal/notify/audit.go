package notify

import (
	"context"
	"log/slog"

	"giftmatch/internal/audit"
	"giftmatch/internal/gift"
	"giftmatch/internal/person"
	dErrors "giftmatch/pkg/domain-errors"
)

// AuditPublisher is the sink the AuditRecorder writes to.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// AuditRecorder appends a gift_received event for every delivery.
type AuditRecorder struct {
	observerBase
	publisher AuditPublisher
}

func NewAuditRecorder(publisher AuditPublisher, opts ...Option) (*AuditRecorder, error) {
	if publisher == nil {
		return nil, dErrors.New(dErrors.CodeConfiguration, "audit publisher is required")
	}
	r := &AuditRecorder{observerBase: newObserverBase(), publisher: publisher}
	for _, opt := range opts {
		opt(&r.observerBase)
	}
	return r, nil
}

func (r *AuditRecorder) Name() string { return "audit" }

func (r *AuditRecorder) OnReceipt(ctx context.Context, g gift.Gift, p *person.Person) error {
	return r.run(ctx, r.Name(), g, p, func(ctx context.Context, _ *slog.Logger) error {
		if r.publisher == nil {
			return dErrors.New(dErrors.CodeConfiguration, "audit publisher is required")
		}
		return r.publisher.Emit(ctx, audit.Event{
			Action:     audit.ActionGiftReceived,
			NationalID: p.NationalID,
			Person:     p.Name,
			GiftCode:   g.Code().String(),
			GiftKind:   g.Kind().String(),
			Brand:      g.Brand(),
			Price:      g.Price(),
		})
	})
}
