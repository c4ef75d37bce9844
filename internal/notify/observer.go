package notify

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"giftmatch/internal/gift"
	"giftmatch/internal/person"
)

const tracerName = "giftmatch/notify"

// observerBase carries the ambient dependencies every observer shares.
type observerBase struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func newObserverBase() observerBase {
	return observerBase{logger: slog.Default(), tracer: otel.Tracer(tracerName)}
}

// Option configures an observer.
type Option func(b *observerBase)

func WithLogger(logger *slog.Logger) Option {
	return func(b *observerBase) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(b *observerBase) {
		if tracer != nil {
			b.tracer = tracer
		}
	}
}

// run wraps one observer invocation in a span and records its outcome.
// A zero observerBase falls back to the global tracer and default logger so
// that an observer built without its constructor still reports errors.
func (b observerBase) run(ctx context.Context, name string, g gift.Gift, p *person.Person, fn func(ctx context.Context, logger *slog.Logger) error) error {
	if b.tracer == nil || b.logger == nil {
		b = newObserverBase()
	}
	ctx, span := b.tracer.Start(ctx, "notify."+name)
	defer span.End()

	span.SetAttributes(
		attribute.String("gift.code", g.Code().String()),
		attribute.String("gift.kind", g.Kind().String()),
		attribute.Int("gift.price", g.Price()),
	)

	if err := fn(ctx, b.logger); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger.ErrorContext(ctx, "receipt observer failed",
			"observer", name,
			"person", p.Name,
			"gift_code", g.Code().String(),
			"error", err,
		)
		return err
	}
	return nil
}

var (
	_ person.ReceiptObserver = (*MailNotifier)(nil)
	_ person.ReceiptObserver = (*FreightNotifier)(nil)
	_ person.ReceiptObserver = (*PreferenceEscalator)(nil)
	_ person.ReceiptObserver = (*AuditRecorder)(nil)
)
