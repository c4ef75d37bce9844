// Package distribution runs a matching pass over a pool of people and a pool
// of gifts.
//
// Each person, in order, gets the first gift in pool order that their current
// criterion likes, or a fresh fallback gift when nothing matches. Pool gifts
// are offers, not inventory: the same gift may be matched to many people.
// A pass keeps no state, so running it again re-evaluates everyone with their
// current criteria.
package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"giftmatch/internal/distribution/metrics"
	"giftmatch/internal/gift"
	"giftmatch/internal/person"
)

const tracerName = "giftmatch/distribution"

// Engine runs distribution passes.
type Engine struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	fallback func() gift.Gift
}

type Option func(e *Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// WithFallback replaces the fallback gift factory. It is called once per
// unmatched person and must return a new gift every time.
func WithFallback(fn func() gift.Gift) Option {
	return func(e *Engine) {
		e.fallback = fn
	}
}

// New constructs an Engine. Without options it logs to slog.Default, uses the
// global tracer, records no metrics and falls back to gift.NewVoucher.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	if e.fallback == nil {
		e.fallback = func() gift.Gift { return gift.NewVoucher() }
	}
	return e
}

// Distribute runs one pass.
//
// Failures are contained per person: a person whose criterion is missing is
// skipped, and a person whose delivery fails keeps whatever was recorded;
// either way the pass moves on to the next person. The returned error joins
// every per-person failure and is nil when there were none. The report is
// always returned.
func (e *Engine) Distribute(ctx context.Context, people []*person.Person, gifts []gift.Gift) (*Report, error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "distribution.Distribute", trace.WithAttributes(
		attribute.Int("distribution.people", len(people)),
		attribute.Int("distribution.gifts", len(gifts)),
	))
	defer span.End()

	report := &Report{}
	var errs []error
	for _, p := range people {
		if p == nil {
			continue
		}
		if failure := e.deliver(ctx, p, gifts, report); failure != nil {
			report.Failures = append(report.Failures, *failure)
			errs = append(errs, fmt.Errorf("person %s: %w", p.Name, failure.Err))
		}
	}

	e.metrics.ObserveDistribute(time.Since(start))
	span.SetAttributes(
		attribute.Int("distribution.assignments", len(report.Assignments)),
		attribute.Int("distribution.fallbacks", report.FallbackCount()),
		attribute.Int("distribution.failures", len(report.Failures)),
	)

	err := errors.Join(errs...)
	if err != nil {
		span.SetStatus(codes.Error, "some deliveries failed")
	}
	e.logger.InfoContext(ctx, "distribution pass finished",
		"people", len(people),
		"gifts", len(gifts),
		"assignments", len(report.Assignments),
		"fallbacks", report.FallbackCount(),
		"failures", len(report.Failures),
		"duration", time.Since(start),
	)
	return report, err
}

// deliver matches and hands a gift to one person, appending to report.
func (e *Engine) deliver(ctx context.Context, p *person.Person, gifts []gift.Gift, report *Report) *Failure {
	selected, err := firstLiked(p, gifts)
	if err != nil {
		return e.fail(ctx, p, StageMatch, err)
	}
	fallback := selected == nil
	if fallback {
		selected = e.fallback()
	}

	before := p.ReceivedCount()
	err = p.ReceiveGift(ctx, selected)
	if p.ReceivedCount() > before {
		report.Assignments = append(report.Assignments, Assignment{Person: p, Gift: selected, Fallback: fallback})
		e.metrics.IncrementAssignment(selected.Kind().String(), fallback)
		e.logger.DebugContext(ctx, "gift assigned",
			"person", p.Name,
			"gift_code", selected.Code().String(),
			"gift_kind", selected.Kind().String(),
			"fallback", fallback,
		)
	}
	if err != nil {
		return e.fail(ctx, p, StageReceipt, err)
	}
	return nil
}

func (e *Engine) fail(ctx context.Context, p *person.Person, stage Stage, err error) *Failure {
	e.metrics.IncrementFailure(string(stage))
	e.logger.WarnContext(ctx, "delivery failed",
		"person", p.Name,
		"stage", string(stage),
		"error", err,
	)
	return &Failure{Person: p, Stage: stage, Err: err}
}

// firstLiked returns the first gift in pool order that p likes, or nil.
func firstLiked(p *person.Person, gifts []gift.Gift) (gift.Gift, error) {
	for _, g := range gifts {
		liked, err := p.Likes(g)
		if err != nil {
			return nil, err
		}
		if liked {
			return g, nil
		}
	}
	return nil, nil
}
