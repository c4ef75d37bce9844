package notify

import (
	"context"
	"log/slog"

	"giftmatch/internal/gift"
	"giftmatch/internal/person"
	dErrors "giftmatch/pkg/domain-errors"
)

// FreightNotifier asks the freight partner to ship each delivered gift.
type FreightNotifier struct {
	observerBase
	sender FreightSender
}

func NewFreightNotifier(sender FreightSender, opts ...Option) (*FreightNotifier, error) {
	if sender == nil {
		return nil, dErrors.New(dErrors.CodeConfiguration, "freight sender is required")
	}
	n := &FreightNotifier{observerBase: newObserverBase(), sender: sender}
	for _, opt := range opts {
		opt(&n.observerBase)
	}
	return n, nil
}

func (n *FreightNotifier) Name() string { return "freight" }

func (n *FreightNotifier) OnReceipt(ctx context.Context, g gift.Gift, p *person.Person) error {
	return n.run(ctx, n.Name(), g, p, func(ctx context.Context, logger *slog.Logger) error {
		if n.sender == nil {
			return dErrors.New(dErrors.CodeConfiguration, "freight sender is required")
		}
		shipment := Shipment{
			Address:    p.Address,
			Name:       p.Name,
			NationalID: p.NationalID,
			GiftCode:   g.Code(),
		}
		if err := n.sender.Notify(ctx, shipment); err != nil {
			return dErrors.Wrap(err, dErrors.CodeDependencyFailure, "notify freight partner")
		}
		logger.DebugContext(ctx, "freight notified", "person", p.Name, "gift_code", g.Code().String())
		return nil
	})
}
