package notify

import (
	"context"
	"fmt"
	"log/slog"

	"giftmatch/internal/gift"
	"giftmatch/internal/person"
	dErrors "giftmatch/pkg/domain-errors"
	"giftmatch/pkg/email"
)

// MailSubject is the fixed subject of every receipt mail.
const MailSubject = "You received a gift!"

// MailNotifier mails the recipient once per delivered gift.
type MailNotifier struct {
	observerBase
	from   string
	sender MailSender
}

// NewMailNotifier builds a mail observer sending from the given address.
func NewMailNotifier(from string, sender MailSender, opts ...Option) (*MailNotifier, error) {
	if sender == nil {
		return nil, dErrors.New(dErrors.CodeConfiguration, "mail sender is required")
	}
	addr, err := email.Parse(from)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "mail sender address is invalid")
	}
	n := &MailNotifier{observerBase: newObserverBase(), from: addr, sender: sender}
	for _, opt := range opts {
		opt(&n.observerBase)
	}
	return n, nil
}

func (n *MailNotifier) Name() string { return "mail" }

// OnReceipt sends exactly one message to the recipient.
func (n *MailNotifier) OnReceipt(ctx context.Context, g gift.Gift, p *person.Person) error {
	return n.run(ctx, n.Name(), g, p, func(ctx context.Context, logger *slog.Logger) error {
		if n.sender == nil {
			return dErrors.New(dErrors.CodeConfiguration, "mail sender is required")
		}
		msg := BuildMessage(n.from, g, p)
		if err := n.sender.Send(ctx, msg); err != nil {
			return dErrors.Wrap(err, dErrors.CodeDependencyFailure, "send receipt mail")
		}
		logger.DebugContext(ctx, "receipt mail sent", "to", msg.To, "gift_code", g.Code().String())
		return nil
	})
}

// BuildMessage renders the receipt mail for g delivered to p.
func BuildMessage(from string, g gift.Gift, p *person.Person) Message {
	return Message{
		From:    from,
		To:      p.Email,
		Subject: MailSubject,
		Body: fmt.Sprintf(
			"Hi %s, you received a %s gift worth $%d. Your gift code is %s.",
			p.Name, g.Brand(), g.Price(), g.Code(),
		),
	}
}
