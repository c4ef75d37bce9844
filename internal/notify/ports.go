// Package notify holds the receipt observers fired after a person receives a
// gift, and the narrow ports they use to reach mail and freight services.
package notify

import (
	"context"

	"giftmatch/pkg/domain"
)

// Message is one outbound mail.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Shipment asks the freight partner to deliver a gift.
type Shipment struct {
	Address    string
	Name       string
	NationalID string
	GiftCode   domain.GiftCode
}

// MailSender delivers a message. The core does not retry failures.
type MailSender interface {
	Send(ctx context.Context, msg Message) error
}

// FreightSender hands a shipment to the freight partner. The core does not
// retry failures.
type FreightSender interface {
	Notify(ctx context.Context, shipment Shipment) error
}
