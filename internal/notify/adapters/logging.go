// Package adapters provides MailSender and FreightSender implementations
// for hosts that have no real mail or freight transport wired in. They write
// each request to a structured log and keep a copy in memory.
package adapters

import (
	"context"
	"log/slog"
	"sync"

	"giftmatch/internal/notify"
)

// LogMailSender logs every message instead of delivering it.
type LogMailSender struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []notify.Message
}

func NewLogMailSender(logger *slog.Logger) *LogMailSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailSender{logger: logger}
}

func (s *LogMailSender) Send(ctx context.Context, msg notify.Message) error {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "mail queued",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

// Sent returns the messages seen so far, oldest first.
func (s *LogMailSender) Sent() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

// LogFreightSender logs every shipment instead of booking it.
type LogFreightSender struct {
	logger *slog.Logger

	mu        sync.Mutex
	shipments []notify.Shipment
}

func NewLogFreightSender(logger *slog.Logger) *LogFreightSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogFreightSender{logger: logger}
}

func (s *LogFreightSender) Notify(ctx context.Context, shipment notify.Shipment) error {
	s.mu.Lock()
	s.shipments = append(s.shipments, shipment)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "shipment booked",
		"name", shipment.Name,
		"address", shipment.Address,
		"gift_code", shipment.GiftCode.String(),
	)
	return nil
}

// Shipments returns the shipments seen so far, oldest first.
func (s *LogFreightSender) Shipments() []notify.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Shipment, len(s.shipments))
	copy(out, s.shipments)
	return out
}

var (
	_ notify.MailSender    = (*LogMailSender)(nil)
	_ notify.FreightSender = (*LogFreightSender)(nil)
)
