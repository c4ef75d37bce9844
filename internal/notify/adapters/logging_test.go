package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftmatch/internal/notify"
	"giftmatch/pkg/domain"
	"giftmatch/pkg/testutil"
)

func TestLogMailSender(t *testing.T) {
	rec, logger := testutil.NewLogRecorder()
	sender := NewLogMailSender(logger)
	msg := notify.Message{From: "regalos@example.com", To: "ana@example.com", Subject: notify.MailSubject, Body: "hi"}

	require.NoError(t, sender.Send(context.Background(), msg))

	assert.Equal(t, []notify.Message{msg}, sender.Sent())
	entries := rec.WithMessage("mail queued")
	require.Len(t, entries, 1)
	assert.Equal(t, "ana@example.com", entries[0]["to"])
}

func TestLogFreightSender(t *testing.T) {
	rec, logger := testutil.NewLogRecorder()
	sender := NewLogFreightSender(logger)
	shipment := notify.Shipment{Address: "Calle 1", Name: "Ana", NationalID: "30111222", GiftCode: domain.NewGiftCode()}

	require.NoError(t, sender.Notify(context.Background(), shipment))

	assert.Equal(t, []notify.Shipment{shipment}, sender.Shipments())
	entries := rec.WithMessage("shipment booked")
	require.Len(t, entries, 1)
	assert.Equal(t, shipment.GiftCode.String(), entries[0]["gift_code"])
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, NewLogMailSender(nil).logger)
	assert.NotNil(t, NewLogFreightSender(nil).logger)
}
