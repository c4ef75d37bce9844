package audit

import "time"

// ActionGiftReceived is recorded once per gift a person receives.
const ActionGiftReceived = "gift_received"

// Event captures one delivery. Keep it transport-agnostic so stores and
// sinks can fan out.
type Event struct {
	Timestamp  time.Time
	Action     string
	NationalID string
	Person     string
	GiftCode   string
	GiftKind   string
	Brand      string
	Price      int
}
