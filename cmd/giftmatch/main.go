package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"giftmatch/internal/audit"
	"giftmatch/internal/distribution"
	"giftmatch/internal/distribution/metrics"
	"giftmatch/internal/notify"
	"giftmatch/internal/notify/adapters"
	"giftmatch/internal/platform/config"
	"giftmatch/internal/platform/logger"
)

// main wires log-backed senders into the receipt observers, seeds a demo pool
// and runs a single distribution pass. Matching rules live in internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	mailer, err := notify.NewMailNotifier(cfg.MailFrom, adapters.NewLogMailSender(log), notify.WithLogger(log))
	if err != nil {
		log.Error("mail notifier", "error", err)
		os.Exit(2)
	}
	freight, err := notify.NewFreightNotifier(adapters.NewLogFreightSender(log), notify.WithLogger(log))
	if err != nil {
		log.Error("freight notifier", "error", err)
		os.Exit(2)
	}
	auditStore := audit.NewInMemoryStore()
	recorder, err := notify.NewAuditRecorder(audit.NewPublisher(auditStore), notify.WithLogger(log))
	if err != nil {
		log.Error("audit recorder", "error", err)
		os.Exit(2)
	}
	escalator := notify.NewPreferenceEscalator(notify.WithLogger(log))

	people, err := seedPeople(recorder, mailer, freight, escalator)
	if err != nil {
		log.Error("seed people", "error", err)
		os.Exit(2)
	}
	gifts, err := seedGifts()
	if err != nil {
		log.Error("seed gifts", "error", err)
		os.Exit(2)
	}

	engine := distribution.New(
		distribution.WithLogger(log),
		distribution.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	)

	report, err := engine.Distribute(context.Background(), people, gifts)
	for _, a := range report.Assignments {
		log.Info("assignment",
			"person", a.Person.Name,
			"gift_kind", a.Gift.Kind().String(),
			"brand", a.Gift.Brand(),
			"price", a.Gift.Price(),
			"fallback", a.Fallback,
		)
	}
	log.Info("audit trail", "events", len(auditStore.All()))
	if err != nil {
		log.Error("distribution finished with failures", "error", err)
		os.Exit(1)
	}
}
