package worker

// email_worker.go mails the daily closing summary to the store owner.
// Sends go through the SMTP circuit breaker: when the relay is down the
// breaker fast-fails and the job is parked in the DLQ instead of tying up
// pool goroutines in connection timeouts.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Milansanjaya/shoe-pos-backend/internal/infra"
)

// ClosingEmailJob is the job envelope sent to QueueEmail.
type ClosingEmailJob struct {
	Date          string `json:"date"`
	TotalSales    int    `json:"total_sales"`
	TotalRevenue  string `json:"total_revenue"`
	TotalProfit   string `json:"total_profit"`
	TotalExpenses string `json:"total_expenses"`
	ClosingCash   string `json:"closing_cash"`
}

// EmailWorker sends closing summaries via SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
	rdb    *redis.Client
	to     string
}

func NewEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, rdb *redis.Client, to string) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb, rdb: rdb, to: to}
}

func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ClosingEmailJob
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if w.to == "" {
		log.Warn().Msg("email_worker: no closing email configured, skipping")
		return
	}

	subject := fmt.Sprintf("Daily Closing Summary - %s", payload.Date)
	body := fmt.Sprintf(
		"Closing summary for %s\n\nSales: %d\nRevenue: $%s\nProfit: $%s\nExpenses: $%s\nClosing cash: $%s\n",
		payload.Date, payload.TotalSales, payload.TotalRevenue,
		payload.TotalProfit, payload.TotalExpenses, payload.ClosingCash,
	)

	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(w.to, subject, body, "")
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Str("to", w.to).Msg("email_worker: failed to send closing summary")
		SendToDLQ(ctx, w.rdb, QueueEmail, jobTypeEmail, raw, sendErr.Error(), 1)
		return
	}
	log.Info().Str("to", w.to).Str("date", payload.Date).Msg("email_worker: closing summary sent")
}
