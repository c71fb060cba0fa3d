package worker

// receipt_worker.go pre-renders the PDF receipt for a committed sale so the
// print endpoint can serve it from disk. Rendering is retried with backoff;
// a sale whose receipt never rendered lands in the DLQ, and the print
// endpoint falls back to rendering on demand.

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Milansanjaya/shoe-pos-backend/internal/infra"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

// ReceiptJob is the job envelope sent to QueueReceipt.
type ReceiptJob struct {
	SaleID string `json:"sale_id"`
}

const receiptMaxAttempts = 3

// ReceiptWorker renders receipt PDFs for committed sales.
type ReceiptWorker struct {
	sales       repository.SaleRepository
	rdb         *redis.Client
	storagePath string
}

func NewReceiptWorker(sales repository.SaleRepository, rdb *redis.Client, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{sales: sales, rdb: rdb, storagePath: storagePath}
}

func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJob
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}

	saleID, err := uuid.Parse(payload.SaleID)
	if err != nil {
		log.Error().Str("sale_id", payload.SaleID).Msg("receipt_worker: invalid sale_id")
		return
	}

	sale, err := w.sales.FindByID(ctx, saleID)
	if err != nil {
		log.Error().Err(err).Str("sale_id", payload.SaleID).Msg("receipt_worker: sale not found")
		return
	}

	var pdfPath string
	renderErr := withRetry(ctx, receiptMaxAttempts, func(attempt int) error {
		path, err := infra.GenerateReceiptPDF(sale, w.storagePath)
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("invoice", sale.InvoiceNumber).
				Msg("receipt_worker: render attempt failed, retrying")
			return err
		}
		pdfPath = path
		return nil
	})
	if renderErr != nil {
		log.Error().Err(renderErr).Str("invoice", sale.InvoiceNumber).Msg("receipt_worker: render failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueReceipt, jobTypeReceipt, raw, renderErr.Error(), receiptMaxAttempts)
		return
	}

	log.Info().Str("invoice", sale.InvoiceNumber).Str("pdf", pdfPath).Msg("receipt_worker: receipt rendered")
}
