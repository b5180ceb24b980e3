package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// submitDelay simulates the latency of a real submission backend.
const submitDelay = 1 * time.Second

// SubmitResult is the acknowledgment returned by the submission endpoint.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitQuote simulates sending the quote to a backend: it waits for a
// fixed delay, records the payload in the quote_submissions collection, and
// returns a confirmation. The quote itself does not depend on the outcome.
func SubmitQuote(ctx context.Context, app *pocketbase.PocketBase, data *QuoteExportData) (SubmitResult, error) {
	select {
	case <-time.After(submitDelay):
	case <-ctx.Done():
		return SubmitResult{}, ctx.Err()
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("encode submission payload: %w", err)
	}

	col, err := app.FindCollectionByNameOrId("quote_submissions")
	if err != nil {
		return SubmitResult{}, fmt.Errorf("quote_submissions collection not found: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_id", data.QuoteID)
	record.Set("payload", string(payload))
	if err := app.Save(record); err != nil {
		// The submission log is advisory; the acknowledgment still goes out.
		log.Printf("submit: failed to record submission for %s: %v", data.QuoteID, err)
	}

	return SubmitResult{Success: true, Message: "Quote sent! Check your email."}, nil
}
