package services

import (
	"context"
	"testing"
	"time"
)

func TestSubmitQuote_RecordsSubmission(t *testing.T) {
	app := newTestApp(t)
	data := testExportData()

	start := time.Now()
	result, err := SubmitQuote(context.Background(), app, data)
	if err != nil {
		t.Fatalf("SubmitQuote() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < submitDelay {
		t.Errorf("SubmitQuote() returned after %v, want at least %v", elapsed, submitDelay)
	}

	if !result.Success {
		t.Error("expected Success = true")
	}
	if result.Message == "" {
		t.Error("expected a confirmation message")
	}

	records, err := app.FindRecordsByFilter(
		"quote_submissions",
		"quote_id = {:id}",
		"",
		0,
		0,
		map[string]any{"id": data.QuoteID},
	)
	if err != nil {
		t.Fatalf("query quote_submissions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 submission record, got %d", len(records))
	}
}

func TestSubmitQuote_CancelledContext(t *testing.T) {
	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SubmitQuote(ctx, app, testExportData())
	if err == nil {
		t.Fatal("SubmitQuote() with cancelled context expected error")
	}

	records, err := app.FindRecordsByFilter(
		"quote_submissions", "quote_id != ''", "", 0, 0, map[string]any{},
	)
	if err != nil {
		t.Fatalf("query quote_submissions: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("cancelled submission still recorded %d entries", len(records))
	}
}
