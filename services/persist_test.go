package services

import (
	"testing"
)

func TestRecordStateStore_LoadWithoutPriorState(t *testing.T) {
	app := newTestApp(t)
	store := NewRecordStateStore(app, StateNamespace)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state != nil {
		t.Errorf("Load() = %+v, want nil for missing state", state)
	}
}

func TestRecordStateStore_SaveLoadRoundTrip(t *testing.T) {
	app := newTestApp(t)
	store := NewRecordStateStore(app, StateNamespace)

	override := 750.0
	saved := QuoteState{
		Lines: []QuoteLine{
			{Offering: testOffering("a", 500, 3), Quantity: 2, CustomPrice: &override},
			{Offering: testOffering("b", 300, 2), Quantity: 1},
		},
		DiscountPercent: 10,
		TaxPercent:      5,
		Notes:           "deliver before Q4",
		Currency:        CurrencyEUR,
	}

	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() = nil after Save()")
	}

	if len(loaded.Lines) != 2 {
		t.Fatalf("loaded %d lines, want 2", len(loaded.Lines))
	}
	if loaded.Lines[0].Offering.ID != "a" || loaded.Lines[0].Quantity != 2 {
		t.Errorf("unexpected first line: %+v", loaded.Lines[0])
	}
	if loaded.Lines[0].CustomPrice == nil || *loaded.Lines[0].CustomPrice != 750 {
		t.Errorf("custom price lost in round trip: %v", loaded.Lines[0].CustomPrice)
	}
	if loaded.Lines[1].CustomPrice != nil {
		t.Errorf("nil custom price became %v", *loaded.Lines[1].CustomPrice)
	}
	if loaded.DiscountPercent != 10 || loaded.TaxPercent != 5 {
		t.Errorf("rates lost: discount=%v tax=%v", loaded.DiscountPercent, loaded.TaxPercent)
	}
	if loaded.Notes != "deliver before Q4" {
		t.Errorf("notes lost: %q", loaded.Notes)
	}
	if loaded.Currency != CurrencyEUR {
		t.Errorf("currency lost: %s", loaded.Currency)
	}
}

func TestRecordStateStore_SaveUpserts(t *testing.T) {
	app := newTestApp(t)
	store := NewRecordStateStore(app, StateNamespace)

	if err := store.Save(QuoteState{Notes: "first", Currency: CurrencyUSD}); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := store.Save(QuoteState{Notes: "second", Currency: CurrencyUSD}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	records, err := app.FindRecordsByFilter(
		"quote_states",
		"namespace = {:ns}",
		"",
		0,
		0,
		map[string]any{"ns": StateNamespace},
	)
	if err != nil {
		t.Fatalf("query quote_states: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single upserted record, got %d", len(records))
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Notes != "second" {
		t.Errorf("Notes = %q, want the second save to win", loaded.Notes)
	}
}

func TestRecordStateStore_NamespacesAreIsolated(t *testing.T) {
	app := newTestApp(t)
	one := NewRecordStateStore(app, "ns-one")
	two := NewRecordStateStore(app, "ns-two")

	if err := one.Save(QuoteState{Notes: "one", Currency: CurrencyUSD}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	state, err := two.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state != nil {
		t.Errorf("namespace two sees namespace one's state: %+v", state)
	}
}

func TestQuoteStore_WithRecordStateStore(t *testing.T) {
	app := newTestApp(t)

	first, err := NewQuoteStore(NewRecordStateStore(app, StateNamespace))
	if err != nil {
		t.Fatalf("NewQuoteStore() error = %v", err)
	}
	first.AddItem(testOffering("a", 500, 3))
	first.SetTax(5)

	second, err := NewQuoteStore(NewRecordStateStore(app, StateNamespace))
	if err != nil {
		t.Fatalf("NewQuoteStore() reload error = %v", err)
	}

	snap := second.Snapshot()
	if len(snap.State.Lines) != 1 {
		t.Fatalf("expected 1 line after reload, got %d", len(snap.State.Lines))
	}
	if !floatClose(snap.Totals.Total, 525) {
		t.Errorf("Total after reload = %v, want 525", snap.Totals.Total)
	}
}
