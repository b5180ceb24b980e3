package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quoteforge/testhelpers"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleQuoteView_EmptyQuote(t *testing.T) {
	store := testhelpers.NewTestQuoteStore(t)

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()

	if err := HandleQuoteView(store)(newSimpleRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	snap := decodeSnapshot(t, rec)
	if len(snap.State.Lines) != 0 {
		t.Errorf("fresh quote has %d lines, want 0", len(snap.State.Lines))
	}
	if snap.Totals.Total != 0 {
		t.Errorf("fresh quote Total = %v, want 0", snap.Totals.Total)
	}
}

func TestHandleQuoteAddItem(t *testing.T) {
	catalog := testhelpers.TestCatalog(t)
	store := testhelpers.NewTestQuoteStore(t)

	req := postForm("/quote/items", url.Values{"offering_id": {"dev_1"}})
	rec := httptest.NewRecorder()

	if err := HandleQuoteAddItem(catalog, store)(newSimpleRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	snap := decodeSnapshot(t, rec)
	if len(snap.State.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(snap.State.Lines))
	}
	if snap.State.Lines[0].Offering.ID != "dev_1" {
		t.Errorf("added offering = %q, want dev_1", snap.State.Lines[0].Offering.ID)
	}
	if snap.Totals.Subtotal != 500 {
		t.Errorf("Subtotal = %v, want 500", snap.Totals.Subtotal)
	}
}

func TestHandleQuoteAddItem_UnknownOffering(t *testing.T) {
	catalog := testhelpers.TestCatalog(t)
	store := testhelpers.NewTestQuoteStore(t)

	req := postForm("/quote/items", url.Values{"offering_id": {"nope"}})
	rec := httptest.NewRecorder()

	HandleQuoteAddItem(catalog, store)(newSimpleRequestEvent(req, rec))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if len(store.Snapshot().State.Lines) != 0 {
		t.Error("unknown offering still ended up in the quote")
	}
}

func TestHandleQuoteAddItem_MissingID(t *testing.T) {
	catalog := testhelpers.TestCatalog(t)
	store := testhelpers.NewTestQuoteStore(t)

	req := postForm("/quote/items", url.Values{})
	rec := httptest.NewRecorder()

	HandleQuoteAddItem(catalog, store)(newSimpleRequestEvent(req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleQuoteRemoveItem(t *testing.T) {
	catalog := testhelpers.TestCatalog(t)
	store := testhelpers.NewTestQuoteStore(t)
	offering, _ := catalog.Get("dev_1")
	store.AddItem(offering)

	req := httptest.NewRequest(http.MethodDelete, "/quote/items/dev_1", nil)
	req.SetPathValue("id", "dev_1")
	rec := httptest.NewRecorder()

	if err := HandleQuoteRemoveItem(store)(newSimpleRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	snap := decodeSnapshot(t, rec)
	if len(snap.State.Lines) != 0 {
		t.Errorf("got %d lines after removal, want 0", len(snap.State.Lines))
	}
}

func TestHandleQuoteRemoveItem_AbsentIsNoop(t *testing.T) {
	store := testhelpers.NewTestQuoteStore(t)

	req := httptest.NewRequest(http.MethodDelete, "/quote/items/ghost", nil)
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()

	HandleQuoteRemoveItem(store)(newSimpleRequestEvent(req, rec))
	if rec.Code != http.StatusOK {
		t.Errorf("removing an absent line: status = %d, want 200", rec.Code)
	}
}

func TestHandleQuoteUpdateQuantity(t *testing.T) {
	store := testhelpers.NewTestQuoteStore(t)
	store.AddItem(testhelpers.Offering("a", "Thing", 500, 3))

	tests := []struct {
		name     string
		delta    string
		wantQty  int
		wantCode int
	}{
		{"increment", "2", 3, http.StatusOK},
		{"floor at one", "-100", 1, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := postForm("/quote/items/a/quantity", url.Values{"delta": {tt.delta}})
			req.SetPathValue("id", "a")
			rec := httptest.NewRecorder()

			HandleQuoteUpdateQuantity(store)(newSimpleRequestEvent(req, rec))
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}

			snap := decodeSnapshot(t, rec)
			if snap.State.Lines[0].Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", snap.State.Lines[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestHandleQuoteUpdateQuantity_BadDelta(t *testing.T) {
	store := testhelpers.NewTestQuoteStore(t)
	store.AddItem(testhelpers.Offering("a", "Thing", 500, 3))

	req := postForm("/quote/items/a/quantity", url.Values{"delta": {"lots"}})
	req.SetPathValue("id", "a")
	rec := httptest.NewRecorder()

	HandleQuoteUpdateQuantity(store)(newSimpleRequestEvent(req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleQuoteUpdateItemPrice(t *testing.T) {
	store := testhelpers.NewTestQuoteStore(t)
	store.AddItem(testhelpers.Offering("a", "Thing", 500, 3))

	req := postForm("/quote/items/a/price", url.Values{"price": {"750"}})
	req.SetPathValue("id", "a")
	rec := httptest.NewRecorder()

	HandleQuoteUpdateItemPrice(store)(newSimpleRequestEvent(req, rec))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	snap := decodeSnapshot(t, rec)
	if snap.Totals.Subtotal != 750 {
		t.Errorf("Subtotal after override = %v, want 750", snap.Totals.Subtotal)
	}
}

func TestHandleQuoteUpdateItemPrice_BadPrice(t *testing.T) {
	store := testhelpers.NewTestQuoteStore(t)
	store.AddItem(testhelpers.Offering("a", "Thing", 500, 3))

	req := postForm("/quote/items/a/price", url.Values{"price": {"free"}})
	req.SetPathValue("id", "a")
	rec := httptest.NewRecorder()

	HandleQuoteUpdateItemPrice(store)(newSimpleRequestEvent(req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
