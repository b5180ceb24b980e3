package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newSimpleRequestEvent creates a RequestEvent without a backing app, for
// handlers that only touch the quote store.
func newSimpleRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// decodeSnapshot parses a snapshot JSON response body.
func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) services.QuoteSnapshot {
	t.Helper()

	var snap services.QuoteSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("failed to decode snapshot response: %v\nbody: %s", err, rec.Body.String())
	}
	return snap
}
