package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// StateNamespace is the fixed key under which the quote state is cached.
const StateNamespace = "quoteforge-default"

// RecordStateStore persists the quote state as a single record in the
// quote_states collection, keyed by namespace.
type RecordStateStore struct {
	app       *pocketbase.PocketBase
	namespace string
}

// NewRecordStateStore returns a store bound to the given namespace key.
func NewRecordStateStore(app *pocketbase.PocketBase, namespace string) *RecordStateStore {
	return &RecordStateStore{app: app, namespace: namespace}
}

// Load reads the cached state. A missing record yields (nil, nil): first
// runs start from defaults.
func (r *RecordStateStore) Load() (*QuoteState, error) {
	record, err := r.app.FindFirstRecordByFilter(
		"quote_states",
		"namespace = {:ns}",
		map[string]any{"ns": r.namespace},
	)
	if err != nil {
		return nil, nil
	}

	var state QuoteState
	if err := json.Unmarshal([]byte(record.GetString("state")), &state); err != nil {
		return nil, fmt.Errorf("decode cached quote state: %w", err)
	}
	return &state, nil
}

// Save upserts the namespace record with the serialized state.
func (r *RecordStateStore) Save(state QuoteState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode quote state: %w", err)
	}

	record, err := r.app.FindFirstRecordByFilter(
		"quote_states",
		"namespace = {:ns}",
		map[string]any{"ns": r.namespace},
	)
	if err != nil {
		col, err := r.app.FindCollectionByNameOrId("quote_states")
		if err != nil {
			return fmt.Errorf("quote_states collection not found: %w", err)
		}
		record = core.NewRecord(col)
		record.Set("namespace", r.namespace)
	}

	record.Set("state", string(raw))
	if err := r.app.Save(record); err != nil {
		return fmt.Errorf("save quote state: %w", err)
	}
	return nil
}

// MemoryStateStore is an in-memory StateStore for tests and ephemeral use.
type MemoryStateStore struct {
	mu    sync.Mutex
	state *QuoteState
}

func (m *MemoryStateStore) Load() (*QuoteState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	state := *m.state
	return &state, nil
}

func (m *MemoryStateStore) Save(state QuoteState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = &state
	return nil
}
