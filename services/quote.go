package services

import (
	"log"
	"sync"
)

// QuoteState is the full mutable selection: ordered lines, rates, notes and
// the display currency. It is the unit of persistence.
type QuoteState struct {
	Lines           []QuoteLine `json:"lines"`
	DiscountPercent float64     `json:"discount"`
	TaxPercent      float64     `json:"tax"`
	Notes           string      `json:"notes"`
	Currency        Currency    `json:"currency"`
}

// DefaultQuoteState returns the state used when no prior state exists.
func DefaultQuoteState() QuoteState {
	return QuoteState{Currency: CurrencyUSD}
}

// QuoteSnapshot is a read-only value copy of the state and its derived
// totals, handed to renderers and API responses.
type QuoteSnapshot struct {
	State  QuoteState  `json:"state"`
	Totals QuoteTotals `json:"totals"`
}

// StateStore is the load/save hook for durable quote state. Load returning
// (nil, nil) means no prior state exists and defaults apply.
type StateStore interface {
	Load() (*QuoteState, error)
	Save(QuoteState) error
}

// QuoteStore owns the quote state and keeps derived totals in sync with
// every mutation. Totals are recomputed synchronously inside each mutator,
// so no caller can observe stale aggregates. State changes are persisted
// through the injected StateStore and reported to the OnChange observer.
type QuoteStore struct {
	mu       sync.Mutex
	state    QuoteState
	totals   QuoteTotals
	store    StateStore
	onChange func(QuoteSnapshot)
}

// NewQuoteStore loads prior state from the store (or defaults) and computes
// the initial totals.
func NewQuoteStore(store StateStore) (*QuoteStore, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	if state == nil {
		defaults := DefaultQuoteState()
		state = &defaults
	}

	s := &QuoteStore{state: *state, store: store}
	s.totals = CalcQuoteTotals(s.state.Lines, s.state.DiscountPercent, s.state.TaxPercent)
	return s, nil
}

// SetOnChange registers an observer invoked with a fresh snapshot after
// every mutation. Only one observer is supported.
func (s *QuoteStore) SetOnChange(fn func(QuoteSnapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns a value copy of the current state and totals.
func (s *QuoteStore) Snapshot() QuoteSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddItem inserts a line for the offering with quantity 1 and the custom
// price seeded to the base price. Adding an offering that is already
// selected is a silent no-op.
func (s *QuoteStore) AddItem(o Offering) QuoteSnapshot {
	s.mu.Lock()
	for _, line := range s.state.Lines {
		if line.Offering.ID == o.ID {
			snap := s.snapshotLocked()
			s.mu.Unlock()
			return snap
		}
	}
	price := o.Price
	s.state.Lines = append(s.state.Lines, QuoteLine{Offering: o, Quantity: 1, CustomPrice: &price})
	return s.commit(true)
}

// RemoveItem deletes the line with the given offering ID. Removed lines are
// excluded from totals immediately. No-op if absent.
func (s *QuoteStore) RemoveItem(id string) QuoteSnapshot {
	s.mu.Lock()
	for i, line := range s.state.Lines {
		if line.Offering.ID == id {
			s.state.Lines = append(s.state.Lines[:i], s.state.Lines[i+1:]...)
			return s.commit(true)
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return snap
}

// UpdateQuantity adjusts the line's quantity by delta, flooring at 1.
// No-op if the ID is absent.
func (s *QuoteStore) UpdateQuantity(id string, delta int) QuoteSnapshot {
	s.mu.Lock()
	for i := range s.state.Lines {
		if s.state.Lines[i].Offering.ID == id {
			qty := s.state.Lines[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			s.state.Lines[i].Quantity = qty
			return s.commit(true)
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return snap
}

// UpdateItemPrice overrides the line's unit price. Values are not range
// checked here; negative prices propagate into the totals. No-op if the ID
// is absent.
func (s *QuoteStore) UpdateItemPrice(id string, price float64) QuoteSnapshot {
	s.mu.Lock()
	for i := range s.state.Lines {
		if s.state.Lines[i].Offering.ID == id {
			p := price
			s.state.Lines[i].CustomPrice = &p
			return s.commit(true)
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return snap
}

// SetDiscount replaces the discount percentage. Not range clamped.
func (s *QuoteStore) SetDiscount(percent float64) QuoteSnapshot {
	s.mu.Lock()
	s.state.DiscountPercent = percent
	return s.commit(true)
}

// SetTax replaces the tax percentage. Not range clamped.
func (s *QuoteStore) SetTax(percent float64) QuoteSnapshot {
	s.mu.Lock()
	s.state.TaxPercent = percent
	return s.commit(true)
}

// SetNotes replaces the free-text notes. Notes do not affect totals.
func (s *QuoteStore) SetNotes(text string) QuoteSnapshot {
	s.mu.Lock()
	s.state.Notes = text
	return s.commit(false)
}

// SetCurrency replaces the display currency. Stored amounts are
// currency-agnostic, so totals are untouched.
func (s *QuoteStore) SetCurrency(c Currency) QuoteSnapshot {
	s.mu.Lock()
	s.state.Currency = c
	return s.commit(false)
}

// commit finishes a mutation: recomputes totals when the lines or rates
// changed, persists the state, releases the lock, and notifies the
// observer. Must be called with the lock held.
func (s *QuoteStore) commit(recompute bool) QuoteSnapshot {
	if recompute {
		s.totals = CalcQuoteTotals(s.state.Lines, s.state.DiscountPercent, s.state.TaxPercent)
	}
	if err := s.store.Save(s.state); err != nil {
		// Persistence is a best-effort cache; mutations never fail on it.
		log.Printf("quote: failed to save state: %v", err)
	}
	snap := s.snapshotLocked()
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
	return snap
}

func (s *QuoteStore) snapshotLocked() QuoteSnapshot {
	state := s.state
	state.Lines = make([]QuoteLine, len(s.state.Lines))
	for i, line := range s.state.Lines {
		if line.CustomPrice != nil {
			p := *line.CustomPrice
			line.CustomPrice = &p
		}
		state.Lines[i] = line
	}
	return QuoteSnapshot{State: state, Totals: s.totals}
}
