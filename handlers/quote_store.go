package handlers

import (
	"sort"
	"sync"

	"tourcrm/services"
)

// QuoteStore holds in-progress quotations in memory. Quotes are working
// documents: they live for the session and leave the server only as
// exported files.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]*services.Quotation
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		quotes: make(map[string]*services.Quotation),
	}
}

// New creates and registers a fresh quotation.
func (s *QuoteStore) New() *services.Quotation {
	q := services.NewQuotation()
	s.mu.Lock()
	s.quotes[q.ID] = q
	s.mu.Unlock()
	return q
}

// Get returns the quotation with the given id, or nil.
func (s *QuoteStore) Get(id string) *services.Quotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quotes[id]
}

// Delete discards a quotation. Unknown ids are a no-op.
func (s *QuoteStore) Delete(id string) {
	s.mu.Lock()
	delete(s.quotes, id)
	s.mu.Unlock()
}

// List returns all open quotations sorted by school name, unnamed last.
func (s *QuoteStore) List() []*services.Quotation {
	s.mu.RLock()
	list := make([]*services.Quotation, 0, len(s.quotes))
	for _, q := range s.quotes {
		list = append(list, q)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		a, b := list[i].SchoolName, list[j].SchoolName
		if (a == "") != (b == "") {
			return a != ""
		}
		if a != b {
			return a < b
		}
		return list[i].ID < list[j].ID
	})
	return list
}
