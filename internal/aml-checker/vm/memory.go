package vm

import "github.com/mlproof/aml-checker/internal/aml-checker/pattern"

// memory is the append-only vector Save appends to and Load indexes into,
// bounded by maxEntries. Nothing ever removes an entry: the Save/Load
// pair is a notation mechanism for naming an intermediate result, not a
// mutable store.
type memory struct {
	items      []Entry
	maxEntries int
}

func (m *memory) save(e Entry) {
	m.items = append(m.items, e)
}

func (m *memory) load(index byte) (Entry, error) {
	if int(index) >= len(m.items) {
		return Entry{}, ErrMemoryOutOfRange
	}
	return m.items[index], nil
}

// claims is the ordered multiset of pending obligations a claims buffer
// publishes and a proof buffer must discharge, one per Publish
// instruction, in last-in-first-out order.
type claims []*pattern.Pattern

func (c *claims) push(p *pattern.Pattern) {
	*c = append(*c, p)
}

func (c *claims) pop() (*pattern.Pattern, error) {
	n := len(*c)
	if n == 0 {
		return nil, ErrJournalMismatch
	}
	top := (*c)[n-1]
	*c = (*c)[:n-1]
	return top, nil
}

func (c claims) empty() bool {
	return len(c) == 0
}
