package schedule

// Store is the ordered in-memory collection of entries, the single
// source of truth for the session. It performs no validation; the
// editor validates before handing entries over. All mutation happens
// on the event loop, so no locking is needed.
type Store struct {
	entries []Entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: make([]Entry, 0)}
}

// Add appends entries to the end of the sequence.
func (s *Store) Add(entries ...Entry) {
	s.entries = append(s.entries, entries...)
}

// ReplaceAll swaps the whole sequence for the given one. Used after an
// edit reconciliation so the change lands atomically.
func (s *Store) ReplaceAll(entries []Entry) {
	s.entries = append(s.entries[:0:0], entries...)
}

// RemoveAt deletes the entry at pos. Out-of-range positions are
// ignored.
func (s *Store) RemoveAt(pos int) {
	if pos < 0 || pos >= len(s.entries) {
		return
	}
	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
}

// All returns a copy of the entry sequence in store order.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// At returns the entry at pos.
func (s *Store) At(pos int) (Entry, bool) {
	if pos < 0 || pos >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[pos], true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}
