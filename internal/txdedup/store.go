// Package txdedup remembers, per wallet address, which transaction ids have
// already produced a notification.
//
// Each address keeps at most MaxNotifiedPerAddress ids. When an insertion
// overflows the limit, the set is trimmed to the TrimmedNotifiedPerAddress
// ids that rank highest in lexicographic order. Ranking by id rather than by
// arrival time matches the snapshots written by earlier releases; ids that
// are not lexicographically monotonic with arrival can therefore be evicted
// while still recent.
package txdedup

import (
	"slices"
	"sync"

	"github.com/gabapcia/kaspawatch/internal/pkg/types"
)

const (
	// MaxNotifiedPerAddress bounds the number of ids remembered per address.
	MaxNotifiedPerAddress = 1000

	// TrimmedNotifiedPerAddress is the number of ids kept after an overflow.
	TrimmedNotifiedPerAddress = 800
)

// Store is the per-address set of notified transaction ids.
// It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	notified types.DefaultMap[string, types.Set[string]]
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		notified: newNotifiedMap(),
	}
}

func newNotifiedMap() types.DefaultMap[string, types.Set[string]] {
	return types.NewDefaultMap[string](func() types.Set[string] {
		return types.NewSet[string]()
	})
}

// IsNotified reports whether txID was already notified for address.
// The first reference to an address initializes its (empty) set.
func (s *Store) IsNotified(address, txID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.notified.Get(address).Has(txID)
}

// MarkNotified records txID for address. Marking an id twice is a no-op.
// If the set grows beyond MaxNotifiedPerAddress it is trimmed.
func (s *Store) MarkNotified(address, txID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.notified.Get(address)
	set.Add(txID)

	if set.Len() > MaxNotifiedPerAddress {
		s.notified.Set(address, trim(set))
	}
}

// SeedAsNotified records every id of txIDs for address. It is used to
// silence the backlog of a newly watched address. The set is trimmed once
// after the whole batch is added, so a seed never leaves more than
// MaxNotifiedPerAddress ids behind.
func (s *Store) SeedAsNotified(address string, txIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.notified.Get(address)
	set.Add(txIDs...)

	if set.Len() > MaxNotifiedPerAddress {
		s.notified.Set(address, trim(set))
	}
}

// Export returns a copy of the store as address -> sorted ids.
func (s *Store) Export() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(map[string][]string, s.notified.Len())
	for address, set := range s.notified.ToMap() {
		doc[address] = slices.Sorted(set.ToIter())
	}

	return doc
}

// Restore replaces the store content with doc. Sets larger than
// MaxNotifiedPerAddress are trimmed on the way in.
func (s *Store) Restore(doc map[string][]string) {
	notified := newNotifiedMap()
	for address, ids := range doc {
		set := types.NewSet(ids...)
		if set.Len() > MaxNotifiedPerAddress {
			set = trim(set)
		}

		notified.Set(address, set)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notified = notified
}

// trim keeps the TrimmedNotifiedPerAddress largest ids of set.
func trim(set types.Set[string]) types.Set[string] {
	ids := slices.Sorted(set.ToIter())
	return types.NewSet(ids[len(ids)-TrimmedNotifiedPerAddress:]...)
}
