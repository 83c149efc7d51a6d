// Package watchlist keeps the set of Kaspa addresses each subscriber asked to
// be notified about.
//
// A WatchList is safe for concurrent use: chat commands mutate it while the
// wallet monitor reads consistent snapshots of it.
package watchlist

import (
	"cmp"
	"errors"
	"maps"
	"slices"
	"strconv"
	"sync"
)

var (
	// ErrAlreadyWatched is returned when a subscriber adds an address it already watches.
	ErrAlreadyWatched = errors.New("address already watched")

	// ErrNotWatched is returned when a subscriber removes an address it does not watch.
	ErrNotWatched = errors.New("address not watched")
)

// Subscriber identifies the owner of watched addresses (a Telegram chat id).
type Subscriber int64

// String renders the subscriber id the way it is stored in snapshots.
func (s Subscriber) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// ParseSubscriber parses a subscriber id previously rendered by String.
func ParseSubscriber(s string) (Subscriber, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return Subscriber(id), nil
}

// Address is a Kaspa wallet address, e.g. "kaspa:qz7ulu4c25dh7f...".
type Address string

// Entry is a single (subscriber, address) pair of a snapshot.
type Entry struct {
	Subscriber Subscriber
	Address    Address
}

// WatchList maps each subscriber to its watched addresses in insertion order.
type WatchList struct {
	mu      sync.RWMutex
	wallets map[Subscriber][]Address
}

// New creates an empty WatchList.
func New() *WatchList {
	return &WatchList{
		wallets: make(map[Subscriber][]Address),
	}
}

// Add appends address to the subscriber's list.
// Returns ErrAlreadyWatched if the subscriber already watches it.
func (w *WatchList) Add(sub Subscriber, address Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if slices.Contains(w.wallets[sub], address) {
		return ErrAlreadyWatched
	}

	w.wallets[sub] = append(w.wallets[sub], address)
	return nil
}

// Remove deletes address from the subscriber's list, keeping the order of the others.
// Returns ErrNotWatched if the subscriber does not watch it.
func (w *WatchList) Remove(sub Subscriber, address Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := slices.Index(w.wallets[sub], address)
	if idx < 0 {
		return ErrNotWatched
	}

	w.wallets[sub] = slices.Delete(w.wallets[sub], idx, idx+1)
	if len(w.wallets[sub]) == 0 {
		delete(w.wallets, sub)
	}

	return nil
}

// Contains reports whether the subscriber watches address.
func (w *WatchList) Contains(sub Subscriber, address Address) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Contains(w.wallets[sub], address)
}

// List returns a copy of the subscriber's addresses in display order.
func (w *WatchList) List(sub Subscriber) []Address {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Clone(w.wallets[sub])
}

// Snapshot returns every (subscriber, address) pair, ordered by subscriber id
// and then by insertion order. Later mutations do not affect the result.
func (w *WatchList) Snapshot() []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()

	subscribers := slices.SortedFunc(maps.Keys(w.wallets), cmp.Compare[Subscriber])

	entries := make([]Entry, 0, len(subscribers))
	for _, sub := range subscribers {
		for _, address := range w.wallets[sub] {
			entries = append(entries, Entry{Subscriber: sub, Address: address})
		}
	}

	return entries
}

// Export returns the list as a document keyed by the subscriber id string.
func (w *WatchList) Export() map[string][]string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc := make(map[string][]string, len(w.wallets))
	for sub, addresses := range w.wallets {
		list := make([]string, len(addresses))
		for i, address := range addresses {
			list[i] = string(address)
		}

		doc[sub.String()] = list
	}

	return doc
}

// Restore replaces the whole list with wallets. Duplicate addresses of a
// subscriber are collapsed, keeping the first occurrence.
func (w *WatchList) Restore(wallets map[Subscriber][]Address) {
	restored := make(map[Subscriber][]Address, len(wallets))
	for sub, addresses := range wallets {
		var list []Address
		for _, address := range addresses {
			if !slices.Contains(list, address) {
				list = append(list, address)
			}
		}

		if len(list) > 0 {
			restored[sub] = list
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.wallets = restored
}
