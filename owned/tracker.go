package owned

import (
	"sort"
	"sync"
)

// Tracker accounts for handle lifetimes. It is safe for concurrent use.
type Tracker struct {
	mu             sync.Mutex
	live           map[string]struct{}
	created        int
	released       int
	doubleReleases int
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{live: make(map[string]struct{})}
}

// Stats is a point-in-time copy of the tracker counters.
type Stats struct {
	Created        int
	Released       int
	Live           int
	DoubleReleases int
}

// Stats returns the current counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		Created:        t.created,
		Released:       t.released,
		Live:           len(t.live),
		DoubleReleases: t.doubleReleases,
	}
}

// Live returns the number of handles created but not yet released.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Outstanding returns the sorted ids of handles not yet released.
func (t *Tracker) Outstanding() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.live))
	for id := range t.live {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (t *Tracker) onCreate(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.created++
	t.live[id] = struct{}{}
}

func (t *Tracker) onRelease(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.released++
	delete(t.live, id)
}

func (t *Tracker) onDoubleRelease(string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.doubleReleases++
}
