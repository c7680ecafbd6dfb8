// Package session keeps one ui.Page per rendered page view so HTMX
// requests from that view drive its own dropdown and modal.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prashanthm/portfolio/internal/ui"
)

var ErrUnknownView = errors.New("unknown or expired view")

type view struct {
	mu       sync.Mutex
	page     *ui.Page
	lastUsed time.Time
}

// Store maps view ids to mounted pages.
type Store struct {
	ttl      time.Duration
	maxViews int
	now      func() time.Time

	mu    sync.Mutex
	views map[string]*view
}

// NewStore returns a store that expires views idle for longer than ttl.
// When maxViews is positive, mounting beyond it evicts the least
// recently used view.
func NewStore(ttl time.Duration, maxViews int) *Store {
	return &Store{
		ttl:      ttl,
		maxViews: maxViews,
		now:      time.Now,
		views:    make(map[string]*view),
	}
}

// Mount creates and mounts a fresh page and returns its view id.
func (s *Store) Mount() (string, *ui.Page) {
	id := uuid.NewString()
	p := ui.NewPage()
	p.Mount()

	var evicted *view
	s.mu.Lock()
	if s.maxViews > 0 && len(s.views) >= s.maxViews {
		evicted = s.evictOldestLocked()
	}
	s.views[id] = &view{page: p, lastUsed: s.now()}
	s.mu.Unlock()

	if evicted != nil {
		evicted.mu.Lock()
		evicted.page.Unmount()
		evicted.mu.Unlock()
	}
	return id, p
}

// evictOldestLocked removes the least recently used view from the map
// and returns it. s.mu must be held.
func (s *Store) evictOldestLocked() *view {
	var (
		oldestID string
		oldest   *view
		at       time.Time
	)
	for id, v := range s.views {
		v.mu.Lock()
		used := v.lastUsed
		v.mu.Unlock()
		if oldest == nil || used.Before(at) {
			oldestID, oldest, at = id, v, used
		}
	}
	if oldest != nil {
		delete(s.views, oldestID)
	}
	return oldest
}

// Do runs fn against the view's page. Calls for the same view are
// serialized.
func (s *Store) Do(id string, fn func(*ui.Page) error) error {
	s.mu.Lock()
	v, ok := s.views[id]
	s.mu.Unlock()
	if !ok {
		return ErrUnknownView
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.page.Mounted() {
		// Swept or unmounted between the lookup and the lock.
		return ErrUnknownView
	}
	v.lastUsed = s.now()
	return fn(v.page)
}

// Unmount tears the view down. It reports whether the view existed.
func (s *Store) Unmount(id string) bool {
	s.mu.Lock()
	v, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()
	if !ok {
		return false
	}

	v.mu.Lock()
	v.page.Unmount()
	v.mu.Unlock()
	return true
}

// Sweep unmounts views idle since before now minus the TTL and returns
// how many it removed.
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	var expired []*view
	s.mu.Lock()
	for id, v := range s.views {
		v.mu.Lock()
		idle := v.lastUsed.Before(cutoff)
		v.mu.Unlock()
		if idle {
			expired = append(expired, v)
			delete(s.views, id)
		}
	}
	s.mu.Unlock()

	for _, v := range expired {
		v.mu.Lock()
		v.page.Unmount()
		v.mu.Unlock()
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.Sweep(t)
		}
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}
