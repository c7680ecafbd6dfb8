package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prashanthm/portfolio/internal/ui"
)

func TestStore_MountAndDo(t *testing.T) {
	s := NewStore(time.Minute, 0)
	id, p := s.Mount()
	if id == "" {
		t.Fatalf("empty view id")
	}
	if !p.Mounted() || p.Doc.Listeners() != 1 {
		t.Fatalf("mounted page should hold one listener")
	}

	err := s.Do(id, func(p *ui.Page) error {
		p.ToggleDropdown()
		return nil
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if !p.Snapshot().DropdownOpen {
		t.Fatalf("toggle did not reach the page")
	}
}

func TestStore_ViewsAreIndependent(t *testing.T) {
	s := NewStore(time.Minute, 0)
	a, pa := s.Mount()
	_, pb := s.Mount()
	if err := s.Do(a, func(p *ui.Page) error { return p.SelectProject(1) }); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !pa.Snapshot().ModalOpen || pb.Snapshot().ModalOpen {
		t.Fatalf("state leaked between views")
	}
}

func TestStore_DoPropagatesErrors(t *testing.T) {
	s := NewStore(time.Minute, 0)
	id, _ := s.Mount()
	err := s.Do(id, func(p *ui.Page) error { return p.SelectProject(99) })
	if !errors.Is(err, ui.ErrUnknownProject) {
		t.Fatalf("expected ErrUnknownProject, got %v", err)
	}
}

func TestStore_Unmount(t *testing.T) {
	s := NewStore(time.Minute, 0)
	id, p := s.Mount()
	if !s.Unmount(id) {
		t.Fatalf("unmount reported missing view")
	}
	if s.Unmount(id) {
		t.Fatalf("second unmount should report missing view")
	}
	if p.Doc.Listeners() != 0 {
		t.Fatalf("unmount leaked %d listeners", p.Doc.Listeners())
	}
	if err := s.Do(id, func(*ui.Page) error { return nil }); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(10*time.Minute, 0)
	s.now = func() time.Time { return now }

	stale, stalePage := s.Mount()
	now = now.Add(8 * time.Minute)
	fresh, _ := s.Mount()

	if n := s.Sweep(now.Add(5 * time.Minute)); n != 1 {
		t.Fatalf("expected 1 swept view, got %d", n)
	}
	if stalePage.Mounted() {
		t.Fatalf("swept page still mounted")
	}
	if err := s.Do(stale, func(*ui.Page) error { return nil }); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("expected stale view gone, got %v", err)
	}
	if err := s.Do(fresh, func(*ui.Page) error { return nil }); err != nil {
		t.Fatalf("fresh view: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 view left, got %d", s.Len())
	}
}

func TestStore_DoTouchesView(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(10*time.Minute, 0)
	s.now = func() time.Time { return now }

	id, _ := s.Mount()
	now = now.Add(9 * time.Minute)
	_ = s.Do(id, func(*ui.Page) error { return nil })

	if n := s.Sweep(now.Add(5 * time.Minute)); n != 0 {
		t.Fatalf("recently used view was swept")
	}
}

func TestStore_ConcurrentDoIsSerialized(t *testing.T) {
	s := NewStore(time.Minute, 0)
	id, p := s.Mount()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(id, func(p *ui.Page) error {
				p.ToggleDropdown()
				return nil
			})
		}()
	}
	wg.Wait()
	if p.Snapshot().DropdownOpen {
		t.Fatalf("even number of toggles should leave dropdown closed")
	}
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	s := NewStore(time.Minute, 0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestStore_MountEvictsLeastRecentlyUsed(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(time.Hour, 2)
	s.now = func() time.Time { return now }

	first, firstPage := s.Mount()
	now = now.Add(time.Minute)
	second, secondPage := s.Mount()
	now = now.Add(time.Minute)
	// Touching the first view makes the second the oldest.
	_ = s.Do(first, func(*ui.Page) error { return nil })
	now = now.Add(time.Minute)
	third, _ := s.Mount()

	if s.Len() != 2 {
		t.Fatalf("expected 2 views, got %d", s.Len())
	}
	if err := s.Do(second, func(*ui.Page) error { return nil }); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("expected evicted view to be gone, got %v", err)
	}
	if secondPage.Mounted() || secondPage.Doc.Listeners() != 0 {
		t.Fatalf("evicted page still holds its listener")
	}
	if !firstPage.Mounted() {
		t.Fatalf("recently used view was evicted")
	}
	if err := s.Do(third, func(*ui.Page) error { return nil }); err != nil {
		t.Fatalf("new view: %v", err)
	}
}
