package ui

import "testing"

func TestDocument_DispatchOrderAndRelease(t *testing.T) {
	doc := &Document{}
	var got []string
	a := doc.AddPointerDownListener(func(Target) { got = append(got, "a") })
	doc.AddPointerDownListener(func(Target) { got = append(got, "b") })

	doc.PointerDown(Target{})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected dispatch order %v", got)
	}

	a.Release()
	a.Release()
	got = nil
	doc.PointerDown(Target{})
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("released listener still called: %v", got)
	}
	if doc.Listeners() != 1 {
		t.Fatalf("expected 1 listener, got %d", doc.Listeners())
	}
}

func TestDocument_ListenerMayReleaseItself(t *testing.T) {
	doc := &Document{}
	calls := 0
	var sub *Subscription
	sub = doc.AddPointerDownListener(func(Target) {
		calls++
		sub.Release()
	})
	doc.AddPointerDownListener(func(Target) { calls++ })

	doc.PointerDown(Target{})
	doc.PointerDown(Target{})
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tc := range cases {
		if got := r.Contains(Target{X: tc.x, Y: tc.y}); got != tc.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	if (Rect{}).Contains(Target{}) {
		t.Fatalf("zero rect must contain nothing")
	}
}
