package input

import "testing"

func TestBufferMergesEventsIntoOneFrame(t *testing.T) {
	var b Buffer
	b.Scroll(1)
	b.Scroll(1)
	b.Scroll(-1)
	b.Confirm()

	f := b.Poll()
	if f.Scroll != 1 {
		t.Fatalf("expected net scroll 1, got %d", f.Scroll)
	}
	if !f.Confirm || f.Cancel {
		t.Fatalf("expected confirm only, got %+v", f)
	}
	if next := b.Poll(); next != (Frame{}) {
		t.Fatalf("expected empty frame after poll, got %+v", next)
	}
}

func TestBufferHoldPersistsUntilRelease(t *testing.T) {
	var b Buffer
	b.Hold(1)
	first := b.Poll()
	if !first.Up || !first.DirectionPressed {
		t.Fatalf("expected first held frame to report press, got %+v", first)
	}
	second := b.Poll()
	if !second.Up || second.DirectionPressed {
		t.Fatalf("expected sustained hold without press, got %+v", second)
	}
	b.Hold(-1)
	third := b.Poll()
	if !third.Down || !third.DirectionPressed || third.Direction() != -1 {
		t.Fatalf("expected direction change press, got %+v", third)
	}
	b.Release()
	if f := b.Poll(); f.Up || f.Down {
		t.Fatalf("expected release, got %+v", f)
	}
}
