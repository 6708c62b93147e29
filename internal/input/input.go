// Package input describes the per-frame controls the sleep core reacts to.
// Physical bindings live in the frontends.
package input

// Frame is one polled snapshot of input.
type Frame struct {
	Cancel  bool
	Confirm bool
	// Scroll is the signed number of wheel notches since the last frame.
	Scroll int
	Up     bool
	Down   bool
	// DirectionPressed reports that Up or Down went down on this frame.
	DirectionPressed bool
}

// Direction returns +1 while up is held, -1 while down is held, 0 otherwise.
// Up wins when both are held.
func (f Frame) Direction() int {
	switch {
	case f.Up:
		return 1
	case f.Down:
		return -1
	default:
		return 0
	}
}

type Source interface {
	Poll() Frame
}

// Buffer is a Source fed by event-driven frontends. Events collected between
// polls are merged into a single frame.
type Buffer struct {
	pending Frame
	held    int
}

func (b *Buffer) Cancel()  { b.pending.Cancel = true }
func (b *Buffer) Confirm() { b.pending.Confirm = true }

func (b *Buffer) Scroll(notches int) {
	b.pending.Scroll += notches
}

// Hold marks a direction as held until Release is called.
func (b *Buffer) Hold(direction int) {
	if direction == 0 {
		b.Release()
		return
	}
	if direction != b.held {
		b.pending.DirectionPressed = true
	}
	b.held = direction
}

func (b *Buffer) Release() {
	b.held = 0
}

func (b *Buffer) Poll() Frame {
	if b == nil {
		return Frame{}
	}
	out := b.pending
	out.Up = b.held > 0
	out.Down = b.held < 0
	b.pending = Frame{}
	return out
}
