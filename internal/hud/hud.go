// Package hud carries display requests from the sleep core to whichever
// frontend renders them. Nothing flows back.
package hud

// Selection is the wake-time picker overlay.
type Selection struct {
	Title       string
	Current     string
	Wake        string
	Hint        []string
	HourAngle   float64
	MinuteAngle float64
}

type Surface interface {
	SetPaused(paused bool)
	SetCrosshair(visible bool)
	SetBanner(text string)
	SetFade(opacity float64)
	ShowSelection(sel Selection)
	HideSelection()
	SetDebug(lines []string)
}

// State is a Surface that keeps the latest request of every kind for a
// renderer to read each frame.
type State struct {
	Paused    bool
	Crosshair bool
	Banner    string
	Fade      float64
	Selection *Selection
	Debug     []string
}

func NewState() *State {
	return &State{Crosshair: true}
}

func (s *State) SetPaused(paused bool)     { s.Paused = paused }
func (s *State) SetCrosshair(visible bool) { s.Crosshair = visible }
func (s *State) SetBanner(text string)     { s.Banner = text }

func (s *State) SetFade(opacity float64) {
	switch {
	case opacity < 0:
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	s.Fade = opacity
}

func (s *State) ShowSelection(sel Selection) {
	sel.Hint = append([]string(nil), sel.Hint...)
	s.Selection = &sel
}

func (s *State) HideSelection() { s.Selection = nil }

func (s *State) SetDebug(lines []string) {
	s.Debug = append(s.Debug[:0], lines...)
}
