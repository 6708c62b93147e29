package host

import "github.com/appengine-ltd/better-sleep/internal/quality"

// Spot tracks what the player is currently resting on.
type Spot struct {
	surface quality.Surface
}

func NewSpot(s quality.Surface) *Spot {
	if s == "" {
		s = quality.SurfaceNone
	}
	return &Spot{surface: s}
}

func (s *Spot) Sit(surface quality.Surface) { s.surface = surface }
func (s *Spot) Stand()                      { s.surface = quality.SurfaceNone }
func (s *Spot) Surface() quality.Surface    { return s.surface }

func (s *Spot) RestingContext() quality.RestingContext {
	return s.surface.Context()
}
