package clock

// Source is the host game clock. Times are clock-domain values in
// [0, DayLength()), where DayLength covers one day and night segment.
// The sleep core never sets the time directly; it only requests a warp offset.
type Source interface {
	Now() float64
	DayFraction() float64
	DayLength() float64
	WarpOffset() float64
	SetWarpOffset(offset float64)
}

// Hours converts a clock-domain span into in-game hours.
func Hours(span, dayLength float64) float64 {
	if dayLength <= 0 {
		return 0
	}
	return span * 24 / dayLength
}

// Elapsed returns to-from, corrected once for a day boundary crossing. A
// result that is still negative is reported as inconsistent and clamped to 0.
func Elapsed(from, to, dayLength float64) (delta float64, ok bool) {
	delta = to - from
	if delta < 0 {
		delta += dayLength
	}
	if delta < 0 {
		return 0, false
	}
	return delta, true
}
