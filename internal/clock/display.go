// Package clock converts fractional day values into wall-clock text and dial
// angles, and describes the host game clock the sleep core reads from.
package clock

import (
	"fmt"
	"math"
)

const (
	MinutesPerDay = 24 * 60
	StepsPerDay   = MinutesPerDay / 5

	// FiveMinutes is five minutes expressed as a fraction of a day.
	FiveMinutes = 5.0 / MinutesPerDay

	// Values produced by step quantization land a hair below a minute mark.
	minuteEpsilon = 1e-6
)

// Normalize wraps f into [0,1).
func Normalize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Mod(f, 1)
	if f < 0 {
		f++
	}
	if f >= 1 {
		f = 0
	}
	return f
}

// Format renders a day fraction as hh:mm, or hh:mm AM/PM when use12Hour is set.
func Format(fraction float64, use12Hour bool) string {
	fraction = Normalize(fraction)
	total := int(math.Floor(fraction*MinutesPerDay + minuteEpsilon))
	if total >= MinutesPerDay {
		total = 0
	}
	hours := total / 60
	minutes := total % 60

	if use12Hour {
		period := "AM"
		if hours >= 12 {
			period = "PM"
		}
		display := hours % 12
		if display == 0 {
			display = 12
		}
		return fmt.Sprintf("%02d:%02d %s", display, minutes, period)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// DialAngles returns hand angles in degrees for a 12-hour analog face. The
// hour hand turns twice per day and the minute hand once per hour: hourAngle
// is the fraction scaled by 2 and minuteAngle the fraction scaled by 24.
func DialAngles(fraction float64) (hourAngle, minuteAngle float64) {
	deg := Normalize(fraction) * 360
	return wrapDegrees(deg * 2), wrapDegrees(deg * 24)
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Step returns the nearest 5-minute step index in [0, StepsPerDay).
func Step(fraction float64) int {
	n := int(math.Round(Normalize(fraction) * StepsPerDay))
	return WrapSteps(n)
}

// WrapSteps wraps a signed step count into [0, StepsPerDay).
func WrapSteps(n int) int {
	n %= StepsPerDay
	if n < 0 {
		n += StepsPerDay
	}
	return n
}

// FromSteps converts a step count back into a normalized day fraction.
func FromSteps(n int) float64 {
	return float64(WrapSteps(n)) / StepsPerDay
}

// Snap quantizes f to the nearest 5-minute mark.
func Snap(fraction float64) float64 {
	return FromSteps(Step(fraction))
}
