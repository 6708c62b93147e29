// Package quality scores how restful a sleep will be from where the player is
// resting.
package quality

import "strings"

// Location scores. These are balance values; keep them in sync with the
// feedback tiers in the sleep package.
const (
	ScoreStanding  = 0.1
	ScoreFurniture = 0.25
	ScoreSeat      = 0.4
	ScoreFrontSeat = 0.55
	ScoreRearSeat  = 0.7
	ScoreBed       = 1.0
)

// RestingContext describes what the player is on at the moment sleep is
// committed.
type RestingContext struct {
	Seated bool
	// Furniture marks seating that belongs to the fixed world, such as
	// roadside benches.
	Furniture bool
	Vehicle   bool
	// Driver marks a front or driver seat of a vehicle.
	Driver bool
	Bed    bool
}

type ContextSource interface {
	RestingContext() RestingContext
}

// EnvironmentScorer scales the location score by surroundings. Only a fixed
// scorer exists today.
type EnvironmentScorer interface {
	Score(RestingContext) float64
}

type FixedEnvironment float64

func (f FixedEnvironment) Score(RestingContext) float64 { return float64(f) }

type Evaluator struct {
	Environment EnvironmentScorer
}

func NewEvaluator() Evaluator {
	return Evaluator{Environment: FixedEnvironment(1)}
}

func (e Evaluator) Evaluate(rc RestingContext) float64 {
	env := 1.0
	if e.Environment != nil {
		env = e.Environment.Score(rc)
	}
	return clamp01(LocationScore(rc) * env)
}

// LocationScore applies the first matching rule.
func LocationScore(rc RestingContext) float64 {
	switch {
	case !rc.Seated:
		return ScoreStanding
	case rc.Furniture:
		return ScoreFurniture
	case rc.Vehicle && rc.Driver:
		return ScoreFrontSeat
	case rc.Vehicle:
		return ScoreRearSeat
	case rc.Bed:
		return ScoreBed
	default:
		return ScoreSeat
	}
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Surface names a resting spot for configuration and console use.
type Surface string

const (
	SurfaceNone         Surface = "none"
	SurfaceSeat         Surface = "seat"
	SurfaceFurniture    Surface = "furniture"
	SurfaceVehicleFront Surface = "vehicle_front"
	SurfaceVehicleRear  Surface = "vehicle_rear"
	SurfaceBed          Surface = "bed"
)

func Surfaces() []Surface {
	return []Surface{SurfaceNone, SurfaceSeat, SurfaceFurniture, SurfaceVehicleFront, SurfaceVehicleRear, SurfaceBed}
}

func ParseSurface(s string) (Surface, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	for _, surface := range Surfaces() {
		if string(surface) == s {
			return surface, true
		}
	}
	return "", false
}

func (s Surface) Context() RestingContext {
	switch s {
	case SurfaceSeat:
		return RestingContext{Seated: true}
	case SurfaceFurniture:
		return RestingContext{Seated: true, Furniture: true}
	case SurfaceVehicleFront:
		return RestingContext{Seated: true, Vehicle: true, Driver: true}
	case SurfaceVehicleRear:
		return RestingContext{Seated: true, Vehicle: true}
	case SurfaceBed:
		return RestingContext{Seated: true, Bed: true}
	default:
		return RestingContext{}
	}
}

func (s Surface) Label() string {
	switch s {
	case SurfaceSeat:
		return "a seat"
	case SurfaceFurniture:
		return "a roadside bench"
	case SurfaceVehicleFront:
		return "the driver seat"
	case SurfaceVehicleRear:
		return "the back seat"
	case SurfaceBed:
		return "a bed"
	default:
		return "your feet"
	}
}
