package gui

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/better-sleep/internal/hud"
	uitheme "github.com/appengine-ltd/better-sleep/internal/ui/theme"
)

var skyStops = []struct {
	at  float64
	clr rl.Color
}{
	{0, uitheme.SkyMidnight},
	{0.25, uitheme.SkyDawn},
	{0.5, uitheme.SkyNoon},
	{0.75, uitheme.SkyDusk},
	{1, uitheme.SkyMidnight},
}

// skyColor blends the window colour for a point in the day.
func skyColor(fraction float64) rl.Color {
	fraction = math.Mod(fraction, 1)
	if fraction < 0 {
		fraction++
	}
	for i := 1; i < len(skyStops); i++ {
		lo, hi := skyStops[i-1], skyStops[i]
		if fraction <= hi.at {
			t := (fraction - lo.at) / (hi.at - lo.at)
			return uitheme.Mix(lo.clr, hi.clr, float32(t))
		}
	}
	return uitheme.SkyMidnight
}

// handEnd is the tip of a dial hand; 0 degrees points at twelve and angles
// run clockwise.
func handEnd(center rl.Vector2, length float32, angleDeg float64) rl.Vector2 {
	rad := angleDeg * math.Pi / 180
	return rl.NewVector2(
		center.X+length*float32(math.Sin(rad)),
		center.Y-length*float32(math.Cos(rad)),
	)
}

func fadeColor(opacity float64) rl.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return rl.NewColor(0, 0, 0, uint8(math.Round(opacity*255)))
}

// celestialPos places the sun by day and the moon by night along an arc over
// the window.
func celestialPos(window rl.Rectangle, fraction float64) (rl.Vector2, bool) {
	day := fraction >= 0.25 && fraction < 0.75
	phase := math.Mod(fraction+0.75, 0.5) * 2
	x := window.X + window.Width*float32(phase)
	y := window.Y + window.Height*0.85 - window.Height*0.7*float32(math.Sin(phase*math.Pi))
	return rl.NewVector2(x, y), day
}

type sceneView struct {
	width, height int32
	fraction      float64
	clockText     string
	spotLabel     string
	tiredness     float64
	toast         string
}

func drawScene(v sceneView, state *hud.State) {
	window := rl.NewRectangle(float32(v.width)*0.55, float32(v.height)*0.12, float32(v.width)*0.32, float32(v.height)*0.38)
	rl.DrawRectangleRec(window, skyColor(v.fraction))
	pos, day := celestialPos(window, v.fraction)
	if day {
		rl.DrawCircleV(pos, 18, uitheme.AccentMoon)
	} else {
		rl.DrawCircleV(pos, 12, rl.Fade(uitheme.TextPrimary, 0.9))
	}
	rl.DrawRectangleLinesEx(window, 6, AppTheme.Border)

	bed := rl.NewRectangle(float32(v.width)*0.1, float32(v.height)*0.62, float32(v.width)*0.4, float32(v.height)*0.16)
	rl.DrawRectangleRounded(bed, 0.2, 8, AppTheme.PanelRaised)
	rl.DrawRectangleRounded(rl.NewRectangle(bed.X+spaceS, bed.Y-spaceL, bed.Width*0.25, spaceL+spaceS), 0.4, 8, rl.Fade(AppTheme.TextSecondary, 0.7))

	drawText(v.clockText, int32(spaceL), int32(spaceL), typeScale.Clock, AppTheme.TextPrimary)
	drawText("Resting on "+v.spotLabel, int32(spaceL), int32(spaceL)+textLineHeight(typeScale.Clock), typeScale.Body, AppTheme.TextSecondary)
	DrawTelemetryBar("Tiredness", int(math.Round(v.tiredness*100)),
		rl.NewRectangle(spaceL, float32(v.height)-spaceL*3, float32(v.width)*0.3, 8),
		TelemetryThresholds{Warning: 60, Danger: 85, Inverted: true})

	if state.Crosshair {
		cx, cy := float32(v.width)/2, float32(v.height)/2
		rl.DrawLineEx(rl.NewVector2(cx-8, cy), rl.NewVector2(cx+8, cy), 2, rl.Fade(AppTheme.TextPrimary, 0.8))
		rl.DrawLineEx(rl.NewVector2(cx, cy-8), rl.NewVector2(cx, cy+8), 2, rl.Fade(AppTheme.TextPrimary, 0.8))
	}
	if v.toast != "" && state.Fade == 0 && state.Selection == nil {
		uitheme.DrawHintText(v.toast, int32(spaceL), int32(v.height)-int32(spaceL*5))
	}
	uitheme.DrawHintText("Z sleep  H wait 1h  1-5 rest  0 stand  T 12/24h  F3 debug  Q quit",
		int32(spaceL), int32(v.height)-int32(spaceL*1.5))
}

func drawPicker(width, height int32, sel hud.Selection) {
	rect := rl.NewRectangle(float32(width)/2-220, float32(height)/2-230, 440, 460)
	DrawPanel(rect, sel.Title, true)

	top := rect.Y + spaceL*3
	uitheme.DrawCenteredLines(rect, top, []string{sel.Current}, typeScale.Body, AppTheme.TextSecondary)

	center := rl.NewVector2(rect.X+rect.Width/2, top+textLineHeight32(typeScale.Body)+110)
	rl.DrawCircleV(center, 96, AppTheme.Panel)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), 96, AppTheme.Border)
	for i := 0; i < 12; i++ {
		rl.DrawCircleV(handEnd(center, 84, float64(i*30)), 3, AppTheme.TextMuted)
	}
	rl.DrawLineEx(center, handEnd(center, 52, sel.HourAngle), 6, AppTheme.TextPrimary)
	rl.DrawLineEx(center, handEnd(center, 78, sel.MinuteAngle), 3, AppTheme.Accent)
	rl.DrawCircleV(center, 5, AppTheme.Accent)

	uitheme.DrawCenteredLines(rect, center.Y+110, []string{sel.Wake}, typeScale.Clock, AppTheme.Accent)
	uitheme.DrawCenteredLines(rect, center.Y+110+textLineHeight32(typeScale.Clock), sel.Hint, typeScale.Hint, AppTheme.TextMuted)
}

func drawDebug(lines []string) {
	if len(lines) == 0 {
		return
	}
	y := int32(spaceL) + textLineHeight(typeScale.Clock) + textLineHeight(typeScale.Body) + int32(spaceM)
	for _, line := range lines {
		drawText(line, int32(spaceL), y, typeScale.Hint, AppTheme.Warning)
		y += textLineHeight(typeScale.Hint)
	}
}

func drawOverlays(width, height int32, state *hud.State) {
	if state.Paused && state.Selection != nil {
		rl.DrawRectangle(0, 0, width, height, rl.Fade(rl.Black, 0.45))
	}
	if state.Selection != nil {
		drawPicker(width, height, *state.Selection)
	}
	if state.Fade > 0 {
		rl.DrawRectangle(0, 0, width, height, fadeColor(state.Fade))
	}
	if state.Banner != "" {
		uitheme.DrawBanner(width, height, strings.Split(state.Banner, "\n"))
	}
	drawDebug(state.Debug)
}

func textLineHeight32(size int32) float32 {
	return float32(textLineHeight(size))
}

func waitToast(minutes int, clockText string) string {
	return fmt.Sprintf("Waited %dh. It is now %s.", minutes/60, clockText)
}
