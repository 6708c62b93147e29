package gui

import (
	"fmt"

	uitheme "github.com/appengine-ltd/better-sleep/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	AccentSoft    rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
	spaceL  = uitheme.PaddingL
)

var AppTheme = Theme{
	Background:    uitheme.BG,
	Panel:         uitheme.Panel,
	PanelRaised:   uitheme.PanelRaised,
	Border:        uitheme.Border,
	TextPrimary:   uitheme.TextPrimary,
	TextSecondary: uitheme.TextSecondary,
	TextMuted:     uitheme.TextMuted,
	Accent:        uitheme.AccentMoon,
	AccentSoft:    rl.Fade(uitheme.AccentDusk, 0.8),
	Warning:       uitheme.WarningAmber,
	Danger:        uitheme.Danger,
}

type TelemetryThresholds struct {
	Warning  int
	Danger   int
	Inverted bool
}

// DrawPanel draws a themed panel. If title is non-empty a header is drawn
// inside the panel top.
func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := uitheme.PanelStandard
	if focused {
		variant = uitheme.PanelLifted
	}
	uitheme.DrawPanel(rect, variant)
	if title != "" {
		uitheme.DrawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
	}
}

func DrawTelemetryBar(label string, value int, rect rl.Rectangle, thresholds TelemetryThresholds) {
	v := clampInt(value, 0, 100)
	barHeight := float32(8)
	if rect.Height >= 6 && rect.Height <= 10 {
		barHeight = rect.Height
	}
	labelY := int32(rect.Y)
	barY := rect.Y + float32(typeScale.Hint) + 2
	track := rl.NewRectangle(rect.X, barY, rect.Width, barHeight)
	fill := rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*float32(v)/100.0, track.Height-2)

	drawText(fmt.Sprintf("%s %d%%", label, v), int32(rect.X), labelY, typeScale.Hint, AppTheme.TextSecondary)
	rl.DrawRectangleRec(track, rl.Fade(AppTheme.PanelRaised, 0.9))
	if fill.Width > 0 {
		rl.DrawRectangleRec(fill, telemetryFillColor(v, thresholds))
	}
	rl.DrawRectangleLinesEx(track, 1.0, rl.Fade(AppTheme.Border, 0.95))
}

func telemetryFillColor(value int, thresholds TelemetryThresholds) rl.Color {
	warning := clampInt(thresholds.Warning, 0, 100)
	danger := clampInt(thresholds.Danger, 0, 100)
	if warning == 0 {
		warning = 35
	}
	if danger == 0 {
		danger = 20
	}
	if thresholds.Inverted {
		if value >= danger {
			return AppTheme.Danger
		}
		if value >= warning {
			return AppTheme.Warning
		}
		return AppTheme.AccentSoft
	}
	if value <= danger {
		return AppTheme.Danger
	}
	if value <= warning {
		return AppTheme.Warning
	}
	return AppTheme.AccentSoft
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
