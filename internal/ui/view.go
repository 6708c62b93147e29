package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/better-sleep/internal/hud"
)

const rule = "----------------------------------------"

// fadeShades darken the screen as the fade deepens.
var fadeShades = []lipgloss.Color{"2", "28", "22", "236", "0"}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	state := m.cfg.Driver.HUD()

	var b strings.Builder
	b.WriteString(brightGreen.Render("BETTER SLEEP") + dimGreen.Render("  v"+m.cfg.Version) + "\n")
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(green.Render(m.clockText()) + "  " + dimGreen.Render(dayBar(m.cfg.Driver.DayFraction(), 24)) + "\n")
	b.WriteString(dimGreen.Render("Resting on "+m.cfg.Spot.Surface().Label()) + "\n\n")

	switch {
	case state.Selection != nil:
		b.WriteString(renderPicker(*state.Selection) + "\n")
	case state.Fade > 0:
		b.WriteString(renderFade(state.Fade) + "\n")
	default:
		for _, line := range m.messages {
			b.WriteString(green.Render(line) + "\n")
		}
	}

	if state.Banner != "" && state.Fade < 1 {
		b.WriteString("\n" + bannerBox.Render(state.Banner) + "\n")
	}
	if len(state.Debug) > 0 {
		b.WriteString("\n" + amber.Render(strings.Join(state.Debug, "\n")) + "\n")
	}

	b.WriteString("\n" + border.Render(rule) + "\n")
	b.WriteString(m.promptLine(state))
	return b.String()
}

func (m model) promptLine(state *hud.State) string {
	switch {
	case state.Selection != nil:
		return dimGreen.Render("↑/↓ five minutes, PgUp/PgDn one hour, Enter to sleep, Esc to cancel")
	case m.cfg.Driver.Sleeping():
		return dimGreen.Render("zzz")
	default:
		return brightGreen.Render("> ") + m.input + "_"
	}
}

func renderPicker(sel hud.Selection) string {
	lines := []string{
		brightGreen.Render(sel.Title),
		green.Render(sel.Current),
		"",
		brightGreen.Render(dialFace(sel.HourAngle, sel.MinuteAngle)) + "  " + brightGreen.Bold(true).Render(sel.Wake),
		"",
	}
	for _, h := range sel.Hint {
		lines = append(lines, dimGreen.Render(h))
	}
	return pickerBox.Render(strings.Join(lines, "\n"))
}

// dialFace picks a clock glyph for the hour hand, rounded to the nearest
// half hour where the font has one.
func dialFace(hourAngle, minuteAngle float64) string {
	faces := []rune("🕛🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚")
	halves := []rune("🕧🕜🕝🕞🕟🕠🕡🕢🕣🕤🕥🕦")
	hour := int(math.Floor(math.Mod(hourAngle, 360)/30)) % 12
	if hour < 0 {
		hour += 12
	}
	if minuteAngle >= 90 && minuteAngle < 270 {
		return string(halves[hour])
	}
	if minuteAngle >= 270 {
		hour = (hour + 1) % 12
	}
	return string(faces[hour])
}

func renderFade(opacity float64) string {
	idx := int(math.Round(opacity * float64(len(fadeShades)-1)))
	style := lipgloss.NewStyle().Foreground(fadeShades[idx])
	return style.Render(strings.Repeat("░", int(math.Round(opacity*40))))
}

// dayBar marks the current position within the day.
func dayBar(fraction float64, width int) string {
	if width < 2 {
		width = 2
	}
	pos := int(math.Floor(fraction * float64(width)))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	return "[" + strings.Repeat("·", pos) + "|" + strings.Repeat("·", width-pos-1) + "]"
}
