package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := rl.Fade(Panel, 0.92)
	stroke := Border
	strokeWidth := BorderWidth
	if variant == PanelLifted {
		fill = rl.Fade(PanelRaised, 0.95)
		stroke = Mix(Border, AccentMoon, 0.35)
		strokeWidth = BorderWidthFocus
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawCenteredLines draws lines centered horizontally in rect, starting at top.
func DrawCenteredLines(rect rl.Rectangle, top float32, lines []string, size int32, clr rl.Color) {
	step := float32(size) * Type.Leading
	for i, line := range lines {
		w := measureText(line, size)
		x := int32(rect.X + (rect.Width-float32(w))/2)
		drawText(line, x, int32(top+float32(i)*step), size, clr)
	}
}

// DrawBanner draws a message box centered near the bottom of a screen.
func DrawBanner(screenW, screenH int32, lines []string) {
	if len(lines) == 0 {
		return
	}
	var widest int32
	for _, l := range lines {
		if w := measureText(l, Type.Banner); w > widest {
			widest = w
		}
	}
	h := float32(len(lines))*float32(Type.Banner)*Type.Leading + 2*PaddingM
	w := float32(widest) + 2*PaddingL
	rect := rl.NewRectangle((float32(screenW)-w)/2, float32(screenH)-h-PaddingL*2, w, h)
	DrawPanel(rect, PanelLifted)
	DrawCenteredLines(rect, rect.Y+PaddingM, lines, Type.Banner, TextPrimary)
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextPrimary)
	w := measureText(text, Type.Header)
	lineW := int32(float32(w) * 0.6)
	if lineW < 44 {
		lineW = 44
	}
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentMoon)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Hint, TextMuted)
}

func DrawText(text string, x, y, size int32, clr rl.Color) {
	drawText(text, x, y, size, clr)
}

func MeasureText(text string, size int32) int32 {
	return measureText(text, size)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

// Mix blends a toward b by t in [0,1].
func Mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
