package theme

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextRenderer draws and measures text in the frontend's active font.
type TextRenderer struct {
	Draw    func(text string, x, y, size int32, clr rl.Color)
	Measure func(text string, size int32) int32
}

// Scale is the type ramp for the night scene. The clock reading is the
// largest element; hints sit below body text.
type Scale struct {
	Clock   int32
	Header  int32
	Body    int32
	Hint    int32
	Banner  int32
	Leading float32
}

var Type = Scale{
	Clock:   44,
	Header:  26,
	Body:    20,
	Hint:    15,
	Banner:  24,
	Leading: 1.45,
}

// LineHeight is the baseline-to-baseline distance for size.
func (s Scale) LineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(s.Leading)))
}

var renderer = TextRenderer{
	Draw: func(text string, x, y, size int32, clr rl.Color) {
		rl.DrawText(text, x, y, size, clr)
	},
	Measure: func(text string, size int32) int32 {
		return int32(rl.MeasureText(text, size))
	},
}

// UseRenderer swaps in the frontend's font; nil fields keep raylib's default.
func UseRenderer(r TextRenderer) {
	if r.Draw != nil {
		renderer.Draw = r.Draw
	}
	if r.Measure != nil {
		renderer.Measure = r.Measure
	}
}

func drawText(text string, x, y, size int32, clr rl.Color) {
	renderer.Draw(text, x, y, size, clr)
}

func measureText(text string, size int32) int32 {
	return renderer.Measure(text, size)
}
