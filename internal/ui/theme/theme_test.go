package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMixClampsAndBlends(t *testing.T) {
	a := rl.NewColor(0, 0, 0, 255)
	b := rl.NewColor(200, 100, 50, 255)

	if got := Mix(a, b, 0.5); got != rl.NewColor(100, 50, 25, 255) {
		t.Fatalf("expected midpoint, got %+v", got)
	}
	if got := Mix(a, b, -1); got != a {
		t.Fatalf("expected clamp to a, got %+v", got)
	}
	if got := Mix(a, b, 2); got != b {
		t.Fatalf("expected clamp to b, got %+v", got)
	}
}

func TestLineHeightFollowsLeading(t *testing.T) {
	if got := Type.LineHeight(20); got != 29 {
		t.Fatalf("expected 29 for 20px body, got %d", got)
	}
	if got := Type.LineHeight(0); got != 1 {
		t.Fatalf("expected sizes below one clamped, got %d", got)
	}
}

func TestUseRendererKeepsDefaultsForNilFields(t *testing.T) {
	saved := renderer
	defer func() { renderer = saved }()

	UseRenderer(TextRenderer{Measure: func(text string, size int32) int32 { return int32(len(text)) * size }})
	if got := MeasureText("zzz", 10); got != 30 {
		t.Fatalf("expected custom measure, got %d", got)
	}
	if renderer.Draw == nil {
		t.Fatalf("expected draw to keep the default")
	}
}
