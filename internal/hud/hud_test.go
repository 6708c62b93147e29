package hud

import "testing"

func TestStateClampsFade(t *testing.T) {
	s := NewState()
	s.SetFade(1.7)
	if s.Fade != 1 {
		t.Fatalf("expected fade clamped to 1, got %v", s.Fade)
	}
	s.SetFade(-0.2)
	if s.Fade != 0 {
		t.Fatalf("expected fade clamped to 0, got %v", s.Fade)
	}
}

func TestStateSelectionIsCopied(t *testing.T) {
	s := NewState()
	hint := []string{"a", "b"}
	s.ShowSelection(Selection{Wake: "06:00", Hint: hint})
	hint[0] = "changed"
	if s.Selection == nil || s.Selection.Hint[0] != "a" {
		t.Fatalf("expected selection hint to be copied, got %+v", s.Selection)
	}
	s.HideSelection()
	if s.Selection != nil {
		t.Fatalf("expected selection hidden")
	}
	if !s.Crosshair {
		t.Fatalf("expected crosshair visible by default")
	}
}
