package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Night palette for the bedroom scene and its overlays.
var (
	BG            = rl.NewColor(0x0E, 0x12, 0x1C, 255) // #0E121C
	Panel         = rl.NewColor(0x17, 0x1D, 0x2B, 255) // #171D2B
	PanelRaised   = rl.NewColor(0x1F, 0x27, 0x38, 255) // #1F2738
	Border        = rl.NewColor(0x34, 0x3F, 0x57, 255) // #343F57
	Divider       = rl.NewColor(0x28, 0x31, 0x45, 255) // #283145
	TextPrimary   = rl.NewColor(0xE6, 0xE4, 0xF0, 255) // #E6E4F0
	TextSecondary = rl.NewColor(0xA9, 0xAE, 0xC4, 255) // #A9AEC4
	TextMuted     = rl.NewColor(0x74, 0x7B, 0x95, 255) // #747B95
	AccentMoon    = rl.NewColor(0xF2, 0xD8, 0x8C, 255) // #F2D88C
	AccentDusk    = rl.NewColor(0x6B, 0x5B, 0xB8, 255) // #6B5BB8
	WarningAmber  = rl.NewColor(0xC1, 0x8B, 0x2F, 255) // #C18B2F
	Danger        = rl.NewColor(0xB8, 0x4A, 0x3A, 255) // #B84A3A

	SkyMidnight = rl.NewColor(0x05, 0x07, 0x14, 255)
	SkyDawn     = rl.NewColor(0xD9, 0x8C, 0x6A, 255)
	SkyNoon     = rl.NewColor(0x7F, 0xB8, 0xE6, 255)
	SkyDusk     = rl.NewColor(0x5A, 0x3E, 0x7A, 255)
)
