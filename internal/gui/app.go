// Package gui is the raylib frontend: a bedroom scene with a window onto the
// sky, the wake-time dial and the sleep fades.
package gui

import (
	"context"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/better-sleep/internal/game"
	"github.com/appengine-ltd/better-sleep/internal/host"
)

const toastDuration = 3 * time.Second

type AppConfig struct {
	Version string
	Driver  *game.Driver
	Spot    *host.Spot
	Logger  *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(ctx context.Context) error {
	ui := newGameUI(a.cfg)
	return ui.Run(ctx)
}

type gameUI struct {
	cfg  AppConfig
	keys keyState

	width  int32
	height int32

	lastTick  time.Time
	toast     string
	toastLeft time.Duration
	quit      bool
}

func newGameUI(cfg AppConfig) *gameUI {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &gameUI{
		cfg:      cfg,
		keys:     raylibKeys{},
		width:    1280,
		height:   720,
		lastTick: time.Now(),
	}
}

func (ui *gameUI) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Better Sleep "+ui.cfg.Version)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()

	for !ui.quit && !rl.WindowShouldClose() && ctx.Err() == nil {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(ctx, delta)

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(ctx context.Context, delta time.Duration) {
	d := ui.cfg.Driver
	ui.handleHotkey(ctx, readHotkey(ui.keys, d.Busy()))
	d.Frame(ctx, delta)

	if ui.toastLeft > 0 {
		ui.toastLeft -= delta
		if ui.toastLeft <= 0 {
			ui.toast = ""
		}
	}
}

func (ui *gameUI) handleHotkey(ctx context.Context, h hotkey) {
	d := ui.cfg.Driver
	switch h.action {
	case actionSleep:
		d.RequestSleep()
	case actionRest:
		ui.cfg.Spot.Sit(h.surface)
		ui.showToast("You settle onto " + h.surface.Label() + ".")
	case actionStand:
		ui.cfg.Spot.Stand()
		ui.showToast("You stand up.")
	case actionWait:
		minutes := 60
		if h.long {
			minutes = 8 * 60
		}
		if d.Wait(ctx, float64(minutes)) {
			ui.showToast(waitToast(minutes, d.ClockText()))
		}
	case actionToggleDebug:
		d.SetDebug(!d.Debug())
	case actionToggleClock:
		d.SetTwelveHour(!d.TwelveHour())
	case actionQuit:
		ui.cfg.Logger.Info("quit requested")
		ui.quit = true
	}
}

func (ui *gameUI) showToast(text string) {
	ui.toast = text
	ui.toastLeft = toastDuration
}

func (ui *gameUI) draw() {
	d := ui.cfg.Driver
	drawScene(sceneView{
		width:     ui.width,
		height:    ui.height,
		fraction:  d.DayFraction(),
		clockText: d.ClockText(),
		spotLabel: ui.cfg.Spot.Surface().Label(),
		tiredness: d.Tracker().Tiredness(),
		toast:     ui.toast,
	}, d.HUD())
	drawOverlays(ui.width, ui.height, d.HUD())
}
