// Package ui is the terminal frontend: a bubbletea program that runs the
// sleep driver on a frame tick and reads console commands.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/better-sleep/internal/game"
	"github.com/appengine-ltd/better-sleep/internal/host"
	"github.com/appengine-ltd/better-sleep/internal/input"
	"github.com/appengine-ltd/better-sleep/internal/parser"
	"github.com/appengine-ltd/better-sleep/internal/quality"
)

const frameInterval = 50 * time.Millisecond

type AppConfig struct {
	Version string
	Driver  *game.Driver
	Keys    *input.Buffer
	Spot    *host.Spot
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(ctx context.Context) error {
	m := newModel(ctx, a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	amber       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bannerBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10")).Padding(0, 2)
	pickerBox   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1)
)

const maxMessages = 8

type frameMsg struct {
	at time.Time
}

type model struct {
	ctx    context.Context
	cfg    AppConfig
	parser *parser.Parser

	input      string
	messages   []string
	lastTickAt time.Time
	quitting   bool
}

func newModel(ctx context.Context, cfg AppConfig) model {
	if cfg.Keys == nil {
		cfg.Keys = &input.Buffer{}
	}
	if cfg.Spot == nil {
		cfg.Spot = host.NewSpot(quality.SurfaceNone)
	}
	return model{
		ctx:      ctx,
		cfg:      cfg,
		parser:   parser.New(),
		messages: []string{"Type help for commands."},
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg{at: t} })
}

func (m model) Init() tea.Cmd {
	return frameCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m.frame(msg.at)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.cfg.Driver.Selecting() {
			m.pickerKey(msg)
			return m, nil
		}
		if m.cfg.Driver.Sleeping() {
			return m, nil
		}
		return m.consoleKey(msg)
	}
	return m, nil
}

func (m model) frame(at time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTickAt.IsZero() {
		dt = at.Sub(m.lastTickAt)
	}
	if dt < 0 {
		dt = 0
	}
	m.lastTickAt = at

	wasSleeping := m.cfg.Driver.Sleeping()
	m.cfg.Driver.Frame(m.ctx, dt)
	if wasSleeping && !m.cfg.Driver.Sleeping() {
		if msg := m.cfg.Driver.Sequencer().LastOutcome().Message; msg != "" {
			m.appendMessage(strings.ReplaceAll(msg, "\n", " "))
		}
	}
	return m, frameCmd()
}

// pickerKey maps keys onto picker input. Terminals repeat held keys
// themselves, so every press is one five-minute step.
func (m *model) pickerKey(msg tea.KeyMsg) {
	keys := m.cfg.Keys
	switch msg.String() {
	case "up", "k", "+":
		keys.Scroll(1)
	case "down", "j", "-":
		keys.Scroll(-1)
	case "pgup":
		keys.Scroll(12)
	case "pgdown":
		keys.Scroll(-12)
	case "enter":
		keys.Confirm()
	case "esc", "q":
		keys.Cancel()
	}
}

func (m model) consoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		line := m.input
		m.input = ""
		return m.submit(line)
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyEsc:
		m.input = ""
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m model) parseContext() parser.ParseContext {
	ctx := parser.ParseContext{}
	for _, s := range quality.Surfaces() {
		if s != quality.SurfaceNone {
			ctx.Surfaces = append(ctx.Surfaces, string(s))
		}
	}
	return ctx
}

func (m model) submit(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	intent := m.parser.Parse(m.parseContext(), line)
	if intent.Clarify != nil {
		m.appendMessage(clarifyText(intent.Clarify))
		return m, nil
	}

	d := m.cfg.Driver
	switch intent.Verb {
	case "sleep":
		if !d.RequestSleep() {
			m.appendMessage("You can't sleep right now.")
		}
	case "sit":
		surface, ok := quality.ParseSurface(intent.Args[0])
		if !ok {
			m.appendMessage(fmt.Sprintf("There is no %s here.", intent.Args[0]))
			return m, nil
		}
		m.cfg.Spot.Sit(surface)
		m.appendMessage("You settle onto " + surface.Label() + ".")
	case "stand":
		m.cfg.Spot.Stand()
		m.appendMessage("You stand up.")
	case "wait":
		minutes := intent.Quantity.Minutes()
		if !d.Wait(m.ctx, float64(minutes)) {
			m.appendMessage("You can't wait right now.")
			return m, nil
		}
		m.appendMessage(fmt.Sprintf("You wait %s. It is now %s.", formatWait(minutes), m.clockText()))
	case "status":
		m.appendMessage(m.statusText())
	case "clock":
		d.SetTwelveHour(intent.Args[0] == "12")
		m.appendMessage("Clock set to " + intent.Args[0] + " hour time.")
	case "debug":
		d.SetDebug(!d.Debug())
	case "help":
		for _, c := range m.parser.Commands() {
			m.appendMessage(fmt.Sprintf("%-7s %s", c.Canonical, c.Summary))
		}
	case "quit":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) appendMessage(msg string) {
	m.messages = append(m.messages, msg)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

func (m model) clockText() string {
	return m.cfg.Driver.ClockText()
}

func (m model) statusText() string {
	tr := m.cfg.Driver.Tracker()
	status := tr.Status()
	text := fmt.Sprintf("It is %s. Tiredness %.0f%%, awake %.1fh, resting on %s.",
		m.clockText(), tr.Tiredness()*100, status.AwakeHours, m.cfg.Spot.Surface().Label())
	switch {
	case status.Hallucinations:
		text += " You are seeing things."
	case status.Blackouts:
		text += " You keep nodding off."
	}
	return text
}

func clarifyText(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, parser.IntentToCommandString(o))
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}

func formatWait(minutes int) string {
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	if minutes > 60 {
		return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
