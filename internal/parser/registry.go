package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type phrase struct {
	canonical string
	alias     string
	tokens    []string
}

// Registry holds the console commands and every phrase that names one.
type Registry struct {
	commands map[string]CommandDef
	order    []string
	phrases  []phrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if _, exists := r.commands[c.Canonical]; !exists {
		r.order = append(r.order, c.Canonical)
	}
	r.commands[c.Canonical] = c

	for _, a := range append([]string{c.Canonical}, c.Aliases...) {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, phrase{canonical: c.Canonical, alias: n, tokens: tokenise(n)})
	}
}

// Commands lists definitions in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type match struct {
	Canonical string
	Consumed  int
	Score     float64
}

// matchCommand scores every phrase against the leading tokens: exact 1.0,
// alias 0.97, prefix 0.9, then edit distance.
func (r *Registry) matchCommand(tokens []string) (match, []match) {
	if len(tokens) == 0 {
		return match{}, nil
	}
	cands := make([]match, 0, len(r.phrases))
	for _, p := range r.phrases {
		if m, ok := scorePhrase(p, tokens); ok {
			cands = append(cands, m)
		}
	}
	if len(cands) == 0 {
		return match{}, nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		if cands[i].Consumed != cands[j].Consumed {
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Canonical < cands[j].Canonical
	})

	best := cands[0]
	seen := map[string]bool{best.Canonical: true}
	var alts []match
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
	}
	return best, alts
}

func scorePhrase(p phrase, tokens []string) (match, bool) {
	n := len(p.tokens)
	if n == 0 || len(tokens) < n {
		return match{}, false
	}
	lead := strings.Join(tokens[:n], " ")

	switch {
	case lead == p.alias && p.alias == p.canonical:
		return match{Canonical: p.canonical, Consumed: n, Score: 1}, true
	case lead == p.alias:
		return match{Canonical: p.canonical, Consumed: n, Score: 0.97}, true
	case n == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(p.alias, tokens[0]):
		return match{Canonical: p.canonical, Consumed: 1, Score: 0.9}, true
	}

	if len(lead) < 3 {
		return match{}, false
	}
	dist := levenshtein.ComputeDistance(lead, p.alias)
	if dist > levenshteinLimit(len(p.alias)) {
		return match{}, false
	}
	score := 0.72 - 0.08*float64(dist)
	if p.alias != p.canonical {
		score += 0.03
	}
	return match{Canonical: p.canonical, Consumed: n, Score: score}, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "sleep", Aliases: []string{"rest", "nap", "go to sleep", "lie down"}, Summary: "choose a wake up time and sleep"},
		{Canonical: "sit", Aliases: []string{"sit on", "sit in", "lie on", "lie in"}, MinArgs: 1, MaxArgs: 1, Summary: "rest on a spot: bed, seat, furniture, vehicle front, vehicle rear"},
		{Canonical: "stand", Aliases: []string{"stand up", "get up"}, Summary: "get up"},
		{Canonical: "wait", Aliases: []string{"pass", "idle"}, NeedsQuantity: true, Summary: "let time pass, e.g. wait 3h or wait 45m"},
		{Canonical: "status", Aliases: []string{"stats", "how tired"}, Summary: "show tiredness and time"},
		{Canonical: "clock", Aliases: []string{"time format"}, MinArgs: 1, MaxArgs: 1, Summary: "switch between 12 and 24 hour time"},
		{Canonical: "debug", Aliases: []string{"overlay"}, Summary: "toggle the debug overlay"},
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, Summary: "list commands"},
		{Canonical: "quit", Aliases: []string{"exit", "q"}, Summary: "leave the game"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
