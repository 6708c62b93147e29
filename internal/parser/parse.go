package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for a list."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	best, alternates := p.registry.matchCommand(tokens)
	if best.Canonical == "" || best.Score < 0.5 {
		if inferred := inferFreeText(ctx, intent); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try sleep, sit, stand, wait, status, clock, debug, help, quit.",
		}
		return intent
	}

	if len(alternates) > 0 && best.Score-alternates[0].Score < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: best.Canonical, Kind: commandKind(best.Canonical), Verb: best.Canonical, Confidence: best.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	def, _ := p.registry.command(best.Canonical)
	intent.Verb = def.Canonical
	intent.Kind = commandKind(def.Canonical)
	intent.Confidence = clampScore(best.Score)

	args := dropFiller(tokens[best.Consumed:])
	if def.NeedsQuantity {
		var q *Quantity
		args, q = splitQuantity(args)
		if q == nil {
			intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("How long should I %s? Try %s 2h or %s 30m.", def.Canonical, def.Canonical, def.Canonical)}
			intent.Confidence = 0.42
			return intent
		}
		if q.N > MaxWaitMinutes || q.Minutes() > MaxWaitMinutes {
			intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("That is too long. You can %s at most %d hours at a time.", def.Canonical, MaxWaitMinutes/60)}
			intent.Confidence = 0.42
			return intent
		}
		intent.Quantity = q
	}

	resolved, clarify, argScore := resolveArgs(ctx, def, args)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolved
	intent.Confidence = clampScore(intent.Confidence*0.75 + argScore*0.25)

	if len(intent.Args) < def.MinArgs {
		intent.Clarify = missingArgs(ctx, def)
		intent.Confidence = 0.42
		return intent
	}
	if len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status":
		return Query
	default:
		return Command
	}
}

func dropFiller(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t {
		case "on", "in", "the", "a", "an", "my", "for", "to", "down":
			continue
		}
		out = append(out, t)
	}
	return out
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}
	switch def.Canonical {
	case "sit":
		return resolveSurface(ctx, strings.Join(args, " "))
	case "clock":
		if mode := mapClockMode(args[0]); mode != "" {
			return []string{mode}, nil, 0.95
		}
		return nil, &ClarifyQuestion{Prompt: "Use clock 12 or clock 24."}, 0.4
	default:
		return args, nil, 0.9 - 0.02*float64(len(args))
	}
}

func resolveSurface(ctx ParseContext, phrase string) ([]string, *ClarifyQuestion, float64) {
	matches, score, tie := bestMatches(normaliseInput(phrase), normaliseAll(ctx.Surfaces))
	if tie {
		return nil, &ClarifyQuestion{
			Prompt: "Which spot?",
			Options: []Intent{
				{Kind: Command, Verb: "sit", Args: []string{matches[0]}, Confidence: score},
				{Kind: Command, Verb: "sit", Args: []string{matches[1]}, Confidence: score - 0.01},
			},
		}, 0.5
	}
	if len(matches) == 0 {
		return nil, &ClarifyQuestion{Prompt: fmt.Sprintf("There is no %s to rest on here.", phrase)}, 0.4
	}
	return matches[:1], nil, score
}

func missingArgs(ctx ParseContext, def CommandDef) *ClarifyQuestion {
	if def.Canonical == "sit" {
		q := &ClarifyQuestion{Prompt: "Where should I rest?"}
		for _, s := range normaliseAll(ctx.Surfaces) {
			q.Options = append(q.Options, Intent{Kind: Command, Verb: "sit", Args: []string{s}, Confidence: 0.88})
		}
		return q
	}
	return &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
}

// bestMatches ranks candidates for token. Two results within 0.05 of each
// other are reported as a tie.
func bestMatches(token string, candidates []string) ([]string, float64, bool) {
	type scored struct {
		val   string
		score float64
	}
	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		var score float64
		switch {
		case token == cand:
			score = 1
		case len(token) >= 2 && strings.HasPrefix(cand, token):
			score = 0.9
		case len(token) >= 3 && strings.Contains(cand, token):
			score = 0.8
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	if len(results) > 1 && best.score-results[1].score < 0.05 && results[1].score > 0.6 {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func inferFreeText(ctx ParseContext, intent Intent) *Intent {
	n := intent.Normalised
	build := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		out := intent
		out.Kind = kind
		out.Verb = verb
		out.Args = args
		out.Confidence = clampScore(confidence)
		return &out
	}

	if containsAnyPhrase(n, "how tired am i", "am i tired", "what time is it", "whats the time") {
		return build(Query, "status", nil, 0.88)
	}
	if containsAnyPhrase(n, "go to bed", "get into bed", "hop in bed") {
		return build(Command, "sit", []string{"bed"}, 0.86)
	}
	if containsAnyPhrase(n, "im tired", "i m tired", "need sleep", "need some sleep", "feel sleepy") || containsWord(n, "sleep") {
		return build(Command, "sleep", nil, 0.8)
	}
	if containsAnyPhrase(n, "get out", "wake up") {
		return build(Command, "stand", nil, 0.78)
	}
	for _, token := range tokenise(n) {
		if matches, score, tie := bestMatches(token, normaliseAll(ctx.Surfaces)); !tie && len(matches) == 1 && score >= 0.9 && containsAnyPhrase(n, "sit", "lie", "rest", "climb") {
			return build(Command, "sit", matches, score-0.1)
		}
	}
	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, p := range phrases {
		if containsWord(value, p) {
			return true
		}
	}
	return false
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func normaliseAll(list []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(list))
	for _, v := range list {
		n := normaliseInput(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent back to the command a player
// would type.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	parts := []string{verb}
	for _, arg := range intent.Args {
		if n := normaliseInput(arg); n != "" {
			parts = append(parts, n)
		}
	}
	if intent.Quantity != nil {
		suffix := "h"
		if intent.Quantity.Unit == UnitMinutes {
			suffix = "m"
		}
		parts = append(parts, fmt.Sprintf("%d%s", intent.Quantity.N, suffix))
	}
	return strings.Join(parts, " ")
}
