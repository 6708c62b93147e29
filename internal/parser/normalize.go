package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	multiSpaceRE = regexp.MustCompile(`\s+`)
	durationRE   = regexp.MustCompile(`^(\d+)(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)$`)
)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// splitQuantity pulls the first duration out of tokens. "8h", "8 h" and
// "8 hours" all parse; a bare number is taken as hours.
func splitQuantity(tokens []string) ([]string, *Quantity) {
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for i := 0; i < len(tokens); i++ {
		if q == nil {
			if candidate := parseDurationToken(tokens[i]); candidate != nil {
				q = candidate
				continue
			}
			if n, err := strconv.Atoi(tokens[i]); err == nil && n >= 0 {
				unit := UnitHours
				raw := tokens[i]
				if i+1 < len(tokens) {
					if u := durationUnit(tokens[i+1]); u != "" {
						unit = u
						raw += " " + tokens[i+1]
						i++
					}
				}
				q = &Quantity{Raw: raw, N: n, Unit: unit}
				continue
			}
		}
		out = append(out, tokens[i])
	}
	return out, q
}

func parseDurationToken(token string) *Quantity {
	m := durationRE.FindStringSubmatch(strings.TrimSpace(strings.ToLower(token)))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &Quantity{Raw: m[0], N: n, Unit: durationUnit(m[2])}
}

func durationUnit(token string) string {
	switch token {
	case "h", "hr", "hrs", "hour", "hours":
		return UnitHours
	case "m", "min", "mins", "minute", "minutes":
		return UnitMinutes
	default:
		return ""
	}
}

// mapClockMode accepts the spellings players use for the clock format.
func mapClockMode(token string) string {
	switch strings.TrimSpace(strings.ToLower(token)) {
	case "12", "12h", "am", "pm", "ampm":
		return "12"
	case "24", "24h", "military":
		return "24"
	default:
		return ""
	}
}
