package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Quantity is a duration argument such as "8h" or "30 minutes".
type Quantity struct {
	Raw  string
	N    int
	Unit string
}

// Minutes converts the quantity to in-game minutes.
func (q Quantity) Minutes() int {
	if q.Unit == UnitHours {
		return q.N * 60
	}
	return q.N
}

const (
	UnitHours   = "hours"
	UnitMinutes = "minutes"
)

// MaxWaitMinutes is the longest duration a command accepts: ten days.
const MaxWaitMinutes = 10 * 24 * 60

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext lists what the player can refer to right now.
type ParseContext struct {
	Surfaces []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	// NeedsQuantity commands take a duration instead of arguments.
	NeedsQuantity bool
	Summary       string
}
