package sleep

var qualityTiers = []struct {
	max      float64
	messages []string
}{
	{max: 0.3, messages: []string{
		"You awake feeling exhausted",
		"You awake feeling barely rested",
		"You awake feeling drained",
		"You awake with a headache and a strange sense of deja vu",
		"You awake feeling no better than before",
	}},
	{max: 0.5, messages: []string{
		"You awake feeling a bit groggy",
		"You awake feeling tired and sluggish",
		"You awake feeling somewhat unrested",
		"You awake with a strange ache in your neck, likely from sleeping poorly",
		"You awake in a haze, wondering if you even slept",
	}},
	{max: 0.7, messages: []string{
		"You awake feeling mildly rested",
		"You awake feeling a bit better, but still tired",
		"You awake feeling somewhat refreshed, but not fully",
		"You awake with a slight headache, but it's manageable",
		"You awake in the middle of a bizarre dream, feeling a little confused",
	}},
	{max: 0.9, messages: []string{
		"You awake feeling well rested",
		"You awake feeling refreshed and ready to go",
		"You awake feeling pretty good",
		"You awake feeling optimistic, like today's going to be a good day",
		"You awake feeling ready to take on the world",
	}},
}

var bestRest = []string{
	"You awake feeling fully rested and energetic",
	"You awake feeling rejuvenated and ready for the day",
	"You awake feeling excellent",
	"You awake feeling like you could take on the world",
	"You awake feeling amazing, like a new person!",
}

var earlyWake = []string{
	"You woke up earlier than you meant to",
	"You stir from sleep sooner than expected",
	"Something woke you up before you were ready",
	"Your eyes open, but it doesn't feel like enough",
	"You didn't quite sleep as long as you planned",
}

// QualityMessages returns the message pool for a quality bucket.
func QualityMessages(quality float64) []string {
	for _, tier := range qualityTiers {
		if quality <= tier.max {
			return tier.messages
		}
	}
	return bestRest
}

func EarlyWakeMessages() []string {
	return earlyWake
}

// Feedback picks the wake-up banner text.
func Feedback(rng Rand, quality float64, early bool) string {
	msg := pick(rng, QualityMessages(quality))
	if early {
		msg += "\n" + pick(rng, earlyWake)
	}
	return msg
}

func pick(rng Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.IntN(len(pool))]
}
