package earnings

import "strings"

// Statuses that never count, compared after upper-casing and trimming.
// Every other status, including unknown ones, is eligible.
var terminalStatuses = map[string]struct{}{
	"":          {},
	"TIMED-OUT": {},
	"RETURNED":  {},
	"REJECTED":  {},
}

func IsEligibleStatus(status string) bool {
	_, terminal := terminalStatuses[strings.ToUpper(strings.TrimSpace(status))]
	return !terminal
}

// Tone is the display styling of a status badge.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

func StatusTone(status string) Tone {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "approved"):
		return TonePositive
	case strings.Contains(s, "awaiting"):
		return ToneWarning
	case strings.Contains(s, "returned"), strings.Contains(s, "rejected"), strings.Contains(s, "timed"):
		return ToneNegative
	default:
		return ToneNeutral
	}
}

// Placeholder is shown for an empty study cell.
const Placeholder = "N/A"

func DisplayValue(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
