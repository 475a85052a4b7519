package roll

import (
	"strings"

	"github.com/KirkDiggler/rollengine/internal/dice"
)

func str(v float64) string {
	return dice.Format(v)
}

// strFor shows a value with the input it came from, when they differ
func strFor(v float64, input string) string {
	out := dice.Format(v)
	if out != input {
		out += " (" + input + ")"
	}
	return out
}

// twoDigits pads a percentile result to two digits
func twoDigits(v float64) string {
	out := dice.Format(v)
	if len(out) < 2 {
		out = "0" + out
	}
	return out
}

// byline names the requester when results go to someone other than them
func (s *service) byline() string {
	if s.roll.Output.HasByline() {
		return " for " + s.roll.Extra[0]
	}
	return ""
}

// requester is the display name of whoever asked for the roll
func (s *service) requester() string {
	return s.roll.Requester()
}

// message joins the free text words from index from, each with a leading
// space
func (s *service) message(from int) string {
	if from >= len(s.roll.Expression) {
		return ""
	}
	return " " + strings.Join(s.roll.Expression[from:], " ")
}

// joinValues formats values separated by single spaces
func joinValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = str(v)
	}
	return strings.Join(parts, " ")
}
