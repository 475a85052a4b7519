package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rollengine/internal/models"
)

// maxMessageLength is the longest message Discord accepts
const maxMessageLength = 2000

// rendered is a roll's results sorted by where they are shown
type rendered struct {
	// chat is shown to the roll's audience
	chat []string

	// errors are shown only to the requester
	errors []string

	// moderation is carried out after everything else, in order
	moderation []models.Line
}

// renderResults decodes results and formats each line as Discord markdown
func renderResults(results *models.RollResults) (*rendered, error) {
	lines, err := results.Lines()
	if err != nil {
		return nil, err
	}

	out := &rendered{}
	for _, line := range lines {
		switch {
		case line.Kind == models.ResultError:
			out.errors = append(out.errors, line.Data[0])
		case line.Kind.IsModeration():
			out.moderation = append(out.moderation, line)
		default:
			out.chat = append(out.chat, renderLine(line))
		}
	}
	return out, nil
}

func renderLine(line models.Line) string {
	switch line.Kind {
	case models.ResultAction:
		return "*" + line.Data[0] + "*"
	case models.ResultNPCMessage:
		return "**" + line.Data[0] + "**: " + line.Data[1]
	case models.ResultNPCAction:
		return "***" + line.Data[0] + "** " + line.Data[1] + "*"
	case models.ResultScene:
		return "> " + line.Data[0]
	default:
		return line.Data[0]
	}
}

// chunk joins lines into as few messages as fit Discord's length limit.
// A single line longer than the limit is cut on a rune boundary.
func chunk(lines []string) []string {
	var messages []string
	var current strings.Builder

	for _, line := range lines {
		for len(line) > maxMessageLength {
			if current.Len() > 0 {
				messages = append(messages, current.String())
				current.Reset()
			}
			cut := maxMessageLength
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			messages = append(messages, line[:cut])
			line = line[cut:]
		}

		if current.Len() > 0 && current.Len()+1+len(line) > maxMessageLength {
			messages = append(messages, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}

	if current.Len() > 0 {
		messages = append(messages, current.String())
	}
	return messages
}
