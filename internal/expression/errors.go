package expression

import "strings"

// Error is the error type for parser configuration errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrNilConfig Error = "config cannot be nil"
	ErrNilRoller Error = "roller cannot be nil"
)

// Parse error messages
const (
	msgUnmatchedClose   = "Unmatched closing parenthesis:"
	msgInvalidToken     = "Invalid token for this position in expression:"
	msgEmptyParens      = "Missing expression in parenthesis:"
	msgMissingClose     = "Missing closing parenthesis:"
	msgMissingParameter = "Missing parameter for function:"
	msgUnexpectedEnd    = "End of expression when a number or equivalent was expected:"
	msgExpectedNumber   = "Expected number or equivalent:"
	msgTooManyTokens    = "Maximum expression tokens exceeded (expression too long or complex):"
	msgUnrecognised     = "Unrecognised token in expression:"
	msgTooDeep          = "Maximum recursion depth exceeded:"
)

// ParseError describes where and why an expression failed to parse
type ParseError struct {
	// Message says what went wrong
	Message string

	// Expression is the text being parsed
	Expression string

	// Position is the index just past the byte being read when parsing failed
	Position int
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "parse expression: " + e.Message + " " + e.Expression + " at " + e.Marker()
}

// Offset is the byte index of the offending character
func (e *ParseError) Offset() int {
	if e.Position < 1 {
		return 0
	}
	return e.Position - 1
}

// Marker returns dashes up to the offending byte, then a caret
func (e *ParseError) Marker() string {
	return strings.Repeat("-", e.Offset()) + "^"
}

// Lines returns the error as the lines shown to a user
func (e *ParseError) Lines() []string {
	return []string{
		"Error parsing expression.",
		e.Message,
		e.Expression,
		e.Marker(),
	}
}
