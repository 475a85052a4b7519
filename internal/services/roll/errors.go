package roll

// RollError is a custom error type for roll engine errors
type RollError string

// Error implements the error interface
func (e RollError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig RollError = "config cannot be nil"
	ErrNilDice   RollError = "dice roller cannot be nil"

	// errRollAborted stops processing of a roll once the failing procedure
	// has replaced the results with its error lines
	errRollAborted RollError = "roll aborted"
)

// Messages shared by several procedures
const (
	msgWarningsExceeded  = "Warning: Maximum warnings exceeded; further warnings were not shown."
	msgFlavorUnavailable = "This easter egg is not available here."
)
