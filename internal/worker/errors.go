package worker

// WorkerError is a custom error type for pipeline errors
type WorkerError string

// Error implements the error interface
func (e WorkerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig WorkerError = "config cannot be nil"
	ErrNilEngine WorkerError = "roll engine cannot be nil"
	ErrNilClock  WorkerError = "clock cannot be nil"
)
