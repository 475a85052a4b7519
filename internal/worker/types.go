package worker

import (
	"github.com/KirkDiggler/rollengine/internal/common/clock"
	rollService "github.com/KirkDiggler/rollengine/internal/services/roll"
)

// DefaultQueueSize is how many rolls may wait for the engine at once
const DefaultQueueSize = 50

// Config holds configuration for the pipeline
type Config struct {
	// Engine runs each roll. Only the pipeline's goroutine ever calls it.
	Engine rollService.Service

	// Clock stamps rolls as they are accepted
	Clock clock.Clock

	// QueueSize bounds the inbound queue; zero means DefaultQueueSize
	QueueSize int
}
