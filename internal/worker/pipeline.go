package worker

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/rollengine/internal/common/clock"
	"github.com/KirkDiggler/rollengine/internal/models"
	rollService "github.com/KirkDiggler/rollengine/internal/services/roll"
)

// Pipeline runs rolls on a single dedicated goroutine. Rolls go in through
// a bounded queue and results come out through an unbounded one, so
// callers never wait on the engine.
type Pipeline struct {
	engine rollService.Service
	clock  clock.Clock

	// mu guards stopping. Submit holds it for reading while it sends, so
	// nothing can be queued once stopping is set.
	mu       sync.RWMutex
	stopping bool
	inbound  chan *models.Roll

	outMu    sync.Mutex
	outbound []*models.RollResults
	ready    chan struct{}

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a pipeline and starts its goroutine
func New(cfg *Config) (*Pipeline, error) {
	p, err := newPipeline(cfg)
	if err != nil {
		return nil, err
	}

	go p.run()
	return p, nil
}

// newPipeline creates a pipeline without starting it
func newPipeline(cfg *Config) (*Pipeline, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	size := cfg.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}

	return &Pipeline{
		engine:  cfg.Engine,
		clock:   cfg.Clock,
		inbound: make(chan *models.Roll, size),
		ready:   make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// Submit queues a roll for the engine. It never blocks: when the queue is
// full, or the pipeline is shutting down, the roll is refused and false is
// returned. A nil roll is refused too. The caller's roll is not modified.
func (p *Pipeline) Submit(roll *models.Roll) bool {
	if roll == nil {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopping {
		return false
	}

	queued := *roll
	queued.SubmittedAt = p.clock.Now()

	select {
	case p.inbound <- &queued:
		log.Printf("[worker] queued %s roll %s (%d pending)", queued.Type, queued.ID, p.Pending())
		return true
	default:
		log.Printf("[worker] queue full, refused %s roll %s", queued.Type, queued.ID)
		return false
	}
}

// Ready is signalled whenever results become available. Signals coalesce,
// so on each one the caller should Drain until it returns nil.
func (p *Pipeline) Ready() <-chan struct{} {
	return p.ready
}

// Drain returns the oldest finished results, or nil when there are none or
// the pipeline is shutting down
func (p *Pipeline) Drain() *models.RollResults {
	p.mu.RLock()
	stopping := p.stopping
	p.mu.RUnlock()
	if stopping {
		return nil
	}

	p.outMu.Lock()
	defer p.outMu.Unlock()

	if len(p.outbound) == 0 {
		return nil
	}
	results := p.outbound[0]
	p.outbound[0] = nil
	p.outbound = p.outbound[1:]
	return results
}

// Pending returns how many rolls are waiting for the engine
func (p *Pipeline) Pending() int {
	return len(p.inbound)
}

// Shutdown stops the pipeline. The roll being run is allowed to finish, then
// its results, every queued roll and every undrained result are thrown
// away. Shutdown waits for the goroutine to exit or ctx to end, and is safe
// to call more than once.
func (p *Pipeline) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopping = true
		p.mu.Unlock()

		close(p.quit)
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pipeline) run() {
	defer close(p.done)

	for {
		// Shutdown wins over queued work.
		select {
		case <-p.quit:
			p.discard()
			return
		default:
		}

		select {
		case <-p.quit:
			p.discard()
			return
		case roll := <-p.inbound:
			p.process(roll)
		}
	}
}

func (p *Pipeline) process(roll *models.Roll) {
	results := p.engine.Run(roll)
	if results == nil {
		results = &models.RollResults{}
	}
	results.RollID = roll.ID
	results.Source = roll.Source
	results.Target = roll.Target

	if results.Len() > 0 && results.OnlyErrors() {
		log.Printf("[worker] %s roll %s failed with %d error lines", roll.Type, roll.ID, results.Len())
	}

	select {
	case <-p.quit:
		// Shutdown began while the roll ran; run will discard everything.
		return
	default:
	}

	p.outMu.Lock()
	p.outbound = append(p.outbound, results)
	p.outMu.Unlock()

	select {
	case p.ready <- struct{}{}:
	default:
	}
}

// discard throws away everything still queued in either direction
func (p *Pipeline) discard() {
	// Nothing is sent once stopping is set, so the length only shrinks.
	dropped := 0
	for len(p.inbound) > 0 {
		<-p.inbound
		dropped++
	}

	p.outMu.Lock()
	undrained := len(p.outbound)
	p.outbound = nil
	p.outMu.Unlock()

	log.Printf("[worker] stopped, discarded %d queued rolls and %d undrained results", dropped, undrained)
}
