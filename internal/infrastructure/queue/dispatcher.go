package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Listener consumes change events.
type Listener func(ctx context.Context, event domain.ChangeEvent)

// Dispatcher fans change events out to subscribed listeners on a fixed set of
// workers. Events are sharded by medication id, so listeners observe the
// changes of one record in the order they were committed.
type Dispatcher struct {
	workers []chan domain.ChangeEvent
	log     zerolog.Logger

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
	wg        sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan domain.ChangeEvent, numWorkers),
		log:       log,
		listeners: make(map[int]Listener),
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ChangeEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Subscribe registers l and returns a func that removes it.
func (d *Dispatcher) Subscribe(l Listener) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = l
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}

// Publish routes event to the worker responsible for its medication id.
// When that worker's buffer is full the event is dropped and logged rather
// than blocking the mutating caller.
func (d *Dispatcher) Publish(event domain.ChangeEvent) {
	select {
	case d.workers[d.shardIndex(event.MedicationID)] <- event:
	default:
		d.log.Warn().
			Str("type", string(event.Type)).
			Str("medication_id", event.MedicationID).
			Msg("change event dropped, worker queue full")
	}
}

// shardIndex maps a medication id deterministically to a worker index.
func (d *Dispatcher) shardIndex(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) snapshot() []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Listener, 0, len(d.listeners))
	for _, l := range d.listeners {
		out = append(out, l)
	}
	return out
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ChangeEvent) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			for _, l := range d.snapshot() {
				d.deliver(ctx, id, l, event)
			}
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, worker int, l Listener, event domain.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Interface("panic", r).
				Str("medication_id", event.MedicationID).
				Int("worker_id", worker).
				Msg("change listener panicked")
		}
	}()
	l(ctx, event)
}
