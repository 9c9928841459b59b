package event

import (
	"context"
	"errors"
	"sync"

	"go-blog/pkg/logger"

	"go.uber.org/zap"
)

// Handler receives events delivered by a Bus.
type Handler func(Event)

// Bus is an in-process publisher. Events are queued on a buffered channel
// and fanned out to subscribers once Start is called.
type Bus struct {
	events chan Event
	done   chan struct{}

	mu       sync.RWMutex
	handlers []Handler
	closed   bool
	running  bool
}

func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = 256
		logger.L.Warn("Invalid event buffer size, using default", zap.Int("default", bufferSize))
	}
	return &Bus{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish queues e. It never blocks; a full queue drops the event.
func (b *Bus) Publish(_ context.Context, e Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return errors.New("event bus is closed")
	}

	select {
	case b.events <- e:
		return nil
	default:
		logger.L.Warn("Event bus full. Dropping event.", zap.String("type", string(e.Type)))
		return errors.New("event bus is full")
	}
}

// Start launches the delivery loop. It runs until Close is called.
func (b *Bus) Start() {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.mu.Unlock()
	go b.run()
}

func (b *Bus) run() {
	defer close(b.done)
	for e := range b.events {
		b.mu.RLock()
		handlers := append([]Handler(nil), b.handlers...)
		b.mu.RUnlock()

		for _, h := range handlers {
			b.deliver(h, e)
		}
	}
}

func (b *Bus) deliver(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.L.Error("Event handler panicked", zap.String("type", string(e.Type)), zap.Any("panic", r))
		}
	}()
	h(e)
}

// Close stops accepting events and, once started, waits for it to drain the queue.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.events)
	running := b.running
	b.mu.Unlock()

	if running {
		<-b.done
	}
	return nil
}
