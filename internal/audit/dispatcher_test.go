package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	fail   bool
}

func (s *memorySink) Log(_ context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if s.fail {
		return errors.New("insert failed")
	}
	return nil
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zap.NewNop())

	d.Dispatch(Event{Action: "application_approved", Entity: "vendor_application", EntityID: "a"})
	d.Dispatch(Event{Action: "application_rejected", Entity: "vendor_application", EntityID: "b"})
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, "a", sink.events[0].EntityID)
	assert.Equal(t, "b", sink.events[1].EntityID)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sink := &memorySink{block: make(chan struct{})}
	d := NewDispatcher(sink, zap.NewNop())

	// one event may be held by the worker, the rest fill the buffer
	for i := 0; i < 150; i++ {
		d.Dispatch(Event{Action: "x"})
	}
	close(sink.block)
	d.Close()

	assert.LessOrEqual(t, len(sink.events), 101)
	assert.GreaterOrEqual(t, len(sink.events), 100)
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &memorySink{fail: true}
	d := NewDispatcher(sink, zap.NewNop())

	d.Dispatch(Event{Action: "x"})
	d.Dispatch(Event{Action: "y"})
	d.Close()

	assert.Len(t, sink.events, 2)
}
