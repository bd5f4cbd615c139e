// Package callstate tracks the loading, error and result state of one
// asynchronous operation so call sites do not repeat the bookkeeping.
package callstate

import (
	"context"
	"errors"
	"sync"
)

// GenericErrorMessage is shown when a failure carries no usable message.
const GenericErrorMessage = "Something went wrong. Please try again."

// Func is the operation wrapped by a Call.
type Func[A, T any] func(ctx context.Context, args A) (T, error)

// State is a snapshot of a Call. An empty Error and a nil Data mean "none".
type State[T any] struct {
	Loading bool
	Error   string
	Data    *T
}

// Call wraps a Func with loading, error and data tracking. Each Call holds
// its own state; separate Calls never affect each other.
//
// Overlapping Execute calls are neither serialized nor cancelled. Both run
// to completion and whichever settles last decides the visible state.
type Call[A, T any] struct {
	fn        Func[A, T]
	observers []func(State[T])

	mu    sync.Mutex
	state State[T]
}

// Option configures a Call.
type Option[A, T any] func(*Call[A, T])

// WithObserver registers fn to receive the state after every transition.
// Observers are called synchronously from the goroutine that changed it.
func WithObserver[A, T any](fn func(State[T])) Option[A, T] {
	return func(c *Call[A, T]) {
		c.observers = append(c.observers, fn)
	}
}

// New returns a Call for fn in the initial state.
func New[A, T any](fn Func[A, T], opts ...Option[A, T]) *Call[A, T] {
	c := &Call[A, T]{fn: fn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs the wrapped operation with args. On success the result is
// stored and returned. On failure a display message is stored, the data is
// cleared and the original error is returned unchanged. Loading is cleared
// however the operation ends, including by panic.
func (c *Call[A, T]) Execute(ctx context.Context, args A) (result T, err error) {
	c.update(func(s *State[T]) {
		s.Loading = true
		s.Error = ""
	})

	settled := false
	defer func() {
		if settled {
			return
		}
		c.update(func(s *State[T]) {
			s.Loading = false
		})
	}()

	result, err = c.fn(ctx, args)
	settled = true
	if err != nil {
		msg := Message(err)
		c.update(func(s *State[T]) {
			s.Loading = false
			s.Error = msg
			s.Data = nil
		})
		return result, err
	}

	data := result
	c.update(func(s *State[T]) {
		s.Loading = false
		s.Error = ""
		s.Data = &data
	})
	return result, nil
}

// Reset returns the Call to its initial state.
func (c *Call[A, T]) Reset() {
	c.update(func(s *State[T]) {
		*s = State[T]{}
	})
}

// State returns the current snapshot.
func (c *Call[A, T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether an Execute is in flight.
func (c *Call[A, T]) Loading() bool {
	return c.State().Loading
}

// Err returns the message of the last failure, or "".
func (c *Call[A, T]) Err() string {
	return c.State().Error
}

// Data returns the last successful result, if there is one.
func (c *Call[A, T]) Data() (T, bool) {
	s := c.State()
	if s.Data == nil {
		var zero T
		return zero, false
	}
	return *s.Data, true
}

func (c *Call[A, T]) update(fn func(*State[T])) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state
	c.mu.Unlock()

	for _, o := range c.observers {
		o(snapshot)
	}
}

// serverMessager is implemented by errors that carry a message from the
// server, such as *api.RequestError.
type serverMessager interface {
	ServerMessage() string
}

// Message turns err into text for display. It prefers a server-provided
// message anywhere in the chain, then the error's own text, then
// GenericErrorMessage.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var sm serverMessager
	if errors.As(err, &sm) {
		if msg := sm.ServerMessage(); msg != "" {
			return msg
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return GenericErrorMessage
}
