// Package event implements typed signal/slot connections between
// components that live on the same (UI) goroutine.
package event

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when disconnecting an unknown connection.
var ErrNotConnected = errors.New("connection not found")

// Connection identifies one receiver attached to a Signal.
type Connection uint64

type slot[T any] struct {
	id Connection
	fn func(T)
}

// Signal delivers values of type T to every connected receiver, in
// connection order. The zero value is ready to use.
type Signal[T any] struct {
	next  Connection
	slots []slot[T]
}

// Connect attaches fn and returns the handle needed to detach it again.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	s.next++
	s.slots = append(s.slots, slot[T]{id: s.next, fn: fn})
	return s.next
}

// Disconnect detaches the receiver registered under con
func (s *Signal[T]) Disconnect(con Connection) error {
	for i, sl := range s.slots {
		if sl.id == con {
			// copy so the backing array does not keep the closure alive
			copy(s.slots[i:], s.slots[i+1:])
			s.slots[len(s.slots)-1] = slot[T]{}
			s.slots = s.slots[:len(s.slots)-1]
			return nil
		}
	}
	return fmt.Errorf("disconnect %d: %w", con, ErrNotConnected)
}

// Receivers returns the number of connected receivers.
func (s *Signal[T]) Receivers() int {
	return len(s.slots)
}

// Emit calls every receiver with v, sequentially. Receivers connected or
// disconnected while an emit is running take effect on the next emit.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	slots := make([]slot[T], len(s.slots))
	copy(slots, s.slots)
	for _, sl := range slots {
		sl.fn(v)
	}
}
