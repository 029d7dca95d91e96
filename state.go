// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx

import "code.hybscloud.com/atomix"

// state is the position pair and subscription flag shared by both ring
// shapes. The write position is advanced only by the producer and observed
// by both sides; the read position is advanced and observed only by the
// consumer, never by the producer. Both are unbounded monotonic counters,
// masked at slot access.
type state[O Order] struct {
	_          pad
	writePos   atomix.Uint64 // Producer publishes here
	_          pad
	readPos    atomix.Uint64 // Consumer private cursor
	_          pad
	subscribed atomix.Bool
	mask       uint64
}

// snapshot returns the consumer's cursor and the published write position.
// When the producer has lapped by more than the capacity, the cursor is
// advanced to the oldest element that still survives; everything older is
// already overwritten and unrecoverable.
func (s *state[O]) snapshot() (head, tail uint64) {
	var ord O
	head = s.readPos.LoadRelaxed()
	tail = ord.loadPos(&s.writePos)
	if n := s.mask + 1; tail-head > n {
		head = tail - n
	}
	return head, tail
}

// Clear resets both positions to zero, emptying the buffer. The
// subscription flag is left untouched.
//
// Clear is a maintenance operation for stream start/stop boundaries. It is
// not safe to call concurrently with an in-flight Push or Pop from the
// other side.
func (s *state[O]) Clear() {
	var ord O
	s.readPos.StoreRelaxed(0)
	ord.storePos(&s.writePos, 0)
}

// Empty reports whether nothing is known to be available.
//
// Because the producer may lap the consumer, "empty" and "lapped by exactly
// the capacity" are indistinguishable; treat a false result as "something
// may be available", not as a strict element count.
func (s *state[O]) Empty() bool {
	var ord O
	return s.readPos.LoadRelaxed() == ord.loadPos(&s.writePos)
}

// Cap returns the slot capacity.
func (s *state[O]) Cap() int {
	return int(s.mask + 1)
}

// Subscribe marks that a consumer currently cares about the contents.
//
// The flag is purely advisory: no operation is gated by it. A producer loop
// may consult Subscribed to skip pushing entirely while nobody listens.
func (s *state[O]) Subscribe() {
	s.subscribed.Store(true)
}

// Unsubscribe clears the advisory subscription flag.
func (s *state[O]) Unsubscribe() {
	s.subscribed.Store(false)
}

// Subscribed reports the advisory subscription flag.
func (s *state[O]) Subscribed() bool {
	return s.subscribed.Load()
}
