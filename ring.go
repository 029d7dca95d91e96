// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx

// Ring is a single-producer single-consumer overwrite ring buffer.
//
// Unlike a bounded queue, Push never fails and never observes the
// consumer's position: when the producer outruns the consumer by more than
// Cap elements, the oldest unread elements are silently overwritten. Pop
// and PopAll resume at the oldest element that survives. Producers that
// need backpressure instead of loss belong on lfq.SPSC.
//
// Memory: O(capacity), allocated once at construction.
type Ring[T any, O Order] struct {
	state[O]
	buf []T
}

// NewRing creates an overwrite ring with relaxed position ordering.
// Capacity must be a power of two; panics otherwise.
func NewRing[T any](capacity int) *Ring[T, Relaxed] {
	return NewRingOrdered[T, Relaxed](capacity)
}

// NewRingOrdered creates an overwrite ring with position ordering O.
// Capacity must be a power of two; panics otherwise.
func NewRingOrdered[T any, O Order](capacity int) *Ring[T, O] {
	n := mustPow2(capacity)
	r := &Ring[T, O]{buf: make([]T, n)}
	r.mask = n - 1
	return r
}

// Push stores v, overwriting the oldest unread element when the buffer is
// full (producer only). Wait-free: no bounds check against the read
// position is ever performed.
func (r *Ring[T, O]) Push(v T) {
	var ord O
	pos := r.writePos.LoadRelaxed()
	r.buf[pos&r.mask] = v
	ord.storePos(&r.writePos, pos+1)
}

// PushAll copies src into the buffer in order, as if each element had been
// pushed individually (producer only). When len(src) exceeds Cap, only the
// final Cap elements are copied; the older excess is discarded before any
// slot is written. An empty src is a no-op.
func (r *Ring[T, O]) PushAll(src []T) {
	count := uint64(len(src))
	if count == 0 {
		return
	}
	n := r.mask + 1
	if count > n {
		src = src[count-n:]
		count = n
	}
	var ord O
	pos := r.writePos.LoadRelaxed()
	i := pos & r.mask
	run := min(count, n-i)
	copy(r.buf[i:], src[:run])
	copy(r.buf, src[run:])
	ord.storePos(&r.writePos, pos+count)
}

// Pop removes and returns the oldest surviving element (consumer only).
// Returns (zero-value, ErrWouldBlock) if nothing is available.
func (r *Ring[T, O]) Pop() (T, error) {
	head, tail := r.snapshot()
	if head == tail {
		var zero T
		return zero, ErrWouldBlock
	}

	i := head & r.mask
	elem := r.buf[i]
	var zero T
	r.buf[i] = zero
	r.readPos.StoreRelaxed(head + 1)
	return elem, nil
}

// PopAll removes every element available at the time of the call and
// returns them oldest to newest (consumer only). Returns nil if nothing is
// available. Elements pushed after the internal position snapshot stay for
// a future read.
func (r *Ring[T, O]) PopAll() []T {
	head, tail := r.snapshot()
	count := tail - head
	if count == 0 {
		return nil
	}

	out := make([]T, count)
	i := head & r.mask
	run := min(count, r.mask+1-i)
	copy(out, r.buf[i:i+run])
	copy(out[run:], r.buf[:count-run])
	clear(r.buf[i : i+run])
	clear(r.buf[:count-run])
	r.readPos.StoreRelaxed(head + count)
	return out
}
