// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx

// Stereo is an overwrite ring carrying two parallel channels that advance
// in lockstep.
//
// Both channels share a single position pair: every push writes the same
// masked index in both slot arrays and every pop reads it, so the channels
// cannot drift out of alignment. The motivating shape is non-interleaved
// stereo audio, one sample per channel per slot, but any paired stream
// (value/timestamp, in/out meters) fits.
//
// Overwrite, ordering, and subscription semantics are identical to [Ring].
type Stereo[T any, O Order] struct {
	state[O]
	bufA []T
	bufB []T
}

// NewStereo creates a paired-channel ring with relaxed position ordering.
// Capacity must be a power of two; panics otherwise.
func NewStereo[T any](capacity int) *Stereo[T, Relaxed] {
	return NewStereoOrdered[T, Relaxed](capacity)
}

// NewStereoOrdered creates a paired-channel ring with position ordering O.
// Capacity must be a power of two; panics otherwise.
func NewStereoOrdered[T any, O Order](capacity int) *Stereo[T, O] {
	n := mustPow2(capacity)
	s := &Stereo[T, O]{
		bufA: make([]T, n),
		bufB: make([]T, n),
	}
	s.mask = n - 1
	return s
}

// Push stores one element per channel at the same slot, overwriting the
// oldest unread pair when the buffer is full (producer only).
func (s *Stereo[T, O]) Push(a, b T) {
	var ord O
	pos := s.writePos.LoadRelaxed()
	i := pos & s.mask
	s.bufA[i] = a
	s.bufB[i] = b
	ord.storePos(&s.writePos, pos+1)
}

// PushAll copies the two source channels into the buffer in order, as if
// each pair had been pushed individually (producer only). Mismatched
// lengths are clipped to the shorter source first; then, when the pair
// count exceeds Cap, only the final Cap pairs are copied. An empty source
// is a no-op.
func (s *Stereo[T, O]) PushAll(a, b []T) {
	count := uint64(min(len(a), len(b)))
	if count == 0 {
		return
	}
	a, b = a[:count], b[:count]
	n := s.mask + 1
	if count > n {
		a, b = a[count-n:], b[count-n:]
		count = n
	}
	var ord O
	pos := s.writePos.LoadRelaxed()
	i := pos & s.mask
	run := min(count, n-i)
	copy(s.bufA[i:], a[:run])
	copy(s.bufA, a[run:])
	copy(s.bufB[i:], b[:run])
	copy(s.bufB, b[run:])
	ord.storePos(&s.writePos, pos+count)
}

// Pop removes and returns the oldest surviving pair (consumer only).
// Returns (zero, zero, ErrWouldBlock) if nothing is available.
func (s *Stereo[T, O]) Pop() (a, b T, err error) {
	head, tail := s.snapshot()
	if head == tail {
		return a, b, ErrWouldBlock
	}

	i := head & s.mask
	a, b = s.bufA[i], s.bufB[i]
	var zero T
	s.bufA[i] = zero
	s.bufB[i] = zero
	s.readPos.StoreRelaxed(head + 1)
	return a, b, nil
}

// PopAll removes every pair available at the time of the call and returns
// the two channels oldest to newest (consumer only). Both returned slices
// always have equal length; both are nil if nothing is available.
func (s *Stereo[T, O]) PopAll() (a, b []T) {
	head, tail := s.snapshot()
	count := tail - head
	if count == 0 {
		return nil, nil
	}

	a = make([]T, count)
	b = make([]T, count)
	i := head & s.mask
	run := min(count, s.mask+1-i)
	copy(a, s.bufA[i:i+run])
	copy(a[run:], s.bufA[:count-run])
	copy(b, s.bufB[i:i+run])
	copy(b[run:], s.bufB[:count-run])
	clear(s.bufA[i : i+run])
	clear(s.bufA[:count-run])
	clear(s.bufB[i : i+run])
	clear(s.bufB[:count-run])
	s.readPos.StoreRelaxed(head + count)
	return a, b
}
