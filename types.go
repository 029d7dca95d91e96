// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx

// Buffer is the combined producer-consumer interface for a single-stream
// overwrite ring.
//
// Exactly one goroutine must act as the producer and exactly one as the
// consumer for the lifetime of an instance; the package performs no runtime
// enforcement of the assignment. Hand each side only its role interface
// ([Producer] or [Consumer]) to make the split explicit.
//
// The interface intentionally excludes length. After a lap the producer's
// lead no longer equals the element count, and reporting one would invite
// callers to treat a racing snapshot as exact. Track counts in application
// logic when needed.
//
// Example:
//
//	buf := ringx.Build[float32](ringx.New(1024))
//
//	// Producer side (e.g. audio callback)
//	buf.Push(sample)
//
//	// Consumer side (e.g. UI refresh tick)
//	for _, s := range buf.PopAll() {
//	    draw(s)
//	}
type Buffer[T any] interface {
	Producer[T]
	Consumer[T]

	// Cap returns the slot capacity.
	Cap() int
	// Clear empties the buffer. Not safe concurrently with Push or Pop;
	// run it at stream start/stop boundaries only.
	Clear()
}

// Producer is the writer-side interface of a single-stream ring.
//
// All methods are wait-free and never fail: capacity is fixed and overwrite
// absorbs any excess. The producer never observes the consumer's position.
type Producer[T any] interface {
	// Push stores one element, overwriting the oldest unread element
	// when the buffer is full.
	Push(v T)
	// PushAll pushes a batch in order; only the final Cap() elements of
	// an oversized batch are written.
	PushAll(src []T)
	// Subscribed reports the advisory flag set by the consumer. A
	// producer may skip pushing entirely while it is false.
	Subscribed() bool
}

// Consumer is the reader-side interface of a single-stream ring.
//
// All methods are non-blocking. Absence of data is reported through
// ErrWouldBlock, a non-failure control signal.
type Consumer[T any] interface {
	// Pop removes and returns the oldest surviving element.
	// Returns (zero-value, ErrWouldBlock) if nothing is available.
	Pop() (T, error)
	// PopAll removes and returns, oldest to newest, every element
	// available at the time of the call. Returns nil if none.
	PopAll() []T
	// Empty reports whether nothing is known to be available.
	Empty() bool
	// Subscribe raises the advisory interest flag.
	Subscribe()
	// Unsubscribe clears the advisory interest flag.
	Unsubscribe()
}

// StereoBuffer is the combined producer-consumer interface for a
// paired-channel overwrite ring. Role assignment rules match [Buffer].
type StereoBuffer[T any] interface {
	StereoProducer[T]
	StereoConsumer[T]

	// Cap returns the slot capacity (pairs).
	Cap() int
	// Clear empties the buffer. Not safe concurrently with Push or Pop.
	Clear()
}

// StereoProducer is the writer-side interface of a paired-channel ring.
// Both channels advance in lockstep; see [Producer] for the write
// semantics.
type StereoProducer[T any] interface {
	// Push stores one element per channel at the same slot.
	Push(a, b T)
	// PushAll pushes two equal-role batches, clipped to the shorter
	// source; only the final Cap() pairs of an oversized batch are
	// written.
	PushAll(a, b []T)
	// Subscribed reports the advisory flag set by the consumer.
	Subscribed() bool
}

// StereoConsumer is the reader-side interface of a paired-channel ring.
// See [Consumer] for the read semantics.
type StereoConsumer[T any] interface {
	// Pop removes and returns the oldest surviving pair.
	// Returns (zero, zero, ErrWouldBlock) if nothing is available.
	Pop() (a, b T, err error)
	// PopAll removes and returns both channels, oldest to newest, of
	// every pair available at the time of the call.
	PopAll() (a, b []T)
	// Empty reports whether nothing is known to be available.
	Empty() bool
	// Subscribe raises the advisory interest flag.
	Subscribe()
	// Unsubscribe clears the advisory interest flag.
	Unsubscribe()
}
