// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringx provides lock-free single-producer single-consumer
// overwrite ring buffers.
//
// An overwrite ring is the lossy complement of a bounded queue: Push is
// wait-free and never fails, and when the producer outruns the consumer,
// the oldest unread elements are silently replaced. The consumer always
// resumes at the oldest element that survives. This is the natural shape
// for feeds where the newest data matters and stale data is disposable:
// audio meters and scope views, telemetry, progress and rate displays.
// Pipelines that must not lose elements belong on the bounded queues in
// [code.hybscloud.com/lfq] instead.
//
// Two shapes are available:
//
//   - Ring:   one element per slot
//   - Stereo: two parallel channels advancing in lockstep, one slot index
//     driving both (e.g. left/right audio, value/timestamp)
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	buf := ringx.NewRing[float32](1024)
//	st := ringx.NewStereo[float32](4096)
//
// Builder API selects the position ordering from options:
//
//	buf := ringx.Build[float32](ringx.New(1024))           // → Ring[T, Relaxed]
//	buf := ringx.Build[float32](ringx.New(1024).AcqRel())  // → Ring[T, AcqRel]
//	st := ringx.BuildStereo[float32](ringx.New(4096))      // → Stereo[T, Relaxed]
//
// # Basic Usage
//
// One goroutine pushes, one goroutine pops; neither ever blocks:
//
//	buf := ringx.NewRing[Sample](1024)
//
//	// Producer (e.g. real-time callback): wait-free, cannot fail
//	buf.Push(sample)
//
//	// Consumer (e.g. UI tick): drain whatever has arrived
//	for _, s := range buf.PopAll() {
//	    plot(s)
//	}
//
//	// Or element-wise
//	v, err := buf.Pop()
//	if ringx.IsWouldBlock(err) {
//	    // Nothing available right now
//	}
//
// # Common Patterns
//
// Meter Feed (producer skips work while nobody watches):
//
//	buf := ringx.NewRing[float32](4096)
//
//	// Audio thread
//	if buf.Subscribed() {
//	    buf.PushAll(block)
//	}
//
//	// UI side
//	buf.Subscribe()
//	defer buf.Unsubscribe()
//	for range ticker.C {
//	    render(buf.PopAll())
//	}
//
// Stereo Scope (two channels, one cursor pair):
//
//	st := ringx.NewStereo[float32](8192)
//
//	// Audio thread pushes both channels of a block
//	st.PushAll(left, right)
//
//	// UI thread receives equal-length channel slices
//	l, r := st.PopAll()
//
// # Overwrite Semantics
//
// Push performs no bounds check against the read position: the producer
// side is wait-free precisely because it never observes the consumer. The
// cost is a defined loss mode instead of backpressure:
//
//	buf := ringx.NewRing[int](4)
//	for i := range 5 {
//	    buf.Push(i) // Fifth push replaces element 0
//	}
//	buf.PopAll() // [1 2 3 4]
//
// PushAll scales the same rule to batches: only the final Cap elements of
// an oversized batch are written, exactly as if they had been pushed one at
// a time.
//
// If the producer laps the consumer while a Pop or PopAll is in flight, the
// elements returned by that call may be a torn mix of old and new data with
// no atomic snapshot guarantee. This undefined freshness is a documented
// property of the design, accepted in exchange for a wait-free producer.
// Callers that cannot tolerate it need a bounded queue, not a ring.
//
// # Memory Ordering
//
// The write position is the only value published across goroutines, and the
// ordering of that publication is a type parameter:
//
//	ringx.NewRing[T](n)                          // Relaxed (default)
//	ringx.NewRingOrdered[T, ringx.AcqRel](n)     // Release/acquire
//
// [Relaxed] matches the reference behavior: positions are never torn, but
// no happens-before edge covers the slot contents. [AcqRel] publishes with
// a release store and observes with an acquire load, guaranteeing that a
// covered slot holds its pushed element. The read position is consumer
// private and always relaxed; the producer never observes it, which is what
// makes the producer wait-free and overwrite possible.
//
// # Subscription
//
// Subscribe, Unsubscribe, and Subscribed manage an advisory flag signaling
// that a consumer currently cares about the contents. No operation is gated
// by it; it exists so a producer loop can skip pushing entirely while
// nobody listens. The flag survives Clear.
//
// # Error Handling
//
// Pop is the only operation that returns an error, and the only value it
// returns is [ErrWouldBlock], sourced from [code.hybscloud.com/iox] for
// ecosystem consistency. It is a control flow signal, not a failure; push
// paths cannot fail at all. Invalid construction (capacity not a power of
// two) panics: a violated precondition is a programmer error, reported as
// early as possible.
//
//	ringx.IsWouldBlock(err)  // true if nothing was available
//	ringx.IsSemantic(err)    // true if control flow signal
//	ringx.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Capacity and Length
//
// Capacity must be a power of two and is never rounded:
//
//	ringx.NewRing[int](1024) // ok
//	ringx.NewRing[int](1000) // panics
//
// Wraparound indexing is a single mask operation, which is the point of the
// constraint. Length is intentionally not provided: after a lap the
// producer's lead exceeds the element count, and a racing snapshot would
// invite callers to treat it as exact. Empty reports "nothing known to be
// available", which is the only honest query.
//
// # Thread Safety
//
// Exactly one producer goroutine and one consumer goroutine per instance.
// The package performs no runtime enforcement; callers assign themselves a
// role for the instance's lifetime, and the [Producer]/[Consumer] interface
// split exists to make that assignment explicit in APIs. Clear is a
// maintenance operation for quiescent moments and is not safe concurrently
// with either side. Violating the access pattern reintroduces the data
// races the single-writer single-reader design assumes away.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but cannot
// observe happens-before relationships established through atomic position
// publication on a separate variable. Slot accesses ride on those edges, so
// concurrent producer/consumer tests report false positives under the
// detector even though the protocol is correct. Such tests are excluded via
// //go:build !race; single-goroutine tests run everywhere.
//
// # Subpackages
//
// The module carries small fixed-capacity companions in the same
// real-time-friendly spirit:
//
//   - lru:       least-recently-used cache with construct-on-miss
//   - activeset: intrusive active-subset overlay for preallocated pools
//   - fixedpool: fixed-capacity object pool over an lfq free list
//   - iterx:     enumerate/zip iteration adaptors
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering. Tests additionally use [code.hybscloud.com/spin] for CPU pause
// instructions.
package ringx
