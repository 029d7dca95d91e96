// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx

// Options configures ring creation.
type Options struct {
	// Ordering of write-position publication
	acqrel bool

	// Capacity (must be a power of two)
	capacity int
}

// Builder creates rings with fluent configuration.
//
// Builder selects the position ordering from the configured options; the
// element type and shape are fixed by the build function.
//
// Example:
//
//	// Relaxed ordering (default)
//	buf := ringx.Build[float32](ringx.New(1024))
//
//	// Acquire/release publication
//	buf := ringx.Build[float32](ringx.New(1024).AcqRel())
//
//	// Paired channels
//	st := ringx.BuildStereo[float32](ringx.New(4096))
type Builder struct {
	opts Options
}

// New creates a ring builder with the given capacity.
//
// Capacity must be a power of two; unlike a size hint it is never rounded
// or truncated. Panics otherwise.
//
// Example:
//
//	b := ringx.New(1024).AcqRel()
//	buf := ringx.Build[Sample](b)
//
//	// Or chain directly
//	st := ringx.BuildStereo[float32](ringx.New(64))
func New(capacity int) *Builder {
	mustPow2(capacity)
	return &Builder{opts: Options{capacity: capacity}}
}

// AcqRel selects acquire/release publication of the write position instead
// of the relaxed default.
//
// Trade-off: a guaranteed happens-before edge from slot write to position
// visibility, at the cost of a fence on weakly ordered hardware. See
// [AcqRel].
func (b *Builder) AcqRel() *Builder {
	b.opts.acqrel = true
	return b
}

// Build creates a single-stream [Buffer] from the builder's options.
//
// Ordering selection:
//
//	default  → Ring[T, Relaxed]
//	AcqRel() → Ring[T, AcqRel]
//
// For compile-time concrete types, use [NewRing] or [NewRingOrdered]
// directly.
func Build[T any](b *Builder) Buffer[T] {
	if b.opts.acqrel {
		return NewRingOrdered[T, AcqRel](b.opts.capacity)
	}
	return NewRingOrdered[T, Relaxed](b.opts.capacity)
}

// BuildStereo creates a paired-channel [StereoBuffer] from the builder's
// options.
//
// Ordering selection matches [Build]. For compile-time concrete types, use
// [NewStereo] or [NewStereoOrdered] directly.
func BuildStereo[T any](b *Builder) StereoBuffer[T] {
	if b.opts.acqrel {
		return NewStereoOrdered[T, AcqRel](b.opts.capacity)
	}
	return NewStereoOrdered[T, Relaxed](b.opts.capacity)
}

// mustPow2 validates that capacity is a nonzero power of two and returns it
// widened for masking. Branch-free wraparound indexing relies on the
// power-of-two invariant, so a bad capacity is rejected here rather than
// silently adjusted.
func mustPow2(capacity int) uint64 {
	if capacity < 1 || capacity&(capacity-1) != 0 {
		panic("ringx: capacity must be a power of two")
	}
	return uint64(capacity)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
