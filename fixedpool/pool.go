// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixedpool provides a fixed-capacity object pool over a single
// pre-allocated block.
//
// All objects live in one slice allocated up front; Acquire and Release
// move indices through a lock-free free list, so steady-state operation
// performs no allocation and takes no locks. Use it where objects must
// come from a bounded, pre-faulted region: sample buffers, voice state,
// packet frames.
//
// The pool is safe for concurrent use by any number of goroutines.
package fixedpool

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// Pool hands out pointers into a fixed block of capacity objects.
type Pool[T any] struct {
	slots []T
	used  []atomix.Uint64
	free  lfq.QueueIndirect
	inUse atomix.Int64
}

// New creates a pool of capacity objects.
// Panics if capacity is not positive or T has zero size.
func New[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		panic("fixedpool: capacity must be positive")
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("fixedpool: element type must have nonzero size")
	}

	freeCap := capacity
	if freeCap < 2 {
		freeCap = 2
	}
	p := &Pool[T]{
		slots: make([]T, capacity),
		used:  make([]atomix.Uint64, capacity),
		free:  lfq.New(freeCap).Compact().BuildIndirect(),
	}
	for i := range capacity {
		p.free.Enqueue(uintptr(i))
	}
	return p
}

// Acquire takes a zero-valued object from the pool.
// Returns ErrWouldBlock when the pool is exhausted.
func (p *Pool[T]) Acquire() (*T, error) {
	idx, err := p.free.Dequeue()
	if err != nil {
		return nil, err
	}
	p.used[idx].StoreRelease(1)
	p.inUse.Add(1)
	return &p.slots[idx], nil
}

// Release returns obj to the pool, clearing it first.
// Panics if obj did not come from this pool or was already released.
func (p *Pool[T]) Release(obj *T) {
	idx := p.indexOf(obj)
	if !p.used[idx].CompareAndSwapAcqRel(1, 0) {
		panic("fixedpool: release of object not acquired")
	}
	var zero T
	*obj = zero
	p.inUse.Add(-1)
	p.free.Enqueue(uintptr(idx))
}

// Cap returns the number of objects in the block.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// InUse returns the number of objects currently acquired.
func (p *Pool[T]) InUse() int {
	return int(p.inUse.Load())
}

func (p *Pool[T]) indexOf(obj *T) int {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.slots)))
	size := unsafe.Sizeof(p.slots[0])
	off := uintptr(unsafe.Pointer(obj)) - base
	if off%size != 0 || off/size >= uintptr(len(p.slots)) {
		panic("fixedpool: release of foreign pointer")
	}
	return int(off / size)
}
