// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx

import "code.hybscloud.com/atomix"

// Order selects the memory ordering used to publish and observe the write
// position. It parameterizes the ring types so the strictness/speed trade
// is fixed at the type level rather than per call.
//
// The ordering governs exactly two accesses: the producer's store of the
// write position after filling a slot, and the consumer's load of it before
// reading slots. The read position is private to the consumer and is always
// accessed relaxed regardless of Order.
//
// The set of orderings is closed: [Relaxed] and [AcqRel] are the only
// implementations.
type Order interface {
	loadPos(p *atomix.Uint64) uint64
	storePos(p *atomix.Uint64, v uint64)
}

// Relaxed publishes and observes the write position with relaxed atomic
// accesses. This is the default ordering.
//
// Relaxed guarantees that position values themselves are never torn, but
// establishes no happens-before edge from a slot write to the position
// store that covers it. A consumer on another core may briefly observe the
// advanced position before the slot contents. Domains that tolerate
// overwrite loss (telemetry, UI meters, scope feeds) usually tolerate this
// too; use [AcqRel] when they do not.
type Relaxed struct{}

func (Relaxed) loadPos(p *atomix.Uint64) uint64     { return p.LoadRelaxed() }
func (Relaxed) storePos(p *atomix.Uint64, v uint64) { p.StoreRelaxed(v) }

// AcqRel publishes the write position with a release store and observes it
// with an acquire load.
//
// The release/acquire pair establishes happens-before from "producer wrote
// slot i" to "consumer sees slot i covered by the position", so every slot
// the position covers holds the element that was pushed into it. Costs a
// fence on weakly ordered hardware; free on x86/TSO.
type AcqRel struct{}

func (AcqRel) loadPos(p *atomix.Uint64) uint64     { return p.LoadAcquire() }
func (AcqRel) storePos(p *atomix.Uint64, v uint64) { p.StoreRelease(v) }
