// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringx

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent producer/consumer tests, which trigger
// false positives: the detector cannot see the happens-before edges that
// position publication establishes through atomix, and plain slot accesses
// ride on those edges.
const RaceEnabled = true
