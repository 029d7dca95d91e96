// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates a read found nothing available.
//
// Only the consumer side ever reports it: Pop returns it when the buffer is
// empty. Push paths never fail; capacity is fixed and overwrite absorbs any
// excess, so there is no full-buffer condition to signal.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// poll again later (a UI tick, or a backoff loop) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := buf.Pop()
//	    if err == nil {
//	        backoff.Reset()
//	        consume(v)
//	        continue
//	    }
//	    if ringx.IsWouldBlock(err) {
//	        backoff.Wait()  // Nothing available yet
//	        continue
//	    }
//	    return err  // Unexpected error
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates nothing was available.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil and ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
