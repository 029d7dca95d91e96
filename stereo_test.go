// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringx_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/ringx"
)

// =============================================================================
// Stereo - Basic Operations
// =============================================================================

// TestStereoBasic tests paired push/pop in FIFO order within capacity.
func TestStereoBasic(t *testing.T) {
	st := ringx.NewStereo[int](4)

	if st.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", st.Cap())
	}
	if !st.Empty() {
		t.Fatal("Empty on fresh buffer: got false, want true")
	}

	for i := range 4 {
		st.Push(i, -i)
	}

	for i := range 4 {
		a, b, err := st.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if a != i || b != -i {
			t.Fatalf("Pop(%d): got (%d, %d), want (%d, %d)", i, a, b, i, -i)
		}
	}

	if _, _, err := st.Pop(); !errors.Is(err, ringx.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestStereoPopAll verifies channel ordering: pairs come back as two
// equal-length channel slices in push order.
func TestStereoPopAll(t *testing.T) {
	st := ringx.NewStereo[int](4)

	st.Push(0, 1)
	st.Push(2, 3)

	a, b := st.PopAll()
	if want := []int{0, 2}; !slices.Equal(a, want) {
		t.Fatalf("channel A: got %v, want %v", a, want)
	}
	if want := []int{1, 3}; !slices.Equal(b, want) {
		t.Fatalf("channel B: got %v, want %v", b, want)
	}

	a, b = st.PopAll()
	if a != nil || b != nil {
		t.Fatalf("PopAll after drain: got (%v, %v), want (nil, nil)", a, b)
	}
}

// TestStereoOverwrite laps the consumer; both channels lose the same oldest
// pairs.
func TestStereoOverwrite(t *testing.T) {
	st := ringx.NewStereo[int](4)

	for i := range 7 { // pairs 0,1,2 overwritten
		st.Push(i, i+100)
	}

	a, b := st.PopAll()
	if want := []int{3, 4, 5, 6}; !slices.Equal(a, want) {
		t.Fatalf("channel A: got %v, want %v", a, want)
	}
	if want := []int{103, 104, 105, 106}; !slices.Equal(b, want) {
		t.Fatalf("channel B: got %v, want %v", b, want)
	}
}

// TestStereoLockstep interleaves singles, batches, laps, and drains; the
// channels must stay aligned through all of it.
func TestStereoLockstep(t *testing.T) {
	st := ringx.NewStereo[int](8)

	pair := 0
	push := func(n int) {
		for range n {
			st.Push(pair, pair*3)
			pair++
		}
	}

	push(5)
	a, b := st.PopAll()
	checkAligned(t, a, b)

	push(11) // laps
	if _, _, err := st.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	push(2)
	a, b = st.PopAll()
	checkAligned(t, a, b)

	st.PushAll([]int{500, 501, 502}, []int{1500, 1503, 1506})
	a2, b2, err := st.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if a2 != 500 || b2 != 1500 {
		t.Fatalf("Pop: got (%d, %d), want (500, 1500)", a2, b2)
	}
}

// checkAligned asserts the two channels have equal length and hold the
// lockstep pattern (v, v*3) pair by pair.
func checkAligned(t *testing.T, a, b []int) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("channel lengths: got %d and %d", len(a), len(b))
	}
	for i := range a {
		if b[i] != a[i]*3 {
			t.Fatalf("pair %d: got (%d, %d), want aligned (%d, %d)", i, a[i], b[i], a[i], a[i]*3)
		}
	}
}

// =============================================================================
// Stereo - Batch Operations
// =============================================================================

// TestStereoPushAllMismatched clips to the shorter source before anything
// is written.
func TestStereoPushAllMismatched(t *testing.T) {
	st := ringx.NewStereo[int](8)

	st.PushAll([]int{1, 2, 3, 4, 5}, []int{10, 20})

	a, b := st.PopAll()
	if want := []int{1, 2}; !slices.Equal(a, want) {
		t.Fatalf("channel A: got %v, want %v", a, want)
	}
	if want := []int{10, 20}; !slices.Equal(b, want) {
		t.Fatalf("channel B: got %v, want %v", b, want)
	}

	st.PushAll(nil, []int{1, 2, 3})
	if !st.Empty() {
		t.Fatal("Empty after nil-channel batch: got false, want true")
	}
}

// TestStereoPushAllOversized verifies the oversized-batch rule applies to
// the pair count: only the final Cap pairs are written.
func TestStereoPushAllOversized(t *testing.T) {
	const capacity = 4
	st := ringx.NewStereo[int](capacity)

	as := make([]int, 11)
	bs := make([]int, 11)
	for i := range as {
		as[i] = i
		bs[i] = i + 1000
	}

	st.PushAll(as, bs)

	a, b := st.PopAll()
	if want := []int{7, 8, 9, 10}; !slices.Equal(a, want) {
		t.Fatalf("channel A: got %v, want %v", a, want)
	}
	if want := []int{1007, 1008, 1009, 1010}; !slices.Equal(b, want) {
		t.Fatalf("channel B: got %v, want %v", b, want)
	}
}

// TestStereoPushAllWrapped exercises the two-run write on both channels.
func TestStereoPushAllWrapped(t *testing.T) {
	st := ringx.NewStereo[int](4)

	st.Push(0, 0)
	st.Push(0, 0)
	st.Push(0, 0)
	st.PopAll() // cursors at 3

	st.PushAll([]int{1, 2, 3}, []int{-1, -2, -3}) // slot 3, then 0,1

	a, b := st.PopAll()
	if want := []int{1, 2, 3}; !slices.Equal(a, want) {
		t.Fatalf("channel A: got %v, want %v", a, want)
	}
	if want := []int{-1, -2, -3}; !slices.Equal(b, want) {
		t.Fatalf("channel B: got %v, want %v", b, want)
	}
}

// =============================================================================
// Stereo - Clear and Subscription
// =============================================================================

// TestStereoClear mirrors the single-stream Clear contract.
func TestStereoClear(t *testing.T) {
	st := ringx.NewStereo[int](4)
	st.Subscribe()
	for i := range 6 {
		st.Push(i, i)
	}

	st.Clear()

	if !st.Empty() {
		t.Fatal("Empty after Clear: got false, want true")
	}
	if _, _, err := st.Pop(); !errors.Is(err, ringx.ErrWouldBlock) {
		t.Fatalf("Pop after Clear: got %v, want ErrWouldBlock", err)
	}
	if !st.Subscribed() {
		t.Fatal("Subscribed after Clear: got false, want true")
	}

	st.Push(5, 6)
	a, b, err := st.Pop()
	if err != nil || a != 5 || b != 6 {
		t.Fatalf("Pop after Clear+Push: got (%d, %d, %v), want (5, 6, nil)", a, b, err)
	}
}
