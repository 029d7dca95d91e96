// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package activeset tracks the running subset of a pre-allocated element
// block without allocating.
//
// The intended shape is a fixed slice of elements (voices, workers,
// sessions) where only a small, non-contiguous subset is live at a time.
// Each element embeds a Link and the set threads an intrusive doubly
// linked list through the live ones, so membership changes are pointer
// swaps and iteration skips idle elements entirely.
package activeset

import "iter"

// Link carries the intrusive list pointers. Embed one in the element type
// and give New an accessor for it. The zero Link marks an unlinked
// element.
type Link[T any] struct {
	next, prev *T
}

// Set is the intrusive overlay. It owns no elements; it only threads the
// list through elements owned by the caller. Not safe for concurrent use.
type Set[T any] struct {
	head  *T
	count int
	link  func(*T) *Link[T]
}

// New creates an empty set over elements whose Link is reached by link.
func New[T any](link func(*T) *Link[T]) *Set[T] {
	return &Set[T]{link: link}
}

// Add links e into the set. Adding an element that is already a member is
// a no-op.
func (s *Set[T]) Add(e *T) {
	l := s.link(e)
	if l.next != nil || l.prev != nil || e == s.head {
		return
	}
	l.next = s.head
	if s.head != nil {
		s.link(s.head).prev = e
	}
	s.head = e
	s.count++
}

// Remove unlinks e and reports whether it was a member.
func (s *Set[T]) Remove(e *T) bool {
	l := s.link(e)
	if l.next == nil && l.prev == nil && e != s.head {
		return false
	}
	s.count--
	if e == s.head {
		s.head = l.next
	}
	if l.prev != nil {
		s.link(l.prev).next = l.next
	}
	if l.next != nil {
		s.link(l.next).prev = l.prev
	}
	l.next, l.prev = nil, nil
	return true
}

// Contains reports whether e is a member.
func (s *Set[T]) Contains(e *T) bool {
	l := s.link(e)
	return l.next != nil || l.prev != nil || e == s.head
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.count
}

// Clear unlinks every member, leaving all elements reusable.
func (s *Set[T]) Clear() {
	for s.head != nil {
		s.Remove(s.head)
	}
}

// All iterates the members, most recently added first. Removing the
// element currently yielded is allowed; removing any other member during
// iteration is not.
func (s *Set[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := s.head; e != nil; {
			next := s.link(e).next
			if !yield(e) {
				return
			}
			e = next
		}
	}
}
