// Copyright 2026 The Ringlist Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package list

import "iter"

// List is a circular doubly linked list of nodes, anchored at a sentinel
// node that is never itself a member. Linking and unlinking are O(1) and
// allocation free.
//
// The zero value is a lazily initialized list: it reports Uninitialized
// until the first linking or iterating call bootstraps it. This form is
// meant for package-level registrar lists that are linked into from init
// functions, where no initialization order can be relied on. Use New for
// an eagerly initialized list.
type List[T any] struct {
	sentinel Node[T]
}

// New returns an initialized empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.Clear()
	return l
}

// Uninitialized returns true iff l is a zero-value list that has not been
// bootstrapped yet.
//
//go:nosplit
func (l *List[T]) Uninitialized() bool {
	return l.sentinel.Uninitialized()
}

// Clear unconditionally resets l to the empty state.
//
// Clearing a non-empty list orphans its members: they still consider
// themselves linked but are no longer reachable from l. Callers must
// unlink members first if they intend to reuse them.
func (l *List[T]) Clear() {
	l.sentinel.Init()
}

// Empty returns true iff l has no member nodes. Uninitialized lists are
// empty.
//
//go:nosplit
func (l *List[T]) Empty() bool {
	return !l.sentinel.Linked()
}

// Head returns the first node of l, or nil if l is empty.
func (l *List[T]) Head() *Node[T] {
	if l.Empty() {
		return nil
	}
	return l.sentinel.next
}

// Tail returns the last node of l, or nil if l is empty.
func (l *List[T]) Tail() *Node[T] {
	if l.Empty() {
		return nil
	}
	return l.sentinel.prev
}

// LinkHead links n as the first node of l. n must not currently be linked
// into any list. A zero-value l is bootstrapped first.
func (l *List[T]) LinkHead(n *Node[T]) {
	l.sentinel.InitOnce()
	l.sentinel.LinkNext(n)
}

// LinkTail links n as the last node of l. n must not currently be linked
// into any list. A zero-value l is bootstrapped first.
func (l *List[T]) LinkTail(n *Node[T]) {
	l.sentinel.InitOnce()
	l.sentinel.LinkPrev(n)
}

// UnlinkHead unlinks and returns the first node of l, or returns nil if l
// is empty.
func (l *List[T]) UnlinkHead() *Node[T] {
	n := l.Head()
	if n == nil {
		return nil
	}
	n.Unlink()
	return n
}

// UnlinkTail unlinks and returns the last node of l, or returns nil if l
// is empty.
func (l *List[T]) UnlinkTail() *Node[T] {
	n := l.Tail()
	if n == nil {
		return nil
	}
	n.Unlink()
	return n
}

// Len returns the number of member nodes.
//
// NOTE: This is an O(n) operation.
func (l *List[T]) Len() (count int) {
	if l.Uninitialized() {
		return 0
	}
	for n := l.sentinel.next; n != &l.sentinel; n = n.next {
		count++
	}
	return count
}

// Begin returns an iterator positioned at the first node. A zero-value l
// is bootstrapped first, so despite reading, Begin mutates an
// uninitialized list.
func (l *List[T]) Begin() Iterator[T] {
	l.sentinel.InitOnce()
	return Iterator[T]{node: l.sentinel.next}
}

// End returns the iterator positioned one past the last node. Its node is
// the sentinel and must not be treated as a member.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{node: &l.sentinel}
}

// All returns an iterator over the member nodes, front to back, for use
// with range. The node passed to the loop body may be unlinked during
// iteration.
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		l.sentinel.InitOnce()
		for n := l.sentinel.next; n != &l.sentinel; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Backward returns an iterator over the member nodes, back to front, for
// use with range. The node passed to the loop body may be unlinked during
// iteration.
func (l *List[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		l.sentinel.InitOnce()
		for n := l.sentinel.prev; n != &l.sentinel; {
			prev := n.prev
			if !yield(n) {
				return
			}
			n = prev
		}
	}
}
