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

// Package list provides circular doubly linked lists of link nodes. Lists
// link nodes in place, so membership costs no allocations; the intrusive
// element-level API built on top of this package lives in pkg/ilist.
//
// Nodes and lists come in two lifecycles. The zero value is the lazily
// initialized ("static") form: both pointers nil, bootstrapped by InitOnce
// on first use. This makes package-level lists safe to link into from init
// functions regardless of initialization order. Init (or the New
// constructor, for lists) produces the eagerly initialized form.
//
// Lists are not safe for concurrent use; callers must serialize access.
// Copying a node or list after it has been linked is undefined, since the
// neighbor pointers are positional rather than value-semantic.
package list

// A Node is one position in a circular doubly linked chain. Both the list
// sentinel and every member are nodes, so link and unlink never need to
// special-case the ends of the chain.
//
// An unlinked node points at itself. A zero-value node points nowhere and
// is treated as unlinked by every operation.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	// elem points back at the element embedding this node, when the node
	// is managed through an intrusive list. It stays nil for sentinels
	// and for nodes linked directly.
	elem *T
}

// Init resets n to the unlinked state, with both neighbors pointing at n
// itself. It must not be called while n is linked; the neighbors would be
// left pointing at a node that no longer points back.
func (n *Node[T]) Init() {
	n.prev = n
	n.next = n
}

// InitOnce initializes n only if it is still in the zero state. It is
// idempotent and safe to call at every entry point that might be the first
// touch of a lazily initialized node.
func (n *Node[T]) InitOnce() {
	if n.next == nil && n.prev == nil {
		n.Init()
	}
}

// Uninitialized returns true iff n is still in the zero state. Only
// lazily initialized nodes are ever in this state.
//
//go:nosplit
func (n *Node[T]) Uninitialized() bool {
	return n.next == nil && n.prev == nil
}

// Linked returns true iff n currently participates in a chain with at
// least one other node. It is safe on uninitialized nodes.
//
//go:nosplit
func (n *Node[T]) Linked() bool {
	return n.next != nil && n.next != n
}

// Next returns n's successor. The caller does not own the result.
//
//go:nosplit
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns n's predecessor. The caller does not own the result.
//
//go:nosplit
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Elem returns the element bound to n, or nil if n is a sentinel or a
// plain node.
//
//go:nosplit
func (n *Node[T]) Elem() *T {
	return n.elem
}

// SetElem binds e as the element containing n. It is normally called by
// the intrusive list, not directly.
func (n *Node[T]) SetElem(e *T) {
	n.elem = e
}

// LinkNext splices m into the chain immediately after n. n must be part
// of a valid chain (a linked node or an initialized sentinel); m must be
// unlinked. A zero-value m is initialized first, so lazily initialized
// nodes may be linked without an explicit bootstrap.
func (n *Node[T]) LinkNext(m *Node[T]) {
	if n.next == nil {
		panic("list: LinkNext on uninitialized node")
	}
	m.InitOnce()
	if m.Linked() {
		panic("list: LinkNext of already linked node")
	}

	m.prev = n
	m.next = n.next

	// Point the neighbors at m last; the order matters.
	n.next.prev = m
	n.next = m
}

// LinkPrev splices m into the chain immediately before n. The contract is
// symmetric to LinkNext.
func (n *Node[T]) LinkPrev(m *Node[T]) {
	if n.prev == nil {
		panic("list: LinkPrev on uninitialized node")
	}
	m.InitOnce()
	if m.Linked() {
		panic("list: LinkPrev of already linked node")
	}

	m.next = n
	m.prev = n.prev

	n.prev.next = m
	n.prev = m
}

// Unlink removes n from whatever chain it is in and resets it to the
// unlinked state, so Linked reports false immediately afterwards.
// Unlinking a node that is not linked is a no-op, which keeps idempotent
// teardown paths simple.
func (n *Node[T]) Unlink() {
	if !n.Linked() {
		n.InitOnce()
		return
	}

	// Point the neighbors at each other, skipping n.
	n.prev.next = n.next
	n.next.prev = n.prev

	n.Init()
}
