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

// Package ilist provides intrusive doubly linked lists: lists whose link
// nodes live inside the elements themselves, so that elements can be
// linked into lists with no per-member allocation.
//
// An element type embeds one Entry per list it can belong to, and a
// Mapper type names which entry a given list uses:
//
//	type Task struct {
//		// ...
//		all      ilist.Entry[Task]
//		runnable ilist.Entry[Task]
//	}
//
//	type allEntry struct{}
//
//	func (allEntry) EntryOf(t *Task) *ilist.Entry[Task] { return &t.all }
//
//	type runnableEntry struct{}
//
//	func (runnableEntry) EntryOf(t *Task) *ilist.Entry[Task] { return &t.runnable }
//
//	var allTasks ilist.List[Task, allEntry]
//	var runnableTasks ilist.List[Task, runnableEntry]
//
// The mapper is the forward direction of the element-entry relationship;
// the reverse direction is the element back reference the list binds into
// the entry at link time. Both are ordinary typed pointers checked at
// compile time, so no address arithmetic is involved in recovering an
// element from its entry.
//
// The zero value of List is usable: it initializes itself on first use,
// which makes package-level registrar lists safe to link into from init
// functions in any order. Lists never own their elements; the caller
// manages element lifetimes and must unlink an element before reusing or
// discarding it.
//
// Lists are not safe for concurrent use; callers must serialize access.
package ilist

import (
	"iter"

	"github.com/ringlist/ringlist/pkg/list"
)

// Entry is the link node an element type embeds, one per list the element
// can belong to. Its promoted methods (Unlink, Linked, InitOnce, ...)
// operate on that membership directly; in particular, removing an element
// from wherever it is linked is just elem.entry.Unlink().
//
// The zero value is ready to use.
type Entry[T any] = list.Node[T]

// A Mapper returns the address of the entry inside an element that a
// particular list uses. Mappers are stateless; the list instantiates the
// mapper type itself, so which entry a list links through is fixed by the
// list's type, not by runtime state. EntryOf must always return the same
// entry for the same element.
type Mapper[T any] interface {
	EntryOf(*T) *Entry[T]
}

// List is an intrusive list of *T elements, linked through the entry
// selected by M.
//
// The zero value is a lazily initialized empty list; New returns an
// eagerly initialized one.
type List[T any, M Mapper[T]] struct {
	nodes list.List[T]
}

// New returns an initialized empty list.
func New[T any, M Mapper[T]]() *List[T, M] {
	l := &List[T, M]{}
	l.nodes.Clear()
	return l
}

// Empty returns true iff l has no elements.
//
//go:nosplit
func (l *List[T, M]) Empty() bool {
	return l.nodes.Empty()
}

// Uninitialized returns true iff l is a zero-value list that has not been
// bootstrapped yet.
//
//go:nosplit
func (l *List[T, M]) Uninitialized() bool {
	return l.nodes.Uninitialized()
}

// Clear unconditionally resets l to the empty state, orphaning any
// members. See list.List.Clear.
func (l *List[T, M]) Clear() {
	l.nodes.Clear()
}

// Len returns the number of elements.
//
// NOTE: This is an O(n) operation.
func (l *List[T, M]) Len() int {
	return l.nodes.Len()
}

// LinkTail links elem at the tail of l. elem's entry must not currently
// be linked into any list.
func (l *List[T, M]) LinkTail(elem *T) {
	var m M
	e := m.EntryOf(elem)
	e.SetElem(elem)
	l.nodes.LinkTail(e)
}

// LinkHead links elem at the head of l. elem's entry must not currently
// be linked into any list.
func (l *List[T, M]) LinkHead(elem *T) {
	var m M
	e := m.EntryOf(elem)
	e.SetElem(elem)
	l.nodes.LinkHead(e)
}

// Head returns the first element of l, or nil if l is empty.
func (l *List[T, M]) Head() *T {
	n := l.nodes.Head()
	if n == nil {
		return nil
	}
	return n.Elem()
}

// Tail returns the last element of l, or nil if l is empty.
func (l *List[T, M]) Tail() *T {
	n := l.nodes.Tail()
	if n == nil {
		return nil
	}
	return n.Elem()
}

// UnlinkHead unlinks and returns the first element of l, or returns nil
// if l is empty.
func (l *List[T, M]) UnlinkHead() *T {
	n := l.nodes.UnlinkHead()
	if n == nil {
		return nil
	}
	return n.Elem()
}

// UnlinkTail unlinks and returns the last element of l, or returns nil if
// l is empty.
func (l *List[T, M]) UnlinkTail() *T {
	n := l.nodes.UnlinkTail()
	if n == nil {
		return nil
	}
	return n.Elem()
}

// Begin returns an iterator positioned at the first element; its Elem
// method yields element pointers. A zero-value l is bootstrapped first.
func (l *List[T, M]) Begin() list.Iterator[T] {
	return l.nodes.Begin()
}

// End returns the iterator positioned one past the last element.
func (l *List[T, M]) End() list.Iterator[T] {
	return l.nodes.End()
}

// All returns an iterator over the elements, front to back, for use with
// range. The element passed to the loop body may be unlinked during
// iteration.
func (l *List[T, M]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range l.nodes.All() {
			if !yield(n.Elem()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements, back to front, for use
// with range. The element passed to the loop body may be unlinked during
// iteration.
func (l *List[T, M]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range l.nodes.Backward() {
			if !yield(n.Elem()) {
				return
			}
		}
	}
}
