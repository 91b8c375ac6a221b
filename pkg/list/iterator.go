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

// Iterator is a position within a list. Iterators are plain values:
// advancing returns a new iterator, and two iterators compare equal iff
// they reference the same node. Comparing iterators obtained from
// different lists is meaningless.
//
// The position returned by End references the list sentinel; stepping it
// wraps around the circular chain, and its Elem is nil.
type Iterator[T any] struct {
	node *Node[T]
}

// Node returns the node at the iterator's position.
func (it Iterator[T]) Node() *Node[T] {
	return it.node
}

// Elem returns the element bound to the node at the iterator's position,
// or nil for plain nodes and for the end position.
func (it Iterator[T]) Elem() *T {
	if it.node == nil {
		return nil
	}
	return it.node.elem
}

// Next returns the iterator advanced one position forward.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{node: it.node.next}
}

// Prev returns the iterator moved one position backward.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{node: it.node.prev}
}
