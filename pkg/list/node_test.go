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

import "testing"

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestNodeZeroValue(t *testing.T) {
	var n Node[int]
	if !n.Uninitialized() {
		t.Error("zero-value node: Uninitialized() = false, want true")
	}
	if n.Linked() {
		t.Error("zero-value node: Linked() = true, want false")
	}
}

func TestNodeInit(t *testing.T) {
	var n Node[int]
	n.Init()
	if n.Uninitialized() {
		t.Error("after Init: Uninitialized() = true, want false")
	}
	if n.Linked() {
		t.Error("after Init: Linked() = true, want false")
	}
	if n.Next() != &n || n.Prev() != &n {
		t.Error("after Init: node does not point at itself")
	}
}

func TestNodeInitOnce(t *testing.T) {
	var a, b, c Node[int]
	a.Init()
	a.LinkNext(&b)

	// InitOnce on a linked node must be a no-op; anything else would
	// corrupt the chain.
	b.InitOnce()
	if b.Next() != &a || b.Prev() != &a {
		t.Error("InitOnce modified a linked node")
	}

	c.InitOnce()
	if c.Uninitialized() {
		t.Error("InitOnce left a zero-value node uninitialized")
	}
}

func TestNodeLinkNext(t *testing.T) {
	var a, b, c Node[int]
	a.Init()
	a.LinkNext(&c)
	a.LinkNext(&b) // a, b, c

	if a.Next() != &b || b.Next() != &c || c.Next() != &a {
		t.Error("forward chain broken after LinkNext")
	}
	if a.Prev() != &c || c.Prev() != &b || b.Prev() != &a {
		t.Error("backward chain broken after LinkNext")
	}
	for _, n := range []*Node[int]{&a, &b, &c} {
		if !n.Linked() {
			t.Error("member node reports Linked() = false")
		}
	}
}

func TestNodeLinkPrev(t *testing.T) {
	var a, b, c Node[int]
	a.Init()
	a.LinkPrev(&b) // circular: a, b
	a.LinkPrev(&c) // a, b, c

	if a.Next() != &b || b.Next() != &c || c.Next() != &a {
		t.Error("forward chain broken after LinkPrev")
	}
	if a.Prev() != &c || c.Prev() != &b || b.Prev() != &a {
		t.Error("backward chain broken after LinkPrev")
	}
}

func TestNodeUnlink(t *testing.T) {
	var a, b, c Node[int]
	a.Init()
	a.LinkNext(&c)
	a.LinkNext(&b) // a, b, c

	b.Unlink()
	if b.Linked() {
		t.Error("after Unlink: Linked() = true, want false")
	}
	if a.Next() != &c || c.Prev() != &a {
		t.Error("neighbors not rewired after Unlink")
	}

	// Idempotence.
	b.Unlink()
	if b.Linked() {
		t.Error("double Unlink left node linked")
	}
	if a.Next() != &c || c.Prev() != &a {
		t.Error("double Unlink corrupted the chain")
	}
}

func TestNodeUnlinkZeroValue(t *testing.T) {
	var n Node[int]
	n.Unlink()
	if n.Uninitialized() {
		t.Error("Unlink did not bootstrap a zero-value node")
	}
	if n.Linked() {
		t.Error("Unlink left a zero-value node linked")
	}
}

func TestNodeRelink(t *testing.T) {
	var a, b Node[int]
	a.Init()
	a.LinkNext(&b)
	b.Unlink()
	a.LinkPrev(&b)
	if a.Prev() != &b || b.Next() != &a {
		t.Error("relinking an unlinked node failed")
	}
}

func TestNodeContractViolations(t *testing.T) {
	var a, b, u Node[int]
	a.Init()
	a.LinkNext(&b)

	mustPanic(t, "LinkNext of linked node", func() {
		var m Node[int]
		m.Init()
		m.LinkNext(&b)
	})
	mustPanic(t, "LinkPrev of linked node", func() {
		var m Node[int]
		m.Init()
		m.LinkPrev(&b)
	})
	mustPanic(t, "LinkNext on uninitialized node", func() {
		var m Node[int]
		u.LinkNext(&m)
	})
	mustPanic(t, "LinkPrev on uninitialized node", func() {
		var m Node[int]
		u.LinkPrev(&m)
	})
}

func TestNodeElem(t *testing.T) {
	var n Node[string]
	s := "x"
	if n.Elem() != nil {
		t.Error("Elem() of unbound node is not nil")
	}
	n.SetElem(&s)
	if n.Elem() != &s {
		t.Error("Elem() does not return the bound element")
	}
}
