// Copyright 2024-2026 The Greentree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package green

import (
	"fmt"
	"slices"
	"strings"
	"unsafe"

	"github.com/sylvanlang/greentree/internal/ext/slicesx"
	"github.com/sylvanlang/greentree/internal/rc"
	"github.com/sylvanlang/greentree/text"
)

// Node is an internal node of a green tree: a [Kind], the total length
// of the text it covers, and an ordered run of children, each of which
// is a [Node] or a [Token].
//
// Nodes are immutable and compare by structure, never by identity; see
// [Node.Equal]. A node never knows its parent or its absolute position,
// which is what lets one subtree be shared by many trees. The zero Node
// is a nil handle.
type Node struct {
	raw *nodeRaw
}

// NewNode builds a fresh node over the given children.
//
// NewNode consumes the reference owned by each element of children; the
// caller must not release them afterwards, and must not pass a zero
// element. The returned handle owns one reference. Building through
// [NodeCache.Node] instead dedupes small nodes.
func NewNode(kind Kind, children []Element) Node {
	slots := make([]child, len(children))
	var textLen text.Offset
	for i, el := range children {
		if el.IsZero() {
			panic(fmt.Sprintf("greentree/green: NewNode() passed a zero Element at index %d", i))
		}
		slots[i] = child{offset: textLen, elem: el}
		textLen += el.TextLen()
	}
	head := nodeHead{kind: kind, textLen: textLen, hash: hashNode(kind, slots)}
	return Node{raw: rc.New(head, slots)}
}

// IsZero returns whether this is the zero Node.
func (n Node) IsZero() bool {
	return n.raw == nil
}

// Kind returns this node's kind.
func (n Node) Kind() Kind {
	return n.raw.Header().kind
}

// TextLen returns the total length of the text this node covers: the
// sum of its children's text lengths.
func (n Node) TextLen() text.Offset {
	return n.raw.Header().textLen
}

// Children returns a read-only view of this node's children.
func (n Node) Children() Children {
	return Children{slots: n.raw.Elems()}
}

// ChildAtRange returns the single child whose span fully contains r,
// along with its index and its offset within this node.
//
// The search is a binary search over the children's cumulative offsets.
// An empty r sitting exactly on the boundary between two children
// resolves to the preceding one. Returns ok == false if no single child
// contains r.
func (n Node) ChildAtRange(r text.Range) (idx int, offset text.Offset, el Element, ok bool) {
	slots := n.raw.Elems()
	idx, found := slices.BinarySearchFunc(slots, r, func(c child, r text.Range) int {
		return c.rangeInParent().Compare(r)
	})
	if !found && idx > 0 {
		// An empty r compares as disjoint with every child, landing on
		// the insertion point just past the slot that contains it.
		idx--
	}
	c, inBounds := slicesx.Get(slots, idx)
	if !inBounds || !c.rangeInParent().Contains(r) {
		return 0, 0, Element{}, false
	}
	return idx, c.offset, c.elem, true
}

// ReplaceChild builds a new node identical to this one except that the
// child at idx is el. The original is not modified, and every other
// child is shared by reference between the two nodes.
//
// ReplaceChild consumes el's reference. Panics if idx is out of range.
func (n Node) ReplaceChild(idx int, el Element) Node {
	slots := n.raw.Elems()
	if idx < 0 || idx >= len(slots) {
		panic(fmt.Sprintf("greentree/green: index out of range [%d] with length %d", idx, len(slots)))
	}
	children := make([]Element, len(slots))
	for i, c := range slots {
		if i == idx {
			children[i] = el
		} else {
			children[i] = c.elem.Retain()
		}
	}
	return NewNode(n.Kind(), children)
}

// Text returns the text this node covers: the concatenation, in order,
// of the text of every token beneath it.
func (n Node) Text() string {
	var sb strings.Builder
	sb.Grow(int(n.TextLen()))
	writeText(&sb, n.raw)
	return sb.String()
}

func writeText(sb *strings.Builder, raw *nodeRaw) {
	for _, slot := range raw.Elems() {
		if slot.elem.token != nil {
			sb.WriteString(tokenText(slot.elem.token))
		} else {
			writeText(sb, slot.elem.node)
		}
	}
}

// Equal reports whether two nodes are structurally equal: same kind and
// pairwise-equal children, recursively. Identity is irrelevant, though
// shared subtrees make Equal cheap in practice.
func (n Node) Equal(other Node) bool {
	return nodesEqual(n.raw, other.raw)
}

// Hash returns this node's structural hash: structurally equal nodes
// hash equal. Hashes are stable within a process, not across processes.
func (n Node) Hash() uint64 {
	return n.raw.Header().hash
}

// Elem returns this node as an [Element].
//
// The element aliases n's reference rather than owning a new one.
func (n Node) Elem() Element {
	return Element{node: n.raw}
}

// Retain records one new owning reference and returns the handle.
func (n Node) Retain() Node {
	n.raw.Retain()
	return n
}

// Release drops one owning reference, cascading into the children if it
// was the last one.
func (n Node) Release() {
	releaseNode(n.raw)
}

// Raw returns this node's underlying allocation as a raw pointer, for
// zero-overhead embedding inside an overlay structure. The strong count
// is unchanged: the caller still owns whatever reference n held, and
// must keep it alive for as long as the raw pointer is in use.
func (n Node) Raw() unsafe.Pointer {
	return unsafe.Pointer(n.raw)
}

// NodeFromRaw is the inverse of [Node.Raw]. The returned handle aliases
// the reference the pointer's producer holds; Retain it to own it
// independently.
func NodeFromRaw(p unsafe.Pointer) Node {
	return Node{raw: (*nodeRaw)(p)}
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	if n.IsZero() {
		return "green.Node(nil)"
	}
	return fmt.Sprintf("green.Node(%v, len %d, %d children)", n.Kind(), n.TextLen(), n.raw.Len())
}
