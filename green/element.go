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
	"unsafe"

	"github.com/sylvanlang/greentree/text"
)

// Element is either a [Node] or a [Token].
//
// At most one of the two variants is set; the zero Element is neither.
// Elements are the child type of a node and the unit the [Builder]'s
// pending buffer holds.
type Element struct {
	node  *nodeRaw
	token *tokenRaw
}

// An Element must stay two machine words, so that child slots stay
// compact; this trips if a field is ever added.
const _ = 2*unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(Element{})

// IsZero returns whether this is the zero Element.
func (e Element) IsZero() bool {
	return e.node == nil && e.token == nil
}

// IsNode returns whether this element holds a node.
func (e Element) IsNode() bool {
	return e.node != nil
}

// IsToken returns whether this element holds a token.
func (e Element) IsToken() bool {
	return e.token != nil
}

// AsNode returns this element's node, if it holds one.
//
// The returned handle aliases e's reference; Retain it to own it
// independently.
func (e Element) AsNode() (Node, bool) {
	if e.node == nil {
		return Node{}, false
	}
	return Node{raw: e.node}, true
}

// AsToken returns this element's token, if it holds one.
//
// The returned handle aliases e's reference; Retain it to own it
// independently.
func (e Element) AsToken() (Token, bool) {
	if e.token == nil {
		return Token{}, false
	}
	return Token{raw: e.token}, true
}

// Kind returns the kind of the underlying node or token.
//
// Panics on the zero Element.
func (e Element) Kind() Kind {
	switch {
	case e.node != nil:
		return e.node.Header().kind
	case e.token != nil:
		return e.token.Header().kind
	}
	panic("greentree/green: Kind() called on zero Element")
}

// TextLen returns the text length of the underlying node or token.
//
// Panics on the zero Element.
func (e Element) TextLen() text.Offset {
	switch {
	case e.node != nil:
		return e.node.Header().textLen
	case e.token != nil:
		return text.Offset(e.token.Len())
	}
	panic("greentree/green: TextLen() called on zero Element")
}

// Hash returns the structural hash of the underlying node or token.
//
// Panics on the zero Element.
func (e Element) Hash() uint64 {
	switch {
	case e.node != nil:
		return e.node.Header().hash
	case e.token != nil:
		return e.token.Header().hash
	}
	panic("greentree/green: Hash() called on zero Element")
}

// Equal reports whether two elements hold the same variant and their
// values are structurally equal. Two zero Elements are equal.
func (e Element) Equal(other Element) bool {
	switch {
	case e.node != nil:
		return nodesEqual(e.node, other.node)
	case e.token != nil:
		return tokensEqual(e.token, other.token)
	}
	return other.IsZero()
}

// Retain records one new owning reference and returns the element.
// Retaining the zero Element is a no-op.
func (e Element) Retain() Element {
	switch {
	case e.node != nil:
		e.node.Retain()
	case e.token != nil:
		e.token.Retain()
	}
	return e
}

// Release drops one owning reference. Releasing the zero Element is a
// no-op.
func (e Element) Release() {
	switch {
	case e.node != nil:
		releaseNode(e.node)
	case e.token != nil:
		e.token.Release()
	}
}

// String implements [fmt.Stringer].
func (e Element) String() string {
	switch {
	case e.node != nil:
		return Node{raw: e.node}.String()
	case e.token != nil:
		return Token{raw: e.token}.String()
	}
	return "green.Element(nil)"
}
