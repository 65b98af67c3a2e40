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

// Package rc provides the shared container that green trees are built
// out of: a fixed header plus an exactly-sized run of elements, behind
// a single pointer-sized handle with an atomic strong count.
//
// Go's garbage collector is what actually reclaims the memory; the
// strong count exists so that an intern cache can ask "is anyone other
// than me still holding this?" and so that structural sharing is
// observable. Counting is therefore a protocol, not a safety mechanism:
// a missed Release never corrupts memory, it only pins cache entries.
package rc

import (
	"fmt"
	"sync/atomic"
)

// Box is a shared (header, elements) pair.
//
// A *Box is the single-word handle: copying the pointer is free, and
// [Box.Retain] registers a new owning location with one atomic
// increment. The element slice is sized exactly at construction and
// never reallocated, so views handed out by [Box.Elems] stay valid for
// the life of the box.
type Box[H, E any] struct {
	refs   atomic.Int32
	header H
	elems  []E
}

// New builds a box from a header and its elements.
//
// The box takes ownership of elems; the caller must neither mutate nor
// retain the slice afterwards. The returned box has a strong count of
// one, owned by the caller.
func New[H, E any](header H, elems []E) *Box[H, E] {
	b := &Box[H, E]{header: header, elems: elems}
	b.refs.Store(1)
	return b
}

// Header returns the box's header.
//
// The header is shared by every handle; callers must not mutate it.
func (b *Box[H, E]) Header() *H {
	return &b.header
}

// Elems returns the box's elements.
//
// The slice is shared by every handle; callers must not mutate it.
func (b *Box[H, E]) Elems() []E {
	return b.elems
}

// Len returns the number of elements.
func (b *Box[H, E]) Len() int {
	return len(b.elems)
}

// Retain records one new owning location for this box.
func (b *Box[H, E]) Retain() {
	b.refs.Add(1)
}

// Release drops one owning location, returning true if it was the last
// one. When Release returns true the caller must finalize the elements
// (release any handles they own); the box itself is left for the
// garbage collector.
func (b *Box[H, E]) Release() bool {
	n := b.refs.Add(-1)
	if n < 0 {
		panic(fmt.Sprintf("greentree/internal/rc: Release() of dead box (count %d)", n))
	}
	return n == 0
}

// StrongCount reports the number of owning locations at this instant.
//
// The count is exact only while the caller can rule out concurrent
// Retain/Release calls, which is the single-writer regime the intern
// cache sweeps under.
func (b *Box[H, E]) StrongCount() int32 {
	return b.refs.Load()
}
