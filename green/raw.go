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
	"encoding/binary"
	"hash/maphash"

	"github.com/sylvanlang/greentree/internal/ext/slicesx"
	"github.com/sylvanlang/greentree/internal/ext/unsafex"
	"github.com/sylvanlang/greentree/internal/rc"
	"github.com/sylvanlang/greentree/text"
)

// tokenRaw is a token's allocation: the head, then the text bytes as
// the box's inline elements.
type tokenRaw = rc.Box[tokenHead, byte]

// nodeRaw is a node's allocation: the head, then one slot per child.
type nodeRaw = rc.Box[nodeHead, child]

type tokenHead struct {
	kind Kind
	// Structural hash over (kind, text), precomputed once.
	hash uint64
}

type nodeHead struct {
	kind    Kind
	textLen text.Offset
	// Structural hash over (kind, child hashes), precomputed once so
	// that interning a parent never rehashes its subtrees.
	hash uint64
}

// child is one slot of a node: an element plus the sum of its preceding
// siblings' text lengths.
type child struct {
	offset text.Offset
	elem   Element
}

func (c child) rangeInParent() text.Range {
	return text.RangeAt(c.offset, c.elem.TextLen())
}

// hashSeed is process-global rather than per-cache so that structural
// hashes stored in heads stay comparable across caches and across
// values built with no cache at all.
var hashSeed = maphash.MakeSeed()

func hashToken(kind Kind, text string) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(kind))
	h.Write(buf[:])
	h.WriteString(text)
	return h.Sum64()
}

func hashNode(kind Kind, slots []child) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[:2], uint16(kind))
	h.Write(buf[:2])
	for i := range slots {
		binary.LittleEndian.PutUint64(buf[:], slots[i].elem.Hash())
		h.Write(buf[:])
	}
	return h.Sum64()
}

func tokenText(raw *tokenRaw) string {
	return unsafex.StringAlias(raw.Elems())
}

func nodesEqual(a, b *nodeRaw) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	ah, bh := a.Header(), b.Header()
	if ah.kind != bh.kind || ah.textLen != bh.textLen || ah.hash != bh.hash || a.Len() != b.Len() {
		return false
	}
	as, bs := a.Elems(), b.Elems()
	for i := range as {
		if !as[i].elem.Equal(bs[i].elem) {
			return false
		}
	}
	return true
}

func tokensEqual(a, b *tokenRaw) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Header().kind == b.Header().kind && tokenText(a) == tokenText(b)
}

// releaseNode drops one reference to raw and, if it was the last one,
// releases the node's slots. The cascade runs on an explicit worklist:
// a parent-to-child release chain is as deep as the tree, and a green
// tree's depth is unbounded.
func releaseNode(raw *nodeRaw) {
	if !raw.Release() {
		return
	}
	dead := []*nodeRaw{raw}
	for len(dead) > 0 {
		next, _ := slicesx.Pop(&dead)
		for _, slot := range next.Elems() {
			switch {
			case slot.elem.token != nil:
				slot.elem.token.Release()
			case slot.elem.node != nil:
				if slot.elem.node.Release() {
					dead = append(dead, slot.elem.node)
				}
			}
		}
	}
}
