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
	"github.com/sylvanlang/greentree/internal/ext/slicesx"
)

// maxInternedChildren is the child count above which [NodeCache.Node]
// stops interning. Small nodes are cheap to hash and compare and are
// the ones that recur verbatim; large nodes almost never do, so
// interning them costs hashing for no sharing.
const maxInternedChildren = 3

// NodeCache dedupes structurally equal tokens and small nodes onto one
// canonical shared instance.
//
// Source text repeats itself: the same punctuation, the same short
// phrases, over and over. Building through a cache collapses all of
// those repeats into shared allocations, and reusing one cache across
// many builds (see [NewBuilderWithCache]) extends the sharing across
// trees: an incremental reparse mostly rebuilds nodes the cache
// already has.
//
// A NodeCache is single-writer: one builder at a time, handed off
// sequentially between builds. Entries pin one reference each, so a
// cache grows until [NodeCache.GC] is called; it never shrinks on its
// own.
//
// The zero NodeCache is empty and ready to use.
type NodeCache struct {
	// Buckets keyed by structural hash, chained for collisions. A Go
	// map cannot key on the values themselves: structural equality is
	// recursive over variable-length children, which is not a
	// comparable type.
	nodes  map[uint64][]*nodeRaw
	tokens map[uint64][]*tokenRaw
}

// Token returns the canonical token for (kind, text), interning a fresh
// one on first sight. The returned handle owns one reference.
func (c *NodeCache) Token(kind Kind, text string) Token {
	h := hashToken(kind, text)
	for _, raw := range c.tokens[h] {
		if raw.Header().kind == kind && tokenText(raw) == text {
			raw.Retain()
			return Token{raw: raw}
		}
	}

	tok := NewToken(kind, text)
	if c.tokens == nil {
		c.tokens = make(map[uint64][]*tokenRaw)
	}
	tok.raw.Retain() // The table's own reference.
	c.tokens[h] = append(c.tokens[h], tok.raw)
	return tok
}

// Node builds a node over children, as [NewNode], but returns the
// canonical instance instead if the node is small enough to intern
// (at most [maxInternedChildren] children) and an equal one is cached.
//
// Node consumes the reference owned by each element of children. The
// returned handle owns one reference.
func (c *NodeCache) Node(kind Kind, children []Element) Node {
	node := NewNode(kind, children)
	if len(children) > maxInternedChildren {
		return node
	}

	h := node.raw.Header().hash
	for _, raw := range c.nodes[h] {
		if nodesEqual(raw, node.raw) {
			// Drop the candidate; this also returns the child
			// references it just consumed.
			node.Release()
			raw.Retain()
			return Node{raw: raw}
		}
	}

	if c.nodes == nil {
		c.nodes = make(map[uint64][]*nodeRaw)
	}
	node.raw.Retain() // The table's own reference.
	c.nodes[h] = append(c.nodes[h], node.raw)
	return node
}

// GC evicts every entry that is referenced by nothing but the cache
// itself. Entries still reachable from a live tree (or any other
// retained handle) are kept, and stay shared.
//
// The sweep runs in two phases. Phase one partitions the node table:
// entries whose only reference is the table's own move onto a worklist.
// Phase two drains the worklist, releasing each entry that is still
// externally unreferenced and enqueueing its direct node children,
// since dropping a parent is often exactly what makes a cached child
// collectible. Tokens have no children, so they are swept in one pass
// at the end.
//
// GC is never run implicitly; bounding the cache between builds is the
// owner's job.
func (c *NodeCache) GC() {
	var toDrop []*nodeRaw
	for h, bucket := range c.nodes {
		kept := bucket[:0]
		for _, raw := range bucket {
			if raw.StrongCount() > 1 {
				kept = append(kept, raw)
			} else {
				// The table's reference moves to the worklist.
				toDrop = append(toDrop, raw)
			}
		}
		if len(kept) == 0 {
			delete(c.nodes, h)
		} else {
			c.nodes[h] = kept
		}
	}

	for len(toDrop) > 0 {
		raw, _ := slicesx.Pop(&toDrop)

		// Collectible iff nothing outside the table and the worklist's
		// own slot holds it. Children enqueued below are still in the
		// table, so their threshold is one higher.
		limit := int32(1)
		inTable := c.nodeInTable(raw)
		if inTable {
			limit = 2
		}

		if raw.StrongCount() <= limit {
			if inTable {
				c.dropNodeEntry(raw)
			}
			for _, slot := range raw.Elems() {
				if slot.elem.node != nil {
					slot.elem.node.Retain()
					toDrop = append(toDrop, slot.elem.node)
				}
			}
		}

		// Drop the worklist's reference. For a collected entry this is
		// the last one, and the children enqueued above lose their
		// parent-slot references in the cascade.
		releaseNode(raw)
	}

	for h, bucket := range c.tokens {
		kept := bucket[:0]
		for _, raw := range bucket {
			if raw.StrongCount() > 1 {
				kept = append(kept, raw)
			} else {
				raw.Release()
			}
		}
		if len(kept) == 0 {
			delete(c.tokens, h)
		} else {
			c.tokens[h] = kept
		}
	}
}

func (c *NodeCache) nodeInTable(raw *nodeRaw) bool {
	for _, entry := range c.nodes[raw.Header().hash] {
		if entry == raw {
			return true
		}
	}
	return false
}

// dropNodeEntry removes raw's table entry and releases the table's
// reference to it. The caller must guarantee raw is in the table and
// holds at least one other reference.
func (c *NodeCache) dropNodeEntry(raw *nodeRaw) {
	h := raw.Header().hash
	bucket := c.nodes[h]
	for i, entry := range bucket {
		if entry == raw {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.nodes, h)
	} else {
		c.nodes[h] = bucket
	}
	raw.Release()
}
