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

	"github.com/sylvanlang/greentree/internal/ext/slicesx"
)

// Checkpoint marks a position in a [Builder]'s output that a node may
// later be retroactively wrapped around; see [Builder.StartNodeAt].
//
// A checkpoint is only meaningful on the builder that produced it, and
// only until construction pops past it.
type Checkpoint struct {
	children int
}

// String implements [fmt.Stringer].
func (c Checkpoint) String() string {
	return fmt.Sprintf("green.Checkpoint(%d)", c.children)
}

// frame is one open node on the parents stack: everything from
// firstChild to the end of the pending buffer becomes its children when
// it is finished.
type frame struct {
	kind       Kind
	firstChild int
}

// Builder constructs a green tree bottom-up, driven by an external
// parser.
//
// The parser emits leaves with [Builder.Token] and brackets grammar
// productions with [Builder.StartNode] and [Builder.FinishNode]; calls
// must nest. When the shape of a production is only known after part of
// it has been parsed (the precedence-climbing case, where `a` turns
// out to be the left operand of `a + b`), take a [Builder.Checkpoint]
// before it and wrap retroactively with [Builder.StartNodeAt], with no
// token buffering or backtracking.
//
// Construction is single-goroutine and synchronous. Misuse (unbalanced
// calls, stale checkpoints, a bad [Builder.Finish]) is a bug in the
// driving parser and panics.
type Builder struct {
	cache *NodeCache

	// Open nodes, innermost last.
	parents []frame
	// Completed elements not yet claimed by a parent. A finished node
	// always claims a trailing run of this buffer, so construction is
	// strictly LIFO and no parent pointers are needed.
	pending []Element

	// Set once [Builder.Finish] or [Builder.Discard] has consumed the
	// builder; every operation after that is a contract violation.
	consumed bool
}

func (b *Builder) checkLive() {
	if b.consumed {
		panic("greentree/green: use of already-consumed Builder")
	}
}

// NewBuilder returns a builder that owns a fresh [NodeCache].
func NewBuilder() *Builder {
	return &Builder{cache: new(NodeCache)}
}

// NewBuilderWithCache returns a builder that interns through cache.
//
// Sharing one cache across successive builds is what makes structurally
// equal subtrees of different trees share memory. The cache must not be
// used by another builder until this one is finished or discarded.
func NewBuilderWithCache(cache *NodeCache) *Builder {
	return &Builder{cache: cache}
}

// Token appends a leaf to the current node.
func (b *Builder) Token(kind Kind, text string) {
	b.checkLive()
	tok := b.cache.Token(kind, text)
	b.pending = append(b.pending, tok.Elem())
}

// StartNode opens a new node and makes it current. Every element
// emitted until the matching [Builder.FinishNode] becomes a child of
// it.
func (b *Builder) StartNode(kind Kind) {
	b.checkLive()
	b.parents = append(b.parents, frame{kind: kind, firstChild: len(b.pending)})
}

// FinishNode closes the current node and restores its parent as
// current.
//
// Panics if no node is open.
func (b *Builder) FinishNode() {
	b.checkLive()
	f, ok := slicesx.Pop(&b.parents)
	if !ok {
		panic("greentree/green: FinishNode() called with no open node")
	}
	node := b.cache.Node(f.kind, b.pending[f.firstChild:])
	b.pending = b.pending[:f.firstChild]
	b.pending = append(b.pending, node.Elem())
}

// Checkpoint marks the current position for a possible later
// [Builder.StartNodeAt]. Taking a checkpoint opens nothing and costs
// nothing.
func (b *Builder) Checkpoint() Checkpoint {
	b.checkLive()
	return Checkpoint{children: len(b.pending)}
}

// StartNodeAt opens a new node as [Builder.StartNode] would, but
// positioned so that everything emitted since the checkpoint was taken
// becomes part of it. The matching [Builder.FinishNode] closes it as
// usual.
//
// Panics if the checkpoint has been invalidated: by finishing a node
// that was already open when it was taken, or by an unmatched
// StartNodeAt that now encloses it.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	b.checkLive()
	if cp.children > len(b.pending) {
		panic(fmt.Sprintf(
			"greentree/green: checkpoint %d is past the pending buffer (%d): was FinishNode() called early?",
			cp.children, len(b.pending)))
	}
	if f, ok := slicesx.Last(b.parents); ok && cp.children < f.firstChild {
		panic(fmt.Sprintf(
			"greentree/green: checkpoint %d precedes the open node at %d: was an unmatched StartNodeAt() called?",
			cp.children, f.firstChild))
	}
	b.parents = append(b.parents, frame{kind: kind, firstChild: cp.children})
}

// Finish completes the build and returns the root, consuming the
// builder; any further operation on it panics. The returned handle
// owns one reference.
//
// Panics unless every opened node has been finished and exactly one
// pending element, a node, remains.
func (b *Builder) Finish() Node {
	b.checkLive()
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("greentree/green: Finish() called with %d open nodes", len(b.parents)))
	}
	if len(b.pending) != 1 {
		panic(fmt.Sprintf("greentree/green: Finish() called with %d pending elements, expected exactly 1", len(b.pending)))
	}
	root, ok := b.pending[0].AsNode()
	if !ok {
		panic("greentree/green: Finish() called with a bare token as the root")
	}
	b.pending = nil
	b.parents = nil
	b.consumed = true
	return root
}

// Discard abandons the build, releasing everything pending and
// consuming the builder. A shared cache can then reclaim the partial
// tree's entries on its next GC.
//
// Discard is idempotent, and discarding a finished builder is a no-op;
// any other operation on a consumed builder panics.
func (b *Builder) Discard() {
	for _, el := range b.pending {
		el.Release()
	}
	b.pending = nil
	b.parents = nil
	b.consumed = true
}
