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

// Package green implements immutable, structurally-shared syntax trees.
//
// # Green Trees
//
// A green tree is the purely structural half of a lossless syntax tree:
// a [Node] knows only its [Kind], its total text length, and its
// children; a [Token] knows only its kind and its exact source text,
// whitespace and comments included. Nothing in a green tree knows its
// absolute position or its parent, which is precisely what lets one
// subtree appear in many trees at once. Walking every token of a tree
// in order reproduces the original source byte-for-byte.
//
// An "edit" never mutates anything. [Node.ReplaceChild] builds a new
// node that shares every untouched child with the old one, so producing
// an edited root costs one new node per ancestor of the edit and
// nothing else.
//
// # Interning
//
// Green nodes compare by structure, never by address, which makes them
// usable as interning keys. A [NodeCache] maps every token and every
// small node to one canonical shared instance; parses of real source
// repeat small subtrees (punctuation, short idioms) constantly, and
// deduplicating them is a large memory win. Sharing one cache across
// successive reparses extends that sharing across tree versions.
// [NodeCache.GC] is how the owner reclaims entries no live tree uses
// anymore; it is never run implicitly.
//
// # Building
//
// A [Builder] is driven by an external parser: emit tokens with
// [Builder.Token], bracket them with [Builder.StartNode] and
// [Builder.FinishNode], and collect the root with [Builder.Finish].
// For shapes the parser cannot commit to up front (is `a` a bare atom,
// or the left operand of `a + b`?), take a [Builder.Checkpoint] first
// and retroactively wrap everything emitted since with
// [Builder.StartNodeAt]. Unbalanced or stale calls are programmer
// errors and panic.
//
// # Ownership
//
// Every node and token is shared by reference counting. Handles
// returned to a caller ([Builder.Finish], the constructors, cache
// lookups) own one reference; release it with Release when the value
// is no longer needed, or the cache will treat it as still in use.
// Completed trees are immutable and safe to read from any number of
// goroutines at once; a [NodeCache] and a [Builder] are single-writer.
package green
