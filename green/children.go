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

	"github.com/sylvanlang/greentree/seq"
	"github.com/sylvanlang/greentree/text"
)

// Children is a read-only view of a node's children.
//
// It implements [seq.Indexer], so [seq.All], [seq.Backward], and
// friends iterate over it. The view borrows the node's reference: it is
// valid for as long as the node it came from is retained.
type Children struct {
	slots []child
}

var _ seq.Indexer[Element] = Children{}

// Len returns the number of children.
func (c Children) Len() int {
	return len(c.slots)
}

// At returns the child at the given index.
//
// Panics if idx is out of range.
func (c Children) At(idx int) Element {
	if idx < 0 || idx >= len(c.slots) {
		panic(fmt.Sprintf("greentree/green: index out of range [%d] with length %d", idx, len(c.slots)))
	}
	return c.slots[idx].elem
}

// OffsetAt returns the offset of the child at the given index within
// its parent: the sum of the preceding children's text lengths.
//
// Panics if idx is out of range.
func (c Children) OffsetAt(idx int) text.Offset {
	if idx < 0 || idx >= len(c.slots) {
		panic(fmt.Sprintf("greentree/green: index out of range [%d] with length %d", idx, len(c.slots)))
	}
	return c.slots[idx].offset
}
