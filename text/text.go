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

// Package text provides the offset and range arithmetic that green trees
// measure themselves with.
//
// Offsets are byte counts. A green tree never stores absolute positions;
// every offset in this module is relative to some enclosing node, which
// is what makes subtrees shareable between trees.
package text

import "fmt"

// Offset is a byte position in, or byte length of, a piece of source
// text.
type Offset uint32

// Range is a half-open byte range [Start, End).
type Range struct {
	Start, End Offset
}

// NewRange returns the range [start, end).
//
// Panics if start > end.
func NewRange(start, end Offset) Range {
	if start > end {
		panic(fmt.Sprintf("greentree/text: NewRange() called with %d > %d", start, end))
	}
	return Range{Start: start, End: end}
}

// RangeAt returns the range of the given length starting at offset.
func RangeAt(offset, length Offset) Range {
	return Range{Start: offset, End: offset + length}
}

// Len returns the length of this range.
func (r Range) Len() Offset {
	return r.End - r.Start
}

// Empty returns whether this range contains no offsets.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// ContainsOffset returns whether offset lies within this range.
func (r Range) ContainsOffset(offset Offset) bool {
	return r.Start <= offset && offset < r.End
}

// Contains returns whether other lies entirely within this range.
//
// An empty range is contained by any range whose endpoints bracket it,
// including one it merely touches.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Compare orders this range against another by strict disjointness:
// it returns -1 if r lies entirely before other, +1 if r lies entirely
// after other, and 0 otherwise.
//
// Overlapping ranges compare as 0, so this is not a total order; it is
// the comparator for binary-searching a partition of disjoint ranges,
// where at most one element can compare as 0 with the probe.
func (r Range) Compare(other Range) int {
	switch {
	case r.End <= other.Start:
		return -1
	case r.Start >= other.End:
		return 1
	default:
		return 0
	}
}

// String implements [fmt.Stringer].
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
