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

// Package unsafex contains extensions to Go's package unsafe.
//
// Importing this package should be treated as equivalent to importing
// unsafe.
package unsafex

import "unsafe"

// StringAlias returns a string that aliases data's backing array.
//
// The caller must guarantee that the bytes are never mutated while the
// returned string is reachable; token text satisfies this because the
// backing array is immutable after construction.
func StringAlias[S ~[]byte](data S) string {
	return unsafe.String(unsafe.SliceData(data), len(data))
}
