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

// Test-only visibility into reference counts and cache occupancy.

// StrongCount returns the number of owning references to e's
// allocation, or 0 for the zero Element.
func StrongCount(e Element) int32 {
	switch {
	case e.node != nil:
		return e.node.StrongCount()
	case e.token != nil:
		return e.token.StrongCount()
	}
	return 0
}

// CacheSize returns how many node and token entries c currently holds.
func CacheSize(c *NodeCache) (nodes, tokens int) {
	for _, bucket := range c.nodes {
		nodes += len(bucket)
	}
	for _, bucket := range c.tokens {
		tokens += len(bucket)
	}
	return nodes, tokens
}
