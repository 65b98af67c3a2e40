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

import "fmt"

// Kind identifies the grammar category of a [Node] or [Token].
//
// The vocabulary is entirely caller-defined; this package stores kinds
// and compares them for equality but never interprets them. A driving
// parser typically declares one flat enum covering both its token kinds
// and its node kinds.
type Kind uint16

// String implements [fmt.Stringer].
func (k Kind) String() string {
	return fmt.Sprintf("green.Kind(%d)", uint16(k))
}
