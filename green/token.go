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

	"github.com/sylvanlang/greentree/internal/rc"
	"github.com/sylvanlang/greentree/text"
)

// Token is a leaf of a green tree: a [Kind] and the exact source text
// it covers, including whitespace and comments.
//
// Tokens are immutable and compare by value, never by identity; see
// [Token.Equal]. The zero Token is a nil handle.
type Token struct {
	raw *tokenRaw
}

// NewToken builds a fresh token.
//
// The returned handle owns one reference. Building through
// [NodeCache.Token] instead returns the canonical shared instance.
func NewToken(kind Kind, text string) Token {
	head := tokenHead{kind: kind, hash: hashToken(kind, text)}
	return Token{raw: rc.New(head, []byte(text))}
}

// IsZero returns whether this is the zero Token.
func (t Token) IsZero() bool {
	return t.raw == nil
}

// Kind returns this token's kind.
func (t Token) Kind() Kind {
	return t.raw.Header().kind
}

// Text returns this token's source text.
//
// The returned string aliases the token's allocation, so calling Text
// is free.
func (t Token) Text() string {
	return tokenText(t.raw)
}

// TextLen returns the length of this token's source text.
func (t Token) TextLen() text.Offset {
	return text.Offset(t.raw.Len())
}

// Equal reports whether two tokens are equal by value: same kind, same
// text. Distinct allocations holding the same value are equal.
func (t Token) Equal(other Token) bool {
	return tokensEqual(t.raw, other.raw)
}

// Hash returns this token's structural hash: equal tokens hash equal.
// Hashes are stable within a process, not across processes.
func (t Token) Hash() uint64 {
	return t.raw.Header().hash
}

// Elem returns this token as an [Element].
//
// The element aliases t's reference rather than owning a new one.
func (t Token) Elem() Element {
	return Element{token: t.raw}
}

// Retain records one new owning reference and returns the handle.
func (t Token) Retain() Token {
	t.raw.Retain()
	return t
}

// Release drops one owning reference.
func (t Token) Release() {
	t.raw.Release()
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsZero() {
		return "green.Token(nil)"
	}
	return fmt.Sprintf("green.Token(%v, %q)", t.Kind(), t.Text())
}
