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

package green_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sylvanlang/greentree/green"
	"github.com/sylvanlang/greentree/text"
)

func TestToken(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tok := green.NewToken(kindIdent, "hello")
	defer tok.Release()

	assert.Equal(kindIdent, tok.Kind())
	assert.Equal("hello", tok.Text())
	assert.Equal(text.Offset(5), tok.TextLen())
	assert.False(tok.IsZero())
	assert.Equal(`green.Token(green.Kind(0), "hello")`, tok.String())
}

func TestTokenValueEquality(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := green.NewToken(kindIdent, "x")
	defer a.Release()
	b := green.NewToken(kindIdent, "x")
	defer b.Release()
	c := green.NewToken(kindPunct, "x")
	defer c.Release()
	d := green.NewToken(kindIdent, "y")
	defer d.Release()

	// Equality is by (kind, text), never by identity.
	assert.True(a.Equal(b))
	assert.Equal(a.Hash(), b.Hash())
	assert.False(a.Equal(c))
	assert.False(a.Equal(d))

	var zero green.Token
	assert.True(zero.IsZero())
	assert.False(a.Equal(zero))
	assert.True(zero.Equal(zero))
}

func TestEmptyToken(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tok := green.NewToken(kindSpace, "")
	defer tok.Release()

	assert.Equal(text.Offset(0), tok.TextLen())
	assert.Equal("", tok.Text())
}
