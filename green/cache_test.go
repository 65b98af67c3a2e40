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
	"github.com/stretchr/testify/require"

	"github.com/sylvanlang/greentree/green"
)

func TestTokenInterning(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := new(green.NodeCache)

	t1 := c.Token(kindPunct, "+")
	t2 := c.Token(kindPunct, "+")
	assert.True(t1.Equal(t2))
	assert.Equal(int32(3), green.StrongCount(t1.Elem()), "table + two handles")

	// Same text, different kind: a different token.
	t3 := c.Token(kindIdent, "+")
	assert.False(t1.Equal(t3))

	_, tokens := green.CacheSize(c)
	assert.Equal(2, tokens)

	t1.Release()
	t2.Release()
	t3.Release()
}

func TestNodeInterning(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := new(green.NodeCache)
	pair := func() []green.Element {
		return []green.Element{
			c.Token(kindIdent, "x").Elem(),
			c.Token(kindPunct, ";").Elem(),
		}
	}

	n1 := c.Node(kindExpr, pair())
	n2 := c.Node(kindExpr, pair())

	// One allocation: the second build is a cache hit.
	assert.Equal(n1.Raw(), n2.Raw())
	assert.True(n1.Equal(n2))
	assert.Equal(int32(3), green.StrongCount(n1.Elem()), "table + two handles")

	nodes, tokens := green.CacheSize(c)
	assert.Equal(1, nodes)
	assert.Equal(2, tokens)

	n1.Release()
	n2.Release()
}

func TestNodeInterningThreshold(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := new(green.NodeCache)
	four := func() []green.Element {
		return []green.Element{
			c.Token(kindIdent, "a").Elem(),
			c.Token(kindIdent, "b").Elem(),
			c.Token(kindIdent, "c").Elem(),
			c.Token(kindIdent, "d").Elem(),
		}
	}

	n1 := c.Node(kindExpr, four())
	n2 := c.Node(kindExpr, four())

	// Equal but not shared: four children is past the intern threshold.
	assert.True(n1.Equal(n2))
	assert.NotEqual(n1.Raw(), n2.Raw())

	nodes, _ := green.CacheSize(c)
	assert.Zero(nodes)

	n1.Release()
	n2.Release()
}

func TestGCKeepsLiveTrees(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := new(green.NodeCache)
	b := green.NewBuilderWithCache(c)
	b.StartNode(kindRoot)
	b.StartNode(kindExpr)
	b.Token(kindIdent, "x")
	b.Token(kindPunct, ";")
	b.FinishNode()
	b.FinishNode()
	root := b.Finish()
	defer root.Release()

	c.GC()

	// Everything reachable from root survived, still canonical: an
	// identical rebuild hits the same allocations.
	expr, ok := root.Children().At(0).AsNode()
	require.True(t, ok)
	again := c.Node(kindExpr, []green.Element{
		c.Token(kindIdent, "x").Elem(),
		c.Token(kindPunct, ";").Elem(),
	})
	assert.Equal(expr.Raw(), again.Raw())
	again.Release()

	assert.Equal("x;", root.Text())
}

func TestGCReclaimsDeadEntries(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := new(green.NodeCache)
	b := green.NewBuilderWithCache(c)
	b.StartNode(kindRoot)
	b.StartNode(kindExpr)
	b.Token(kindIdent, "x")
	b.FinishNode()
	b.FinishNode()
	root := b.Finish()

	tok := c.Token(kindIdent, "x")
	oldRaw := root.Raw()

	nodes, tokens := green.CacheSize(c)
	assert.Equal(2, nodes, "root and expr")
	assert.Equal(1, tokens)

	// Dropping the tree leaves the root entry held only by the cache;
	// one sweep must cascade from it into the expr node. The token is
	// still held by tok.
	root.Release()
	c.GC()

	nodes, tokens = green.CacheSize(c)
	assert.Zero(nodes)
	assert.Equal(1, tokens)
	assert.Equal(int32(2), green.StrongCount(tok.Elem()))

	// No stale hit: rebuilding allocates anew.
	rebuilt := c.Node(kindRoot, []green.Element{
		c.Node(kindExpr, []green.Element{c.Token(kindIdent, "x").Elem()}).Elem(),
	})
	assert.NotEqual(oldRaw, rebuilt.Raw())
	rebuilt.Release()

	tok.Release()
	c.GC()
	_, tokens = green.CacheSize(c)
	assert.Zero(tokens)
}

func TestGCSharedSubtreeSurvives(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := new(green.NodeCache)
	leaf := func() green.Element {
		return c.Node(kindExpr, []green.Element{c.Token(kindIdent, "x").Elem()}).Elem()
	}

	// Two trees sharing the same interned leaf; dropping one must not
	// evict what the other still uses.
	t1 := green.NewNode(kindRoot, []green.Element{leaf()})
	t2 := green.NewNode(kindRoot, []green.Element{leaf()})
	defer t2.Release()

	t1.Release()
	c.GC()

	nodes, tokens := green.CacheSize(c)
	assert.Equal(1, nodes)
	assert.Equal(1, tokens)

	kept, ok := t2.Children().At(0).AsNode()
	assert.True(ok)
	assert.Equal("x", kept.Text())
}
