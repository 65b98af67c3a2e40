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

package slicesx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sylvanlang/greentree/internal/ext/slicesx"
)

func TestGet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := []int{1, 2, 3}

	v, ok := slicesx.Get(s, 0)
	assert.True(ok)
	assert.Equal(1, v)

	v, ok = slicesx.Get(s, 2)
	assert.True(ok)
	assert.Equal(3, v)

	_, ok = slicesx.Get(s, 3)
	assert.False(ok)
	_, ok = slicesx.Get(s, -1)
	assert.False(ok)
	_, ok = slicesx.Get([]int(nil), 0)
	assert.False(ok)
}

func TestLast(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	v, ok := slicesx.Last([]int{1, 2, 3})
	assert.True(ok)
	assert.Equal(3, v)

	_, ok = slicesx.Last([]int(nil))
	assert.False(ok)

	assert.Nil(slicesx.LastPointer([]int(nil)))
	s := []int{1, 2}
	*slicesx.LastPointer(s) = 5
	assert.Equal([]int{1, 5}, s)
}

func TestPop(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := []int{1, 2, 3}

	v, ok := slicesx.Pop(&s)
	assert.True(ok)
	assert.Equal(3, v)
	assert.Equal([]int{1, 2}, s)

	slicesx.Pop(&s)
	slicesx.Pop(&s)
	assert.Empty(s)

	_, ok = slicesx.Pop(&s)
	assert.False(ok)
}
