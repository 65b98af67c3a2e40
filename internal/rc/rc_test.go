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

package rc_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sylvanlang/greentree/internal/rc"
)

type head struct {
	kind uint16
	len  uint32
}

func TestBox(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := rc.New(head{kind: 7, len: 3}, []byte("abc"))
	assert.Equal(int32(1), b.StrongCount())
	assert.Equal(uint16(7), b.Header().kind)
	assert.Equal([]byte("abc"), b.Elems())
	assert.Equal(3, b.Len())

	b.Retain()
	assert.Equal(int32(2), b.StrongCount())

	assert.False(b.Release())
	assert.Equal(int32(1), b.StrongCount())
	assert.True(b.Release(), "last release must report it")

	assert.Panics(func() { b.Release() })
}

func TestBoxEmpty(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := rc.New(head{}, nil)
	assert.Equal(0, b.Len())
	assert.Empty(b.Elems())
	assert.True(b.Release())
}

func TestBoxConcurrentCounts(t *testing.T) {
	t.Parallel()

	// Retain/Release pairs from many goroutines must balance exactly.
	b := rc.New(head{}, []byte("x"))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				b.Retain()
				b.Release()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), b.StrongCount())
}
