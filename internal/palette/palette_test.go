// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package palette

import (
	"sync"
	"testing"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/stretchr/testify/assert"
)

func TestAssigner_DefaultPalette(t *testing.T) {
	a := New()
	assert.Equal(t, len(DefaultPalette), a.Len())
	assert.GreaterOrEqual(t, a.Len(), 8)

	for i, want := range DefaultPalette {
		assert.Equal(t, want, a.Next(), "call %d", i)
	}
}

func TestAssigner_Cyclic(t *testing.T) {
	a := New()
	n := a.Len()

	var got []color.Style
	for range 3 * n {
		got = append(got, a.Next())
	}

	for k := range n {
		assert.Equal(t, got[k], got[n+k], "call %d and %d should match", k, n+k)
		assert.Equal(t, got[k], got[2*n+k], "call %d and %d should match", k, 2*n+k)
	}
}

func TestAssigner_CustomPalette(t *testing.T) {
	a := New(color.Cyan, color.Magenta)
	assert.Equal(t, color.Cyan, a.Next())
	assert.Equal(t, color.Magenta, a.Next())
	assert.Equal(t, color.Cyan, a.Next())
}

func TestAssigner_Independent(t *testing.T) {
	a, b := New(), New()
	a.Next()
	a.Next()
	assert.Equal(t, DefaultPalette[0], b.Next(), "assigners should not share state")
}

func TestAssigner_Concurrent(t *testing.T) {
	a := New()
	n := a.Len() * 10

	counts := make(map[color.Style]int)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			c := a.Next()

			mu.Lock()
			counts[c]++
			mu.Unlock()
		}()
	}

	wg.Wait()

	for _, c := range DefaultPalette {
		assert.Equal(t, 10, counts[c], "color %s", c)
	}
}
