/*
 *	Copyright 2024 The convgeom Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package aahr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New(4)
	require.Equal(t, 4, a.Rank())
	require.True(t, a.IsEmpty())
	require.Equal(t, uint64(0), a.Size())

	require.Panics(t, func() { New(0) })
	require.Panics(t, func() { New(-1) })
}

func TestNewBounded(t *testing.T) {
	a := NewBounded(Point{0, 0, 0}, Point{3, 4, 2})
	require.Equal(t, uint64(3*4*2), a.Size())
	require.False(t, a.IsEmpty())

	// Degenerate bounds yield an empty region, not an error.
	degenerate := NewBounded(Point{2, 0}, Point{2, 5})
	require.True(t, degenerate.IsEmpty())
	require.Equal(t, uint64(0), degenerate.Size())

	inverted := NewBounded(Point{3, 0}, Point{1, 5})
	require.True(t, inverted.IsEmpty())

	require.Panics(t, func() { NewBounded(Point{0, 0}, Point{1, 1, 1}) })
	require.Panics(t, func() { NewBounded(Point{}, Point{}) })
}

func TestAdd(t *testing.T) {
	a := New(2)
	a.Add(Point{3, 5})
	require.Equal(t, uint64(1), a.Size())
	require.True(t, a.Equal(NewBounded(Point{3, 5}, Point{4, 6})))

	// Walk a 2x3 block and check the box covers exactly that block.
	a.Reset()
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			a.Add(Point{x, y})
		}
	}
	require.Equal(t, uint64(6), a.Size())
	require.True(t, a.Equal(NewBounded(Point{0, 0}, Point{2, 3})))

	require.Panics(t, func() { a.Add(Point{1, 2, 3}) })
}

func TestUnion(t *testing.T) {
	// Adjacent along one axis.
	a := NewBounded(Point{0, 0}, Point{2, 4})
	a.Union(NewBounded(Point{2, 0}, Point{5, 4}))
	require.True(t, a.Equal(NewBounded(Point{0, 0}, Point{5, 4})))

	// Overlapping along one axis.
	a = NewBounded(Point{0, 0}, Point{3, 4})
	a.Union(NewBounded(Point{1, 0}, Point{6, 4}))
	require.True(t, a.Equal(NewBounded(Point{0, 0}, Point{6, 4})))

	// Nested either way.
	a = NewBounded(Point{0, 0}, Point{4, 4})
	a.Union(NewBounded(Point{1, 1}, Point{2, 2}))
	require.True(t, a.Equal(NewBounded(Point{0, 0}, Point{4, 4})))
	b := NewBounded(Point{1, 1}, Point{2, 2})
	b.Union(NewBounded(Point{0, 0}, Point{4, 4}))
	require.True(t, b.Equal(NewBounded(Point{0, 0}, Point{4, 4})))

	// Empty operands are identities.
	a = NewBounded(Point{0, 0}, Point{2, 2})
	a.Union(New(2))
	require.True(t, a.Equal(NewBounded(Point{0, 0}, Point{2, 2})))
	empty := New(2)
	empty.Union(a)
	require.True(t, empty.Equal(a))

	// A union with itself changes nothing.
	a.Union(a.Clone())
	require.Equal(t, uint64(4), a.Size())

	// Gap on the differing axis.
	a = NewBounded(Point{0, 0}, Point{2, 4})
	require.Panics(t, func() { a.Union(NewBounded(Point{3, 0}, Point{5, 4})) })

	// Differs on two axes without nesting.
	a = NewBounded(Point{0, 0}, Point{2, 2})
	require.Panics(t, func() { a.Union(NewBounded(Point{2, 2}, Point{4, 4})) })

	require.Panics(t, func() { a.Union(New(3)) })
}

func TestDifference(t *testing.T) {
	a := NewBounded(Point{0, 0}, Point{4, 4})

	// Disjoint: difference is the receiver.
	d := a.Difference(NewBounded(Point{10, 10}, Point{12, 12}))
	require.True(t, d.Equal(a))

	// Full cover: difference is empty.
	d = a.Difference(NewBounded(Point{0, 0}, Point{4, 4}))
	require.True(t, d.IsEmpty())
	d = a.Difference(NewBounded(Point{-1, -1}, Point{5, 5}))
	require.True(t, d.IsEmpty())

	// Trim the low face of one axis.
	d = a.Difference(NewBounded(Point{0, 0}, Point{2, 4}))
	require.True(t, d.Equal(NewBounded(Point{2, 0}, Point{4, 4})))

	// Trim the high face of one axis.
	d = a.Difference(NewBounded(Point{2, 0}, Point{4, 4}))
	require.True(t, d.Equal(NewBounded(Point{0, 0}, Point{2, 4})))

	// Operands untouched.
	require.Equal(t, uint64(16), a.Size())

	// Empty operands.
	require.True(t, New(2).Difference(a).IsEmpty())
	require.True(t, a.Difference(New(2)).Equal(a))

	// A slab through the interior would split the box in two.
	require.Panics(t, func() { a.Difference(NewBounded(Point{1, 0}, Point{3, 4})) })

	// A corner bite leaves an L-shaped residue.
	require.Panics(t, func() { a.Difference(NewBounded(Point{2, 2}, Point{6, 6})) })

	require.Panics(t, func() { a.Difference(New(3)) })
}

func TestEqualAndReset(t *testing.T) {
	a := NewBounded(Point{1, 2}, Point{3, 4})
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(NewBounded(Point{0, 2}, Point{3, 4})))
	require.False(t, a.Equal(New(3)))

	// All empties of one rank are the same point set.
	require.True(t, New(2).Equal(NewBounded(Point{5, 5}, Point{5, 9})))

	a.Reset()
	require.True(t, a.IsEmpty())
	require.True(t, a.Equal(New(2)))
	a.Reset() // idempotent
	require.True(t, a.IsEmpty())
}

func TestClone(t *testing.T) {
	a := NewBounded(Point{0, 0}, Point{2, 2})
	b := a.Clone()
	b.Add(Point{5, 0})
	require.Equal(t, uint64(4), a.Size())
	require.Equal(t, uint64(12), b.Size())
}

func TestString(t *testing.T) {
	require.Equal(t, "[0:2)[1:4)", NewBounded(Point{0, 1}, Point{2, 4}).String())
	require.Contains(t, New(3).String(), "rank 3")
}
