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

// Package aahr implements an axis-aligned hyper-rectangular point set over
// an integer lattice, the footprint primitive used to track the set of
// tensor coordinates touched by a block of computation.
//
// An AAHR is stored as two corner points and covers the half-open box
// `[low, high)`: low is inclusive, high is exclusive, and every coordinate
// step is one lattice unit. A box where high does not exceed low on some
// axis is empty; all empty boxes of the same rank compare equal.
//
// The set algebra (Union, Add, Difference) is deliberately restricted to
// operations whose result is itself a single box. Footprint accumulation in
// a mapping search walks dense, contiguous index blocks, so unions always
// merge along a single axis and differences always trim one face; anything
// else indicates a broken caller invariant and panics rather than silently
// returning an over- or under-approximation.
package aahr

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
)

// Point is a coordinate in one tensor's index space.
type Point []int

// Clone returns a deep copy of the point.
func (p Point) Clone() Point { return slices.Clone(p) }

// IncrementAll adds one to every coordinate in place. Used to turn an
// inclusive upper corner into the exclusive bound NewBounded expects.
func (p Point) IncrementAll() {
	for axis := range p {
		p[axis]++
	}
}

// AAHR is an axis-aligned hyper-rectangle `[low, high)`. The zero value is
// unusable; construct with New or NewBounded. Not safe for concurrent
// mutation.
type AAHR struct {
	low, high Point
}

// New returns an empty AAHR of the given rank.
func New(rank int) AAHR {
	if rank <= 0 {
		exceptions.Panicf("aahr.New: rank must be positive, got %d", rank)
	}
	return AAHR{low: make(Point, rank), high: make(Point, rank)}
}

// NewBounded returns the box [low, high): low inclusive, high exclusive.
// If high does not exceed low on some axis the box is empty; that is a
// valid degenerate footprint, not an error, and callers are expected to
// check IsEmpty or Size rather than assume a nonzero extent.
func NewBounded(low, high Point) AAHR {
	if len(low) == 0 || len(low) != len(high) {
		exceptions.Panicf("aahr.NewBounded: mismatched corner ranks %d and %d", len(low), len(high))
	}
	a := AAHR{low: low.Clone(), high: high.Clone()}
	if a.Size() == 0 {
		a.Reset() // canonical empty form
	}
	return a
}

// Rank returns the number of axes.
func (a AAHR) Rank() int { return len(a.low) }

// Size returns the number of lattice points in the box.
func (a AAHR) Size() (size uint64) {
	size = 1
	for axis := range a.low {
		extent := a.high[axis] - a.low[axis]
		if extent <= 0 {
			return 0
		}
		size *= uint64(extent)
	}
	return
}

// IsEmpty reports whether the box contains no points.
func (a AAHR) IsEmpty() bool { return a.Size() == 0 }

// Reset makes the box empty in place.
func (a *AAHR) Reset() {
	for axis := range a.low {
		a.low[axis], a.high[axis] = 0, 0
	}
}

// Clone returns a deep copy.
func (a AAHR) Clone() AAHR {
	return AAHR{low: a.low.Clone(), high: a.high.Clone()}
}

// Equal compares two boxes as point sets: empty boxes of equal rank are
// equal regardless of their corners.
func (a AAHR) Equal(b AAHR) bool {
	if a.Rank() != b.Rank() {
		return false
	}
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() == b.IsEmpty()
	}
	return slices.Equal(a.low, b.low) && slices.Equal(a.high, b.high)
}

// Add unions a single point into the box in place. The first point seeds a
// unit box; later points stretch the corners to cover it. Exact only under
// the accumulation discipline described in the package documentation: the
// stream of points must fill a box, with no diagonal gaps left uncovered.
func (a *AAHR) Add(p Point) {
	if len(p) != a.Rank() {
		exceptions.Panicf("aahr.Add: point rank %d does not match box rank %d", len(p), a.Rank())
	}
	if a.IsEmpty() {
		for axis, c := range p {
			a.low[axis], a.high[axis] = c, c+1
		}
		return
	}
	for axis, c := range p {
		a.low[axis] = min(a.low[axis], c)
		a.high[axis] = max(a.high[axis], c+1)
	}
}

// Union merges b into the receiver in place. The operands must form a
// single box: one contains the other, or they differ on exactly one axis
// and overlap or touch there. Any other pair panics.
func (a *AAHR) Union(b AAHR) {
	if a.Rank() != b.Rank() {
		exceptions.Panicf("aahr.Union: mismatched ranks %d and %d", a.Rank(), b.Rank())
	}
	if b.IsEmpty() {
		return
	}
	if a.IsEmpty() || b.contains(*a) {
		copy(a.low, b.low)
		copy(a.high, b.high)
		return
	}
	if a.contains(b) {
		return
	}
	axis := a.singleDifferingAxis(b)
	if axis < 0 {
		exceptions.Panicf("aahr.Union: %s ∪ %s is not a hyper-rectangle", a, b)
	}
	if b.low[axis] > a.high[axis] || a.low[axis] > b.high[axis] {
		exceptions.Panicf("aahr.Union: %s and %s leave a gap on axis %d", a, b, axis)
	}
	a.low[axis] = min(a.low[axis], b.low[axis])
	a.high[axis] = max(a.high[axis], b.high[axis])
}

// Difference returns the points of a not in b as a new box, leaving both
// operands untouched. The residue must itself be a box: the operands are
// disjoint, or b covers a, or b trims one face of a. Carving b out of a's
// interior would split a in two and panics.
func (a AAHR) Difference(b AAHR) AAHR {
	if a.Rank() != b.Rank() {
		exceptions.Panicf("aahr.Difference: mismatched ranks %d and %d", a.Rank(), b.Rank())
	}
	if a.IsEmpty() || b.IsEmpty() || !a.intersects(b) {
		return a.Clone()
	}
	if b.contains(a) {
		return New(a.Rank())
	}
	// The intersection is non-empty and proper. For the residue to remain a
	// box, b must cover a's full interval on every axis but one.
	axis := -1
	for i := range a.low {
		if b.low[i] > a.low[i] || b.high[i] < a.high[i] {
			if axis >= 0 {
				exceptions.Panicf("aahr.Difference: %s − %s is not a hyper-rectangle", a, b)
			}
			axis = i
		}
	}
	residue := a.Clone()
	switch {
	case b.low[axis] <= a.low[axis]:
		// b trims the low face.
		residue.low[axis] = b.high[axis]
	case b.high[axis] >= a.high[axis]:
		// b trims the high face.
		residue.high[axis] = b.low[axis]
	default:
		exceptions.Panicf("aahr.Difference: %s splits %s in two on axis %d", b, a, axis)
	}
	return residue
}

// contains reports whether b (assumed non-empty) lies within a.
func (a AAHR) contains(b AAHR) bool {
	for axis := range a.low {
		if b.low[axis] < a.low[axis] || b.high[axis] > a.high[axis] {
			return false
		}
	}
	return true
}

// intersects reports whether two non-empty boxes share at least one point.
func (a AAHR) intersects(b AAHR) bool {
	for axis := range a.low {
		if b.low[axis] >= a.high[axis] || a.low[axis] >= b.high[axis] {
			return false
		}
	}
	return true
}

// singleDifferingAxis returns the only axis on which the two boxes'
// intervals differ, or -1 if they differ on more than one. Boxes known
// unequal by the caller.
func (a AAHR) singleDifferingAxis(b AAHR) int {
	axis := -1
	for i := range a.low {
		if a.low[i] != b.low[i] || a.high[i] != b.high[i] {
			if axis >= 0 {
				return -1
			}
			axis = i
		}
	}
	return axis
}

// String pretty-prints the box as per-axis half-open intervals.
func (a AAHR) String() string {
	if a.IsEmpty() {
		return fmt.Sprintf("∅(rank %d)", a.Rank())
	}
	parts := make([]string, 0, a.Rank())
	for axis := range a.low {
		parts = append(parts, fmt.Sprintf("[%d:%d)", a.low[axis], a.high[axis]))
	}
	return strings.Join(parts, "")
}

// Print writes a diagnostic rendering of the box to w.
func (a AAHR) Print(w io.Writer) {
	fmt.Fprintln(w, a.String())
}
