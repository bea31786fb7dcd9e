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

package problem

import (
	"fmt"
	"io"

	"github.com/archsearch/convgeom/aahr"
	"github.com/dustin/go-humanize"
)

// OperationSpace is the footprint of a block of iteration space: one
// region per tensor category, exclusively owned by this value. Mapping
// exploration creates and discards one per candidate evaluation step, so
// every operation here is a handful of integer comparisons.
//
// Binary operations (Accumulate, Difference, CheckEquality) assume both
// operands were built against the same Shape and WorkloadConfig; this is
// a caller obligation and is not re-checked per call.
type OperationSpace struct {
	shape      *Shape
	config     WorkloadConfig
	dataSpaces PerDataType[aahr.AAHR]
}

// NewOperationSpace returns an OperationSpace with one empty region per
// tensor category.
func NewOperationSpace(shape *Shape, cfg WorkloadConfig) *OperationSpace {
	o := &OperationSpace{shape: shape, config: cfg}
	for d := DataType(0); d < NumDataTypes; d++ {
		o.dataSpaces[d] = aahr.New(shape.dataSpaceRanks[d])
	}
	return o
}

// NewBoundedOperationSpace returns the footprint of the iteration-space
// box spanning low to high, both inclusive: each corner is projected into
// every tensor's coordinate space and the projected high corner is
// incremented on every axis to form the exclusive bound. Tensor coordinate
// spaces are unit-step integer lattices, so the uniform increment is
// exact. A high corner that does not dominate low yields empty regions.
func NewBoundedOperationSpace(shape *Shape, cfg WorkloadConfig, low, high OperationPoint) *OperationSpace {
	o := &OperationSpace{shape: shape, config: cfg}
	for d := DataType(0); d < NumDataTypes; d++ {
		spaceLow := shape.projectors[d](cfg, low)
		spaceHigh := shape.projectors[d](cfg, high)
		spaceHigh.IncrementAll()
		o.dataSpaces[d] = aahr.NewBounded(spaceLow, spaceHigh)
	}
	return o
}

// Reset clears every region to empty. Idempotent.
func (o *OperationSpace) Reset() {
	for d := range o.dataSpaces {
		o.dataSpaces[d].Reset()
	}
}

// Accumulate unions the other space's regions into the receiver's,
// tensor by tensor, and returns the receiver.
func (o *OperationSpace) Accumulate(other *OperationSpace) *OperationSpace {
	for d := range o.dataSpaces {
		o.dataSpaces[d].Union(other.dataSpaces[d])
	}
	return o
}

// AccumulatePoint projects a single iteration-space point through every
// tensor's projector and unions the resulting coordinates into the
// matching regions. This is the incremental path used when walking an
// iteration block point by point instead of bounding it.
func (o *OperationSpace) AccumulatePoint(p OperationPoint) *OperationSpace {
	for d := range o.dataSpaces {
		o.dataSpaces[d].Add(o.shape.projectors[d](o.config, p))
	}
	return o
}

// Difference returns a new OperationSpace holding, per tensor, the
// receiver's region minus the other's. Neither operand is mutated.
func (o *OperationSpace) Difference(other *OperationSpace) *OperationSpace {
	result := &OperationSpace{shape: o.shape, config: o.config}
	for d := range o.dataSpaces {
		result.dataSpaces[d] = o.dataSpaces[d].Difference(other.dataSpaces[d])
	}
	return result
}

// GetSizes returns the point count of every tensor's region.
func (o *OperationSpace) GetSizes() PerDataType[uint64] {
	var sizes PerDataType[uint64]
	for d := range o.dataSpaces {
		sizes[d] = o.dataSpaces[d].Size()
	}
	return sizes
}

// GetSize returns the point count of one tensor's region.
func (o *OperationSpace) GetSize(d DataType) uint64 {
	o.shape.checkDataType(d)
	return o.dataSpaces[d].Size()
}

// IsEmpty reports whether one tensor's region contains no points.
func (o *OperationSpace) IsEmpty(d DataType) bool {
	o.shape.checkDataType(d)
	return o.dataSpaces[d].IsEmpty()
}

// CheckEquality compares one tensor's region across two spaces.
func (o *OperationSpace) CheckEquality(other *OperationSpace, d DataType) bool {
	o.shape.checkDataType(d)
	return o.dataSpaces[d].Equal(other.dataSpaces[d])
}

// Print writes a diagnostic rendering of every region to w.
func (o *OperationSpace) Print(w io.Writer) {
	for d := range o.dataSpaces {
		fmt.Fprintf(w, "%s: ", DataType(d))
		o.dataSpaces[d].Print(w)
	}
}

// PrintSizes writes the per-tensor point counts to w on one line.
func (o *OperationSpace) PrintSizes(w io.Writer) {
	for d := range o.dataSpaces {
		if d > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%s = %s", DataType(d), humanize.Comma(int64(o.dataSpaces[d].Size())))
	}
	fmt.Fprintln(w)
}
