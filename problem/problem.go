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

// Package problem models the iteration-space geometry of a convolution
// workload for accelerator mapping exploration.
//
// A convolution is a 7-deep loop nest over the dimensions R, S (kernel
// width and height), P, Q (output width and height), C, K (input and
// output channels) and N (batch). Each of the three tensors a mapping
// touches lives in its own 4-dimensional coordinate space, reached from
// the iteration space through a fixed affine projection:
//
//   - Weights: (R, S, C, K), copied verbatim.
//   - Inputs: (W, H, C, N), where W = strideW·P + dilationW·R and
//     H = strideH·Q + dilationH·S.
//   - Outputs: (P, Q, K, N), copied verbatim.
//
// Shape holds the dimension and data-type tables and the projector per
// tensor; build it once with BuildProblemShape and pass it explicitly.
// OperationSpace tracks one footprint region per tensor and supports the
// set algebra (accumulate, difference, sizes) the mapping search runs in
// its inner loop. GetMaxWorkingSetSizes gives closed-form peak footprints
// for cheap feasibility pruning without building any region.
//
// ## Glossary
//
//   - Iteration space: the 7-dimensional index space (R,S,P,Q,C,K,N) of
//     the convolution's nested loops.
//   - Tensor coordinate space: the per-tensor subspace produced by
//     projecting an iteration-space point through that tensor's
//     addressing function.
//   - Working set: the minimal tensor footprint covering a block of
//     iteration space, used to size on-chip buffers.
//
// Everything in this package is synchronous, in-memory computation over
// integer points; nothing is safe for concurrent mutation, and parallel
// exploration workers must hold private OperationSpace values.
package problem

import (
	"github.com/gomlx/exceptions"
)

// Dimension identifies one loop variable of the convolution's 7-deep nest.
type Dimension int

// The seven problem dimensions. NumDimensions is a sentinel, not a valid
// dimension.
const (
	R Dimension = iota // kernel width
	S                  // kernel height
	P                  // output width
	Q                  // output height
	C                  // input channels
	K                  // output channels
	N                  // batch
	NumDimensions
)

// String implements fmt.Stringer. Panics on an out-of-range dimension.
func (d Dimension) String() string {
	if d < 0 || d >= NumDimensions {
		exceptions.Panicf("problem: dimension index %d out of range [0, %d)", int(d), int(NumDimensions))
	}
	return dimensionNames[d]
}

// DataType identifies one of the tensor categories a convolution touches.
type DataType int

// The tensor categories. NumDataTypes is a sentinel, not a valid category.
const (
	Weight DataType = iota
	Input
	Output
	NumDataTypes
)

// String implements fmt.Stringer. The sentinel prints as "Shared/Illegal";
// anything past it panics.
func (d DataType) String() string {
	if d < 0 || d > NumDataTypes {
		exceptions.Panicf("problem: data type index %d out of range [0, %d]", int(d), int(NumDataTypes))
	}
	return dataTypeNames[d]
}

// IsReadWrite reports whether the tensor category is both read and written
// by the convolution. Only Output accumulates partial sums in place; Weight
// and Input are read-only.
func (d DataType) IsReadWrite() bool {
	return d == Output
}

// OperationPoint is a point in the 7-dimensional iteration space, indexed
// by Dimension.
type OperationPoint [NumDimensions]int

// Increment advances the point by one along dimension d.
func (p *OperationPoint) Increment(d Dimension) {
	p[d]++
}

// PerDimension holds one integer per problem Dimension, e.g. the loop
// extents of a workload.
type PerDimension [NumDimensions]int

// PerDataType holds one value per tensor category, indexable by DataType.
type PerDataType[T any] [NumDataTypes]T

// WorkloadConfig supplies the stride and dilation of the two spatial axes.
// Only the input projector consults it. W parameters apply to the P/R axis
// pair, H parameters to Q/S.
type WorkloadConfig interface {
	StrideW() int
	StrideH() int
	DilationW() int
	DilationH() int
}
