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
	"github.com/gomlx/exceptions"
)

// GetMaxWorkingSetSizes returns the closed-form peak footprint of each
// tensor for a block of iteration space with the given per-dimension
// extents, without constructing any region:
//
//	Weights = R·S·C·K
//	Inputs  = (P+R−1)·(Q+S−1)·C·N
//	Outputs = P·Q·K·N
//
// The Inputs term is the receptive-field patch: an R×S kernel sliding over
// a P×Q output window reads a (P+R−1)×(Q+S−1) input patch. The formula
// assumes unit stride and dilation, so for strided or dilated convolutions
// it is an upper bound on the exact footprint, not an exact count. Use it
// for cheap capacity pruning before a full region-based evaluation.
//
// All extents must be positive; a non-positive extent panics.
func GetMaxWorkingSetSizes(extents PerDimension) PerDataType[uint64] {
	for d, extent := range extents {
		if extent <= 0 {
			exceptions.Panicf("problem: extent of dimension %s must be positive, got %d", Dimension(d), extent)
		}
	}
	var sizes PerDataType[uint64]
	sizes[Weight] = uint64(extents[R]) * uint64(extents[S]) *
		uint64(extents[C]) * uint64(extents[K])
	sizes[Input] = uint64(extents[P]+extents[R]-1) * uint64(extents[Q]+extents[S]-1) *
		uint64(extents[C]) * uint64(extents[N])
	sizes[Output] = uint64(extents[P]) * uint64(extents[Q]) *
		uint64(extents[K]) * uint64(extents[N])
	return sizes
}
