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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMaxWorkingSetSizes(t *testing.T) {
	// R,S,P,Q,C,K,N
	sizes := GetMaxWorkingSetSizes(PerDimension{3, 3, 4, 4, 1, 1, 1})
	require.Equal(t, uint64(9), sizes[Weight])
	require.Equal(t, uint64(36), sizes[Input]) // (4+3−1)·(4+3−1)
	require.Equal(t, uint64(16), sizes[Output])

	sizes = GetMaxWorkingSetSizes(PerDimension{1, 1, 7, 5, 3, 8, 2})
	require.Equal(t, uint64(1*1*3*8), sizes[Weight])
	require.Equal(t, uint64(7*5*3*2), sizes[Input]) // 1x1 kernel: no halo
	require.Equal(t, uint64(7*5*8*2), sizes[Output])
}

func TestGetMaxWorkingSetSizesPositive(t *testing.T) {
	for d := Dimension(0); d < NumDimensions; d++ {
		extents := PerDimension{5, 4, 6, 7, 2, 3, 2}
		sizes := GetMaxWorkingSetSizes(extents)
		for dt := DataType(0); dt < NumDataTypes; dt++ {
			require.Greater(t, sizes[dt], uint64(0))
		}

		// Any non-positive extent is a precondition violation.
		extents[d] = 0
		require.Panics(t, func() { GetMaxWorkingSetSizes(extents) })
		extents[d] = -2
		require.Panics(t, func() { GetMaxWorkingSetSizes(extents) })
	}
}
