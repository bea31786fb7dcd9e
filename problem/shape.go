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
	"github.com/archsearch/convgeom/aahr"
	"github.com/gomlx/exceptions"
)

var dimensionNames = [NumDimensions]string{"R", "S", "P", "Q", "C", "K", "N"}

// dataTypeNames has one extra slot so the sentinel prints as something
// recognizable in diagnostics.
var dataTypeNames = [NumDataTypes + 1]string{"Weights", "Inputs", "Outputs", "Shared/Illegal"}

// Coordinate order within the Weights space.
const (
	weightR = iota
	weightS
	weightC
	weightK
	numWeightCoords
)

// Coordinate order within the Inputs space. W and H are spatial positions
// in the input feature map, not iteration dimensions.
const (
	inputW = iota
	inputH
	inputC
	inputN
	numInputCoords
)

// Coordinate order within the Outputs space.
const (
	outputP = iota
	outputQ
	outputK
	outputN
	numOutputCoords
)

// projector maps an iteration-space point into one tensor's coordinate
// space. The projector at slot d must only ever feed the region at slot d.
type projector func(cfg WorkloadConfig, p OperationPoint) aahr.Point

// Shape is the immutable problem-shape registry: dimension and data-type
// name tables, per-tensor coordinate-space ranks, and the projector per
// tensor category. Build one with BuildProblemShape and share it by
// reference; it never changes after construction.
type Shape struct {
	dimensionByName map[string]Dimension
	dimensionByCode map[byte]Dimension
	dataTypeByName  map[string]DataType
	dataSpaceRanks  PerDataType[int]
	projectors      PerDataType[projector]
}

// BuildProblemShape constructs the problem-shape registry. The shape of a
// convolution is fixed at compile time, so there is no error path; call it
// once at startup and pass the result into every projector call and
// OperationSpace constructor.
func BuildProblemShape() *Shape {
	s := &Shape{
		dimensionByName: make(map[string]Dimension, NumDimensions),
		dimensionByCode: make(map[byte]Dimension, NumDimensions),
		dataTypeByName:  make(map[string]DataType, NumDataTypes),
	}
	for d := Dimension(0); d < NumDimensions; d++ {
		s.dimensionByName[dimensionNames[d]] = d
		s.dimensionByCode[dimensionNames[d][0]] = d
	}
	for d := DataType(0); d < NumDataTypes; d++ {
		s.dataTypeByName[dataTypeNames[d]] = d
	}
	s.dataSpaceRanks = PerDataType[int]{numWeightCoords, numInputCoords, numOutputCoords}
	s.projectors = PerDataType[projector]{projectWeight, projectInput, projectOutput}
	return s
}

// DimensionByName returns the dimension with the given name ("R".."N").
func (s *Shape) DimensionByName(name string) (Dimension, bool) {
	d, ok := s.dimensionByName[name]
	return d, ok
}

// DimensionByCode returns the dimension with the given character code,
// e.g. 'P'.
func (s *Shape) DimensionByCode(code byte) (Dimension, bool) {
	d, ok := s.dimensionByCode[code]
	return d, ok
}

// DataTypeByName returns the tensor category with the given name
// ("Weights", "Inputs" or "Outputs").
func (s *Shape) DataTypeByName(name string) (DataType, bool) {
	d, ok := s.dataTypeByName[name]
	return d, ok
}

// DataSpaceRank returns the number of coordinate axes of the given
// tensor's space.
func (s *Shape) DataSpaceRank(d DataType) int {
	s.checkDataType(d)
	return s.dataSpaceRanks[d]
}

// Project maps an iteration-space point into the coordinate space of the
// given tensor category. cfg may be nil for Weight and Output, which
// ignore stride and dilation.
func (s *Shape) Project(d DataType, cfg WorkloadConfig, p OperationPoint) aahr.Point {
	s.checkDataType(d)
	return s.projectors[d](cfg, p)
}

func (s *Shape) checkDataType(d DataType) {
	if d < 0 || d >= NumDataTypes {
		exceptions.Panicf("problem: data type index %d out of range [0, %d)", int(d), int(NumDataTypes))
	}
}

func projectWeight(_ WorkloadConfig, p OperationPoint) aahr.Point {
	point := make(aahr.Point, numWeightCoords)
	point[weightR] = p[R]
	point[weightS] = p[S]
	point[weightC] = p[C]
	point[weightK] = p[K]
	return point
}

func projectInput(cfg WorkloadConfig, p OperationPoint) aahr.Point {
	if cfg == nil {
		exceptions.Panicf("problem: the Inputs projector requires a workload configuration")
	}
	point := make(aahr.Point, numInputCoords)
	point[inputW] = cfg.StrideW()*p[P] + cfg.DilationW()*p[R]
	point[inputH] = cfg.StrideH()*p[Q] + cfg.DilationH()*p[S]
	point[inputC] = p[C]
	point[inputN] = p[N]
	return point
}

func projectOutput(_ WorkloadConfig, p OperationPoint) aahr.Point {
	point := make(aahr.Point, numOutputCoords)
	point[outputP] = p[P]
	point[outputQ] = p[Q]
	point[outputK] = p[K]
	point[outputN] = p[N]
	return point
}
