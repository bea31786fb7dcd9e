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

// Package workload describes one convolution layer: the seven loop extents
// plus the stride and dilation of the two spatial axes. A Config is the
// concrete problem.WorkloadConfig the projectors consume, and can be read
// from the YAML layer descriptions an exploration run is driven by.
package workload

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/archsearch/convgeom/problem"
)

// Config holds one convolution layer's shape. W parameters apply to the
// P/R spatial axis pair, H parameters to Q/S. All fields must be positive;
// use Validate after literal construction.
type Config struct {
	R, S, P, Q, C, K, N int

	WStride   int
	HStride   int
	WDilation int
	HDilation int
}

// New returns a Config for the given extents with unit stride and
// dilation.
func New(r, s, p, q, c, k, n int) *Config {
	return &Config{
		R: r, S: s, P: p, Q: q, C: c, K: k, N: n,
		WStride: 1, HStride: 1, WDilation: 1, HDilation: 1,
	}
}

// StrideW implements problem.WorkloadConfig.
func (c *Config) StrideW() int { return c.WStride }

// StrideH implements problem.WorkloadConfig.
func (c *Config) StrideH() int { return c.HStride }

// DilationW implements problem.WorkloadConfig.
func (c *Config) DilationW() int { return c.WDilation }

// DilationH implements problem.WorkloadConfig.
func (c *Config) DilationH() int { return c.HDilation }

// Validate returns an error if any extent, stride or dilation is not
// positive.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"R", c.R}, {"S", c.S}, {"P", c.P}, {"Q", c.Q},
		{"C", c.C}, {"K", c.K}, {"N", c.N},
		{"Wstride", c.WStride}, {"Hstride", c.HStride},
		{"Wdilation", c.WDilation}, {"Hdilation", c.HDilation},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return errors.Errorf("workload: %s must be positive, got %d", f.name, f.value)
		}
	}
	return nil
}

// Extents returns the seven loop extents indexed by problem.Dimension,
// the form problem.GetMaxWorkingSetSizes consumes.
func (c *Config) Extents() problem.PerDimension {
	var extents problem.PerDimension
	extents[problem.R] = c.R
	extents[problem.S] = c.S
	extents[problem.P] = c.P
	extents[problem.Q] = c.Q
	extents[problem.C] = c.C
	extents[problem.K] = c.K
	extents[problem.N] = c.N
	return extents
}

// Bounds returns the inclusive corners of the layer's full iteration
// space: low is the origin and high holds extent−1 per dimension. Feed
// them to problem.NewBoundedOperationSpace, which performs the
// inclusive-to-exclusive conversion itself.
func (c *Config) Bounds() (low, high problem.OperationPoint) {
	extents := c.Extents()
	for d := range high {
		high[d] = extents[d] - 1
	}
	return
}

// yamlConfig mirrors Config with optional stride/dilation so absent keys
// can be told apart from explicit zeros.
type yamlConfig struct {
	R *int `yaml:"R"`
	S *int `yaml:"S"`
	P *int `yaml:"P"`
	Q *int `yaml:"Q"`
	C *int `yaml:"C"`
	K *int `yaml:"K"`
	N *int `yaml:"N"`

	WStride   *int `yaml:"Wstride"`
	HStride   *int `yaml:"Hstride"`
	WDilation *int `yaml:"Wdilation"`
	HDilation *int `yaml:"Hdilation"`
}

// FromYAML parses a layer description. The seven extents are required;
// stride and dilation default to 1 when absent. The returned Config is
// already validated.
func FromYAML(data []byte) (*Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "workload: failed to parse layer description")
	}
	cfg := &Config{}
	extents := []struct {
		name string
		src  *int
		dst  *int
	}{
		{"R", raw.R, &cfg.R}, {"S", raw.S, &cfg.S},
		{"P", raw.P, &cfg.P}, {"Q", raw.Q, &cfg.Q},
		{"C", raw.C, &cfg.C}, {"K", raw.K, &cfg.K},
		{"N", raw.N, &cfg.N},
	}
	for _, e := range extents {
		if e.src == nil {
			return nil, errors.Errorf("workload: layer description is missing dimension %s", e.name)
		}
		*e.dst = *e.src
	}
	optionals := []struct {
		name string
		src  *int
		dst  *int
	}{
		{"Wstride", raw.WStride, &cfg.WStride},
		{"Hstride", raw.HStride, &cfg.HStride},
		{"Wdilation", raw.WDilation, &cfg.WDilation},
		{"Hdilation", raw.HDilation, &cfg.HDilation},
	}
	for _, o := range optionals {
		if o.src == nil {
			klog.V(1).Infof("workload: %s not given, defaulting to 1", o.name)
			*o.dst = 1
			continue
		}
		*o.dst = *o.src
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a YAML layer description from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "workload: failed to read layer description %q", path)
	}
	return FromYAML(data)
}
