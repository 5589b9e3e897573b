// Copyright 2026 rdfcanon contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package canon

import (
	"os"
	"reflect"

	"github.com/creasty/defaults"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// HashFunction selects the Hasher used by a Canonicalize call.
type HashFunction string

const (
	SHA256Hash  HashFunction = "sha256"
	XXHash64    HashFunction = "xxhash64"
	defaultHash              = SHA256Hash
)

// Config holds the configuration surface for a canonicalization run:
// which hash function and bag realization to use, plus the knobs an
// embedder may impose (a step budget on distinguish, an iteration-bound
// multiplier). Field defaults are set via github.com/creasty/defaults,
// overridable from the environment via
// github.com/kelseyhightower/envconfig, or loaded from a YAML file.
type Config struct {
	// HashFunction is the configured hash function. Default: sha256.
	HashFunction HashFunction `yaml:"hashFunction" envconfig:"CANON_HASH_FUNCTION" default:"sha256"`

	// BagRealization selects the bag combiner. Default: sorted-tuple.
	BagRealization BagRealization `yaml:"bagRealization" envconfig:"CANON_BAG_REALIZATION" default:"sorted-tuple"`

	// IterationMultiplier bounds hashBNodes at IterationMultiplier *
	// |blank nodes| iterations before raising HashCollision. Default: 2.
	IterationMultiplier int `yaml:"iterationMultiplier" envconfig:"CANON_ITERATION_MULTIPLIER" default:"2"`

	// DistinguishStepBudget caps the number of distinguish recursive
	// calls before aborting with ComputationBudgetExceeded. Zero (the
	// default) means unlimited.
	DistinguishStepBudget int `yaml:"distinguishStepBudget" envconfig:"CANON_DISTINGUISH_STEP_BUDGET" default:"0"`
}

// DefaultConfig returns a Config with every field set to its default
// value.
func DefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig builds a Config starting from defaults, then a YAML file
// at path (if path is non-empty), then environment variable overrides,
// in that order, so the environment always wins.
func LoadConfig(path string) (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied configuration, not untrusted input
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// envconfig falls back to a field's `default` tag when its variable is
	// unset, so only variables that are actually set are copied over.
	env := &Config{}
	if err := envconfig.Process("", env); err != nil {
		return nil, err
	}
	cv, ev := reflect.ValueOf(cfg).Elem(), reflect.ValueOf(env).Elem()
	for i := 0; i < cv.NumField(); i++ {
		if _, ok := os.LookupEnv(cv.Type().Field(i).Tag.Get("envconfig")); ok {
			cv.Field(i).Set(ev.Field(i))
		}
	}

	return cfg, nil
}

func (c *Config) hasher() Hasher {
	switch c.HashFunction {
	case XXHash64:
		return xxhash64Hasher{}
	default:
		return sha256Hasher{}
	}
}

func (c *Config) bagRealization() BagRealization {
	if c.BagRealization == "" {
		return SortedTupleBag
	}
	return c.BagRealization
}

func (c *Config) iterationMultiplier() int {
	if c.IterationMultiplier <= 0 {
		return defaultIterationMultiplier
	}
	return c.IterationMultiplier
}
