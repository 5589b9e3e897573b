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
	"context"

	"github.com/google/uuid"
)

// Canonicalize is the top-level driver: hash the dataset's blank nodes
// to a fixed point; if the result is already trivial, relabel directly;
// otherwise break symmetries with distinguish and return the
// lexicographically minimal candidate.
//
// cfg may be nil, in which case DefaultConfig() is used. log may be nil,
// in which case logging is discarded. ctx governs distinguish's
// computation budget together with cfg.DistinguishStepBudget.
func Canonicalize(ctx context.Context, ds *Dataset, cfg *Config, log *Logger) (*Dataset, error) {
	if cfg == nil {
		var err error
		cfg, err = DefaultConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = NewDiscardLogger()
	}

	for _, q := range ds.Quads() {
		if !q.Valid() {
			return nil, NewError(MalformedInput, q)
		}
	}

	runID := uuid.NewString()
	log = &Logger{Logger: log.Logger.WithValues("run", runID)}
	log.Info("canonicalize: start", "quads", len(ds.Quads()), "blankNodes", len(ds.BlankNodes()))

	cache := newTermHashCache(cfg.hasher())

	h, err := hashBNodes(ds, nil, cache, cfg, log)
	if err != nil {
		return nil, err
	}

	if h.IsTrivial() {
		log.Info("canonicalize: trivial fixed point, relabeling directly")
		return ds.Relabel(h.OrderedBlankIDs()), nil
	}

	log.Info("canonicalize: non-trivial fixed point, entering distinguish")
	st := &distinguishState{cache: cache, cfg: cfg, log: log}
	result, err := distinguish(ctx, ds, h, nil, st)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, NewError(InternalInvariantViolated, "distinguish returned no candidate")
	}
	log.Info("canonicalize: done", "distinguishSteps", st.steps)
	return result, nil
}
