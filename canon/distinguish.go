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

import "context"

// distinguishState carries the mutable bookkeeping threaded through the
// recursive distinguish calls: a shared step counter against
// Config.DistinguishStepBudget, and the resources every recursive
// branch needs to re-run the hasher.
type distinguishState struct {
	cache *termHashCache
	cfg   *Config
	log   *Logger
	steps int
}

// distinguish breaks the symmetry hashing alone can't resolve: when
// hashBNodes reaches a non-trivial fixed point, it picks one blank node
// at a time from the lowest non-trivial partition group, perturbs its
// hash, re-runs the hasher, and recurses until every branch is trivial,
// then keeps the lexicographically minimal resulting Dataset.
func distinguish(ctx context.Context, ds *Dataset, h *HashTable, gmin *Dataset, st *distinguishState) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewError(ComputationBudgetExceeded, err.Error())
	}
	st.steps++
	if st.cfg.DistinguishStepBudget > 0 && st.steps > st.cfg.DistinguishStepBudget {
		return nil, NewError(ComputationBudgetExceeded, map[string]int{"steps": st.steps})
	}

	partition := h.BlankNodePartition()
	var lowest []Term
	for _, group := range partition {
		if len(group) > 1 {
			lowest = group
			break
		}
	}
	if lowest == nil {
		return nil, NewError(InternalInvariantViolated, "distinguish invoked on a trivial hash table")
	}

	st.log.Debug("distinguish: splitting lowest non-trivial group", "size", len(lowest))

	for _, b := range lowest {
		hPrime := h.Clone()
		hPrime.SetHash(b, hashTuple(st.cache.hasher, hPrime.GetHash(b), rolePerturb))

		hDoublePrime, err := hashBNodes(ds, hPrime, st.cache, st.cfg, st.log)
		if err != nil {
			return nil, err
		}

		if hDoublePrime.IsTrivial() {
			candidate := ds.Relabel(hDoublePrime.OrderedBlankIDs())
			if gmin == nil || candidate.IsSmaller(gmin) {
				gmin = candidate
			}
			continue
		}

		gmin, err = distinguish(ctx, ds, hDoublePrime, gmin, st)
		if err != nil {
			return nil, err
		}
	}
	return gmin, nil
}
