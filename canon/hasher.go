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

// Role markers distinguish the positional role of a hashed neighborhood
// so subject/object/graph positions are never conflated. Their exact
// byte values are part of the canonical output contract and must not
// change.
const (
	roleSubject byte = '+'
	roleObject  byte = '-'
	roleGraph   byte = '.'
	rolePerturb byte = '@'
)

// defaultIterationMultiplier bounds the fixed-point loop at
// defaultIterationMultiplier * |blank nodes| iterations before raising
// HashCollision: exceeding that many refinement passes without
// converging indicates a bag-function collision.
const defaultIterationMultiplier = 2

// hashBNodes repeatedly refines every blank node's hash from its
// neighborhood until the partition induced by hash equality stops
// changing. h0 may be nil, in which case a fresh table is built from ds
// (every blank node mapped to the zero HashValue, every other term to
// hashTerm(term)).
func hashBNodes(ds *Dataset, h0 *HashTable, cache *termHashCache, cfg *Config, log *Logger) (*HashTable, error) {
	h := h0
	if h == nil {
		h = NewHashTable(ds, cache)
	}

	blankCount := len(ds.BlankNodes())
	maxIter := cfg.iterationMultiplier() * blankCount
	if maxIter == 0 {
		maxIter = defaultIterationMultiplier
	}

	for iter := 0; ; iter++ {
		if iter > maxIter {
			return nil, NewError(HashCollision, map[string]int{
				"iterations": iter,
				"blankNodes": blankCount,
				"bound":      maxIter,
			})
		}

		prev := h.Clone()
		next := h.Clone()
		bag := make(map[string][]HashValue)
		keyToTerm := make(map[string]Term)

		accumulate := func(t Term, c HashValue) {
			key := termKey(t)
			bag[key] = append(bag[key], c)
			keyToTerm[key] = t
		}

		for _, q := range ds.Quads() {
			if IsBlankNode(q.Subject) {
				var c HashValue
				if q.Graph != nil {
					c = hashTuple(cache.hasher, prev.GetHash(q.Object), prev.GetHash(q.Predicate), prev.GetHash(q.Graph), roleSubject)
				} else {
					c = hashTuple(cache.hasher, prev.GetHash(q.Object), prev.GetHash(q.Predicate), roleSubject)
				}
				accumulate(q.Subject, c)
			}
			if IsBlankNode(q.Object) {
				var c HashValue
				if q.Graph != nil {
					c = hashTuple(cache.hasher, prev.GetHash(q.Subject), prev.GetHash(q.Predicate), prev.GetHash(q.Graph), roleObject)
				} else {
					c = hashTuple(cache.hasher, prev.GetHash(q.Subject), prev.GetHash(q.Predicate), roleObject)
				}
				accumulate(q.Object, c)
			}
			if q.Graph != nil && IsBlankNode(q.Graph) {
				c := hashTuple(cache.hasher, prev.GetHash(q.Subject), prev.GetHash(q.Predicate), prev.GetHash(q.Object), roleGraph)
				accumulate(q.Graph, c)
			}
		}

		for key, contributions := range bag {
			t := keyToTerm[key]
			next.SetHash(t, combine(cache.hasher, cfg.bagRealization(), prev.GetHash(t), contributions))
		}

		h = next
		if h.IsFixedPoint(prev) {
			log.Debug("hashBNodes converged", "iterations", iter+1, "blankNodes", blankCount)
			return h, nil
		}
	}
}
