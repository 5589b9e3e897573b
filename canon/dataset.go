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
	"fmt"
	"sort"
	"strings"
)

// Dataset is an immutable multiset of quads. Constructing one does not
// deduplicate input quads; canonicalization only ever renames blank
// nodes, never drops duplicate statements.
type Dataset struct {
	quads      []Quad
	terms      map[string]Term
	blankNodes map[string]Term
}

// NewDataset builds a Dataset from an ordered sequence of quads. Quad
// order is preserved and is significant for NQuads() (but not for
// SortedNQuads() or canonicalization).
func NewDataset(quads []Quad) *Dataset {
	ds := &Dataset{
		quads:      append([]Quad(nil), quads...),
		terms:      make(map[string]Term),
		blankNodes: make(map[string]Term),
	}
	for _, q := range ds.quads {
		for _, t := range []Term{q.Subject, q.Predicate, q.Object, q.Graph} {
			if t == nil {
				continue
			}
			key := termKey(t)
			ds.terms[key] = t
			if IsBlankNode(t) {
				ds.blankNodes[key] = t
			}
		}
	}
	return ds
}

// termKey returns the canonical N-Quads rendering of a term, which is
// unambiguous across IRIs, literals and blank nodes and therefore safe
// to use as a map key.
func termKey(t Term) string { return renderTerm(t) }

// Quads returns the quads in input order.
func (ds *Dataset) Quads() []Quad { return append([]Quad(nil), ds.quads...) }

// Terms returns the unique terms appearing in any position. Iteration
// order is not significant and not guaranteed stable across calls.
func (ds *Dataset) Terms() []Term {
	out := make([]Term, 0, len(ds.terms))
	for _, t := range ds.terms {
		out = append(out, t)
	}
	return out
}

// BlankNodes returns the unique blank-node terms appearing in any
// position.
func (ds *Dataset) BlankNodes() []Term {
	out := make([]Term, 0, len(ds.blankNodes))
	for _, t := range ds.blankNodes {
		out = append(out, t)
	}
	return out
}

// NQuads renders each quad as a canonical N-Quads line, in input order.
func (ds *Dataset) NQuads() []string {
	out := make([]string, len(ds.quads))
	for i, q := range ds.quads {
		out[i] = renderQuad(q)
	}
	return out
}

// SortedNQuads returns NQuads() sorted by byte-wise lexicographic
// order.
func (ds *Dataset) SortedNQuads() []string {
	out := ds.NQuads()
	sort.Strings(out)
	return out
}

// CanonicalBytes returns the canonical byte stream of this dataset: its
// sorted canonical N-Quads lines concatenated in order. Every
// individual line is already LF-terminated, so the result carries a
// trailing LF (see DESIGN.md for why that convention was chosen).
func (ds *Dataset) CanonicalBytes() []byte {
	return []byte(strings.Join(ds.SortedNQuads(), ""))
}

// IsSmaller reports G < H under a multiset ordering: G < H iff G is a
// subset of H, or there is a t in G\H such that no t' in H\G satisfies
// t' < t.
func (ds *Dataset) IsSmaller(other *Dataset) bool {
	g := ds.SortedNQuads()
	h := other.SortedNQuads()

	gOnly, hOnly := multisetDiff(g, h)

	if len(gOnly) == 0 {
		return true
	}
	if len(hOnly) == 0 {
		return true
	}

	// hOnly and gOnly are already sorted since they were derived from
	// sorted slices by a stable merge-style diff.
	h0 := hOnly[0]
	for _, t := range gOnly {
		if t < h0 {
			return true
		}
	}
	return false
}

// multisetDiff returns (a \ b, b \ a) for two sorted multisets
// represented as sorted string slices.
func multisetDiff(a, b []string) (aOnly, bOnly []string) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			aOnly = append(aOnly, a[i])
			i++
		default:
			bOnly = append(bOnly, b[j])
			j++
		}
	}
	aOnly = append(aOnly, a[i:]...)
	bOnly = append(bOnly, b[j:]...)
	return aOnly, bOnly
}

// Relabel returns a new Dataset in which every blank node is renamed to
// "_:c14n_<k>", where k is its 0-based index in orderedBlankIDs.
// Non-blank terms are copied unchanged; quad order is preserved.
func (ds *Dataset) Relabel(orderedBlankIDs []string) *Dataset {
	labels := make(map[string]BlankNode, len(orderedBlankIDs))
	for i, id := range orderedBlankIDs {
		labels[id] = NewBlankNode(fmt.Sprintf("_:c14n_%d", i))
	}

	relabelTerm := func(t Term) Term {
		if t == nil {
			return nil
		}
		bn, ok := t.(BlankNode)
		if !ok {
			return t
		}
		if nb, ok := labels[bn.ID]; ok {
			return nb
		}
		return t
	}

	out := make([]Quad, len(ds.quads))
	for i, q := range ds.quads {
		out[i] = Quad{
			Subject:   relabelTerm(q.Subject),
			Predicate: relabelTerm(q.Predicate),
			Object:    relabelTerm(q.Object),
			Graph:     relabelTerm(q.Graph),
		}
	}
	return NewDataset(out)
}
