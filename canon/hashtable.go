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

import "sort"

// HashTable is a mutable mapping from Term to HashValue, with an
// inverse grouping view kept consistent after every mutation. The
// forward map answers GetHash; the inverse grouping is what the
// fixed-point predicate and partition emission both need directly,
// rather than recomputing it by scanning the forward map every time.
type HashTable struct {
	hash  map[string]HashValue // term key -> current hash
	terms map[string]Term      // term key -> term
	group map[string][]string  // hash hex -> term keys sharing it
}

// NewHashTable builds the initial HashTable for a dataset: every blank
// node maps to the zero HashValue, every other term maps to
// hashTerm(term) (memoized through cache).
func NewHashTable(ds *Dataset, cache *termHashCache) *HashTable {
	ht := &HashTable{
		hash:  make(map[string]HashValue),
		terms: make(map[string]Term),
		group: make(map[string][]string),
	}
	for _, t := range ds.Terms() {
		var v HashValue
		if IsBlankNode(t) {
			v = zeroHash(cache.hasher.Size())
		} else {
			v = cache.get(t)
		}
		ht.setHash(t, v)
	}
	return ht
}

func (ht *HashTable) setHash(t Term, v HashValue) {
	key := termKey(t)
	if old, ok := ht.hash[key]; ok {
		ht.removeFromGroup(old.Hex(), key)
	}
	ht.hash[key] = v
	ht.terms[key] = t
	hex := v.Hex()
	ht.group[hex] = append(ht.group[hex], key)
}

func (ht *HashTable) removeFromGroup(hex, key string) {
	members := ht.group[hex]
	for i, k := range members {
		if k == key {
			members = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(members) == 0 {
		delete(ht.group, hex)
	} else {
		ht.group[hex] = members
	}
}

// SetHash sets the current HashValue of term, maintaining the inverse
// grouping.
func (ht *HashTable) SetHash(t Term, v HashValue) { ht.setHash(t, v) }

// GetHash returns the current HashValue of term.
func (ht *HashTable) GetHash(t Term) HashValue {
	return ht.hash[termKey(t)]
}

// Clone returns a structurally independent deep copy. Mutations on the
// clone are never visible on the original or vice versa.
func (ht *HashTable) Clone() *HashTable {
	out := &HashTable{
		hash:  make(map[string]HashValue, len(ht.hash)),
		terms: make(map[string]Term, len(ht.terms)),
		group: make(map[string][]string, len(ht.group)),
	}
	for k, v := range ht.hash {
		out.hash[k] = v
	}
	for k, v := range ht.terms {
		out.terms[k] = v
	}
	for k, members := range ht.group {
		out.group[k] = append([]string(nil), members...)
	}
	return out
}

// blankGroups returns, for each distinct hash currently held by at
// least one blank node, the sorted-by-key list of blank node term keys
// sharing it. Non-blank terms are excluded.
func (ht *HashTable) blankGroups() map[string][]string {
	out := make(map[string][]string)
	for hex, members := range ht.group {
		var blanks []string
		for _, key := range members {
			if IsBlankNode(ht.terms[key]) {
				blanks = append(blanks, key)
			}
		}
		if len(blanks) > 0 {
			sort.Strings(blanks)
			out[hex] = blanks
		}
	}
	return out
}

// BlankNodePartition returns the groups of blank nodes currently
// sharing a HashValue, ordered first by ascending group size, then by
// ascending HashValue. Groups of size 1 appear first.
func (ht *HashTable) BlankNodePartition() [][]Term {
	groups := ht.blankGroups()
	hexes := make([]string, 0, len(groups))
	for hex := range groups {
		hexes = append(hexes, hex)
	}
	sort.Slice(hexes, func(i, j int) bool {
		si, sj := len(groups[hexes[i]]), len(groups[hexes[j]])
		if si != sj {
			return si < sj
		}
		return hexes[i] < hexes[j]
	})
	out := make([][]Term, 0, len(hexes))
	for _, hex := range hexes {
		members := groups[hex]
		group := make([]Term, len(members))
		for i, key := range members {
			group[i] = ht.terms[key]
		}
		out = append(out, group)
	}
	return out
}

// IsTrivial reports whether every blank node is in its own singleton
// hash group (all blank nodes distinguished).
func (ht *HashTable) IsTrivial() bool {
	for _, members := range ht.blankGroups() {
		if len(members) > 1 {
			return false
		}
	}
	return true
}

// IsFixedPoint reports whether this table is a fixed point relative to
// previous: true if this table is trivial, or if the "same hash"
// equivalence relation on blank nodes is identical between this and
// previous. Comparing the partition structure, not the raw hash values,
// is what makes this correct across cyclic blank-node graphs: two
// iterations can carry entirely different hash bytes while inducing the
// same partition.
func (ht *HashTable) IsFixedPoint(previous *HashTable) bool {
	if ht.IsTrivial() {
		return true
	}
	thisClasses := blankClassIndex(ht.blankGroups())
	prevClasses := blankClassIndex(previous.blankGroups())
	if len(thisClasses) != len(prevClasses) {
		return false
	}
	for key, class := range thisClasses {
		if !stringSliceEqual(class, prevClasses[key]) {
			return false
		}
	}
	return true
}

// blankClassIndex maps every blank node key to the sorted member list
// of its equivalence class (itself alone, if it shares its hash with no
// other blank node).
func blankClassIndex(groups map[string][]string) map[string][]string {
	idx := make(map[string][]string)
	for _, members := range groups {
		for _, key := range members {
			idx[key] = members
		}
	}
	return idx
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// OrderedBlankIDs returns the list of blank-node identifiers sorted by
// their current HashValue ascending, used to define canonical labels
// once the table is trivial.
func (ht *HashTable) OrderedBlankIDs() []string {
	type entry struct {
		id   string
		hash HashValue
	}
	var entries []entry
	for key, t := range ht.terms {
		if bn, ok := t.(BlankNode); ok {
			entries = append(entries, entry{id: bn.ID, hash: ht.hash[key]})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].hash.Equal(entries[j].hash) {
			return entries[i].hash.Less(entries[j].hash)
		}
		return entries[i].id < entries[j].id
	})
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}
