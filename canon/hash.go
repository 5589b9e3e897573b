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
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// HashValue is a fixed-width byte string produced by a Hasher. Its
// length L is determined by the configured hash function at startup.
// HashValues are logically immutable value types; the zero HashValue
// (all bytes 0x00) is the initial hash of every blank node.
type HashValue struct {
	b []byte
}

// Bytes returns the raw bytes of this HashValue. Callers must not
// mutate the returned slice.
func (h HashValue) Bytes() []byte { return h.b }

// Hex returns the hexadecimal encoding of this HashValue, used as the
// map key for hash-equality grouping.
func (h HashValue) Hex() string { return hex.EncodeToString(h.b) }

// Equal reports byte-wise equality.
func (h HashValue) Equal(o HashValue) bool { return bytes.Equal(h.b, o.b) }

// Less reports whether h sorts before o under big-endian unsigned byte
// comparison (plain lexicographic byte comparison, since both values
// always share the same length L).
func (h HashValue) Less(o HashValue) bool { return bytes.Compare(h.b, o.b) < 0 }

func zeroHash(length int) HashValue { return HashValue{b: make([]byte, length)} }

// Hasher is the fixed hash function H configured at build/run time. Its
// digest length L is fixed for the lifetime of a Hasher.
type Hasher interface {
	// Name identifies this hash function, e.g. "sha256" or "xxhash64".
	Name() string
	// Size returns L, the digest length in bytes.
	Size() int
	// Sum returns H(concat(parts...)) as a HashValue of length Size().
	Sum(parts ...[]byte) HashValue
}

// sha256Hasher wraps crypto/sha256, the default cryptographic hash.
type sha256Hasher struct{}

func (sha256Hasher) Name() string { return "sha256" }
func (sha256Hasher) Size() int    { return sha256.Size }
func (sha256Hasher) Sum(parts ...[]byte) HashValue {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p) //nolint:errcheck // hash.Hash.Write never errors
	}
	return HashValue{b: h.Sum(nil)}
}

// xxhash64Hasher wraps github.com/cespare/xxhash/v2, a fast
// non-cryptographic hash, for local/dev configurations where collision
// resistance against adversarial input is not a concern. The 64-bit
// digest is encoded big-endian so HashValue.Less's plain byte
// comparison still matches big-endian unsigned integer ordering.
type xxhash64Hasher struct{}

func (xxhash64Hasher) Name() string { return "xxhash64" }
func (xxhash64Hasher) Size() int    { return 8 }
func (xxhash64Hasher) Sum(parts ...[]byte) HashValue {
	d := xxhash.New()
	for _, p := range parts {
		d.Write(p) //nolint:errcheck // hash.Hash.Write never errors
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, d.Sum64())
	return HashValue{b: buf}
}

// hashTerm returns the zero HashValue if t is absent, otherwise
// H(bytes(t)) where bytes(t) is t's canonical N-Quads encoding.
func hashTerm(h Hasher, t Term) HashValue {
	if t == nil {
		return zeroHash(h.Size())
	}
	return h.Sum([]byte(renderTerm(t)))
}

// hashTuple concatenates the raw bytes of each argument (HashValues
// contribute their L bytes, strings their UTF-8 bytes) with no
// separator, and returns H of the concatenation. Callers are
// responsible for fixing arity and per-slot role so the concatenation
// stays unambiguous (role-marker bytes at call sites).
func hashTuple(h Hasher, args ...interface{}) HashValue {
	parts := make([][]byte, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case HashValue:
			parts = append(parts, v.b)
		case string:
			parts = append(parts, []byte(v))
		case byte:
			parts = append(parts, []byte{v})
		default:
			panic("canon: hashTuple: unsupported argument type")
		}
	}
	return h.Sum(parts...)
}

// BagRealization selects which commutative-associative combiner is
// used to fold a blank node's per-iteration contributions into its
// next hash.
type BagRealization string

const (
	// SortedTupleBag sorts the contributions by HashValue order and
	// hashes the sorted sequence together with the prior hash. This is
	// associative-commutative by construction and collision-resistant
	// to the strength of H. Recommended, and the default.
	SortedTupleBag BagRealization = "sorted-tuple"

	// ModularSumBag combines HashValues by element-wise addition
	// modulo 255 across all L bytes. Known to admit collisions under
	// adversarial permutations; retained for compatibility with
	// implementations that chose this realization.
	ModularSumBag BagRealization = "modular-sum"
)

// combine folds prior, the blank node's hash before this iteration, and
// contributions, the hashes accumulated for it during this iteration,
// into its next hash, using the configured bag realization.
func combine(h Hasher, realization BagRealization, prior HashValue, contributions []HashValue) HashValue {
	switch realization {
	case ModularSumBag:
		sum := append([]byte(nil), prior.b...)
		for _, c := range contributions {
			for i := range sum {
				sum[i] = byte((int(sum[i]) + int(c.b[i])) % 255)
			}
		}
		return HashValue{b: sum}
	case SortedTupleBag, "":
		sorted := append([]HashValue(nil), contributions...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
		args := make([]interface{}, 0, len(sorted)+1)
		args = append(args, prior)
		for _, c := range sorted {
			args = append(args, c)
		}
		return hashTuple(h, args...)
	default:
		panic("canon: unknown bag realization " + string(realization))
	}
}
