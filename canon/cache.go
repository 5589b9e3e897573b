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
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// runCacheTTL is generous because a termHashCache instance is always
// scoped to a single Canonicalize call (see canonicalize.go): it never
// needs to evict anything on its own, but ttlcache requires a TTL.
const runCacheTTL = time.Hour

// termHashCache memoizes hashTerm for non-blank terms. NewHashTable
// consults it when it builds the initial table for hashBNodes; the
// fixed-point loop itself reads an IRI's or literal's hash from the
// HashTable, where it never changes between iterations.
type termHashCache struct {
	hasher Hasher
	cache  *ttlcache.Cache[string, HashValue]
}

func newTermHashCache(hasher Hasher) *termHashCache {
	c := ttlcache.New[string, HashValue](
		ttlcache.WithTTL[string, HashValue](runCacheTTL),
	)
	return &termHashCache{hasher: hasher, cache: c}
}

// get returns hashTerm(hasher, t), computing and caching it on first
// use. Blank nodes are never cached: their hash is iteration-dependent.
func (c *termHashCache) get(t Term) HashValue {
	if t == nil || IsBlankNode(t) {
		return hashTerm(c.hasher, t)
	}
	key := termKey(t)
	if item := c.cache.Get(key); item != nil {
		return item.Value()
	}
	v := hashTerm(c.hasher, t)
	c.cache.Set(key, v, ttlcache.DefaultTTL)
	return v
}
