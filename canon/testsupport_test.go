package canon

// Exported seams for canon_test (the external test package most of this
// suite lives in) to reach internals that have no other reason to be
// public API.

// SHA256Size is crypto/sha256's digest length, exposed so external
// tests can build HashValues of the right width without importing
// crypto/sha256 themselves.
const SHA256Size = 32

// NewTermHashCacheForTest builds a termHashCache using cfg's configured
// hash function.
func NewTermHashCacheForTest(cfg *Config) *termHashCache {
	return newTermHashCache(cfg.hasher())
}

// ZeroHashForTest returns the all-zero HashValue of the given length.
func ZeroHashForTest(length int) HashValue { return zeroHash(length) }

// NonZeroHashForTest returns a fixed non-zero HashValue of the given
// length, distinct from ZeroHashForTest(length).
func NonZeroHashForTest(length int) HashValue {
	b := make([]byte, length)
	b[length-1] = 0x01
	return HashValue{b: b}
}
