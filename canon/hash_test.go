package canon

import (
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashTermAbsentIsZero(t *testing.T) {
	h := sha256Hasher{}
	assert.True(t, hashTerm(h, nil).Equal(zeroHash(h.Size())))
}

func TestHashTermDeterministic(t *testing.T) {
	h := sha256Hasher{}
	a := hashTerm(h, NewIRI("http://example.org/x"))
	b := hashTerm(h, NewIRI("http://example.org/x"))
	c := hashTerm(h, NewIRI("http://example.org/y"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestHashTupleIsOrderSensitive(t *testing.T) {
	h := sha256Hasher{}
	a := hashTerm(h, NewIRI("a"))
	b := hashTerm(h, NewIRI("b"))
	t1 := hashTuple(h, a, b, roleSubject)
	t2 := hashTuple(h, b, a, roleSubject)
	assert.False(t, t1.Equal(t2))
}

func TestHashTupleRoleMarkerChangesResult(t *testing.T) {
	h := sha256Hasher{}
	a := hashTerm(h, NewIRI("a"))
	b := hashTerm(h, NewIRI("b"))
	plus := hashTuple(h, a, b, roleSubject)
	minus := hashTuple(h, a, b, roleObject)
	assert.False(t, plus.Equal(minus))
}

func TestXXHash64SizeAndBigEndianOrdering(t *testing.T) {
	h := xxhash64Hasher{}
	require.Equal(t, 8, h.Size())
	v := h.Sum([]byte("anything"))
	assert.Len(t, v.Bytes(), 8)
	assert.Equal(t, xxhash.Sum64String("anything"), binary.BigEndian.Uint64(v.Bytes()))
}

func TestCombineSortedTupleIsCommutative(t *testing.T) {
	h := sha256Hasher{}
	prior := zeroHash(h.Size())
	a := hashTerm(h, NewIRI("a"))
	b := hashTerm(h, NewIRI("b"))
	r1 := combine(h, SortedTupleBag, prior, []HashValue{a, b})
	r2 := combine(h, SortedTupleBag, prior, []HashValue{b, a})
	assert.True(t, r1.Equal(r2), "bag combination must not depend on contribution order")
}

func TestCombineModularSumIsCommutative(t *testing.T) {
	h := sha256Hasher{}
	prior := zeroHash(h.Size())
	a := hashTerm(h, NewIRI("a"))
	b := hashTerm(h, NewIRI("b"))
	r1 := combine(h, ModularSumBag, prior, []HashValue{a, b})
	r2 := combine(h, ModularSumBag, prior, []HashValue{b, a})
	assert.True(t, r1.Equal(r2))
}

func TestHashValueOrdering(t *testing.T) {
	small := HashValue{b: []byte{0x00, 0x01}}
	big := HashValue{b: []byte{0x00, 0x02}}
	assert.True(t, small.Less(big))
	assert.False(t, big.Less(small))
}
