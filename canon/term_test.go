package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iso-canon/rdfcanon/canon"
)

func TestTermEquality(t *testing.T) {
	assert.True(t, canon.NewIRI("http://example.org/s").Equal(canon.NewIRI("http://example.org/s")))
	assert.False(t, canon.NewIRI("http://example.org/s").Equal(canon.NewIRI("http://example.org/o")))

	assert.True(t, canon.NewBlankNode("_:a").Equal(canon.NewBlankNode("_:a")))
	assert.False(t, canon.NewBlankNode("_:a").Equal(canon.NewBlankNode("_:b")))

	lit1 := canon.NewLiteral("hi", "", "en")
	lit2 := canon.NewLiteral("hi", "", "en")
	lit3 := canon.NewLiteral("hi", "", "fr")
	assert.True(t, lit1.Equal(lit2))
	assert.False(t, lit1.Equal(lit3))

	assert.False(t, canon.NewIRI("x").Equal(canon.NewBlankNode("_:x")))
}

func TestTermKindPredicates(t *testing.T) {
	assert.True(t, canon.IsIRI(canon.NewIRI("x")))
	assert.True(t, canon.IsBlankNode(canon.NewBlankNode("_:x")))
	assert.True(t, canon.IsLiteral(canon.NewLiteral("x", "", "")))
	assert.False(t, canon.IsIRI(canon.NewBlankNode("_:x")))
	assert.False(t, canon.IsBlankNode(nil))
}
