package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iso-canon/rdfcanon/canon"
)

func TestRenderGroundTriple(t *testing.T) {
	ds := canon.NewDataset([]canon.Quad{
		canon.NewQuad(canon.NewIRI("http://ex.org/s"), canon.NewIRI("http://ex.org/p"), canon.NewIRI("http://ex.org/o"), nil),
	})
	assert.Equal(t, []string{"<http://ex.org/s> <http://ex.org/p> <http://ex.org/o> .\n"}, ds.NQuads())
}

func TestRenderLiteralWithDatatypeAndLanguage(t *testing.T) {
	ds := canon.NewDataset([]canon.Quad{
		canon.NewQuad(canon.NewIRI("s"), canon.NewIRI("p"), canon.NewLiteral("42", "http://www.w3.org/2001/XMLSchema#integer", ""), nil),
		canon.NewQuad(canon.NewIRI("s"), canon.NewIRI("p"), canon.NewLiteral("hi", "", "en"), nil),
		canon.NewQuad(canon.NewIRI("s"), canon.NewIRI("p"), canon.NewLiteral("plain", canon.XSDString, ""), nil),
	})
	lines := ds.NQuads()
	assert.Contains(t, lines[0], `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`)
	assert.Contains(t, lines[1], `"hi"@en`)
	assert.Equal(t, `<s> <p> "plain" .`+"\n", lines[2])
}

func TestEscapingControlCharacters(t *testing.T) {
	ds := canon.NewDataset([]canon.Quad{
		canon.NewQuad(canon.NewIRI("s"), canon.NewIRI("p"), canon.NewLiteral("a\tb\nc\"d\\e", "", ""), nil),
	})
	assert.Equal(t, `<s> <p> "a\tb\nc\"d\\e" .`+"\n", ds.NQuads()[0])
}

func TestGraphNameRendering(t *testing.T) {
	ds := canon.NewDataset([]canon.Quad{
		canon.NewQuad(canon.NewIRI("s"), canon.NewIRI("p"), canon.NewIRI("o"), canon.NewBlankNode("_:g")),
	})
	assert.Equal(t, "<s> <p> <o> _:g .\n", ds.NQuads()[0])
}
