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

// Term is the value of a subject, predicate, object or graph name: an
// IRI, a literal, or a blank node. Concrete Term implementations are
// plain comparable value types, not pointers. Dataset and HashTable key
// their maps on a term's canonical N-Quads rendering (termKey), not on
// the Term value itself.
type Term interface {
	// GetValue returns the term's lexical value (IRI string, literal
	// lexical form, or blank node identifier).
	GetValue() string

	// Equal reports whether this term equals n.
	Equal(n Term) bool

	// isTerm restricts Term to the three kinds defined in this file.
	isTerm()
}

// IRI is an internationalized resource identifier term.
type IRI struct {
	Value string
}

// NewIRI creates an IRI term.
func NewIRI(value string) IRI { return IRI{Value: value} }

// GetValue returns the IRI string.
func (i IRI) GetValue() string { return i.Value }

// Equal reports whether n is an IRI with the same value.
func (i IRI) Equal(n Term) bool {
	o, ok := n.(IRI)
	return ok && i.Value == o.Value
}

func (IRI) isTerm() {}

// Literal is a literal term: a lexical form plus an optional datatype
// IRI and an optional language tag. Two blank nodes, two IRIs, and two
// literals are each compared by value; a Literal's Datatype defaults to
// xsd:string when empty and Language is empty, matching RDF semantics,
// but this type stores exactly what it is given. Callers (the N-Quads
// boundary) are responsible for filling in xsd:string explicitly if
// that's what the wire form means.
type Literal struct {
	Value    string
	Datatype string
	Language string
}

// NewLiteral creates a Literal term.
func NewLiteral(value, datatype, language string) Literal {
	return Literal{Value: value, Datatype: datatype, Language: language}
}

// GetValue returns the literal's lexical form.
func (l Literal) GetValue() string { return l.Value }

// Equal reports whether n is a Literal with the same lexical form,
// datatype and language tag.
func (l Literal) Equal(n Term) bool {
	o, ok := n.(Literal)
	return ok && l.Value == o.Value && l.Datatype == o.Datatype && l.Language == o.Language
}

func (Literal) isTerm() {}

// BlankNode is a blank node term, identified only by a source-local
// identifier with no stable identity across datasets.
type BlankNode struct {
	ID string
}

// NewBlankNode creates a BlankNode term. id should include the "_:"
// prefix (the convention used throughout this package and in N-Quads).
func NewBlankNode(id string) BlankNode { return BlankNode{ID: id} }

// GetValue returns the blank node's identifier.
func (b BlankNode) GetValue() string { return b.ID }

// Equal reports whether n is a BlankNode with the same identifier.
func (b BlankNode) Equal(n Term) bool {
	o, ok := n.(BlankNode)
	return ok && b.ID == o.ID
}

func (BlankNode) isTerm() {}

// IsBlankNode reports whether t is a blank node. A nil t (absent graph
// name) is never a blank node.
func IsBlankNode(t Term) bool {
	if t == nil {
		return false
	}
	_, ok := t.(BlankNode)
	return ok
}

// IsIRI reports whether t is an IRI.
func IsIRI(t Term) bool {
	if t == nil {
		return false
	}
	_, ok := t.(IRI)
	return ok
}

// IsLiteral reports whether t is a literal.
func IsLiteral(t Term) bool {
	if t == nil {
		return false
	}
	_, ok := t.(Literal)
	return ok
}

// termsEqual treats two nil terms (both absent) as equal, otherwise
// delegates to Term.Equal.
func termsEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
