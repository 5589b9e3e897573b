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

// Quad is an ordered 4-tuple (subject, predicate, object, graph).
// Subject is an IRI or blank node; predicate is an IRI; object is any
// term; graph is nil (default graph), an IRI, or a blank node.
type Quad struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// NewQuad creates a Quad. graph may be nil to mean the default graph.
func NewQuad(subject, predicate, object, graph Term) Quad {
	return Quad{Subject: subject, Predicate: predicate, Object: object, Graph: graph}
}

// Equal reports structural, component-wise equality of two quads.
func (q Quad) Equal(o Quad) bool {
	return termsEqual(q.Subject, o.Subject) &&
		termsEqual(q.Predicate, o.Predicate) &&
		termsEqual(q.Object, o.Object) &&
		termsEqual(q.Graph, o.Graph)
}

// Valid reports whether every present term in the quad is one of the
// three supported kinds and in the position it must be: subject is an
// IRI or blank node, predicate is an IRI, graph (if present) is an IRI
// or blank node.
func (q Quad) Valid() bool {
	if q.Subject == nil || IsLiteral(q.Subject) {
		return false
	}
	if !IsIRI(q.Predicate) {
		return false
	}
	if q.Object == nil {
		return false
	}
	if q.Graph != nil && IsLiteral(q.Graph) {
		return false
	}
	return true
}
