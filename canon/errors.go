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

import "fmt"

// ErrorKind identifies the class of a canonicalization failure.
type ErrorKind string

const (
	// MalformedInput is raised when a quad fails Quad.Valid(): a term in
	// the wrong position, or a required term missing. Canonicalize
	// checks every quad up front and raises this before any hashing
	// starts.
	MalformedInput ErrorKind = "malformed input"

	// HashCollision means the iterative hasher exceeded its iteration
	// bound without reaching a fixed point, indicating a bag-function
	// collision. Diagnostic only; the computation is aborted.
	HashCollision ErrorKind = "hash collision"

	// ComputationBudgetExceeded means an embedder-imposed budget on
	// distinguish was exhausted before the minimum could be certified.
	ComputationBudgetExceeded ErrorKind = "computation budget exceeded"

	// InternalInvariantViolated flags an assertion failure: a bug in
	// this implementation, not a problem with the input dataset.
	InternalInvariantViolated ErrorKind = "internal invariant violated"
)

// Error is the single error type surfaced by this package: a kind plus
// opaque details.
type Error struct {
	Kind    ErrorKind
	Details interface{}
}

func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Details)
	}
	return string(e.Kind)
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, canon.NewError(canon.MalformedInput, nil)) matches any
// MalformedInput error regardless of its Details.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// NewError creates a new *Error of the given kind.
func NewError(kind ErrorKind, details interface{}) *Error {
	return &Error{Kind: kind, Details: details}
}
