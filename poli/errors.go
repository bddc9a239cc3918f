// Copyright 2025 Dolthub, Inc.
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

package poli

import (
	"gopkg.in/src-d/go-errors.v1"
)

// The error kinds below are the complete taxonomy for the package. Callers
// match them with Kind.Is; combinators pass errors from sub-functions through
// unchanged, so a kind raised deep inside a composed polifunction is still
// matchable at the top.
var (
	// ErrDomain reports an input outside the function's domain.
	ErrDomain = errors.NewKind("input is outside the function's domain")

	// ErrComputation reports an evaluation that succeeded structurally but
	// produced no usable result, such as asking for the extrema of an empty
	// value set or comparing unordered bounds.
	ErrComputation = errors.NewKind("error during computation")

	// ErrConvergence is reserved for iterative evaluators. No combinator in
	// this package raises it, but mapping functions may, and it propagates
	// like any other non-domain error.
	ErrConvergence = errors.NewKind("failed to converge to a result")

	// ErrInvalidOperation reports an operation that is undefined for the
	// polifunction's output shape.
	ErrInvalidOperation = errors.NewKind("invalid operation for this polifunction shape")

	// ErrOther carries a free-form message for paths whose general case is
	// not implemented.
	ErrOther = errors.NewKind("%s")
)

const (
	msgComplexOperation = "Complex operation not yet implemented"
	msgNotImplemented   = "Not implemented yet"
)
