// Licensed to Apache Software Foundation (ASF) under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Apache Software Foundation (ASF) licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package function

import (
	"github.com/pkg/errors"

	"github.com/indexql/indexql/pkg/types"
)

var (
	// ErrNoMatchingSignature indicates no registered signature accepts the
	// argument types, counting arity and legal coercions.
	ErrNoMatchingSignature = errors.New("no matching signature")
	// ErrAmbiguousFunction indicates two or more signatures tie for the
	// minimum coercion cost.
	ErrAmbiguousFunction = errors.New("ambiguous function call")
)

// Per-argument matching costs. An UNKNOWN on either side defers typing at a
// low cost; numeric widening costs more so an exact or deferred match always
// outranks a widened one.
const (
	costExact    = 0
	costUnknown  = 1
	wideningBase = 1
)

// Resolve selects the unique cheapest signature of a function for the given
// argument types. Resolution is a pure function of (name, argTypes): there is
// no registration-order fallback, a tie is an error.
func Resolve(r *Registry, name Name, argTypes []types.ExprType) (*Signature, error) {
	candidates, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	var best *Signature
	bestCost := -1
	ties := 0
	for _, candidate := range candidates {
		cost, viable := matchCost(candidate, argTypes)
		if !viable {
			continue
		}
		switch {
		case best == nil || cost < bestCost:
			best, bestCost, ties = candidate, cost, 1
		case cost == bestCost:
			ties++
		}
	}

	if best == nil {
		return nil, errors.Wrapf(ErrNoMatchingSignature, "%s(%s)", name, FormatTypes(argTypes))
	}
	if ties > 1 {
		return nil, errors.Wrapf(ErrAmbiguousFunction, "%s(%s)", name, FormatTypes(argTypes))
	}
	return best, nil
}

// matchCost sums per-argument coercion costs. The candidate is viable only if
// every argument position matches.
func matchCost(candidate *Signature, argTypes []types.ExprType) (int, bool) {
	if len(candidate.params) != len(argTypes) {
		return 0, false
	}
	total := 0
	for i, param := range candidate.params {
		cost, ok := argCost(param, argTypes[i])
		if !ok {
			return 0, false
		}
		total += cost
	}
	return total, true
}

func argCost(param, arg types.ExprType) (int, bool) {
	switch {
	case param == arg:
		return costExact, true
	case arg == types.Unknown:
		// An untyped argument (e.g. a bare NULL) defers to the declared
		// parameter type.
		return costUnknown, true
	case param == types.Unknown:
		// A parameter declared UNKNOWN accepts any argument type.
		return costUnknown, true
	default:
		if distance, ok := types.WideningDistance(arg, param); ok {
			return wideningBase + distance, true
		}
		return 0, false
	}
}
