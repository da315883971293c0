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
	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

// RegisterBooleanPredicates registers the three-valued and/or/xor.
//
// The truth tables extend two-valued logic with the markers:
// FALSE dominates and, TRUE dominates or; in the remaining marker cases
// MISSING dominates NULL.
func RegisterBooleanPredicates(r *Registry) {
	booleanPair := []types.ExprType{types.Boolean, types.Boolean}
	r.Register(
		Define(And, NewSignature(And, booleanPair, types.Boolean, exprAnd)),
		Define(Or, NewSignature(Or, booleanPair, types.Boolean, exprOr)),
		Define(Xor, NewSignature(Xor, booleanPair, types.Boolean, exprXor)),
	)
}

func exprAnd(args ...value.ExprValue) value.ExprValue {
	l, r := args[0], args[1]
	if isFalse(l) || isFalse(r) {
		return value.False()
	}
	if l.IsMissing() || r.IsMissing() {
		return value.Missing()
	}
	if l.IsNull() || r.IsNull() {
		return value.Null()
	}
	return value.True()
}

func exprOr(args ...value.ExprValue) value.ExprValue {
	l, r := args[0], args[1]
	if isTrue(l) || isTrue(r) {
		return value.True()
	}
	if l.IsMissing() || r.IsMissing() {
		return value.Missing()
	}
	if l.IsNull() || r.IsNull() {
		return value.Null()
	}
	return value.False()
}

func exprXor(args ...value.ExprValue) value.ExprValue {
	l, r := args[0], args[1]
	if l.IsMissing() || r.IsMissing() {
		return value.Missing()
	}
	if l.IsNull() || r.IsNull() {
		return value.Null()
	}
	return value.NewBoolean(isTrue(l) != isTrue(r))
}

func isTrue(v value.ExprValue) bool {
	b, ok := value.AsBoolean(v)
	return ok && b
}

func isFalse(v value.ExprValue) bool {
	b, ok := value.AsBoolean(v)
	return ok && !b
}
