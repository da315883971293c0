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

// RegisterUnaryPredicates registers not, is_null, isnull, is_not_null,
// ifnull and nullif. is_null and isnull are two distinct registry names
// sharing one implementation; neither supersedes the other.
func RegisterUnaryPredicates(r *Registry) {
	r.Register(
		Define(Not, NewSignature(Not,
			[]types.ExprType{types.Boolean}, types.Boolean, exprNot)),
		nullCheck(IsNull, exprIsNull),
		nullCheck(Isnull, exprIsNull),
		nullCheck(IsNotNull, exprIsNotNull),
		flowControl(IfNull, exprIfNull),
		flowControl(NullIf, exprNullIf),
	)
}

// nullCheck defines one signature per core type plus UNKNOWN, so a bare
// NULL literal resolves exactly instead of tying across every overload.
// The predicates return a concrete boolean and never propagate the markers.
func nullCheck(name Name, impl Impl) Bundle {
	paramTypes := append(types.CoreTypes(), types.Unknown)
	signatures := make([]*Signature, 0, len(paramTypes))
	for _, t := range paramTypes {
		signatures = append(signatures,
			NewSignature(name, []types.ExprType{t}, types.Boolean, impl))
	}
	return Define(name, signatures...)
}

// flowControl defines (T, T) -> T over the core types plus UNKNOWN, so a
// bare NULL literal in either position still resolves.
func flowControl(name Name, impl Impl) Bundle {
	paramTypes := append(types.CoreTypes(), types.Unknown)
	signatures := make([]*Signature, 0, len(paramTypes))
	for _, t := range paramTypes {
		signatures = append(signatures,
			NewSignature(name, []types.ExprType{t, t}, t, impl))
	}
	return Define(name, signatures...)
}

// exprNot implements the three-valued negation:
//
//	A       NOT A
//	TRUE    FALSE
//	FALSE   TRUE
//	NULL    NULL
//	MISSING MISSING
func exprNot(args ...value.ExprValue) value.ExprValue {
	v := args[0]
	if v.IsMissing() || v.IsNull() {
		return v
	}
	b, _ := value.AsBoolean(v)
	return value.NewBoolean(!b)
}

// exprIsNull is TRUE exactly when the argument is the NULL marker,
// not MISSING and not an ordinary falsy value.
func exprIsNull(args ...value.ExprValue) value.ExprValue {
	return value.NewBoolean(args[0].IsNull())
}

func exprIsNotNull(args ...value.ExprValue) value.ExprValue {
	return value.NewBoolean(!args[0].IsNull())
}

// exprIfNull returns the second argument when the first is NULL or MISSING.
// This is the one place the two markers are treated identically.
func exprIfNull(args ...value.ExprValue) value.ExprValue {
	v1, v2 := args[0], args[1]
	if v1.IsNull() || v1.IsMissing() {
		return v2
	}
	return v1
}

// exprNullIf returns NULL only when both arguments are concrete and
// value-equal; any marker on either side returns the first argument
// unchanged.
func exprNullIf(args ...value.ExprValue) value.ExprValue {
	v1, v2 := args[0], args[1]
	if v1.IsNull() || v1.IsMissing() {
		return v1
	}
	if v2.IsNull() || v2.IsMissing() {
		return v1
	}
	if v1.Equal(v2) {
		return value.Null()
	}
	return v1
}
