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

// equalityTypes are the types = and != are defined over.
var equalityTypes = []types.ExprType{
	types.Boolean, types.Byte, types.Short, types.Integer, types.Long,
	types.Float, types.Double, types.String, types.Timestamp, types.Date,
	types.Time, types.Array, types.Struct,
}

// orderedTypes are the types the ordering comparisons are defined over.
var orderedTypes = []types.ExprType{
	types.Byte, types.Short, types.Integer, types.Long, types.Float,
	types.Double, types.String, types.Timestamp, types.Date, types.Time,
}

// RegisterComparisons registers = != < <= > >= with one signature per
// comparable type, returning BOOLEAN and propagating NULL/MISSING.
func RegisterComparisons(r *Registry) {
	r.Register(
		equality(Equal, func(eq bool) bool { return eq }),
		equality(NotEqual, func(eq bool) bool { return !eq }),
		ordering(Less, func(cmp int) bool { return cmp < 0 }),
		ordering(LessEqual, func(cmp int) bool { return cmp <= 0 }),
		ordering(Greater, func(cmp int) bool { return cmp > 0 }),
		ordering(GreaterEqual, func(cmp int) bool { return cmp >= 0 }),
	)
}

func equality(name Name, apply func(eq bool) bool) Bundle {
	impl := NullMissingHandling(func(args ...value.ExprValue) value.ExprValue {
		return value.NewBoolean(apply(args[0].Equal(args[1])))
	})
	signatures := make([]*Signature, 0, len(equalityTypes))
	for _, t := range equalityTypes {
		signatures = append(signatures,
			NewSignature(name, []types.ExprType{t, t}, types.Boolean, impl))
	}
	return Define(name, signatures...)
}

func ordering(name Name, apply func(cmp int) bool) Bundle {
	impl := NullMissingHandling(func(args ...value.ExprValue) value.ExprValue {
		cmp, ok := value.Compare(args[0], args[1])
		if !ok {
			// Mixed-width arguments always compare; anything else is ruled
			// out by resolution.
			return value.Null()
		}
		return value.NewBoolean(apply(cmp))
	})
	signatures := make([]*Signature, 0, len(orderedTypes))
	for _, t := range orderedTypes {
		signatures = append(signatures,
			NewSignature(name, []types.ExprType{t, t}, types.Boolean, impl))
	}
	return Define(name, signatures...)
}
