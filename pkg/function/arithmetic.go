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
	"math"

	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

// RegisterArithmetic registers + - * / % with one signature per numeric type.
// Undefined-but-legal cases (division or modulus by zero) evaluate to NULL,
// evaluation never fails for well-typed input.
func RegisterArithmetic(r *Registry) {
	r.Register(
		arithmetic(Add,
			func(a, b int64) (int64, bool) { return a + b, true },
			func(a, b float64) (float64, bool) { return a + b, true },
		),
		arithmetic(Subtract,
			func(a, b int64) (int64, bool) { return a - b, true },
			func(a, b float64) (float64, bool) { return a - b, true },
		),
		arithmetic(Multiply,
			func(a, b int64) (int64, bool) { return a * b, true },
			func(a, b float64) (float64, bool) { return a * b, true },
		),
		arithmetic(Divide,
			func(a, b int64) (int64, bool) {
				if b == 0 {
					return 0, false
				}
				return a / b, true
			},
			func(a, b float64) (float64, bool) {
				if b == 0 {
					return 0, false
				}
				return a / b, true
			},
		),
		arithmetic(Modulus,
			func(a, b int64) (int64, bool) {
				if b == 0 {
					return 0, false
				}
				return a % b, true
			},
			func(a, b float64) (float64, bool) {
				if b == 0 {
					return 0, false
				}
				return math.Mod(a, b), true
			},
		),
	)
}

func arithmetic(name Name, ints func(a, b int64) (int64, bool), floats func(a, b float64) (float64, bool)) Bundle {
	signatures := make([]*Signature, 0, len(types.NumberTypes()))
	for _, t := range types.NumberTypes() {
		t := t
		var impl Impl
		if t.IsIntegral() {
			impl = func(args ...value.ExprValue) value.ExprValue {
				a, _ := value.AsInt64(args[0])
				b, _ := value.AsInt64(args[1])
				res, ok := ints(a, b)
				if !ok {
					return value.Null()
				}
				return value.NewIntegral(t, res)
			}
		} else {
			impl = func(args ...value.ExprValue) value.ExprValue {
				a, _ := value.AsFloat64(args[0])
				b, _ := value.AsFloat64(args[1])
				res, ok := floats(a, b)
				if !ok {
					return value.Null()
				}
				return value.NewFloating(t, res)
			}
		}
		signatures = append(signatures,
			NewSignature(name, []types.ExprType{t, t}, t, NullMissingHandling(impl)))
	}
	return Define(name, signatures...)
}
