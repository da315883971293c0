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

// Package types defines the closed set of scalar types the query core operates on.
// Unknown is the placeholder for values whose type cannot be determined yet,
// e.g. a bare NULL literal. It participates in overload resolution as
// "accepts anything, defer typing to the other side".
package types

import (
	"strings"

	"github.com/pkg/errors"
)

// ExprType identifies one member of the core type system.
type ExprType uint8

// The core type system. Unknown must stay the zero value.
const (
	Unknown ExprType = iota
	Boolean
	Byte
	Short
	Integer
	Long
	Float
	Double
	String
	Timestamp
	Date
	Time
	Array
	Struct
)

// ErrUnsupportedType indicates the type name is not a member of the core type system.
var ErrUnsupportedType = errors.New("unsupported type")

var typeNames = map[ExprType]string{
	Unknown:   "UNKNOWN",
	Boolean:   "BOOLEAN",
	Byte:      "BYTE",
	Short:     "SHORT",
	Integer:   "INTEGER",
	Long:      "LONG",
	Float:     "FLOAT",
	Double:    "DOUBLE",
	String:    "STRING",
	Timestamp: "TIMESTAMP",
	Date:      "DATE",
	Time:      "TIME",
	Array:     "ARRAY",
	Struct:    "STRUCT",
}

// String returns the canonical upper-case name of t.
func (t ExprType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Parse maps a case-insensitive type name to its ExprType.
func Parse(name string) (ExprType, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == upper {
			return t, nil
		}
	}
	return Unknown, errors.Wrap(ErrUnsupportedType, name)
}

// CoreTypes returns every member of the type system except Unknown,
// in declaration order.
func CoreTypes() []ExprType {
	return []ExprType{
		Boolean, Byte, Short, Integer, Long, Float, Double,
		String, Timestamp, Date, Time, Array, Struct,
	}
}

// NumberTypes returns the numeric types ordered from the narrowest to the widest.
func NumberTypes() []ExprType {
	return []ExprType{Byte, Short, Integer, Long, Float, Double}
}

// IsNumeric reports whether t belongs to the numeric widening chain.
func (t ExprType) IsNumeric() bool {
	switch t {
	case Byte, Short, Integer, Long, Float, Double:
		return true
	default:
		return false
	}
}

// IsIntegral reports whether t is a fixed-point numeric type.
func (t ExprType) IsIntegral() bool {
	switch t {
	case Byte, Short, Integer, Long:
		return true
	default:
		return false
	}
}

// wideningRank fixes the one-directional widening order between numeric types.
var wideningRank = map[ExprType]int{
	Byte:    0,
	Short:   1,
	Integer: 2,
	Long:    3,
	Float:   4,
	Double:  5,
}

// WideningDistance returns the number of widening steps needed to convert
// from one numeric type to a wider one. Narrowing and non-numeric
// conversions are rejected.
func WideningDistance(from, to ExprType) (int, bool) {
	f, ok := wideningRank[from]
	if !ok {
		return 0, false
	}
	t, ok := wideningRank[to]
	if !ok || t < f {
		return 0, false
	}
	return t - f, true
}
