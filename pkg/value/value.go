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

// Package value models the runtime values an expression produces.
// A value is a concrete typed value, the NULL marker or the MISSING marker.
// NULL means the field exists but its value is undefined. MISSING means the
// field does not exist on the current row. The two markers never coerce into
// each other unless a specific function's contract says so.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/indexql/indexql/pkg/types"
)

// ExprValue is one immutable runtime value.
type ExprValue interface {
	fmt.Stringer
	Type() types.ExprType
	IsNull() bool
	IsMissing() bool
	// Value returns the underlying Go value, nil for the NULL and MISSING markers.
	Value() any
	Equal(other ExprValue) bool
}

var (
	_ ExprValue = nullValue{}
	_ ExprValue = missingValue{}

	nullSingleton    = nullValue{}
	missingSingleton = missingValue{}
)

type nullValue struct{}

// Null returns the NULL marker.
func Null() ExprValue { return nullSingleton }

func (nullValue) Type() types.ExprType { return types.Unknown }
func (nullValue) IsNull() bool { return true }
func (nullValue) IsMissing() bool { return false }
func (nullValue) Value() any { return nil }
func (nullValue) String() string { return "NULL" }
func (nullValue) Equal(ExprValue) bool { return false }

type missingValue struct{}

// Missing returns the MISSING marker.
func Missing() ExprValue { return missingSingleton }

func (missingValue) Type() types.ExprType { return types.Unknown }
func (missingValue) IsNull() bool { return false }
func (missingValue) IsMissing() bool { return true }
func (missingValue) Value() any { return nil }
func (missingValue) String() string { return "MISSING" }
func (missingValue) Equal(ExprValue) bool { return false }

var _ ExprValue = (*booleanValue)(nil)

type booleanValue struct {
	b bool
}

// NewBoolean wraps a bool.
func NewBoolean(b bool) ExprValue { return &booleanValue{b: b} }

// True is the concrete TRUE value.
func True() ExprValue { return NewBoolean(true) }

// False is the concrete FALSE value.
func False() ExprValue { return NewBoolean(false) }

func (v *booleanValue) Type() types.ExprType { return types.Boolean }
func (v *booleanValue) IsNull() bool { return false }
func (v *booleanValue) IsMissing() bool { return false }
func (v *booleanValue) Value() any { return v.b }
func (v *booleanValue) String() string { return strconv.FormatBool(v.b) }

func (v *booleanValue) Equal(other ExprValue) bool {
	if o, ok := other.(*booleanValue); ok {
		return v.b == o.b
	}
	return false
}

var _ ExprValue = (*integralValue)(nil)

// integralValue covers the fixed-point members of the numeric chain.
type integralValue struct {
	t types.ExprType
	i int64
}

// NewIntegral wraps an int64 tagged with one of the integral types.
func NewIntegral(t types.ExprType, i int64) ExprValue {
	if !t.IsIntegral() {
		panic("integral value requires an integral type, got " + t.String())
	}
	return &integralValue{t: t, i: i}
}

// NewByte wraps a byte-typed value.
func NewByte(i int8) ExprValue { return NewIntegral(types.Byte, int64(i)) }

// NewShort wraps a short-typed value.
func NewShort(i int16) ExprValue { return NewIntegral(types.Short, int64(i)) }

// NewInteger wraps an integer-typed value.
func NewInteger(i int32) ExprValue { return NewIntegral(types.Integer, int64(i)) }

// NewLong wraps a long-typed value.
func NewLong(i int64) ExprValue { return NewIntegral(types.Long, i) }

func (v *integralValue) Type() types.ExprType { return v.t }
func (v *integralValue) IsNull() bool { return false }
func (v *integralValue) IsMissing() bool { return false }
func (v *integralValue) Value() any { return v.i }
func (v *integralValue) String() string { return strconv.FormatInt(v.i, 10) }

func (v *integralValue) Equal(other ExprValue) bool {
	return numericEqual(v, other)
}

var _ ExprValue = (*floatingValue)(nil)

// floatingValue covers the floating-point members of the numeric chain.
type floatingValue struct {
	t types.ExprType
	f float64
}

// NewFloating wraps a float64 tagged with FLOAT or DOUBLE.
func NewFloating(t types.ExprType, f float64) ExprValue {
	if t != types.Float && t != types.Double {
		panic("floating value requires FLOAT or DOUBLE, got " + t.String())
	}
	return &floatingValue{t: t, f: f}
}

// NewFloat wraps a float-typed value.
func NewFloat(f float32) ExprValue { return NewFloating(types.Float, float64(f)) }

// NewDouble wraps a double-typed value.
func NewDouble(f float64) ExprValue { return NewFloating(types.Double, f) }

func (v *floatingValue) Type() types.ExprType { return v.t }
func (v *floatingValue) IsNull() bool { return false }
func (v *floatingValue) IsMissing() bool { return false }
func (v *floatingValue) Value() any { return v.f }

func (v *floatingValue) String() string {
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}

func (v *floatingValue) Equal(other ExprValue) bool {
	return numericEqual(v, other)
}

// numericEqual compares two numeric values regardless of their width,
// so a widened argument still equals its narrow origin.
func numericEqual(v, other ExprValue) bool {
	if !v.Type().IsNumeric() || !other.Type().IsNumeric() {
		return false
	}
	if v.Type().IsIntegral() && other.Type().IsIntegral() {
		a, _ := AsInt64(v)
		b, _ := AsInt64(other)
		return a == b
	}
	a, _ := AsFloat64(v)
	b, _ := AsFloat64(other)
	return a == b
}

var _ ExprValue = (*stringValue)(nil)

type stringValue struct {
	s string
}

// NewString wraps a string.
func NewString(s string) ExprValue { return &stringValue{s: s} }

func (v *stringValue) Type() types.ExprType { return types.String }
func (v *stringValue) IsNull() bool { return false }
func (v *stringValue) IsMissing() bool { return false }
func (v *stringValue) Value() any { return v.s }
func (v *stringValue) String() string { return strconv.Quote(v.s) }

func (v *stringValue) Equal(other ExprValue) bool {
	if o, ok := other.(*stringValue); ok {
		return v.s == o.s
	}
	return false
}

var _ ExprValue = (*instantValue)(nil)

// instantValue covers the date/time members of the type system.
type instantValue struct {
	t  types.ExprType
	ts time.Time
}

// NewInstant wraps a point in time tagged with TIMESTAMP, DATE or TIME.
func NewInstant(t types.ExprType, ts time.Time) ExprValue {
	switch t {
	case types.Timestamp, types.Date, types.Time:
	default:
		panic("instant value requires a date/time type, got " + t.String())
	}
	return &instantValue{t: t, ts: ts}
}

// NewTimestamp wraps a timestamp-typed value.
func NewTimestamp(ts time.Time) ExprValue { return NewInstant(types.Timestamp, ts) }

func (v *instantValue) Type() types.ExprType { return v.t }
func (v *instantValue) IsNull() bool { return false }
func (v *instantValue) IsMissing() bool { return false }
func (v *instantValue) Value() any { return v.ts }
func (v *instantValue) String() string { return v.ts.Format(time.RFC3339Nano) }

func (v *instantValue) Equal(other ExprValue) bool {
	if o, ok := other.(*instantValue); ok {
		return v.t == o.t && v.ts.Equal(o.ts)
	}
	return false
}

var _ ExprValue = (*arrayValue)(nil)

type arrayValue struct {
	items []ExprValue
}

// NewArray wraps an ordered collection of values.
func NewArray(items ...ExprValue) ExprValue {
	return &arrayValue{items: items}
}

func (v *arrayValue) Type() types.ExprType { return types.Array }
func (v *arrayValue) IsNull() bool { return false }
func (v *arrayValue) IsMissing() bool { return false }
func (v *arrayValue) Value() any { return v.items }

func (v *arrayValue) String() string {
	parts := make([]string, len(v.items))
	for i, item := range v.items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v *arrayValue) Equal(other ExprValue) bool {
	o, ok := other.(*arrayValue)
	if !ok || len(v.items) != len(o.items) {
		return false
	}
	for i, item := range v.items {
		if !item.Equal(o.items[i]) {
			return false
		}
	}
	return true
}

var _ ExprValue = (*structValue)(nil)

type structValue struct {
	fields map[string]ExprValue
}

// NewStruct wraps a named collection of values.
func NewStruct(fields map[string]ExprValue) ExprValue {
	return &structValue{fields: fields}
}

func (v *structValue) Type() types.ExprType { return types.Struct }
func (v *structValue) IsNull() bool { return false }
func (v *structValue) IsMissing() bool { return false }
func (v *structValue) Value() any { return v.fields }

func (v *structValue) String() string {
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + v.fields[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (v *structValue) Equal(other ExprValue) bool {
	o, ok := other.(*structValue)
	if !ok || len(v.fields) != len(o.fields) {
		return false
	}
	for k, item := range v.fields {
		counterpart, found := o.fields[k]
		if !found || !item.Equal(counterpart) {
			return false
		}
	}
	return true
}

// AsBoolean extracts the bool payload of a concrete boolean value.
func AsBoolean(v ExprValue) (bool, bool) {
	if o, ok := v.(*booleanValue); ok {
		return o.b, true
	}
	return false, false
}

// AsInt64 extracts the payload of an integral value.
func AsInt64(v ExprValue) (int64, bool) {
	if o, ok := v.(*integralValue); ok {
		return o.i, true
	}
	return 0, false
}

// AsFloat64 extracts the payload of any numeric value widened to float64.
func AsFloat64(v ExprValue) (float64, bool) {
	switch o := v.(type) {
	case *integralValue:
		return float64(o.i), true
	case *floatingValue:
		return o.f, true
	default:
		return 0, false
	}
}

// AsString extracts the payload of a concrete string value.
func AsString(v ExprValue) (string, bool) {
	if o, ok := v.(*stringValue); ok {
		return o.s, true
	}
	return "", false
}

// AsTime extracts the payload of a date/time value.
func AsTime(v ExprValue) (time.Time, bool) {
	if o, ok := v.(*instantValue); ok {
		return o.ts, true
	}
	return time.Time{}, false
}

// Compare orders two concrete values of comparable types. The second result
// reports whether the pair is comparable at all; markers never are.
func Compare(a, b ExprValue) (int, bool) {
	switch {
	case a.Type().IsNumeric() && b.Type().IsNumeric():
		if a.Type().IsIntegral() && b.Type().IsIntegral() {
			l, _ := AsInt64(a)
			r, _ := AsInt64(b)
			return compareOrdered(l, r), true
		}
		l, _ := AsFloat64(a)
		r, _ := AsFloat64(b)
		return compareOrdered(l, r), true
	case a.Type() == types.String && b.Type() == types.String:
		l, _ := AsString(a)
		r, _ := AsString(b)
		return strings.Compare(l, r), true
	}
	if l, ok := AsTime(a); ok {
		if r, rok := AsTime(b); rok {
			return l.Compare(r), true
		}
	}
	return 0, false
}

func compareOrdered[N int64 | float64](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
