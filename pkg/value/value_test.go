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

package value_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

func TestNullAndMissingAreDistinct(t *testing.T) {
	assert := require.New(t)
	null := value.Null()
	missing := value.Missing()

	assert.True(null.IsNull())
	assert.False(null.IsMissing())
	assert.True(missing.IsMissing())
	assert.False(missing.IsNull())
	assert.Equal(types.Unknown, null.Type())
	assert.Equal(types.Unknown, missing.Type())

	// The markers never compare equal, not even to themselves.
	assert.False(null.Equal(null))
	assert.False(null.Equal(missing))
	assert.False(missing.Equal(missing))
	assert.False(value.NewLong(0).Equal(null))

	assert.Equal("NULL", null.String())
	assert.Equal("MISSING", missing.String())
}

func TestNumericEquality(t *testing.T) {
	tests := []struct {
		name string
		a    value.ExprValue
		b    value.ExprValue
		want bool
	}{
		{name: "same width", a: value.NewLong(42), b: value.NewLong(42), want: true},
		{name: "cross width integral", a: value.NewInteger(42), b: value.NewLong(42), want: true},
		{name: "byte vs short", a: value.NewByte(7), b: value.NewShort(7), want: true},
		{name: "integral vs floating", a: value.NewLong(2), b: value.NewDouble(2.0), want: true},
		{name: "different magnitude", a: value.NewLong(2), b: value.NewLong(3), want: false},
		{name: "fractional difference", a: value.NewLong(2), b: value.NewDouble(2.5), want: false},
		{name: "numeric vs string", a: value.NewLong(2), b: value.NewString("2"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(tt.want, tt.a.Equal(tt.b))
			assert.Equal(tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestCompare(t *testing.T) {
	assert := require.New(t)

	cmp, ok := value.Compare(value.NewInteger(1), value.NewLong(2))
	assert.True(ok)
	assert.Negative(cmp)

	cmp, ok = value.Compare(value.NewDouble(2.5), value.NewLong(2))
	assert.True(ok)
	assert.Positive(cmp)

	cmp, ok = value.Compare(value.NewString("a"), value.NewString("b"))
	assert.True(ok)
	assert.Negative(cmp)

	earlier := value.NewTimestamp(time.Unix(100, 0))
	later := value.NewTimestamp(time.Unix(200, 0))
	cmp, ok = value.Compare(earlier, later)
	assert.True(ok)
	assert.Negative(cmp)

	_, ok = value.Compare(value.NewLong(1), value.NewString("1"))
	assert.False(ok)
	_, ok = value.Compare(value.Null(), value.NewLong(1))
	assert.False(ok)
}

func TestAccessors(t *testing.T) {
	assert := require.New(t)

	i, ok := value.AsInt64(value.NewShort(12))
	assert.True(ok)
	assert.Equal(int64(12), i)

	f, ok := value.AsFloat64(value.NewInteger(12))
	assert.True(ok)
	assert.Equal(12.0, f)

	f, ok = value.AsFloat64(value.NewFloat(1.5))
	assert.True(ok)
	assert.Equal(1.5, f)

	_, ok = value.AsInt64(value.NewDouble(1.5))
	assert.False(ok)

	s, ok := value.AsString(value.NewString("hello"))
	assert.True(ok)
	assert.Equal("hello", s)

	b, ok := value.AsBoolean(value.True())
	assert.True(ok)
	assert.True(b)

	_, ok = value.AsBoolean(value.Null())
	assert.False(ok)
}

func TestCompositeValues(t *testing.T) {
	assert := require.New(t)

	arr := value.NewArray(value.NewLong(1), value.NewLong(2))
	assert.Equal(types.Array, arr.Type())
	assert.True(arr.Equal(value.NewArray(value.NewLong(1), value.NewLong(2))))
	assert.False(arr.Equal(value.NewArray(value.NewLong(2), value.NewLong(1))))

	st := value.NewStruct(map[string]value.ExprValue{"a": value.NewLong(1)})
	assert.Equal(types.Struct, st.Type())
	assert.True(st.Equal(value.NewStruct(map[string]value.ExprValue{"a": value.NewLong(1)})))
	assert.False(st.Equal(value.NewStruct(map[string]value.ExprValue{"a": value.NewLong(2)})))

	// An array holding NULL never equals another, the marker is unequal to everything.
	withNull := value.NewArray(value.Null())
	assert.False(withNull.Equal(value.NewArray(value.Null())))
}

func TestStringRendering(t *testing.T) {
	assert := require.New(t)
	assert.Equal(`"abc"`, value.NewString("abc").String())
	assert.Equal("42", value.NewLong(42).String())
	assert.Equal("true", value.True().String())
}
