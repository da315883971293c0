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

package function_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/indexql/indexql/pkg/function"
	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

func TestComparisons(t *testing.T) {
	tests := []struct {
		name function.Name
		l    value.ExprValue
		r    value.ExprValue
		want bool
	}{
		{function.Equal, value.NewLong(2), value.NewLong(2), true},
		{function.Equal, value.NewInteger(2), value.NewLong(2), true},
		{function.NotEqual, value.NewLong(2), value.NewLong(3), true},
		{function.Less, value.NewLong(2), value.NewLong(3), true},
		{function.LessEqual, value.NewLong(3), value.NewLong(3), true},
		{function.Greater, value.NewLong(3), value.NewLong(2), true},
		{function.GreaterEqual, value.NewLong(2), value.NewLong(3), false},
		{function.Less, value.NewString("a"), value.NewString("b"), true},
		{function.Equal, value.NewString("a"), value.NewString("a"), true},
		{function.Equal, value.True(), value.True(), true},
	}
	for _, tt := range tests {
		got, ok := value.AsBoolean(invoke(t, tt.name, tt.l, tt.r))
		require.True(t, ok)
		require.Equal(t, tt.want, got, "%s(%s, %s)", tt.name, tt.l, tt.r)
	}
}

func TestComparisonPropagatesMarkers(t *testing.T) {
	assert := require.New(t)
	assert.True(invoke(t, function.Equal, value.NewLong(1), value.Null()).IsNull())
	assert.True(invoke(t, function.Less, value.NewLong(1), value.Missing()).IsMissing())
}

func TestOrderingRejectsUnorderedTypes(t *testing.T) {
	assert := require.New(t)
	_, err := function.Resolve(function.Default(), function.Less,
		[]types.ExprType{types.Boolean, types.Boolean})
	assert.True(errors.Is(err, function.ErrNoMatchingSignature))
	_, err = function.Resolve(function.Default(), function.Less,
		[]types.ExprType{types.Array, types.Array})
	assert.True(errors.Is(err, function.ErrNoMatchingSignature))
}
