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

	"github.com/stretchr/testify/require"

	"github.com/indexql/indexql/pkg/function"
	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

func invoke(t *testing.T, name function.Name, args ...value.ExprValue) value.ExprValue {
	t.Helper()
	argTypes := make([]types.ExprType, len(args))
	for i, arg := range args {
		argTypes[i] = arg.Type()
	}
	sig, err := function.Resolve(function.Default(), name, argTypes)
	require.NoError(t, err)
	return sig.Invoke(args...)
}

// The four logical states, in dominance order per operator.
var (
	vTrue    = value.True()
	vFalse   = value.False()
	vNull    = value.Null()
	vMissing = value.Missing()
)

func TestAndTruthTable(t *testing.T) {
	tests := []struct {
		l, r, want value.ExprValue
	}{
		{vTrue, vTrue, vTrue},
		{vTrue, vFalse, vFalse},
		{vFalse, vFalse, vFalse},
		// FALSE dominates both markers.
		{vFalse, vNull, vFalse},
		{vFalse, vMissing, vFalse},
		{vNull, vFalse, vFalse},
		{vMissing, vFalse, vFalse},
		// MISSING dominates NULL in the remaining cases.
		{vTrue, vNull, vNull},
		{vTrue, vMissing, vMissing},
		{vNull, vNull, vNull},
		{vNull, vMissing, vMissing},
		{vMissing, vMissing, vMissing},
	}
	for _, tt := range tests {
		got := invoke(t, function.And, tt.l, tt.r)
		requireSameState(t, tt.want, got)
	}
}

func TestOrTruthTable(t *testing.T) {
	tests := []struct {
		l, r, want value.ExprValue
	}{
		{vFalse, vFalse, vFalse},
		{vTrue, vFalse, vTrue},
		// TRUE dominates both markers.
		{vTrue, vNull, vTrue},
		{vTrue, vMissing, vTrue},
		{vNull, vTrue, vTrue},
		{vMissing, vTrue, vTrue},
		// MISSING dominates NULL in the remaining cases.
		{vFalse, vNull, vNull},
		{vFalse, vMissing, vMissing},
		{vNull, vNull, vNull},
		{vNull, vMissing, vMissing},
		{vMissing, vMissing, vMissing},
	}
	for _, tt := range tests {
		got := invoke(t, function.Or, tt.l, tt.r)
		requireSameState(t, tt.want, got)
	}
}

func TestXorTruthTable(t *testing.T) {
	tests := []struct {
		l, r, want value.ExprValue
	}{
		{vTrue, vTrue, vFalse},
		{vTrue, vFalse, vTrue},
		{vFalse, vTrue, vTrue},
		{vFalse, vFalse, vFalse},
		// Any marker poisons xor, MISSING first.
		{vTrue, vNull, vNull},
		{vNull, vFalse, vNull},
		{vTrue, vMissing, vMissing},
		{vMissing, vNull, vMissing},
	}
	for _, tt := range tests {
		got := invoke(t, function.Xor, tt.l, tt.r)
		requireSameState(t, tt.want, got)
	}
}

func TestNotPropagatesMarkers(t *testing.T) {
	requireSameState(t, vFalse, invoke(t, function.Not, vTrue))
	requireSameState(t, vTrue, invoke(t, function.Not, vFalse))
	requireSameState(t, vNull, invoke(t, function.Not, vNull))
	requireSameState(t, vMissing, invoke(t, function.Not, vMissing))
}

func TestIsNullDistinguishesMarkers(t *testing.T) {
	for _, name := range []function.Name{function.IsNull, function.Isnull} {
		requireSameState(t, vTrue, invoke(t, name, vNull))
		requireSameState(t, vFalse, invoke(t, name, vMissing))
		requireSameState(t, vFalse, invoke(t, name, value.NewLong(0)))
		requireSameState(t, vFalse, invoke(t, name, value.NewString("")))
	}
	requireSameState(t, vFalse, invoke(t, function.IsNotNull, vNull))
	requireSameState(t, vTrue, invoke(t, function.IsNotNull, vMissing))
	requireSameState(t, vTrue, invoke(t, function.IsNotNull, value.NewLong(0)))
}

func TestIfNull(t *testing.T) {
	assert := require.New(t)

	// Both markers pick the fallback; this is the one place they coincide.
	fallback := value.NewLong(10)
	assert.True(invoke(t, function.IfNull, vNull, fallback).Equal(fallback))
	assert.True(invoke(t, function.IfNull, vMissing, fallback).Equal(fallback))

	// A concrete falsy value is not NULL.
	empty := value.NewString("")
	got := invoke(t, function.IfNull, empty, fallback)
	s, ok := value.AsString(got)
	assert.True(ok)
	assert.Equal("", s)
}

func TestNullIf(t *testing.T) {
	assert := require.New(t)

	requireSameState(t, vNull, invoke(t, function.NullIf, value.NewLong(7), value.NewLong(7)))

	got := invoke(t, function.NullIf, value.NewLong(7), value.NewLong(8))
	assert.True(got.Equal(value.NewLong(7)))

	// A marker on either side returns the first argument unchanged.
	requireSameState(t, vNull, invoke(t, function.NullIf, vNull, value.NewLong(7)))
	got = invoke(t, function.NullIf, value.NewLong(7), vNull)
	assert.True(got.Equal(value.NewLong(7)))
	requireSameState(t, vMissing, invoke(t, function.NullIf, vMissing, value.NewLong(7)))
}

func requireSameState(t *testing.T, want, got value.ExprValue) {
	t.Helper()
	switch {
	case want.IsNull():
		require.True(t, got.IsNull())
	case want.IsMissing():
		require.True(t, got.IsMissing())
	default:
		wb, _ := value.AsBoolean(want)
		gb, ok := value.AsBoolean(got)
		require.True(t, ok)
		require.Equal(t, wb, gb)
	}
}
