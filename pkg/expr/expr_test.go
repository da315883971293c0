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

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indexql/indexql/pkg/expr"
	"github.com/indexql/indexql/pkg/function"
	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

func call(t *testing.T, name function.Name, args ...expr.Expression) expr.Expression {
	t.Helper()
	argTypes := make([]types.ExprType, len(args))
	for i, arg := range args {
		argTypes[i] = arg.DataType()
	}
	sig, err := function.Resolve(function.Default(), name, argTypes)
	require.NoError(t, err)
	return expr.NewCall(sig, args...)
}

func long(i int64) expr.Expression {
	return expr.NewLiteral(value.NewLong(i))
}

func TestLiteralEval(t *testing.T) {
	assert := require.New(t)
	lit := expr.NewLiteral(value.NewString("x"))
	assert.Equal(types.String, lit.DataType())
	assert.True(lit.Eval(nil).Equal(value.NewString("x")))

	nullLit := expr.NewLiteral(value.Null())
	assert.Equal(types.Unknown, nullLit.DataType())
	assert.True(nullLit.Eval(nil).IsNull())
}

func TestFieldRefEval(t *testing.T) {
	assert := require.New(t)
	ref := expr.NewRef("age", types.Integer)
	assert.Equal(types.Integer, ref.DataType())
	assert.Equal("#age<INTEGER>", ref.String())

	row := value.BindRow(map[string]any{"age": int32(30)})
	assert.True(ref.Eval(row).Equal(value.NewInteger(30)))

	// An absent field evaluates to MISSING, a bound null to NULL.
	assert.True(ref.Eval(value.Row{}).IsMissing())
	assert.True(ref.Eval(value.BindRow(map[string]any{"age": nil})).IsNull())
}

func TestCallEval(t *testing.T) {
	assert := require.New(t)
	sum := call(t, function.Add, long(2), long(3))
	assert.Equal(types.Long, sum.DataType())
	assert.True(sum.Eval(nil).Equal(value.NewLong(5)))
}

func TestNestedNullPropagation(t *testing.T) {
	assert := require.New(t)

	// 1 + 1*1/0: the division is NULL, and NULL flows through the chain.
	divByZero := call(t, function.Divide, call(t, function.Multiply, long(1), long(1)), long(0))
	sum := call(t, function.Add, long(1), divByZero)
	assert.Equal(types.Long, sum.DataType())
	assert.True(sum.Eval(nil).IsNull())

	// is_null observes the runtime NULL even though the static type is LONG.
	check := call(t, function.Isnull, sum)
	got, ok := value.AsBoolean(check.Eval(nil))
	assert.True(ok)
	assert.True(got)
}

func TestCallArityMismatchPanics(t *testing.T) {
	assert := require.New(t)
	sig, err := function.Resolve(function.Default(), function.Add,
		[]types.ExprType{types.Long, types.Long})
	assert.NoError(err)
	assert.Panics(func() {
		expr.NewCall(sig, long(1))
	})
}

func TestExpressionEqual(t *testing.T) {
	assert := require.New(t)

	assert.True(long(1).Equal(long(1)))
	assert.False(long(1).Equal(long(2)))
	// Tree equality compares marker flags, not value equality, so two NULL
	// literals are the same subtree.
	assert.True(expr.NewLiteral(value.Null()).Equal(expr.NewLiteral(value.Null())))
	assert.False(expr.NewLiteral(value.Null()).Equal(expr.NewLiteral(value.Missing())))

	assert.True(expr.NewRef("a", types.Long).Equal(expr.NewRef("a", types.Long)))
	assert.False(expr.NewRef("a", types.Long).Equal(expr.NewRef("a", types.Integer)))

	left := call(t, function.Add, long(1), long(2))
	right := call(t, function.Add, long(1), long(2))
	assert.True(left.Equal(right))
	assert.False(left.Equal(call(t, function.Add, long(1), long(3))))
}

func TestNamed(t *testing.T) {
	assert := require.New(t)
	named := expr.NewNamed("total", call(t, function.Add, long(1), long(2)))
	assert.Equal("total", named.Name())
	assert.Equal("total=+(1, 2)", named.String())
	assert.True(named.Equal(expr.NewNamed("total", call(t, function.Add, long(1), long(2)))))
}
