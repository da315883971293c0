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

package logical

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/indexql/indexql/pkg/ast"
	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

func validScan() (Plan, Schema) {
	schema := NewSchema(
		NewField("name", types.String),
		NewField("age", types.Integer),
	)
	plan, _ := Relation("accounts").Analyze(schema)
	return plan, schema
}

func TestValidateAcceptsAnalyzedPlan(t *testing.T) {
	assert := require.New(t)
	_, schema := validScan()
	plan, err := Limit(
		Filter(
			Relation("accounts"),
			ast.Fn("is_null", ast.Col("name")),
		), 5, 0).Analyze(schema)
	assert.NoError(err)
	assert.NoError(Validate(plan))
}

func TestValidateRejectsHandAssembledNodes(t *testing.T) {
	assert := require.New(t)
	scan, _ := validScan()

	// A join missing its type tag, its join fields and one child.
	join := &JoinPlan{left: scan, right: nil, joinType: JoinTypeUnspecified}
	err := Validate(join)
	assert.Error(err)
	assert.True(errors.Is(err, ErrMalformedPlan))
	// Every violation is reported, not only the first.
	assert.GreaterOrEqual(len(multierr.Errors(err)), 3)

	// A relation with no source.
	assert.True(errors.Is(Validate(&RelationPlan{schema: scan.Schema()}), ErrMalformedPlan))

	// A filter with a non-boolean predicate.
	pred, bindErr := BindExpression(nil, ast.Lit(value.NewLong(1)), scan.Schema())
	assert.NoError(bindErr)
	filter := &FilterPlan{input: scan, predicate: pred}
	assert.True(errors.Is(Validate(filter), ErrMalformedPlan))

	// An aggregate folding nothing.
	empty := &AggregatePlan{input: scan, schema: scan.Schema()}
	assert.True(errors.Is(Validate(empty), ErrMalformedPlan))
}

func TestValidateJoinFieldCoverage(t *testing.T) {
	assert := require.New(t)
	scan, schema := validScan()
	narrow, err := Project(Relation("accounts"), NamedExpr{Expr: ast.Col("name")}).Analyze(schema)
	assert.NoError(err)

	join := &JoinPlan{
		left:           narrow,
		right:          scan,
		joinType:       JoinTypeInner,
		joinFieldNames: []string{"age"},
		schema:         narrow.Schema().Extend(scan.Schema()),
	}
	assert.True(errors.Is(Validate(join), ErrFieldNotDefined))
}
