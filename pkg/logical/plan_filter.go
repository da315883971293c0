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
	"fmt"

	"github.com/pkg/errors"

	"github.com/indexql/indexql/pkg/ast"
	"github.com/indexql/indexql/pkg/expr"
	"github.com/indexql/indexql/pkg/function"
	"github.com/indexql/indexql/pkg/types"
)

var (
	_ UnresolvedPlan = (*unresolvedFilter)(nil)
	_ Plan           = (*FilterPlan)(nil)
)

type unresolvedFilter struct {
	input     UnresolvedPlan
	predicate ast.Expression
}

// Filter keeps the input rows the predicate evaluates to TRUE for.
// NULL and MISSING predicates drop the row, they are not TRUE.
func Filter(input UnresolvedPlan, predicate ast.Expression) UnresolvedPlan {
	return &unresolvedFilter{input: input, predicate: predicate}
}

func (u *unresolvedFilter) Analyze(s Schema) (Plan, error) {
	input, err := u.input.Analyze(s)
	if err != nil {
		return nil, err
	}
	predicate, err := BindExpression(function.Default(), u.predicate, input.Schema())
	if err != nil {
		return nil, err
	}
	if t := predicate.DataType(); t != types.Boolean && t != types.Unknown {
		return nil, errors.Wrapf(ErrMalformedPlan, "filter predicate must be BOOLEAN, got %s", t)
	}
	return &FilterPlan{input: input, predicate: predicate}, nil
}

// FilterPlan is the resolved selection node.
type FilterPlan struct {
	input     Plan
	predicate expr.Expression
}

// Predicate returns the boolean selection expression.
func (f *FilterPlan) Predicate() expr.Expression { return f.predicate }

func (f *FilterPlan) Type() PlanType { return PlanFilter }

func (f *FilterPlan) Children() []Plan { return []Plan{f.input} }

func (f *FilterPlan) Schema() Schema { return f.input.Schema() }

func (f *FilterPlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitFilter(f, ctx)
}

func (f *FilterPlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanFilter {
		return false
	}
	other := plan.(*FilterPlan)
	return f.predicate.Equal(other.predicate) && f.input.Equal(other.input)
}

func (f *FilterPlan) String() string {
	return fmt.Sprintf("Filter: %s", f.predicate)
}
