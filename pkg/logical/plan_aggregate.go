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
	"strings"

	"github.com/indexql/indexql/pkg/aggregation"
	"github.com/indexql/indexql/pkg/ast"
	"github.com/indexql/indexql/pkg/expr"
	"github.com/indexql/indexql/pkg/function"
	"github.com/indexql/indexql/pkg/types"
)

// AggregationSpec is one unresolved aggregate output: an aggregate function
// applied to an argument expression under an output alias.
type AggregationSpec struct {
	Arg   ast.Expression
	Func  string
	Alias string
}

// NamedAggregation is the resolved counterpart, carrying the validated
// argument expression and result type. The physical layer creates fresh
// aggregators from it per execution.
type NamedAggregation struct {
	arg        expr.Expression
	fn         string
	alias      string
	resultType types.ExprType
}

// Alias returns the output name.
func (n *NamedAggregation) Alias() string { return n.alias }

// Func returns the aggregate function name.
func (n *NamedAggregation) Func() string { return n.fn }

// Arg returns the resolved argument expression.
func (n *NamedAggregation) Arg() expr.Expression { return n.arg }

// ResultType returns the type the aggregator produces.
func (n *NamedAggregation) ResultType() types.ExprType { return n.resultType }

// NewAggregator creates a fresh aggregator for one execution.
func (n *NamedAggregation) NewAggregator() (aggregation.Aggregator, error) {
	return aggregation.New(n.fn, n.arg.DataType())
}

// Equal compares alias, function and argument.
func (n *NamedAggregation) Equal(other *NamedAggregation) bool {
	return n.alias == other.alias && n.fn == other.fn && n.arg.Equal(other.arg)
}

func (n *NamedAggregation) String() string {
	return fmt.Sprintf("%s=%s(%s)", n.alias, n.fn, n.arg)
}

var (
	_ UnresolvedPlan = (*unresolvedAggregate)(nil)
	_ Plan           = (*AggregatePlan)(nil)
)

type unresolvedAggregate struct {
	input        UnresolvedPlan
	groups       []ast.Expression
	aggregations []AggregationSpec
}

// Aggregate groups the input by the group expressions and folds each group
// through the aggregate functions. The output schema is the group keys
// followed by the aggregate aliases.
func Aggregate(input UnresolvedPlan, groups []ast.Expression, aggregations []AggregationSpec) UnresolvedPlan {
	return &unresolvedAggregate{input: input, groups: groups, aggregations: aggregations}
}

func (u *unresolvedAggregate) Analyze(s Schema) (Plan, error) {
	input, err := u.input.Analyze(s)
	if err != nil {
		return nil, err
	}
	inputSchema := input.Schema()

	groups := make([]expr.Expression, 0, len(u.groups))
	specs := make([]*FieldSpec, 0, len(u.groups)+len(u.aggregations))
	for _, group := range u.groups {
		bound, bindErr := BindExpression(function.Default(), group, inputSchema)
		if bindErr != nil {
			return nil, bindErr
		}
		groups = append(groups, bound)
		specs = append(specs, NewField(outputName(group, bound), bound.DataType()))
	}

	aggregations := make([]*NamedAggregation, 0, len(u.aggregations))
	for _, spec := range u.aggregations {
		bound, bindErr := BindExpression(function.Default(), spec.Arg, inputSchema)
		if bindErr != nil {
			return nil, bindErr
		}
		resultType, aggErr := aggregation.ResultType(spec.Func, bound.DataType())
		if aggErr != nil {
			return nil, aggErr
		}
		alias := spec.Alias
		if alias == "" {
			alias = fmt.Sprintf("%s(%s)", spec.Func, outputName(spec.Arg, bound))
		}
		aggregations = append(aggregations, &NamedAggregation{
			alias:      alias,
			fn:         strings.ToLower(spec.Func),
			arg:        bound,
			resultType: resultType,
		})
		specs = append(specs, NewField(alias, resultType))
	}

	return &AggregatePlan{
		input:        input,
		groups:       groups,
		aggregations: aggregations,
		schema:       NewSchema(specs...),
	}, nil
}

// AggregatePlan is the resolved grouping node.
type AggregatePlan struct {
	input        Plan
	schema       Schema
	groups       []expr.Expression
	aggregations []*NamedAggregation
}

// Groups returns the group-by expressions.
func (a *AggregatePlan) Groups() []expr.Expression {
	out := make([]expr.Expression, len(a.groups))
	copy(out, a.groups)
	return out
}

// Aggregations returns the aggregate outputs.
func (a *AggregatePlan) Aggregations() []*NamedAggregation {
	out := make([]*NamedAggregation, len(a.aggregations))
	copy(out, a.aggregations)
	return out
}

func (a *AggregatePlan) Type() PlanType { return PlanAggregate }

func (a *AggregatePlan) Children() []Plan { return []Plan{a.input} }

func (a *AggregatePlan) Schema() Schema { return a.schema }

func (a *AggregatePlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitAggregate(a, ctx)
}

func (a *AggregatePlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanAggregate {
		return false
	}
	other := plan.(*AggregatePlan)
	if len(a.groups) != len(other.groups) || len(a.aggregations) != len(other.aggregations) {
		return false
	}
	for i, group := range a.groups {
		if !group.Equal(other.groups[i]) {
			return false
		}
	}
	for i, agg := range a.aggregations {
		if !agg.Equal(other.aggregations[i]) {
			return false
		}
	}
	return a.input.Equal(other.input)
}

func (a *AggregatePlan) String() string {
	groups := make([]string, len(a.groups))
	for i, group := range a.groups {
		groups[i] = group.String()
	}
	aggs := make([]string, len(a.aggregations))
	for i, agg := range a.aggregations {
		aggs[i] = agg.String()
	}
	return fmt.Sprintf("Aggregate: groups=[%s], aggregations=[%s]",
		strings.Join(groups, ", "), strings.Join(aggs, ", "))
}
