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

	"github.com/indexql/indexql/pkg/ast"
	"github.com/indexql/indexql/pkg/expr"
	"github.com/indexql/indexql/pkg/function"
)

// NamedExpr is one unresolved output column of a projection. An empty alias
// takes the column's own name, or the rendered expression for computed
// outputs.
type NamedExpr struct {
	Expr  ast.Expression
	Alias string
}

var (
	_ UnresolvedPlan = (*unresolvedProject)(nil)
	_ Plan           = (*ProjectPlan)(nil)
)

type unresolvedProject struct {
	input  UnresolvedPlan
	fields []NamedExpr
}

// Project narrows the output to the named expressions.
func Project(input UnresolvedPlan, fields ...NamedExpr) UnresolvedPlan {
	return &unresolvedProject{input: input, fields: fields}
}

func (u *unresolvedProject) Analyze(s Schema) (Plan, error) {
	input, err := u.input.Analyze(s)
	if err != nil {
		return nil, err
	}
	inputSchema := input.Schema()
	fields := make([]*expr.Named, 0, len(u.fields))
	specs := make([]*FieldSpec, 0, len(u.fields))
	for _, field := range u.fields {
		bound, bindErr := BindExpression(function.Default(), field.Expr, inputSchema)
		if bindErr != nil {
			return nil, bindErr
		}
		alias := field.Alias
		if alias == "" {
			alias = outputName(field.Expr, bound)
		}
		fields = append(fields, expr.NewNamed(alias, bound))
		specs = append(specs, NewField(alias, bound.DataType()))
	}
	return &ProjectPlan{
		input:  input,
		fields: fields,
		schema: NewSchema(specs...),
	}, nil
}

// ProjectPlan is the resolved projection node.
type ProjectPlan struct {
	input  Plan
	schema Schema
	fields []*expr.Named
}

// Fields returns the named output expressions, in output order.
func (p *ProjectPlan) Fields() []*expr.Named {
	out := make([]*expr.Named, len(p.fields))
	copy(out, p.fields)
	return out
}

func (p *ProjectPlan) Type() PlanType { return PlanProject }

func (p *ProjectPlan) Children() []Plan { return []Plan{p.input} }

func (p *ProjectPlan) Schema() Schema { return p.schema }

func (p *ProjectPlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitProject(p, ctx)
}

func (p *ProjectPlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanProject {
		return false
	}
	other := plan.(*ProjectPlan)
	if len(p.fields) != len(other.fields) {
		return false
	}
	for i, field := range p.fields {
		if !field.Equal(other.fields[i]) {
			return false
		}
	}
	return p.input.Equal(other.input)
}

func (p *ProjectPlan) String() string {
	parts := make([]string, len(p.fields))
	for i, field := range p.fields {
		parts[i] = field.String()
	}
	return fmt.Sprintf("Project: %s", strings.Join(parts, ", "))
}
