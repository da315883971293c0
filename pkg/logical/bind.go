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
	"github.com/pkg/errors"

	"github.com/indexql/indexql/pkg/ast"
	"github.com/indexql/indexql/pkg/expr"
	"github.com/indexql/indexql/pkg/function"
	"github.com/indexql/indexql/pkg/types"
)

var errUnsupportedNode = errors.New("unsupported syntax node")

// BindExpression turns an unresolved syntax node into a typed expression:
// column references resolve against the schema, function calls resolve
// against the registry. Every resolution failure surfaces here, at analysis
// time; evaluation later never fails.
func BindExpression(r *function.Registry, node ast.Expression, s Schema) (expr.Expression, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return expr.NewLiteral(n.Value), nil
	case *ast.Column:
		refs, err := s.CreateRef(n.Name)
		if err != nil {
			return nil, err
		}
		return expr.NewRef(n.Name, refs[0].Spec.DataType), nil
	case *ast.Function:
		args := make([]expr.Expression, len(n.Args))
		argTypes := make([]types.ExprType, len(n.Args))
		for i, rawArg := range n.Args {
			bound, err := BindExpression(r, rawArg, s)
			if err != nil {
				return nil, err
			}
			args[i] = bound
			argTypes[i] = bound.DataType()
		}
		sig, err := function.Resolve(r, function.NameOf(n.Name), argTypes)
		if err != nil {
			return nil, err
		}
		return expr.NewCall(sig, args...), nil
	default:
		return nil, errors.Wrapf(errUnsupportedNode, "%T", node)
	}
}

// outputName derives the schema field name an expression contributes when
// the query gives it no explicit alias.
func outputName(node ast.Expression, bound expr.Expression) string {
	if col, ok := node.(*ast.Column); ok {
		return col.Name
	}
	return bound.String()
}
