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

package cmd

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/indexql/indexql/pkg/ast"
	"github.com/indexql/indexql/pkg/logical"
	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

var errQueryDoc = errors.New("invalid query document")

// planDoc is the YAML surface of an unresolved plan. Exactly one node kind
// must be set per document level.
type planDoc struct {
	Relation  *relationDoc  `yaml:"relation"`
	Filter    *filterDoc    `yaml:"filter"`
	Project   *projectDoc   `yaml:"project"`
	Aggregate *aggregateDoc `yaml:"aggregate"`
	Join      *joinDoc      `yaml:"join"`
	Sort      *sortDoc      `yaml:"sort"`
	Limit     *limitDoc     `yaml:"limit"`
	Rename    *renameDoc    `yaml:"rename"`
}

type relationDoc struct {
	Source string `yaml:"source"`
}

type filterDoc struct {
	Predicate *exprDoc `yaml:"predicate"`
	Input     *planDoc `yaml:"input"`
}

type fieldDoc struct {
	Expr  *exprDoc `yaml:"expr"`
	Alias string   `yaml:"alias"`
}

type projectDoc struct {
	Fields []fieldDoc `yaml:"fields"`
	Input  *planDoc   `yaml:"input"`
}

type aggDoc struct {
	Func  string   `yaml:"func"`
	Arg   *exprDoc `yaml:"arg"`
	Alias string   `yaml:"alias"`
}

type aggregateDoc struct {
	Groups       []exprDoc `yaml:"groups"`
	Aggregations []aggDoc  `yaml:"aggregations"`
	Input        *planDoc  `yaml:"input"`
}

type joinDoc struct {
	Type  string   `yaml:"type"`
	On    []string `yaml:"on"`
	Left  *planDoc `yaml:"left"`
	Right *planDoc `yaml:"right"`
}

type sortKeyDoc struct {
	Field string `yaml:"field"`
	Desc  bool   `yaml:"desc"`
}

type sortDoc struct {
	Keys  []sortKeyDoc `yaml:"keys"`
	Input *planDoc     `yaml:"input"`
}

type limitDoc struct {
	Count  uint32   `yaml:"count"`
	Offset uint32   `yaml:"offset"`
	Input  *planDoc `yaml:"input"`
}

type renameDoc struct {
	Aliases map[string]string `yaml:"aliases"`
	Input   *planDoc          `yaml:"input"`
}

// exprDoc is the YAML surface of an unresolved expression: a literal, a
// column reference or a function call.
type exprDoc struct {
	Lit  any        `yaml:"lit"`
	Col  string     `yaml:"col"`
	Fn   string     `yaml:"fn"`
	Args []*exprDoc `yaml:"args"`
}

type schemaDoc struct {
	Fields []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"fields"`
}

func parseQuery(raw []byte) (logical.UnresolvedPlan, error) {
	var doc planDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.build()
}

func parseSchema(raw []byte) (logical.Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	specs := make([]*logical.FieldSpec, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		t, err := types.Parse(field.Type)
		if err != nil {
			return nil, err
		}
		specs = append(specs, logical.NewField(field.Name, t))
	}
	return logical.NewSchema(specs...), nil
}

func (d *planDoc) build() (logical.UnresolvedPlan, error) {
	switch {
	case d == nil:
		return nil, errors.Wrap(errQueryDoc, "missing plan node")
	case d.Relation != nil:
		return logical.Relation(d.Relation.Source), nil
	case d.Filter != nil:
		input, err := d.Filter.Input.build()
		if err != nil {
			return nil, err
		}
		predicate, err := d.Filter.Predicate.build()
		if err != nil {
			return nil, err
		}
		return logical.Filter(input, predicate), nil
	case d.Project != nil:
		input, err := d.Project.Input.build()
		if err != nil {
			return nil, err
		}
		fields := make([]logical.NamedExpr, 0, len(d.Project.Fields))
		for _, field := range d.Project.Fields {
			bound, exprErr := field.Expr.build()
			if exprErr != nil {
				return nil, exprErr
			}
			fields = append(fields, logical.NamedExpr{Expr: bound, Alias: field.Alias})
		}
		return logical.Project(input, fields...), nil
	case d.Aggregate != nil:
		input, err := d.Aggregate.Input.build()
		if err != nil {
			return nil, err
		}
		groups := make([]ast.Expression, 0, len(d.Aggregate.Groups))
		for i := range d.Aggregate.Groups {
			group, exprErr := d.Aggregate.Groups[i].build()
			if exprErr != nil {
				return nil, exprErr
			}
			groups = append(groups, group)
		}
		aggregations := make([]logical.AggregationSpec, 0, len(d.Aggregate.Aggregations))
		for _, agg := range d.Aggregate.Aggregations {
			arg, exprErr := agg.Arg.build()
			if exprErr != nil {
				return nil, exprErr
			}
			aggregations = append(aggregations, logical.AggregationSpec{
				Func:  agg.Func,
				Arg:   arg,
				Alias: agg.Alias,
			})
		}
		return logical.Aggregate(input, groups, aggregations), nil
	case d.Join != nil:
		left, err := d.Join.Left.build()
		if err != nil {
			return nil, err
		}
		right, err := d.Join.Right.build()
		if err != nil {
			return nil, err
		}
		joinType, err := logical.ParseJoinType(d.Join.Type)
		if err != nil {
			return nil, err
		}
		return logical.JoinOn(left, right, joinType, d.Join.On...), nil
	case d.Sort != nil:
		input, err := d.Sort.Input.build()
		if err != nil {
			return nil, err
		}
		keys := make([]logical.SortKey, 0, len(d.Sort.Keys))
		for _, key := range d.Sort.Keys {
			keys = append(keys, logical.SortKey{Field: key.Field, Desc: key.Desc})
		}
		return logical.Sort(input, keys...), nil
	case d.Limit != nil:
		input, err := d.Limit.Input.build()
		if err != nil {
			return nil, err
		}
		return logical.Limit(input, d.Limit.Count, d.Limit.Offset), nil
	case d.Rename != nil:
		input, err := d.Rename.Input.build()
		if err != nil {
			return nil, err
		}
		return logical.Rename(input, d.Rename.Aliases), nil
	default:
		return nil, errors.Wrap(errQueryDoc, "plan node kind is not recognized")
	}
}

func (e *exprDoc) build() (ast.Expression, error) {
	switch {
	case e == nil:
		return nil, errors.Wrap(errQueryDoc, "missing expression")
	case e.Fn != "":
		args := make([]ast.Expression, 0, len(e.Args))
		for _, arg := range e.Args {
			bound, err := arg.build()
			if err != nil {
				return nil, err
			}
			args = append(args, bound)
		}
		return ast.Fn(e.Fn, args...), nil
	case e.Col != "":
		return ast.Col(e.Col), nil
	default:
		return ast.Lit(value.Bind(e.Lit)), nil
	}
}
