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

// Package ast holds the unresolved expression tree an external parser hands
// to the analysis pass. The grammar producing it is out of scope; the core
// only binds and types these nodes.
package ast

import "github.com/indexql/indexql/pkg/value"

// Node represents a node in the unresolved syntax tree.
type Node interface{}

// Expression represents an unresolved expression.
type Expression interface {
	Node
	expressionNode()
}

// Literal is a constant leaf. A NULL literal carries no type until binding
// gives it context.
type Literal struct {
	Value value.ExprValue
}

func (l *Literal) expressionNode() {}

// Column is an unresolved reference to a field of the queried source.
type Column struct {
	Name string
}

func (c *Column) expressionNode() {}

// Function is an unresolved call identified only by name; overload
// resolution happens at binding time.
type Function struct {
	Name string
	Args []Expression
}

func (f *Function) expressionNode() {}

// Lit wraps a constant.
func Lit(v value.ExprValue) *Literal {
	return &Literal{Value: v}
}

// Col references a field by name.
func Col(name string) *Column {
	return &Column{Name: name}
}

// Fn calls a function by name.
func Fn(name string, args ...Expression) *Function {
	return &Function{Name: name, Args: args}
}
