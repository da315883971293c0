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

// Package expr defines resolved, typed expressions and their evaluation.
// An expression reaching Eval has already been bound and resolved; given a
// bound row it always produces exactly one value, possibly a marker, and
// never fails.
package expr

import (
	"fmt"
	"strings"

	"github.com/indexql/indexql/pkg/function"
	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

// Expression is one node of a resolved expression tree.
type Expression interface {
	fmt.Stringer
	DataType() types.ExprType
	Equal(other Expression) bool
	// Eval is pure and total for well-typed trees.
	Eval(row value.Row) value.ExprValue
}

var _ Expression = (*literal)(nil)

type literal struct {
	v value.ExprValue
}

// NewLiteral wraps a constant value. A bare NULL literal carries the
// Unknown type until resolution gives it context.
func NewLiteral(v value.ExprValue) Expression {
	return &literal{v: v}
}

func (l *literal) DataType() types.ExprType { return l.v.Type() }

func (l *literal) Eval(_ value.Row) value.ExprValue { return l.v }

func (l *literal) Equal(other Expression) bool {
	if o, ok := other.(*literal); ok {
		if l.v.IsNull() || l.v.IsMissing() || o.v.IsNull() || o.v.IsMissing() {
			return l.v.IsNull() == o.v.IsNull() && l.v.IsMissing() == o.v.IsMissing()
		}
		return l.v.Equal(o.v)
	}
	return false
}

func (l *literal) String() string { return l.v.String() }

var _ Expression = (*fieldRef)(nil)

// fieldRef is a resolved reference to a field of the bound row.
type fieldRef struct {
	name     string
	dataType types.ExprType
}

// NewRef creates a field reference carrying its resolved type.
func NewRef(name string, dataType types.ExprType) Expression {
	return &fieldRef{name: name, dataType: dataType}
}

func (f *fieldRef) DataType() types.ExprType { return f.dataType }

// Eval maps an absent field to MISSING through the row's binder contract.
func (f *fieldRef) Eval(row value.Row) value.ExprValue {
	return row.Resolve(f.name)
}

func (f *fieldRef) Equal(other Expression) bool {
	if o, ok := other.(*fieldRef); ok {
		return f.name == o.name && f.dataType == o.dataType
	}
	return false
}

func (f *fieldRef) String() string {
	return fmt.Sprintf("#%s<%s>", f.name, f.dataType)
}

var _ Expression = (*call)(nil)

// call applies one resolved signature to its argument expressions.
type call struct {
	sig  *function.Signature
	args []Expression
}

// NewCall wraps a resolved signature. The argument count must match the
// signature's arity; resolution guarantees it, so a mismatch is a
// programming error.
func NewCall(sig *function.Signature, args ...Expression) Expression {
	if len(args) != sig.Arity() {
		panic(fmt.Sprintf("%s: expression arity mismatch, want %d got %d",
			sig.Name(), sig.Arity(), len(args)))
	}
	return &call{sig: sig, args: args}
}

func (c *call) DataType() types.ExprType { return c.sig.ReturnType() }

func (c *call) Eval(row value.Row) value.ExprValue {
	evaluated := make([]value.ExprValue, len(c.args))
	for i, arg := range c.args {
		evaluated[i] = arg.Eval(row)
	}
	return c.sig.Invoke(evaluated...)
}

func (c *call) Equal(other Expression) bool {
	o, ok := other.(*call)
	if !ok || c.sig != o.sig || len(c.args) != len(o.args) {
		return false
	}
	for i, arg := range c.args {
		if !arg.Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (c *call) String() string {
	parts := make([]string, len(c.args))
	for i, arg := range c.args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.sig.Name(), strings.Join(parts, ", "))
}

// Named pairs an output name with the expression producing it.
type Named struct {
	name string
	expr Expression
}

// NewNamed creates a named output expression.
func NewNamed(name string, expression Expression) *Named {
	return &Named{name: name, expr: expression}
}

// Name returns the output name.
func (n *Named) Name() string { return n.name }

// Expr returns the wrapped expression.
func (n *Named) Expr() Expression { return n.expr }

// Equal compares name and expression.
func (n *Named) Equal(other *Named) bool {
	return n.name == other.name && n.expr.Equal(other.expr)
}

func (n *Named) String() string {
	return fmt.Sprintf("%s=%s", n.name, n.expr)
}
