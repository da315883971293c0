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

// Package function implements the built-in function catalog: the registry of
// operator families, the overload resolver and the scalar implementations
// with their NULL/MISSING semantics.
package function

import (
	"fmt"
	"strings"

	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

// Name is a case-normalized function name.
type Name string

// NameOf canonicalizes a raw function name.
func NameOf(raw string) Name {
	return Name(strings.ToLower(strings.TrimSpace(raw)))
}

func (n Name) String() string { return string(n) }

// Built-in function names.
var (
	Add          = NameOf("+")
	Subtract     = NameOf("-")
	Multiply     = NameOf("*")
	Divide       = NameOf("/")
	Modulus      = NameOf("%")
	Equal        = NameOf("=")
	NotEqual     = NameOf("!=")
	Less         = NameOf("<")
	LessEqual    = NameOf("<=")
	Greater      = NameOf(">")
	GreaterEqual = NameOf(">=")
	And          = NameOf("and")
	Or           = NameOf("or")
	Xor          = NameOf("xor")
	Not          = NameOf("not")
	IsNull       = NameOf("is_null")
	Isnull       = NameOf("isnull")
	IsNotNull    = NameOf("is_not_null")
	IfNull       = NameOf("ifnull")
	NullIf       = NameOf("nullif")
)

// Impl is one pure scalar implementation. It must be total over its declared
// parameter types: markers go in and markers or concrete values come out,
// never an error.
type Impl func(args ...value.ExprValue) value.ExprValue

// Signature is one concrete registration under a function name: ordered
// parameter types, a return type and the implementation.
type Signature struct {
	impl   Impl
	name   Name
	params []types.ExprType
	ret    types.ExprType
}

// NewSignature assembles one signature.
func NewSignature(name Name, params []types.ExprType, ret types.ExprType, impl Impl) *Signature {
	return &Signature{
		name:   name,
		params: params,
		ret:    ret,
		impl:   impl,
	}
}

// Name returns the owning function name.
func (s *Signature) Name() Name { return s.name }

// Params returns the ordered parameter types.
func (s *Signature) Params() []types.ExprType {
	out := make([]types.ExprType, len(s.params))
	copy(out, s.params)
	return out
}

// Arity returns the number of parameters.
func (s *Signature) Arity() int { return len(s.params) }

// ReturnType returns the declared return type.
func (s *Signature) ReturnType() types.ExprType { return s.ret }

// Invoke applies the implementation to already-evaluated arguments.
func (s *Signature) Invoke(args ...value.ExprValue) value.ExprValue {
	if len(args) != len(s.params) {
		// Resolution guarantees arity. Reaching this is a programming error,
		// not a query error.
		panic(fmt.Sprintf("%s: arity mismatch, want %d got %d", s.name, len(s.params), len(args)))
	}
	return s.impl(args...)
}

func (s *Signature) String() string {
	return fmt.Sprintf("%s(%s) -> %s", s.name, FormatTypes(s.params), s.ret)
}

// Bundle is the unit of registration: every signature a function name owns.
type Bundle struct {
	name       Name
	signatures []*Signature
}

// Define bundles signatures under one name.
func Define(name Name, signatures ...*Signature) Bundle {
	return Bundle{name: name, signatures: signatures}
}

// FormatTypes renders a type list for diagnostics.
func FormatTypes(ts []types.ExprType) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// NullMissingHandling wraps an implementation with the default propagation
// policy: any MISSING argument yields MISSING, otherwise any NULL argument
// yields NULL, otherwise the wrapped implementation runs on concrete values.
// Functions that define their own marker semantics register unwrapped impls.
func NullMissingHandling(fn Impl) Impl {
	return func(args ...value.ExprValue) value.ExprValue {
		for _, arg := range args {
			if arg.IsMissing() {
				return value.Missing()
			}
		}
		for _, arg := range args {
			if arg.IsNull() {
				return value.Null()
			}
		}
		return fn(args...)
	}
}
