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

	"github.com/indexql/indexql/pkg/types"
)

// FieldSpec describes one field of a schema and its position.
type FieldSpec struct {
	Name     string
	DataType types.ExprType
	Idx      int
}

// Equal compares name, type and position.
func (fs *FieldSpec) Equal(other *FieldSpec) bool {
	return fs.Name == other.Name && fs.DataType == other.DataType && fs.Idx == other.Idx
}

// NewField creates a field spec; its position is assigned by the owning schema.
func NewField(name string, dataType types.ExprType) *FieldSpec {
	return &FieldSpec{Name: name, DataType: dataType}
}

// FieldRef is a resolved reference into a schema.
type FieldRef struct {
	Spec *FieldSpec
	Name string
}

func (f *FieldRef) String() string {
	return fmt.Sprintf("#%s<%s>", f.Name, f.Spec.DataType)
}

// Equal compares the referenced specs.
func (f *FieldRef) Equal(other *FieldRef) bool {
	return f.Name == other.Name && f.Spec.Equal(other.Spec)
}

// Schema describes the fields a plan node emits and resolves references
// against them.
type Schema interface {
	Fields() []*FieldSpec
	FieldDefined(name string) bool
	CreateRef(names ...string) ([]*FieldRef, error)
	ProjFields(refs ...*FieldRef) Schema
	Extend(other Schema) Schema
	RenameFields(aliases map[string]string) Schema
	Equal(other Schema) bool
}

var _ Schema = (*commonSchema)(nil)

type commonSchema struct {
	fieldMap map[string]*FieldSpec
	fields   []*FieldSpec
}

// NewSchema assembles a schema from ordered field specs.
func NewSchema(fields ...*FieldSpec) Schema {
	s := &commonSchema{
		fields:   make([]*FieldSpec, 0, len(fields)),
		fieldMap: make(map[string]*FieldSpec, len(fields)),
	}
	for _, f := range fields {
		s.register(f.Name, f.DataType)
	}
	return s
}

func (s *commonSchema) register(name string, dataType types.ExprType) {
	if _, exists := s.fieldMap[name]; exists {
		return
	}
	spec := &FieldSpec{Name: name, DataType: dataType, Idx: len(s.fields)}
	s.fields = append(s.fields, spec)
	s.fieldMap[name] = spec
}

func (s *commonSchema) Fields() []*FieldSpec {
	out := make([]*FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *commonSchema) FieldDefined(name string) bool {
	_, ok := s.fieldMap[name]
	return ok
}

// CreateRef resolves the given field names, in order.
func (s *commonSchema) CreateRef(names ...string) ([]*FieldRef, error) {
	refs := make([]*FieldRef, 0, len(names))
	for _, name := range names {
		spec, ok := s.fieldMap[name]
		if !ok {
			return nil, errors.Wrap(ErrFieldNotDefined, name)
		}
		refs = append(refs, &FieldRef{Name: name, Spec: spec})
	}
	return refs, nil
}

// ProjFields narrows the schema to the referenced fields, re-indexed in
// projection order.
func (s *commonSchema) ProjFields(refs ...*FieldRef) Schema {
	projected := &commonSchema{
		fields:   make([]*FieldSpec, 0, len(refs)),
		fieldMap: make(map[string]*FieldSpec, len(refs)),
	}
	for _, ref := range refs {
		projected.register(ref.Name, ref.Spec.DataType)
	}
	return projected
}

// Extend appends the other schema's fields. On a name clash the receiver's
// field wins, matching the left-precedence rule of a join output.
func (s *commonSchema) Extend(other Schema) Schema {
	merged := &commonSchema{
		fieldMap: make(map[string]*FieldSpec, len(s.fields)),
	}
	for _, f := range s.fields {
		merged.register(f.Name, f.DataType)
	}
	if other != nil {
		for _, f := range other.Fields() {
			merged.register(f.Name, f.DataType)
		}
	}
	return merged
}

// RenameFields maps field names through the alias table, keeping order and
// types.
func (s *commonSchema) RenameFields(aliases map[string]string) Schema {
	renamed := &commonSchema{
		fieldMap: make(map[string]*FieldSpec, len(s.fields)),
	}
	for _, f := range s.fields {
		name := f.Name
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		renamed.register(name, f.DataType)
	}
	return renamed
}

func (s *commonSchema) Equal(other Schema) bool {
	if other == nil {
		return false
	}
	otherFields := other.Fields()
	if len(s.fields) != len(otherFields) {
		return false
	}
	for i, f := range s.fields {
		if !f.Equal(otherFields[i]) {
			return false
		}
	}
	return true
}
