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

package logical_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/indexql/indexql/pkg/logical"
	"github.com/indexql/indexql/pkg/types"
)

func testSchema() logical.Schema {
	return logical.NewSchema(
		logical.NewField("name", types.String),
		logical.NewField("age", types.Integer),
		logical.NewField("balance", types.Double),
	)
}

func TestSchemaCreateRef(t *testing.T) {
	assert := require.New(t)
	s := testSchema()

	refs, err := s.CreateRef("age", "name")
	assert.NoError(err)
	assert.Len(refs, 2)
	assert.Equal("#age<INTEGER>", refs[0].String())
	assert.Equal(1, refs[0].Spec.Idx)
	assert.Equal(0, refs[1].Spec.Idx)

	_, err = s.CreateRef("salary")
	assert.True(errors.Is(err, logical.ErrFieldNotDefined))
}

func TestSchemaExtend(t *testing.T) {
	assert := require.New(t)
	left := testSchema()
	right := logical.NewSchema(
		logical.NewField("age", types.Long),
		logical.NewField("city", types.String),
	)

	merged := left.Extend(right)
	want := []*logical.FieldSpec{
		{Name: "name", DataType: types.String, Idx: 0},
		// The left side wins a name clash, the right's LONG age is dropped.
		{Name: "age", DataType: types.Integer, Idx: 1},
		{Name: "balance", DataType: types.Double, Idx: 2},
		{Name: "city", DataType: types.String, Idx: 3},
	}
	assert.Empty(cmp.Diff(want, merged.Fields()))
}

func TestSchemaRenameFields(t *testing.T) {
	assert := require.New(t)
	renamed := testSchema().RenameFields(map[string]string{"age": "years"})

	want := []*logical.FieldSpec{
		{Name: "name", DataType: types.String, Idx: 0},
		{Name: "years", DataType: types.Integer, Idx: 1},
		{Name: "balance", DataType: types.Double, Idx: 2},
	}
	assert.Empty(cmp.Diff(want, renamed.Fields()))
	assert.False(renamed.FieldDefined("age"))
	assert.True(renamed.FieldDefined("years"))
}

func TestSchemaProjFields(t *testing.T) {
	assert := require.New(t)
	s := testSchema()
	refs, err := s.CreateRef("balance", "name")
	assert.NoError(err)

	projected := s.ProjFields(refs...)
	want := []*logical.FieldSpec{
		{Name: "balance", DataType: types.Double, Idx: 0},
		{Name: "name", DataType: types.String, Idx: 1},
	}
	assert.Empty(cmp.Diff(want, projected.Fields()))
}

func TestSchemaEqual(t *testing.T) {
	assert := require.New(t)
	assert.True(testSchema().Equal(testSchema()))
	assert.False(testSchema().Equal(logical.NewSchema(logical.NewField("name", types.String))))
	assert.False(testSchema().Equal(nil))
}
