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

package types_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/indexql/indexql/pkg/types"
)

func TestParse(t *testing.T) {
	assert := require.New(t)
	for _, core := range types.CoreTypes() {
		parsed, err := types.Parse(core.String())
		assert.NoError(err)
		assert.Equal(core, parsed)
	}
	parsed, err := types.Parse("integer")
	assert.NoError(err)
	assert.Equal(types.Integer, parsed)
	_, err = types.Parse("decimal128")
	assert.True(errors.Is(err, types.ErrUnsupportedType))
}

func TestWideningDistance(t *testing.T) {
	tests := []struct {
		name   string
		from   types.ExprType
		to     types.ExprType
		dist   int
		widens bool
	}{
		{name: "same type", from: types.Integer, to: types.Integer, dist: 0, widens: true},
		{name: "one step", from: types.Integer, to: types.Long, dist: 1, widens: true},
		{name: "full chain", from: types.Byte, to: types.Double, dist: 5, widens: true},
		{name: "long to double", from: types.Long, to: types.Double, dist: 2, widens: true},
		{name: "narrowing", from: types.Double, to: types.Integer, widens: false},
		{name: "non numeric source", from: types.String, to: types.Double, widens: false},
		{name: "non numeric target", from: types.Integer, to: types.String, widens: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := require.New(t)
			dist, ok := types.WideningDistance(tt.from, tt.to)
			assert.Equal(tt.widens, ok)
			if ok {
				assert.Equal(tt.dist, dist)
			}
		})
	}
}

func TestTypePredicates(t *testing.T) {
	assert := require.New(t)
	assert.True(types.Long.IsNumeric())
	assert.True(types.Double.IsNumeric())
	assert.False(types.String.IsNumeric())
	assert.False(types.Unknown.IsNumeric())
	assert.True(types.Byte.IsIntegral())
	assert.False(types.Float.IsIntegral())
	assert.NotContains(types.CoreTypes(), types.Unknown)
	assert.Len(types.NumberTypes(), 6)
}
