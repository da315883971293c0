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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/indexql/indexql/pkg/logical"
)

const accountsSchema = `
fields:
  - name: name
    type: STRING
  - name: age
    type: INTEGER
  - name: balance
    type: DOUBLE
`

func TestParseSchema(t *testing.T) {
	assert := require.New(t)
	schema, err := parseSchema([]byte(accountsSchema))
	assert.NoError(err)
	assert.Len(schema.Fields(), 3)
	assert.True(schema.FieldDefined("balance"))

	_, err = parseSchema([]byte("fields:\n  - name: x\n    type: decimal128\n"))
	assert.Error(err)
}

func TestParseQueryEndToEnd(t *testing.T) {
	assert := require.New(t)
	query := `
limit:
  count: 10
  input:
    filter:
      predicate:
        fn: ">"
        args:
          - col: age
          - lit: 21
      input:
        relation:
          source: accounts
`
	schema, err := parseSchema([]byte(accountsSchema))
	assert.NoError(err)
	unresolved, err := parseQuery([]byte(query))
	assert.NoError(err)
	plan, err := unresolved.Analyze(schema)
	assert.NoError(err)
	assert.NoError(logical.Validate(plan))

	want := "Limit: count=10, offset=0\n" +
		"+----Filter: >(#age<INTEGER>, 21)\n" +
		"     +----Relation: source=accounts\n"
	assert.Equal(want, logical.Format(plan))
}

func TestParseQueryJoin(t *testing.T) {
	assert := require.New(t)
	query := `
join:
  type: inner
  on: [name]
  left:
    relation:
      source: accounts
  right:
    relation:
      source: history
`
	schema, err := parseSchema([]byte(accountsSchema))
	assert.NoError(err)
	unresolved, err := parseQuery([]byte(query))
	assert.NoError(err)
	plan, err := unresolved.Analyze(schema)
	assert.NoError(err)
	assert.Equal(logical.PlanJoin, plan.Type())
}

func TestParseQueryRejectsBadDocuments(t *testing.T) {
	assert := require.New(t)

	_, err := parseQuery([]byte("unknown_node: {}\n"))
	assert.True(errors.Is(err, errQueryDoc))

	query := `
filter:
  predicate:
    fn: ">"
    args:
      - col: age
      - lit: 21
`
	_, parseErr := parseQuery([]byte(query))
	assert.True(errors.Is(parseErr, errQueryDoc))
}

func TestParseQueryBadJoinType(t *testing.T) {
	assert := require.New(t)
	query := `
join:
  type: sideways
  on: [name]
  left:
    relation: {source: a}
  right:
    relation: {source: b}
`
	_, err := parseQuery([]byte(query))
	assert.True(errors.Is(err, logical.ErrMalformedPlan))
}
