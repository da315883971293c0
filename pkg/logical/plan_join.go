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

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	_ UnresolvedPlan = (*unresolvedJoin)(nil)
	_ Plan           = (*JoinPlan)(nil)
)

type unresolvedJoin struct {
	left           UnresolvedPlan
	right          UnresolvedPlan
	joinType       JoinType
	joinFieldNames []string
}

// JoinOn combines two inputs on the named fields. The join type tag is
// always explicit; an unrecognized tag or an empty field list fails
// construction with ErrMalformedPlan, not later.
func JoinOn(left, right UnresolvedPlan, joinType JoinType, joinFieldNames ...string) UnresolvedPlan {
	return &unresolvedJoin{
		left:           left,
		right:          right,
		joinType:       joinType,
		joinFieldNames: joinFieldNames,
	}
}

func (u *unresolvedJoin) Analyze(s Schema) (Plan, error) {
	if !u.joinType.recognized() {
		return nil, errors.Wrapf(ErrMalformedPlan, "unrecognized join type tag %d", u.joinType)
	}
	if len(u.joinFieldNames) == 0 {
		return nil, errors.Wrap(ErrMalformedPlan, "join field names must not be empty")
	}
	left, err := u.left.Analyze(s)
	if err != nil {
		return nil, err
	}
	right, err := u.right.Analyze(s)
	if err != nil {
		return nil, err
	}
	for _, name := range u.joinFieldNames {
		if !left.Schema().FieldDefined(name) || !right.Schema().FieldDefined(name) {
			return nil, errors.Wrapf(ErrFieldNotDefined, "join field %s must exist on both sides", name)
		}
	}
	return &JoinPlan{
		left:           left,
		right:          right,
		joinType:       u.joinType,
		joinFieldNames: slices.Clone(u.joinFieldNames),
		schema:         left.Schema().Extend(right.Schema()),
	}, nil
}

// JoinPlan is the resolved join node, the only variant with two children.
type JoinPlan struct {
	left           Plan
	right          Plan
	schema         Schema
	joinFieldNames []string
	joinType       JoinType
}

// Left returns the left input.
func (j *JoinPlan) Left() Plan { return j.left }

// Right returns the right input.
func (j *JoinPlan) Right() Plan { return j.right }

// JoinType returns the explicit join type tag.
func (j *JoinPlan) JoinType() JoinType { return j.joinType }

// JoinFieldNames returns the equi-join field names.
func (j *JoinPlan) JoinFieldNames() []string {
	return slices.Clone(j.joinFieldNames)
}

func (j *JoinPlan) Type() PlanType { return PlanJoin }

// Children always reports exactly the left and right inputs, in that order.
func (j *JoinPlan) Children() []Plan { return []Plan{j.left, j.right} }

func (j *JoinPlan) Schema() Schema { return j.schema }

func (j *JoinPlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitJoin(j, ctx)
}

func (j *JoinPlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanJoin {
		return false
	}
	other := plan.(*JoinPlan)
	return j.joinType == other.joinType &&
		slices.Equal(j.joinFieldNames, other.joinFieldNames) &&
		j.left.Equal(other.left) &&
		j.right.Equal(other.right)
}

func (j *JoinPlan) String() string {
	return fmt.Sprintf("Join: type=%s, on=[%s]", j.joinType, strings.Join(j.joinFieldNames, ", "))
}
