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
)

var (
	_ UnresolvedPlan = (*unresolvedLimit)(nil)
	_ Plan           = (*LimitPlan)(nil)
)

type unresolvedLimit struct {
	input  UnresolvedPlan
	count  uint32
	offset uint32
}

// Limit keeps at most count rows after skipping offset rows.
func Limit(input UnresolvedPlan, count, offset uint32) UnresolvedPlan {
	return &unresolvedLimit{input: input, count: count, offset: offset}
}

func (u *unresolvedLimit) Analyze(s Schema) (Plan, error) {
	input, err := u.input.Analyze(s)
	if err != nil {
		return nil, err
	}
	return &LimitPlan{input: input, count: u.count, offset: u.offset}, nil
}

// LimitPlan is the resolved row-window node.
type LimitPlan struct {
	input  Plan
	count  uint32
	offset uint32
}

// Count returns the maximum number of rows to keep.
func (l *LimitPlan) Count() uint32 { return l.count }

// Offset returns the number of leading rows to skip.
func (l *LimitPlan) Offset() uint32 { return l.offset }

func (l *LimitPlan) Type() PlanType { return PlanLimit }

func (l *LimitPlan) Children() []Plan { return []Plan{l.input} }

func (l *LimitPlan) Schema() Schema { return l.input.Schema() }

func (l *LimitPlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitLimit(l, ctx)
}

func (l *LimitPlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanLimit {
		return false
	}
	other := plan.(*LimitPlan)
	return l.count == other.count && l.offset == other.offset && l.input.Equal(other.input)
}

func (l *LimitPlan) String() string {
	return fmt.Sprintf("Limit: count=%d, offset=%d", l.count, l.offset)
}
