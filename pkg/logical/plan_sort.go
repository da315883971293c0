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
)

// SortKey names one sort field and its direction.
type SortKey struct {
	Field string
	Desc  bool
}

func (k SortKey) String() string {
	if k.Desc {
		return k.Field + " DESC"
	}
	return k.Field + " ASC"
}

// ResolvedSortKey pairs the resolved field reference with the direction.
type ResolvedSortKey struct {
	Ref  *FieldRef
	Desc bool
}

func (k ResolvedSortKey) String() string {
	if k.Desc {
		return k.Ref.String() + " DESC"
	}
	return k.Ref.String() + " ASC"
}

var (
	_ UnresolvedPlan = (*unresolvedSort)(nil)
	_ Plan           = (*SortPlan)(nil)
)

type unresolvedSort struct {
	input UnresolvedPlan
	keys  []SortKey
}

// Sort orders the input by the given keys, most significant first.
func Sort(input UnresolvedPlan, keys ...SortKey) UnresolvedPlan {
	return &unresolvedSort{input: input, keys: keys}
}

func (u *unresolvedSort) Analyze(s Schema) (Plan, error) {
	input, err := u.input.Analyze(s)
	if err != nil {
		return nil, err
	}
	keys := make([]ResolvedSortKey, 0, len(u.keys))
	for _, key := range u.keys {
		refs, refErr := input.Schema().CreateRef(key.Field)
		if refErr != nil {
			return nil, refErr
		}
		keys = append(keys, ResolvedSortKey{Ref: refs[0], Desc: key.Desc})
	}
	return &SortPlan{input: input, keys: keys}, nil
}

// SortPlan is the resolved ordering node.
type SortPlan struct {
	input Plan
	keys  []ResolvedSortKey
}

// Keys returns the resolved sort keys, most significant first.
func (p *SortPlan) Keys() []ResolvedSortKey {
	out := make([]ResolvedSortKey, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *SortPlan) Type() PlanType { return PlanSort }

func (p *SortPlan) Children() []Plan { return []Plan{p.input} }

func (p *SortPlan) Schema() Schema { return p.input.Schema() }

func (p *SortPlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitSort(p, ctx)
}

func (p *SortPlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanSort {
		return false
	}
	other := plan.(*SortPlan)
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, key := range p.keys {
		if key.Desc != other.keys[i].Desc || !key.Ref.Equal(other.keys[i].Ref) {
			return false
		}
	}
	return p.input.Equal(other.input)
}

func (p *SortPlan) String() string {
	parts := make([]string, len(p.keys))
	for i, key := range p.keys {
		parts[i] = key.String()
	}
	return fmt.Sprintf("Sort: %s", strings.Join(parts, ", "))
}
