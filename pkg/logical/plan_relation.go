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

import "fmt"

var (
	_ UnresolvedPlan = (*unresolvedRelation)(nil)
	_ Plan           = (*RelationPlan)(nil)
)

type unresolvedRelation struct {
	source string
}

// Relation scans a named source. It is the only leaf variant; every plan
// tree bottoms out here.
func Relation(source string) UnresolvedPlan {
	return &unresolvedRelation{source: source}
}

func (u *unresolvedRelation) Analyze(s Schema) (Plan, error) {
	return &RelationPlan{source: u.source, schema: s}, nil
}

// RelationPlan is the resolved scan of one source.
type RelationPlan struct {
	schema Schema
	source string
}

// Source returns the scanned source identifier.
func (r *RelationPlan) Source() string { return r.source }

func (r *RelationPlan) Type() PlanType { return PlanRelation }

func (r *RelationPlan) Children() []Plan { return nil }

func (r *RelationPlan) Schema() Schema { return r.schema }

func (r *RelationPlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitRelation(r, ctx)
}

func (r *RelationPlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanRelation {
		return false
	}
	other := plan.(*RelationPlan)
	return r.source == other.source && r.schema.Equal(other.schema)
}

func (r *RelationPlan) String() string {
	return fmt.Sprintf("Relation: source=%s", r.source)
}
