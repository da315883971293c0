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

// Package logical models the query as an immutable tree of relational
// operators. Construction is bottom-up: leaves first, then each combinator
// wraps already-built children, which statically forbids cycles. Downstream
// passes never modify plan nodes; they are implemented as visitors.
package logical

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// PlanType identifies a plan node variant.
type PlanType uint8

// The closed set of plan node variants.
const (
	PlanRelation PlanType = iota
	PlanFilter
	PlanProject
	PlanAggregate
	PlanJoin
	PlanSort
	PlanLimit
	PlanRename
)

var (
	// ErrMalformedPlan indicates a structural invariant was violated at
	// construction time: wrong child count, empty join-field list or an
	// unrecognized join type.
	ErrMalformedPlan = errors.New("malformed plan")
	// ErrFieldNotDefined indicates a reference to a field the schema does
	// not define.
	ErrFieldNotDefined = errors.New("field is not defined")
)

// UnresolvedPlan is a plan assembled from parser output but not yet bound
// to a schema.
type UnresolvedPlan interface {
	// Analyze binds names and functions against the schema and returns the
	// resolved, validated plan.
	Analyze(s Schema) (Plan, error)
}

// Plan is one node of a resolved logical plan tree. Plans are immutable
// after construction and safe to share across concurrent readers.
type Plan interface {
	fmt.Stringer
	Type() PlanType
	Children() []Plan
	Schema() Schema
	Equal(other Plan) bool
	// Accept dispatches to the visitor operation matching this node's
	// variant, passing the caller-supplied context through.
	Accept(visitor Visitor, ctx any) any
}

// Visitor exposes one operation per plan node variant. Every traversal,
// validation and rewriting pass implements this interface; adding a variant
// breaks all implementations at compile time, which is the point.
type Visitor interface {
	VisitRelation(plan *RelationPlan, ctx any) any
	VisitFilter(plan *FilterPlan, ctx any) any
	VisitProject(plan *ProjectPlan, ctx any) any
	VisitAggregate(plan *AggregatePlan, ctx any) any
	VisitJoin(plan *JoinPlan, ctx any) any
	VisitSort(plan *SortPlan, ctx any) any
	VisitLimit(plan *LimitPlan, ctx any) any
	VisitRename(plan *RenamePlan, ctx any) any
}

// JoinType tags how two inputs combine. It is always explicit, never
// inferred.
type JoinType uint8

// The recognized join types.
const (
	JoinTypeUnspecified JoinType = iota
	JoinTypeInner
	JoinTypeLeft
	JoinTypeRight
	JoinTypeFull
	JoinTypeCross
)

var joinTypeNames = map[JoinType]string{
	JoinTypeInner: "INNER",
	JoinTypeLeft:  "LEFT",
	JoinTypeRight: "RIGHT",
	JoinTypeFull:  "FULL",
	JoinTypeCross: "CROSS",
}

// String returns the canonical join type tag.
func (jt JoinType) String() string {
	if name, ok := joinTypeNames[jt]; ok {
		return name
	}
	return "UNSPECIFIED"
}

func (jt JoinType) recognized() bool {
	_, ok := joinTypeNames[jt]
	return ok
}

// ParseJoinType maps a case-insensitive tag to its JoinType.
func ParseJoinType(tag string) (JoinType, error) {
	upper := strings.ToUpper(strings.TrimSpace(tag))
	for jt, name := range joinTypeNames {
		if name == upper {
			return jt, nil
		}
	}
	return JoinTypeUnspecified, errors.Wrapf(ErrMalformedPlan, "unrecognized join type %q", tag)
}
