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
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/indexql/indexql/pkg/types"
)

// Validate re-checks the structural invariants of an analyzed plan tree and
// reports every violation it finds, not only the first one. Analysis already
// enforces these at construction; Validate guards plans that were assembled
// or rewritten outside the builders.
func Validate(p Plan) error {
	errs, _ := p.Accept(&validateVisitor{}, nil).(error)
	return errs
}

var _ Visitor = (*validateVisitor)(nil)

type validateVisitor struct{}

func (v *validateVisitor) children(p Plan, want int) error {
	var errs error
	children := p.Children()
	if len(children) != want {
		errs = multierr.Append(errs, errors.Wrapf(ErrMalformedPlan,
			"%d node must have %d children, got %d", p.Type(), want, len(children)))
	}
	for _, child := range children {
		if child == nil {
			errs = multierr.Append(errs, errors.Wrapf(ErrMalformedPlan, "%d node has a nil child", p.Type()))
			continue
		}
		childErr, _ := child.Accept(v, nil).(error)
		errs = multierr.Append(errs, childErr)
	}
	return errs
}

func (v *validateVisitor) VisitRelation(plan *RelationPlan, _ any) any {
	var errs error
	if plan.Source() == "" {
		errs = multierr.Append(errs, errors.Wrap(ErrMalformedPlan, "relation source must not be empty"))
	}
	return multierr.Append(errs, v.children(plan, 0))
}

func (v *validateVisitor) VisitFilter(plan *FilterPlan, _ any) any {
	var errs error
	if plan.Predicate() == nil {
		errs = multierr.Append(errs, errors.Wrap(ErrMalformedPlan, "filter predicate must not be nil"))
	} else if t := plan.Predicate().DataType(); t != types.Boolean && t != types.Unknown {
		errs = multierr.Append(errs, errors.Wrapf(ErrMalformedPlan, "filter predicate must be BOOLEAN, got %s", t))
	}
	return multierr.Append(errs, v.children(plan, 1))
}

func (v *validateVisitor) VisitProject(plan *ProjectPlan, _ any) any {
	var errs error
	if len(plan.Fields()) == 0 {
		errs = multierr.Append(errs, errors.Wrap(ErrMalformedPlan, "projection must keep at least one field"))
	}
	return multierr.Append(errs, v.children(plan, 1))
}

func (v *validateVisitor) VisitAggregate(plan *AggregatePlan, _ any) any {
	var errs error
	if len(plan.Groups()) == 0 && len(plan.Aggregations()) == 0 {
		errs = multierr.Append(errs, errors.Wrap(ErrMalformedPlan,
			"aggregate must carry group keys or aggregations"))
	}
	return multierr.Append(errs, v.children(plan, 1))
}

func (v *validateVisitor) VisitJoin(plan *JoinPlan, _ any) any {
	var errs error
	if !plan.JoinType().recognized() {
		errs = multierr.Append(errs, errors.Wrapf(ErrMalformedPlan,
			"unrecognized join type tag %d", plan.JoinType()))
	}
	if len(plan.JoinFieldNames()) == 0 {
		errs = multierr.Append(errs, errors.Wrap(ErrMalformedPlan, "join field names must not be empty"))
	}
	for _, name := range plan.JoinFieldNames() {
		if !plan.Left().Schema().FieldDefined(name) || !plan.Right().Schema().FieldDefined(name) {
			errs = multierr.Append(errs, errors.Wrapf(ErrFieldNotDefined,
				"join field %s must exist on both sides", name))
		}
	}
	return multierr.Append(errs, v.children(plan, 2))
}

func (v *validateVisitor) VisitSort(plan *SortPlan, _ any) any {
	var errs error
	if len(plan.Keys()) == 0 {
		errs = multierr.Append(errs, errors.Wrap(ErrMalformedPlan, "sort must carry at least one key"))
	}
	return multierr.Append(errs, v.children(plan, 1))
}

func (v *validateVisitor) VisitLimit(plan *LimitPlan, _ any) any {
	return v.children(plan, 1)
}

func (v *validateVisitor) VisitRename(plan *RenamePlan, _ any) any {
	var errs error
	if len(plan.Aliases()) == 0 {
		errs = multierr.Append(errs, errors.Wrap(ErrMalformedPlan, "rename must carry at least one alias"))
	}
	return multierr.Append(errs, v.children(plan, 1))
}
