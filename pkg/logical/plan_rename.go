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
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	_ UnresolvedPlan = (*unresolvedRename)(nil)
	_ Plan           = (*RenamePlan)(nil)
)

type unresolvedRename struct {
	input   UnresolvedPlan
	aliases map[string]string
}

// Rename relabels input fields. Keys are existing field names, values their
// new names; field order and types are unchanged. A key that names no input
// field fails with ErrFieldNotDefined.
func Rename(input UnresolvedPlan, aliases map[string]string) UnresolvedPlan {
	return &unresolvedRename{input: input, aliases: aliases}
}

func (u *unresolvedRename) Analyze(s Schema) (Plan, error) {
	input, err := u.input.Analyze(s)
	if err != nil {
		return nil, err
	}
	inputSchema := input.Schema()
	for old := range u.aliases {
		if !inputSchema.FieldDefined(old) {
			return nil, errors.Wrapf(ErrFieldNotDefined, "cannot rename absent field %s", old)
		}
	}
	aliases := make(map[string]string, len(u.aliases))
	for old, renamed := range u.aliases {
		aliases[old] = renamed
	}
	return &RenamePlan{
		input:   input,
		aliases: aliases,
		schema:  inputSchema.RenameFields(aliases),
	}, nil
}

// RenamePlan is the resolved relabeling node.
type RenamePlan struct {
	input   Plan
	schema  Schema
	aliases map[string]string
}

// Aliases returns the old-name to new-name mapping.
func (r *RenamePlan) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for old, renamed := range r.aliases {
		out[old] = renamed
	}
	return out
}

func (r *RenamePlan) Type() PlanType { return PlanRename }

func (r *RenamePlan) Children() []Plan { return []Plan{r.input} }

func (r *RenamePlan) Schema() Schema { return r.schema }

func (r *RenamePlan) Accept(visitor Visitor, ctx any) any {
	return visitor.VisitRename(r, ctx)
}

func (r *RenamePlan) Equal(plan Plan) bool {
	if plan == nil || plan.Type() != PlanRename {
		return false
	}
	other := plan.(*RenamePlan)
	if len(r.aliases) != len(other.aliases) {
		return false
	}
	for old, renamed := range r.aliases {
		if other.aliases[old] != renamed {
			return false
		}
	}
	return r.input.Equal(other.input)
}

func (r *RenamePlan) String() string {
	pairs := make([]string, 0, len(r.aliases))
	for old, renamed := range r.aliases {
		pairs = append(pairs, old+"->"+renamed)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("Rename: %s", strings.Join(pairs, ", "))
}
