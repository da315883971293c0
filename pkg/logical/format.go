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
	"strings"
)

// Format renders the plan tree as an indented multi-line string.
func Format(p Plan) string {
	return p.Accept(&formatVisitor{}, 0).(string)
}

var _ Visitor = (*formatVisitor)(nil)

type formatVisitor struct{}

func (f *formatVisitor) render(p Plan, ctx any) any {
	indent := ctx.(int)
	res := ""
	if indent > 1 {
		res += strings.Repeat(" ", 5*(indent-1))
	}
	if indent > 0 {
		res += "+"
		res += strings.Repeat("-", 4)
	}
	res += p.String() + "\n"
	for _, child := range p.Children() {
		res += child.Accept(f, indent+1).(string)
	}
	return res
}

func (f *formatVisitor) VisitRelation(plan *RelationPlan, ctx any) any {
	return f.render(plan, ctx)
}

func (f *formatVisitor) VisitFilter(plan *FilterPlan, ctx any) any {
	return f.render(plan, ctx)
}

func (f *formatVisitor) VisitProject(plan *ProjectPlan, ctx any) any {
	return f.render(plan, ctx)
}

func (f *formatVisitor) VisitAggregate(plan *AggregatePlan, ctx any) any {
	return f.render(plan, ctx)
}

func (f *formatVisitor) VisitJoin(plan *JoinPlan, ctx any) any {
	return f.render(plan, ctx)
}

func (f *formatVisitor) VisitSort(plan *SortPlan, ctx any) any {
	return f.render(plan, ctx)
}

func (f *formatVisitor) VisitLimit(plan *LimitPlan, ctx any) any {
	return f.render(plan, ctx)
}

func (f *formatVisitor) VisitRename(plan *RenamePlan, ctx any) any {
	return f.render(plan, ctx)
}
