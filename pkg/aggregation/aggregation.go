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

// Package aggregation implements the aggregate functions the Aggregate plan
// node refers to. Aggregators skip NULL and MISSING inputs; an aggregator
// that saw no concrete value yields NULL, except count which yields 0.
package aggregation

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/indexql/indexql/pkg/types"
	"github.com/indexql/indexql/pkg/value"
)

var (
	// ErrUnknownAggregator indicates the aggregate function name is not defined.
	ErrUnknownAggregator = errors.New("aggregator is not defined")
	// ErrUnsupportedAggregation indicates the argument type is outside the
	// aggregator's domain.
	ErrUnsupportedAggregation = errors.New("unsupported aggregation argument type")
)

// Aggregate function names.
const (
	Count    = "count"
	Sum      = "sum"
	Avg      = "avg"
	Min      = "min"
	Max      = "max"
	StdDev   = "stddev"
	Variance = "variance"
)

// Aggregator folds a stream of values into one result.
type Aggregator interface {
	fmt.Stringer
	Iterate(v value.ExprValue)
	Result() value.ExprValue
}

// ResultType returns the type an aggregate function produces for the given
// argument type, validating the pair at analysis time.
func ResultType(name string, argType types.ExprType) (types.ExprType, error) {
	switch strings.ToLower(name) {
	case Count:
		return types.Long, nil
	case Sum:
		if !argType.IsNumeric() {
			return types.Unknown, errors.Wrapf(ErrUnsupportedAggregation, "%s(%s)", name, argType)
		}
		return argType, nil
	case Min, Max:
		if argType.IsNumeric() || argType == types.String || isInstant(argType) {
			return argType, nil
		}
		return types.Unknown, errors.Wrapf(ErrUnsupportedAggregation, "%s(%s)", name, argType)
	case Avg, StdDev, Variance:
		if !argType.IsNumeric() {
			return types.Unknown, errors.Wrapf(ErrUnsupportedAggregation, "%s(%s)", name, argType)
		}
		return types.Double, nil
	default:
		return types.Unknown, errors.Wrap(ErrUnknownAggregator, name)
	}
}

// New creates a fresh aggregator for one execution.
func New(name string, argType types.ExprType) (Aggregator, error) {
	resultType, err := ResultType(name, argType)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(name) {
	case Count:
		return &countAggregator{}, nil
	case Sum:
		return &sumAggregator{resultType: resultType}, nil
	case Min:
		return &extremumAggregator{name: Min, pick: func(cmp int) bool { return cmp < 0 }}, nil
	case Max:
		return &extremumAggregator{name: Max, pick: func(cmp int) bool { return cmp > 0 }}, nil
	case Avg:
		return &statsAggregator{name: Avg, fold: stats.Mean}, nil
	case StdDev:
		return &statsAggregator{name: StdDev, fold: stats.StandardDeviationSample}, nil
	case Variance:
		return &statsAggregator{name: Variance, fold: stats.SampleVariance}, nil
	default:
		return nil, errors.Wrap(ErrUnknownAggregator, name)
	}
}

type countAggregator struct {
	n int64
}

func (c *countAggregator) Iterate(v value.ExprValue) {
	if v.IsNull() || v.IsMissing() {
		return
	}
	c.n++
}

func (c *countAggregator) Result() value.ExprValue { return value.NewLong(c.n) }

func (c *countAggregator) String() string { return Count }

type sumAggregator struct {
	resultType types.ExprType
	intSum     int64
	floatSum   float64
	seen       bool
}

func (s *sumAggregator) Iterate(v value.ExprValue) {
	if v.IsNull() || v.IsMissing() {
		return
	}
	if i, ok := value.AsInt64(v); ok {
		s.intSum += i
		s.floatSum += float64(i)
		s.seen = true
		return
	}
	if f, ok := value.AsFloat64(v); ok {
		s.floatSum += f
		s.seen = true
	}
}

func (s *sumAggregator) Result() value.ExprValue {
	if !s.seen {
		return value.Null()
	}
	if s.resultType.IsIntegral() {
		return value.NewIntegral(s.resultType, s.intSum)
	}
	return value.NewFloating(s.resultType, s.floatSum)
}

func (s *sumAggregator) String() string { return Sum }

type extremumAggregator struct {
	current value.ExprValue
	pick    func(cmp int) bool
	name    string
}

func (e *extremumAggregator) Iterate(v value.ExprValue) {
	if v.IsNull() || v.IsMissing() {
		return
	}
	if e.current == nil {
		e.current = v
		return
	}
	if cmp, ok := value.Compare(v, e.current); ok && e.pick(cmp) {
		e.current = v
	}
}

func (e *extremumAggregator) Result() value.ExprValue {
	if e.current == nil {
		return value.Null()
	}
	return e.current
}

func (e *extremumAggregator) String() string { return e.name }

type statsAggregator struct {
	fold func(stats.Float64Data) (float64, error)
	name string
	data []float64
}

func (s *statsAggregator) Iterate(v value.ExprValue) {
	if v.IsNull() || v.IsMissing() {
		return
	}
	if f, ok := value.AsFloat64(v); ok {
		s.data = append(s.data, f)
	}
}

func (s *statsAggregator) Result() value.ExprValue {
	res, err := s.fold(s.data)
	if err != nil {
		// stats fails only on insufficient input.
		return value.Null()
	}
	return value.NewDouble(res)
}

func (s *statsAggregator) String() string { return s.name }

func isInstant(t types.ExprType) bool {
	switch t {
	case types.Timestamp, types.Date, types.Time:
		return true
	default:
		return false
	}
}
