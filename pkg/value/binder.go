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

package value

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/indexql/indexql/pkg/types"
)

// ErrBindField indicates a raw backend value cannot be converted to its declared type.
var ErrBindField = errors.New("cannot bind field value")

// Row is a bound row. The binder contract: a field absent from the backend row
// is absent from the map, a backend null is stored as the NULL marker.
type Row map[string]ExprValue

// Resolve returns the bound value of a field, or the MISSING marker when the
// field does not exist on this row.
func (r Row) Resolve(name string) ExprValue {
	if v, ok := r[name]; ok {
		return v
	}
	return Missing()
}

// BindRow converts a raw backend row to a Row, inferring each field's type
// from its Go representation.
func BindRow(fields map[string]any) Row {
	row := make(Row, len(fields))
	for name, raw := range fields {
		row[name] = Bind(raw)
	}
	return row
}

// Bind converts one raw backend value to an ExprValue. A Go nil becomes the
// NULL marker; MISSING is never produced here, absence is a Row-level concept.
func Bind(raw any) ExprValue {
	switch v := raw.(type) {
	case nil:
		return Null()
	case ExprValue:
		return v
	case bool:
		return NewBoolean(v)
	case int8:
		return NewByte(v)
	case int16:
		return NewShort(v)
	case int32:
		return NewInteger(v)
	case int, int64, uint, uint8, uint16, uint32, uint64:
		return NewLong(cast.ToInt64(v))
	case float32:
		return NewFloat(v)
	case float64:
		return NewDouble(v)
	case string:
		return NewString(v)
	case time.Time:
		return NewTimestamp(v)
	case []any:
		items := make([]ExprValue, len(v))
		for i, item := range v {
			items[i] = Bind(item)
		}
		return NewArray(items...)
	case map[string]any:
		fields := make(map[string]ExprValue, len(v))
		for name, item := range v {
			fields[name] = Bind(item)
		}
		return NewStruct(fields)
	default:
		return NewString(cast.ToString(v))
	}
}

// BindField converts one raw backend value to the field's declared type.
// The schema-directed path is stricter than Bind: a raw value that cannot be
// converted fails instead of degrading to a string.
func BindField(raw any, t types.ExprType) (ExprValue, error) {
	if raw == nil {
		return Null(), nil
	}
	switch t {
	case types.Boolean:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrBindField, "%v as %s", raw, t)
		}
		return NewBoolean(b), nil
	case types.Byte, types.Short, types.Integer, types.Long:
		i, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrBindField, "%v as %s", raw, t)
		}
		return NewIntegral(t, i), nil
	case types.Float, types.Double:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrBindField, "%v as %s", raw, t)
		}
		return NewFloating(t, f), nil
	case types.String:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrBindField, "%v as %s", raw, t)
		}
		return NewString(s), nil
	case types.Timestamp, types.Date, types.Time:
		ts, err := cast.ToTimeE(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrBindField, "%v as %s", raw, t)
		}
		return NewInstant(t, ts), nil
	case types.Array, types.Struct, types.Unknown:
		return Bind(raw), nil
	default:
		return nil, errors.Wrapf(ErrBindField, "%v as %s", raw, t)
	}
}
