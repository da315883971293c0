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

package function

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
)

// ErrUnknownFunction indicates the function name owns no signatures.
var ErrUnknownFunction = errors.New("function is not registered")

// Registry is the catalog mapping a function name to its signatures.
// Registration is append-only and happens during startup; afterwards the
// registry is read-only and safe for unsynchronized concurrent reads.
type Registry struct {
	entries *treemap.Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: treemap.NewWithStringComparator(),
	}
}

// Register appends every signature of the given bundles under their names.
func (r *Registry) Register(bundles ...Bundle) {
	for _, bundle := range bundles {
		key := bundle.name.String()
		existing := r.signatures(key)
		r.entries.Put(key, append(existing, bundle.signatures...))
	}
}

// Lookup returns every candidate signature registered under the name.
// The match on the canonical name is case-insensitive.
func (r *Registry) Lookup(name Name) ([]*Signature, error) {
	if sigs := r.signatures(name.String()); len(sigs) > 0 {
		return sigs, nil
	}
	return nil, errors.Wrap(ErrUnknownFunction, name.String())
}

// Names returns every registered function name in lexical order.
func (r *Registry) Names() []string {
	keys := r.entries.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.(string))
	}
	return names
}

// Each walks the catalog in lexical name order.
func (r *Registry) Each(fn func(name string, signatures []*Signature)) {
	it := r.entries.Iterator()
	for it.Next() {
		fn(it.Key().(string), it.Value().([]*Signature))
	}
}

func (r *Registry) signatures(key string) []*Signature {
	if v, found := r.entries.Get(key); found {
		return v.([]*Signature)
	}
	return nil
}
