// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"go/types"
	"strings"
)

// PackagePath is the import path of the flag set library.
const PackagePath = "fillmore-labs.com/bitflags"

// Record is the customization record of an enum type.
//
// It is attached as an object fact to the type name and therefore visible in importing packages.
type Record struct {
	// Disabled opts the type out of bare enum combination.
	Disabled bool

	// Storage is the name of the registered storage type, empty for the natural width.
	Storage string
}

// AFact implements [analysis.Fact].
func (Record) AFact() {}

func (r Record) String() string {
	var b strings.Builder

	b.WriteString("bitflags(")

	if r.Disabled {
		b.WriteString("disabled")
	} else {
		b.WriteString("enabled")
	}

	if r.Storage != "" {
		b.WriteString(", storage ")
		b.WriteString(r.Storage)
	}

	b.WriteByte(')')

	return b.String()
}

// Registered reports whether the record differs from the defaults.
func (r Record) Registered() bool {
	return r.Disabled || r.Storage != ""
}

// StorageType returns the registered storage type, nil for the natural width.
func (r Record) StorageType() types.Type {
	if r.Storage == "" {
		return nil
	}

	t, _ := StorageType(r.Storage)

	return t
}

// StorageType resolves the name of a predeclared integer type.
func StorageType(name string) (*types.Basic, bool) {
	tn, ok := types.Universe.Lookup(name).(*types.TypeName)
	if !ok {
		return nil, false
	}

	b, ok := tn.Type().(*types.Basic)
	if !ok || b.Info()&types.IsInteger == 0 || b.Info()&types.IsUntyped != 0 {
		return nil, false
	}

	return b, true
}
