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

package directives

// Dup is registered twice.
//
//bitflags:storage uint64
//bitflags:storage uint32 // want `duplicate directive "bitflags:storage" for Dup`
type Dup uint8 // want Dup:`bitflags\(enabled, storage uint64\)`

//bitflags:disable
//bitflags:disable // want `duplicate directive "bitflags:disable" for Twice`
type Twice uint8 // want Twice:`bitflags\(disabled\)`

//bitflags:storage int128 // want `invalid storage type "int128" for Bad`
type Bad uint8

//bitflags:storage float64 // want `invalid storage type "float64" for Float`
type Float uint8

//bitflags:storage // want `missing storage type for Empty`
type Empty uint8

//bitflags:frobnicate // want `unknown directive "bitflags:frobnicate"`
type Unknown uint8

//bitflags:disable // want `directive on non-integer type Name`
type Name string

//bitflags:disable // want `directive on alias Alias`
type Alias = uint8

type (
	// Grouped is registered inside a group.
	//
	//bitflags:storage uint32
	Grouped uint8 // want Grouped:`bitflags\(enabled, storage uint32\)`

	// Valid is opted out.
	//
	//bitflags:disable
	Valid int16 // want Valid:`bitflags\(disabled\)`
)

// Plain has a comment mentioning bitflags:disable, which is not a directive.
type Plain uint8
