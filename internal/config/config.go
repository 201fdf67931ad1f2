// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

import "fillmore-labs.com/bitflags"

// CheckFlags represents specific checks.
type CheckFlags uint8

const (
	// DisabledCheck reports bare combinations of types registered with bitflags:disable.
	DisabledCheck CheckFlags = 1 << iota

	// StorageCheck reports flag sets not using the registered storage type.
	StorageCheck

	// DirectiveCheck reports malformed bitflags directives.
	DirectiveCheck

	// EnumCheck reports flag sets over plain integer types.
	EnumCheck
)

// Checks is the set of enabled checks.
type Checks = bitflags.Mask[CheckFlags]

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return bitflags.New(DisabledCheck, StorageCheck, DirectiveCheck, EnumCheck)
}

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Behavior holds behavioral options.
type Behavior = bitflags.Mask[Config]

// DefaultBehavior returns the default behavior.
func DefaultBehavior() Behavior {
	return Behavior{}
}
