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

/*
Package bitflags provides typed bit flag sets over enumerated integer types.

A flag set combines values of one enum type into a [Flags] value that keeps
the enum type in its signature, so flags of unrelated enums can not be mixed
and an arbitrary integer never silently becomes a flag set.

# Usage

	type Perm uint16

	const (
		Read Perm = 1 << iota
		Write
		Exec
	)

	rw := bitflags.Or(Read, Write) // bitflags.Mask[Perm]
	rw.OrAssign(Exec)

	if rw.Has(Write) {
		// ...
	}

Operations are available in three operand shapes: flag set with flag set
([Flags.Or]), flag set with enum value ([Flags.OrFlag]) and enum value with
flag set ([EnumOr]). The same holds for AND, XOR, AND NOT and equality.

# Registration

An enum type can register a customization record with directives in the doc
comment of its declaration:

	// Mode is stored in 64 bits when combined.
	//
	//bitflags:storage uint64
	type Mode uint16

	// Kind values are not meant to be combined as bare values.
	//
	//bitflags:disable
	type Kind uint8

  - bitflags:storage registers a predeclared integer type as storage for flag
    sets of the type. Use [NewWidth], [Convert] or [FromBits] to build them.
  - bitflags:disable opts the type out of the bare combinations [Or], [And],
    [Xor] and [AndNot]. [Flags] and its methods stay available.

An unregistered type combines at its natural width ([Mask]). The records are
enforced at build time by the analyzer in [fillmore-labs.com/bitflags/analyzer],
which also reports flag sets over plain integer types like int or uint8.

The record of a type parameter is unknown, so a generic function combining
bare values of its type parameter is not checked, even when it is
instantiated with a type registered with bitflags:disable.
*/
package bitflags
