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

// Package analyzer implements the bitflags static analysis pass.
//
// # Overview
//
// Enum types register a customization record with directives in the doc
// comment of their declaration. The analyzer enforces these records wherever
// flag sets of the type are built, in the declaring package and in every
// package importing it.
//
// # Example
//
//	// Mode is stored in 64 bits when combined.
//	//
//	//bitflags:storage uint64
//	type Mode uint16
//
//	//bitflags:disable
//	type Kind uint8
//
//	_ = bitflags.Or(Small, Large)     // bitwise combination of bare Kind values is disabled
//	_ = bitflags.New(Read)            // flag set of Mode stored as Mode, registered storage is uint64
//	_ = bitflags.NewWidth[uint64](Read, Write) // ok
//
// Bare combinations of types with a registered storage get a suggested fix
// wrapping them in bitflags.Convert.
//
// Flag sets need a defined enum type, plain integer types are reported:
//
//	_ = bitflags.New(5, 2) // flag set of plain integer type int, enum type required
//
// Generic code is checked where it instantiates flag sets with concrete types,
// not through its type parameters.
//
// # Suppression
//
// Diagnostics are suppressed by a //nolint:bitflags comment on the line, in the
// doc comment of the enclosing function or in the package doc comment of the file.
package analyzer
