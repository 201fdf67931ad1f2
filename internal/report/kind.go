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

package report

// Kind is the category of a diagnostic.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindDisabled marks a bare combination of a type registered with bitflags:disable.
	KindDisabled Kind = iota // dis

	// KindStorage marks a flag set that does not use the registered storage type.
	KindStorage // sto

	// KindDirective marks a malformed bitflags directive.
	KindDirective // dir

	// KindRaw marks a flag set over a plain integer type.
	KindRaw // raw
)
