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

package defs

// Mode is stored in 64 bits.
//
//bitflags:storage uint64
type Mode uint16

const (
	Read Mode = 1 << iota
	Write
	Exec
)

// Kind values are not combined as bare values.
//
//bitflags:disable
type Kind uint8

const (
	Small Kind = 1 << iota
	Large
)
