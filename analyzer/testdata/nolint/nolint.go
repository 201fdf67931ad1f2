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

package nolint

import "fillmore-labs.com/bitflags"

//bitflags:disable
type Level uint8 // want Level:`bitflags\(disabled\)`

const (
	Low Level = 1 << iota
	High
)

func line() {
	_ = bitflags.Or(Low, High) //nolint:bitflags
	_ = bitflags.Or(Low, High) //nolint:all
	_ = bitflags.Or(Low, High) //nolint:gosec,bitflags
	_ = bitflags.Or(Low, High) //nolint:gosec // want "bitwise combination of bare Level values is disabled"
}

// function is excluded as a whole.
//
//nolint:bitflags
func function() {
	_ = bitflags.Or(Low, High)
	_ = bitflags.Xor(Low, High)
}
