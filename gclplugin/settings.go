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

package gclplugin

import bitflags "fillmore-labs.com/bitflags/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Disabled enables reporting bare combinations of opted-out types.
	Disabled *bool `json:"disabled,omitzero"`
	// Storage enables reporting flag sets with unregistered storage types.
	Storage *bool `json:"storage,omitzero"`
	// Directives enables reporting malformed bitflags directives.
	Directives *bool `json:"directives,omitzero"`
	// Enum enables reporting flag sets of plain integer types.
	Enum *bool `json:"enum,omitzero"`
}

// Options converts [Settings] into a list of [bitflags.Option] for the bitflags analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []bitflags.Option {
	var opts []bitflags.Option

	opts = appendOption(opts, s.Disabled, bitflags.WithDisabledCheck)
	opts = appendOption(opts, s.Storage, bitflags.WithStorageCheck)
	opts = appendOption(opts, s.Directives, bitflags.WithDirectiveCheck)
	opts = appendOption(opts, s.Enum, bitflags.WithEnumCheck)

	return opts
}

// appendOption appends a non-nil setting to a [bitflags.Option] list.
func appendOption[T any](opts []bitflags.Option, value *T, constructor func(T) bitflags.Option) []bitflags.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
