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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/bitflags/internal/config"
	"fillmore-labs.com/bitflags/internal/run"
)

// Option configures specific behavior of a [New] bitflags analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDisabledCheck is an [Option] to configure whether bare combinations of opted-out types are reported.
func WithDisabledCheck(disabled bool) Option {
	return checkOption{key: "disabled", check: config.DisabledCheck, enabled: disabled}
}

// WithStorageCheck is an [Option] to configure whether flag sets with a wrong storage type are reported.
func WithStorageCheck(storage bool) Option {
	return checkOption{key: "storage", check: config.StorageCheck, enabled: storage}
}

// WithDirectiveCheck is an [Option] to configure whether malformed directives are reported.
func WithDirectiveCheck(directives bool) Option {
	return checkOption{key: "directives", check: config.DirectiveCheck, enabled: directives}
}

// WithEnumCheck is an [Option] to configure whether flag sets of plain integer types are reported.
func WithEnumCheck(enum bool) Option {
	return checkOption{key: "enum", check: config.EnumCheck, enabled: enum}
}

type checkOption struct {
	key     string
	check   config.CheckFlags
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}
