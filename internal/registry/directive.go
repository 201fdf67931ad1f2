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
	"fmt"
	"go/ast"
	"go/token"
	"iter"
	"strings"

	"go.uber.org/multierr"
)

const (
	prefix = "//bitflags:"

	verbDisable = "disable"
	verbStorage = "storage"
)

// Directive is a single //bitflags: comment line.
type Directive struct {
	Pos  token.Pos
	Verb string
	Arg  string
}

func (d Directive) String() string {
	if d.Arg == "" {
		return "bitflags:" + d.Verb
	}

	return "bitflags:" + d.Verb + " " + d.Arg
}

// DirectiveError describes a malformed directive.
type DirectiveError struct {
	Pos token.Pos
	Msg string
}

func (e *DirectiveError) Error() string { return e.Msg }

// Directives yields the bitflags directives of the comment groups in source order.
// A trailing comment after the arguments is ignored.
func Directives(groups ...*ast.CommentGroup) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		for _, g := range groups {
			if g == nil {
				continue
			}

			for _, c := range g.List {
				text, ok := strings.CutPrefix(c.Text, prefix)
				if !ok {
					continue
				}

				if i := strings.Index(text, "//"); i >= 0 {
					text = text[:i]
				}

				d := Directive{Pos: c.Pos()}
				if fields := strings.Fields(text); len(fields) > 0 {
					d.Verb = fields[0]
					d.Arg = strings.Join(fields[1:], " ")
				}

				if !yield(d) {
					return
				}
			}
		}
	}
}

// TypeSpecDirectives yields the directives documenting spec, which is part of decl.
// The declaration comment counts only for an ungrouped declaration.
func TypeSpecDirectives(decl *ast.GenDecl, spec *ast.TypeSpec) iter.Seq[Directive] {
	if decl.Lparen.IsValid() {
		return Directives(spec.Doc)
	}

	return Directives(decl.Doc, spec.Doc)
}

// Parse builds the [Record] for the named type from its directives.
//
// Problems are returned as [*DirectiveError] values combined with [multierr.Append];
// the record still holds every directive that could be applied.
func Parse(name string, directives iter.Seq[Directive]) (Record, error) {
	var (
		r                 Record
		err               error
		disabled, storage bool
	)

	for d := range directives {
		switch d.Verb {
		case verbDisable:
			if disabled {
				err = multierr.Append(err, duplicate(d, name))
				continue
			}

			disabled, r.Disabled = true, true

		case verbStorage:
			if storage {
				err = multierr.Append(err, duplicate(d, name))
				continue
			}

			storage = true

			switch _, ok := StorageType(d.Arg); {
			case d.Arg == "":
				err = multierr.Append(err, &DirectiveError{d.Pos, "missing storage type for " + name})

			case !ok:
				err = multierr.Append(err, &DirectiveError{d.Pos, fmt.Sprintf("invalid storage type %q for %s", d.Arg, name)})

			default:
				r.Storage = d.Arg
			}

		default:
			err = multierr.Append(err, &DirectiveError{d.Pos, fmt.Sprintf("unknown directive %q", d)})
		}
	}

	return r, err
}

func duplicate(d Directive, name string) *DirectiveError {
	return &DirectiveError{d.Pos, fmt.Sprintf("duplicate directive %q for %s", Directive{Verb: d.Verb}, name)}
}
