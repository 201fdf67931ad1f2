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

package run

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"go.uber.org/multierr"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bitflags/internal/astutil"
	"fillmore-labs.com/bitflags/internal/config"
	"fillmore-labs.com/bitflags/internal/registry"
	"fillmore-labs.com/bitflags/internal/report"
)

// records holds the customization records declared in the current package.
type records map[*types.TypeName]registry.Record

// collectRecords parses the bitflags directives of all type declarations,
// exports the resulting records as facts and reports malformed directives.
func collectRecords(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, checks config.Checks) records {
	defer trace.StartRegion(ctx, "CollectRecords").End()

	reportDirectives := checks.Has(config.DirectiveCheck)
	recs := make(records)

	for c := range in.Root().Preorder((*ast.GenDecl)(nil)) {
		decl := c.Node().(*ast.GenDecl)
		if decl.Tok != token.TYPE {
			continue
		}

		for _, spec := range decl.Specs {
			tspec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			directives := registry.TypeSpecDirectives(decl, tspec)

			var first registry.Directive

			for d := range directives {
				first = d
				break
			}

			if !first.Pos.IsValid() {
				continue // no directives
			}

			tn, ok := p.TypesInfo.Defs[tspec.Name].(*types.TypeName)
			if !ok {
				astutil.InternalError(p, tspec, "Type %s without type name", tspec.Name.Name)

				continue
			}

			rec, err := registry.Parse(tn.Name(), directives)

			switch {
			case tn.IsAlias():
				err = multierr.Append(err, &registry.DirectiveError{Pos: first.Pos, Msg: "directive on alias " + tn.Name()})
				rec = registry.Record{}

			case !isInteger(tn.Type()):
				err = multierr.Append(err, &registry.DirectiveError{Pos: first.Pos, Msg: "directive on non-integer type " + tn.Name()})
				rec = registry.Record{}
			}

			if reportDirectives {
				for _, e := range multierr.Errors(err) {
					if derr, ok := e.(*registry.DirectiveError); ok {
						report.Directive(p, derr.Pos, derr.Msg)
					}
				}
			}

			if !rec.Registered() {
				continue
			}

			trace.Logf(ctx, "record", "%s: %s", tn.Name(), rec)

			recs[tn] = rec
			p.ExportObjectFact(tn, &rec)
		}
	}

	return recs
}

// isInteger reports whether t is a defined type with an integer underlying type.
func isInteger(t types.Type) bool {
	if _, ok := t.(*types.TypeParam); ok {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsInteger != 0
}

// lookup returns the customization record of the enum type t.
// It reports false when t is a type parameter, whose record is unknown.
func (r records) lookup(p *analysis.Pass, t types.Type) (registry.Record, bool) {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return registry.Record{}, false

	case *types.Named:
		tn := t.Origin().Obj()
		if rec, ok := r[tn]; ok {
			return rec, true
		}

		var rec registry.Record
		if tn.Pkg() != nil && tn.Pkg() != p.Pkg {
			p.ImportObjectFact(tn, &rec)
		}

		return rec, true

	default:
		return registry.Record{}, true
	}
}
