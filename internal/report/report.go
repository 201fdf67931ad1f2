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

import (
	"fmt"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// Disabled reports a bare combination of values of enum, which is registered with bitflags:disable.
func Disabled(p *analysis.Pass, rng analysis.Range, enum types.Type) {
	msg := fmt.Sprintf("bitwise combination of bare %s values is disabled", TypeName(p, enum))

	report(p, rng.Pos(), rng.End(), KindDisabled, msg, nil)
}

// Storage reports a flag set of enum stored in stored instead of want.
//
// registered distinguishes a storage type registered with bitflags:storage from the natural width.
// Non-empty edits are attached as a suggested fix.
func Storage(p *analysis.Pass, rng analysis.Range, enum, stored, want types.Type, registered bool, edits []analysis.TextEdit) {
	origin := "natural"
	if registered {
		origin = "registered"
	}

	wantName := TypeName(p, want)
	msg := fmt.Sprintf("flag set of %s stored as %s, %s storage is %s",
		TypeName(p, enum), TypeName(p, stored), origin, wantName)

	var fixes []analysis.SuggestedFix
	if len(edits) > 0 {
		fixes = []analysis.SuggestedFix{{Message: "Convert to " + wantName, TextEdits: edits}}
	}

	report(p, rng.Pos(), rng.End(), KindStorage, msg, fixes)
}

// Raw reports a flag set over enum, which is a plain integer type instead of a defined enum type.
func Raw(p *analysis.Pass, rng analysis.Range, enum types.Type) {
	msg := fmt.Sprintf("flag set of plain integer type %s, enum type required", TypeName(p, enum))

	report(p, rng.Pos(), rng.End(), KindRaw, msg, nil)
}

// Directive reports a malformed directive at pos.
func Directive(p *analysis.Pass, pos token.Pos, msg string) {
	report(p, pos, token.NoPos, KindDirective, msg, nil)
}

// TypeName formats t relative to the analyzed package, qualifying other packages by name.
func TypeName(p *analysis.Pass, t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		if pkg == p.Pkg {
			return ""
		}

		return pkg.Name()
	})
}

func report(p *analysis.Pass, pos, end token.Pos, kind Kind, msg string, fixes []analysis.SuggestedFix) {
	p.Report(analysis.Diagnostic{
		Pos:            pos,
		End:            end,
		Category:       kind.String(),
		Message:        msg + " (bf:" + kind.String() + ")",
		SuggestedFixes: fixes,
	})
}
