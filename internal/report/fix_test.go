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

package report_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/bitflags/internal/report"
)

func TestConvertEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "Qualified",
			src:  "bitflags.Or(a, b)",
			want: "bitflags.Convert[uint64](bitflags.Or(a, b))",
		},
		{
			name: "Renamed",
			src:  "bf.Xor(a, b)",
			want: "bf.Convert[uint64](bf.Xor(a, b))",
		},
		{
			name: "DotImport",
			src:  "And(a, b)",
			want: "Convert[uint64](And(a, b))",
		},
		{
			name: "TypeArgument",
			src:  "bitflags.AndNot[Mode](a, b)",
			want: "bitflags.Convert[uint64](bitflags.AndNot[Mode](a, b))",
		},
		{
			name: "Parenthesized",
			src:  "(bitflags.Or)(a, b)",
			want: "bitflags.Convert[uint64]((bitflags.Or)(a, b))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset := token.NewFileSet()

			expr, err := parser.ParseExprFrom(fset, "expr.go", tt.src, parser.SkipObjectResolution)
			if err != nil {
				t.Fatalf("Can't parse %q: %v", tt.src, err)
			}

			call, ok := expr.(*ast.CallExpr)
			if !ok {
				t.Fatalf("Got %T, want *ast.CallExpr", expr)
			}

			edits := ConvertEdits(call, "uint64")

			if got := apply(fset.File(call.Pos()), tt.src, edits); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

// apply applies non-overlapping edits to src.
func apply(file *token.File, src string, edits []analysis.TextEdit) string {
	edits = slices.Clone(edits)
	slices.SortStableFunc(edits, func(a, b analysis.TextEdit) int { return int(b.Pos - a.Pos) })

	for _, e := range edits {
		start, end := file.Offset(e.Pos), file.Offset(e.End)
		src = src[:start] + string(e.NewText) + src[end:]
	}

	return src
}
