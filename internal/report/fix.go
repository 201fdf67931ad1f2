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
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// ConvertEdits wraps call into a Convert call to storage.
// The package qualifier is taken from the called function, so renamed and dot imports keep working.
func ConvertEdits(call *ast.CallExpr, storage string) []analysis.TextEdit {
	prefix := qualifier(call.Fun) + "Convert[" + storage + "]("

	return []analysis.TextEdit{
		{Pos: call.Pos(), End: call.Pos(), NewText: []byte(prefix)},
		{Pos: call.End(), End: call.End(), NewText: []byte(")")},
	}
}

// qualifier returns the package name of a qualified function expression, including the dot.
func qualifier(fun ast.Expr) string {
	for {
		switch f := ast.Unparen(fun).(type) {
		case *ast.IndexExpr:
			fun = f.X

		case *ast.IndexListExpr:
			fun = f.X

		case *ast.SelectorExpr:
			if id, ok := f.X.(*ast.Ident); ok {
				return id.Name + "."
			}

			return ""

		default:
			return ""
		}
	}
}
