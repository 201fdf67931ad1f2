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
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bitflags/internal/astutil"
	"fillmore-labs.com/bitflags/internal/config"
	"fillmore-labs.com/bitflags/internal/registry"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the bitflags analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("bitflags: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "BitFlags")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Stage 1: Register customization records of this package
	recs := collectRecords(ctx, p, in, r.Checks)

	// Stage 2: Check flag set usages, only needed when the library is imported
	if r.Checks.AndNotFlag(config.DirectiveCheck).None() || !importsLibrary(p) {
		return nil, nil
	}

	c := checker{Pass: p, records: recs, checks: r.Checks}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Has(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		c.checkFile(ctx, currentFile, f)
	}

	return nil, nil
}

// importsLibrary reports whether the analyzed package imports the flag set library.
func importsLibrary(p *analysis.Pass) bool {
	return slices.ContainsFunc(p.Pkg.Imports(), func(pkg *types.Package) bool {
		return pkg.Path() == registry.PackagePath
	})
}
