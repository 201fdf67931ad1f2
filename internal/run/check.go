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
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/bitflags/internal/astutil"
	"fillmore-labs.com/bitflags/internal/config"
	"fillmore-labs.com/bitflags/internal/registry"
	"fillmore-labs.com/bitflags/internal/report"
)

// checker verifies the usages of the flag set library against the customization records.
type checker struct {
	*analysis.Pass
	records records
	checks  config.Checks
}

// checkFile checks all instantiations of library functions and types in a file.
func (c checker) checkFile(ctx context.Context, currentFile astutil.CurrentFile, file inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	nodeTypes := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.Ident)(nil),
	}

	file.Inspect(nodeTypes, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.FuncDecl:
			// Skip functions with nolint comment
			return !astutil.DocHasNoLint(node.Doc)

		case *ast.Ident:
			c.checkIdent(currentFile, i, node)
		}

		return true
	})
}

// checkIdent checks a single identifier referring to a generic library function or type.
func (c checker) checkIdent(currentFile astutil.CurrentFile, i inspector.Cursor, id *ast.Ident) {
	inst, ok := c.TypesInfo.Instances[id]
	if !ok {
		return
	}

	obj := c.TypesInfo.Uses[id]
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != registry.PackagePath {
		return
	}

	expr, call := enclosingUse(i)
	if currentFile.NoLintComment(expr.Node().Pos()) {
		return
	}

	if enum, ok := instanceEnum(inst); ok && isPlainInteger(enum) {
		if c.checks.Has(config.EnumCheck) {
			report.Raw(c.Pass, useNode(expr, call), enum)
		}

		return
	}

	if fun, ok := obj.(*types.Func); ok {
		switch {
		case isBareCombination(fun):
			c.checkBare(inst, call)

			return

		case !isConstructor(fun):
			return // storage follows the arguments
		}
	}

	if !c.checks.Has(config.StorageCheck) {
		return
	}

	enum, storage, ok := flagsTypeArgs(inst.Type)
	if !ok {
		return
	}

	rec, ok := c.records.lookup(c.Pass, enum)
	if !ok || isTypeParam(storage) {
		return
	}

	want, registered := expectedStorage(rec, enum)
	if types.Identical(storage.Underlying(), want.Underlying()) || c.convertArgument(call) {
		return
	}

	report.Storage(c.Pass, useNode(expr, call), enum, storage, want, registered, nil)
}

// checkBare checks a call of a bare enum combination.
func (c checker) checkBare(inst types.Instance, call inspector.Cursor) {
	if call.Inspector() == nil || inst.TypeArgs.Len() != 1 {
		return // function value, not a call
	}

	enum := inst.TypeArgs.At(0)

	rec, ok := c.records.lookup(c.Pass, enum)
	if !ok {
		return
	}

	node := call.Node().(*ast.CallExpr)

	switch want, registered := expectedStorage(rec, enum); {
	case rec.Disabled:
		if c.checks.Has(config.DisabledCheck) {
			report.Disabled(c.Pass, node, enum)
		}

	case registered && !types.Identical(enum.Underlying(), want) && c.checks.Has(config.StorageCheck):
		if c.convertArgument(call) {
			return
		}

		edits := report.ConvertEdits(node, rec.Storage)
		report.Storage(c.Pass, node, enum, enum, want, registered, edits)
	}
}

// convertArgument reports whether call is a direct argument of a Convert call.
func (c checker) convertArgument(call inspector.Cursor) bool {
	if call.Inspector() == nil {
		return false
	}

	if k, _ := call.ParentEdge(); k != edge.CallExpr_Args {
		return false
	}

	outer, ok := call.Parent().Node().(*ast.CallExpr)
	if !ok {
		return false
	}

	fun, ok := typeutil.Callee(c.TypesInfo, outer).(*types.Func)

	return ok && fun.Pkg() != nil && fun.Pkg().Path() == registry.PackagePath && fun.Name() == "Convert"
}

// enclosingUse returns the outermost expression naming the identifier,
// including package qualifier and type arguments, and the call of that expression if any.
func enclosingUse(i inspector.Cursor) (expr, call inspector.Cursor) {
	expr = i

	for {
		k, _ := expr.ParentEdge()
		if k != edge.SelectorExpr_Sel && k != edge.IndexExpr_X && k != edge.IndexListExpr_X && k != edge.ParenExpr_X {
			break
		}

		expr = expr.Parent()
	}

	if k, _ := expr.ParentEdge(); k == edge.CallExpr_Fun {
		call = expr.Parent()
	}

	return expr, call
}

// useNode returns the call of a library function, or the expression naming a library type.
func useNode(expr, call inspector.Cursor) ast.Node {
	if call.Inspector() != nil {
		return call.Node()
	}

	return expr.Node()
}

// isBareCombination reports whether fun combines two bare enum values.
func isBareCombination(fun *types.Func) bool {
	switch fun.Name() {
	case "Or", "And", "Xor", "AndNot":
		return fun.Signature().Recv() == nil

	default:
		return false
	}
}

// isConstructor reports whether fun chooses the storage of the flag set it returns.
func isConstructor(fun *types.Func) bool {
	switch fun.Name() {
	case "Empty", "New", "NewWidth", "FromBits", "Convert":
		return true

	default:
		return false
	}
}

// flagsTypeArgs returns the enum and storage types of the flag set instantiated by t,
// or returned by an instantiated function.
func flagsTypeArgs(t types.Type) (enum, storage types.Type, ok bool) {
	if sig, isSig := t.(*types.Signature); isSig {
		if sig.Results().Len() != 1 {
			return nil, nil, false
		}

		t = sig.Results().At(0).Type()
	}

	named, isNamed := types.Unalias(t).(*types.Named)
	if !isNamed {
		return nil, nil, false
	}

	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != registry.PackagePath || obj.Name() != "Flags" {
		return nil, nil, false
	}

	args := named.TypeArgs()
	if args.Len() != 2 {
		return nil, nil, false
	}

	return args.At(0), args.At(1), true
}

// instanceEnum returns the enum type of a library instantiation:
// the enum of the flag set type or result, or the enum parameter of a comparison.
func instanceEnum(inst types.Instance) (types.Type, bool) {
	if enum, _, ok := flagsTypeArgs(inst.Type); ok {
		return enum, true
	}

	sig, ok := inst.Type.(*types.Signature)
	if !ok || sig.Params().Len() == 0 {
		return nil, false
	}

	return sig.Params().At(0).Type(), true
}

// isPlainInteger reports whether t is a predeclared integer type instead of a defined type.
func isPlainInteger(t types.Type) bool {
	b, ok := types.Unalias(t).(*types.Basic)

	return ok && b.Info()&types.IsInteger != 0
}

// expectedStorage returns the storage type for flag sets of enum and whether it is registered.
func expectedStorage(rec registry.Record, enum types.Type) (types.Type, bool) {
	if st := rec.StorageType(); st != nil {
		return st, true
	}

	return enum.Underlying(), false
}

func isTypeParam(t types.Type) bool {
	_, ok := types.Unalias(t).(*types.TypeParam)

	return ok
}
