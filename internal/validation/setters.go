// Package validation checks source patterns the compiler cannot enforce.
package validation

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Error is one pattern violation found in a source file.
type Error struct {
	File    string
	Line    int
	Message string
	Code    string
}

func (e Error) String() string {
	return e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Message + " (" + e.Code + ")"
}

// ValidateSetterDelegation checks every Set<Name> method declared in the Go
// files of dir. A setter must call SetField with the literal field name
// <Name>, so wrapper writes take the same no-op guard and change event path
// as generic writes.
func ValidateSetterDelegation(dir string) []Error {
	var errs []Error

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		errs = append(errs, validateSetterFile(path)...)
		return nil
	})
	if err != nil {
		errs = append(errs, Error{
			File:    dir,
			Message: "failed to walk directory: " + err.Error(),
		})
	}
	return errs
}

func validateSetterFile(path string) []Error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return []Error{{File: path, Message: "failed to parse: " + err.Error()}}
	}

	var errs []Error
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || fn.Body == nil {
			continue
		}
		field, ok := strings.CutPrefix(fn.Name.Name, "Set")
		if !ok || field == "" || fn.Name.Name == "SetField" {
			continue
		}
		code := receiverName(fn) + "." + fn.Name.Name
		pos := fset.Position(fn.Pos())

		names := setFieldNames(fn.Body)
		switch {
		case len(names) == 0:
			errs = append(errs, Error{File: pos.Filename, Line: pos.Line, Message: "setter does not call SetField", Code: code})
		case len(names) > 1 || names[0] != field:
			errs = append(errs, Error{
				File:    pos.Filename,
				Line:    pos.Line,
				Message: "setter writes " + strings.Join(names, ", ") + " instead of " + field,
				Code:    code,
			})
		}
	}
	return errs
}

// setFieldNames returns the first argument of each SetField call in body.
// Non-literal names are reported as "?".
func setFieldNames(body *ast.BlockStmt) []string {
	var names []string
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "SetField" || len(call.Args) == 0 {
			return true
		}
		name := "?"
		if lit, ok := call.Args[0].(*ast.BasicLit); ok && lit.Kind == token.STRING {
			if s, err := strconv.Unquote(lit.Value); err == nil {
				name = s
			}
		}
		names = append(names, name)
		return true
	})
	return names
}

func receiverName(fn *ast.FuncDecl) string {
	expr := fn.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return "?"
}
