// Command litgen rewrites bigword literal-suffix tokens
// (<digits>_U<width>/<digits>_B<width>) in a Go source file into
// bigword.MustFromUint64/bigword.MustParse call expressions, intended to
// run as a go:generate preprocessing step ahead of go build (see
// ../../literal for why this can't be a compile-time macro in Go).
package main

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"log"
	"os"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/go-bigword/bigword/literal"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: litgen <file.go>")
	}
	path := os.Args[1]

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		log.Fatalf("litgen: parse %s: %v", path, err)
	}

	n, err := rewriteLiterals(file)
	if err != nil {
		log.Fatalf("litgen: %v", err)
	}
	if n == 0 {
		log.Printf("litgen: no literal tokens found in %s", path)
		return
	}

	out, err := os.Create(path)
	if err != nil {
		log.Fatalf("litgen: write %s: %v", path, err)
	}
	defer out.Close()
	if err := format.Node(out, fset, file); err != nil {
		log.Fatalf("litgen: format %s: %v", path, err)
	}
	log.Printf("litgen: rewrote %d literal(s) in %s", n, path)
}

// rewriteLiterals walks the entire token tree looking for *ast.BasicLit
// leaves matching the literal grammar, regardless of what construct
// encloses them (call argument, composite literal element, return value,
// binary expression operand, index, var spec, ...). ast.Inspect only
// visits nodes and cannot itself mutate the tree, so the walk is driven by
// astutil.Apply instead, whose Cursor.Replace substitutes a new node into
// whatever parent field or slice held the original — the general
// mechanism spec.md §4.5/§9 describes as "the parser recurses through an
// arbitrary token tree ... only matching tokens are rewritten; everything
// else passes through unchanged".
func rewriteLiterals(file *ast.File) (int, error) {
	count := 0
	var visitErr error

	astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
		if visitErr != nil {
			return false
		}
		lit, ok := c.Node().(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return true
		}
		tok, ok := literal.ParseToken(lit.Value)
		if !ok {
			return true
		}
		call, err := literal.RewriteCallExpr(tok)
		if err != nil {
			visitErr = fmt.Errorf("%s: %w", lit.Value, err)
			return false
		}
		c.Replace(call)
		count++
		return true
	})

	if visitErr != nil {
		return 0, visitErr
	}
	return count, nil
}
