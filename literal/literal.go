// Package literal implements the source-to-source rewriter for bigword's
// literal suffix grammar (spec.md §4.5/§6): integer tokens written
// <digits>_U<width> or <digits>_B<width> in Go source are rewritten to
// bigword.MustFromUint64(width, value) / bigword.MustParse(width, "...")
// call expressions. Go has no macro-expansion phase to hook a literal
// transform into, so this runs as a go/ast-based go generate step
// (cmd/litgen), the "build-step code generator" spec.md's Design Notes
// accept as the alternative to a compile-time token-tree rewrite.
package literal

import (
	"fmt"
	"go/ast"
	"go/token"
	"math/big"
	"strconv"
	"strings"
)

// Suffix identifies which of the two literal forms a token carries.
type Suffix int

const (
	// SuffixU denotes the U<width> numeric-type suffix.
	SuffixU Suffix = iota
	// SuffixB denotes the B<width> bit-container suffix.
	SuffixB
)

// Token is a parsed <digits>_U<width>/<digits>_B<width> literal.
type Token struct {
	Digits string // the literal's digit text, underscores already stripped
	Width  int
	Suffix Suffix
}

// ParseToken splits a raw identifier/literal spelling like "300_U8" or
// "0xFF_B16" into its digit text and suffix, returning ok=false if it does
// not match the grammar. Per spec.md §4.5, a "_B" suffix requires the
// underscore even when preceded by hex digits (so "0xFEEDB" parses as a
// hex literal with a trailing digit B, not a Bits suffix, while
// "0xFEED_B16" does parse as a suffix).
func ParseToken(raw string) (Token, bool) {
	idx := strings.LastIndexAny(raw, "_")
	for idx >= 0 {
		rest := raw[idx+1:]
		if len(rest) >= 2 && (rest[0] == 'U' || rest[0] == 'B') {
			if _, err := strconv.Atoi(rest[1:]); err == nil {
				suffix := SuffixU
				if rest[0] == 'B' {
					suffix = SuffixB
				}
				width, _ := strconv.Atoi(rest[1:])
				digits := strings.ReplaceAll(raw[:idx], "_", "")
				return Token{Digits: digits, Width: width, Suffix: suffix}, true
			}
		}
		idx = strings.LastIndexAny(raw[:idx], "_")
	}
	return Token{}, false
}

// Value parses t.Digits (which may carry a 0x/0o/0b prefix) and fails if
// it is 2^Width or more, the parse-time overflow check spec.md §4.5
// requires ("a token whose value exceeds 2^<digits> fails at parse time").
func (t Token) Value() (*big.Int, error) {
	v, ok := new(big.Int).SetString(t.Digits, 0)
	if !ok {
		return nil, fmt.Errorf("literal: invalid digits %q", t.Digits)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("literal: negative value not allowed in %q", t.Digits)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Width))
	if v.Cmp(limit) >= 0 {
		return nil, fmt.Errorf("literal: value %s does not fit in U[%d]", t.Digits, t.Width)
	}
	return v, nil
}

// Rewrite walks file and reports whether any *ast.BasicLit matches the
// literal suffix grammar, validating each match's value; it does not modify
// the tree (cmd/litgen substitutes RewriteCallExpr's call expression for
// each match). It recurses through the whole token tree (spec.md §4.5:
// "the parser recurses through an arbitrary token tree ... only matching
// tokens are rewritten; everything else passes through unchanged"),
// exactly the way go/ast.Inspect walks every node of a parsed file
// regardless of enclosing construct.
func Rewrite(fset *token.FileSet, file *ast.File) (changed bool, err error) {
	var walkErr error
	ast.Inspect(file, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}
		lit, ok := n.(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return true
		}
		tok, ok := ParseToken(lit.Value)
		if !ok {
			return true
		}
		val, verr := tok.Value()
		if verr != nil {
			walkErr = verr
			return false
		}
		_ = val
		changed = true
		return true
	})
	if walkErr != nil {
		return false, walkErr
	}
	return changed, nil
}

// RewriteCallExpr builds the replacement call expression for a matched
// token. ast.Inspect cannot replace a node from within itself, so callers
// that walk a tree looking for literals (cmd/litgen, or Rewrite above for
// detection-only use) must substitute this expression into whichever
// parent field/slice holds the original *ast.BasicLit themselves.
func RewriteCallExpr(tok Token) (ast.Expr, error) {
	val, err := tok.Value()
	if err != nil {
		return nil, err
	}
	switch tok.Suffix {
	case SuffixU:
		if val.IsUint64() {
			return &ast.CallExpr{
				Fun: ast.NewIdent("bigword.MustFromUint64"),
				Args: []ast.Expr{
					&ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(tok.Width)},
					&ast.BasicLit{Kind: token.INT, Value: val.String()},
				},
			}, nil
		}
		return &ast.CallExpr{
			Fun: ast.NewIdent("bigword.MustParse"),
			Args: []ast.Expr{
				&ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(tok.Width)},
				&ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(val.String())},
			},
		}, nil
	default: // SuffixB
		return &ast.CallExpr{
			Fun: ast.NewIdent("bigword.MustParse"),
			Args: []ast.Expr{
				&ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(tok.Width)},
				&ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(val.String())},
			},
		}, nil
	}
}
