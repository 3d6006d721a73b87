package literal

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTokenSplitsDigitsFromSuffix(t *testing.T) {
	tok, ok := ParseToken("300_U8")
	require.True(t, ok)
	require.Equal(t, "300", tok.Digits)
	require.Equal(t, 8, tok.Width)
	require.Equal(t, SuffixU, tok.Suffix)
}

func TestParseTokenRequiresUnderscoreBeforeB(t *testing.T) {
	// "0xFEEDB" has no underscore before the trailing B, so it must not
	// parse as a Bits-suffixed literal — it's an ordinary hex digit string.
	_, ok := ParseToken("0xFEEDB")
	require.False(t, ok)

	tok, ok := ParseToken("0xFEED_B16")
	require.True(t, ok)
	require.Equal(t, "0xFEED", tok.Digits)
	require.Equal(t, 16, tok.Width)
	require.Equal(t, SuffixB, tok.Suffix)
}

func TestParseTokenStripsDigitGroupSeparators(t *testing.T) {
	tok, ok := ParseToken("1_000_000_U32")
	require.True(t, ok)
	require.Equal(t, "1000000", tok.Digits)
}

func TestValueRejectsOverflow(t *testing.T) {
	tok := Token{Digits: "256", Width: 8, Suffix: SuffixU}
	_, err := tok.Value()
	require.Error(t, err)

	tok = Token{Digits: "255", Width: 8, Suffix: SuffixU}
	v, err := tok.Value()
	require.NoError(t, err)
	require.Equal(t, int64(255), v.Int64())
}

func TestRewriteDetectsLiteralsInAFile(t *testing.T) {
	src := `package p
func f() {
	x := 300_U16
	y := 42
	_ = x
	_ = y
}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	require.NoError(t, err)

	changed, err := Rewrite(fset, file)
	require.NoError(t, err)
	require.True(t, changed)
}

func TestRewriteCallExprProducesMustFromUint64(t *testing.T) {
	tok, ok := ParseToken("42_U64")
	require.True(t, ok)
	call, err := RewriteCallExpr(tok)
	require.NoError(t, err)

	ce, ok := call.(*ast.CallExpr)
	require.True(t, ok)
	ident, ok := ce.Fun.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "bigword.MustFromUint64", ident.Name)
	require.Len(t, ce.Args, 2)
}
