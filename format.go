package bigword

import (
	"fmt"
	"strings"
)

// Format implements fmt.Formatter so Uint participates in the standard
// verbs the way math/big.Int does: %d (decimal), %x/%X (hex), %o (octal),
// %b (binary), %v (decimal), %#v (GoString).
func (x Uint) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'd', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprint(f, x.GoString())
			return
		}
		s = x.String()
	case 'x':
		s, _ = x.ToBase(16)
	case 'X':
		s, _ = x.ToBase(16)
		s = strings.ToUpper(s)
	case 'o':
		s, _ = x.ToBase(8)
	case 'b':
		s, _ = x.ToBase(2)
	default:
		fmt.Fprintf(f, "%%!%c(bigword.Uint=%s)", verb, x.String())
		return
	}
	if f.Flag('#') {
		switch verb {
		case 'x':
			s = "0x" + s
		case 'X':
			s = "0X" + s
		case 'o':
			s = "0o" + s
		case 'b':
			s = "0b" + s
		}
	}
	if width, ok := f.Width(); ok && len(s) < width {
		pad := strings.Repeat(" ", width-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	fmt.Fprint(f, s)
}

// MustFromUint64 is FromUint64 but panics on failure, for use by generated
// code and the literal rewriter where the value is already known to fit
// (spec.md §4.5's literal transform validates at rewrite time, so the
// runtime call this rewrites to should never actually fail).
func MustFromUint64(width uint, v uint64) Uint {
	z, err := FromUint64(width, v)
	if err != nil {
		panic(err)
	}
	return z
}

// MustParse is FromStr but panics on failure, intended for the same
// already-validated call sites as MustFromUint64.
func MustParse(width uint, s string) Uint {
	z, err := FromStr(width, s)
	if err != nil {
		panic(err)
	}
	return z
}
