// Package bigword implements fixed-width unsigned big integers: U[B], the
// ring of integers modulo 2^B for any bit width B >= 0, and its bitwise-only
// sibling Bits[B].
//
// Go has no const generics, so the compile-time width B of spec is realized
// two ways that share one algorithmic core (internal/limb):
//
//   - Uint carries its width at construction time and backs every width,
//     including the odd ones (B=10, B=0) a generated menu can't cover.
//   - Generated concrete types (U64, U128, U256, ...; see gen_widths.go,
//     produced by cmd/genwidth) wrap a fixed-size array for the common
//     widths the domain actually uses, at zero allocation cost.
//
// Every operation comes in up to five flavors (wrapping, checked,
// overflowing, saturating, plain) following Go's own math/bits overflow-flag
// convention and math/big's panic-on-violated-invariant style for the
// "plain" operator.
package bigword
