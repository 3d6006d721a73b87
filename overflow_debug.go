//go:build !bigword_release

package bigword

// trapOnOverflow is true by default: plain arithmetic operators panic on
// overflow, matching nat.go's own "panic on underflow" convention for csub
// and the debug-mode contract spec.md §4.2 describes. Build with
// -tags bigword_release to switch to the wrapping release-mode contract
// (see overflow_release.go).
const trapOnOverflow = true
