//go:build bigword_release

package bigword

// trapOnOverflow is false under -tags bigword_release: plain arithmetic
// operators silently wrap instead of panicking, matching the "release
// mode" half of spec.md §4.2's plain-operator contract.
const trapOnOverflow = false
