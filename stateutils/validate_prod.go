//go:build !debug_chain

package stateutils

// DebugEnabled reports whether the debug_chain build tag is present
const DebugEnabled bool = false

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_chain build tag is present
func DebugValidate(validatable Validatable) {
}
