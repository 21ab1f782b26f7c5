//go:build tinygo

package main

// ---------- Entry: Verify ----------
//
// Hosts that call into the module directly rather than through main use
// this export. It returns "true" or "false".
//
//go:wasmexport verify
func Verify(payload *string) *string {
	return verifyImpl(payload)
}
