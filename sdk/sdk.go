//go:build tinygo

package sdk

import "unsafe"

//go:wasmimport env input_len
func inputLen() uint32

//go:wasmimport env read_input
func readInput(ptr unsafe.Pointer, n uint32)

//go:wasmimport env write_output
func writeOutput(v uint32)

// ReadPrivateInput returns the private input supplied by the host.
func ReadPrivateInput() string {
	n := inputLen()
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	readInput(unsafe.Pointer(&buf[0]), n)
	return string(buf)
}

// WriteOutput commits v as the public output.
func WriteOutput(v bool) {
	var out uint32
	if v {
		out = 1
	}
	writeOutput(out)
}
