// Package walrus parses WebAssembly binary modules into the flat bytecode
// program executed by the register-style interpreter or handed to the JIT
// backend.
package walrus

import (
	"github.com/kulcsaradam/walrus/wasm"
	"github.com/kulcsaradam/walrus/wasm/binary"
	"github.com/kulcsaradam/walrus/wasm/bytecode"
)

// ParseModule decodes and compiles one module. filename is used in error
// messages only. On error the partially built result is discarded.
func ParseModule(filename string, source []byte) (*wasm.ParsingResult, error) {
	c := bytecode.NewCompiler()
	if err := binary.ReadModule(filename, source, c); err != nil {
		return nil, err
	}
	return c.Result(), nil
}
