package wasm

import (
	"fmt"
	"math/bits"
)

// ValueType is the binary encoding of a WebAssembly value type.
// See https://www.w3.org/TR/wasm-core-2/#value-types%E2%91%A0
type ValueType = byte

const (
	ValueTypeI32       ValueType = 0x7f
	ValueTypeI64       ValueType = 0x7e
	ValueTypeF32       ValueType = 0x7d
	ValueTypeF64       ValueType = 0x7c
	ValueTypeV128      ValueType = 0x7b
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6f
)

// RefByteWidth is the number of bytes a reference value occupies on the
// value stack: the machine pointer width. It selects between the 32- and
// 64-bit bytecode forms of ref.null and ref.is_null and is recorded once in
// ParsingResult at construction.
const RefByteWidth = bits.UintSize / 8

// ValueSize returns the unpadded byte size of t on the value stack.
func ValueSize(t ValueType) uint32 {
	switch t {
	case ValueTypeI32, ValueTypeF32:
		return 4
	case ValueTypeI64, ValueTypeF64:
		return 8
	case ValueTypeV128:
		return 16
	case ValueTypeFuncref, ValueTypeExternref:
		return RefByteWidth
	}
	panic(fmt.Sprintf("invalid value type: %#x", t))
}

// StackAllocatedSize returns the byte size t occupies once pushed, padded
// to 4-byte slot alignment.
func StackAllocatedSize(t ValueType) uint32 {
	return (ValueSize(t) + 3) &^ 3
}

// ValueTypeName returns the textual name of t, e.g. "i32".
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return "unknown"
}

// IsReferenceType reports whether t is funcref or externref.
func IsReferenceType(t ValueType) bool {
	return t == ValueTypeFuncref || t == ValueTypeExternref
}
