// Package bytecode lowers decoded WebAssembly function bodies into the
// flat, offset-addressed bytecode consumed by the interpreter and the JIT
// backend. Records are little-endian and packed; every record begins with
// a uint16 opcode. Stack slots are addressed by uint16 byte offsets into
// the function's value-stack frame, which is why a single function may not
// use more than 64 KiB of value stack.
package bytecode

import (
	"encoding/binary"
	"math"

	"github.com/kulcsaradam/walrus/wasm"
)

// StackOffset is a byte offset into the value-stack frame identifying the
// home of one value.
type StackOffset = uint16

// MaxStackSize bounds the per-function value-stack size; offsets beyond it
// are not representable in a record.
const MaxStackSize = math.MaxUint16

// Bytecode-only opcodes, above the instruction space. Records whose shape
// matches their source instruction one-to-one (numeric ops, loads/stores
// with offsets, bulk memory/table ops, SIMD ops) keep their wasm.Opcode as
// the record opcode instead.
const (
	OpConst32 wasm.Opcode = 0x400 + iota
	OpConst64
	OpConst128
	OpMove32
	OpMove64
	OpMove128
	OpJump
	OpJumpIfTrue
	OpJumpIfFalse
	OpBrTable
	OpEnd
	OpCall
	OpCallIndirect
	OpSelect
	OpThrow
	OpGlobalGet32
	OpGlobalGet64
	OpGlobalGet128
	OpGlobalSet32
	OpGlobalSet64
	OpGlobalSet128
	OpLoad32
	OpLoad64
	OpStore32
	OpStore64
)

var irOpNames = map[wasm.Opcode]string{
	OpConst32:      "const32",
	OpConst64:      "const64",
	OpConst128:     "const128",
	OpMove32:       "move32",
	OpMove64:       "move64",
	OpMove128:      "move128",
	OpJump:         "jump",
	OpJumpIfTrue:   "jump_if_true",
	OpJumpIfFalse:  "jump_if_false",
	OpBrTable:      "br_table",
	OpEnd:          "end",
	OpCall:         "call",
	OpCallIndirect: "call_indirect",
	OpSelect:       "select",
	OpThrow:        "throw",
	OpGlobalGet32:  "global.get32",
	OpGlobalGet64:  "global.get64",
	OpGlobalGet128: "global.get128",
	OpGlobalSet32:  "global.set32",
	OpGlobalSet64:  "global.set64",
	OpGlobalSet128: "global.set128",
	OpLoad32:       "load32",
	OpLoad64:       "load64",
	OpStore32:      "store32",
	OpStore64:      "store64",
}

// OpName returns the display name of a record opcode, covering both the
// bytecode-only opcodes and plain instruction opcodes.
func OpName(op wasm.Opcode) string {
	if n, ok := irOpNames[op]; ok {
		return n
	}
	return op.String()
}

// Fixed record geometry the compiler relies on when pre-computing jump
// distances and patch positions.
const (
	// offset of the jump-offset field inside a Jump record
	jumpOffsetField = 2
	// offset of the jump-offset field inside a JumpIfTrue/JumpIfFalse record
	jumpIfOffsetField = 4

	jumpRecordSize   = 6 // op + i32 offset
	jumpIfRecordSize = 8 // op + cond + i32 offset
	endRecordSize    = 4 // op + count, before the result offset array
	brTableHeadSize  = 8 // op + selector + u32 count, before the slots
)

// writer is the append-only bytecode buffer of one function compile.
// Offsets into it are stable for the whole compile, so forward jumps are
// patched in place through peek/patch accessors.
type writer struct {
	buf []byte
}

func (w *writer) size() int { return len(w.buf) }

func (w *writer) bytes() []byte { return w.buf }

func (w *writer) reset() { w.buf = w.buf[:0] }

func (w *writer) op(op wasm.Opcode) int {
	pos := len(w.buf)
	w.u16(uint16(op))
	return pos
}

func (w *writer) u8(v byte) { w.buf = append(w.buf, v) }

func (w *writer) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *writer) i32(v int32) { w.u32(uint32(v)) }

func (w *writer) raw(b []byte) { w.buf = append(w.buf, b...) }

// expandBy reserves n zero bytes for a variable-width trailer that the
// caller fills through the patch accessors.
func (w *writer) expandBy(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

func (w *writer) patchU16(pos int, v uint16) {
	binary.LittleEndian.PutUint16(w.buf[pos:], v)
}

func (w *writer) patchI32(pos int, v int32) {
	binary.LittleEndian.PutUint32(w.buf[pos:], uint32(v))
}

func (w *writer) readI32(pos int) int32 {
	return int32(binary.LittleEndian.Uint32(w.buf[pos:]))
}

// patchJumpOffset fixes the target of a Jump record emitted at pos.
func (w *writer) patchJumpOffset(pos int, target int) {
	w.patchI32(pos+jumpOffsetField, int32(target-pos))
}

// patchJumpIfOffset fixes the target of a JumpIfTrue/JumpIfFalse record
// emitted at pos.
func (w *writer) patchJumpIfOffset(pos int, target int) {
	w.patchI32(pos+jumpIfOffsetField, int32(target-pos))
}

// record emitters

func (w *writer) emitConst32(dst StackOffset, imm uint32) {
	w.op(OpConst32)
	w.u16(dst)
	w.u32(imm)
}

func (w *writer) emitConst64(dst StackOffset, imm uint64) {
	w.op(OpConst64)
	w.u16(dst)
	w.u64(imm)
}

func (w *writer) emitConst128(dst StackOffset, imm []byte) {
	w.op(OpConst128)
	w.u16(dst)
	w.raw(imm[:16])
}

func (w *writer) emitMove(valueSize uint32, src, dst StackOffset) {
	switch valueSize {
	case 4:
		w.op(OpMove32)
	case 8:
		w.op(OpMove64)
	default:
		w.op(OpMove128)
	}
	w.u16(src)
	w.u16(dst)
}

// emitJump returns the record position so the offset can be patched later;
// offset is relative to the record start.
func (w *writer) emitJump(offset int32) int {
	pos := w.op(OpJump)
	w.i32(offset)
	return pos
}

func (w *writer) emitJumpIf(trueJump bool, cond StackOffset, offset int32) int {
	var pos int
	if trueJump {
		pos = w.op(OpJumpIfTrue)
	} else {
		pos = w.op(OpJumpIfFalse)
	}
	w.u16(cond)
	w.i32(offset)
	return pos
}

// emitEnd writes an End record returning the position of its result-offset
// array, which the caller fills back-to-front.
func (w *writer) emitEnd(resultCount int) (recordPos, offsetsPos int) {
	recordPos = w.op(OpEnd)
	w.u16(uint16(resultCount))
	offsetsPos = w.size()
	w.expandBy(2 * resultCount)
	return recordPos, offsetsPos
}

func (w *writer) emitSelect(cond StackOffset, valueSize uint32, src0, src1, dst StackOffset) {
	w.op(OpSelect)
	w.u16(cond)
	w.u16(uint16(valueSize))
	w.u16(src0)
	w.u16(src1)
	w.u16(dst)
}

func (w *writer) emitBinary(op wasm.Opcode, mergeCompare bool, src0, src1, dst StackOffset) {
	w.op(op)
	if op.IsCompare() {
		var flags byte
		if mergeCompare {
			flags = FlagMergeCompare
		}
		w.u8(flags)
	}
	w.u16(src0)
	w.u16(src1)
	w.u16(dst)
}

func (w *writer) emitUnary(op wasm.Opcode, mergeCompare bool, src, dst StackOffset) {
	w.op(op)
	if op.IsCompare() {
		var flags byte
		if mergeCompare {
			flags = FlagMergeCompare
		}
		w.u8(flags)
	}
	w.u16(src)
	w.u16(dst)
}

func (w *writer) emitTernary(op wasm.Opcode, src0, src1, src2, dst StackOffset) {
	w.op(op)
	w.u16(src0)
	w.u16(src1)
	w.u16(src2)
	w.u16(dst)
}

func (w *writer) emitGlobalGet(valueSize uint32, slot StackOffset, globalIndex uint32) {
	switch valueSize {
	case 4:
		w.op(OpGlobalGet32)
	case 8:
		w.op(OpGlobalGet64)
	default:
		w.op(OpGlobalGet128)
	}
	w.u16(slot)
	w.u32(globalIndex)
}

func (w *writer) emitGlobalSet(valueSize uint32, slot StackOffset, globalIndex uint32) {
	switch valueSize {
	case 4:
		w.op(OpGlobalSet32)
	case 8:
		w.op(OpGlobalSet64)
	default:
		w.op(OpGlobalSet128)
	}
	w.u16(slot)
	w.u32(globalIndex)
}

// emitLoad lowers a memory read. Zero-offset 32/64-bit full-width loads use
// the short forms.
func (w *writer) emitLoad(op wasm.Opcode, offset uint32, addr, dst StackOffset) {
	if offset == 0 {
		switch op {
		case wasm.OpcodeI32Load, wasm.OpcodeF32Load:
			w.op(OpLoad32)
			w.u16(addr)
			w.u16(dst)
			return
		case wasm.OpcodeI64Load, wasm.OpcodeF64Load:
			w.op(OpLoad64)
			w.u16(addr)
			w.u16(dst)
			return
		}
	}
	w.op(op)
	w.u32(offset)
	w.u16(addr)
	w.u16(dst)
}

func (w *writer) emitStore(op wasm.Opcode, offset uint32, addr, value StackOffset) {
	if offset == 0 {
		switch op {
		case wasm.OpcodeI32Store, wasm.OpcodeF32Store:
			w.op(OpStore32)
			w.u16(addr)
			w.u16(value)
			return
		case wasm.OpcodeI64Store, wasm.OpcodeF64Store:
			w.op(OpStore64)
			w.u16(addr)
			w.u16(value)
			return
		}
	}
	w.op(op)
	w.u32(offset)
	w.u16(addr)
	w.u16(value)
}

// FlagMergeCompare is the record-level fusion bit on compare records: the
// compare's lexical successor is a conditional branch or select, and the
// JIT backend emits one native compare-and-branch for the pair.
const FlagMergeCompare byte = 1 << 0
