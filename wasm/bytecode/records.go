package bytecode

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/kulcsaradam/walrus/wasm"
)

// Instruction is one decoded bytecode record. The executor and the JIT
// backend walk a function's buffer linearly; tests and the CLI dump reuse
// the same decoder.
type Instruction struct {
	Offset int
	Op     wasm.Opcode

	// StackOffsets are the record's slot operands in layout order.
	StackOffsets []StackOffset
	// JumpOffset is relative to the record start.
	JumpOffset int32
	// Table holds br_table slots (targets then default), each relative to
	// the slot's own address.
	Table []int32
	// TableBase is the buffer position of the first br_table slot.
	TableBase int
	// Index / Index2 carry function/global/table/memory/segment/tag
	// indices where the record has them.
	Index  uint32
	Index2 uint32
	// Imm is the raw immediate payload (constants, shuffle lanes).
	Imm []byte
	// MemOffset is the static byte offset of a memory access.
	MemOffset uint32
	Lane      byte
	ValueSize uint16
	// IsMergeCompare mirrors the fusion flag bit of compare records.
	IsMergeCompare bool
}

// Iterator walks a bytecode buffer record by record.
type Iterator struct {
	buf []byte
	pos int
}

// NewIterator returns an iterator over fn's bytecode.
func NewIterator(fn *wasm.ModuleFunction) *Iterator {
	return &Iterator{buf: fn.ByteCode}
}

// HasNext reports whether another record follows.
func (it *Iterator) HasNext() bool { return it.pos < len(it.buf) }

func (it *Iterator) u8() byte {
	v := it.buf[it.pos]
	it.pos++
	return v
}

func (it *Iterator) u16() uint16 {
	v := binary.LittleEndian.Uint16(it.buf[it.pos:])
	it.pos += 2
	return v
}

func (it *Iterator) u32() uint32 {
	v := binary.LittleEndian.Uint32(it.buf[it.pos:])
	it.pos += 4
	return v
}

func (it *Iterator) slots(ins *Instruction, n int) {
	for i := 0; i < n; i++ {
		ins.StackOffsets = append(ins.StackOffsets, it.u16())
	}
}

func (it *Iterator) rawImm(ins *Instruction, n int) {
	ins.Imm = append([]byte(nil), it.buf[it.pos:it.pos+n]...)
	it.pos += n
}

// Next decodes the record at the current position.
func (it *Iterator) Next() (*Instruction, error) {
	if it.pos+2 > len(it.buf) {
		return nil, fmt.Errorf("truncated bytecode at %d", it.pos)
	}
	ins := &Instruction{Offset: it.pos}
	ins.Op = wasm.Opcode(it.u16())

	switch ins.Op {
	case OpConst32:
		it.slots(ins, 1)
		it.rawImm(ins, 4)
	case OpConst64:
		it.slots(ins, 1)
		it.rawImm(ins, 8)
	case OpConst128:
		it.slots(ins, 1)
		it.rawImm(ins, 16)
	case OpMove32, OpMove64, OpMove128, OpLoad32, OpLoad64, OpStore32, OpStore64:
		it.slots(ins, 2)
	case OpJump:
		ins.JumpOffset = int32(it.u32())
	case OpJumpIfTrue, OpJumpIfFalse:
		it.slots(ins, 1)
		ins.JumpOffset = int32(it.u32())
	case OpBrTable:
		it.slots(ins, 1)
		count := int(it.u32())
		ins.TableBase = it.pos
		for i := 0; i < count+1; i++ {
			ins.Table = append(ins.Table, int32(it.u32()))
		}
	case OpEnd:
		n := int(it.u16())
		it.slots(ins, n)
	case OpCall:
		ins.Index = it.u32()
		n := int(it.u16())
		it.slots(ins, n)
	case OpCallIndirect:
		it.slots(ins, 1)
		ins.Index = it.u32()
		ins.Index2 = it.u32()
		n := int(it.u16())
		it.slots(ins, n)
	case OpSelect:
		it.slots(ins, 1)
		ins.ValueSize = it.u16()
		it.slots(ins, 3)
	case OpThrow:
		ins.Index = it.u32()
		n := int(it.u16())
		it.slots(ins, n)
	case OpGlobalGet32, OpGlobalGet64, OpGlobalGet128,
		OpGlobalSet32, OpGlobalSet64, OpGlobalSet128:
		it.slots(ins, 1)
		ins.Index = it.u32()
	case wasm.OpcodeUnreachable:
		// no operands
	case wasm.OpcodeRefFunc:
		ins.Index = it.u32()
		it.slots(ins, 1)
	case wasm.OpcodeMemorySize:
		ins.Index = it.u32()
		it.slots(ins, 1)
	case wasm.OpcodeMemoryGrow:
		ins.Index = it.u32()
		it.slots(ins, 2)
	case wasm.OpcodeMemoryFill:
		ins.Index = it.u32()
		it.slots(ins, 3)
	case wasm.OpcodeMemoryInit, wasm.OpcodeMemoryCopy,
		wasm.OpcodeTableInit, wasm.OpcodeTableCopy:
		ins.Index = it.u32()
		ins.Index2 = it.u32()
		it.slots(ins, 3)
	case wasm.OpcodeDataDrop, wasm.OpcodeElemDrop:
		ins.Index = it.u32()
	case wasm.OpcodeTableGet, wasm.OpcodeTableSet:
		ins.Index = it.u32()
		it.slots(ins, 2)
	case wasm.OpcodeTableGrow:
		ins.Index = it.u32()
		it.slots(ins, 3)
	case wasm.OpcodeTableSize:
		ins.Index = it.u32()
		it.slots(ins, 1)
	case wasm.OpcodeTableFill:
		ins.Index = it.u32()
		it.slots(ins, 3)
	case wasm.OpcodeI8x16Shuffle:
		it.slots(ins, 3)
		it.rawImm(ins, 16)
	case wasm.OpcodeI8x16ExtractLaneS, wasm.OpcodeI8x16ExtractLaneU,
		wasm.OpcodeI16x8ExtractLaneS, wasm.OpcodeI16x8ExtractLaneU,
		wasm.OpcodeI32x4ExtractLane, wasm.OpcodeI64x2ExtractLane,
		wasm.OpcodeF32x4ExtractLane, wasm.OpcodeF64x2ExtractLane:
		ins.Lane = it.u8()
		it.slots(ins, 2)
	case wasm.OpcodeI8x16ReplaceLane, wasm.OpcodeI16x8ReplaceLane,
		wasm.OpcodeI32x4ReplaceLane, wasm.OpcodeI64x2ReplaceLane,
		wasm.OpcodeF32x4ReplaceLane, wasm.OpcodeF64x2ReplaceLane:
		ins.Lane = it.u8()
		it.slots(ins, 3)
	case wasm.OpcodeV128Load8Lane, wasm.OpcodeV128Load16Lane,
		wasm.OpcodeV128Load32Lane, wasm.OpcodeV128Load64Lane:
		ins.MemOffset = it.u32()
		ins.Lane = it.u8()
		it.slots(ins, 3)
	case wasm.OpcodeV128Store8Lane, wasm.OpcodeV128Store16Lane,
		wasm.OpcodeV128Store32Lane, wasm.OpcodeV128Store64Lane:
		ins.MemOffset = it.u32()
		ins.Lane = it.u8()
		it.slots(ins, 2)
	default:
		info := ins.Op.Info()
		if info == nil {
			return nil, fmt.Errorf("unknown bytecode opcode %#x at %d", uint32(ins.Op), ins.Offset)
		}
		switch {
		case isMemoryAccess(ins.Op):
			ins.MemOffset = it.u32()
			it.slots(ins, 2)
		default:
			if ins.Op.IsCompare() {
				ins.IsMergeCompare = it.u8()&FlagMergeCompare != 0
			}
			it.slots(ins, info.ParamCount()+1)
		}
	}
	return ins, nil
}

func isMemoryAccess(op wasm.Opcode) bool {
	switch {
	case op >= wasm.OpcodeI32Load && op <= wasm.OpcodeI64Store32:
		return true
	case op >= wasm.OpcodeV128Load && op <= wasm.OpcodeV128Store:
		return true
	case op == wasm.OpcodeV128Load32Zero || op == wasm.OpcodeV128Load64Zero:
		return true
	}
	return false
}

// Disassemble renders fn's bytecode, one record per line.
func Disassemble(fn *wasm.ModuleFunction) (string, error) {
	var b strings.Builder
	it := NewIterator(fn)
	for it.HasNext() {
		ins, err := it.Next()
		if err != nil {
			return b.String(), err
		}
		fmt.Fprintf(&b, "%6d: %s", ins.Offset, OpName(ins.Op))
		if len(ins.StackOffsets) > 0 {
			fmt.Fprintf(&b, " slots=%v", ins.StackOffsets)
		}
		switch ins.Op {
		case OpJump, OpJumpIfTrue, OpJumpIfFalse:
			fmt.Fprintf(&b, " -> %d", ins.Offset+int(ins.JumpOffset))
		case OpBrTable:
			fmt.Fprintf(&b, " table=%v", ins.Table)
		}
		if ins.IsMergeCompare {
			b.WriteString(" merged")
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
