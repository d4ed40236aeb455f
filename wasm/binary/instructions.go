package binary

import (
	"encoding/binary"
	"fmt"

	"github.com/kulcsaradam/walrus/wasm"
)

// readMemarg decodes the alignment/offset immediate pair of a memory
// access. Bit 6 of the alignment field signals an explicit memory index
// (multi-memory); otherwise memory zero is addressed.
func (r *reader) readMemarg() (memIndex, alignLog2 uint32, offset uint64, err error) {
	alignLog2, err = r.readU32()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read memory alignment: %w", err)
	}
	if alignLog2&(1<<6) != 0 {
		alignLog2 &^= 1 << 6
		if memIndex, err = r.readU32(); err != nil {
			return 0, 0, 0, fmt.Errorf("read memory index: %w", err)
		}
	}
	off32, err := r.readU32()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read memory offset: %w", err)
	}
	return memIndex, alignLog2, uint64(off32), nil
}

// readInstruction decodes one instruction and dispatches its event.
func (r *reader) readInstruction() error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	op := wasm.Opcode(b)

	switch op {
	case wasm.OpcodeUnreachable:
		return r.del.OnUnreachable()
	case wasm.OpcodeNop:
		return r.del.OnNop()
	case wasm.OpcodeBlock:
		sig, err := r.readBlockType()
		if err != nil {
			return fmt.Errorf("reading block type for block instruction: %w", err)
		}
		return r.del.OnBlock(sig)
	case wasm.OpcodeLoop:
		sig, err := r.readBlockType()
		if err != nil {
			return fmt.Errorf("reading block type for loop instruction: %w", err)
		}
		return r.del.OnLoop(sig)
	case wasm.OpcodeIf:
		sig, err := r.readBlockType()
		if err != nil {
			return fmt.Errorf("reading block type for if instruction: %w", err)
		}
		return r.del.OnIf(sig)
	case wasm.OpcodeElse:
		return r.del.OnElse()
	case wasm.OpcodeTry:
		sig, err := r.readBlockType()
		if err != nil {
			return fmt.Errorf("reading block type for try instruction: %w", err)
		}
		return r.del.OnTry(sig)
	case wasm.OpcodeCatch:
		tag, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read catch tag index: %w", err)
		}
		return r.del.OnCatch(tag)
	case wasm.OpcodeCatchAll:
		return r.del.OnCatchAll()
	case wasm.OpcodeThrow:
		tag, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read throw tag index: %w", err)
		}
		return r.del.OnThrow(tag)
	case wasm.OpcodeEnd:
		return r.del.OnEnd()
	case wasm.OpcodeBr:
		depth, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read br depth: %w", err)
		}
		return r.del.OnBr(depth)
	case wasm.OpcodeBrIf:
		depth, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read br_if depth: %w", err)
		}
		return r.del.OnBrIf(depth)
	case wasm.OpcodeBrTable:
		n, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read br_table target count: %w", err)
		}
		targets := make([]uint32, n)
		for i := range targets {
			if targets[i], err = r.readU32(); err != nil {
				return fmt.Errorf("read br_table target: %w", err)
			}
		}
		def, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read br_table default target: %w", err)
		}
		return r.del.OnBrTable(targets, def)
	case wasm.OpcodeReturn:
		return r.del.OnReturn()
	case wasm.OpcodeCall:
		f, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read call function index: %w", err)
		}
		return r.del.OnCall(f)
	case wasm.OpcodeCallIndirect:
		sig, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read call_indirect type index: %w", err)
		}
		table, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read call_indirect table index: %w", err)
		}
		return r.del.OnCallIndirect(sig, table)
	case wasm.OpcodeDrop:
		return r.del.OnDrop()
	case wasm.OpcodeSelect:
		return r.del.OnSelect(0, nil)
	case wasm.OpcodeTypedSelect:
		types, err := r.readValueTypes()
		if err != nil {
			return fmt.Errorf("read select result types: %w", err)
		}
		return r.del.OnSelect(uint32(len(types)), types)
	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read local index: %w", err)
		}
		switch op {
		case wasm.OpcodeLocalGet:
			return r.del.OnLocalGet(index)
		case wasm.OpcodeLocalSet:
			return r.del.OnLocalSet(index)
		default:
			return r.del.OnLocalTee(index)
		}
	case wasm.OpcodeGlobalGet:
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read global index: %w", err)
		}
		return r.del.OnGlobalGet(index)
	case wasm.OpcodeGlobalSet:
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read global index: %w", err)
		}
		return r.del.OnGlobalSet(index)
	case wasm.OpcodeTableGet:
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		return r.del.OnTableGet(index)
	case wasm.OpcodeTableSet:
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		return r.del.OnTableSet(index)
	case wasm.OpcodeMemorySize:
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read memory index: %w", err)
		}
		return r.del.OnMemorySize(index)
	case wasm.OpcodeMemoryGrow:
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read memory index: %w", err)
		}
		return r.del.OnMemoryGrow(index)
	case wasm.OpcodeI32Const:
		v, err := r.readS32()
		if err != nil {
			return fmt.Errorf("read i32.const value: %w", err)
		}
		return r.del.OnI32Const(uint32(v))
	case wasm.OpcodeI64Const:
		v, err := r.readS64()
		if err != nil {
			return fmt.Errorf("read i64.const value: %w", err)
		}
		return r.del.OnI64Const(uint64(v))
	case wasm.OpcodeF32Const:
		b, err := r.readBytes(4)
		if err != nil {
			return fmt.Errorf("read f32.const value: %w", err)
		}
		return r.del.OnF32Const(binary.LittleEndian.Uint32(b))
	case wasm.OpcodeF64Const:
		b, err := r.readBytes(8)
		if err != nil {
			return fmt.Errorf("read f64.const value: %w", err)
		}
		return r.del.OnF64Const(binary.LittleEndian.Uint64(b))
	case wasm.OpcodeRefNull:
		t, err := r.readRefType()
		if err != nil {
			return fmt.Errorf("read ref.null type: %w", err)
		}
		return r.del.OnRefNull(t)
	case wasm.OpcodeRefIsNull:
		return r.del.OnRefIsNull()
	case wasm.OpcodeRefFunc:
		f, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read ref.func function index: %w", err)
		}
		return r.del.OnRefFunc(f)
	}

	if op >= wasm.OpcodeI32Load && op <= wasm.OpcodeI64Load32U {
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		return r.del.OnLoad(op, mem, align, offset)
	}
	if op >= wasm.OpcodeI32Store && op <= wasm.OpcodeI64Store32 {
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		return r.del.OnStore(op, mem, align, offset)
	}

	switch op {
	case 0xfc:
		return r.readMiscInstruction()
	case 0xfd:
		return r.readSimdInstruction()
	}

	// Generic numeric instructions dispatch through the opcode info table.
	info := op.Info()
	if info == nil {
		return fmt.Errorf("unsupported opcode: %#x", b)
	}
	switch info.ParamCount() {
	case 1:
		return r.del.OnUnary(op)
	case 2:
		return r.del.OnBinary(op)
	}
	return fmt.Errorf("unsupported opcode: %#x", b)
}

func (r *reader) readMiscInstruction() error {
	sub, err := r.readU32()
	if err != nil {
		return fmt.Errorf("read misc opcode: %w", err)
	}
	op := wasm.MiscOpcode(sub)
	switch op {
	case wasm.OpcodeI32TruncSatF32S, wasm.OpcodeI32TruncSatF32U,
		wasm.OpcodeI32TruncSatF64S, wasm.OpcodeI32TruncSatF64U,
		wasm.OpcodeI64TruncSatF32S, wasm.OpcodeI64TruncSatF32U,
		wasm.OpcodeI64TruncSatF64S, wasm.OpcodeI64TruncSatF64U:
		return r.del.OnUnary(op)
	case wasm.OpcodeMemoryInit:
		seg, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read data segment index: %w", err)
		}
		mem, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read memory index: %w", err)
		}
		return r.del.OnMemoryInit(seg, mem)
	case wasm.OpcodeDataDrop:
		seg, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read data segment index: %w", err)
		}
		return r.del.OnDataDrop(seg)
	case wasm.OpcodeMemoryCopy:
		src, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read memory index: %w", err)
		}
		dst, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read memory index: %w", err)
		}
		return r.del.OnMemoryCopy(src, dst)
	case wasm.OpcodeMemoryFill:
		mem, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read memory index: %w", err)
		}
		return r.del.OnMemoryFill(mem)
	case wasm.OpcodeTableInit:
		seg, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read element segment index: %w", err)
		}
		table, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		return r.del.OnTableInit(seg, table)
	case wasm.OpcodeElemDrop:
		seg, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read element segment index: %w", err)
		}
		return r.del.OnElemDrop(seg)
	case wasm.OpcodeTableCopy:
		dst, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		src, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		return r.del.OnTableCopy(dst, src)
	case wasm.OpcodeTableGrow:
		table, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		return r.del.OnTableGrow(table)
	case wasm.OpcodeTableSize:
		table, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		return r.del.OnTableSize(table)
	case wasm.OpcodeTableFill:
		table, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read table index: %w", err)
		}
		return r.del.OnTableFill(table)
	}
	return fmt.Errorf("unsupported opcode: 0xfc %d", sub)
}

func (r *reader) readSimdInstruction() error {
	sub, err := r.readU32()
	if err != nil {
		return fmt.Errorf("read simd opcode: %w", err)
	}
	op := wasm.SimdOpcode(sub)

	switch op {
	case wasm.OpcodeV128Load,
		wasm.OpcodeV128Load8x8S, wasm.OpcodeV128Load8x8U,
		wasm.OpcodeV128Load16x4S, wasm.OpcodeV128Load16x4U,
		wasm.OpcodeV128Load32x2S, wasm.OpcodeV128Load32x2U:
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		return r.del.OnLoad(op, mem, align, offset)
	case wasm.OpcodeV128Load8Splat, wasm.OpcodeV128Load16Splat,
		wasm.OpcodeV128Load32Splat, wasm.OpcodeV128Load64Splat:
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		return r.del.OnLoadSplat(op, mem, align, offset)
	case wasm.OpcodeV128Load32Zero, wasm.OpcodeV128Load64Zero:
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		return r.del.OnLoadZero(op, mem, align, offset)
	case wasm.OpcodeV128Store:
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		return r.del.OnStore(op, mem, align, offset)
	case wasm.OpcodeV128Const:
		b, err := r.readBytes(16)
		if err != nil {
			return fmt.Errorf("read v128.const value: %w", err)
		}
		return r.del.OnV128Const(b)
	case wasm.OpcodeI8x16Shuffle:
		b, err := r.readBytes(16)
		if err != nil {
			return fmt.Errorf("read shuffle lane indices: %w", err)
		}
		return r.del.OnSimdShuffle(b)
	case wasm.OpcodeV128Load8Lane, wasm.OpcodeV128Load16Lane,
		wasm.OpcodeV128Load32Lane, wasm.OpcodeV128Load64Lane:
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		lane, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read lane index: %w", err)
		}
		return r.del.OnSimdLoadLane(op, mem, align, offset, lane)
	case wasm.OpcodeV128Store8Lane, wasm.OpcodeV128Store16Lane,
		wasm.OpcodeV128Store32Lane, wasm.OpcodeV128Store64Lane:
		mem, align, offset, err := r.readMemarg()
		if err != nil {
			return err
		}
		lane, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read lane index: %w", err)
		}
		return r.del.OnSimdStoreLane(op, mem, align, offset, lane)
	}

	if op >= wasm.OpcodeI8x16ExtractLaneS && op <= wasm.OpcodeF64x2ReplaceLane {
		lane, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read lane index: %w", err)
		}
		return r.del.OnSimdLaneOp(op, lane)
	}

	info := op.Info()
	if info == nil {
		return fmt.Errorf("unsupported opcode: 0xfd %d", sub)
	}
	switch info.ParamCount() {
	case 1:
		return r.del.OnUnary(op)
	case 2:
		return r.del.OnBinary(op)
	case 3:
		return r.del.OnTernary(op)
	}
	return fmt.Errorf("unsupported opcode: 0xfd %d", sub)
}
