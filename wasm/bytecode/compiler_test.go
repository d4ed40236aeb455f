package bytecode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulcsaradam/walrus/wasm"
	binreader "github.com/kulcsaradam/walrus/wasm/binary"
)

// module assembles a wasm binary from raw section bytes.
func module(sections ...[]byte) []byte {
	m := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	for _, s := range sections {
		m = append(m, s...)
	}
	return m
}

// section encodes one section; fixtures stay below 128 bytes so the size
// is a single LEB byte.
func section(id byte, contents ...byte) []byte {
	return append([]byte{id, byte(len(contents))}, contents...)
}

func compile(t *testing.T, source []byte) *wasm.ParsingResult {
	t.Helper()
	c := NewCompiler()
	require.NoError(t, binreader.ReadModule("test.wasm", source, c))
	return c.Result()
}

func records(t *testing.T, fn *wasm.ModuleFunction) []*Instruction {
	t.Helper()
	var out []*Instruction
	it := NewIterator(fn)
	for it.HasNext() {
		ins, err := it.Next()
		require.NoError(t, err)
		out = append(out, ins)
	}
	return out
}

func immU32(t *testing.T, ins *Instruction) uint32 {
	t.Helper()
	require.Len(t, ins.Imm, 4)
	return binary.LittleEndian.Uint32(ins.Imm)
}

// identity function: (func (param i32) (result i32) local.get 0) compiles
// to a single End whose result offset is the parameter's home slot.
func TestCompileIdentity(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x04, 0x00, 0x20, 0x00, 0x0b),
	)
	result := compile(t, source)
	require.Len(t, result.Functions, 1)
	fn := result.Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 1)
	require.Equal(t, OpEnd, rs[0].Op)
	require.Equal(t, []StackOffset{0}, rs[0].StackOffsets)
	require.Equal(t, uint32(8), fn.RequiredStackSize)
}

// (func (result i32) i32.const 3 i32.const 4 i32.add)
func TestCompileAddConstants(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x07, 0x00, 0x41, 0x03, 0x41, 0x04, 0x6a, 0x0b),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 4)

	require.Equal(t, OpConst32, rs[0].Op)
	require.Equal(t, []StackOffset{0}, rs[0].StackOffsets)
	require.Equal(t, uint32(3), immU32(t, rs[0]))

	require.Equal(t, OpConst32, rs[1].Op)
	require.Equal(t, []StackOffset{4}, rs[1].StackOffsets)
	require.Equal(t, uint32(4), immU32(t, rs[1]))

	require.Equal(t, wasm.OpcodeI32Add, rs[2].Op)
	require.Equal(t, []StackOffset{0, 4, 0}, rs[2].StackOffsets)

	require.Equal(t, OpEnd, rs[3].Op)
	require.Equal(t, []StackOffset{0}, rs[3].StackOffsets)
}

// (func (result i32) i32.const 1 (if (result i32) (then i32.const 10)
// (else i32.const 20))): both forward jumps land exactly on their targets.
func TestCompileIfElseWithResult(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x0c, 0x00,
			0x41, 0x01, // i32.const 1
			0x04, 0x7f, // if (result i32)
			0x41, 0x0a, // i32.const 10
			0x05,       // else
			0x41, 0x14, // i32.const 20
			0x0b, // end (if)
			0x0b, // end (function)
		),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 6)
	require.Equal(t, OpConst32, rs[0].Op)
	require.Equal(t, OpJumpIfFalse, rs[1].Op)
	require.Equal(t, OpConst32, rs[2].Op)
	require.Equal(t, OpJump, rs[3].Op)
	require.Equal(t, OpConst32, rs[4].Op)
	require.Equal(t, OpEnd, rs[5].Op)

	// JumpIfFalse lands on the else arm, Jump lands on the End.
	require.Equal(t, rs[4].Offset, rs[1].Offset+int(rs[1].JumpOffset))
	require.Equal(t, rs[5].Offset, rs[3].Offset+int(rs[3].JumpOffset))

	// both arms write the block result to the same slot
	require.Equal(t, rs[2].StackOffsets, rs[4].StackOffsets)
	require.Equal(t, rs[2].StackOffsets, rs[5].StackOffsets)
}

// (func (loop (br_if 0 (i32.const 1)))): a backward JumpIfTrue whose
// offset is negative and lands on the loop header.
func TestCompileLoopBrIf(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x00),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x09, 0x00,
			0x03, 0x40, // loop
			0x41, 0x01, // i32.const 1
			0x0d, 0x00, // br_if 0
			0x0b, // end (loop)
			0x0b, // end (function)
		),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 3)
	require.Equal(t, OpConst32, rs[0].Op)
	require.Equal(t, OpJumpIfTrue, rs[1].Op)
	require.Equal(t, OpEnd, rs[2].Op)

	require.Negative(t, rs[1].JumpOffset)
	// the loop header is the first record
	require.Equal(t, rs[0].Offset, rs[1].Offset+int(rs[1].JumpOffset))
}

// (func (param i32) (block (block (block (br_table 0 1 2 (local.get 0)))))):
// one BrTable header plus three slots, each resolving, relative to its own
// address, to the corresponding block-end patch site.
func TestCompileBrTable(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x01, 0x7f, 0x00),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x12, 0x00,
			0x02, 0x40, // block
			0x02, 0x40, // block
			0x02, 0x40, // block
			0x20, 0x00, // local.get 0
			0x0e, 0x02, 0x00, 0x01, 0x02, // br_table 0 1 2
			0x0b, 0x0b, 0x0b, // three block ends
			0x0b, // end (function)
		),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 2)
	require.Equal(t, OpBrTable, rs[0].Op)
	require.Equal(t, []StackOffset{0}, rs[0].StackOffsets)
	require.Len(t, rs[0].Table, 3)

	endOffset := rs[1].Offset
	require.Equal(t, OpEnd, rs[1].Op)
	for i, slot := range rs[0].Table {
		slotAddr := rs[0].TableBase + 4*i
		require.Equal(t, endOffset, slotAddr+int(slot), "slot %d", i)
	}
}

// a comparison lexically followed by if carries the merge flag
func TestCompileCompareBranchFusion(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x00),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x0a, 0x00,
			0x41, 0x01, // i32.const 1
			0x41, 0x02, // i32.const 2
			0x48,       // i32.lt_s
			0x04, 0x40, // if
			0x0b, // end (if)
			0x0b, // end (function)
		),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 5)
	require.Equal(t, wasm.OpcodeI32LtS, rs[2].Op)
	require.True(t, rs[2].IsMergeCompare)
	require.Equal(t, OpJumpIfFalse, rs[3].Op)
}

// a comparison not followed by a branch or select carries no merge flag
func TestCompileCompareNoFusion(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x07, 0x00,
			0x41, 0x01, // i32.const 1
			0x41, 0x02, // i32.const 2
			0x48, // i32.lt_s
			0x0b, // end
		),
	)
	fn := compile(t, source).Functions[0]
	rs := records(t, fn)
	require.Equal(t, wasm.OpcodeI32LtS, rs[2].Op)
	require.False(t, rs[2].IsMergeCompare)
}

// a write to the local inside the usage range disables the direct
// reference: the local.get becomes a Move into a fresh slot.
func TestCompileLocalWriteDisablesDirectReference(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x0b, 0x00,
			0x20, 0x00, // local.get 0
			0x41, 0x01, // i32.const 1
			0x21, 0x00, // local.set 0
			0x20, 0x00, // local.get 0
			0x6a, // i32.add
			0x0b, // end
		),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	// the first local.get must copy out of the home slot before the write
	require.Equal(t, OpMove32, rs[0].Op)
	require.Equal(t, []StackOffset{0, 4}, rs[0].StackOffsets)

	last := rs[len(rs)-1]
	require.Equal(t, OpEnd, last.Op)
	require.Equal(t, []StackOffset{4}, last.StackOffsets)
}

// (func (result i32) (select (i32.const 1) (i32.const 2) (i32.const 0)))
func TestCompileSelect(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x09, 0x00,
			0x41, 0x01,
			0x41, 0x02,
			0x41, 0x00,
			0x1b, // select
			0x0b,
		),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 5)
	sel := rs[3]
	require.Equal(t, OpSelect, sel.Op)
	require.Equal(t, uint16(4), sel.ValueSize)
	require.Equal(t, []StackOffset{8, 0, 4, 0}, sel.StackOffsets)
}

// call lowers to a record listing argument slots then result slots
func TestCompileCall(t *testing.T) {
	source := module(
		section(1, 0x02,
			0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f, // (i32, i32) -> i32
			0x60, 0x00, 0x01, 0x7f, // () -> i32
		),
		section(3, 0x02, 0x00, 0x01),
		section(10, 0x02,
			0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b, // add
			0x08, 0x00, 0x41, 0x01, 0x41, 0x02, 0x10, 0x00, 0x0b, // call 0
		),
	)
	result := compile(t, source)
	require.Len(t, result.Functions, 2)

	add := records(t, result.Functions[0])
	require.Len(t, add, 2)
	require.Equal(t, wasm.OpcodeI32Add, add[0].Op)
	require.Equal(t, []StackOffset{0, 4, 8}, add[0].StackOffsets)
	require.Equal(t, []StackOffset{8}, add[1].StackOffsets)

	caller := records(t, result.Functions[1])
	require.Len(t, caller, 4)
	call := caller[2]
	require.Equal(t, OpCall, call.Op)
	require.Equal(t, uint32(0), call.Index)
	require.Equal(t, []StackOffset{0, 4, 0}, call.StackOffsets)
}

// try/catch produces the catch-region side table
func TestCompileTryCatch(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x00),
		section(3, 0x01, 0x00),
		section(13, 0x01, 0x00, 0x00), // one tag of type 0
		section(10, 0x01, 0x09, 0x00,
			0x06, 0x40, // try
			0x08, 0x00, // throw 0
			0x07, 0x00, // catch 0
			0x0b, // end (try)
			0x0b, // end (function)
		),
	)
	result := compile(t, source)
	fn := result.Functions[0]

	rs := records(t, fn)
	require.Len(t, rs, 2)
	require.Equal(t, OpThrow, rs[0].Op)
	require.Equal(t, uint32(0), rs[0].Index)
	require.Equal(t, OpEnd, rs[1].Op)

	require.Len(t, fn.CatchInfo, 1)
	ci := fn.CatchInfo[0]
	require.Equal(t, uint32(0), ci.TryStart)
	require.Equal(t, uint32(rs[1].Offset), ci.TryEnd)
	require.Equal(t, uint32(rs[1].Offset), ci.CatchStart)
	require.Equal(t, uint32(0), ci.StackSizeToBe)
	require.Equal(t, uint32(0), ci.TagIndex)
}

// unreachable suspends emission; the instructions after it are not
// compiled but the block still closes correctly
func TestCompileUnreachable(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x08, 0x00,
			0x02, 0x7f, // block (result i32)
			0x00,       // unreachable
			0x41, 0x2a, // i32.const 42 (dead)
			0x0b, // end (block)
			0x0b, // end (function)
		),
	)
	fn := compile(t, source).Functions[0]

	rs := records(t, fn)
	require.Equal(t, wasm.OpcodeUnreachable, rs[0].Op)
	// the dead constant is skipped without validation and never emitted
	for _, ins := range rs[1:] {
		require.NotEqual(t, OpConst32, ins.Op)
	}
}

// a function needing more than 64 KiB of value stack is rejected
func TestCompileStackSizeLimit(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x00),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x06, 0x01,
			0xa0, 0x9c, 0x01, // 20000 locals
			0x7e, // i64
			0x0b, // end
		),
	)
	c := NewCompiler()
	err := binreader.ReadModule("test.wasm", source, c)
	require.Error(t, err)
	require.ErrorContains(t, err, "too many stack usage")
}

// a reinterpret cast never becomes a real operation: same slot, no record
func TestCompileReinterpretIsMoveOnly(t *testing.T) {
	source := module(
		section(1, 0x01, 0x60, 0x00, 0x01, 0x7f),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x08, 0x00,
			0x43, 0x00, 0x00, 0x80, 0x3f, // f32.const 1.0
			0xbc, // i32.reinterpret_f32
			0x0b,
		),
	)
	fn := compile(t, source).Functions[0]
	rs := records(t, fn)
	// the reinterpret reuses the const's slot, so only Const32 and End remain
	require.Len(t, rs, 2)
	require.Equal(t, OpConst32, rs[0].Op)
	require.Equal(t, OpEnd, rs[1].Op)
}
