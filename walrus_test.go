package walrus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulcsaradam/walrus/wasm"
	"github.com/kulcsaradam/walrus/wasm/bytecode"
)

func section(id byte, contents ...byte) []byte {
	return append([]byte{id, byte(len(contents))}, contents...)
}

// a module exercising every section: types, an imported function, a
// defined function, table, memory, global, exports, start, an active
// element segment, and an active data segment.
func fullModule() []byte {
	m := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	for _, s := range [][]byte{
		section(1, 0x02,
			0x60, 0x00, 0x00, // type[0]: () -> ()
			0x60, 0x00, 0x01, 0x7f, // type[1]: () -> i32
		),
		section(2, 0x01,
			0x03, 'e', 'n', 'v', 0x01, 'f', // env.f
			0x00, 0x00, // func, type[0]
		),
		section(3, 0x01, 0x01),             // one function of type[1]
		section(4, 0x01, 0x70, 0x00, 0x01), // funcref table, min 1
		section(5, 0x01, 0x00, 0x01),       // one memory, min 1 page
		section(6, 0x01,
			0x7f, 0x00, // immutable i32
			0x41, 0x2a, 0x0b, // i32.const 42
		),
		section(7, 0x02,
			0x04, 'm', 'a', 'i', 'n', 0x00, 0x01,
			0x03, 'm', 'e', 'm', 0x02, 0x00,
		),
		section(8, 0x00), // start: func[0]
		section(9, 0x01,
			0x00,             // flags: active, table 0
			0x41, 0x00, 0x0b, // offset: i32.const 0
			0x01, 0x01, // one entry: func[1]
		),
		section(10, 0x01,
			0x04, 0x00, 0x41, 0x2a, 0x0b, // body: i32.const 42
		),
		section(11, 0x01,
			0x00,             // flags: active, memory 0
			0x41, 0x00, 0x0b, // offset: i32.const 0
			0x02, 0xab, 0xcd, // two bytes
		),
	} {
		m = append(m, s...)
	}
	return m
}

func TestParseModule(t *testing.T) {
	result, err := ParseModule("full.wasm", fullModule())
	require.NoError(t, err)

	require.Equal(t, uint32(wasm.RefByteWidth), result.RefByteWidth)
	require.Len(t, result.FunctionTypes, 2)
	require.Len(t, result.Functions, 2) // one import, one defined

	require.Len(t, result.Imports, 1)
	imp := result.Imports[0]
	require.Equal(t, wasm.ExternalKindFunction, imp.Kind)
	require.Equal(t, "env", imp.Module)
	require.Equal(t, "f", imp.Field)

	require.Len(t, result.Tables, 1)
	require.Equal(t, wasm.ValueTypeFuncref, result.Tables[0].ElemType)
	require.Len(t, result.Memories, 1)
	require.Equal(t, uint32(1), result.Memories[0].Limits.Min)

	require.Len(t, result.Globals, 1)
	g := result.Globals[0]
	require.Equal(t, wasm.ValueTypeI32, g.Type)
	require.False(t, g.Mutable)
	require.NotNil(t, g.Init)

	require.Len(t, result.Exports, 2)
	require.Equal(t, "main", result.Exports[0].Name)
	require.Equal(t, uint32(1), result.Exports[0].Index)
	require.Equal(t, wasm.ExternalKindMemory, result.Exports[1].Kind)

	require.True(t, result.SeenStart)
	require.Equal(t, uint32(0), result.Start)

	require.Len(t, result.Elements, 1)
	el := result.Elements[0]
	require.Equal(t, wasm.SegmentModeActive, el.Mode)
	require.Equal(t, uint32(0), el.TableIndex)
	require.NotNil(t, el.InitExpr)
	require.Equal(t, []uint32{1}, el.FuncIndices)

	require.Len(t, result.Datas, 1)
	d := result.Datas[0]
	require.NotNil(t, d.InitExpr)
	require.Equal(t, []byte{0xab, 0xcd}, d.Data)

	// the imported function has no body
	require.Empty(t, result.Functions[0].ByteCode)

	// the defined function compiles to Const32(42); End
	it := bytecode.NewIterator(result.Functions[1])
	ins, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, bytecode.OpConst32, ins.Op)
	ins, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, bytecode.OpEnd, ins.Op)
	require.False(t, it.HasNext())
}

func TestParseModule_GlobalInitExpr(t *testing.T) {
	result, err := ParseModule("full.wasm", fullModule())
	require.NoError(t, err)

	it := bytecode.NewIterator(result.Globals[0].Init)
	ins, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, bytecode.OpConst32, ins.Op)
	require.Equal(t, []bytecode.StackOffset{0}, ins.StackOffsets)
	ins, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, bytecode.OpEnd, ins.Op)
	require.Equal(t, []bytecode.StackOffset{0}, ins.StackOffsets)
}

func TestParseModule_Error(t *testing.T) {
	_, err := ParseModule("bad.wasm", []byte{0x00, 0x61, 0x73, 0x6d})
	require.Error(t, err)
	require.ErrorContains(t, err, "bad.wasm")
}
