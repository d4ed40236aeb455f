package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueSize(t *testing.T) {
	require.Equal(t, uint32(4), ValueSize(ValueTypeI32))
	require.Equal(t, uint32(4), ValueSize(ValueTypeF32))
	require.Equal(t, uint32(8), ValueSize(ValueTypeI64))
	require.Equal(t, uint32(8), ValueSize(ValueTypeF64))
	require.Equal(t, uint32(16), ValueSize(ValueTypeV128))
	require.Equal(t, uint32(RefByteWidth), ValueSize(ValueTypeFuncref))
	require.Equal(t, uint32(RefByteWidth), ValueSize(ValueTypeExternref))
}

func TestStackAllocatedSize(t *testing.T) {
	require.Equal(t, uint32(4), StackAllocatedSize(ValueTypeI32))
	require.Equal(t, uint32(8), StackAllocatedSize(ValueTypeI64))
	require.Equal(t, uint32(16), StackAllocatedSize(ValueTypeV128))
}

func TestFunctionTypeParamStackSize(t *testing.T) {
	ft := NewFunctionType([]ValueType{ValueTypeI32, ValueTypeI64, ValueTypeV128}, nil)
	require.Equal(t, uint32(4+8+16), ft.ParamStackSize())

	require.Equal(t, uint32(0), NewFunctionType(nil, []ValueType{ValueTypeI32}).ParamStackSize())
}

func TestBlockType(t *testing.T) {
	require.True(t, BlockTypeVoid.IsVoid())
	require.False(t, BlockTypeVoid.IsIndex())
	require.Equal(t, ValueTypeI32, BlockTypeI32.ValueType())
	require.Equal(t, ValueTypeV128, BlockTypeV128.ValueType())

	idx := BlockType(3)
	require.True(t, idx.IsIndex())
	require.Equal(t, uint32(3), idx.Index())
}

func TestOpcodeInfo(t *testing.T) {
	info := OpcodeI32Add.Info()
	require.NotNil(t, info)
	require.Equal(t, "i32.add", info.Name)
	require.Equal(t, 2, info.ParamCount())
	require.Equal(t, ValueTypeI32, info.ResultType())
	require.Equal(t, ValueTypeI32, info.ParamType(0))

	require.Equal(t, 1, OpcodeI64Eqz.Info().ParamCount())
	require.Equal(t, ValueTypeI64, OpcodeI64Eqz.Info().ParamType(0))

	require.True(t, OpcodeF32Lt.IsCompare())
	require.True(t, OpcodeI32Eqz.IsCompare())
	require.False(t, OpcodeI32Add.IsCompare())

	require.Nil(t, Opcode(0x12).Info()) // return_call is out of the feature set
	require.Equal(t, "v128.bitselect", OpcodeV128BitSelect.String())
	require.Equal(t, 3, OpcodeV128BitSelect.Info().ParamCount())
}
