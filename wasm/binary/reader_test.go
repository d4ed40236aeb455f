package binary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulcsaradam/walrus/wasm/binary"
	"github.com/kulcsaradam/walrus/wasm/bytecode"
)

func read(source []byte) error {
	return binary.ReadModule("test.wasm", source, bytecode.NewCompiler())
}

func module(sections ...[]byte) []byte {
	m := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	for _, s := range sections {
		m = append(m, s...)
	}
	return m
}

func section(id byte, contents ...byte) []byte {
	return append([]byte{id, byte(len(contents))}, contents...)
}

func TestReadModule_Empty(t *testing.T) {
	require.NoError(t, read(module()))
}

func TestReadModule_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr string
	}{
		{
			name:        "bad magic",
			input:       []byte{0x01, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00},
			expectedErr: "invalid magic number",
		},
		{
			name:        "truncated header",
			input:       []byte{0x00, 0x61, 0x73},
			expectedErr: "invalid magic number",
		},
		{
			name:        "bad version",
			input:       []byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00},
			expectedErr: "invalid version header",
		},
		{
			name:        "truncated section",
			input:       append(module(), 0x01, 0x0a, 0x00),
			expectedErr: "truncated section",
		},
		{
			name:        "unknown section id",
			input:       append(module(), 0x63, 0x01, 0x00),
			expectedErr: "invalid section id",
		},
		{
			name: "section length mismatch",
			input: append(module(),
				0x01, 0x06, 0x01, 0x60, 0x00, 0x00), // declares 6 bytes, holds 4
			expectedErr: "truncated section",
		},
		{
			name: "non-UTF-8 export name",
			input: module(
				section(7, 0x01, 0x01, 0xff, 0x00, 0x00),
			),
			expectedErr: "UTF-8",
		},
		{
			name: "function and code sections disagree",
			input: module(
				section(1, 0x01, 0x60, 0x00, 0x00),
				section(3, 0x01, 0x00),
			),
			expectedErr: "inconsistent lengths",
		},
		{
			name: "unsupported opcode",
			input: module(
				section(1, 0x01, 0x60, 0x00, 0x00),
				section(3, 0x01, 0x00),
				section(10, 0x01, 0x03, 0x00, 0x12, 0x0b), // return_call
			),
			expectedErr: "unsupported opcode",
		},
		{
			name: "invalid element flags",
			input: module(
				section(9, 0x01, 0x08),
			),
			expectedErr: "invalid element flags",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			err := read(tc.input)
			require.Error(t, err)
			require.ErrorContains(t, err, tc.expectedErr)
		})
	}
}

func TestReadModule_CustomSectionSkipped(t *testing.T) {
	// a custom section named "meta" with opaque payload
	require.NoError(t, read(module(
		section(0, 0x04, 'm', 'e', 't', 'a', 0xde, 0xad),
	)))
}

func TestReadModule_TypeMismatchAborts(t *testing.T) {
	// i32.add over an i64 operand must fail validation
	err := read(module(
		section(1, 0x01, 0x60, 0x00, 0x00),
		section(3, 0x01, 0x00),
		section(10, 0x01, 0x08, 0x00,
			0x41, 0x01, // i32.const 1
			0x42, 0x02, // i64.const 2
			0x6a, // i32.add
			0x1a, // drop
			0x0b,
		),
	))
	require.Error(t, err)
	require.ErrorContains(t, err, "type mismatch")
}
