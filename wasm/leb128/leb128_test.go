package leb128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeUint32(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected uint32
		num      int
	}{
		{name: "one byte", input: []byte{0x04}, expected: 4, num: 1},
		{name: "two bytes", input: []byte{0x80, 0x7f}, expected: 16256, num: 2},
		{name: "three bytes", input: []byte{0xe5, 0x8e, 0x26}, expected: 624485, num: 3},
		{name: "max", input: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, expected: 0xffffffff, num: 5},
		{name: "trailing data ignored", input: []byte{0x04, 0xff}, expected: 4, num: 1},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			v, num, err := DecodeUint32(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
			require.Equal(t, tc.num, num)
		})
	}
}

func TestDecodeUint32_Errors(t *testing.T) {
	_, _, err := DecodeUint32([]byte{0x80})
	require.Error(t, err)

	_, _, err = DecodeUint32([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	require.Error(t, err)
}

func TestDecodeUint64(t *testing.T) {
	v, num, err := DecodeUint64([]byte{0xe5, 0x8e, 0x26})
	require.NoError(t, err)
	require.Equal(t, uint64(624485), v)
	require.Equal(t, 3, num)

	v, num, err = DecodeUint64([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	require.NoError(t, err)
	require.Equal(t, uint64(0xffffffffffffffff), v)
	require.Equal(t, 10, num)
}

func TestDecodeInt32(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected int32
	}{
		{name: "zero", input: []byte{0x00}, expected: 0},
		{name: "positive", input: []byte{0x3f}, expected: 63},
		{name: "minus one", input: []byte{0x7f}, expected: -1},
		{name: "minus 64", input: []byte{0x40}, expected: -64},
		{name: "multi byte negative", input: []byte{0xc0, 0xbb, 0x78}, expected: -123456},
		{name: "multi byte positive", input: []byte{0xe5, 0x8e, 0x26}, expected: 624485},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			v, _, err := DecodeInt32(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}

func TestDecodeInt33AsInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected int64
	}{
		{name: "void block type", input: []byte{0x40}, expected: -64},
		{name: "i32 block type", input: []byte{0x7f}, expected: -1},
		{name: "funcref block type", input: []byte{0x70}, expected: -16},
		{name: "type index", input: []byte{0x05}, expected: 5},
		{name: "large type index", input: []byte{0xe5, 0x8e, 0x26}, expected: 624485},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			v, _, err := DecodeInt33AsInt64(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}

func TestDecodeInt64(t *testing.T) {
	v, _, err := DecodeInt64([]byte{0x7f})
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	v, _, err = DecodeInt64([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f})
	require.NoError(t, err)
	require.Equal(t, int64(-9223372036854775808), v)
}
