package moremath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWasmCompatMin(t *testing.T) {
	require.True(t, math.IsNaN(WasmCompatMin(math.NaN(), 1.0)))
	require.True(t, math.IsNaN(WasmCompatMin(1.0, math.NaN())))
	require.True(t, math.IsNaN(WasmCompatMin(math.NaN(), math.Inf(-1))))

	// min(+0, -0) = -0
	v := WasmCompatMin(math.Copysign(0, 1), math.Copysign(0, -1))
	require.Zero(t, v)
	require.True(t, math.Signbit(v))

	require.Equal(t, 1.0, WasmCompatMin(1.0, 2.0))
	require.Equal(t, math.Inf(-1), WasmCompatMin(math.Inf(-1), 2.0))
}

func TestWasmCompatMax(t *testing.T) {
	require.True(t, math.IsNaN(WasmCompatMax(math.NaN(), 1.0)))
	require.True(t, math.IsNaN(WasmCompatMax(math.Inf(1), math.NaN())))

	// max(-0, +0) = +0
	v := WasmCompatMax(math.Copysign(0, -1), math.Copysign(0, 1))
	require.Zero(t, v)
	require.False(t, math.Signbit(v))

	require.Equal(t, 2.0, WasmCompatMax(1.0, 2.0))
	require.Equal(t, math.Inf(1), WasmCompatMax(math.Inf(1), 2.0))
}

func TestWasmCompatNearest(t *testing.T) {
	// ties round to even
	require.Equal(t, 2.0, WasmCompatNearestF64(2.5))
	require.Equal(t, 4.0, WasmCompatNearestF64(3.5))
	require.Equal(t, -2.0, WasmCompatNearestF64(-2.5))
	require.True(t, math.IsNaN(WasmCompatNearestF64(math.NaN())))

	require.Equal(t, float32(2.0), WasmCompatNearestF32(2.5))
}

func TestWasmCompatRounding(t *testing.T) {
	require.Equal(t, 1.0, WasmCompatFloorF64(1.9))
	require.Equal(t, 2.0, WasmCompatCeilF64(1.1))
	require.Equal(t, -1.0, WasmCompatTruncF64(-1.9))
	require.True(t, math.IsNaN(WasmCompatFloorF64(math.NaN())))
	require.True(t, math.IsNaN(WasmCompatCeilF64(math.NaN())))
	require.True(t, math.IsNaN(WasmCompatTruncF64(math.NaN())))
}
