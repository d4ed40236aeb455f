// Package moremath implements the floating-point helpers whose semantics
// the Wasm spec pins down more tightly than Go's math package: NaN
// propagation for min/max, canonical quiet NaN results for the rounding
// operators, and the signed-zero ordering rules.
package moremath

import "math"

// canonicalNaN64 has only the top fraction bit set; math.NaN also sets the
// lowest fraction bit, so it is not canonical.
var canonicalNaN64 = math.Float64frombits(0x7ff8000000000000)

// WasmCompatMin returns the Wasm-defined minimum: NaN in either operand
// yields NaN even when the other is -Inf, and min(+0, -0) is -0.
func WasmCompatMin(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case math.IsInf(x, -1) || math.IsInf(y, -1):
		return math.Inf(-1)
	case x == 0 && x == y:
		if math.Signbit(x) {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}

// WasmCompatMax returns the Wasm-defined maximum: NaN in either operand
// yields NaN even when the other is +Inf, and max(+0, -0) is +0.
func WasmCompatMax(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case math.IsInf(x, 1) || math.IsInf(y, 1):
		return math.Inf(1)
	case x == 0 && x == y:
		if math.Signbit(x) {
			return y
		}
		return x
	}
	if x > y {
		return x
	}
	return y
}

// WasmCompatNearestF32 rounds to nearest, ties to even, with a canonical
// quiet NaN result for NaN input. math.Round rounds ties away from zero so
// it cannot be used here.
func WasmCompatNearestF32(f float32) float32 {
	return float32(WasmCompatNearestF64(float64(f)))
}

// WasmCompatNearestF64 rounds to nearest, ties to even, with a canonical
// quiet NaN result for NaN input.
func WasmCompatNearestF64(f float64) float64 {
	if math.IsNaN(f) {
		return canonicalNaN64
	}
	return math.RoundToEven(f)
}

// WasmCompatFloorF64 is math.Floor with a canonical quiet NaN result.
func WasmCompatFloorF64(f float64) float64 {
	if math.IsNaN(f) {
		return canonicalNaN64
	}
	return math.Floor(f)
}

// WasmCompatCeilF64 is math.Ceil with a canonical quiet NaN result.
func WasmCompatCeilF64(f float64) float64 {
	if math.IsNaN(f) {
		return canonicalNaN64
	}
	return math.Ceil(f)
}

// WasmCompatTruncF64 is math.Trunc with a canonical quiet NaN result.
func WasmCompatTruncF64(f float64) float64 {
	if math.IsNaN(f) {
		return canonicalNaN64
	}
	return math.Trunc(f)
}
