package binary

import "github.com/kulcsaradam/walrus/wasm"

// SourceCursor lets the delegate correlate decode events with source byte
// positions: the compiler records local-liveness ranges against Offset and
// peeks one byte ahead of a comparison to decide compare/branch fusion.
type SourceCursor interface {
	// Offset is the reader's current position in the module bytes.
	Offset() int
	// PeekByte returns the next undecoded byte without consuming it.
	PeekByte() (byte, bool)
}

// Delegate consumes the typed event stream of ReadModule. One method per
// section or instruction event, in module order. Returning an error aborts
// the parse.
type Delegate interface {
	SetSourceCursor(c SourceCursor)

	BeginModule(version uint32) error
	EndModule() error

	OnFuncType(index uint32, params, results []wasm.ValueType) error

	OnImportFunc(importIndex uint32, module, field string, funcIndex, sigIndex uint32) error
	OnImportTable(importIndex uint32, module, field string, tableIndex uint32, elemType wasm.ValueType, limits wasm.Limits) error
	OnImportMemory(importIndex uint32, module, field string, memoryIndex uint32, limits wasm.Limits) error
	OnImportGlobal(importIndex uint32, module, field string, globalIndex uint32, valueType wasm.ValueType, mutable bool) error
	OnImportTag(importIndex uint32, module, field string, tagIndex, sigIndex uint32) error

	OnFunction(index, sigIndex uint32) error
	OnTable(index uint32, elemType wasm.ValueType, limits wasm.Limits) error
	OnMemory(index uint32, limits wasm.Limits) error

	BeginGlobal(index uint32, valueType wasm.ValueType, mutable bool) error
	BeginGlobalInitExpr(index uint32) error
	EndGlobalInitExpr(index uint32) error
	EndGlobal(index uint32) error

	OnExport(kind wasm.ExternalKind, exportIndex uint32, name string, itemIndex uint32) error
	OnStartFunction(funcIndex uint32) error
	OnTagType(index, sigIndex uint32) error

	BeginElemSegment(index, tableIndex uint32, mode wasm.SegmentMode) error
	BeginElemSegmentInitExpr(index uint32) error
	EndElemSegmentInitExpr(index uint32) error
	OnElemSegmentElemExprCount(index, count uint32) error
	OnElemSegmentRefNull(index uint32, elemType wasm.ValueType) error
	OnElemSegmentRefFunc(index, funcIndex uint32) error
	EndElemSegment(index uint32) error

	BeginDataSegment(index, memoryIndex uint32, mode wasm.SegmentMode) error
	BeginDataSegmentInitExpr(index uint32) error
	EndDataSegmentInitExpr(index uint32) error
	OnDataSegmentData(index uint32, data []byte) error
	EndDataSegment(index uint32) error

	BeginFunctionBody(index, size uint32) error
	OnLocalDecl(declIndex, count uint32, valueType wasm.ValueType) error
	OnStartReadInstructions() error
	OnStartPreprocess() error
	OnEndPreprocess() error
	EndFunctionBody(index uint32) error

	// instruction events

	OnUnreachable() error
	OnNop() error
	OnBlock(sig wasm.BlockType) error
	OnLoop(sig wasm.BlockType) error
	OnIf(sig wasm.BlockType) error
	OnElse() error
	OnTry(sig wasm.BlockType) error
	OnCatch(tagIndex uint32) error
	OnCatchAll() error
	OnThrow(tagIndex uint32) error
	OnEnd() error
	OnBr(depth uint32) error
	OnBrIf(depth uint32) error
	OnBrTable(targetDepths []uint32, defaultDepth uint32) error
	OnReturn() error
	OnCall(funcIndex uint32) error
	OnCallIndirect(sigIndex, tableIndex uint32) error
	OnDrop() error
	OnSelect(resultCount uint32, resultTypes []wasm.ValueType) error

	OnLocalGet(localIndex uint32) error
	OnLocalSet(localIndex uint32) error
	OnLocalTee(localIndex uint32) error
	OnGlobalGet(globalIndex uint32) error
	OnGlobalSet(globalIndex uint32) error

	OnI32Const(value uint32) error
	OnI64Const(value uint64) error
	OnF32Const(value uint32) error
	OnF64Const(value uint64) error
	OnV128Const(value []byte) error

	OnLoad(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error
	OnStore(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error
	OnMemorySize(memIndex uint32) error
	OnMemoryGrow(memIndex uint32) error
	OnMemoryInit(segIndex, memIndex uint32) error
	OnMemoryCopy(srcMemIndex, dstMemIndex uint32) error
	OnMemoryFill(memIndex uint32) error
	OnDataDrop(segIndex uint32) error

	OnTableGet(tableIndex uint32) error
	OnTableSet(tableIndex uint32) error
	OnTableGrow(tableIndex uint32) error
	OnTableSize(tableIndex uint32) error
	OnTableFill(tableIndex uint32) error
	OnTableInit(segIndex, tableIndex uint32) error
	OnTableCopy(dstTableIndex, srcTableIndex uint32) error
	OnElemDrop(segIndex uint32) error

	OnRefFunc(funcIndex uint32) error
	OnRefNull(refType wasm.ValueType) error
	OnRefIsNull() error

	OnUnary(op wasm.Opcode) error
	OnBinary(op wasm.Opcode) error
	OnTernary(op wasm.Opcode) error

	OnLoadSplat(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error
	OnLoadZero(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error
	OnSimdLaneOp(op wasm.Opcode, lane byte) error
	OnSimdLoadLane(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64, lane byte) error
	OnSimdStoreLane(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64, lane byte) error
	OnSimdShuffle(lanes []byte) error
}
