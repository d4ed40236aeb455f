package wasm

import "math"

// NullFuncIndex marks a ref.null entry inside an element segment's
// function-index vector.
const NullFuncIndex uint32 = math.MaxUint32

// SegmentMode is how an element or data segment binds to its table or
// memory.
type SegmentMode byte

const (
	SegmentModeNone SegmentMode = iota
	SegmentModeActive
	SegmentModePassive
	SegmentModeDeclared
)

// CatchInfo is one row of a function's catch-region side table: the byte
// range [TryStart, TryEnd) of the guarded bytecode, the handler entry
// offset, the value-stack size the handler runs at, and the tag it matches
// (NullFuncIndex for catch_all).
type CatchInfo struct {
	TryStart      uint32
	TryEnd        uint32
	CatchStart    uint32
	StackSizeToBe uint32
	TagIndex      uint32
}

// ModuleFunction is one function's compiled form: its signature, declared
// locals, the flat bytecode buffer, the value-stack watermark the executor
// must reserve, and the catch-region side table. It is mutated only while
// its body is being compiled and is immutable afterwards.
type ModuleFunction struct {
	Type   *FunctionType
	Locals []ValueType

	ByteCode          []byte
	RequiredStackSize uint32
	// RequiredStackSizeDueToLocal is the part of the stack frame holding
	// declared locals (excluding parameters).
	RequiredStackSizeDueToLocal uint32

	CatchInfo []CatchInfo
}

// NewModuleFunction returns an empty function of the given type. The
// parameter area always counts toward the required stack size.
func NewModuleFunction(ft *FunctionType) *ModuleFunction {
	return &ModuleFunction{Type: ft, RequiredStackSize: ft.ParamStackSize()}
}

// ElementSegment is one element segment. InitExpr is the compiled table
// offset expression for active segments and nil otherwise. FuncIndices
// holds NullFuncIndex for ref.null entries.
type ElementSegment struct {
	Mode        SegmentMode
	TableIndex  uint32
	InitExpr    *ModuleFunction
	FuncIndices []uint32
}

// DataSegment is one data segment. InitExpr is the compiled memory offset
// expression for active segments and nil for passive ones.
type DataSegment struct {
	InitExpr    *ModuleFunction
	MemoryIndex uint32
	Data        []byte
}

// ParsingResult aggregates everything decoded from one module. It owns all
// sub-entities exclusively; cross-references between them are indices into
// the parallel lists below.
type ParsingResult struct {
	Version uint32
	// RefByteWidth is fixed at construction; see the package constant.
	RefByteWidth uint32

	FunctionTypes []*FunctionType
	Functions     []*ModuleFunction
	Imports       []*Import
	Exports       []*Export
	Tables        []*TableType
	Memories      []*MemoryType
	Globals       []*GlobalType
	Tags          []*TagType
	Elements      []*ElementSegment
	Datas         []*DataSegment

	SeenStart bool
	Start     uint32
}

// NewParsingResult returns an empty result bound to the host reference
// width.
func NewParsingResult() *ParsingResult {
	return &ParsingResult{RefByteWidth: RefByteWidth}
}

// ImportedFunctionCount returns how many of Functions are imports.
func (r *ParsingResult) ImportedFunctionCount() uint32 {
	var n uint32
	for _, imp := range r.Imports {
		if imp.Kind == ExternalKindFunction {
			n++
		}
	}
	return n
}
