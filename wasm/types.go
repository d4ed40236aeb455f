package wasm

// FunctionType is an ordered parameter list plus an ordered result list.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType

	paramStackSize uint32
}

// NewFunctionType builds a FunctionType, precomputing the parameter stack
// size so the compiler never re-sums it per call site.
func NewFunctionType(params, results []ValueType) *FunctionType {
	ft := &FunctionType{Params: params, Results: results}
	for _, p := range params {
		ft.paramStackSize += StackAllocatedSize(p)
	}
	return ft
}

// ParamStackSize is the byte size of the parameter area on the value stack.
func (f *FunctionType) ParamStackSize() uint32 { return f.paramStackSize }

// InitExprFunctionType returns the signature of a synthesized init
// expression body producing a single value of type t.
func InitExprFunctionType(t ValueType) *FunctionType {
	return NewFunctionType(nil, []ValueType{t})
}

// BlockType is the decoded signed-33-bit block signature of a structured
// control instruction: negative values encode a single value type (or
// void), non-negative values index the function-type section.
// See https://www.w3.org/TR/wasm-core-2/#binary-blocktype
type BlockType int64

const (
	BlockTypeVoid      BlockType = -0x40
	BlockTypeI32       BlockType = -0x01
	BlockTypeI64       BlockType = -0x02
	BlockTypeF32       BlockType = -0x03
	BlockTypeF64       BlockType = -0x04
	BlockTypeV128      BlockType = -0x05
	BlockTypeFuncref   BlockType = -0x10
	BlockTypeExternref BlockType = -0x11
)

// IsIndex reports whether b is an index into the function-type section.
func (b BlockType) IsIndex() bool { return b >= 0 }

// Index returns the function-type index; only valid when IsIndex is true.
func (b BlockType) Index() uint32 { return uint32(b) }

// IsVoid reports whether the block has no signature at all.
func (b BlockType) IsVoid() bool { return b == BlockTypeVoid }

// ValueType returns the single value type b encodes. Only valid for
// non-index, non-void block types.
func (b BlockType) ValueType() ValueType {
	switch b {
	case BlockTypeI32:
		return ValueTypeI32
	case BlockTypeI64:
		return ValueTypeI64
	case BlockTypeF32:
		return ValueTypeF32
	case BlockTypeF64:
		return ValueTypeF64
	case BlockTypeV128:
		return ValueTypeV128
	case BlockTypeFuncref:
		return ValueTypeFuncref
	case BlockTypeExternref:
		return ValueTypeExternref
	}
	panic("block type carries no value type")
}

// Limits are the (initial, optional maximum) bounds of a table or memory.
type Limits struct {
	Min    uint32
	Max    uint32
	HasMax bool
}

// TableType describes one table: its element reference type and bounds.
type TableType struct {
	ElemType ValueType
	Limits   Limits
}

// MemoryType describes one linear memory in units of pages.
type MemoryType struct {
	Limits Limits
}

// GlobalType describes one global variable. Init is the compiled init
// expression for module-defined globals and nil for imported ones.
type GlobalType struct {
	Type    ValueType
	Mutable bool
	Init    *ModuleFunction
}

// TagType describes one exception tag; its parameters are the function
// type at SigIndex.
type TagType struct {
	SigIndex uint32
}

// ExternalKind classifies imports and exports.
type ExternalKind byte

const (
	ExternalKindFunction ExternalKind = iota
	ExternalKindTable
	ExternalKindMemory
	ExternalKindGlobal
	ExternalKindTag
)

func (k ExternalKind) String() string {
	switch k {
	case ExternalKindFunction:
		return "function"
	case ExternalKindTable:
		return "table"
	case ExternalKindMemory:
		return "memory"
	case ExternalKindGlobal:
		return "global"
	case ExternalKindTag:
		return "tag"
	}
	return "unknown"
}

// Import is one import entry. Index is the descriptor index into the list
// selected by Kind (functions, tables, memories, globals, tags).
type Import struct {
	Kind   ExternalKind
	Module string
	Field  string
	Index  uint32
}

// Export is one export entry, Index interpreted like Import.Index.
type Export struct {
	Kind  ExternalKind
	Name  string
	Index uint32
}
