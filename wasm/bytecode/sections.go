package bytecode

import (
	"fmt"

	"github.com/kulcsaradam/walrus/wasm"
)

// Section event handling: heap entities are constructed here and appended
// to the ParsingResult's parallel lists. Every index asserted by the
// reader must equal the current length of the corresponding list, since
// sections are consumed single-pass in order.

// BeginModule implements binary.Delegate.
func (c *Compiler) BeginModule(version uint32) error {
	c.result.Version = version
	return nil
}

// EndModule implements binary.Delegate.
func (c *Compiler) EndModule() error { return nil }

func (c *Compiler) typeByIndex(sigIndex uint32) (*wasm.FunctionType, error) {
	if int(sigIndex) >= len(c.result.FunctionTypes) {
		return nil, fmt.Errorf("invalid type index: %d", sigIndex)
	}
	return c.result.FunctionTypes[sigIndex], nil
}

// OnFuncType implements binary.Delegate.
func (c *Compiler) OnFuncType(index uint32, params, results []wasm.ValueType) error {
	if int(index) != len(c.result.FunctionTypes) {
		return fmt.Errorf("unexpected type index: %d", index)
	}
	c.result.FunctionTypes = append(c.result.FunctionTypes,
		wasm.NewFunctionType(params, results))
	return nil
}

// OnImportFunc implements binary.Delegate.
func (c *Compiler) OnImportFunc(importIndex uint32, module, field string, funcIndex, sigIndex uint32) error {
	if int(funcIndex) != len(c.result.Functions) {
		return fmt.Errorf("unexpected function index: %d", funcIndex)
	}
	ft, err := c.typeByIndex(sigIndex)
	if err != nil {
		return err
	}
	c.result.Functions = append(c.result.Functions, wasm.NewModuleFunction(ft))
	c.result.Imports = append(c.result.Imports, &wasm.Import{
		Kind: wasm.ExternalKindFunction, Module: module, Field: field, Index: funcIndex,
	})
	return nil
}

// OnImportTable implements binary.Delegate.
func (c *Compiler) OnImportTable(importIndex uint32, module, field string, tableIndex uint32, elemType wasm.ValueType, limits wasm.Limits) error {
	if int(tableIndex) != len(c.result.Tables) {
		return fmt.Errorf("unexpected table index: %d", tableIndex)
	}
	c.result.Tables = append(c.result.Tables, &wasm.TableType{ElemType: elemType, Limits: limits})
	c.result.Imports = append(c.result.Imports, &wasm.Import{
		Kind: wasm.ExternalKindTable, Module: module, Field: field, Index: tableIndex,
	})
	return nil
}

// OnImportMemory implements binary.Delegate.
func (c *Compiler) OnImportMemory(importIndex uint32, module, field string, memoryIndex uint32, limits wasm.Limits) error {
	if int(memoryIndex) != len(c.result.Memories) {
		return fmt.Errorf("unexpected memory index: %d", memoryIndex)
	}
	c.result.Memories = append(c.result.Memories, &wasm.MemoryType{Limits: limits})
	c.result.Imports = append(c.result.Imports, &wasm.Import{
		Kind: wasm.ExternalKindMemory, Module: module, Field: field, Index: memoryIndex,
	})
	return nil
}

// OnImportGlobal implements binary.Delegate.
func (c *Compiler) OnImportGlobal(importIndex uint32, module, field string, globalIndex uint32, valueType wasm.ValueType, mutable bool) error {
	if int(globalIndex) != len(c.result.Globals) {
		return fmt.Errorf("unexpected global index: %d", globalIndex)
	}
	c.result.Globals = append(c.result.Globals, &wasm.GlobalType{Type: valueType, Mutable: mutable})
	c.result.Imports = append(c.result.Imports, &wasm.Import{
		Kind: wasm.ExternalKindGlobal, Module: module, Field: field, Index: globalIndex,
	})
	return nil
}

// OnImportTag implements binary.Delegate.
func (c *Compiler) OnImportTag(importIndex uint32, module, field string, tagIndex, sigIndex uint32) error {
	if int(tagIndex) != len(c.result.Tags) {
		return fmt.Errorf("unexpected tag index: %d", tagIndex)
	}
	if _, err := c.typeByIndex(sigIndex); err != nil {
		return err
	}
	c.result.Tags = append(c.result.Tags, &wasm.TagType{SigIndex: sigIndex})
	c.result.Imports = append(c.result.Imports, &wasm.Import{
		Kind: wasm.ExternalKindTag, Module: module, Field: field, Index: tagIndex,
	})
	return nil
}

// OnFunction implements binary.Delegate.
func (c *Compiler) OnFunction(index, sigIndex uint32) error {
	if int(index) != len(c.result.Functions) {
		return fmt.Errorf("unexpected function index: %d", index)
	}
	ft, err := c.typeByIndex(sigIndex)
	if err != nil {
		return err
	}
	c.result.Functions = append(c.result.Functions, wasm.NewModuleFunction(ft))
	return nil
}

// OnTable implements binary.Delegate.
func (c *Compiler) OnTable(index uint32, elemType wasm.ValueType, limits wasm.Limits) error {
	if int(index) != len(c.result.Tables) {
		return fmt.Errorf("unexpected table index: %d", index)
	}
	c.result.Tables = append(c.result.Tables, &wasm.TableType{ElemType: elemType, Limits: limits})
	return nil
}

// OnMemory implements binary.Delegate.
func (c *Compiler) OnMemory(index uint32, limits wasm.Limits) error {
	if int(index) != len(c.result.Memories) {
		return fmt.Errorf("unexpected memory index: %d", index)
	}
	c.result.Memories = append(c.result.Memories, &wasm.MemoryType{Limits: limits})
	return nil
}

// BeginGlobal implements binary.Delegate.
func (c *Compiler) BeginGlobal(index uint32, valueType wasm.ValueType, mutable bool) error {
	if int(index) != len(c.result.Globals) {
		return fmt.Errorf("unexpected global index: %d", index)
	}
	c.result.Globals = append(c.result.Globals, &wasm.GlobalType{Type: valueType, Mutable: mutable})
	return nil
}

// BeginGlobalInitExpr implements binary.Delegate.
func (c *Compiler) BeginGlobalInitExpr(index uint32) error {
	g := c.result.Globals[index]
	fn := wasm.NewModuleFunction(wasm.InitExprFunctionType(g.Type))
	g.Init = fn
	c.beginFunction(fn)
	return nil
}

// EndGlobalInitExpr implements binary.Delegate.
func (c *Compiler) EndGlobalInitExpr(index uint32) error {
	c.endFunction()
	return nil
}

// EndGlobal implements binary.Delegate.
func (c *Compiler) EndGlobal(index uint32) error { return nil }

// OnExport implements binary.Delegate.
func (c *Compiler) OnExport(kind wasm.ExternalKind, exportIndex uint32, name string, itemIndex uint32) error {
	if int(exportIndex) != len(c.result.Exports) {
		return fmt.Errorf("unexpected export index: %d", exportIndex)
	}
	c.result.Exports = append(c.result.Exports, &wasm.Export{
		Kind: kind, Name: name, Index: itemIndex,
	})
	return nil
}

// OnStartFunction implements binary.Delegate.
func (c *Compiler) OnStartFunction(funcIndex uint32) error {
	c.result.SeenStart = true
	c.result.Start = funcIndex
	return nil
}

// OnTagType implements binary.Delegate.
func (c *Compiler) OnTagType(index, sigIndex uint32) error {
	if int(index) != len(c.result.Tags) {
		return fmt.Errorf("unexpected tag index: %d", index)
	}
	if _, err := c.typeByIndex(sigIndex); err != nil {
		return err
	}
	c.result.Tags = append(c.result.Tags, &wasm.TagType{SigIndex: sigIndex})
	return nil
}

// element segments

// BeginElemSegment implements binary.Delegate.
func (c *Compiler) BeginElemSegment(index, tableIndex uint32, mode wasm.SegmentMode) error {
	c.elemTableIndex = tableIndex
	c.elemMode = mode
	c.elemInitExpr = nil
	c.elemFuncIndices = nil
	return nil
}

// BeginElemSegmentInitExpr implements binary.Delegate.
func (c *Compiler) BeginElemSegmentInitExpr(index uint32) error {
	c.beginFunction(wasm.NewModuleFunction(wasm.InitExprFunctionType(wasm.ValueTypeI32)))
	return nil
}

// EndElemSegmentInitExpr implements binary.Delegate.
func (c *Compiler) EndElemSegmentInitExpr(index uint32) error {
	c.elemInitExpr = c.fn
	c.endFunction()
	return nil
}

// OnElemSegmentElemExprCount implements binary.Delegate.
func (c *Compiler) OnElemSegmentElemExprCount(index, count uint32) error {
	c.elemFuncIndices = make([]uint32, 0, count)
	return nil
}

// OnElemSegmentRefNull implements binary.Delegate.
func (c *Compiler) OnElemSegmentRefNull(index uint32, elemType wasm.ValueType) error {
	c.elemFuncIndices = append(c.elemFuncIndices, wasm.NullFuncIndex)
	return nil
}

// OnElemSegmentRefFunc implements binary.Delegate.
func (c *Compiler) OnElemSegmentRefFunc(index, funcIndex uint32) error {
	c.elemFuncIndices = append(c.elemFuncIndices, funcIndex)
	return nil
}

// EndElemSegment implements binary.Delegate.
func (c *Compiler) EndElemSegment(index uint32) error {
	if int(index) != len(c.result.Elements) {
		return fmt.Errorf("unexpected element segment index: %d", index)
	}
	c.result.Elements = append(c.result.Elements, &wasm.ElementSegment{
		Mode:        c.elemMode,
		TableIndex:  c.elemTableIndex,
		InitExpr:    c.elemInitExpr,
		FuncIndices: c.elemFuncIndices,
	})
	c.elemTableIndex = 0
	c.elemMode = wasm.SegmentModeNone
	c.elemInitExpr = nil
	c.elemFuncIndices = nil
	return nil
}

// data segments

// BeginDataSegment implements binary.Delegate.
func (c *Compiler) BeginDataSegment(index, memoryIndex uint32, mode wasm.SegmentMode) error {
	if int(index) != len(c.result.Datas) {
		return fmt.Errorf("unexpected data segment index: %d", index)
	}
	c.dataMode = mode
	c.dataMemIndex = memoryIndex
	c.dataInitExpr = nil
	c.dataBytes = nil
	return nil
}

// BeginDataSegmentInitExpr implements binary.Delegate.
func (c *Compiler) BeginDataSegmentInitExpr(index uint32) error {
	c.beginFunction(wasm.NewModuleFunction(wasm.InitExprFunctionType(wasm.ValueTypeI32)))
	return nil
}

// EndDataSegmentInitExpr implements binary.Delegate.
func (c *Compiler) EndDataSegmentInitExpr(index uint32) error {
	c.dataInitExpr = c.fn
	c.endFunction()
	return nil
}

// OnDataSegmentData implements binary.Delegate.
func (c *Compiler) OnDataSegmentData(index uint32, data []byte) error {
	c.dataBytes = append([]byte(nil), data...)
	return nil
}

// EndDataSegment implements binary.Delegate.
func (c *Compiler) EndDataSegment(index uint32) error {
	c.result.Datas = append(c.result.Datas, &wasm.DataSegment{
		InitExpr:    c.dataInitExpr,
		MemoryIndex: c.dataMemIndex,
		Data:        c.dataBytes,
	})
	c.dataMode = wasm.SegmentModeNone
	c.dataInitExpr = nil
	c.dataBytes = nil
	return nil
}
