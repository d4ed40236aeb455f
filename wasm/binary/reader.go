// Package binary decodes the WebAssembly binary format into a stream of
// typed events consumed by a Delegate. It is responsible solely for format
// decoding: magic and version, section framing, LEB128 integers, UTF-8
// names, limits, init expressions, and the instruction stream inside
// function bodies, dispatched one opcode at a time.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-format%E2%91%A0
package binary

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/kulcsaradam/walrus/wasm"
	"github.com/kulcsaradam/walrus/wasm/leb128"
)

var (
	magic   = []byte{0x00, 0x61, 0x73, 0x6D}
	version = []byte{0x01, 0x00, 0x00, 0x00}

	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("invalid version header")
	ErrInvalidSectionID   = errors.New("invalid section id")
)

// SectionID identifies a module section.
// See https://www.w3.org/TR/wasm-core-2/#sections%E2%91%A0
type SectionID = byte

const (
	SectionIDCustom    SectionID = 0
	SectionIDType      SectionID = 1
	SectionIDImport    SectionID = 2
	SectionIDFunction  SectionID = 3
	SectionIDTable     SectionID = 4
	SectionIDMemory    SectionID = 5
	SectionIDGlobal    SectionID = 6
	SectionIDExport    SectionID = 7
	SectionIDStart     SectionID = 8
	SectionIDElement   SectionID = 9
	SectionIDCode      SectionID = 10
	SectionIDData      SectionID = 11
	SectionIDDataCount SectionID = 12
	SectionIDTag       SectionID = 13
)

type reader struct {
	source []byte
	pos    int
	del    Delegate

	numFuncImports   uint32
	numTableImports  uint32
	numMemImports    uint32
	numGlobalImports uint32
	numTagImports    uint32
	numCodeEntries   uint32
	numFuncDecls     uint32
}

// Offset implements SourceCursor.
func (r *reader) Offset() int { return r.pos }

// PeekByte implements SourceCursor.
func (r *reader) PeekByte() (byte, bool) {
	if r.pos >= len(r.source) {
		return 0, false
	}
	return r.source[r.pos], true
}

// ReadModule decodes source, delivering every section and instruction event
// to del in module order. filename is used for error messages only. Any
// error aborts the parse; no event is emitted for the failing item.
func ReadModule(filename string, source []byte, del Delegate) error {
	r := &reader{source: source, del: del}
	del.SetSourceCursor(r)
	if err := r.readModule(); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

func (r *reader) readModule() error {
	if len(r.source) < 8 || !bytes.Equal(r.source[0:4], magic) {
		return ErrInvalidMagicNumber
	}
	if !bytes.Equal(r.source[4:8], version) {
		return ErrInvalidVersion
	}
	r.pos = 8
	if err := r.del.BeginModule(1); err != nil {
		return err
	}

	for r.pos < len(r.source) {
		sectionID, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read section id: %w", err)
		}
		sectionSize, err := r.readU32()
		if err != nil {
			return fmt.Errorf("get size of section for id=%d: %v", sectionID, err)
		}
		contentStart := r.pos
		if contentStart+int(sectionSize) > len(r.source) {
			return fmt.Errorf("section ID %d: truncated section", sectionID)
		}

		switch sectionID {
		case SectionIDCustom:
			err = r.readCustomSection(int(sectionSize))
		case SectionIDType:
			err = r.readTypeSection()
		case SectionIDImport:
			err = r.readImportSection()
		case SectionIDFunction:
			err = r.readFunctionSection()
		case SectionIDTable:
			err = r.readTableSection()
		case SectionIDMemory:
			err = r.readMemorySection()
		case SectionIDGlobal:
			err = r.readGlobalSection()
		case SectionIDExport:
			err = r.readExportSection()
		case SectionIDStart:
			err = r.readStartSection()
		case SectionIDElement:
			err = r.readElementSection()
		case SectionIDCode:
			err = r.readCodeSection()
		case SectionIDData:
			err = r.readDataSection()
		case SectionIDDataCount:
			_, err = r.readU32()
		case SectionIDTag:
			err = r.readTagSection()
		default:
			if sectionSize != 0 {
				err = ErrInvalidSectionID
			}
		}

		if err == nil && contentStart+int(sectionSize) != r.pos {
			err = fmt.Errorf("invalid section length: expected to be %d but got %d",
				sectionSize, r.pos-contentStart)
		}
		if err != nil {
			return fmt.Errorf("section ID %d: %w", sectionID, err)
		}
	}

	if r.numFuncDecls != r.numCodeEntries {
		return fmt.Errorf("function and code section have inconsistent lengths")
	}
	return r.del.EndModule()
}

// primitive readers

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.source) {
		return 0, fmt.Errorf("unexpected end of input")
	}
	b := r.source[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if r.pos+n > len(r.source) {
		return nil, fmt.Errorf("unexpected end of input")
	}
	b := r.source[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) readU32() (uint32, error) {
	v, n, err := leb128.DecodeUint32(r.source[r.pos:])
	r.pos += n
	return v, err
}

func (r *reader) readU64() (uint64, error) {
	v, n, err := leb128.DecodeUint64(r.source[r.pos:])
	r.pos += n
	return v, err
}

func (r *reader) readS32() (int32, error) {
	v, n, err := leb128.DecodeInt32(r.source[r.pos:])
	r.pos += n
	return v, err
}

func (r *reader) readS64() (int64, error) {
	v, n, err := leb128.DecodeInt64(r.source[r.pos:])
	r.pos += n
	return v, err
}

func (r *reader) readBlockType() (wasm.BlockType, error) {
	v, n, err := leb128.DecodeInt33AsInt64(r.source[r.pos:])
	r.pos += n
	return wasm.BlockType(v), err
}

func (r *reader) readName() (string, error) {
	size, err := r.readU32()
	if err != nil {
		return "", fmt.Errorf("read size of name: %w", err)
	}
	b, err := r.readBytes(int(size))
	if err != nil {
		return "", fmt.Errorf("read name: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("name must be a valid UTF-8 string")
	}
	return string(b), nil
}

func (r *reader) readValueType() (wasm.ValueType, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if !isSupportedValueType(b) {
		return 0, fmt.Errorf("invalid value type: %#x", b)
	}
	return b, nil
}

func isSupportedValueType(b byte) bool {
	switch b {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
		wasm.ValueTypeV128, wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		return true
	}
	return false
}

func (r *reader) readRefType() (wasm.ValueType, error) {
	t, err := r.readValueType()
	if err != nil {
		return 0, err
	}
	if !wasm.IsReferenceType(t) {
		return 0, fmt.Errorf("expected reference type but got %#x", t)
	}
	return t, nil
}

func (r *reader) readValueTypes() ([]wasm.ValueType, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	types := make([]wasm.ValueType, n)
	for i := range types {
		if types[i], err = r.readValueType(); err != nil {
			return nil, err
		}
	}
	return types, nil
}

func (r *reader) readLimits() (wasm.Limits, error) {
	flags, err := r.readByte()
	if err != nil {
		return wasm.Limits{}, fmt.Errorf("read limits flags: %w", err)
	}
	if flags&^0x01 != 0 {
		return wasm.Limits{}, fmt.Errorf("invalid limits flags: %#x", flags)
	}
	var l wasm.Limits
	if l.Min, err = r.readU32(); err != nil {
		return l, fmt.Errorf("read limits minimum: %w", err)
	}
	if flags&0x01 != 0 {
		l.HasMax = true
		if l.Max, err = r.readU32(); err != nil {
			return l, fmt.Errorf("read limits maximum: %w", err)
		}
		if l.Max < l.Min {
			return l, fmt.Errorf("limits maximum %d smaller than minimum %d", l.Max, l.Min)
		}
	}
	return l, nil
}

// sections

func (r *reader) readCustomSection(size int) error {
	end := r.pos + size
	if _, err := r.readName(); err != nil {
		return err
	}
	if r.pos > end {
		return fmt.Errorf("malformed custom section name")
	}
	r.pos = end
	return nil
}

func (r *reader) readTypeSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		b, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read leading byte: %w", err)
		}
		if b != 0x60 {
			return fmt.Errorf("invalid function type leading byte: %#x != 0x60", b)
		}
		params, err := r.readValueTypes()
		if err != nil {
			return fmt.Errorf("could not read parameter types: %w", err)
		}
		results, err := r.readValueTypes()
		if err != nil {
			return fmt.Errorf("could not read result types: %w", err)
		}
		if err = r.del.OnFuncType(i, params, results); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readImportSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		module, err := r.readName()
		if err != nil {
			return fmt.Errorf("read import module: %w", err)
		}
		field, err := r.readName()
		if err != nil {
			return fmt.Errorf("read import field: %w", err)
		}
		kind, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read import kind: %w", err)
		}
		switch wasm.ExternalKind(kind) {
		case wasm.ExternalKindFunction:
			sig, err := r.readU32()
			if err != nil {
				return fmt.Errorf("read imported function signature index: %w", err)
			}
			if err = r.del.OnImportFunc(i, module, field, r.numFuncImports, sig); err != nil {
				return err
			}
			r.numFuncImports++
		case wasm.ExternalKindTable:
			elemType, err := r.readRefType()
			if err != nil {
				return fmt.Errorf("read imported table element type: %w", err)
			}
			limits, err := r.readLimits()
			if err != nil {
				return fmt.Errorf("read imported table limits: %w", err)
			}
			if err = r.del.OnImportTable(i, module, field, r.numTableImports, elemType, limits); err != nil {
				return err
			}
			r.numTableImports++
		case wasm.ExternalKindMemory:
			limits, err := r.readLimits()
			if err != nil {
				return fmt.Errorf("read imported memory limits: %w", err)
			}
			if err = r.del.OnImportMemory(i, module, field, r.numMemImports, limits); err != nil {
				return err
			}
			r.numMemImports++
		case wasm.ExternalKindGlobal:
			t, err := r.readValueType()
			if err != nil {
				return fmt.Errorf("read imported global type: %w", err)
			}
			mut, err := r.readByte()
			if err != nil {
				return fmt.Errorf("read imported global mutability: %w", err)
			}
			if err = r.del.OnImportGlobal(i, module, field, r.numGlobalImports, t, mut == 1); err != nil {
				return err
			}
			r.numGlobalImports++
		case wasm.ExternalKindTag:
			if _, err = r.readByte(); err != nil { // attribute, always 0
				return fmt.Errorf("read imported tag attribute: %w", err)
			}
			sig, err := r.readU32()
			if err != nil {
				return fmt.Errorf("read imported tag signature index: %w", err)
			}
			if err = r.del.OnImportTag(i, module, field, r.numTagImports, sig); err != nil {
				return err
			}
			r.numTagImports++
		default:
			return fmt.Errorf("invalid import kind: %d", kind)
		}
	}
	return nil
}

func (r *reader) readFunctionSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	r.numFuncDecls = count
	for i := uint32(0); i < count; i++ {
		sig, err := r.readU32()
		if err != nil {
			return fmt.Errorf("get type index: %w", err)
		}
		if err = r.del.OnFunction(r.numFuncImports+i, sig); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readTableSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		elemType, err := r.readRefType()
		if err != nil {
			return fmt.Errorf("read table element type: %w", err)
		}
		limits, err := r.readLimits()
		if err != nil {
			return fmt.Errorf("read table limits: %w", err)
		}
		if err = r.del.OnTable(r.numTableImports+i, elemType, limits); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readMemorySection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		limits, err := r.readLimits()
		if err != nil {
			return fmt.Errorf("read memory limits: %w", err)
		}
		if err = r.del.OnMemory(r.numMemImports+i, limits); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readGlobalSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		t, err := r.readValueType()
		if err != nil {
			return fmt.Errorf("read global type: %w", err)
		}
		mut, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read global mutability: %w", err)
		}
		index := r.numGlobalImports + i
		if err = r.del.BeginGlobal(index, t, mut == 1); err != nil {
			return err
		}
		if err = r.del.BeginGlobalInitExpr(index); err != nil {
			return err
		}
		if err = r.readInitExpr(); err != nil {
			return fmt.Errorf("read global init expression: %w", err)
		}
		if err = r.del.EndGlobalInitExpr(index); err != nil {
			return err
		}
		if err = r.del.EndGlobal(index); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readExportSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		name, err := r.readName()
		if err != nil {
			return fmt.Errorf("read export name: %w", err)
		}
		kind, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read export kind: %w", err)
		}
		if kind > byte(wasm.ExternalKindTag) {
			return fmt.Errorf("invalid export kind: %d", kind)
		}
		index, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read export index: %w", err)
		}
		if err = r.del.OnExport(wasm.ExternalKind(kind), i, name, index); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readStartSection() error {
	index, err := r.readU32()
	if err != nil {
		return fmt.Errorf("read start function index: %w", err)
	}
	return r.del.OnStartFunction(index)
}

func segmentMode(flags uint32) wasm.SegmentMode {
	switch {
	case flags&0x03 == 0x03:
		return wasm.SegmentModeDeclared
	case flags&0x01 == 0x01:
		return wasm.SegmentModePassive
	default:
		return wasm.SegmentModeActive
	}
}

func (r *reader) readElementSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		if err := r.readElementSegment(i); err != nil {
			return fmt.Errorf("read element: %w", err)
		}
	}
	return nil
}

func (r *reader) readElementSegment(index uint32) error {
	flags, err := r.readU32()
	if err != nil {
		return fmt.Errorf("read element flags: %w", err)
	}
	if flags > 7 {
		return fmt.Errorf("invalid element flags: %#x", flags)
	}
	mode := segmentMode(flags)

	var tableIndex uint32
	if flags&0x02 != 0 && mode == wasm.SegmentModeActive {
		if tableIndex, err = r.readU32(); err != nil {
			return fmt.Errorf("get table index: %w", err)
		}
	}
	if err = r.del.BeginElemSegment(index, tableIndex, mode); err != nil {
		return err
	}

	if mode == wasm.SegmentModeActive {
		if err = r.del.BeginElemSegmentInitExpr(index); err != nil {
			return err
		}
		if err = r.readInitExpr(); err != nil {
			return fmt.Errorf("read expr for offset: %w", err)
		}
		if err = r.del.EndElemSegmentInitExpr(index); err != nil {
			return err
		}
	}

	// The element type field is present unless flags are 0 or 4: an element
	// kind byte for index-vector segments, a reference type otherwise.
	if flags&0x03 != 0 {
		if flags&0x04 != 0 {
			if _, err = r.readRefType(); err != nil {
				return err
			}
		} else {
			kind, err := r.readByte()
			if err != nil {
				return fmt.Errorf("read element kind: %w", err)
			}
			if kind != 0 {
				return fmt.Errorf("invalid element kind: %#x", kind)
			}
		}
	}

	n, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	if err = r.del.OnElemSegmentElemExprCount(index, n); err != nil {
		return err
	}

	if flags&0x04 != 0 {
		// vector of constant element expressions
		for i := uint32(0); i < n; i++ {
			op, err := r.readByte()
			if err != nil {
				return fmt.Errorf("read element expression: %w", err)
			}
			switch wasm.Opcode(op) {
			case wasm.OpcodeRefNull:
				t, err := r.readRefType()
				if err != nil {
					return err
				}
				if err = r.del.OnElemSegmentRefNull(index, t); err != nil {
					return err
				}
			case wasm.OpcodeRefFunc:
				f, err := r.readU32()
				if err != nil {
					return fmt.Errorf("read function index: %w", err)
				}
				if err = r.del.OnElemSegmentRefFunc(index, f); err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid element expression opcode: %#x", op)
			}
			end, err := r.readByte()
			if err != nil || wasm.Opcode(end) != wasm.OpcodeEnd {
				return fmt.Errorf("element expression has not been terminated")
			}
		}
	} else {
		// vector of function indices
		for i := uint32(0); i < n; i++ {
			f, err := r.readU32()
			if err != nil {
				return fmt.Errorf("read function index: %w", err)
			}
			if err = r.del.OnElemSegmentRefFunc(index, f); err != nil {
				return err
			}
		}
	}
	return r.del.EndElemSegment(index)
}

func (r *reader) readCodeSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	r.numCodeEntries = count
	for i := uint32(0); i < count; i++ {
		if err := r.readFunctionBody(r.numFuncImports + i); err != nil {
			return fmt.Errorf("read %d-th code segment: %w", i, err)
		}
	}
	return nil
}

func (r *reader) readFunctionBody(index uint32) error {
	bodySize, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get the size of code: %w", err)
	}
	bodyEnd := r.pos + int(bodySize)
	if bodyEnd > len(r.source) {
		return fmt.Errorf("truncated function body")
	}
	if err = r.del.BeginFunctionBody(index, bodySize); err != nil {
		return err
	}

	declCount, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get the size locals: %v", err)
	}
	for i := uint32(0); i < declCount; i++ {
		n, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read n of locals: %v", err)
		}
		t, err := r.readValueType()
		if err != nil {
			return fmt.Errorf("read type of local: %v", err)
		}
		if err = r.del.OnLocalDecl(i, n, t); err != nil {
			return err
		}
	}

	if err = r.del.OnStartReadInstructions(); err != nil {
		return err
	}
	instrStart := r.pos

	// The preprocess pass and the emission pass must touch the same byte
	// positions, so the body is decoded twice from the same offset.
	if err = r.del.OnStartPreprocess(); err != nil {
		return err
	}
	if err = r.readInstructions(bodyEnd); err != nil {
		return err
	}
	if err = r.del.OnEndPreprocess(); err != nil {
		return err
	}

	r.pos = instrStart
	if err = r.readInstructions(bodyEnd); err != nil {
		return err
	}
	return r.del.EndFunctionBody(index)
}

// readInstructions dispatches instruction events until the body boundary.
func (r *reader) readInstructions(end int) error {
	for r.pos < end {
		if err := r.readInstruction(); err != nil {
			return err
		}
	}
	if r.pos != end {
		return fmt.Errorf("function body overruns its declared size")
	}
	return nil
}

// readInitExpr dispatches the instructions of one init expression,
// terminated by the end opcode at depth zero.
func (r *reader) readInitExpr() error {
	depth := 0
	for {
		b, ok := r.PeekByte()
		if !ok {
			return fmt.Errorf("unexpected end of input")
		}
		switch wasm.Opcode(b) {
		case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf, wasm.OpcodeTry:
			depth++
		case wasm.OpcodeEnd:
			depth--
		}
		if err := r.readInstruction(); err != nil {
			return err
		}
		if depth < 0 {
			return nil
		}
	}
}

func (r *reader) readDataSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		if err := r.readDataSegment(i); err != nil {
			return fmt.Errorf("read data segment: %w", err)
		}
	}
	return nil
}

func (r *reader) readDataSegment(index uint32) error {
	flags, err := r.readU32()
	if err != nil {
		return fmt.Errorf("read data flags: %w", err)
	}
	if flags > 2 {
		return fmt.Errorf("invalid data flags: %#x", flags)
	}

	mode := wasm.SegmentModeActive
	if flags == 1 {
		mode = wasm.SegmentModePassive
	}
	var memIndex uint32
	if flags == 2 {
		if memIndex, err = r.readU32(); err != nil {
			return fmt.Errorf("get memory index: %w", err)
		}
	}
	if err = r.del.BeginDataSegment(index, memIndex, mode); err != nil {
		return err
	}
	if mode == wasm.SegmentModeActive {
		if err = r.del.BeginDataSegmentInitExpr(index); err != nil {
			return err
		}
		if err = r.readInitExpr(); err != nil {
			return fmt.Errorf("read expr for offset: %w", err)
		}
		if err = r.del.EndDataSegmentInitExpr(index); err != nil {
			return err
		}
	}

	size, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of data: %w", err)
	}
	data, err := r.readBytes(int(size))
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}
	if err = r.del.OnDataSegmentData(index, data); err != nil {
		return err
	}
	return r.del.EndDataSegment(index)
}

func (r *reader) readTagSection() error {
	count, err := r.readU32()
	if err != nil {
		return fmt.Errorf("get size of vector: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		attr, err := r.readByte()
		if err != nil {
			return fmt.Errorf("read tag attribute: %w", err)
		}
		if attr != 0 {
			return fmt.Errorf("invalid tag attribute: %d", attr)
		}
		sig, err := r.readU32()
		if err != nil {
			return fmt.Errorf("read tag signature index: %w", err)
		}
		if err = r.del.OnTagType(r.numTagImports+i, sig); err != nil {
			return err
		}
	}
	return nil
}
