package bytecode

import (
	"errors"
	"fmt"
	"math"

	"github.com/kulcsaradam/walrus/wasm"
	"github.com/kulcsaradam/walrus/wasm/binary"
)

// ErrStackSizeLimit is returned when a single function needs more value
// stack than a record's uint16 slot offsets can address.
var ErrStackSizeLimit = errors.New("too many stack usage")

const noLocalIndex = math.MaxUint32

// vmStackEntry is the compile-time shadow of one value on the value stack.
// pos is the effective position: for a direct local reference it aliases
// the local's home slot, otherwise it equals nonOptimizedPos, the position
// a freshly pushed value would hold.
type vmStackEntry struct {
	valueType       wasm.ValueType
	pos             uint32
	nonOptimizedPos uint32
	localIndex      uint32
}

func (e *vmStackEntry) hasLocalIndex() bool { return e.localIndex != noLocalIndex }

func (e *vmStackEntry) allocatedSize() uint32 {
	return wasm.StackAllocatedSize(e.valueType)
}

// localVariableUsage is one preprocess-pass liveness record: the source
// byte range [startPos, endPos] during which one particular push of a
// local is live on the VM stack.
type localVariableUsage struct {
	localIndex    uint32
	startPos      int
	endPos        int
	pushCount     uint32
	hasWriteUsage bool
}

const usageOpen = math.MaxInt

type blockKind byte

const (
	blockIfElse blockKind = iota
	blockLoop
	blockBlock
	blockTryCatch
)

type pendingJumpKind byte

const (
	pendingJump pendingJumpKind = iota
	pendingJumpIf
	pendingBrTable
)

// pendingJumpInfo is one forward branch whose target is patched when the
// owning block closes. pos is the record position for jumps, or the slot
// position for br_table entries.
type pendingJumpInfo struct {
	kind pendingJumpKind
	pos  int
}

// blockInfo is one open structured-control block.
type blockInfo struct {
	kind             blockKind
	sig              wasm.BlockType
	pos              int // entry bytecode offset
	vmStack          []vmStackEntry
	stackSizeOnEntry uint32
	restoreAtEnd     bool
	emissionStopped  bool
	pendingJumps     []pendingJumpInfo
}

// catchPendingInfo is a catch handler awaiting its try block's end.
type catchPendingInfo struct {
	blockDepth int
	tryStart   int
	tryEnd     int
	catchStart int
	tagIndex   uint32
}

// Compiler consumes the binary reader's event stream, assembles the
// ParsingResult, and lowers every function body to bytecode in two passes:
// a preprocess pass that records local-variable liveness into a discarded
// scratch buffer, then the emission pass. Init expressions are lowered in a
// single emission pass.
type Compiler struct {
	result *wasm.ParsingResult
	cursor binary.SourceCursor

	fn               *wasm.ModuleFunction
	fnType           *wasm.FunctionType
	code             *writer
	localTypes       []wasm.ValueType
	initialStackSize uint32
	stackSize        uint32
	requiredStack    uint32

	vmStack      []vmStackEntry
	blockStack   []*blockInfo
	catchPending []catchPendingInfo
	catchAccum   []wasm.CatchInfo

	inPreprocess bool
	localUsage   []localVariableUsage

	continueGenerate bool
	skipNesting      int

	elemTableIndex  uint32
	elemMode        wasm.SegmentMode
	elemInitExpr    *wasm.ModuleFunction
	elemFuncIndices []uint32

	dataMode     wasm.SegmentMode
	dataMemIndex uint32
	dataInitExpr *wasm.ModuleFunction
	dataBytes    []byte
}

var _ binary.Delegate = (*Compiler)(nil)

// NewCompiler returns a compiler producing a fresh ParsingResult.
func NewCompiler() *Compiler {
	return &Compiler{result: wasm.NewParsingResult(), continueGenerate: true}
}

// Result returns the populated ParsingResult. Only meaningful after
// binary.ReadModule returned without error.
func (c *Compiler) Result() *wasm.ParsingResult { return c.result }

// SetSourceCursor implements binary.Delegate.
func (c *Compiler) SetSourceCursor(cur binary.SourceCursor) { c.cursor = cur }

func (c *Compiler) sourceOffset() int {
	if c.cursor == nil {
		return 0
	}
	return c.cursor.Offset()
}

// VM stack discipline

func (c *Compiler) pushStack(t wasm.ValueType) (uint32, error) {
	pos := c.stackSize
	return pos, c.pushStackAt(t, pos, noLocalIndex)
}

func (c *Compiler) pushStackAt(t wasm.ValueType, pos, localIndex uint32) error {
	if c.inPreprocess && localIndex != noLocalIndex {
		var pushCount uint32
		for i := range c.vmStack {
			if c.vmStack[i].localIndex == localIndex {
				pushCount++
			}
		}
		c.localUsage = append(c.localUsage, localVariableUsage{
			localIndex: localIndex,
			startPos:   c.sourceOffset(),
			endPos:     usageOpen,
			pushCount:  pushCount,
		})
	}

	c.vmStack = append(c.vmStack, vmStackEntry{
		valueType:       t,
		pos:             pos,
		nonOptimizedPos: c.stackSize,
		localIndex:      localIndex,
	})
	c.stackSize += wasm.StackAllocatedSize(t)
	if c.stackSize > MaxStackSize {
		return ErrStackSizeLimit
	}
	if c.stackSize > c.requiredStack {
		c.requiredStack = c.stackSize
	}
	return nil
}

func (c *Compiler) popStackInfo() (vmStackEntry, error) {
	if len(c.vmStack) == 0 {
		return vmStackEntry{}, fmt.Errorf("value stack underflow")
	}
	e := c.vmStack[len(c.vmStack)-1]
	c.stackSize -= e.allocatedSize()
	c.vmStack = c.vmStack[:len(c.vmStack)-1]

	if c.inPreprocess && e.hasLocalIndex() {
		c.closeNearestUsage(e.localIndex)
	}
	return e, nil
}

// closeNearestUsage sets the end position of the most recent still-open
// usage record of the given local.
func (c *Compiler) closeNearestUsage(localIndex uint32) {
	for i := len(c.localUsage) - 1; i >= 0; i-- {
		u := &c.localUsage[i]
		if u.localIndex == localIndex && u.endPos == usageOpen {
			u.endPos = c.sourceOffset()
			return
		}
	}
}

func (c *Compiler) popStack() (uint32, error) {
	e, err := c.popStackInfo()
	return e.pos, err
}

func (c *Compiler) popStackTyped(t wasm.ValueType) (uint32, error) {
	if len(c.vmStack) == 0 {
		return 0, fmt.Errorf("value stack underflow")
	}
	if top := c.vmStack[len(c.vmStack)-1].valueType; top != t {
		return 0, fmt.Errorf("type mismatch: expected %s but got %s",
			wasm.ValueTypeName(t), wasm.ValueTypeName(top))
	}
	return c.popStack()
}

func (c *Compiler) peekStack() (*vmStackEntry, error) {
	if len(c.vmStack) == 0 {
		return nil, fmt.Errorf("value stack underflow")
	}
	return &c.vmStack[len(c.vmStack)-1], nil
}

// function lifecycle

func (c *Compiler) beginFunction(fn *wasm.ModuleFunction) {
	c.fn = fn
	c.fnType = fn.Type
	c.localTypes = append([]wasm.ValueType(nil), fn.Type.Params...)
	c.initialStackSize = fn.Type.ParamStackSize()
	c.stackSize = c.initialStackSize
	c.requiredStack = c.initialStackSize
	c.code = &writer{}
	c.vmStack = nil
	c.blockStack = nil
	c.catchPending = nil
	c.catchAccum = nil
	c.localUsage = nil
	c.continueGenerate = true
	c.skipNesting = 0
}

func (c *Compiler) endFunction() {
	c.fn.ByteCode = c.code.bytes()
	if c.requiredStack > c.fn.RequiredStackSize {
		c.fn.RequiredStackSize = c.requiredStack
	}
	c.fn.CatchInfo = c.catchAccum
	c.fn = nil
	c.fnType = nil
	c.vmStack = nil
	c.continueGenerate = true
}

// BeginFunctionBody implements binary.Delegate.
func (c *Compiler) BeginFunctionBody(index, size uint32) error {
	if c.fn != nil {
		return fmt.Errorf("nested function body")
	}
	if int(index) >= len(c.result.Functions) {
		return fmt.Errorf("invalid function index: %d", index)
	}
	c.beginFunction(c.result.Functions[index])
	return nil
}

// OnLocalDecl implements binary.Delegate.
func (c *Compiler) OnLocalDecl(declIndex, count uint32, t wasm.ValueType) error {
	for ; count > 0; count-- {
		c.fn.Locals = append(c.fn.Locals, t)
		c.localTypes = append(c.localTypes, t)
		sz := wasm.StackAllocatedSize(t)
		c.initialStackSize += sz
		c.stackSize += sz
		c.fn.RequiredStackSizeDueToLocal += sz
		if c.stackSize > MaxStackSize {
			return ErrStackSizeLimit
		}
	}
	if c.stackSize > c.requiredStack {
		c.requiredStack = c.stackSize
	}
	return nil
}

// OnStartReadInstructions implements binary.Delegate.
func (c *Compiler) OnStartReadInstructions() error { return nil }

// OnStartPreprocess implements binary.Delegate.
func (c *Compiler) OnStartPreprocess() error {
	c.inPreprocess = true
	c.localUsage = nil
	return nil
}

// OnEndPreprocess discards everything the preprocess pass produced except
// the liveness records: the scratch bytecode, the catch rows, and the whole
// block/stack state.
func (c *Compiler) OnEndPreprocess() error {
	c.inPreprocess = false
	c.code.reset()
	c.catchAccum = nil
	c.blockStack = nil
	c.catchPending = nil
	c.vmStack = nil
	c.stackSize = c.initialStackSize
	c.continueGenerate = true
	c.skipNesting = 0
	return nil
}

// EndFunctionBody implements binary.Delegate.
func (c *Compiler) EndFunctionBody(index uint32) error {
	c.endFunction()
	return nil
}

// emission suspension

func (c *Compiler) emitting() bool { return c.continueGenerate }

// stopEmission suspends bytecode generation until the innermost open block
// ends. Outside any block the remaining VM stack is discarded instead.
func (c *Compiler) stopEmission() {
	if !c.continueGenerate {
		return
	}
	if len(c.blockStack) > 0 {
		b := c.blockStack[len(c.blockStack)-1]
		b.restoreAtEnd = true
		b.emissionStopped = true
	} else {
		for len(c.vmStack) > 0 {
			c.popStackInfo()
		}
	}
	c.continueGenerate = false
	c.skipNesting = 0
}

// locals

func (c *Compiler) localOffsetAndSize(localIndex uint32) (offset, size uint32) {
	for i := uint32(0); i < localIndex; i++ {
		offset += wasm.StackAllocatedSize(c.localTypes[i])
	}
	return offset, wasm.StackAllocatedSize(c.localTypes[localIndex])
}

func (c *Compiler) emitMoveIfNeeds(src, dst uint32, t wasm.ValueType) {
	if src != dst {
		c.code.emitMove(wasm.ValueSize(t), StackOffset(src), StackOffset(dst))
	}
}

func (c *Compiler) updateWriteUsageOfLocal(localIndex uint32) {
	if !c.inPreprocess {
		return
	}
	pos := c.sourceOffset()
	for i := range c.localUsage {
		u := &c.localUsage[i]
		if u.localIndex == localIndex && u.startPos <= pos && pos <= u.endPos {
			u.hasWriteUsage = true
		}
	}
}

// OnLocalGet implements binary.Delegate. When no write to the local occurs
// inside any usage range covering this position, the pushed entry directly
// references the local's home slot and no move is emitted.
func (c *Compiler) OnLocalGet(localIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(localIndex) >= len(c.localTypes) {
		return fmt.Errorf("invalid local index: %d", localIndex)
	}
	home, _ := c.localOffsetAndSize(localIndex)
	t := c.localTypes[localIndex]

	canUseDirectReference := true
	pos := c.sourceOffset()
	for i := range c.localUsage {
		u := &c.localUsage[i]
		if u.localIndex == localIndex && u.startPos <= pos && pos <= u.endPos && u.hasWriteUsage {
			canUseDirectReference = false
			break
		}
	}

	if canUseDirectReference {
		return c.pushStackAt(t, home, localIndex)
	}
	fresh := c.stackSize
	if err := c.pushStackAt(t, fresh, localIndex); err != nil {
		return err
	}
	c.emitMoveIfNeeds(home, fresh, t)
	return nil
}

// OnLocalSet implements binary.Delegate.
func (c *Compiler) OnLocalSet(localIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(localIndex) >= len(c.localTypes) {
		return fmt.Errorf("invalid local index: %d", localIndex)
	}
	home, _ := c.localOffsetAndSize(localIndex)
	src, err := c.popStackInfo()
	if err != nil {
		return err
	}
	if src.valueType != c.localTypes[localIndex] {
		return fmt.Errorf("type mismatch on local.set %d", localIndex)
	}
	c.emitMoveIfNeeds(src.pos, home, src.valueType)
	c.updateWriteUsageOfLocal(localIndex)
	return nil
}

// OnLocalTee implements binary.Delegate.
func (c *Compiler) OnLocalTee(localIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(localIndex) >= len(c.localTypes) {
		return fmt.Errorf("invalid local index: %d", localIndex)
	}
	t := c.localTypes[localIndex]
	home, _ := c.localOffsetAndSize(localIndex)
	top, err := c.peekStack()
	if err != nil {
		return err
	}
	if top.valueType != t {
		return fmt.Errorf("type mismatch on local.tee %d", localIndex)
	}
	c.emitMoveIfNeeds(top.pos, home, t)
	c.updateWriteUsageOfLocal(localIndex)
	return nil
}

// globals

// OnGlobalGet implements binary.Delegate.
func (c *Compiler) OnGlobalGet(globalIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(globalIndex) >= len(c.result.Globals) {
		return fmt.Errorf("invalid global index: %d", globalIndex)
	}
	t := c.result.Globals[globalIndex].Type
	pos, err := c.pushStack(t)
	if err != nil {
		return err
	}
	c.code.emitGlobalGet(wasm.StackAllocatedSize(t), StackOffset(pos), globalIndex)
	return nil
}

// OnGlobalSet implements binary.Delegate.
func (c *Compiler) OnGlobalSet(globalIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(globalIndex) >= len(c.result.Globals) {
		return fmt.Errorf("invalid global index: %d", globalIndex)
	}
	t := c.result.Globals[globalIndex].Type
	pos, err := c.popStackTyped(t)
	if err != nil {
		return err
	}
	c.code.emitGlobalSet(wasm.StackAllocatedSize(t), StackOffset(pos), globalIndex)
	return nil
}

// constants

// OnI32Const implements binary.Delegate.
func (c *Compiler) OnI32Const(value uint32) error {
	if !c.emitting() {
		return nil
	}
	pos, err := c.pushStack(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.emitConst32(StackOffset(pos), value)
	return nil
}

// OnI64Const implements binary.Delegate.
func (c *Compiler) OnI64Const(value uint64) error {
	if !c.emitting() {
		return nil
	}
	pos, err := c.pushStack(wasm.ValueTypeI64)
	if err != nil {
		return err
	}
	c.code.emitConst64(StackOffset(pos), value)
	return nil
}

// OnF32Const implements binary.Delegate.
func (c *Compiler) OnF32Const(value uint32) error {
	if !c.emitting() {
		return nil
	}
	pos, err := c.pushStack(wasm.ValueTypeF32)
	if err != nil {
		return err
	}
	c.code.emitConst32(StackOffset(pos), value)
	return nil
}

// OnF64Const implements binary.Delegate.
func (c *Compiler) OnF64Const(value uint64) error {
	if !c.emitting() {
		return nil
	}
	pos, err := c.pushStack(wasm.ValueTypeF64)
	if err != nil {
		return err
	}
	c.code.emitConst64(StackOffset(pos), value)
	return nil
}

// OnV128Const implements binary.Delegate.
func (c *Compiler) OnV128Const(value []byte) error {
	if !c.emitting() {
		return nil
	}
	pos, err := c.pushStack(wasm.ValueTypeV128)
	if err != nil {
		return err
	}
	c.code.emitConst128(StackOffset(pos), value)
	return nil
}

// numeric operations

// mergeSuccessor reports whether the next source opcode is a conditional
// branch or select, making the current comparison eligible for fusion.
func (c *Compiler) mergeSuccessor() bool {
	b, ok := c.cursor.PeekByte()
	if !ok {
		return false
	}
	switch wasm.Opcode(b) {
	case wasm.OpcodeIf, wasm.OpcodeBrIf, wasm.OpcodeSelect, wasm.OpcodeTypedSelect:
		return true
	}
	return false
}

// OnBinary implements binary.Delegate.
func (c *Compiler) OnBinary(op wasm.Opcode) error {
	if !c.emitting() {
		return nil
	}
	info := op.Info()
	src1, err := c.popStackTyped(info.ParamType(1))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	src0, err := c.popStackTyped(info.ParamType(0))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	dst, err := c.pushStack(info.ResultType())
	if err != nil {
		return err
	}
	merge := op.IsCompare() && c.mergeSuccessor()
	c.code.emitBinary(op, merge, StackOffset(src0), StackOffset(src1), StackOffset(dst))
	return nil
}

// OnUnary implements binary.Delegate. Reinterpret casts lower to a move
// between slots, never a real operation.
func (c *Compiler) OnUnary(op wasm.Opcode) error {
	if !c.emitting() {
		return nil
	}
	info := op.Info()
	src, err := c.popStackTyped(info.ParamType(0))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	dst, err := c.pushStack(info.ResultType())
	if err != nil {
		return err
	}
	switch op {
	case wasm.OpcodeI32ReinterpretF32, wasm.OpcodeI64ReinterpretF64,
		wasm.OpcodeF32ReinterpretI32, wasm.OpcodeF64ReinterpretI64:
		c.emitMoveIfNeeds(src, dst, info.ResultType())
	default:
		merge := op.IsCompare() && c.mergeSuccessor()
		c.code.emitUnary(op, merge, StackOffset(src), StackOffset(dst))
	}
	return nil
}

// OnTernary implements binary.Delegate.
func (c *Compiler) OnTernary(op wasm.Opcode) error {
	if !c.emitting() {
		return nil
	}
	info := op.Info()
	src2, err := c.popStackTyped(info.ParamType(2))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	src1, err := c.popStackTyped(info.ParamType(1))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	src0, err := c.popStackTyped(info.ParamType(0))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	dst, err := c.pushStack(info.ResultType())
	if err != nil {
		return err
	}
	c.code.emitTernary(op, StackOffset(src0), StackOffset(src1), StackOffset(src2), StackOffset(dst))
	return nil
}

// OnDrop implements binary.Delegate.
func (c *Compiler) OnDrop() error {
	if !c.emitting() {
		return nil
	}
	_, err := c.popStack()
	return err
}

// OnSelect implements binary.Delegate.
func (c *Compiler) OnSelect(resultCount uint32, resultTypes []wasm.ValueType) error {
	if !c.emitting() {
		return nil
	}
	if resultCount > 1 {
		return fmt.Errorf("select with %d results is not supported", resultCount)
	}
	cond, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	top, err := c.peekStack()
	if err != nil {
		return err
	}
	t := top.valueType
	if resultCount == 1 && resultTypes[0] != t {
		return fmt.Errorf("type mismatch on select")
	}
	src1, err := c.popStack()
	if err != nil {
		return err
	}
	src0, err := c.popStackTyped(t)
	if err != nil {
		return err
	}
	dst, err := c.pushStack(t)
	if err != nil {
		return err
	}
	c.code.emitSelect(StackOffset(cond), wasm.ValueSize(t),
		StackOffset(src0), StackOffset(src1), StackOffset(dst))
	return nil
}

// calls

// OnCall implements binary.Delegate.
func (c *Compiler) OnCall(funcIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(funcIndex) >= len(c.result.Functions) {
		return fmt.Errorf("invalid function index: %d", funcIndex)
	}
	ft := c.result.Functions[funcIndex].Type
	n := len(ft.Params) + len(ft.Results)
	c.code.op(OpCall)
	c.code.u32(funcIndex)
	c.code.u16(uint16(n))
	offsetsPos := c.code.size()
	c.code.expandBy(2 * n)
	return c.fillCallOffsets(ft, offsetsPos)
}

// OnCallIndirect implements binary.Delegate.
func (c *Compiler) OnCallIndirect(sigIndex, tableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(sigIndex) >= len(c.result.FunctionTypes) {
		return fmt.Errorf("invalid type index: %d", sigIndex)
	}
	selector, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	ft := c.result.FunctionTypes[sigIndex]
	n := len(ft.Params) + len(ft.Results)
	c.code.op(OpCallIndirect)
	c.code.u16(StackOffset(selector))
	c.code.u32(tableIndex)
	c.code.u32(sigIndex)
	c.code.u16(uint16(n))
	offsetsPos := c.code.size()
	c.code.expandBy(2 * n)
	return c.fillCallOffsets(ft, offsetsPos)
}

// fillCallOffsets pops each argument into its slot-array position and
// pushes every result after all arguments are gone.
func (c *Compiler) fillCallOffsets(ft *wasm.FunctionType, offsetsPos int) error {
	np := len(ft.Params)
	for i := 0; i < np; i++ {
		off, err := c.popStackTyped(ft.Params[np-1-i])
		if err != nil {
			return err
		}
		c.code.patchU16(offsetsPos+2*(np-1-i), StackOffset(off))
	}
	for i, t := range ft.Results {
		pos, err := c.pushStack(t)
		if err != nil {
			return err
		}
		c.code.patchU16(offsetsPos+2*(np+i), StackOffset(pos))
	}
	return nil
}

// structured control flow

func (c *Compiler) typeAt(sig wasm.BlockType) (*wasm.FunctionType, error) {
	if int(sig.Index()) >= len(c.result.FunctionTypes) {
		return nil, fmt.Errorf("invalid block type index: %d", sig.Index())
	}
	return c.result.FunctionTypes[sig.Index()], nil
}

// pushBlock opens a structured block. When the signature is a function
// type with parameters, every parameter entry currently holding a direct
// local reference is first re-homed to its non-optimized position so that
// branches into the block agree on slot locations.
func (c *Compiler) pushBlock(kind blockKind, sig wasm.BlockType) error {
	stackSizeOnEntry := c.stackSize
	if sig.IsIndex() {
		ft, err := c.typeAt(sig)
		if err != nil {
			return err
		}
		n := len(ft.Params)
		if n > len(c.vmStack) {
			return fmt.Errorf("value stack underflow on block entry")
		}
		for k := 0; k < n; k++ {
			e := &c.vmStack[len(c.vmStack)-1-k]
			if e.hasLocalIndex() {
				c.emitMoveIfNeeds(e.pos, e.nonOptimizedPos, e.valueType)
				e.pos = e.nonOptimizedPos
				if c.inPreprocess {
					c.closeNearestUsage(e.localIndex)
				}
				e.localIndex = noLocalIndex
			}
		}
	}

	b := &blockInfo{
		kind:             kind,
		sig:              sig,
		pos:              c.code.size(),
		vmStack:          append([]vmStackEntry(nil), c.vmStack...),
		stackSizeOnEntry: stackSizeOnEntry,
	}
	c.blockStack = append(c.blockStack, b)
	return nil
}

func (c *Compiler) topBlock() *blockInfo {
	return c.blockStack[len(c.blockStack)-1]
}

func (c *Compiler) blockAt(depth uint32) *blockInfo {
	return c.blockStack[len(c.blockStack)-1-int(depth)]
}

// OnBlock implements binary.Delegate.
func (c *Compiler) OnBlock(sig wasm.BlockType) error {
	if !c.emitting() {
		c.skipNesting++
		return nil
	}
	return c.pushBlock(blockBlock, sig)
}

// OnLoop implements binary.Delegate. The block's entry offset is the loop
// header; branches to the loop become backward jumps to it.
func (c *Compiler) OnLoop(sig wasm.BlockType) error {
	if !c.emitting() {
		c.skipNesting++
		return nil
	}
	return c.pushBlock(blockLoop, sig)
}

// OnTry implements binary.Delegate.
func (c *Compiler) OnTry(sig wasm.BlockType) error {
	if !c.emitting() {
		c.skipNesting++
		return nil
	}
	return c.pushBlock(blockTryCatch, sig)
}

// OnIf implements binary.Delegate.
func (c *Compiler) OnIf(sig wasm.BlockType) error {
	if !c.emitting() {
		c.skipNesting++
		return nil
	}
	cond, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	if err := c.pushBlock(blockIfElse, sig); err != nil {
		return err
	}
	b := c.topBlock()
	b.pendingJumps = append(b.pendingJumps, pendingJumpInfo{pendingJumpIf, b.pos})
	c.code.emitJumpIf(false, StackOffset(cond), 0)
	return nil
}

func (c *Compiler) restoreStackTo(b *blockInfo) error {
	if len(b.vmStack) <= len(c.vmStack) {
		diff := len(c.vmStack) - len(b.vmStack)
		for i := 0; i < diff; i++ {
			if _, err := c.popStackInfo(); err != nil {
				return err
			}
		}
	}
	c.vmStack = append(c.vmStack[:0], b.vmStack...)
	c.stackSize = b.stackSizeOnEntry
	return nil
}

// restoreStackPartOfBlockEnd rewinds the VM stack the way a block boundary
// (else, catch) requires: a full snapshot restore when the block must
// agree across arms, otherwise popping the declared results.
func (c *Compiler) restoreStackPartOfBlockEnd(b *blockInfo) error {
	if b.restoreAtEnd {
		return c.restoreStackTo(b)
	}
	if b.sig.IsIndex() {
		ft, err := c.typeAt(b.sig)
		if err != nil {
			return err
		}
		if len(ft.Params) > 0 {
			return c.restoreStackTo(b)
		}
		for i := len(ft.Results) - 1; i >= 0; i-- {
			if _, err := c.popStackTyped(ft.Results[i]); err != nil {
				return err
			}
		}
		return nil
	}
	if !b.sig.IsVoid() {
		_, err := c.popStackTyped(b.sig.ValueType())
		return err
	}
	return nil
}

// dropSizeForBranch computes the drop descriptor of a branch to the given
// depth: the bytes of VM-stack entries above the target's snapshot, and
// the byte size of the result (or, for loops, parameter) slice that must
// be preserved across the branch.
func (c *Compiler) dropSizeForBranch(depth uint32) (drop, keep uint32, err error) {
	if int(depth) < len(c.blockStack) {
		b := c.blockAt(depth)
		if len(b.vmStack) < len(c.vmStack) {
			for i := len(b.vmStack); i < len(c.vmStack); i++ {
				drop += c.vmStack[i].allocatedSize()
			}
			if b.kind == blockLoop {
				if b.sig.IsIndex() {
					ft, terr := c.typeAt(b.sig)
					if terr != nil {
						return 0, 0, terr
					}
					drop += ft.ParamStackSize()
					keep += ft.ParamStackSize()
				}
			} else {
				if b.sig.IsIndex() {
					ft, terr := c.typeAt(b.sig)
					if terr != nil {
						return 0, 0, terr
					}
					for _, t := range ft.Results {
						keep += wasm.StackAllocatedSize(t)
					}
				} else if !b.sig.IsVoid() {
					keep += wasm.StackAllocatedSize(b.sig.ValueType())
				}
			}
		}
	} else if len(c.blockStack) > 0 {
		b := c.blockStack[0]
		for i := len(b.vmStack); i < len(c.vmStack); i++ {
			drop += c.vmStack[i].allocatedSize()
		}
	}
	return drop, keep, nil
}

// emitMovesForDrop copies each kept value from its current effective slot
// to the target's expected slot. The copies run from the deepest kept
// value upward to protect newer values from being overwritten.
func (c *Compiler) emitMovesForDrop(drop, keep uint32) {
	remain := int64(keep)
	srcIdx := len(c.vmStack) - 1
	for {
		if srcIdx < 0 {
			return
		}
		remain -= int64(c.vmStack[srcIdx].allocatedSize())
		if remain == 0 {
			break
		}
		if remain < 0 {
			// stack mismatch, no code needed
			return
		}
		srcIdx--
	}

	remain = int64(drop)
	dstIdx := len(c.vmStack) - 1
	for {
		if dstIdx < 0 {
			return
		}
		remain -= int64(c.vmStack[dstIdx].allocatedSize())
		if remain == 0 {
			break
		}
		if remain < 0 {
			return
		}
		dstIdx--
	}

	remain = int64(keep)
	for k := 0; ; k++ {
		src := &c.vmStack[srcIdx+k]
		dst := &c.vmStack[dstIdx+k]
		c.emitMoveIfNeeds(src.pos, dst.nonOptimizedPos, src.valueType)
		remain -= int64(src.allocatedSize())
		if remain <= 0 {
			return
		}
	}
}

// keepSubResultsIfNeeds forces a snapshot restore at block end when the
// block produces results, moving the current arm's results into the slots
// every arm agrees on.
func (c *Compiler) keepSubResultsIfNeeds() error {
	b := c.topBlock()
	needs := false
	if b.sig.IsIndex() {
		ft, err := c.typeAt(b.sig)
		if err != nil {
			return err
		}
		needs = len(ft.Results) > 0
	} else {
		needs = !b.sig.IsVoid()
	}
	if !needs {
		return nil
	}
	b.restoreAtEnd = true
	drop, keep, err := c.dropSizeForBranch(0)
	if err != nil {
		return err
	}
	if keep > 0 {
		c.emitMovesForDrop(drop, keep)
	}
	return nil
}

// OnElse implements binary.Delegate.
func (c *Compiler) OnElse() error {
	if !c.emitting() {
		if c.skipNesting > 0 {
			return nil
		}
		c.continueGenerate = true
	}
	// until the else is seen, the if's own JumpIf at the block's pos is the first pending jump
	if len(c.blockStack) == 0 || c.topBlock().kind != blockIfElse ||
		len(c.topBlock().pendingJumps) == 0 ||
		c.topBlock().pendingJumps[0].kind != pendingJumpIf ||
		c.topBlock().pendingJumps[0].pos != c.topBlock().pos {
		return fmt.Errorf("else without matching if")
	}
	if err := c.keepSubResultsIfNeeds(); err != nil {
		return err
	}
	b := c.topBlock()
	b.pendingJumps = b.pendingJumps[1:]

	if !b.emissionStopped {
		b.pendingJumps = append(b.pendingJumps, pendingJumpInfo{pendingJump, c.code.size()})
		c.code.emitJump(0)
	}
	b.emissionStopped = false

	if err := c.restoreStackPartOfBlockEnd(b); err != nil {
		return err
	}
	c.code.patchJumpIfOffset(b.pos, c.code.size())
	return nil
}

func (c *Compiler) generateEndCode(clearStack bool) error {
	results := c.fnType.Results
	if len(results) > len(c.vmStack) {
		// error case of a global init expression
		return nil
	}
	_, offsetsPos := c.code.emitEnd(len(results))
	for i := 0; i < len(results); i++ {
		e := &c.vmStack[len(c.vmStack)-1-i]
		c.code.patchU16(offsetsPos+2*(len(results)-1-i), StackOffset(e.pos))
	}
	if clearStack {
		for i := 0; i < len(results); i++ {
			if _, err := c.popStackInfo(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Compiler) validateFunctionResults() error {
	results := c.fnType.Results
	if len(results) > len(c.vmStack) {
		return fmt.Errorf("value stack underflow on return")
	}
	for i := 0; i < len(results); i++ {
		got := c.vmStack[len(c.vmStack)-1-i].valueType
		want := results[len(results)-1-i]
		if got != want {
			return fmt.Errorf("type mismatch on return: expected %s but got %s",
				wasm.ValueTypeName(want), wasm.ValueTypeName(got))
		}
	}
	return nil
}

// generateFunctionReturn emits the End record for a return-equivalent
// branch and suspends emission until the surrounding block closes.
func (c *Compiler) generateFunctionReturn(clearStack bool) error {
	if err := c.validateFunctionResults(); err != nil {
		return err
	}
	if err := c.generateEndCode(false); err != nil {
		return err
	}
	if clearStack {
		drop, _, err := c.dropSizeForBranch(uint32(len(c.blockStack)))
		if err != nil {
			return err
		}
		for drop > 0 {
			e, err := c.popStackInfo()
			if err != nil {
				return err
			}
			drop -= e.allocatedSize()
		}
	} else {
		for i := 0; i < len(c.fnType.Results); i++ {
			if _, err := c.popStackInfo(); err != nil {
				return err
			}
		}
	}
	c.stopEmission()
	return nil
}

// OnReturn implements binary.Delegate.
func (c *Compiler) OnReturn() error {
	if !c.emitting() {
		return nil
	}
	return c.generateFunctionReturn(false)
}

// branchTo lowers an unconditional branch to the given depth.
func (c *Compiler) branchTo(depth uint32) error {
	if uint32(len(c.blockStack)) == depth {
		// acts like return
		return c.generateFunctionReturn(true)
	}
	if int(depth) > len(c.blockStack) {
		return fmt.Errorf("invalid branch depth: %d", depth)
	}
	b := c.blockAt(depth)
	drop, keep, err := c.dropSizeForBranch(depth)
	if err != nil {
		return err
	}
	if keep > 0 {
		c.emitMovesForDrop(drop, keep)
	}
	if b.kind != blockLoop {
		b.pendingJumps = append(b.pendingJumps, pendingJumpInfo{pendingJump, c.code.size()})
	}
	c.code.emitJump(int32(b.pos - c.code.size()))
	c.stopEmission()
	return nil
}

// OnBr implements binary.Delegate.
func (c *Compiler) OnBr(depth uint32) error {
	if !c.emitting() {
		return nil
	}
	return c.branchTo(depth)
}

// OnBrIf implements binary.Delegate.
func (c *Compiler) OnBrIf(depth uint32) error {
	if !c.emitting() {
		return nil
	}
	if uint32(len(c.blockStack)) == depth {
		// acts like a conditional return: jump over the End record
		cond, err := c.popStackTyped(wasm.ValueTypeI32)
		if err != nil {
			return err
		}
		skip := jumpIfRecordSize + endRecordSize + 2*len(c.fnType.Results)
		c.code.emitJumpIf(false, StackOffset(cond), int32(skip))
		if err := c.validateFunctionResults(); err != nil {
			return err
		}
		return c.generateEndCode(false)
	}
	if int(depth) > len(c.blockStack) {
		return fmt.Errorf("invalid branch depth: %d", depth)
	}

	cond, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	b := c.blockAt(depth)
	drop, keep, err := c.dropSizeForBranch(depth)
	if err != nil {
		return err
	}
	if keep > 0 {
		// branch taken: move the kept values, then jump; branch not taken:
		// skip over both
		pos := c.code.size()
		c.code.emitJumpIf(false, StackOffset(cond), 0)
		c.emitMovesForDrop(drop, keep)
		if b.kind != blockLoop {
			b.pendingJumps = append(b.pendingJumps, pendingJumpInfo{pendingJump, c.code.size()})
		}
		c.code.emitJump(int32(b.pos - c.code.size()))
		c.code.patchJumpIfOffset(pos, c.code.size())
	} else {
		if b.kind != blockLoop {
			b.pendingJumps = append(b.pendingJumps, pendingJumpInfo{pendingJumpIf, c.code.size()})
			c.code.emitJumpIf(true, StackOffset(cond), 0)
		} else {
			c.code.emitJumpIf(true, StackOffset(cond), int32(b.pos-c.code.size()))
		}
	}
	return nil
}

// emitBrTableCase resolves one br_table slot. Slot values are relative to
// the slot's own address; unresolved forward targets are recorded as
// pending br_table patches on the target block.
func (c *Compiler) emitBrTableCase(depth uint32, slotPos int) error {
	if uint32(len(c.blockStack)) == depth {
		// acts like return
		c.code.patchI32(slotPos, int32(c.code.size()-slotPos))
		if err := c.validateFunctionResults(); err != nil {
			return err
		}
		return c.generateEndCode(false)
	}
	if int(depth) > len(c.blockStack) {
		return fmt.Errorf("invalid branch depth: %d", depth)
	}

	_, keep, err := c.dropSizeForBranch(depth)
	if err != nil {
		return err
	}
	if keep > 0 {
		// the slot jumps to a stub performing the moves and the final jump
		c.code.patchI32(slotPos, int32(c.code.size()-slotPos))
		return c.branchTo(depth)
	}

	b := c.blockAt(depth)
	if b.kind == blockLoop {
		c.code.patchI32(slotPos, int32(b.pos-slotPos))
	} else {
		b.pendingJumps = append(b.pendingJumps, pendingJumpInfo{pendingBrTable, slotPos})
	}
	return nil
}

// OnBrTable implements binary.Delegate.
func (c *Compiler) OnBrTable(targetDepths []uint32, defaultDepth uint32) error {
	if !c.emitting() {
		return nil
	}
	selector, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}

	c.code.op(OpBrTable)
	c.code.u16(StackOffset(selector))
	c.code.u32(uint32(len(targetDepths)))
	slotsPos := c.code.size()
	c.code.expandBy(4 * (len(targetDepths) + 1))

	for i, depth := range targetDepths {
		if err := c.emitBrTableCase(depth, slotsPos+4*i); err != nil {
			return err
		}
	}
	if err := c.emitBrTableCase(defaultDepth, slotsPos+4*len(targetDepths)); err != nil {
		return err
	}
	c.stopEmission()
	return nil
}

// OnEnd implements binary.Delegate.
func (c *Compiler) OnEnd() error {
	if !c.emitting() {
		if c.skipNesting > 0 {
			c.skipNesting--
			return nil
		}
		if len(c.blockStack) == 0 {
			// the function already returned; nothing left to close
			return nil
		}
		c.continueGenerate = true
	}

	if len(c.blockStack) == 0 {
		return c.generateEndCode(true)
	}

	drop, keep, err := c.dropSizeForBranch(0)
	if err != nil {
		return err
	}
	b := c.topBlock()
	c.blockStack = c.blockStack[:len(c.blockStack)-1]

	if b.kind == blockTryCatch {
		kept := c.catchPending[:0]
		for _, cp := range c.catchPending {
			if cp.blockDepth-1 != len(c.blockStack) {
				kept = append(kept, cp)
				continue
			}
			c.catchAccum = append(c.catchAccum, wasm.CatchInfo{
				TryStart:      uint32(cp.tryStart),
				TryEnd:        uint32(cp.tryEnd),
				CatchStart:    uint32(cp.catchStart),
				StackSizeToBe: b.stackSizeOnEntry,
				TagIndex:      cp.tagIndex,
			})
		}
		c.catchPending = kept
	}

	if b.emissionStopped && len(b.pendingJumps) == 0 {
		c.stopEmission()
		return nil
	}

	if b.restoreAtEnd {
		if keep > 0 {
			c.emitMovesForDrop(drop, keep)
		}
		if err := c.restoreStackTo(b); err != nil {
			return err
		}
		if b.sig.IsIndex() {
			ft, err := c.typeAt(b.sig)
			if err != nil {
				return err
			}
			for i := len(ft.Params) - 1; i >= 0; i-- {
				if _, err := c.popStackTyped(ft.Params[i]); err != nil {
					return err
				}
			}
			for _, t := range ft.Results {
				if _, err := c.pushStack(t); err != nil {
					return err
				}
			}
		} else if !b.sig.IsVoid() {
			if _, err := c.pushStack(b.sig.ValueType()); err != nil {
				return err
			}
		}
	}

	for _, pj := range b.pendingJumps {
		switch pj.kind {
		case pendingJump:
			c.code.patchJumpOffset(pj.pos, c.code.size())
		case pendingJumpIf:
			c.code.patchJumpIfOffset(pj.pos, c.code.size())
		case pendingBrTable:
			c.code.patchI32(pj.pos, int32(c.code.size()-pj.pos))
		}
	}
	return nil
}

// exceptions

// OnThrow implements binary.Delegate.
func (c *Compiler) OnThrow(tagIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if int(tagIndex) >= len(c.result.Tags) {
		return fmt.Errorf("invalid tag index: %d", tagIndex)
	}
	ft := c.result.FunctionTypes[c.result.Tags[tagIndex].SigIndex]
	params := ft.Params

	c.code.op(OpThrow)
	c.code.u32(tagIndex)
	c.code.u16(uint16(len(params)))
	offsetsPos := c.code.size()
	c.code.expandBy(2 * len(params))

	for i := 0; i < len(params); i++ {
		if len(c.vmStack) <= i {
			return fmt.Errorf("value stack underflow on throw")
		}
		e := &c.vmStack[len(c.vmStack)-1-i]
		c.code.patchU16(offsetsPos+2*(len(params)-1-i), StackOffset(e.pos))
	}
	for i := len(params) - 1; i >= 0; i-- {
		if _, err := c.popStackTyped(params[i]); err != nil {
			return err
		}
	}
	c.stopEmission()
	return nil
}

// processCatch closes the current try region and opens the handler: the
// region's pending jump skips over the handlers on normal completion, and
// the handler's parameter types are pushed for the catch body.
func (c *Compiler) processCatch(tagIndex uint32) error {
	if len(c.blockStack) == 0 || c.topBlock().kind != blockTryCatch {
		return fmt.Errorf("catch without matching try")
	}
	if err := c.keepSubResultsIfNeeds(); err != nil {
		return err
	}
	b := c.topBlock()
	if err := c.restoreStackPartOfBlockEnd(b); err != nil {
		return err
	}

	tryEnd := c.code.size()
	if n := len(c.catchPending); n > 0 && c.catchPending[n-1].blockDepth == len(c.blockStack) {
		// not the first handler of this try
		tryEnd = c.catchPending[n-1].tryEnd
	}

	if !b.emissionStopped {
		b.pendingJumps = append(b.pendingJumps, pendingJumpInfo{pendingJump, c.code.size()})
		c.code.emitJump(0)
	}
	b.emissionStopped = false

	c.catchPending = append(c.catchPending, catchPendingInfo{
		blockDepth: len(c.blockStack),
		tryStart:   b.pos,
		tryEnd:     tryEnd,
		catchStart: c.code.size(),
		tagIndex:   tagIndex,
	})

	if tagIndex != wasm.NullFuncIndex {
		if int(tagIndex) >= len(c.result.Tags) {
			return fmt.Errorf("invalid tag index: %d", tagIndex)
		}
		ft := c.result.FunctionTypes[c.result.Tags[tagIndex].SigIndex]
		for _, t := range ft.Params {
			if _, err := c.pushStack(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// OnCatch implements binary.Delegate.
func (c *Compiler) OnCatch(tagIndex uint32) error {
	if !c.emitting() {
		if c.skipNesting > 0 {
			return nil
		}
		c.continueGenerate = true
	}
	return c.processCatch(tagIndex)
}

// OnCatchAll implements binary.Delegate.
func (c *Compiler) OnCatchAll() error {
	if !c.emitting() {
		if c.skipNesting > 0 {
			return nil
		}
		c.continueGenerate = true
	}
	return c.processCatch(wasm.NullFuncIndex)
}

// OnUnreachable implements binary.Delegate.
func (c *Compiler) OnUnreachable() error {
	if !c.emitting() {
		return nil
	}
	c.code.op(wasm.OpcodeUnreachable)
	c.stopEmission()
	return nil
}

// OnNop implements binary.Delegate.
func (c *Compiler) OnNop() error { return nil }

// memory operations

// OnLoad implements binary.Delegate.
func (c *Compiler) OnLoad(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error {
	if !c.emitting() {
		return nil
	}
	info := op.Info()
	addr, err := c.popStackTyped(info.ParamType(0))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	dst, err := c.pushStack(info.ResultType())
	if err != nil {
		return err
	}
	c.code.emitLoad(op, uint32(offset), StackOffset(addr), StackOffset(dst))
	return nil
}

// OnStore implements binary.Delegate.
func (c *Compiler) OnStore(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error {
	if !c.emitting() {
		return nil
	}
	info := op.Info()
	value, err := c.popStackTyped(info.ParamType(1))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	addr, err := c.popStackTyped(info.ParamType(0))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.code.emitStore(op, uint32(offset), StackOffset(addr), StackOffset(value))
	return nil
}

// OnMemorySize implements binary.Delegate.
func (c *Compiler) OnMemorySize(memIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	dst, err := c.pushStack(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeMemorySize)
	c.code.u32(memIndex)
	c.code.u16(StackOffset(dst))
	return nil
}

// OnMemoryGrow implements binary.Delegate.
func (c *Compiler) OnMemoryGrow(memIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	src, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	dst, err := c.pushStack(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeMemoryGrow)
	c.code.u32(memIndex)
	c.code.u16(StackOffset(src))
	c.code.u16(StackOffset(dst))
	return nil
}

func (c *Compiler) popThreeI32() (src0, src1, src2 uint32, err error) {
	if src2, err = c.popStackTyped(wasm.ValueTypeI32); err != nil {
		return
	}
	if src1, err = c.popStackTyped(wasm.ValueTypeI32); err != nil {
		return
	}
	src0, err = c.popStackTyped(wasm.ValueTypeI32)
	return
}

// OnMemoryInit implements binary.Delegate.
func (c *Compiler) OnMemoryInit(segIndex, memIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	src0, src1, src2, err := c.popThreeI32()
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeMemoryInit)
	c.code.u32(memIndex)
	c.code.u32(segIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(src2))
	return nil
}

// OnMemoryCopy implements binary.Delegate.
func (c *Compiler) OnMemoryCopy(srcMemIndex, dstMemIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	src0, src1, src2, err := c.popThreeI32()
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeMemoryCopy)
	c.code.u32(srcMemIndex)
	c.code.u32(dstMemIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(src2))
	return nil
}

// OnMemoryFill implements binary.Delegate.
func (c *Compiler) OnMemoryFill(memIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	src0, src1, src2, err := c.popThreeI32()
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeMemoryFill)
	c.code.u32(memIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(src2))
	return nil
}

// OnDataDrop implements binary.Delegate.
func (c *Compiler) OnDataDrop(segIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	c.code.op(wasm.OpcodeDataDrop)
	c.code.u32(segIndex)
	return nil
}

// table operations

func (c *Compiler) tableElemType(tableIndex uint32) (wasm.ValueType, error) {
	if int(tableIndex) >= len(c.result.Tables) {
		return 0, fmt.Errorf("invalid table index: %d", tableIndex)
	}
	return c.result.Tables[tableIndex].ElemType, nil
}

// OnTableGet implements binary.Delegate.
func (c *Compiler) OnTableGet(tableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	elemType, err := c.tableElemType(tableIndex)
	if err != nil {
		return err
	}
	src, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	dst, err := c.pushStack(elemType)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeTableGet)
	c.code.u32(tableIndex)
	c.code.u16(StackOffset(src))
	c.code.u16(StackOffset(dst))
	return nil
}

// OnTableSet implements binary.Delegate.
func (c *Compiler) OnTableSet(tableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	elemType, err := c.tableElemType(tableIndex)
	if err != nil {
		return err
	}
	src1, err := c.popStackTyped(elemType)
	if err != nil {
		return err
	}
	src0, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeTableSet)
	c.code.u32(tableIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	return nil
}

// OnTableGrow implements binary.Delegate.
func (c *Compiler) OnTableGrow(tableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	elemType, err := c.tableElemType(tableIndex)
	if err != nil {
		return err
	}
	src1, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	src0, err := c.popStackTyped(elemType)
	if err != nil {
		return err
	}
	dst, err := c.pushStack(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeTableGrow)
	c.code.u32(tableIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(dst))
	return nil
}

// OnTableSize implements binary.Delegate.
func (c *Compiler) OnTableSize(tableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	if _, err := c.tableElemType(tableIndex); err != nil {
		return err
	}
	dst, err := c.pushStack(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeTableSize)
	c.code.u32(tableIndex)
	c.code.u16(StackOffset(dst))
	return nil
}

// OnTableFill implements binary.Delegate.
func (c *Compiler) OnTableFill(tableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	elemType, err := c.tableElemType(tableIndex)
	if err != nil {
		return err
	}
	src2, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	src1, err := c.popStackTyped(elemType)
	if err != nil {
		return err
	}
	src0, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeTableFill)
	c.code.u32(tableIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(src2))
	return nil
}

// OnTableInit implements binary.Delegate.
func (c *Compiler) OnTableInit(segIndex, tableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	src0, src1, src2, err := c.popThreeI32()
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeTableInit)
	c.code.u32(tableIndex)
	c.code.u32(segIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(src2))
	return nil
}

// OnTableCopy implements binary.Delegate.
func (c *Compiler) OnTableCopy(dstTableIndex, srcTableIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	src0, src1, src2, err := c.popThreeI32()
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeTableCopy)
	c.code.u32(dstTableIndex)
	c.code.u32(srcTableIndex)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(src2))
	return nil
}

// OnElemDrop implements binary.Delegate.
func (c *Compiler) OnElemDrop(segIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	c.code.op(wasm.OpcodeElemDrop)
	c.code.u32(segIndex)
	return nil
}

// references

// OnRefFunc implements binary.Delegate.
func (c *Compiler) OnRefFunc(funcIndex uint32) error {
	if !c.emitting() {
		return nil
	}
	dst, err := c.pushStack(wasm.ValueTypeFuncref)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeRefFunc)
	c.code.u32(funcIndex)
	c.code.u16(StackOffset(dst))
	return nil
}

// OnRefNull implements binary.Delegate. The record width follows the
// reference width fixed in the ParsingResult.
func (c *Compiler) OnRefNull(refType wasm.ValueType) error {
	if !c.emitting() {
		return nil
	}
	dst, err := c.pushStack(refType)
	if err != nil {
		return err
	}
	if c.result.RefByteWidth == 8 {
		c.code.emitConst64(StackOffset(dst), 0)
	} else {
		c.code.emitConst32(StackOffset(dst), 0)
	}
	return nil
}

// OnRefIsNull implements binary.Delegate.
func (c *Compiler) OnRefIsNull() error {
	if !c.emitting() {
		return nil
	}
	src, err := c.popStack()
	if err != nil {
		return err
	}
	dst, err := c.pushStack(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	op := wasm.OpcodeI32Eqz
	if c.result.RefByteWidth == 8 {
		op = wasm.OpcodeI64Eqz
	}
	c.code.emitUnary(op, c.mergeSuccessor(), StackOffset(src), StackOffset(dst))
	return nil
}

// SIMD

// OnLoadSplat implements binary.Delegate.
func (c *Compiler) OnLoadSplat(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error {
	return c.OnLoad(op, memIndex, alignLog2, offset)
}

// OnLoadZero implements binary.Delegate.
func (c *Compiler) OnLoadZero(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64) error {
	return c.OnLoad(op, memIndex, alignLog2, offset)
}

// OnSimdLaneOp implements binary.Delegate.
func (c *Compiler) OnSimdLaneOp(op wasm.Opcode, lane byte) error {
	if !c.emitting() {
		return nil
	}
	info := op.Info()
	if info.ParamCount() == 1 {
		src, err := c.popStackTyped(info.ParamType(0))
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		dst, err := c.pushStack(info.ResultType())
		if err != nil {
			return err
		}
		c.code.op(op)
		c.code.u8(lane)
		c.code.u16(StackOffset(src))
		c.code.u16(StackOffset(dst))
		return nil
	}
	src1, err := c.popStackTyped(info.ParamType(1))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	src0, err := c.popStackTyped(info.ParamType(0))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	dst, err := c.pushStack(info.ResultType())
	if err != nil {
		return err
	}
	c.code.op(op)
	c.code.u8(lane)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(dst))
	return nil
}

// OnSimdLoadLane implements binary.Delegate.
func (c *Compiler) OnSimdLoadLane(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64, lane byte) error {
	if !c.emitting() {
		return nil
	}
	src1, err := c.popStackTyped(wasm.ValueTypeV128)
	if err != nil {
		return err
	}
	src0, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	dst, err := c.pushStack(wasm.ValueTypeV128)
	if err != nil {
		return err
	}
	c.code.op(op)
	c.code.u32(uint32(offset))
	c.code.u8(lane)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(dst))
	return nil
}

// OnSimdStoreLane implements binary.Delegate.
func (c *Compiler) OnSimdStoreLane(op wasm.Opcode, memIndex, alignLog2 uint32, offset uint64, lane byte) error {
	if !c.emitting() {
		return nil
	}
	src1, err := c.popStackTyped(wasm.ValueTypeV128)
	if err != nil {
		return err
	}
	src0, err := c.popStackTyped(wasm.ValueTypeI32)
	if err != nil {
		return err
	}
	c.code.op(op)
	c.code.u32(uint32(offset))
	c.code.u8(lane)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	return nil
}

// OnSimdShuffle implements binary.Delegate.
func (c *Compiler) OnSimdShuffle(lanes []byte) error {
	if !c.emitting() {
		return nil
	}
	src1, err := c.popStackTyped(wasm.ValueTypeV128)
	if err != nil {
		return err
	}
	src0, err := c.popStackTyped(wasm.ValueTypeV128)
	if err != nil {
		return err
	}
	dst, err := c.pushStack(wasm.ValueTypeV128)
	if err != nil {
		return err
	}
	c.code.op(wasm.OpcodeI8x16Shuffle)
	c.code.u16(StackOffset(src0))
	c.code.u16(StackOffset(src1))
	c.code.u16(StackOffset(dst))
	c.code.raw(lanes[:16])
	return nil
}
