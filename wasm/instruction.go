package wasm

import "fmt"

// Opcode identifies one WebAssembly instruction. Single-byte opcodes use
// their binary encoding directly; 0xFC- and 0xFD-prefixed opcodes are
// mapped into disjoint ranges above the single-byte space so the info
// table stays a dense array.
type Opcode uint32

const (
	miscOpcodeBase Opcode = 0x100 // 0xFC prefix
	simdOpcodeBase Opcode = 0x120 // 0xFD prefix
	opcodeLimit    Opcode = simdOpcodeBase + 0x100
)

// MiscOpcode maps a 0xFC-prefixed sub-opcode into the Opcode space.
func MiscOpcode(sub uint32) Opcode { return miscOpcodeBase + Opcode(sub) }

// SimdOpcode maps a 0xFD-prefixed sub-opcode into the Opcode space.
func SimdOpcode(sub uint32) Opcode { return simdOpcodeBase + Opcode(sub) }

const (
	OpcodeUnreachable  Opcode = 0x00
	OpcodeNop          Opcode = 0x01
	OpcodeBlock        Opcode = 0x02
	OpcodeLoop         Opcode = 0x03
	OpcodeIf           Opcode = 0x04
	OpcodeElse         Opcode = 0x05
	OpcodeTry          Opcode = 0x06
	OpcodeCatch        Opcode = 0x07
	OpcodeThrow        Opcode = 0x08
	OpcodeRethrow      Opcode = 0x09
	OpcodeEnd          Opcode = 0x0b
	OpcodeBr           Opcode = 0x0c
	OpcodeBrIf         Opcode = 0x0d
	OpcodeBrTable      Opcode = 0x0e
	OpcodeReturn       Opcode = 0x0f
	OpcodeCall         Opcode = 0x10
	OpcodeCallIndirect Opcode = 0x11
	OpcodeDelegate     Opcode = 0x18
	OpcodeCatchAll     Opcode = 0x19
	OpcodeDrop         Opcode = 0x1a
	OpcodeSelect       Opcode = 0x1b
	OpcodeTypedSelect  Opcode = 0x1c
	OpcodeLocalGet     Opcode = 0x20
	OpcodeLocalSet     Opcode = 0x21
	OpcodeLocalTee     Opcode = 0x22
	OpcodeGlobalGet    Opcode = 0x23
	OpcodeGlobalSet    Opcode = 0x24
	OpcodeTableGet     Opcode = 0x25
	OpcodeTableSet     Opcode = 0x26

	OpcodeI32Load    Opcode = 0x28
	OpcodeI64Load    Opcode = 0x29
	OpcodeF32Load    Opcode = 0x2a
	OpcodeF64Load    Opcode = 0x2b
	OpcodeI32Load8S  Opcode = 0x2c
	OpcodeI32Load8U  Opcode = 0x2d
	OpcodeI32Load16S Opcode = 0x2e
	OpcodeI32Load16U Opcode = 0x2f
	OpcodeI64Load8S  Opcode = 0x30
	OpcodeI64Load8U  Opcode = 0x31
	OpcodeI64Load16S Opcode = 0x32
	OpcodeI64Load16U Opcode = 0x33
	OpcodeI64Load32S Opcode = 0x34
	OpcodeI64Load32U Opcode = 0x35
	OpcodeI32Store   Opcode = 0x36
	OpcodeI64Store   Opcode = 0x37
	OpcodeF32Store   Opcode = 0x38
	OpcodeF64Store   Opcode = 0x39
	OpcodeI32Store8  Opcode = 0x3a
	OpcodeI32Store16 Opcode = 0x3b
	OpcodeI64Store8  Opcode = 0x3c
	OpcodeI64Store16 Opcode = 0x3d
	OpcodeI64Store32 Opcode = 0x3e
	OpcodeMemorySize Opcode = 0x3f
	OpcodeMemoryGrow Opcode = 0x40

	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44

	OpcodeI32Eqz Opcode = 0x45
	OpcodeI32Eq  Opcode = 0x46
	OpcodeI32Ne  Opcode = 0x47
	OpcodeI32LtS Opcode = 0x48
	OpcodeI32LtU Opcode = 0x49
	OpcodeI32GtS Opcode = 0x4a
	OpcodeI32GtU Opcode = 0x4b
	OpcodeI32LeS Opcode = 0x4c
	OpcodeI32LeU Opcode = 0x4d
	OpcodeI32GeS Opcode = 0x4e
	OpcodeI32GeU Opcode = 0x4f
	OpcodeI64Eqz Opcode = 0x50
	OpcodeI64Eq  Opcode = 0x51
	OpcodeI64Ne  Opcode = 0x52
	OpcodeI64LtS Opcode = 0x53
	OpcodeI64LtU Opcode = 0x54
	OpcodeI64GtS Opcode = 0x55
	OpcodeI64GtU Opcode = 0x56
	OpcodeI64LeS Opcode = 0x57
	OpcodeI64LeU Opcode = 0x58
	OpcodeI64GeS Opcode = 0x59
	OpcodeI64GeU Opcode = 0x5a
	OpcodeF32Eq  Opcode = 0x5b
	OpcodeF32Ne  Opcode = 0x5c
	OpcodeF32Lt  Opcode = 0x5d
	OpcodeF32Gt  Opcode = 0x5e
	OpcodeF32Le  Opcode = 0x5f
	OpcodeF32Ge  Opcode = 0x60
	OpcodeF64Eq  Opcode = 0x61
	OpcodeF64Ne  Opcode = 0x62
	OpcodeF64Lt  Opcode = 0x63
	OpcodeF64Gt  Opcode = 0x64
	OpcodeF64Le  Opcode = 0x65
	OpcodeF64Ge  Opcode = 0x66

	OpcodeI32Clz    Opcode = 0x67
	OpcodeI32Ctz    Opcode = 0x68
	OpcodeI32Popcnt Opcode = 0x69
	OpcodeI32Add    Opcode = 0x6a
	OpcodeI32Sub    Opcode = 0x6b
	OpcodeI32Mul    Opcode = 0x6c
	OpcodeI32DivS   Opcode = 0x6d
	OpcodeI32DivU   Opcode = 0x6e
	OpcodeI32RemS   Opcode = 0x6f
	OpcodeI32RemU   Opcode = 0x70
	OpcodeI32And    Opcode = 0x71
	OpcodeI32Or     Opcode = 0x72
	OpcodeI32Xor    Opcode = 0x73
	OpcodeI32Shl    Opcode = 0x74
	OpcodeI32ShrS   Opcode = 0x75
	OpcodeI32ShrU   Opcode = 0x76
	OpcodeI32Rotl   Opcode = 0x77
	OpcodeI32Rotr   Opcode = 0x78
	OpcodeI64Clz    Opcode = 0x79
	OpcodeI64Ctz    Opcode = 0x7a
	OpcodeI64Popcnt Opcode = 0x7b
	OpcodeI64Add    Opcode = 0x7c
	OpcodeI64Sub    Opcode = 0x7d
	OpcodeI64Mul    Opcode = 0x7e
	OpcodeI64DivS   Opcode = 0x7f
	OpcodeI64DivU   Opcode = 0x80
	OpcodeI64RemS   Opcode = 0x81
	OpcodeI64RemU   Opcode = 0x82
	OpcodeI64And    Opcode = 0x83
	OpcodeI64Or     Opcode = 0x84
	OpcodeI64Xor    Opcode = 0x85
	OpcodeI64Shl    Opcode = 0x86
	OpcodeI64ShrS   Opcode = 0x87
	OpcodeI64ShrU   Opcode = 0x88
	OpcodeI64Rotl   Opcode = 0x89
	OpcodeI64Rotr   Opcode = 0x8a

	OpcodeF32Abs      Opcode = 0x8b
	OpcodeF32Neg      Opcode = 0x8c
	OpcodeF32Ceil     Opcode = 0x8d
	OpcodeF32Floor    Opcode = 0x8e
	OpcodeF32Trunc    Opcode = 0x8f
	OpcodeF32Nearest  Opcode = 0x90
	OpcodeF32Sqrt     Opcode = 0x91
	OpcodeF32Add      Opcode = 0x92
	OpcodeF32Sub      Opcode = 0x93
	OpcodeF32Mul      Opcode = 0x94
	OpcodeF32Div      Opcode = 0x95
	OpcodeF32Min      Opcode = 0x96
	OpcodeF32Max      Opcode = 0x97
	OpcodeF32Copysign Opcode = 0x98
	OpcodeF64Abs      Opcode = 0x99
	OpcodeF64Neg      Opcode = 0x9a
	OpcodeF64Ceil     Opcode = 0x9b
	OpcodeF64Floor    Opcode = 0x9c
	OpcodeF64Trunc    Opcode = 0x9d
	OpcodeF64Nearest  Opcode = 0x9e
	OpcodeF64Sqrt     Opcode = 0x9f
	OpcodeF64Add      Opcode = 0xa0
	OpcodeF64Sub      Opcode = 0xa1
	OpcodeF64Mul      Opcode = 0xa2
	OpcodeF64Div      Opcode = 0xa3
	OpcodeF64Min      Opcode = 0xa4
	OpcodeF64Max      Opcode = 0xa5
	OpcodeF64Copysign Opcode = 0xa6

	OpcodeI32WrapI64        Opcode = 0xa7
	OpcodeI32TruncF32S      Opcode = 0xa8
	OpcodeI32TruncF32U      Opcode = 0xa9
	OpcodeI32TruncF64S      Opcode = 0xaa
	OpcodeI32TruncF64U      Opcode = 0xab
	OpcodeI64ExtendI32S     Opcode = 0xac
	OpcodeI64ExtendI32U     Opcode = 0xad
	OpcodeI64TruncF32S      Opcode = 0xae
	OpcodeI64TruncF32U      Opcode = 0xaf
	OpcodeI64TruncF64S      Opcode = 0xb0
	OpcodeI64TruncF64U      Opcode = 0xb1
	OpcodeF32ConvertI32S    Opcode = 0xb2
	OpcodeF32ConvertI32U    Opcode = 0xb3
	OpcodeF32ConvertI64S    Opcode = 0xb4
	OpcodeF32ConvertI64U    Opcode = 0xb5
	OpcodeF32DemoteF64      Opcode = 0xb6
	OpcodeF64ConvertI32S    Opcode = 0xb7
	OpcodeF64ConvertI32U    Opcode = 0xb8
	OpcodeF64ConvertI64S    Opcode = 0xb9
	OpcodeF64ConvertI64U    Opcode = 0xba
	OpcodeF64PromoteF32     Opcode = 0xbb
	OpcodeI32ReinterpretF32 Opcode = 0xbc
	OpcodeI64ReinterpretF64 Opcode = 0xbd
	OpcodeF32ReinterpretI32 Opcode = 0xbe
	OpcodeF64ReinterpretI64 Opcode = 0xbf

	OpcodeI32Extend8S  Opcode = 0xc0
	OpcodeI32Extend16S Opcode = 0xc1
	OpcodeI64Extend8S  Opcode = 0xc2
	OpcodeI64Extend16S Opcode = 0xc3
	OpcodeI64Extend32S Opcode = 0xc4

	OpcodeRefNull   Opcode = 0xd0
	OpcodeRefIsNull Opcode = 0xd1
	OpcodeRefFunc   Opcode = 0xd2
)

// 0xFC-prefixed opcodes: non-trapping float-to-int plus bulk memory/table.
const (
	OpcodeI32TruncSatF32S = miscOpcodeBase + 0
	OpcodeI32TruncSatF32U = miscOpcodeBase + 1
	OpcodeI32TruncSatF64S = miscOpcodeBase + 2
	OpcodeI32TruncSatF64U = miscOpcodeBase + 3
	OpcodeI64TruncSatF32S = miscOpcodeBase + 4
	OpcodeI64TruncSatF32U = miscOpcodeBase + 5
	OpcodeI64TruncSatF64S = miscOpcodeBase + 6
	OpcodeI64TruncSatF64U = miscOpcodeBase + 7
	OpcodeMemoryInit      = miscOpcodeBase + 8
	OpcodeDataDrop        = miscOpcodeBase + 9
	OpcodeMemoryCopy      = miscOpcodeBase + 10
	OpcodeMemoryFill      = miscOpcodeBase + 11
	OpcodeTableInit       = miscOpcodeBase + 12
	OpcodeElemDrop        = miscOpcodeBase + 13
	OpcodeTableCopy       = miscOpcodeBase + 14
	OpcodeTableGrow       = miscOpcodeBase + 15
	OpcodeTableSize       = miscOpcodeBase + 16
	OpcodeTableFill       = miscOpcodeBase + 17
)

// 0xFD-prefixed opcodes: 128-bit SIMD.
const (
	OpcodeV128Load        = simdOpcodeBase + 0
	OpcodeV128Load8x8S    = simdOpcodeBase + 1
	OpcodeV128Load8x8U    = simdOpcodeBase + 2
	OpcodeV128Load16x4S   = simdOpcodeBase + 3
	OpcodeV128Load16x4U   = simdOpcodeBase + 4
	OpcodeV128Load32x2S   = simdOpcodeBase + 5
	OpcodeV128Load32x2U   = simdOpcodeBase + 6
	OpcodeV128Load8Splat  = simdOpcodeBase + 7
	OpcodeV128Load16Splat = simdOpcodeBase + 8
	OpcodeV128Load32Splat = simdOpcodeBase + 9
	OpcodeV128Load64Splat = simdOpcodeBase + 10
	OpcodeV128Store       = simdOpcodeBase + 11
	OpcodeV128Const       = simdOpcodeBase + 12
	OpcodeI8x16Shuffle    = simdOpcodeBase + 13
	OpcodeI8x16Swizzle    = simdOpcodeBase + 14
	OpcodeI8x16Splat      = simdOpcodeBase + 15
	OpcodeI16x8Splat      = simdOpcodeBase + 16
	OpcodeI32x4Splat      = simdOpcodeBase + 17
	OpcodeI64x2Splat      = simdOpcodeBase + 18
	OpcodeF32x4Splat      = simdOpcodeBase + 19
	OpcodeF64x2Splat      = simdOpcodeBase + 20

	OpcodeI8x16ExtractLaneS = simdOpcodeBase + 21
	OpcodeI8x16ExtractLaneU = simdOpcodeBase + 22
	OpcodeI8x16ReplaceLane  = simdOpcodeBase + 23
	OpcodeI16x8ExtractLaneS = simdOpcodeBase + 24
	OpcodeI16x8ExtractLaneU = simdOpcodeBase + 25
	OpcodeI16x8ReplaceLane  = simdOpcodeBase + 26
	OpcodeI32x4ExtractLane  = simdOpcodeBase + 27
	OpcodeI32x4ReplaceLane  = simdOpcodeBase + 28
	OpcodeI64x2ExtractLane  = simdOpcodeBase + 29
	OpcodeI64x2ReplaceLane  = simdOpcodeBase + 30
	OpcodeF32x4ExtractLane  = simdOpcodeBase + 31
	OpcodeF32x4ReplaceLane  = simdOpcodeBase + 32
	OpcodeF64x2ExtractLane  = simdOpcodeBase + 33
	OpcodeF64x2ReplaceLane  = simdOpcodeBase + 34

	OpcodeI8x16Eq  = simdOpcodeBase + 35
	OpcodeI8x16Ne  = simdOpcodeBase + 36
	OpcodeI8x16LtS = simdOpcodeBase + 37
	OpcodeI8x16LtU = simdOpcodeBase + 38
	OpcodeI8x16GtS = simdOpcodeBase + 39
	OpcodeI8x16GtU = simdOpcodeBase + 40
	OpcodeI8x16LeS = simdOpcodeBase + 41
	OpcodeI8x16LeU = simdOpcodeBase + 42
	OpcodeI8x16GeS = simdOpcodeBase + 43
	OpcodeI8x16GeU = simdOpcodeBase + 44
	OpcodeI16x8Eq  = simdOpcodeBase + 45
	OpcodeI16x8Ne  = simdOpcodeBase + 46
	OpcodeI16x8LtS = simdOpcodeBase + 47
	OpcodeI16x8LtU = simdOpcodeBase + 48
	OpcodeI16x8GtS = simdOpcodeBase + 49
	OpcodeI16x8GtU = simdOpcodeBase + 50
	OpcodeI16x8LeS = simdOpcodeBase + 51
	OpcodeI16x8LeU = simdOpcodeBase + 52
	OpcodeI16x8GeS = simdOpcodeBase + 53
	OpcodeI16x8GeU = simdOpcodeBase + 54
	OpcodeI32x4Eq  = simdOpcodeBase + 55
	OpcodeI32x4Ne  = simdOpcodeBase + 56
	OpcodeI32x4LtS = simdOpcodeBase + 57
	OpcodeI32x4LtU = simdOpcodeBase + 58
	OpcodeI32x4GtS = simdOpcodeBase + 59
	OpcodeI32x4GtU = simdOpcodeBase + 60
	OpcodeI32x4LeS = simdOpcodeBase + 61
	OpcodeI32x4LeU = simdOpcodeBase + 62
	OpcodeI32x4GeS = simdOpcodeBase + 63
	OpcodeI32x4GeU = simdOpcodeBase + 64
	OpcodeF32x4Eq  = simdOpcodeBase + 65
	OpcodeF32x4Ne  = simdOpcodeBase + 66
	OpcodeF32x4Lt  = simdOpcodeBase + 67
	OpcodeF32x4Gt  = simdOpcodeBase + 68
	OpcodeF32x4Le  = simdOpcodeBase + 69
	OpcodeF32x4Ge  = simdOpcodeBase + 70
	OpcodeF64x2Eq  = simdOpcodeBase + 71
	OpcodeF64x2Ne  = simdOpcodeBase + 72
	OpcodeF64x2Lt  = simdOpcodeBase + 73
	OpcodeF64x2Gt  = simdOpcodeBase + 74
	OpcodeF64x2Le  = simdOpcodeBase + 75
	OpcodeF64x2Ge  = simdOpcodeBase + 76

	OpcodeV128Not       = simdOpcodeBase + 77
	OpcodeV128And       = simdOpcodeBase + 78
	OpcodeV128AndNot    = simdOpcodeBase + 79
	OpcodeV128Or        = simdOpcodeBase + 80
	OpcodeV128Xor       = simdOpcodeBase + 81
	OpcodeV128BitSelect = simdOpcodeBase + 82
	OpcodeV128AnyTrue   = simdOpcodeBase + 83

	OpcodeV128Load8Lane   = simdOpcodeBase + 84
	OpcodeV128Load16Lane  = simdOpcodeBase + 85
	OpcodeV128Load32Lane  = simdOpcodeBase + 86
	OpcodeV128Load64Lane  = simdOpcodeBase + 87
	OpcodeV128Store8Lane  = simdOpcodeBase + 88
	OpcodeV128Store16Lane = simdOpcodeBase + 89
	OpcodeV128Store32Lane = simdOpcodeBase + 90
	OpcodeV128Store64Lane = simdOpcodeBase + 91
	OpcodeV128Load32Zero  = simdOpcodeBase + 92
	OpcodeV128Load64Zero  = simdOpcodeBase + 93

	OpcodeF32x4DemoteF64x2Zero = simdOpcodeBase + 94
	OpcodeF64x2PromoteLowF32x4 = simdOpcodeBase + 95

	OpcodeI8x16Abs          = simdOpcodeBase + 96
	OpcodeI8x16Neg          = simdOpcodeBase + 97
	OpcodeI8x16Popcnt       = simdOpcodeBase + 98
	OpcodeI8x16AllTrue      = simdOpcodeBase + 99
	OpcodeI8x16BitMask      = simdOpcodeBase + 100
	OpcodeI8x16NarrowI16x8S = simdOpcodeBase + 101
	OpcodeI8x16NarrowI16x8U = simdOpcodeBase + 102
	OpcodeF32x4Ceil         = simdOpcodeBase + 103
	OpcodeF32x4Floor        = simdOpcodeBase + 104
	OpcodeF32x4Trunc        = simdOpcodeBase + 105
	OpcodeF32x4Nearest      = simdOpcodeBase + 106
	OpcodeI8x16Shl          = simdOpcodeBase + 107
	OpcodeI8x16ShrS         = simdOpcodeBase + 108
	OpcodeI8x16ShrU         = simdOpcodeBase + 109
	OpcodeI8x16Add          = simdOpcodeBase + 110
	OpcodeI8x16AddSatS      = simdOpcodeBase + 111
	OpcodeI8x16AddSatU      = simdOpcodeBase + 112
	OpcodeI8x16Sub          = simdOpcodeBase + 113
	OpcodeI8x16SubSatS      = simdOpcodeBase + 114
	OpcodeI8x16SubSatU      = simdOpcodeBase + 115
	OpcodeF64x2Ceil         = simdOpcodeBase + 116
	OpcodeF64x2Floor        = simdOpcodeBase + 117
	OpcodeI8x16MinS         = simdOpcodeBase + 118
	OpcodeI8x16MinU         = simdOpcodeBase + 119
	OpcodeI8x16MaxS         = simdOpcodeBase + 120
	OpcodeI8x16MaxU         = simdOpcodeBase + 121
	OpcodeF64x2Trunc        = simdOpcodeBase + 122
	OpcodeI8x16AvgrU        = simdOpcodeBase + 123

	OpcodeI16x8ExtAddPairwiseI8x16S = simdOpcodeBase + 124
	OpcodeI16x8ExtAddPairwiseI8x16U = simdOpcodeBase + 125
	OpcodeI32x4ExtAddPairwiseI16x8S = simdOpcodeBase + 126
	OpcodeI32x4ExtAddPairwiseI16x8U = simdOpcodeBase + 127

	OpcodeI16x8Abs              = simdOpcodeBase + 128
	OpcodeI16x8Neg              = simdOpcodeBase + 129
	OpcodeI16x8Q15mulrSatS      = simdOpcodeBase + 130
	OpcodeI16x8AllTrue          = simdOpcodeBase + 131
	OpcodeI16x8BitMask          = simdOpcodeBase + 132
	OpcodeI16x8NarrowI32x4S     = simdOpcodeBase + 133
	OpcodeI16x8NarrowI32x4U     = simdOpcodeBase + 134
	OpcodeI16x8ExtendLowI8x16S  = simdOpcodeBase + 135
	OpcodeI16x8ExtendHighI8x16S = simdOpcodeBase + 136
	OpcodeI16x8ExtendLowI8x16U  = simdOpcodeBase + 137
	OpcodeI16x8ExtendHighI8x16U = simdOpcodeBase + 138
	OpcodeI16x8Shl              = simdOpcodeBase + 139
	OpcodeI16x8ShrS             = simdOpcodeBase + 140
	OpcodeI16x8ShrU             = simdOpcodeBase + 141
	OpcodeI16x8Add              = simdOpcodeBase + 142
	OpcodeI16x8AddSatS          = simdOpcodeBase + 143
	OpcodeI16x8AddSatU          = simdOpcodeBase + 144
	OpcodeI16x8Sub              = simdOpcodeBase + 145
	OpcodeI16x8SubSatS          = simdOpcodeBase + 146
	OpcodeI16x8SubSatU          = simdOpcodeBase + 147
	OpcodeF64x2Nearest          = simdOpcodeBase + 148
	OpcodeI16x8Mul              = simdOpcodeBase + 149
	OpcodeI16x8MinS             = simdOpcodeBase + 150
	OpcodeI16x8MinU             = simdOpcodeBase + 151
	OpcodeI16x8MaxS             = simdOpcodeBase + 152
	OpcodeI16x8MaxU             = simdOpcodeBase + 153
	OpcodeI16x8AvgrU            = simdOpcodeBase + 155
	OpcodeI16x8ExtMulLowI8x16S  = simdOpcodeBase + 156
	OpcodeI16x8ExtMulHighI8x16S = simdOpcodeBase + 157
	OpcodeI16x8ExtMulLowI8x16U  = simdOpcodeBase + 158
	OpcodeI16x8ExtMulHighI8x16U = simdOpcodeBase + 159

	OpcodeI32x4Abs              = simdOpcodeBase + 160
	OpcodeI32x4Neg              = simdOpcodeBase + 161
	OpcodeI32x4AllTrue          = simdOpcodeBase + 163
	OpcodeI32x4BitMask          = simdOpcodeBase + 164
	OpcodeI32x4ExtendLowI16x8S  = simdOpcodeBase + 167
	OpcodeI32x4ExtendHighI16x8S = simdOpcodeBase + 168
	OpcodeI32x4ExtendLowI16x8U  = simdOpcodeBase + 169
	OpcodeI32x4ExtendHighI16x8U = simdOpcodeBase + 170
	OpcodeI32x4Shl              = simdOpcodeBase + 171
	OpcodeI32x4ShrS             = simdOpcodeBase + 172
	OpcodeI32x4ShrU             = simdOpcodeBase + 173
	OpcodeI32x4Add              = simdOpcodeBase + 174
	OpcodeI32x4Sub              = simdOpcodeBase + 177
	OpcodeI32x4Mul              = simdOpcodeBase + 181
	OpcodeI32x4MinS             = simdOpcodeBase + 182
	OpcodeI32x4MinU             = simdOpcodeBase + 183
	OpcodeI32x4MaxS             = simdOpcodeBase + 184
	OpcodeI32x4MaxU             = simdOpcodeBase + 185
	OpcodeI32x4DotI16x8S        = simdOpcodeBase + 186
	OpcodeI32x4ExtMulLowI16x8S  = simdOpcodeBase + 188
	OpcodeI32x4ExtMulHighI16x8S = simdOpcodeBase + 189
	OpcodeI32x4ExtMulLowI16x8U  = simdOpcodeBase + 190
	OpcodeI32x4ExtMulHighI16x8U = simdOpcodeBase + 191

	OpcodeI64x2Abs              = simdOpcodeBase + 192
	OpcodeI64x2Neg              = simdOpcodeBase + 193
	OpcodeI64x2AllTrue          = simdOpcodeBase + 195
	OpcodeI64x2BitMask          = simdOpcodeBase + 196
	OpcodeI64x2ExtendLowI32x4S  = simdOpcodeBase + 199
	OpcodeI64x2ExtendHighI32x4S = simdOpcodeBase + 200
	OpcodeI64x2ExtendLowI32x4U  = simdOpcodeBase + 201
	OpcodeI64x2ExtendHighI32x4U = simdOpcodeBase + 202
	OpcodeI64x2Shl              = simdOpcodeBase + 203
	OpcodeI64x2ShrS             = simdOpcodeBase + 204
	OpcodeI64x2ShrU             = simdOpcodeBase + 205
	OpcodeI64x2Add              = simdOpcodeBase + 206
	OpcodeI64x2Sub              = simdOpcodeBase + 209
	OpcodeI64x2Mul              = simdOpcodeBase + 213
	OpcodeI64x2Eq               = simdOpcodeBase + 214
	OpcodeI64x2Ne               = simdOpcodeBase + 215
	OpcodeI64x2LtS              = simdOpcodeBase + 216
	OpcodeI64x2GtS              = simdOpcodeBase + 217
	OpcodeI64x2LeS              = simdOpcodeBase + 218
	OpcodeI64x2GeS              = simdOpcodeBase + 219
	OpcodeI64x2ExtMulLowI32x4S  = simdOpcodeBase + 220
	OpcodeI64x2ExtMulHighI32x4S = simdOpcodeBase + 221
	OpcodeI64x2ExtMulLowI32x4U  = simdOpcodeBase + 222
	OpcodeI64x2ExtMulHighI32x4U = simdOpcodeBase + 223

	OpcodeF32x4Abs  = simdOpcodeBase + 224
	OpcodeF32x4Neg  = simdOpcodeBase + 225
	OpcodeF32x4Sqrt = simdOpcodeBase + 227
	OpcodeF32x4Add  = simdOpcodeBase + 228
	OpcodeF32x4Sub  = simdOpcodeBase + 229
	OpcodeF32x4Mul  = simdOpcodeBase + 230
	OpcodeF32x4Div  = simdOpcodeBase + 231
	OpcodeF32x4Min  = simdOpcodeBase + 232
	OpcodeF32x4Max  = simdOpcodeBase + 233
	OpcodeF32x4Pmin = simdOpcodeBase + 234
	OpcodeF32x4Pmax = simdOpcodeBase + 235
	OpcodeF64x2Abs  = simdOpcodeBase + 236
	OpcodeF64x2Neg  = simdOpcodeBase + 237
	OpcodeF64x2Sqrt = simdOpcodeBase + 239
	OpcodeF64x2Add  = simdOpcodeBase + 240
	OpcodeF64x2Sub  = simdOpcodeBase + 241
	OpcodeF64x2Mul  = simdOpcodeBase + 242
	OpcodeF64x2Div  = simdOpcodeBase + 243
	OpcodeF64x2Min  = simdOpcodeBase + 244
	OpcodeF64x2Max  = simdOpcodeBase + 245
	OpcodeF64x2Pmin = simdOpcodeBase + 246
	OpcodeF64x2Pmax = simdOpcodeBase + 247

	OpcodeI32x4TruncSatF32x4S     = simdOpcodeBase + 248
	OpcodeI32x4TruncSatF32x4U     = simdOpcodeBase + 249
	OpcodeF32x4ConvertI32x4S      = simdOpcodeBase + 250
	OpcodeF32x4ConvertI32x4U      = simdOpcodeBase + 251
	OpcodeI32x4TruncSatF64x2SZero = simdOpcodeBase + 252
	OpcodeI32x4TruncSatF64x2UZero = simdOpcodeBase + 253
	OpcodeF64x2ConvertLowI32x4S   = simdOpcodeBase + 254
	OpcodeF64x2ConvertLowI32x4U   = simdOpcodeBase + 255
)

// codeType abstracts the operand type columns of the opcode info table.
type codeType byte

const (
	ctNone codeType = iota
	ctI32
	ctI64
	ctF32
	ctF64
	ctV128
)

func (c codeType) valueType() ValueType {
	switch c {
	case ctI32:
		return ValueTypeI32
	case ctI64:
		return ValueTypeI64
	case ctF32:
		return ValueTypeF32
	case ctF64:
		return ValueTypeF64
	case ctV128:
		return ValueTypeV128
	}
	panic("code type carries no value type")
}

// OpcodeInfo is one row of the static opcode metadata table: result type,
// up to three parameter types, and the display name.
type OpcodeInfo struct {
	Result codeType
	Params [3]codeType
	Name   string
}

// ParamCount returns the number of operands the opcode pops.
func (i *OpcodeInfo) ParamCount() int {
	n := 0
	for _, p := range i.Params {
		if p != ctNone {
			n++
		}
	}
	return n
}

// HasResult reports whether the opcode pushes a value.
func (i *OpcodeInfo) HasResult() bool { return i.Result != ctNone }

// ResultType returns the pushed value type; only valid when HasResult.
func (i *OpcodeInfo) ResultType() ValueType { return i.Result.valueType() }

// ParamType returns the type of the n-th popped operand.
func (i *OpcodeInfo) ParamType(n int) ValueType { return i.Params[n].valueType() }

// Info returns the metadata row for op, or nil for opcodes outside the
// supported instruction set.
func (op Opcode) Info() *OpcodeInfo {
	if op >= opcodeLimit {
		return nil
	}
	info := &opcodeInfos[op]
	if info.Name == "" {
		return nil
	}
	return info
}

func (op Opcode) String() string {
	if info := op.Info(); info != nil {
		return info.Name
	}
	return fmt.Sprintf("opcode(%#x)", uint32(op))
}

// IsCompare reports whether op is an integer or float comparison, the
// instruction family eligible for compare/branch and compare/select
// fusion.
func (op Opcode) IsCompare() bool {
	return op >= OpcodeI32Eqz && op <= OpcodeF64Ge
}
