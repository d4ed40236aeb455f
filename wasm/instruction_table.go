package wasm

// opcodeInfos is the static per-opcode metadata table. One entry per
// supported opcode; a zero entry means the opcode is outside the accepted
// feature set.
var opcodeInfos = [opcodeLimit]OpcodeInfo{
	OpcodeUnreachable:  {ctNone, [3]codeType{}, "unreachable"},
	OpcodeNop:          {ctNone, [3]codeType{}, "nop"},
	OpcodeBlock:        {ctNone, [3]codeType{}, "block"},
	OpcodeLoop:         {ctNone, [3]codeType{}, "loop"},
	OpcodeIf:           {ctNone, [3]codeType{ctI32}, "if"},
	OpcodeElse:         {ctNone, [3]codeType{}, "else"},
	OpcodeTry:          {ctNone, [3]codeType{}, "try"},
	OpcodeCatch:        {ctNone, [3]codeType{}, "catch"},
	OpcodeThrow:        {ctNone, [3]codeType{}, "throw"},
	OpcodeEnd:          {ctNone, [3]codeType{}, "end"},
	OpcodeBr:           {ctNone, [3]codeType{}, "br"},
	OpcodeBrIf:         {ctNone, [3]codeType{ctI32}, "br_if"},
	OpcodeBrTable:      {ctNone, [3]codeType{ctI32}, "br_table"},
	OpcodeReturn:       {ctNone, [3]codeType{}, "return"},
	OpcodeCall:         {ctNone, [3]codeType{}, "call"},
	OpcodeCallIndirect: {ctNone, [3]codeType{}, "call_indirect"},
	OpcodeCatchAll:     {ctNone, [3]codeType{}, "catch_all"},
	OpcodeDrop:         {ctNone, [3]codeType{}, "drop"},
	OpcodeSelect:       {ctNone, [3]codeType{}, "select"},
	OpcodeTypedSelect:  {ctNone, [3]codeType{}, "select"},
	OpcodeLocalGet:     {ctNone, [3]codeType{}, "local.get"},
	OpcodeLocalSet:     {ctNone, [3]codeType{}, "local.set"},
	OpcodeLocalTee:     {ctNone, [3]codeType{}, "local.tee"},
	OpcodeGlobalGet:    {ctNone, [3]codeType{}, "global.get"},
	OpcodeGlobalSet:    {ctNone, [3]codeType{}, "global.set"},
	OpcodeTableGet:     {ctNone, [3]codeType{ctI32}, "table.get"},
	OpcodeTableSet:     {ctNone, [3]codeType{}, "table.set"},

	OpcodeI32Load:    {ctI32, [3]codeType{ctI32}, "i32.load"},
	OpcodeI64Load:    {ctI64, [3]codeType{ctI32}, "i64.load"},
	OpcodeF32Load:    {ctF32, [3]codeType{ctI32}, "f32.load"},
	OpcodeF64Load:    {ctF64, [3]codeType{ctI32}, "f64.load"},
	OpcodeI32Load8S:  {ctI32, [3]codeType{ctI32}, "i32.load8_s"},
	OpcodeI32Load8U:  {ctI32, [3]codeType{ctI32}, "i32.load8_u"},
	OpcodeI32Load16S: {ctI32, [3]codeType{ctI32}, "i32.load16_s"},
	OpcodeI32Load16U: {ctI32, [3]codeType{ctI32}, "i32.load16_u"},
	OpcodeI64Load8S:  {ctI64, [3]codeType{ctI32}, "i64.load8_s"},
	OpcodeI64Load8U:  {ctI64, [3]codeType{ctI32}, "i64.load8_u"},
	OpcodeI64Load16S: {ctI64, [3]codeType{ctI32}, "i64.load16_s"},
	OpcodeI64Load16U: {ctI64, [3]codeType{ctI32}, "i64.load16_u"},
	OpcodeI64Load32S: {ctI64, [3]codeType{ctI32}, "i64.load32_s"},
	OpcodeI64Load32U: {ctI64, [3]codeType{ctI32}, "i64.load32_u"},
	OpcodeI32Store:   {ctNone, [3]codeType{ctI32, ctI32}, "i32.store"},
	OpcodeI64Store:   {ctNone, [3]codeType{ctI32, ctI64}, "i64.store"},
	OpcodeF32Store:   {ctNone, [3]codeType{ctI32, ctF32}, "f32.store"},
	OpcodeF64Store:   {ctNone, [3]codeType{ctI32, ctF64}, "f64.store"},
	OpcodeI32Store8:  {ctNone, [3]codeType{ctI32, ctI32}, "i32.store8"},
	OpcodeI32Store16: {ctNone, [3]codeType{ctI32, ctI32}, "i32.store16"},
	OpcodeI64Store8:  {ctNone, [3]codeType{ctI32, ctI64}, "i64.store8"},
	OpcodeI64Store16: {ctNone, [3]codeType{ctI32, ctI64}, "i64.store16"},
	OpcodeI64Store32: {ctNone, [3]codeType{ctI32, ctI64}, "i64.store32"},
	OpcodeMemorySize: {ctI32, [3]codeType{}, "memory.size"},
	OpcodeMemoryGrow: {ctI32, [3]codeType{ctI32}, "memory.grow"},

	OpcodeI32Const: {ctI32, [3]codeType{}, "i32.const"},
	OpcodeI64Const: {ctI64, [3]codeType{}, "i64.const"},
	OpcodeF32Const: {ctF32, [3]codeType{}, "f32.const"},
	OpcodeF64Const: {ctF64, [3]codeType{}, "f64.const"},

	OpcodeI32Eqz: {ctI32, [3]codeType{ctI32}, "i32.eqz"},
	OpcodeI32Eq:  {ctI32, [3]codeType{ctI32, ctI32}, "i32.eq"},
	OpcodeI32Ne:  {ctI32, [3]codeType{ctI32, ctI32}, "i32.ne"},
	OpcodeI32LtS: {ctI32, [3]codeType{ctI32, ctI32}, "i32.lt_s"},
	OpcodeI32LtU: {ctI32, [3]codeType{ctI32, ctI32}, "i32.lt_u"},
	OpcodeI32GtS: {ctI32, [3]codeType{ctI32, ctI32}, "i32.gt_s"},
	OpcodeI32GtU: {ctI32, [3]codeType{ctI32, ctI32}, "i32.gt_u"},
	OpcodeI32LeS: {ctI32, [3]codeType{ctI32, ctI32}, "i32.le_s"},
	OpcodeI32LeU: {ctI32, [3]codeType{ctI32, ctI32}, "i32.le_u"},
	OpcodeI32GeS: {ctI32, [3]codeType{ctI32, ctI32}, "i32.ge_s"},
	OpcodeI32GeU: {ctI32, [3]codeType{ctI32, ctI32}, "i32.ge_u"},
	OpcodeI64Eqz: {ctI32, [3]codeType{ctI64}, "i64.eqz"},
	OpcodeI64Eq:  {ctI32, [3]codeType{ctI64, ctI64}, "i64.eq"},
	OpcodeI64Ne:  {ctI32, [3]codeType{ctI64, ctI64}, "i64.ne"},
	OpcodeI64LtS: {ctI32, [3]codeType{ctI64, ctI64}, "i64.lt_s"},
	OpcodeI64LtU: {ctI32, [3]codeType{ctI64, ctI64}, "i64.lt_u"},
	OpcodeI64GtS: {ctI32, [3]codeType{ctI64, ctI64}, "i64.gt_s"},
	OpcodeI64GtU: {ctI32, [3]codeType{ctI64, ctI64}, "i64.gt_u"},
	OpcodeI64LeS: {ctI32, [3]codeType{ctI64, ctI64}, "i64.le_s"},
	OpcodeI64LeU: {ctI32, [3]codeType{ctI64, ctI64}, "i64.le_u"},
	OpcodeI64GeS: {ctI32, [3]codeType{ctI64, ctI64}, "i64.ge_s"},
	OpcodeI64GeU: {ctI32, [3]codeType{ctI64, ctI64}, "i64.ge_u"},
	OpcodeF32Eq:  {ctI32, [3]codeType{ctF32, ctF32}, "f32.eq"},
	OpcodeF32Ne:  {ctI32, [3]codeType{ctF32, ctF32}, "f32.ne"},
	OpcodeF32Lt:  {ctI32, [3]codeType{ctF32, ctF32}, "f32.lt"},
	OpcodeF32Gt:  {ctI32, [3]codeType{ctF32, ctF32}, "f32.gt"},
	OpcodeF32Le:  {ctI32, [3]codeType{ctF32, ctF32}, "f32.le"},
	OpcodeF32Ge:  {ctI32, [3]codeType{ctF32, ctF32}, "f32.ge"},
	OpcodeF64Eq:  {ctI32, [3]codeType{ctF64, ctF64}, "f64.eq"},
	OpcodeF64Ne:  {ctI32, [3]codeType{ctF64, ctF64}, "f64.ne"},
	OpcodeF64Lt:  {ctI32, [3]codeType{ctF64, ctF64}, "f64.lt"},
	OpcodeF64Gt:  {ctI32, [3]codeType{ctF64, ctF64}, "f64.gt"},
	OpcodeF64Le:  {ctI32, [3]codeType{ctF64, ctF64}, "f64.le"},
	OpcodeF64Ge:  {ctI32, [3]codeType{ctF64, ctF64}, "f64.ge"},

	OpcodeI32Clz:    {ctI32, [3]codeType{ctI32}, "i32.clz"},
	OpcodeI32Ctz:    {ctI32, [3]codeType{ctI32}, "i32.ctz"},
	OpcodeI32Popcnt: {ctI32, [3]codeType{ctI32}, "i32.popcnt"},
	OpcodeI32Add:    {ctI32, [3]codeType{ctI32, ctI32}, "i32.add"},
	OpcodeI32Sub:    {ctI32, [3]codeType{ctI32, ctI32}, "i32.sub"},
	OpcodeI32Mul:    {ctI32, [3]codeType{ctI32, ctI32}, "i32.mul"},
	OpcodeI32DivS:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.div_s"},
	OpcodeI32DivU:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.div_u"},
	OpcodeI32RemS:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.rem_s"},
	OpcodeI32RemU:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.rem_u"},
	OpcodeI32And:    {ctI32, [3]codeType{ctI32, ctI32}, "i32.and"},
	OpcodeI32Or:     {ctI32, [3]codeType{ctI32, ctI32}, "i32.or"},
	OpcodeI32Xor:    {ctI32, [3]codeType{ctI32, ctI32}, "i32.xor"},
	OpcodeI32Shl:    {ctI32, [3]codeType{ctI32, ctI32}, "i32.shl"},
	OpcodeI32ShrS:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.shr_s"},
	OpcodeI32ShrU:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.shr_u"},
	OpcodeI32Rotl:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.rotl"},
	OpcodeI32Rotr:   {ctI32, [3]codeType{ctI32, ctI32}, "i32.rotr"},
	OpcodeI64Clz:    {ctI64, [3]codeType{ctI64}, "i64.clz"},
	OpcodeI64Ctz:    {ctI64, [3]codeType{ctI64}, "i64.ctz"},
	OpcodeI64Popcnt: {ctI64, [3]codeType{ctI64}, "i64.popcnt"},
	OpcodeI64Add:    {ctI64, [3]codeType{ctI64, ctI64}, "i64.add"},
	OpcodeI64Sub:    {ctI64, [3]codeType{ctI64, ctI64}, "i64.sub"},
	OpcodeI64Mul:    {ctI64, [3]codeType{ctI64, ctI64}, "i64.mul"},
	OpcodeI64DivS:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.div_s"},
	OpcodeI64DivU:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.div_u"},
	OpcodeI64RemS:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.rem_s"},
	OpcodeI64RemU:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.rem_u"},
	OpcodeI64And:    {ctI64, [3]codeType{ctI64, ctI64}, "i64.and"},
	OpcodeI64Or:     {ctI64, [3]codeType{ctI64, ctI64}, "i64.or"},
	OpcodeI64Xor:    {ctI64, [3]codeType{ctI64, ctI64}, "i64.xor"},
	OpcodeI64Shl:    {ctI64, [3]codeType{ctI64, ctI64}, "i64.shl"},
	OpcodeI64ShrS:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.shr_s"},
	OpcodeI64ShrU:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.shr_u"},
	OpcodeI64Rotl:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.rotl"},
	OpcodeI64Rotr:   {ctI64, [3]codeType{ctI64, ctI64}, "i64.rotr"},

	OpcodeF32Abs:      {ctF32, [3]codeType{ctF32}, "f32.abs"},
	OpcodeF32Neg:      {ctF32, [3]codeType{ctF32}, "f32.neg"},
	OpcodeF32Ceil:     {ctF32, [3]codeType{ctF32}, "f32.ceil"},
	OpcodeF32Floor:    {ctF32, [3]codeType{ctF32}, "f32.floor"},
	OpcodeF32Trunc:    {ctF32, [3]codeType{ctF32}, "f32.trunc"},
	OpcodeF32Nearest:  {ctF32, [3]codeType{ctF32}, "f32.nearest"},
	OpcodeF32Sqrt:     {ctF32, [3]codeType{ctF32}, "f32.sqrt"},
	OpcodeF32Add:      {ctF32, [3]codeType{ctF32, ctF32}, "f32.add"},
	OpcodeF32Sub:      {ctF32, [3]codeType{ctF32, ctF32}, "f32.sub"},
	OpcodeF32Mul:      {ctF32, [3]codeType{ctF32, ctF32}, "f32.mul"},
	OpcodeF32Div:      {ctF32, [3]codeType{ctF32, ctF32}, "f32.div"},
	OpcodeF32Min:      {ctF32, [3]codeType{ctF32, ctF32}, "f32.min"},
	OpcodeF32Max:      {ctF32, [3]codeType{ctF32, ctF32}, "f32.max"},
	OpcodeF32Copysign: {ctF32, [3]codeType{ctF32, ctF32}, "f32.copysign"},
	OpcodeF64Abs:      {ctF64, [3]codeType{ctF64}, "f64.abs"},
	OpcodeF64Neg:      {ctF64, [3]codeType{ctF64}, "f64.neg"},
	OpcodeF64Ceil:     {ctF64, [3]codeType{ctF64}, "f64.ceil"},
	OpcodeF64Floor:    {ctF64, [3]codeType{ctF64}, "f64.floor"},
	OpcodeF64Trunc:    {ctF64, [3]codeType{ctF64}, "f64.trunc"},
	OpcodeF64Nearest:  {ctF64, [3]codeType{ctF64}, "f64.nearest"},
	OpcodeF64Sqrt:     {ctF64, [3]codeType{ctF64}, "f64.sqrt"},
	OpcodeF64Add:      {ctF64, [3]codeType{ctF64, ctF64}, "f64.add"},
	OpcodeF64Sub:      {ctF64, [3]codeType{ctF64, ctF64}, "f64.sub"},
	OpcodeF64Mul:      {ctF64, [3]codeType{ctF64, ctF64}, "f64.mul"},
	OpcodeF64Div:      {ctF64, [3]codeType{ctF64, ctF64}, "f64.div"},
	OpcodeF64Min:      {ctF64, [3]codeType{ctF64, ctF64}, "f64.min"},
	OpcodeF64Max:      {ctF64, [3]codeType{ctF64, ctF64}, "f64.max"},
	OpcodeF64Copysign: {ctF64, [3]codeType{ctF64, ctF64}, "f64.copysign"},

	OpcodeI32WrapI64:        {ctI32, [3]codeType{ctI64}, "i32.wrap_i64"},
	OpcodeI32TruncF32S:      {ctI32, [3]codeType{ctF32}, "i32.trunc_f32_s"},
	OpcodeI32TruncF32U:      {ctI32, [3]codeType{ctF32}, "i32.trunc_f32_u"},
	OpcodeI32TruncF64S:      {ctI32, [3]codeType{ctF64}, "i32.trunc_f64_s"},
	OpcodeI32TruncF64U:      {ctI32, [3]codeType{ctF64}, "i32.trunc_f64_u"},
	OpcodeI64ExtendI32S:     {ctI64, [3]codeType{ctI32}, "i64.extend_i32_s"},
	OpcodeI64ExtendI32U:     {ctI64, [3]codeType{ctI32}, "i64.extend_i32_u"},
	OpcodeI64TruncF32S:      {ctI64, [3]codeType{ctF32}, "i64.trunc_f32_s"},
	OpcodeI64TruncF32U:      {ctI64, [3]codeType{ctF32}, "i64.trunc_f32_u"},
	OpcodeI64TruncF64S:      {ctI64, [3]codeType{ctF64}, "i64.trunc_f64_s"},
	OpcodeI64TruncF64U:      {ctI64, [3]codeType{ctF64}, "i64.trunc_f64_u"},
	OpcodeF32ConvertI32S:    {ctF32, [3]codeType{ctI32}, "f32.convert_i32_s"},
	OpcodeF32ConvertI32U:    {ctF32, [3]codeType{ctI32}, "f32.convert_i32_u"},
	OpcodeF32ConvertI64S:    {ctF32, [3]codeType{ctI64}, "f32.convert_i64_s"},
	OpcodeF32ConvertI64U:    {ctF32, [3]codeType{ctI64}, "f32.convert_i64_u"},
	OpcodeF32DemoteF64:      {ctF32, [3]codeType{ctF64}, "f32.demote_f64"},
	OpcodeF64ConvertI32S:    {ctF64, [3]codeType{ctI32}, "f64.convert_i32_s"},
	OpcodeF64ConvertI32U:    {ctF64, [3]codeType{ctI32}, "f64.convert_i32_u"},
	OpcodeF64ConvertI64S:    {ctF64, [3]codeType{ctI64}, "f64.convert_i64_s"},
	OpcodeF64ConvertI64U:    {ctF64, [3]codeType{ctI64}, "f64.convert_i64_u"},
	OpcodeF64PromoteF32:     {ctF64, [3]codeType{ctF32}, "f64.promote_f32"},
	OpcodeI32ReinterpretF32: {ctI32, [3]codeType{ctF32}, "i32.reinterpret_f32"},
	OpcodeI64ReinterpretF64: {ctI64, [3]codeType{ctF64}, "i64.reinterpret_f64"},
	OpcodeF32ReinterpretI32: {ctF32, [3]codeType{ctI32}, "f32.reinterpret_i32"},
	OpcodeF64ReinterpretI64: {ctF64, [3]codeType{ctI64}, "f64.reinterpret_i64"},

	OpcodeI32Extend8S:  {ctI32, [3]codeType{ctI32}, "i32.extend8_s"},
	OpcodeI32Extend16S: {ctI32, [3]codeType{ctI32}, "i32.extend16_s"},
	OpcodeI64Extend8S:  {ctI64, [3]codeType{ctI64}, "i64.extend8_s"},
	OpcodeI64Extend16S: {ctI64, [3]codeType{ctI64}, "i64.extend16_s"},
	OpcodeI64Extend32S: {ctI64, [3]codeType{ctI64}, "i64.extend32_s"},

	OpcodeRefNull:   {ctNone, [3]codeType{}, "ref.null"},
	OpcodeRefIsNull: {ctI32, [3]codeType{}, "ref.is_null"},
	OpcodeRefFunc:   {ctNone, [3]codeType{}, "ref.func"},

	OpcodeI32TruncSatF32S: {ctI32, [3]codeType{ctF32}, "i32.trunc_sat_f32_s"},
	OpcodeI32TruncSatF32U: {ctI32, [3]codeType{ctF32}, "i32.trunc_sat_f32_u"},
	OpcodeI32TruncSatF64S: {ctI32, [3]codeType{ctF64}, "i32.trunc_sat_f64_s"},
	OpcodeI32TruncSatF64U: {ctI32, [3]codeType{ctF64}, "i32.trunc_sat_f64_u"},
	OpcodeI64TruncSatF32S: {ctI64, [3]codeType{ctF32}, "i64.trunc_sat_f32_s"},
	OpcodeI64TruncSatF32U: {ctI64, [3]codeType{ctF32}, "i64.trunc_sat_f32_u"},
	OpcodeI64TruncSatF64S: {ctI64, [3]codeType{ctF64}, "i64.trunc_sat_f64_s"},
	OpcodeI64TruncSatF64U: {ctI64, [3]codeType{ctF64}, "i64.trunc_sat_f64_u"},
	OpcodeMemoryInit:      {ctNone, [3]codeType{ctI32, ctI32, ctI32}, "memory.init"},
	OpcodeDataDrop:        {ctNone, [3]codeType{}, "data.drop"},
	OpcodeMemoryCopy:      {ctNone, [3]codeType{ctI32, ctI32, ctI32}, "memory.copy"},
	OpcodeMemoryFill:      {ctNone, [3]codeType{ctI32, ctI32, ctI32}, "memory.fill"},
	OpcodeTableInit:       {ctNone, [3]codeType{ctI32, ctI32, ctI32}, "table.init"},
	OpcodeElemDrop:        {ctNone, [3]codeType{}, "elem.drop"},
	OpcodeTableCopy:       {ctNone, [3]codeType{ctI32, ctI32, ctI32}, "table.copy"},
	OpcodeTableGrow:       {ctI32, [3]codeType{}, "table.grow"},
	OpcodeTableSize:       {ctI32, [3]codeType{}, "table.size"},
	OpcodeTableFill:       {ctNone, [3]codeType{}, "table.fill"},

	OpcodeV128Load:        {ctV128, [3]codeType{ctI32}, "v128.load"},
	OpcodeV128Load8x8S:    {ctV128, [3]codeType{ctI32}, "v128.load8x8_s"},
	OpcodeV128Load8x8U:    {ctV128, [3]codeType{ctI32}, "v128.load8x8_u"},
	OpcodeV128Load16x4S:   {ctV128, [3]codeType{ctI32}, "v128.load16x4_s"},
	OpcodeV128Load16x4U:   {ctV128, [3]codeType{ctI32}, "v128.load16x4_u"},
	OpcodeV128Load32x2S:   {ctV128, [3]codeType{ctI32}, "v128.load32x2_s"},
	OpcodeV128Load32x2U:   {ctV128, [3]codeType{ctI32}, "v128.load32x2_u"},
	OpcodeV128Load8Splat:  {ctV128, [3]codeType{ctI32}, "v128.load8_splat"},
	OpcodeV128Load16Splat: {ctV128, [3]codeType{ctI32}, "v128.load16_splat"},
	OpcodeV128Load32Splat: {ctV128, [3]codeType{ctI32}, "v128.load32_splat"},
	OpcodeV128Load64Splat: {ctV128, [3]codeType{ctI32}, "v128.load64_splat"},
	OpcodeV128Store:       {ctNone, [3]codeType{ctI32, ctV128}, "v128.store"},
	OpcodeV128Const:       {ctV128, [3]codeType{}, "v128.const"},
	OpcodeI8x16Shuffle:    {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.shuffle"},
	OpcodeI8x16Swizzle:    {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.swizzle"},
	OpcodeI8x16Splat:      {ctV128, [3]codeType{ctI32}, "i8x16.splat"},
	OpcodeI16x8Splat:      {ctV128, [3]codeType{ctI32}, "i16x8.splat"},
	OpcodeI32x4Splat:      {ctV128, [3]codeType{ctI32}, "i32x4.splat"},
	OpcodeI64x2Splat:      {ctV128, [3]codeType{ctI64}, "i64x2.splat"},
	OpcodeF32x4Splat:      {ctV128, [3]codeType{ctF32}, "f32x4.splat"},
	OpcodeF64x2Splat:      {ctV128, [3]codeType{ctF64}, "f64x2.splat"},

	OpcodeI8x16ExtractLaneS: {ctI32, [3]codeType{ctV128}, "i8x16.extract_lane_s"},
	OpcodeI8x16ExtractLaneU: {ctI32, [3]codeType{ctV128}, "i8x16.extract_lane_u"},
	OpcodeI8x16ReplaceLane:  {ctV128, [3]codeType{ctV128, ctI32}, "i8x16.replace_lane"},
	OpcodeI16x8ExtractLaneS: {ctI32, [3]codeType{ctV128}, "i16x8.extract_lane_s"},
	OpcodeI16x8ExtractLaneU: {ctI32, [3]codeType{ctV128}, "i16x8.extract_lane_u"},
	OpcodeI16x8ReplaceLane:  {ctV128, [3]codeType{ctV128, ctI32}, "i16x8.replace_lane"},
	OpcodeI32x4ExtractLane:  {ctI32, [3]codeType{ctV128}, "i32x4.extract_lane"},
	OpcodeI32x4ReplaceLane:  {ctV128, [3]codeType{ctV128, ctI32}, "i32x4.replace_lane"},
	OpcodeI64x2ExtractLane:  {ctI64, [3]codeType{ctV128}, "i64x2.extract_lane"},
	OpcodeI64x2ReplaceLane:  {ctV128, [3]codeType{ctV128, ctI64}, "i64x2.replace_lane"},
	OpcodeF32x4ExtractLane:  {ctF32, [3]codeType{ctV128}, "f32x4.extract_lane"},
	OpcodeF32x4ReplaceLane:  {ctV128, [3]codeType{ctV128, ctF32}, "f32x4.replace_lane"},
	OpcodeF64x2ExtractLane:  {ctF64, [3]codeType{ctV128}, "f64x2.extract_lane"},
	OpcodeF64x2ReplaceLane:  {ctV128, [3]codeType{ctV128, ctF64}, "f64x2.replace_lane"},

	OpcodeI8x16Eq:  {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.eq"},
	OpcodeI8x16Ne:  {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.ne"},
	OpcodeI8x16LtS: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.lt_s"},
	OpcodeI8x16LtU: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.lt_u"},
	OpcodeI8x16GtS: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.gt_s"},
	OpcodeI8x16GtU: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.gt_u"},
	OpcodeI8x16LeS: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.le_s"},
	OpcodeI8x16LeU: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.le_u"},
	OpcodeI8x16GeS: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.ge_s"},
	OpcodeI8x16GeU: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.ge_u"},
	OpcodeI16x8Eq:  {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.eq"},
	OpcodeI16x8Ne:  {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.ne"},
	OpcodeI16x8LtS: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.lt_s"},
	OpcodeI16x8LtU: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.lt_u"},
	OpcodeI16x8GtS: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.gt_s"},
	OpcodeI16x8GtU: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.gt_u"},
	OpcodeI16x8LeS: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.le_s"},
	OpcodeI16x8LeU: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.le_u"},
	OpcodeI16x8GeS: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.ge_s"},
	OpcodeI16x8GeU: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.ge_u"},
	OpcodeI32x4Eq:  {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.eq"},
	OpcodeI32x4Ne:  {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.ne"},
	OpcodeI32x4LtS: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.lt_s"},
	OpcodeI32x4LtU: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.lt_u"},
	OpcodeI32x4GtS: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.gt_s"},
	OpcodeI32x4GtU: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.gt_u"},
	OpcodeI32x4LeS: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.le_s"},
	OpcodeI32x4LeU: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.le_u"},
	OpcodeI32x4GeS: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.ge_s"},
	OpcodeI32x4GeU: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.ge_u"},
	OpcodeF32x4Eq:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.eq"},
	OpcodeF32x4Ne:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.ne"},
	OpcodeF32x4Lt:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.lt"},
	OpcodeF32x4Gt:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.gt"},
	OpcodeF32x4Le:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.le"},
	OpcodeF32x4Ge:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.ge"},
	OpcodeF64x2Eq:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.eq"},
	OpcodeF64x2Ne:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.ne"},
	OpcodeF64x2Lt:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.lt"},
	OpcodeF64x2Gt:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.gt"},
	OpcodeF64x2Le:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.le"},
	OpcodeF64x2Ge:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.ge"},

	OpcodeV128Not:       {ctV128, [3]codeType{ctV128}, "v128.not"},
	OpcodeV128And:       {ctV128, [3]codeType{ctV128, ctV128}, "v128.and"},
	OpcodeV128AndNot:    {ctV128, [3]codeType{ctV128, ctV128}, "v128.andnot"},
	OpcodeV128Or:        {ctV128, [3]codeType{ctV128, ctV128}, "v128.or"},
	OpcodeV128Xor:       {ctV128, [3]codeType{ctV128, ctV128}, "v128.xor"},
	OpcodeV128BitSelect: {ctV128, [3]codeType{ctV128, ctV128, ctV128}, "v128.bitselect"},
	OpcodeV128AnyTrue:   {ctI32, [3]codeType{ctV128}, "v128.any_true"},

	OpcodeV128Load8Lane:   {ctV128, [3]codeType{ctI32, ctV128}, "v128.load8_lane"},
	OpcodeV128Load16Lane:  {ctV128, [3]codeType{ctI32, ctV128}, "v128.load16_lane"},
	OpcodeV128Load32Lane:  {ctV128, [3]codeType{ctI32, ctV128}, "v128.load32_lane"},
	OpcodeV128Load64Lane:  {ctV128, [3]codeType{ctI32, ctV128}, "v128.load64_lane"},
	OpcodeV128Store8Lane:  {ctNone, [3]codeType{ctI32, ctV128}, "v128.store8_lane"},
	OpcodeV128Store16Lane: {ctNone, [3]codeType{ctI32, ctV128}, "v128.store16_lane"},
	OpcodeV128Store32Lane: {ctNone, [3]codeType{ctI32, ctV128}, "v128.store32_lane"},
	OpcodeV128Store64Lane: {ctNone, [3]codeType{ctI32, ctV128}, "v128.store64_lane"},
	OpcodeV128Load32Zero:  {ctV128, [3]codeType{ctI32}, "v128.load32_zero"},
	OpcodeV128Load64Zero:  {ctV128, [3]codeType{ctI32}, "v128.load64_zero"},

	OpcodeF32x4DemoteF64x2Zero: {ctV128, [3]codeType{ctV128}, "f32x4.demote_f64x2_zero"},
	OpcodeF64x2PromoteLowF32x4: {ctV128, [3]codeType{ctV128}, "f64x2.promote_low_f32x4"},

	OpcodeI8x16Abs:          {ctV128, [3]codeType{ctV128}, "i8x16.abs"},
	OpcodeI8x16Neg:          {ctV128, [3]codeType{ctV128}, "i8x16.neg"},
	OpcodeI8x16Popcnt:       {ctV128, [3]codeType{ctV128}, "i8x16.popcnt"},
	OpcodeI8x16AllTrue:      {ctI32, [3]codeType{ctV128}, "i8x16.all_true"},
	OpcodeI8x16BitMask:      {ctI32, [3]codeType{ctV128}, "i8x16.bitmask"},
	OpcodeI8x16NarrowI16x8S: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.narrow_i16x8_s"},
	OpcodeI8x16NarrowI16x8U: {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.narrow_i16x8_u"},
	OpcodeF32x4Ceil:         {ctV128, [3]codeType{ctV128}, "f32x4.ceil"},
	OpcodeF32x4Floor:        {ctV128, [3]codeType{ctV128}, "f32x4.floor"},
	OpcodeF32x4Trunc:        {ctV128, [3]codeType{ctV128}, "f32x4.trunc"},
	OpcodeF32x4Nearest:      {ctV128, [3]codeType{ctV128}, "f32x4.nearest"},
	OpcodeI8x16Shl:          {ctV128, [3]codeType{ctV128, ctI32}, "i8x16.shl"},
	OpcodeI8x16ShrS:         {ctV128, [3]codeType{ctV128, ctI32}, "i8x16.shr_s"},
	OpcodeI8x16ShrU:         {ctV128, [3]codeType{ctV128, ctI32}, "i8x16.shr_u"},
	OpcodeI8x16Add:          {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.add"},
	OpcodeI8x16AddSatS:      {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.add_sat_s"},
	OpcodeI8x16AddSatU:      {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.add_sat_u"},
	OpcodeI8x16Sub:          {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.sub"},
	OpcodeI8x16SubSatS:      {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.sub_sat_s"},
	OpcodeI8x16SubSatU:      {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.sub_sat_u"},
	OpcodeF64x2Ceil:         {ctV128, [3]codeType{ctV128}, "f64x2.ceil"},
	OpcodeF64x2Floor:        {ctV128, [3]codeType{ctV128}, "f64x2.floor"},
	OpcodeI8x16MinS:         {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.min_s"},
	OpcodeI8x16MinU:         {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.min_u"},
	OpcodeI8x16MaxS:         {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.max_s"},
	OpcodeI8x16MaxU:         {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.max_u"},
	OpcodeF64x2Trunc:        {ctV128, [3]codeType{ctV128}, "f64x2.trunc"},
	OpcodeI8x16AvgrU:        {ctV128, [3]codeType{ctV128, ctV128}, "i8x16.avgr_u"},

	OpcodeI16x8ExtAddPairwiseI8x16S: {ctV128, [3]codeType{ctV128}, "i16x8.extadd_pairwise_i8x16_s"},
	OpcodeI16x8ExtAddPairwiseI8x16U: {ctV128, [3]codeType{ctV128}, "i16x8.extadd_pairwise_i8x16_u"},
	OpcodeI32x4ExtAddPairwiseI16x8S: {ctV128, [3]codeType{ctV128}, "i32x4.extadd_pairwise_i16x8_s"},
	OpcodeI32x4ExtAddPairwiseI16x8U: {ctV128, [3]codeType{ctV128}, "i32x4.extadd_pairwise_i16x8_u"},

	OpcodeI16x8Abs:              {ctV128, [3]codeType{ctV128}, "i16x8.abs"},
	OpcodeI16x8Neg:              {ctV128, [3]codeType{ctV128}, "i16x8.neg"},
	OpcodeI16x8Q15mulrSatS:      {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.q15mulr_sat_s"},
	OpcodeI16x8AllTrue:          {ctI32, [3]codeType{ctV128}, "i16x8.all_true"},
	OpcodeI16x8BitMask:          {ctI32, [3]codeType{ctV128}, "i16x8.bitmask"},
	OpcodeI16x8NarrowI32x4S:     {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.narrow_i32x4_s"},
	OpcodeI16x8NarrowI32x4U:     {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.narrow_i32x4_u"},
	OpcodeI16x8ExtendLowI8x16S:  {ctV128, [3]codeType{ctV128}, "i16x8.extend_low_i8x16_s"},
	OpcodeI16x8ExtendHighI8x16S: {ctV128, [3]codeType{ctV128}, "i16x8.extend_high_i8x16_s"},
	OpcodeI16x8ExtendLowI8x16U:  {ctV128, [3]codeType{ctV128}, "i16x8.extend_low_i8x16_u"},
	OpcodeI16x8ExtendHighI8x16U: {ctV128, [3]codeType{ctV128}, "i16x8.extend_high_i8x16_u"},
	OpcodeI16x8Shl:              {ctV128, [3]codeType{ctV128, ctI32}, "i16x8.shl"},
	OpcodeI16x8ShrS:             {ctV128, [3]codeType{ctV128, ctI32}, "i16x8.shr_s"},
	OpcodeI16x8ShrU:             {ctV128, [3]codeType{ctV128, ctI32}, "i16x8.shr_u"},
	OpcodeI16x8Add:              {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.add"},
	OpcodeI16x8AddSatS:          {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.add_sat_s"},
	OpcodeI16x8AddSatU:          {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.add_sat_u"},
	OpcodeI16x8Sub:              {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.sub"},
	OpcodeI16x8SubSatS:          {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.sub_sat_s"},
	OpcodeI16x8SubSatU:          {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.sub_sat_u"},
	OpcodeF64x2Nearest:          {ctV128, [3]codeType{ctV128}, "f64x2.nearest"},
	OpcodeI16x8Mul:              {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.mul"},
	OpcodeI16x8MinS:             {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.min_s"},
	OpcodeI16x8MinU:             {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.min_u"},
	OpcodeI16x8MaxS:             {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.max_s"},
	OpcodeI16x8MaxU:             {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.max_u"},
	OpcodeI16x8AvgrU:            {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.avgr_u"},
	OpcodeI16x8ExtMulLowI8x16S:  {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.extmul_low_i8x16_s"},
	OpcodeI16x8ExtMulHighI8x16S: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.extmul_high_i8x16_s"},
	OpcodeI16x8ExtMulLowI8x16U:  {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.extmul_low_i8x16_u"},
	OpcodeI16x8ExtMulHighI8x16U: {ctV128, [3]codeType{ctV128, ctV128}, "i16x8.extmul_high_i8x16_u"},

	OpcodeI32x4Abs:              {ctV128, [3]codeType{ctV128}, "i32x4.abs"},
	OpcodeI32x4Neg:              {ctV128, [3]codeType{ctV128}, "i32x4.neg"},
	OpcodeI32x4AllTrue:          {ctI32, [3]codeType{ctV128}, "i32x4.all_true"},
	OpcodeI32x4BitMask:          {ctI32, [3]codeType{ctV128}, "i32x4.bitmask"},
	OpcodeI32x4ExtendLowI16x8S:  {ctV128, [3]codeType{ctV128}, "i32x4.extend_low_i16x8_s"},
	OpcodeI32x4ExtendHighI16x8S: {ctV128, [3]codeType{ctV128}, "i32x4.extend_high_i16x8_s"},
	OpcodeI32x4ExtendLowI16x8U:  {ctV128, [3]codeType{ctV128}, "i32x4.extend_low_i16x8_u"},
	OpcodeI32x4ExtendHighI16x8U: {ctV128, [3]codeType{ctV128}, "i32x4.extend_high_i16x8_u"},
	OpcodeI32x4Shl:              {ctV128, [3]codeType{ctV128, ctI32}, "i32x4.shl"},
	OpcodeI32x4ShrS:             {ctV128, [3]codeType{ctV128, ctI32}, "i32x4.shr_s"},
	OpcodeI32x4ShrU:             {ctV128, [3]codeType{ctV128, ctI32}, "i32x4.shr_u"},
	OpcodeI32x4Add:              {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.add"},
	OpcodeI32x4Sub:              {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.sub"},
	OpcodeI32x4Mul:              {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.mul"},
	OpcodeI32x4MinS:             {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.min_s"},
	OpcodeI32x4MinU:             {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.min_u"},
	OpcodeI32x4MaxS:             {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.max_s"},
	OpcodeI32x4MaxU:             {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.max_u"},
	OpcodeI32x4DotI16x8S:        {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.dot_i16x8_s"},
	OpcodeI32x4ExtMulLowI16x8S:  {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.extmul_low_i16x8_s"},
	OpcodeI32x4ExtMulHighI16x8S: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.extmul_high_i16x8_s"},
	OpcodeI32x4ExtMulLowI16x8U:  {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.extmul_low_i16x8_u"},
	OpcodeI32x4ExtMulHighI16x8U: {ctV128, [3]codeType{ctV128, ctV128}, "i32x4.extmul_high_i16x8_u"},

	OpcodeI64x2Abs:              {ctV128, [3]codeType{ctV128}, "i64x2.abs"},
	OpcodeI64x2Neg:              {ctV128, [3]codeType{ctV128}, "i64x2.neg"},
	OpcodeI64x2AllTrue:          {ctI32, [3]codeType{ctV128}, "i64x2.all_true"},
	OpcodeI64x2BitMask:          {ctI32, [3]codeType{ctV128}, "i64x2.bitmask"},
	OpcodeI64x2ExtendLowI32x4S:  {ctV128, [3]codeType{ctV128}, "i64x2.extend_low_i32x4_s"},
	OpcodeI64x2ExtendHighI32x4S: {ctV128, [3]codeType{ctV128}, "i64x2.extend_high_i32x4_s"},
	OpcodeI64x2ExtendLowI32x4U:  {ctV128, [3]codeType{ctV128}, "i64x2.extend_low_i32x4_u"},
	OpcodeI64x2ExtendHighI32x4U: {ctV128, [3]codeType{ctV128}, "i64x2.extend_high_i32x4_u"},
	OpcodeI64x2Shl:              {ctV128, [3]codeType{ctV128, ctI32}, "i64x2.shl"},
	OpcodeI64x2ShrS:             {ctV128, [3]codeType{ctV128, ctI32}, "i64x2.shr_s"},
	OpcodeI64x2ShrU:             {ctV128, [3]codeType{ctV128, ctI32}, "i64x2.shr_u"},
	OpcodeI64x2Add:              {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.add"},
	OpcodeI64x2Sub:              {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.sub"},
	OpcodeI64x2Mul:              {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.mul"},
	OpcodeI64x2Eq:               {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.eq"},
	OpcodeI64x2Ne:               {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.ne"},
	OpcodeI64x2LtS:              {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.lt_s"},
	OpcodeI64x2GtS:              {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.gt_s"},
	OpcodeI64x2LeS:              {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.le_s"},
	OpcodeI64x2GeS:              {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.ge_s"},
	OpcodeI64x2ExtMulLowI32x4S:  {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.extmul_low_i32x4_s"},
	OpcodeI64x2ExtMulHighI32x4S: {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.extmul_high_i32x4_s"},
	OpcodeI64x2ExtMulLowI32x4U:  {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.extmul_low_i32x4_u"},
	OpcodeI64x2ExtMulHighI32x4U: {ctV128, [3]codeType{ctV128, ctV128}, "i64x2.extmul_high_i32x4_u"},

	OpcodeF32x4Abs:  {ctV128, [3]codeType{ctV128}, "f32x4.abs"},
	OpcodeF32x4Neg:  {ctV128, [3]codeType{ctV128}, "f32x4.neg"},
	OpcodeF32x4Sqrt: {ctV128, [3]codeType{ctV128}, "f32x4.sqrt"},
	OpcodeF32x4Add:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.add"},
	OpcodeF32x4Sub:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.sub"},
	OpcodeF32x4Mul:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.mul"},
	OpcodeF32x4Div:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.div"},
	OpcodeF32x4Min:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.min"},
	OpcodeF32x4Max:  {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.max"},
	OpcodeF32x4Pmin: {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.pmin"},
	OpcodeF32x4Pmax: {ctV128, [3]codeType{ctV128, ctV128}, "f32x4.pmax"},
	OpcodeF64x2Abs:  {ctV128, [3]codeType{ctV128}, "f64x2.abs"},
	OpcodeF64x2Neg:  {ctV128, [3]codeType{ctV128}, "f64x2.neg"},
	OpcodeF64x2Sqrt: {ctV128, [3]codeType{ctV128}, "f64x2.sqrt"},
	OpcodeF64x2Add:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.add"},
	OpcodeF64x2Sub:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.sub"},
	OpcodeF64x2Mul:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.mul"},
	OpcodeF64x2Div:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.div"},
	OpcodeF64x2Min:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.min"},
	OpcodeF64x2Max:  {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.max"},
	OpcodeF64x2Pmin: {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.pmin"},
	OpcodeF64x2Pmax: {ctV128, [3]codeType{ctV128, ctV128}, "f64x2.pmax"},

	OpcodeI32x4TruncSatF32x4S:     {ctV128, [3]codeType{ctV128}, "i32x4.trunc_sat_f32x4_s"},
	OpcodeI32x4TruncSatF32x4U:     {ctV128, [3]codeType{ctV128}, "i32x4.trunc_sat_f32x4_u"},
	OpcodeF32x4ConvertI32x4S:      {ctV128, [3]codeType{ctV128}, "f32x4.convert_i32x4_s"},
	OpcodeF32x4ConvertI32x4U:      {ctV128, [3]codeType{ctV128}, "f32x4.convert_i32x4_u"},
	OpcodeI32x4TruncSatF64x2SZero: {ctV128, [3]codeType{ctV128}, "i32x4.trunc_sat_f64x2_s_zero"},
	OpcodeI32x4TruncSatF64x2UZero: {ctV128, [3]codeType{ctV128}, "i32x4.trunc_sat_f64x2_u_zero"},
	OpcodeF64x2ConvertLowI32x4S:   {ctV128, [3]codeType{ctV128}, "f64x2.convert_low_i32x4_s"},
	OpcodeF64x2ConvertLowI32x4U:   {ctV128, [3]codeType{ctV128}, "f64x2.convert_low_i32x4_u"},
}
