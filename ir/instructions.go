package ir

import "github.com/krukhlis/llvm-bcj/types"

// Instruction is a single IR operation inside a block. Every instruction is
// also a Symbol so it can be registered as a forward-reference holder; void
// instructions report the void type.
type Instruction interface {
	Symbol
	Accept(v InstructionVisitor)
}

// ValueInstruction is an instruction that produces a value and therefore
// occupies a symbol-table slot and carries a name.
type ValueInstruction interface {
	Instruction
	ValueSymbol
}

// valueBase carries the result type and name of a value instruction.
type valueBase struct {
	typ  types.Type
	name string
}

func newValueBase(typ types.Type) valueBase {
	return valueBase{typ: typ, name: UnknownName}
}

func (v *valueBase) Type() types.Type    { return v.typ }
func (v *valueBase) Name() string        { return v.name }
func (v *valueBase) SetName(name string) { v.name = name }

// voidBase marks instructions that produce no value.
type voidBase struct{}

func (voidBase) Type() types.Type { return types.Void }

// AllocateInstruction reserves stack storage: alloca.
type AllocateInstruction struct {
	valueBase
	count Symbol
	align int
}

func (i *AllocateInstruction) Count() Symbol { return i.count }
func (i *AllocateInstruction) Align() int    { return i.align }

func (i *AllocateInstruction) Replace(original, replacement Symbol) {}

func (i *AllocateInstruction) Accept(v InstructionVisitor) { v.VisitAllocate(i) }

// BinaryOperationInstruction computes an arithmetic or logical operation.
type BinaryOperationInstruction struct {
	valueBase
	operator BinaryOperator
	flags    []Flag
	lhs, rhs Symbol
}

func (i *BinaryOperationInstruction) Operator() BinaryOperator { return i.operator }
func (i *BinaryOperationInstruction) Flags() []Flag            { return i.flags }
func (i *BinaryOperationInstruction) LHS() Symbol              { return i.lhs }
func (i *BinaryOperationInstruction) RHS() Symbol              { return i.rhs }

func (i *BinaryOperationInstruction) Replace(original, replacement Symbol) {
	if i.lhs == original {
		i.lhs = replacement
	}
	if i.rhs == original {
		i.rhs = replacement
	}
}

func (i *BinaryOperationInstruction) Accept(v InstructionVisitor) { v.VisitBinaryOperation(i) }

// BranchInstruction is an unconditional branch.
type BranchInstruction struct {
	voidBase
	successor *Block
}

func (i *BranchInstruction) Successor() *Block { return i.successor }

func (i *BranchInstruction) Replace(original, replacement Symbol) {}

func (i *BranchInstruction) Accept(v InstructionVisitor) { v.VisitBranch(i) }

// ConditionalBranchInstruction branches on an i1 condition.
type ConditionalBranchInstruction struct {
	voidBase
	condition Symbol
	trueSucc  *Block
	falseSucc *Block
}

func (i *ConditionalBranchInstruction) Condition() Symbol      { return i.condition }
func (i *ConditionalBranchInstruction) TrueSuccessor() *Block  { return i.trueSucc }
func (i *ConditionalBranchInstruction) FalseSuccessor() *Block { return i.falseSucc }

func (i *ConditionalBranchInstruction) Replace(original, replacement Symbol) {}

func (i *ConditionalBranchInstruction) Accept(v InstructionVisitor) { v.VisitConditionalBranch(i) }

// CallInstruction is a call producing a value.
type CallInstruction struct {
	valueBase
	target    Symbol
	arguments []Symbol
}

func (i *CallInstruction) Target() Symbol       { return i.target }
func (i *CallInstruction) Arguments() []Symbol  { return i.arguments }
func (i *CallInstruction) addArgument(a Symbol) { i.arguments = append(i.arguments, a) }

func (i *CallInstruction) Replace(original, replacement Symbol) {
	for n, a := range i.arguments {
		if a == original {
			i.arguments[n] = replacement
		}
	}
}

func (i *CallInstruction) Accept(v InstructionVisitor) { v.VisitCall(i) }

// VoidCallInstruction is a call whose result type is void; it appears in its
// block but not in the symbol table.
type VoidCallInstruction struct {
	voidBase
	target    Symbol
	arguments []Symbol
}

func (i *VoidCallInstruction) Target() Symbol       { return i.target }
func (i *VoidCallInstruction) Arguments() []Symbol  { return i.arguments }
func (i *VoidCallInstruction) addArgument(a Symbol) { i.arguments = append(i.arguments, a) }

func (i *VoidCallInstruction) Replace(original, replacement Symbol) {
	for n, a := range i.arguments {
		if a == original {
			i.arguments[n] = replacement
		}
	}
}

func (i *VoidCallInstruction) Accept(v InstructionVisitor) { v.VisitVoidCall(i) }

// CastInstruction converts a value between types.
type CastInstruction struct {
	valueBase
	operator CastOperator
	value    Symbol
}

func (i *CastInstruction) Operator() CastOperator { return i.operator }
func (i *CastInstruction) Value() Symbol          { return i.value }

func (i *CastInstruction) Replace(original, replacement Symbol) {
	if i.value == original {
		i.value = replacement
	}
}

func (i *CastInstruction) Accept(v InstructionVisitor) { v.VisitCast(i) }

// CompareInstruction is an icmp or fcmp.
type CompareInstruction struct {
	valueBase
	operator CompareOperator
	lhs, rhs Symbol
}

func (i *CompareInstruction) Operator() CompareOperator { return i.operator }
func (i *CompareInstruction) LHS() Symbol               { return i.lhs }
func (i *CompareInstruction) RHS() Symbol               { return i.rhs }

func (i *CompareInstruction) Replace(original, replacement Symbol) {
	if i.lhs == original {
		i.lhs = replacement
	}
	if i.rhs == original {
		i.rhs = replacement
	}
}

func (i *CompareInstruction) Accept(v InstructionVisitor) { v.VisitCompare(i) }

// ExtractElementInstruction reads one vector lane; the index is symbolic.
type ExtractElementInstruction struct {
	valueBase
	vector Symbol
	index  Symbol
}

func (i *ExtractElementInstruction) Vector() Symbol { return i.vector }
func (i *ExtractElementInstruction) Index() Symbol  { return i.index }

func (i *ExtractElementInstruction) Replace(original, replacement Symbol) {}

func (i *ExtractElementInstruction) Accept(v InstructionVisitor) { v.VisitExtractElement(i) }

// ExtractValueInstruction reads an aggregate member; the index is a literal.
type ExtractValueInstruction struct {
	valueBase
	aggregate Symbol
	index     int
}

func (i *ExtractValueInstruction) Aggregate() Symbol { return i.aggregate }
func (i *ExtractValueInstruction) Index() int        { return i.index }

func (i *ExtractValueInstruction) Replace(original, replacement Symbol) {}

func (i *ExtractValueInstruction) Accept(v InstructionVisitor) { v.VisitExtractValue(i) }

// GetElementPointerInstruction computes an address from a base pointer and a
// chain of indices.
type GetElementPointerInstruction struct {
	valueBase
	isInbounds bool
	base       Symbol
	indices    []Symbol
}

func (i *GetElementPointerInstruction) IsInbounds() bool      { return i.isInbounds }
func (i *GetElementPointerInstruction) BasePointer() Symbol   { return i.base }
func (i *GetElementPointerInstruction) Indices() []Symbol     { return i.indices }
func (i *GetElementPointerInstruction) addIndex(index Symbol) { i.indices = append(i.indices, index) }

func (i *GetElementPointerInstruction) Replace(original, replacement Symbol) {
	if i.base == original {
		i.base = replacement
	}
	for n, index := range i.indices {
		if index == original {
			i.indices[n] = replacement
		}
	}
}

func (i *GetElementPointerInstruction) Accept(v InstructionVisitor) { v.VisitGetElementPointer(i) }

// IndirectBranchInstruction branches to a computed address with a declared
// successor set.
type IndirectBranchInstruction struct {
	voidBase
	address    Symbol
	successors []*Block
}

func (i *IndirectBranchInstruction) Address() Symbol      { return i.address }
func (i *IndirectBranchInstruction) Successors() []*Block { return i.successors }

func (i *IndirectBranchInstruction) Replace(original, replacement Symbol) {}

func (i *IndirectBranchInstruction) Accept(v InstructionVisitor) { v.VisitIndirectBranch(i) }

// InsertElementInstruction writes one vector lane; the index is symbolic.
type InsertElementInstruction struct {
	valueBase
	vector Symbol
	index  Symbol
	value  Symbol
}

func (i *InsertElementInstruction) Vector() Symbol { return i.vector }
func (i *InsertElementInstruction) Index() Symbol  { return i.index }
func (i *InsertElementInstruction) Value() Symbol  { return i.value }

func (i *InsertElementInstruction) Replace(original, replacement Symbol) {}

func (i *InsertElementInstruction) Accept(v InstructionVisitor) { v.VisitInsertElement(i) }

// InsertValueInstruction writes an aggregate member; the index is a literal.
type InsertValueInstruction struct {
	valueBase
	aggregate Symbol
	index     int
	value     Symbol
}

func (i *InsertValueInstruction) Aggregate() Symbol { return i.aggregate }
func (i *InsertValueInstruction) Index() int        { return i.index }
func (i *InsertValueInstruction) Value() Symbol     { return i.value }

func (i *InsertValueInstruction) Replace(original, replacement Symbol) {}

func (i *InsertValueInstruction) Accept(v InstructionVisitor) { v.VisitInsertValue(i) }

// LoadInstruction reads through a pointer.
type LoadInstruction struct {
	valueBase
	source     Symbol
	align      int
	isVolatile bool
}

func (i *LoadInstruction) Source() Symbol   { return i.source }
func (i *LoadInstruction) Align() int       { return i.align }
func (i *LoadInstruction) IsVolatile() bool { return i.isVolatile }

func (i *LoadInstruction) Replace(original, replacement Symbol) {
	if i.source == original {
		i.source = replacement
	}
}

func (i *LoadInstruction) Accept(v InstructionVisitor) { v.VisitLoad(i) }

// PhiInstruction merges one incoming value per predecessor block. Pairs
// align by index.
type PhiInstruction struct {
	valueBase
	values []Symbol
	blocks []*Block
}

func (i *PhiInstruction) Values() []Symbol { return i.values }
func (i *PhiInstruction) Blocks() []*Block { return i.blocks }

func (i *PhiInstruction) addCase(value Symbol, block *Block) {
	i.values = append(i.values, value)
	i.blocks = append(i.blocks, block)
}

func (i *PhiInstruction) Replace(original, replacement Symbol) {
	for n, value := range i.values {
		if value == original {
			i.values[n] = replacement
		}
	}
}

func (i *PhiInstruction) Accept(v InstructionVisitor) { v.VisitPhi(i) }

// ReturnInstruction leaves the function, optionally with a value.
type ReturnInstruction struct {
	voidBase
	value Symbol
}

// Value returns the returned symbol, or nil for a void return.
func (i *ReturnInstruction) Value() Symbol { return i.value }

func (i *ReturnInstruction) Replace(original, replacement Symbol) {
	if i.value == original {
		i.value = replacement
	}
}

func (i *ReturnInstruction) Accept(v InstructionVisitor) { v.VisitReturn(i) }

// SelectInstruction picks one of two values by an i1 condition.
type SelectInstruction struct {
	valueBase
	condition  Symbol
	trueValue  Symbol
	falseValue Symbol
}

func (i *SelectInstruction) Condition() Symbol  { return i.condition }
func (i *SelectInstruction) TrueValue() Symbol  { return i.trueValue }
func (i *SelectInstruction) FalseValue() Symbol { return i.falseValue }

func (i *SelectInstruction) Replace(original, replacement Symbol) {
	if i.condition == original {
		i.condition = replacement
	}
	if i.trueValue == original {
		i.trueValue = replacement
	}
	if i.falseValue == original {
		i.falseValue = replacement
	}
}

func (i *SelectInstruction) Accept(v InstructionVisitor) { v.VisitSelect(i) }

// ShuffleVectorInstruction permutes two vectors by a constant mask.
type ShuffleVectorInstruction struct {
	valueBase
	vector1 Symbol
	vector2 Symbol
	mask    Symbol
}

func (i *ShuffleVectorInstruction) Vector1() Symbol { return i.vector1 }
func (i *ShuffleVectorInstruction) Vector2() Symbol { return i.vector2 }
func (i *ShuffleVectorInstruction) Mask() Symbol    { return i.mask }

func (i *ShuffleVectorInstruction) Replace(original, replacement Symbol) {}

func (i *ShuffleVectorInstruction) Accept(v InstructionVisitor) { v.VisitShuffleVector(i) }

// StoreInstruction writes through a pointer.
type StoreInstruction struct {
	voidBase
	destination Symbol
	source      Symbol
	align       int
	isVolatile  bool
}

func (i *StoreInstruction) Destination() Symbol { return i.destination }
func (i *StoreInstruction) Source() Symbol      { return i.source }
func (i *StoreInstruction) Align() int          { return i.align }
func (i *StoreInstruction) IsVolatile() bool    { return i.isVolatile }

func (i *StoreInstruction) Replace(original, replacement Symbol) {
	if i.destination == original {
		i.destination = replacement
	}
	if i.source == original {
		i.source = replacement
	}
}

func (i *StoreInstruction) Accept(v InstructionVisitor) { v.VisitStore(i) }

// SwitchInstruction is a multi-way branch over constant case symbols.
type SwitchInstruction struct {
	voidBase
	condition    Symbol
	defaultBlock *Block
	caseValues   []Symbol
	caseBlocks   []*Block
}

func (i *SwitchInstruction) Condition() Symbol    { return i.condition }
func (i *SwitchInstruction) DefaultBlock() *Block { return i.defaultBlock }
func (i *SwitchInstruction) CaseValues() []Symbol { return i.caseValues }
func (i *SwitchInstruction) CaseBlocks() []*Block { return i.caseBlocks }

func (i *SwitchInstruction) Replace(original, replacement Symbol) {}

func (i *SwitchInstruction) Accept(v InstructionVisitor) { v.VisitSwitch(i) }

// SwitchOldInstruction is the legacy switch encoding: raw 64-bit case
// constants instead of constant symbols. It is kept as emitted, never
// rewritten into SwitchInstruction.
type SwitchOldInstruction struct {
	voidBase
	condition     Symbol
	defaultBlock  *Block
	caseConstants []uint64
	caseBlocks    []*Block
}

func (i *SwitchOldInstruction) Condition() Symbol       { return i.condition }
func (i *SwitchOldInstruction) DefaultBlock() *Block    { return i.defaultBlock }
func (i *SwitchOldInstruction) CaseConstants() []uint64 { return i.caseConstants }
func (i *SwitchOldInstruction) CaseBlocks() []*Block    { return i.caseBlocks }

func (i *SwitchOldInstruction) Replace(original, replacement Symbol) {}

func (i *SwitchOldInstruction) Accept(v InstructionVisitor) { v.VisitSwitchOld(i) }

// UnreachableInstruction marks dead control flow.
type UnreachableInstruction struct {
	voidBase
}

func (i *UnreachableInstruction) Replace(original, replacement Symbol) {}

func (i *UnreachableInstruction) Accept(v InstructionVisitor) { v.VisitUnreachable(i) }
