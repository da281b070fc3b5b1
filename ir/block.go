package ir

import "github.com/krukhlis/llvm-bcj/types"

// Block is a straight-line instruction sequence and, at the same time, a
// symbol: branches, switches and block addresses reference it by handle. It
// implements the instruction half of the builder protocol; referenced
// operands resolve through the owning function's symbol table.
type Block struct {
	function     *FunctionDefinition
	index        int
	instructions []Instruction
	name         string
}

func newBlock(function *FunctionDefinition, index int) *Block {
	return &Block{function: function, index: index, name: UnknownName}
}

// Accept visits the block's instructions in insertion order.
func (b *Block) Accept(v InstructionVisitor) {
	for _, instruction := range b.instructions {
		instruction.Accept(v)
	}
}

// addInstruction appends to the block; value instructions additionally claim
// the next symbol-table slot.
func (b *Block) addInstruction(instruction Instruction) {
	if value, ok := instruction.(ValueInstruction); ok {
		b.function.symbols.Append(value)
	}
	b.instructions = append(b.instructions, instruction)
}

func (b *Block) symbols() *Symbols { return b.function.symbols }

func (b *Block) CreateAllocation(typ types.Type, count, align int) {
	instruction := &AllocateInstruction{valueBase: newValueBase(typ), align: align}
	instruction.count = b.symbols().Lookup(count)
	b.addInstruction(instruction)
}

func (b *Block) CreateBinaryOperation(typ types.Type, opcode, flags, lhs, rhs int) {
	operator := DecodeBinaryOperator(opcode, types.IsFloatingPoint(typ))

	instruction := &BinaryOperationInstruction{
		valueBase: newValueBase(typ),
		operator:  operator,
		flags:     DecodeFlags(operator, flags),
	}
	instruction.lhs = b.symbols().LookupFor(lhs, instruction)
	instruction.rhs = b.symbols().LookupFor(rhs, instruction)
	b.addInstruction(instruction)
}

func (b *Block) CreateBranch(block int) {
	b.addInstruction(&BranchInstruction{successor: b.function.GetBlock(block)})
}

func (b *Block) CreateConditionalBranch(condition, blockTrue, blockFalse int) {
	b.addInstruction(&ConditionalBranchInstruction{
		condition: b.symbols().Lookup(condition),
		trueSucc:  b.function.GetBlock(blockTrue),
		falseSucc: b.function.GetBlock(blockFalse),
	})
}

// CreateCall emits a value call, or a void call kept out of the symbol table
// when the result type is void.
func (b *Block) CreateCall(typ types.Type, target int, arguments []int) {
	if typ == types.Void {
		instruction := &VoidCallInstruction{target: b.symbols().Lookup(target)}
		for _, argument := range arguments {
			instruction.addArgument(b.symbols().LookupFor(argument, instruction))
		}
		b.addInstruction(instruction)
		return
	}

	instruction := &CallInstruction{valueBase: newValueBase(typ)}
	instruction.target = b.symbols().Lookup(target)
	for _, argument := range arguments {
		instruction.addArgument(b.symbols().LookupFor(argument, instruction))
	}
	b.addInstruction(instruction)
}

func (b *Block) CreateCast(typ types.Type, opcode, value int) {
	instruction := &CastInstruction{
		valueBase: newValueBase(typ),
		operator:  DecodeCastOperator(opcode),
	}
	instruction.value = b.symbols().LookupFor(value, instruction)
	b.addInstruction(instruction)
}

func (b *Block) CreateCompare(typ types.Type, opcode, lhs, rhs int) {
	instruction := &CompareInstruction{
		valueBase: newValueBase(typ),
		operator:  DecodeCompareOperator(opcode),
	}
	instruction.lhs = b.symbols().LookupFor(lhs, instruction)
	instruction.rhs = b.symbols().LookupFor(rhs, instruction)
	b.addInstruction(instruction)
}

func (b *Block) CreateExtractElement(typ types.Type, vector, index int) {
	b.addInstruction(&ExtractElementInstruction{
		valueBase: newValueBase(typ),
		vector:    b.symbols().Lookup(vector),
		index:     b.symbols().Lookup(index),
	})
}

func (b *Block) CreateExtractValue(typ types.Type, aggregate, index int) {
	b.addInstruction(&ExtractValueInstruction{
		valueBase: newValueBase(typ),
		aggregate: b.symbols().Lookup(aggregate),
		index:     index,
	})
}

func (b *Block) CreateGetElementPointer(typ types.Type, pointer int, indices []int, isInbounds bool) {
	instruction := &GetElementPointerInstruction{
		valueBase:  newValueBase(typ),
		isInbounds: isInbounds,
	}
	instruction.base = b.symbols().LookupFor(pointer, instruction)
	for _, index := range indices {
		instruction.addIndex(b.symbols().LookupFor(index, instruction))
	}
	b.addInstruction(instruction)
}

func (b *Block) CreateIndirectBranch(address int, successors []int) {
	blocks := make([]*Block, len(successors))
	for i, successor := range successors {
		blocks[i] = b.function.GetBlock(successor)
	}
	b.addInstruction(&IndirectBranchInstruction{
		address:    b.symbols().Lookup(address),
		successors: blocks,
	})
}

func (b *Block) CreateInsertElement(typ types.Type, vector, index, value int) {
	b.addInstruction(&InsertElementInstruction{
		valueBase: newValueBase(typ),
		vector:    b.symbols().Lookup(vector),
		index:     b.symbols().Lookup(index),
		value:     b.symbols().Lookup(value),
	})
}

func (b *Block) CreateInsertValue(typ types.Type, aggregate, index, value int) {
	b.addInstruction(&InsertValueInstruction{
		valueBase: newValueBase(typ),
		aggregate: b.symbols().Lookup(aggregate),
		index:     index,
		value:     b.symbols().Lookup(value),
	})
}

func (b *Block) CreateLoad(typ types.Type, source, align int, isVolatile bool) {
	instruction := &LoadInstruction{
		valueBase:  newValueBase(typ),
		align:      align,
		isVolatile: isVolatile,
	}
	instruction.source = b.symbols().LookupFor(source, instruction)
	b.addInstruction(instruction)
}

func (b *Block) CreatePhi(typ types.Type, values []int, blocks []int) {
	if len(values) != len(blocks) {
		failf(ProtocolViolation, "phi with %d values but %d blocks", len(values), len(blocks))
	}
	instruction := &PhiInstruction{valueBase: newValueBase(typ)}
	for i, value := range values {
		instruction.addCase(
			b.symbols().LookupFor(value, instruction),
			b.function.GetBlock(blocks[i]))
	}
	b.addInstruction(instruction)
}

func (b *Block) CreateReturn() {
	b.addInstruction(&ReturnInstruction{})
}

func (b *Block) CreateReturnValue(value int) {
	instruction := &ReturnInstruction{}
	instruction.value = b.symbols().LookupFor(value, instruction)
	b.addInstruction(instruction)
}

func (b *Block) CreateSelect(typ types.Type, condition, trueValue, falseValue int) {
	instruction := &SelectInstruction{valueBase: newValueBase(typ)}
	instruction.condition = b.symbols().LookupFor(condition, instruction)
	instruction.trueValue = b.symbols().LookupFor(trueValue, instruction)
	instruction.falseValue = b.symbols().LookupFor(falseValue, instruction)
	b.addInstruction(instruction)
}

func (b *Block) CreateShuffleVector(typ types.Type, vector1, vector2, mask int) {
	b.addInstruction(&ShuffleVectorInstruction{
		valueBase: newValueBase(typ),
		vector1:   b.symbols().Lookup(vector1),
		vector2:   b.symbols().Lookup(vector2),
		mask:      b.symbols().Lookup(mask),
	})
}

func (b *Block) CreateStore(destination, source, align int, isVolatile bool) {
	instruction := &StoreInstruction{align: align, isVolatile: isVolatile}
	instruction.destination = b.symbols().LookupFor(destination, instruction)
	instruction.source = b.symbols().LookupFor(source, instruction)
	b.addInstruction(instruction)
}

func (b *Block) CreateSwitch(condition, defaultBlock int, caseValues []int, caseBlocks []int) {
	if len(caseValues) != len(caseBlocks) {
		failf(ProtocolViolation, "switch with %d values but %d blocks", len(caseValues), len(caseBlocks))
	}
	values := make([]Symbol, len(caseValues))
	blocks := make([]*Block, len(caseBlocks))
	for i := range caseValues {
		values[i] = b.symbols().Lookup(caseValues[i])
		blocks[i] = b.function.GetBlock(caseBlocks[i])
	}
	b.addInstruction(&SwitchInstruction{
		condition:    b.symbols().Lookup(condition),
		defaultBlock: b.function.GetBlock(defaultBlock),
		caseValues:   values,
		caseBlocks:   blocks,
	})
}

// CreateSwitchOld emits the legacy switch form with raw 64-bit case
// constants; the cases are stored as decoded, not re-modelled as symbols.
func (b *Block) CreateSwitchOld(condition, defaultBlock int, caseConstants []uint64, caseBlocks []int) {
	if len(caseConstants) != len(caseBlocks) {
		failf(ProtocolViolation, "switch with %d constants but %d blocks", len(caseConstants), len(caseBlocks))
	}
	blocks := make([]*Block, len(caseBlocks))
	for i, block := range caseBlocks {
		blocks[i] = b.function.GetBlock(block)
	}
	b.addInstruction(&SwitchOldInstruction{
		condition:     b.symbols().Lookup(condition),
		defaultBlock:  b.function.GetBlock(defaultBlock),
		caseConstants: caseConstants,
		caseBlocks:    blocks,
	})
}

func (b *Block) CreateUnreachable() {
	b.addInstruction(&UnreachableInstruction{})
}

// EnterBlock and ExitBlock are stream markers; the active block is the one
// returned by the function's GenerateBlock cursor.
func (b *Block) EnterBlock(id int64) {}

func (b *Block) ExitBlock() {}

func (b *Block) Index() int { return b.index }

func (b *Block) Instruction(index int) Instruction {
	if index < 0 || index >= len(b.instructions) {
		failf(IndexOutOfRange, "instruction %d of %d", index, len(b.instructions))
	}
	return b.instructions[index]
}

func (b *Block) InstructionCount() int { return len(b.instructions) }

func (b *Block) Name() string { return b.name }

func (b *Block) SetName(name string) { b.name = name }

func (b *Block) Type() types.Type { return types.Void }

func (b *Block) Replace(original, replacement Symbol) {}
