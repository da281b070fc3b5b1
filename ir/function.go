package ir

import (
	"fmt"
	"strconv"

	"github.com/krukhlis/llvm-bcj/types"
)

// FunctionDefinition aggregates the parameters, blocks and symbol table of
// one function body and implements the function half of the builder
// protocol. It is itself a constant symbol: calls and block addresses
// reference the function through the same symbol table as everything else.
type FunctionDefinition struct {
	funcType *types.FunctionType

	symbols    *Symbols
	parameters []*FunctionParameter
	blocks     []*Block

	currentBlock int
	name         string
}

func NewFunctionDefinition(funcType *types.FunctionType) *FunctionDefinition {
	return &FunctionDefinition{
		funcType: funcType,
		symbols:  NewSymbols(),
		name:     UnknownName,
	}
}

// Accept visits the function's blocks in index order.
func (f *FunctionDefinition) Accept(v FunctionVisitor) {
	for _, block := range f.blocks {
		v.Visit(block)
	}
}

// AllocateBlocks creates the block array. Block 0 is the entry block and is
// named to the empty string, which is distinct from the unnamed sentinel.
func (f *FunctionDefinition) AllocateBlocks(count int) {
	if count <= 0 {
		failf(ProtocolViolation, "allocating %d blocks", count)
	}
	f.blocks = make([]*Block, count)
	for i := range f.blocks {
		f.blocks[i] = newBlock(f, i)
	}
	f.blocks[0].SetName("")
}

// CreateParameter appends a parameter; its position defines its index in
// both the parameter list and the symbol table.
func (f *FunctionDefinition) CreateParameter(typ types.Type) {
	parameter := NewFunctionParameter(typ, len(f.parameters))
	f.symbols.Append(parameter)
	f.parameters = append(f.parameters, parameter)
}

// ExitFunction finalizes the body: every block and value instruction still
// carrying the unnamed sentinel receives the decimal name of a single
// counter, blocks in index order and instructions in insertion order. The
// counter starts at 1; 0 would clash with the entry block downstream. A
// placeholder still present in the symbol table is an assembly error.
func (f *FunctionDefinition) ExitFunction() error {
	identifier := 1
	for _, block := range f.blocks {
		if block.Name() == UnknownName {
			block.SetName(strconv.Itoa(identifier))
			identifier++
		}
		for i := 0; i < block.InstructionCount(); i++ {
			if value, ok := block.Instruction(i).(ValueInstruction); ok {
				if value.Name() == UnknownName {
					value.SetName(strconv.Itoa(identifier))
					identifier++
				}
			}
		}
	}

	if unresolved := f.symbols.unresolved(); len(unresolved) > 0 {
		return modelErrorf(UnresolvedForwardReference,
			"function %s: symbols %v never defined", f.name, unresolved)
	}
	return nil
}

// GenerateBlock returns the next unopened block; the decoder emits blocks
// strictly in index order.
func (f *FunctionDefinition) GenerateBlock() *Block {
	if f.blocks == nil {
		failf(ProtocolViolation, "generating a block before allocation")
	}
	if f.currentBlock >= len(f.blocks) {
		failf(ProtocolViolation, "generating block %d of %d", f.currentBlock, len(f.blocks))
	}
	block := f.blocks[f.currentBlock]
	f.currentBlock++
	return block
}

func (f *FunctionDefinition) GetBlock(index int) *Block {
	if index < 0 || index >= len(f.blocks) {
		failf(IndexOutOfRange, "block %d of %d", index, len(f.blocks))
	}
	return f.blocks[index]
}

func (f *FunctionDefinition) BlockCount() int { return len(f.blocks) }

// FunctionType returns the signature the function was defined with.
func (f *FunctionDefinition) FunctionType() *types.FunctionType { return f.funcType }

// Type reports the function's value type: pointer to its function type, the
// form calls and block addresses see through the symbol table.
func (f *FunctionDefinition) Type() types.Type {
	return types.NewPointerType(f.funcType)
}

func (f *FunctionDefinition) Name() string { return f.name }

// SetName stores the function's own name, decorated with the @ prefix of the
// global value namespace.
func (f *FunctionDefinition) SetName(name string) { f.name = "@" + name }

func (f *FunctionDefinition) Parameters() []*FunctionParameter { return f.parameters }

func (f *FunctionDefinition) Symbols() *Symbols { return f.symbols }

// NameBlock attaches a block name resolved from the bitcode symbol table.
func (f *FunctionDefinition) NameBlock(index int, name string) {
	f.GetBlock(index).SetName(name)
}

// NameEntry names a symbol-table entry from the bitcode value symbol table.
func (f *FunctionDefinition) NameEntry(index int, name string) {
	f.symbols.SetName(index, name)
}

// NameFunction names a symbol-table entry from a module-level symbol table
// record; the offset locates the record in the stream and is not needed by
// the model.
func (f *FunctionDefinition) NameFunction(index, offset int, name string) {
	f.symbols.SetName(index, name)
}

func (f *FunctionDefinition) Replace(original, replacement Symbol) {}

func (f *FunctionDefinition) constant() {}

func (f *FunctionDefinition) String() string {
	return fmt.Sprintf("%s %s", f.Type(), f.name)
}

// Constant-expression half of the builder protocol. These share the operand
// shapes of the instruction creators but place their results in the symbol
// table only.

func (f *FunctionDefinition) CreateBinaryOperationExpression(typ types.Type, opcode, lhs, rhs int) {
	operator := DecodeBinaryOperator(opcode, types.IsFloatingPoint(typ))

	f.symbols.Append(NewBinaryOperationConstant(
		typ,
		operator,
		f.symbols.Lookup(lhs),
		f.symbols.Lookup(rhs)))
}

func (f *FunctionDefinition) CreateBlockAddress(typ types.Type, method, block int) {
	f.symbols.Append(NewBlockAddressConstant(
		typ,
		f.symbols.Lookup(method),
		f.GetBlock(block)))
}

// CreateCastExpression decodes the operator from the opcode alone, without
// regard to the operand type.
func (f *FunctionDefinition) CreateCastExpression(typ types.Type, opcode, value int) {
	cast := NewCastConstant(typ, DecodeCastOperator(opcode))

	cast.SetValue(f.symbols.LookupFor(value, cast))

	f.symbols.Append(cast)
}

func (f *FunctionDefinition) CreateCompareExpression(typ types.Type, opcode, lhs, rhs int) {
	compare := NewCompareConstant(typ, DecodeCompareOperator(opcode))

	compare.SetLHS(f.symbols.LookupFor(lhs, compare))
	compare.SetRHS(f.symbols.LookupFor(rhs, compare))

	f.symbols.Append(compare)
}

func (f *FunctionDefinition) CreateFloatingPoint(typ types.Type, bits uint64) {
	floating, ok := typ.(*types.FloatingPointType)
	if !ok {
		failf(TypeMismatch, "floating-point constant of type %s", typ)
	}
	f.symbols.Append(NewFloatingPointConstant(floating, bits))
}

func (f *FunctionDefinition) CreateFromData(typ types.Type, data []uint64) {
	f.symbols.Append(ConstantFromData(typ, data))
}

func (f *FunctionDefinition) CreateFromString(typ types.Type, value string, isCString bool) {
	f.symbols.Append(NewStringConstant(typ, value, isCString))
}

func (f *FunctionDefinition) CreateFromValues(typ types.Type, values []int) {
	f.symbols.Append(ConstantFromValues(typ, f.symbols.Constants(values)))
}

func (f *FunctionDefinition) CreateGetElementPointerExpression(typ types.Type, pointer int, indices []int, isInbounds bool) {
	gep := NewGetElementPointerConstant(typ, isInbounds)

	gep.SetBasePointer(f.symbols.LookupFor(pointer, gep))
	for _, index := range indices {
		gep.AddIndex(f.symbols.LookupFor(index, gep))
	}

	f.symbols.Append(gep)
}

func (f *FunctionDefinition) CreateInteger(typ types.Type, value int64) {
	integer, ok := typ.(*types.IntegerType)
	if !ok {
		failf(TypeMismatch, "integer constant of type %s", typ)
	}
	f.symbols.Append(NewIntegerConstant(integer, value))
}

func (f *FunctionDefinition) CreateNull(typ types.Type) {
	f.symbols.Append(NewNullConstant(typ))
}

func (f *FunctionDefinition) CreateUndefined(typ types.Type) {
	f.symbols.Append(NewUndefinedConstant(typ))
}
