package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krukhlis/llvm-bcj/types"
)

// vectorFixture builds a function with a vector parameter (symbol 0), an i32
// lane index constant (symbol 1) and one open block.
func vectorFixture(t *testing.T) (*FunctionDefinition, *Block) {
	t.Helper()
	vectorType := types.NewVectorType(types.I32, 4)
	function := newTestFunction(types.Void, vectorType)
	function.CreateParameter(vectorType)
	function.AllocateBlocks(1)
	function.CreateInteger(types.I32, 0)
	return function, function.GenerateBlock()
}

func TestVectorInstructions(t *testing.T) {
	function, block := vectorFixture(t)

	block.CreateExtractElement(types.I32, 0, 1)                           // symbol 2
	block.CreateInsertElement(types.NewVectorType(types.I32, 4), 0, 1, 2) // symbol 3
	block.CreateShuffleVector(types.NewVectorType(types.I32, 4), 0, 3, 1) // symbol 4
	block.CreateReturn()

	require.NoError(t, function.ExitFunction())

	extract := block.Instruction(0).(*ExtractElementInstruction)
	assert.Same(t, function.Symbols().At(0), extract.Vector())
	assert.Same(t, function.Symbols().At(1), extract.Index())

	insert := block.Instruction(1).(*InsertElementInstruction)
	assert.Same(t, function.Symbols().At(0), insert.Vector())
	assert.Same(t, extract, insert.Value())

	shuffle := block.Instruction(2).(*ShuffleVectorInstruction)
	assert.Same(t, function.Symbols().At(0), shuffle.Vector1())
	assert.Same(t, insert, shuffle.Vector2())
	assert.Same(t, function.Symbols().At(1), shuffle.Mask())
}

func TestAggregateInstructions(t *testing.T) {
	structType := types.NewStructureType(false, []types.Type{types.I32, types.Double})
	function := newTestFunction(types.Void, structType)
	function.CreateParameter(structType) // symbol 0
	function.AllocateBlocks(1)
	block := function.GenerateBlock()

	block.CreateExtractValue(types.I32, 0, 1)    // symbol 1
	block.CreateInsertValue(structType, 0, 0, 1) // symbol 2
	block.CreateReturn()

	require.NoError(t, function.ExitFunction())

	extract := block.Instruction(0).(*ExtractValueInstruction)
	assert.Same(t, function.Symbols().At(0), extract.Aggregate())
	assert.Equal(t, 1, extract.Index())

	insert := block.Instruction(1).(*InsertValueInstruction)
	assert.Same(t, function.Symbols().At(0), insert.Aggregate())
	assert.Equal(t, 0, insert.Index())
	assert.Same(t, extract, insert.Value())
}

func TestGetElementPointerInstruction(t *testing.T) {
	pointerType := types.NewPointerType(types.I32)
	function := newTestFunction(types.Void, pointerType)
	function.CreateParameter(pointerType) // symbol 0
	function.AllocateBlocks(1)
	function.CreateInteger(types.I64, 0) // symbol 1
	block := function.GenerateBlock()

	block.CreateGetElementPointer(pointerType, 0, []int{1, 1}, true) // symbol 2
	block.CreateReturn()

	require.NoError(t, function.ExitFunction())

	gep := block.Instruction(0).(*GetElementPointerInstruction)
	assert.True(t, gep.IsInbounds())
	assert.Same(t, function.Symbols().At(0), gep.BasePointer())
	require.Len(t, gep.Indices(), 2)
	assert.Same(t, function.Symbols().At(1), gep.Indices()[0])
	assert.Same(t, function.Symbols().At(1), gep.Indices()[1])
}

func TestIndirectBranch(t *testing.T) {
	pointerType := types.NewPointerType(types.I8)
	function := newTestFunction(types.Void, pointerType)
	function.CreateParameter(pointerType) // symbol 0
	function.AllocateBlocks(3)

	entry := function.GenerateBlock()
	entry.CreateIndirectBranch(0, []int{1, 2})

	function.GenerateBlock().CreateReturn()
	function.GenerateBlock().CreateReturn()

	require.NoError(t, function.ExitFunction())

	branch := entry.Instruction(0).(*IndirectBranchInstruction)
	assert.Same(t, function.Symbols().At(0), branch.Address())
	require.Len(t, branch.Successors(), 2)
	assert.Same(t, function.GetBlock(1), branch.Successors()[0])
	assert.Same(t, function.GetBlock(2), branch.Successors()[1])
}

func TestCastAndSelectForwardOperands(t *testing.T) {
	function := newTestFunction(types.I64, types.I1, types.I64)
	function.CreateParameter(types.I1)  // symbol 0
	function.CreateParameter(types.I64) // symbol 1
	function.AllocateBlocks(1)
	block := function.GenerateBlock()

	// Both reference symbol 4, defined two instructions later.
	block.CreateSelect(types.I64, 0, 1, 4)             // symbol 2
	block.CreateCast(types.I32, 0, 4)                  // symbol 3: trunc
	block.CreateBinaryOperation(types.I64, 2, 0, 1, 1) // symbol 4
	block.CreateReturnValue(2)

	require.NoError(t, function.ExitFunction())

	mul := block.Instruction(2).(*BinaryOperationInstruction)
	assert.Equal(t, IntMultiply, mul.Operator())

	sel := block.Instruction(0).(*SelectInstruction)
	assert.Same(t, function.Symbols().At(0), sel.Condition())
	assert.Same(t, function.Symbols().At(1), sel.TrueValue())
	assert.Same(t, mul, sel.FalseValue())

	cast := block.Instruction(1).(*CastInstruction)
	assert.Equal(t, Trunc, cast.Operator())
	assert.Same(t, mul, cast.Value())
}

func TestLoadStoreForwardOperands(t *testing.T) {
	pointerType := types.NewPointerType(types.I32)
	function := newTestFunction(types.Void, pointerType)
	function.CreateParameter(pointerType) // symbol 0
	function.AllocateBlocks(1)
	block := function.GenerateBlock()

	block.CreateStore(0, 1, 8, false)       // source is the load below
	block.CreateLoad(types.I32, 0, 8, true) // symbol 1
	block.CreateReturn()

	require.NoError(t, function.ExitFunction())

	load := block.Instruction(1).(*LoadInstruction)
	assert.Same(t, function.Symbols().At(0), load.Source())
	assert.Equal(t, 8, load.Align())
	assert.True(t, load.IsVolatile())

	store := block.Instruction(0).(*StoreInstruction)
	assert.Same(t, function.Symbols().At(0), store.Destination())
	assert.Same(t, load, store.Source())
	assert.False(t, store.IsVolatile())
}

func TestCallForwardArguments(t *testing.T) {
	function := newTestFunction(types.Void, types.I32)
	function.CreateParameter(types.I32) // symbol 0
	function.AllocateBlocks(1)
	block := function.GenerateBlock()

	block.CreateCall(types.Void, 0, []int{1})          // argument defined below
	block.CreateBinaryOperation(types.I32, 0, 0, 0, 0) // symbol 1
	block.CreateReturn()

	require.NoError(t, function.ExitFunction())

	call := block.Instruction(0).(*VoidCallInstruction)
	add := block.Instruction(1).(*BinaryOperationInstruction)
	require.Len(t, call.Arguments(), 1)
	assert.Same(t, add, call.Arguments()[0])
}

func TestVoidInstructionsReportVoidType(t *testing.T) {
	function := newTestFunction(types.Void, types.I32)
	function.CreateParameter(types.I32)
	function.AllocateBlocks(1)
	block := function.GenerateBlock()
	block.CreateStore(0, 0, 4, false)
	block.CreateReturn()

	assert.Same(t, types.Void, block.Instruction(0).Type())
	assert.Same(t, types.Void, block.Instruction(1).Type())
	assert.Same(t, types.Void, block.Type())
}

func TestReplaceLeavesUnrelatedOperandsAlone(t *testing.T) {
	a := NewIntegerConstant(types.I32, 1)
	b := NewIntegerConstant(types.I32, 2)
	c := NewIntegerConstant(types.I32, 3)

	compare := NewCompareConstant(types.I1, IntEqual)
	compare.SetLHS(a)
	compare.SetRHS(b)

	compare.Replace(c, a)
	assert.Same(t, a, compare.LHS())
	assert.Same(t, b, compare.RHS())

	compare.Replace(b, c)
	assert.Same(t, c, compare.RHS())
}
