package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krukhlis/llvm-bcj/types"
)

func TestFormatFunction(t *testing.T) {
	function := newTestFunction(types.I32, types.I32)
	function.SetName("sum")
	function.CreateParameter(types.I32) // symbol 0
	function.AllocateBlocks(2)
	function.NameEntry(0, "x")
	function.CreateInteger(types.I32, 1) // symbol 1

	entry := function.GenerateBlock()
	entry.CreateBranch(1)

	body := function.GenerateBlock()
	body.CreateBinaryOperation(types.I32, 0, 0, 0, 1) // symbol 2
	body.CreateReturnValue(2)

	require.NoError(t, function.ExitFunction())

	expected := "define i32 @sum(i32 %x) {\n" +
		"  br label %1\n" +
		"1:\n" +
		"  %2 = add i32 %x, 1\n" +
		"  ret i32 %2\n" +
		"}\n"
	assert.Equal(t, expected, NewFormatter().FormatFunction(function))
}

func TestFormatControlFlow(t *testing.T) {
	function := newTestFunction(types.Void, types.I1)
	function.SetName("pick")
	function.CreateParameter(types.I1) // symbol 0
	function.AllocateBlocks(3)
	function.NameEntry(0, "c")
	function.NameBlock(1, "then")
	function.NameBlock(2, "done")

	entry := function.GenerateBlock()
	entry.CreateConditionalBranch(0, 1, 2)

	then := function.GenerateBlock()
	then.CreateBranch(2)

	done := function.GenerateBlock()
	done.CreateReturn()

	require.NoError(t, function.ExitFunction())

	expected := "define void @pick(i1 %c) {\n" +
		"  br i1 %c, label %then, label %done\n" +
		"then:\n" +
		"  br label %done\n" +
		"done:\n" +
		"  ret void\n" +
		"}\n"
	assert.Equal(t, expected, NewFormatter().FormatFunction(function))
}

func TestFormatMemoryAndCalls(t *testing.T) {
	function := newTestFunction(types.Void, types.I32)
	function.SetName("spill")
	function.CreateParameter(types.I32) // symbol 0
	function.AllocateBlocks(1)
	function.NameEntry(0, "v")
	function.CreateInteger(types.I32, 1) // symbol 1

	entry := function.GenerateBlock()
	entry.CreateAllocation(types.NewPointerType(types.I32), 1, 4) // symbol 2
	entry.CreateStore(2, 0, 4, true)
	entry.CreateLoad(types.I32, 2, 4, false) // symbol 3
	entry.CreateCall(types.Void, 0, []int{3})
	entry.CreateReturn()

	require.NoError(t, function.ExitFunction())

	expected := "define void @spill(i32 %v) {\n" +
		"  %1 = alloca i32*, i32 1, align 4\n" +
		"  store volatile i32 %v, i32* %1, align 4\n" +
		"  %2 = load i32, i32* %1, align 4\n" +
		"  call void %v(i32 %2)\n" +
		"  ret void\n" +
		"}\n"
	assert.Equal(t, expected, NewFormatter().FormatFunction(function))
}

func TestFormatPhiAndCompare(t *testing.T) {
	function := newTestFunction(types.I32, types.I32)
	function.SetName("loop")
	function.CreateParameter(types.I32) // symbol 0
	function.AllocateBlocks(2)
	function.NameEntry(0, "n")
	function.CreateInteger(types.I32, 0) // symbol 1

	entry := function.GenerateBlock()
	entry.CreateBranch(1)

	body := function.GenerateBlock()
	body.CreatePhi(types.I32, []int{1, 3}, []int{0, 1}) // symbol 2
	body.CreateBinaryOperation(types.I32, 0, 0, 2, 0)   // symbol 3
	body.CreateCompare(types.I1, 40, 3, 0)              // symbol 4: icmp slt
	body.CreateConditionalBranch(4, 1, 1)

	require.NoError(t, function.ExitFunction())

	expected := "define i32 @loop(i32 %n) {\n" +
		"  br label %1\n" +
		"1:\n" +
		"  %2 = phi i32 [ 0, %0 ], [ %3, %1 ]\n" +
		"  %3 = add i32 %2, %n\n" +
		"  %4 = icmp slt i32 %3, %n\n" +
		"  br i1 %4, label %1, label %1\n" +
		"}\n"
	assert.Equal(t, expected, NewFormatter().FormatFunction(function))
}

func TestFormatConstantOperands(t *testing.T) {
	formatter := NewFormatter()

	tests := []struct {
		name     string
		symbol   Symbol
		expected string
	}{
		{"integer", NewIntegerConstant(types.I32, -7), "-7"},
		{"floating", NewFloatingPointConstant(types.Double, 0x4000000000000000), "0x4000000000000000"},
		{"null", NewNullConstant(types.NewPointerType(types.I8)), "null"},
		{"undef", NewUndefinedConstant(types.I32), "undef"},
		{"string", NewStringConstant(types.NewArrayType(types.I8, 3), "hi", true), `c"hi"`},
		{"array", NewArrayConstant(types.NewArrayType(types.I8, 2), []Constant{
			NewIntegerConstant(types.I8, 1), NewIntegerConstant(types.I8, 2),
		}), "[i8 1, i8 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.value(tt.symbol))
		})
	}
}

func TestFormatSwitch(t *testing.T) {
	function := newTestFunction(types.Void, types.I32)
	function.SetName("dispatch")
	function.CreateParameter(types.I32) // symbol 0
	function.AllocateBlocks(2)
	function.NameEntry(0, "k")
	function.NameBlock(1, "out")
	function.CreateInteger(types.I32, 4) // symbol 1

	entry := function.GenerateBlock()
	entry.CreateSwitch(0, 1, []int{1}, []int{1})

	out := function.GenerateBlock()
	out.CreateUnreachable()

	require.NoError(t, function.ExitFunction())

	expected := "define void @dispatch(i32 %k) {\n" +
		"  switch i32 %k, label %out [ i32 4, label %out ]\n" +
		"out:\n" +
		"  unreachable\n" +
		"}\n"
	assert.Equal(t, expected, NewFormatter().FormatFunction(function))
}
