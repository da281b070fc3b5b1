package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPanicsKind runs fn and requires that it panics with a *ModelError of
// the given kind.
func assertPanicsKind(t *testing.T, kind ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		me, ok := r.(*ModelError)
		require.True(t, ok, "panic value %v is not a *ModelError", r)
		assert.Equal(t, kind, me.Kind)
	}()
	fn()
}

func TestDecodeBinaryOperator(t *testing.T) {
	tests := []struct {
		name     string
		opcode   int
		fp       bool
		expected BinaryOperator
	}{
		{"add", 0, false, IntAdd},
		{"sub", 1, false, IntSubtract},
		{"mul", 2, false, IntMultiply},
		{"udiv", 3, false, IntUnsignedDivide},
		{"sdiv", 4, false, IntSignedDivide},
		{"urem", 5, false, IntUnsignedRemainder},
		{"srem", 6, false, IntSignedRemainder},
		{"shl", 7, false, IntShiftLeft},
		{"lshr", 8, false, IntLogicalShiftRight},
		{"ashr", 9, false, IntArithmeticShiftRight},
		{"and", 10, false, IntAnd},
		{"or", 11, false, IntOr},
		{"xor", 12, false, IntXor},
		{"fadd", 0, true, FPAdd},
		{"fsub", 1, true, FPSubtract},
		{"fmul", 2, true, FPMultiply},
		{"fdiv shares the sdiv slot", 4, true, FPDivide},
		{"frem shares the srem slot", 6, true, FPRemainder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := DecodeBinaryOperator(tt.opcode, tt.fp)
			assert.Equal(t, tt.expected, op)
			assert.Equal(t, tt.fp, op.IsFloatingPoint())
		})
	}
}

func TestDecodeBinaryOperatorInvalid(t *testing.T) {
	assertPanicsKind(t, ProtocolViolation, func() { DecodeBinaryOperator(13, false) })
	assertPanicsKind(t, ProtocolViolation, func() { DecodeBinaryOperator(-1, false) })
	// shl has no floating-point form
	assertPanicsKind(t, TypeMismatch, func() { DecodeBinaryOperator(7, true) })
}

func TestDecodeCastOperator(t *testing.T) {
	tests := []struct {
		opcode   int
		expected string
	}{
		{0, "trunc"},
		{1, "zext"},
		{2, "sext"},
		{3, "fptoui"},
		{4, "fptosi"},
		{5, "uitofp"},
		{6, "sitofp"},
		{7, "fptrunc"},
		{8, "fpext"},
		{9, "ptrtoint"},
		{10, "inttoptr"},
		{11, "bitcast"},
		{12, "addrspacecast"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeCastOperator(tt.opcode).String())
		})
	}

	assertPanicsKind(t, ProtocolViolation, func() { DecodeCastOperator(13) })
}

func TestDecodeCompareOperator(t *testing.T) {
	tests := []struct {
		name     string
		opcode   int
		expected CompareOperator
		fp       bool
	}{
		{"fcmp false", 0, FPFalse, true},
		{"fcmp oeq", 1, FPOrderedEqual, true},
		{"fcmp une", 14, FPUnorderedNotEqual, true},
		{"fcmp true", 15, FPTrue, true},
		{"icmp eq", 32, IntEqual, false},
		{"icmp ne", 33, IntNotEqual, false},
		{"icmp ult", 36, IntUnsignedLessThan, false},
		{"icmp sle", 41, IntSignedLessOrEqual, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := DecodeCompareOperator(tt.opcode)
			assert.Equal(t, tt.expected, op)
			assert.Equal(t, tt.fp, op.IsFloatingPoint())
			assert.Equal(t, tt.name, op.String())
		})
	}

	// The gap between fcmp and icmp predicates is unused.
	assertPanicsKind(t, ProtocolViolation, func() { DecodeCompareOperator(16) })
	assertPanicsKind(t, ProtocolViolation, func() { DecodeCompareOperator(31) })
	assertPanicsKind(t, ProtocolViolation, func() { DecodeCompareOperator(42) })
	assertPanicsKind(t, ProtocolViolation, func() { DecodeCompareOperator(-1) })
}

func TestDecodeFlags(t *testing.T) {
	tests := []struct {
		name     string
		operator BinaryOperator
		flags    int
		expected []Flag
	}{
		{"add none", IntAdd, 0, nil},
		{"add nuw", IntAdd, 1, []Flag{NoUnsignedWrap}},
		{"add nsw", IntAdd, 2, []Flag{NoSignedWrap}},
		{"add both", IntAdd, 3, []Flag{NoUnsignedWrap, NoSignedWrap}},
		{"shl nsw", IntShiftLeft, 2, []Flag{NoSignedWrap}},
		{"sdiv exact", IntSignedDivide, 1, []Flag{Exact}},
		{"lshr exact", IntLogicalShiftRight, 1, []Flag{Exact}},
		{"sdiv ignores high bits", IntSignedDivide, 2, nil},
		{"fadd fast", FPAdd, 1, []Flag{Fast}},
		{"fmul nnan ninf", FPMultiply, 6, []Flag{NoNaNs, NoInfinities}},
		{"fdiv all", FPDivide, 31, []Flag{Fast, NoNaNs, NoInfinities, NoSignedZeroes, AllowReciprocal}},
		{"and has no flags", IntAnd, 3, nil},
		{"xor has no flags", IntXor, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeFlags(tt.operator, tt.flags))
		})
	}
}
