package ir

// BinaryOperator is a decoded binary opcode. The bitcode stream shares one
// opcode space between the integer and floating-point tables; which table
// applies depends on the result type.
type BinaryOperator int

const (
	IntAdd BinaryOperator = iota
	IntSubtract
	IntMultiply
	IntUnsignedDivide
	IntSignedDivide
	IntUnsignedRemainder
	IntSignedRemainder
	IntShiftLeft
	IntLogicalShiftRight
	IntArithmeticShiftRight
	IntAnd
	IntOr
	IntXor

	FPAdd
	FPSubtract
	FPMultiply
	FPDivide
	FPRemainder
)

var binaryNames = [...]string{
	IntAdd:                  "add",
	IntSubtract:             "sub",
	IntMultiply:             "mul",
	IntUnsignedDivide:       "udiv",
	IntSignedDivide:         "sdiv",
	IntUnsignedRemainder:    "urem",
	IntSignedRemainder:      "srem",
	IntShiftLeft:            "shl",
	IntLogicalShiftRight:    "lshr",
	IntArithmeticShiftRight: "ashr",
	IntAnd:                  "and",
	IntOr:                   "or",
	IntXor:                  "xor",
	FPAdd:                   "fadd",
	FPSubtract:              "fsub",
	FPMultiply:              "fmul",
	FPDivide:                "fdiv",
	FPRemainder:             "frem",
}

func (op BinaryOperator) String() string { return binaryNames[op] }

// IsFloatingPoint reports whether the operator came from the floating table.
func (op BinaryOperator) IsFloatingPoint() bool { return op >= FPAdd }

var intBinaryOps = [...]BinaryOperator{
	IntAdd, IntSubtract, IntMultiply, IntUnsignedDivide, IntSignedDivide,
	IntUnsignedRemainder, IntSignedRemainder, IntShiftLeft,
	IntLogicalShiftRight, IntArithmeticShiftRight, IntAnd, IntOr, IntXor,
}

// The floating table reuses the sdiv and srem slots for fdiv and frem.
var fpBinaryOps = map[int]BinaryOperator{
	0: FPAdd,
	1: FPSubtract,
	2: FPMultiply,
	4: FPDivide,
	6: FPRemainder,
}

// DecodeBinaryOperator maps a bitcode binop code to an operator, choosing the
// floating table when the result type computes in floating point.
func DecodeBinaryOperator(opcode int, isFloatingPoint bool) BinaryOperator {
	if isFloatingPoint {
		op, ok := fpBinaryOps[opcode]
		if !ok {
			failf(TypeMismatch, "binary opcode %d has no floating-point form", opcode)
		}
		return op
	}
	if opcode < 0 || opcode >= len(intBinaryOps) {
		failf(ProtocolViolation, "unknown binary opcode %d", opcode)
	}
	return intBinaryOps[opcode]
}

// CastOperator is a decoded conversion opcode.
type CastOperator int

const (
	Trunc CastOperator = iota
	ZeroExtend
	SignExtend
	FPToUnsignedInt
	FPToSignedInt
	UnsignedIntToFP
	SignedIntToFP
	FPTrunc
	FPExtend
	PtrToInt
	IntToPtr
	Bitcast
	AddrSpaceCast
)

var castNames = [...]string{
	Trunc:           "trunc",
	ZeroExtend:      "zext",
	SignExtend:      "sext",
	FPToUnsignedInt: "fptoui",
	FPToSignedInt:   "fptosi",
	UnsignedIntToFP: "uitofp",
	SignedIntToFP:   "sitofp",
	FPTrunc:         "fptrunc",
	FPExtend:        "fpext",
	PtrToInt:        "ptrtoint",
	IntToPtr:        "inttoptr",
	Bitcast:         "bitcast",
	AddrSpaceCast:   "addrspacecast",
}

func (op CastOperator) String() string { return castNames[op] }

// DecodeCastOperator maps a bitcode cast code to an operator.
func DecodeCastOperator(opcode int) CastOperator {
	if opcode < 0 || opcode >= len(castNames) {
		failf(ProtocolViolation, "unknown cast opcode %d", opcode)
	}
	return CastOperator(opcode)
}

// CompareOperator is a decoded icmp/fcmp predicate. Floating predicates
// occupy 0..15, integer predicates 32..41, as in the bitcode encoding.
type CompareOperator int

const (
	FPFalse CompareOperator = iota
	FPOrderedEqual
	FPOrderedGreaterThan
	FPOrderedGreaterOrEqual
	FPOrderedLessThan
	FPOrderedLessOrEqual
	FPOrderedNotEqual
	FPOrdered
	FPUnordered
	FPUnorderedEqual
	FPUnorderedGreaterThan
	FPUnorderedGreaterOrEqual
	FPUnorderedLessThan
	FPUnorderedLessOrEqual
	FPUnorderedNotEqual
	FPTrue

	IntEqual
	IntNotEqual
	IntUnsignedGreaterThan
	IntUnsignedGreaterOrEqual
	IntUnsignedLessThan
	IntUnsignedLessOrEqual
	IntSignedGreaterThan
	IntSignedGreaterOrEqual
	IntSignedLessThan
	IntSignedLessOrEqual
)

const intPredicateBase = 32

var compareNames = [...]string{
	FPFalse:                   "fcmp false",
	FPOrderedEqual:            "fcmp oeq",
	FPOrderedGreaterThan:      "fcmp ogt",
	FPOrderedGreaterOrEqual:   "fcmp oge",
	FPOrderedLessThan:         "fcmp olt",
	FPOrderedLessOrEqual:      "fcmp ole",
	FPOrderedNotEqual:         "fcmp one",
	FPOrdered:                 "fcmp ord",
	FPUnordered:               "fcmp uno",
	FPUnorderedEqual:          "fcmp ueq",
	FPUnorderedGreaterThan:    "fcmp ugt",
	FPUnorderedGreaterOrEqual: "fcmp uge",
	FPUnorderedLessThan:       "fcmp ult",
	FPUnorderedLessOrEqual:    "fcmp ule",
	FPUnorderedNotEqual:       "fcmp une",
	FPTrue:                    "fcmp true",
	IntEqual:                  "icmp eq",
	IntNotEqual:               "icmp ne",
	IntUnsignedGreaterThan:    "icmp ugt",
	IntUnsignedGreaterOrEqual: "icmp uge",
	IntUnsignedLessThan:       "icmp ult",
	IntUnsignedLessOrEqual:    "icmp ule",
	IntSignedGreaterThan:      "icmp sgt",
	IntSignedGreaterOrEqual:   "icmp sge",
	IntSignedLessThan:         "icmp slt",
	IntSignedLessOrEqual:      "icmp sle",
}

func (op CompareOperator) String() string { return compareNames[op] }

// IsFloatingPoint reports whether the predicate is an fcmp predicate.
func (op CompareOperator) IsFloatingPoint() bool { return op <= FPTrue }

// DecodeCompareOperator maps a bitcode predicate code to an operator.
func DecodeCompareOperator(opcode int) CompareOperator {
	switch {
	case opcode >= 0 && opcode <= int(FPTrue):
		return CompareOperator(opcode)
	case opcode >= intPredicateBase && opcode < intPredicateBase+10:
		return IntEqual + CompareOperator(opcode-intPredicateBase)
	}
	failf(ProtocolViolation, "unknown compare predicate %d", opcode)
	return 0
}

// Flag is an arithmetic qualifier attached to a binary operation.
type Flag string

const (
	NoUnsignedWrap  Flag = "nuw"
	NoSignedWrap    Flag = "nsw"
	Exact           Flag = "exact"
	Fast            Flag = "fast"
	NoNaNs          Flag = "nnan"
	NoInfinities    Flag = "ninf"
	NoSignedZeroes  Flag = "nsz"
	AllowReciprocal Flag = "arcp"
)

// DecodeFlags extracts the flag bits meaningful for the given operator:
// wrap flags for add/sub/mul/shl, exact for the divisions and right shifts,
// and the fast-math subset for every floating operator.
func DecodeFlags(operator BinaryOperator, flags int) []Flag {
	var decoded []Flag
	set := func(bit int, flag Flag) {
		if flags&(1<<bit) != 0 {
			decoded = append(decoded, flag)
		}
	}
	switch operator {
	case IntAdd, IntSubtract, IntMultiply, IntShiftLeft:
		set(0, NoUnsignedWrap)
		set(1, NoSignedWrap)
	case IntUnsignedDivide, IntSignedDivide, IntLogicalShiftRight, IntArithmeticShiftRight:
		set(0, Exact)
	case FPAdd, FPSubtract, FPMultiply, FPDivide, FPRemainder:
		set(0, Fast)
		set(1, NoNaNs)
		set(2, NoInfinities)
		set(3, NoSignedZeroes)
		set(4, AllowReciprocal)
	}
	return decoded
}
