package types

import "fmt"

// IntegerType is an arbitrary-width integer type.
type IntegerType struct {
	Width uint32
}

// Canonical widths used throughout bitcode. NewIntegerType interns these so
// identity comparison holds for the common cases.
var (
	I1  = &IntegerType{Width: 1}
	I8  = &IntegerType{Width: 8}
	I16 = &IntegerType{Width: 16}
	I32 = &IntegerType{Width: 32}
	I64 = &IntegerType{Width: 64}
)

var canonicalInts = map[uint32]*IntegerType{
	1: I1, 8: I8, 16: I16, 32: I32, 64: I64,
}

// NewIntegerType returns the descriptor for an iN type, reusing the canonical
// instance when one exists.
func NewIntegerType(width uint32) *IntegerType {
	if t, ok := canonicalInts[width]; ok {
		return t
	}
	return &IntegerType{Width: width}
}

func (t *IntegerType) Kind() TypeKind { return IntegerKind }

func (t *IntegerType) String() string { return fmt.Sprintf("i%d", t.Width) }

// FloatingPointType is one of the fixed floating-point formats. All instances
// are package-level singletons.
type FloatingPointType struct {
	Width uint32
	name  string
}

var (
	Half     = &FloatingPointType{16, "half"}
	Float    = &FloatingPointType{32, "float"}
	Double   = &FloatingPointType{64, "double"}
	X86FP80  = &FloatingPointType{80, "x86_fp80"}
	FP128    = &FloatingPointType{128, "fp128"}
	PPCFP128 = &FloatingPointType{128, "ppc_fp128"}
)

func (t *FloatingPointType) Kind() TypeKind { return FloatingKind }

func (t *FloatingPointType) String() string { return t.name }
