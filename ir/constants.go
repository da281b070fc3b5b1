package ir

import (
	"github.com/krukhlis/llvm-bcj/types"
)

// Constant is a Symbol whose value is fixed at assembly time: literals,
// aggregates and constant expressions.
type Constant interface {
	Symbol
	constant()
}

// IntegerConstant is an integer literal.
type IntegerConstant struct {
	typ   *types.IntegerType
	value int64
}

func NewIntegerConstant(typ *types.IntegerType, value int64) *IntegerConstant {
	return &IntegerConstant{typ: typ, value: value}
}

func (c *IntegerConstant) Type() types.Type           { return c.typ }
func (c *IntegerConstant) Value() int64               { return c.value }
func (c *IntegerConstant) Replace(original, _ Symbol) {}
func (c *IntegerConstant) constant()                  {}

// FloatingPointConstant is a floating-point literal kept as its raw bit
// pattern; the model does not interpret the encoding.
type FloatingPointConstant struct {
	typ  *types.FloatingPointType
	bits uint64
}

func NewFloatingPointConstant(typ *types.FloatingPointType, bits uint64) *FloatingPointConstant {
	return &FloatingPointConstant{typ: typ, bits: bits}
}

func (c *FloatingPointConstant) Type() types.Type           { return c.typ }
func (c *FloatingPointConstant) Bits() uint64               { return c.bits }
func (c *FloatingPointConstant) Replace(original, _ Symbol) {}
func (c *FloatingPointConstant) constant()                  {}

// NullConstant is the zero initializer of its type.
type NullConstant struct {
	typ types.Type
}

func NewNullConstant(typ types.Type) *NullConstant { return &NullConstant{typ: typ} }

func (c *NullConstant) Type() types.Type           { return c.typ }
func (c *NullConstant) Replace(original, _ Symbol) {}
func (c *NullConstant) constant()                  {}

// UndefinedConstant is an undef value of its type.
type UndefinedConstant struct {
	typ types.Type
}

func NewUndefinedConstant(typ types.Type) *UndefinedConstant {
	return &UndefinedConstant{typ: typ}
}

func (c *UndefinedConstant) Type() types.Type           { return c.typ }
func (c *UndefinedConstant) Replace(original, _ Symbol) {}
func (c *UndefinedConstant) constant()                  {}

// StringConstant is a character array literal. C strings carry an implicit
// trailing NUL in their type but not in the stored value.
type StringConstant struct {
	typ       types.Type
	value     string
	isCString bool
}

func NewStringConstant(typ types.Type, value string, isCString bool) *StringConstant {
	return &StringConstant{typ: typ, value: value, isCString: isCString}
}

func (c *StringConstant) Type() types.Type           { return c.typ }
func (c *StringConstant) Value() string              { return c.value }
func (c *StringConstant) IsCString() bool            { return c.isCString }
func (c *StringConstant) Replace(original, _ Symbol) {}
func (c *StringConstant) constant()                  {}

// ArrayConstant is an array aggregate over resolved element constants.
type ArrayConstant struct {
	typ      *types.ArrayType
	elements []Constant
}

func NewArrayConstant(typ *types.ArrayType, elements []Constant) *ArrayConstant {
	return &ArrayConstant{typ: typ, elements: elements}
}

func (c *ArrayConstant) Type() types.Type           { return c.typ }
func (c *ArrayConstant) Elements() []Constant       { return c.elements }
func (c *ArrayConstant) Replace(original, _ Symbol) {}
func (c *ArrayConstant) constant()                  {}

// StructureConstant is a struct aggregate over resolved field constants.
type StructureConstant struct {
	typ      *types.StructureType
	elements []Constant
}

func NewStructureConstant(typ *types.StructureType, elements []Constant) *StructureConstant {
	return &StructureConstant{typ: typ, elements: elements}
}

func (c *StructureConstant) Type() types.Type           { return c.typ }
func (c *StructureConstant) Elements() []Constant       { return c.elements }
func (c *StructureConstant) Replace(original, _ Symbol) {}
func (c *StructureConstant) constant()                  {}

// VectorConstant is a vector aggregate over resolved element constants.
type VectorConstant struct {
	typ      *types.VectorType
	elements []Constant
}

func NewVectorConstant(typ *types.VectorType, elements []Constant) *VectorConstant {
	return &VectorConstant{typ: typ, elements: elements}
}

func (c *VectorConstant) Type() types.Type           { return c.typ }
func (c *VectorConstant) Elements() []Constant       { return c.elements }
func (c *VectorConstant) Replace(original, _ Symbol) {}
func (c *VectorConstant) constant()                  {}

// BinaryOperationConstant is a folded binary expression. Its operands are
// resolved eagerly at creation and never rewritten.
type BinaryOperationConstant struct {
	typ      types.Type
	operator BinaryOperator
	lhs, rhs Symbol
}

func NewBinaryOperationConstant(typ types.Type, operator BinaryOperator, lhs, rhs Symbol) *BinaryOperationConstant {
	return &BinaryOperationConstant{typ: typ, operator: operator, lhs: lhs, rhs: rhs}
}

func (c *BinaryOperationConstant) Type() types.Type           { return c.typ }
func (c *BinaryOperationConstant) Operator() BinaryOperator   { return c.operator }
func (c *BinaryOperationConstant) LHS() Symbol                { return c.lhs }
func (c *BinaryOperationConstant) RHS() Symbol                { return c.rhs }
func (c *BinaryOperationConstant) Replace(original, _ Symbol) {}
func (c *BinaryOperationConstant) constant()                  {}

// CastConstant is a folded conversion expression.
type CastConstant struct {
	typ      types.Type
	operator CastOperator
	value    Symbol
}

func NewCastConstant(typ types.Type, operator CastOperator) *CastConstant {
	return &CastConstant{typ: typ, operator: operator}
}

func (c *CastConstant) Type() types.Type       { return c.typ }
func (c *CastConstant) Operator() CastOperator { return c.operator }
func (c *CastConstant) Value() Symbol          { return c.value }
func (c *CastConstant) SetValue(value Symbol)  { c.value = value }
func (c *CastConstant) constant()              {}

func (c *CastConstant) Replace(original, replacement Symbol) {
	if c.value == original {
		c.value = replacement
	}
}

// CompareConstant is a folded comparison expression.
type CompareConstant struct {
	typ      types.Type
	operator CompareOperator
	lhs, rhs Symbol
}

func NewCompareConstant(typ types.Type, operator CompareOperator) *CompareConstant {
	return &CompareConstant{typ: typ, operator: operator}
}

func (c *CompareConstant) Type() types.Type          { return c.typ }
func (c *CompareConstant) Operator() CompareOperator { return c.operator }
func (c *CompareConstant) LHS() Symbol               { return c.lhs }
func (c *CompareConstant) RHS() Symbol               { return c.rhs }
func (c *CompareConstant) SetLHS(lhs Symbol)         { c.lhs = lhs }
func (c *CompareConstant) SetRHS(rhs Symbol)         { c.rhs = rhs }
func (c *CompareConstant) constant()                 {}

func (c *CompareConstant) Replace(original, replacement Symbol) {
	if c.lhs == original {
		c.lhs = replacement
	}
	if c.rhs == original {
		c.rhs = replacement
	}
}

// GetElementPointerConstant is a folded address computation.
type GetElementPointerConstant struct {
	typ        types.Type
	isInbounds bool
	base       Symbol
	indices    []Symbol
}

func NewGetElementPointerConstant(typ types.Type, isInbounds bool) *GetElementPointerConstant {
	return &GetElementPointerConstant{typ: typ, isInbounds: isInbounds}
}

func (c *GetElementPointerConstant) Type() types.Type           { return c.typ }
func (c *GetElementPointerConstant) IsInbounds() bool           { return c.isInbounds }
func (c *GetElementPointerConstant) BasePointer() Symbol        { return c.base }
func (c *GetElementPointerConstant) Indices() []Symbol          { return c.indices }
func (c *GetElementPointerConstant) SetBasePointer(base Symbol) { c.base = base }
func (c *GetElementPointerConstant) AddIndex(index Symbol)      { c.indices = append(c.indices, index) }
func (c *GetElementPointerConstant) constant()                  {}

func (c *GetElementPointerConstant) Replace(original, replacement Symbol) {
	if c.base == original {
		c.base = replacement
	}
	for i, index := range c.indices {
		if index == original {
			c.indices[i] = replacement
		}
	}
}

// BlockAddressConstant references a block of a function, both by handle.
type BlockAddressConstant struct {
	typ      types.Type
	function Symbol
	block    *Block
}

func NewBlockAddressConstant(typ types.Type, function Symbol, block *Block) *BlockAddressConstant {
	return &BlockAddressConstant{typ: typ, function: function, block: block}
}

func (c *BlockAddressConstant) Type() types.Type           { return c.typ }
func (c *BlockAddressConstant) Function() Symbol           { return c.function }
func (c *BlockAddressConstant) Block() *Block              { return c.block }
func (c *BlockAddressConstant) Replace(original, _ Symbol) {}
func (c *BlockAddressConstant) constant()                  {}

// ConstantFromData builds an aggregate constant from a packed scalar array,
// one element per data word. Integer elements take the word as a value,
// floating elements as a raw bit pattern.
func ConstantFromData(typ types.Type, data []uint64) Constant {
	switch t := typ.(type) {
	case *types.ArrayType:
		return NewArrayConstant(t, scalarsFromData(t.Element, data))
	case *types.VectorType:
		return NewVectorConstant(t, scalarsFromData(t.Element, data))
	}
	failf(TypeMismatch, "cannot build %s from data", typ)
	return nil
}

func scalarsFromData(element types.Type, data []uint64) []Constant {
	elements := make([]Constant, len(data))
	switch t := element.(type) {
	case *types.IntegerType:
		for i, word := range data {
			elements[i] = NewIntegerConstant(t, int64(word))
		}
	case *types.FloatingPointType:
		for i, word := range data {
			elements[i] = NewFloatingPointConstant(t, word)
		}
	default:
		failf(TypeMismatch, "cannot build %s elements from data", element)
	}
	return elements
}

// ConstantFromValues builds an aggregate constant over already-resolved
// element constants.
func ConstantFromValues(typ types.Type, values []Constant) Constant {
	switch t := typ.(type) {
	case *types.ArrayType:
		return NewArrayConstant(t, values)
	case *types.StructureType:
		return NewStructureConstant(t, values)
	case *types.VectorType:
		return NewVectorConstant(t, values)
	}
	failf(TypeMismatch, "cannot build %s from values", typ)
	return nil
}
