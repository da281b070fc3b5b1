package types

import "strings"

// FunctionType describes a callable signature: return type, argument types
// and whether the function is variadic.
type FunctionType struct {
	ReturnType Type
	ArgTypes   []Type
	VarArg     bool
}

func NewFunctionType(returnType Type, argTypes []Type, varArg bool) *FunctionType {
	return &FunctionType{ReturnType: returnType, ArgTypes: argTypes, VarArg: varArg}
}

func (t *FunctionType) Kind() TypeKind { return FunctionKind }

func (t *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString(t.ReturnType.String())
	sb.WriteString(" (")
	for i, a := range t.ArgTypes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	if t.VarArg {
		if len(t.ArgTypes) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
	}
	sb.WriteString(")")
	return sb.String()
}
