package ir

import "github.com/krukhlis/llvm-bcj/types"

// FunctionParameter is a typed, positional argument of a function
// definition. Its position is its index in both the parameter list and the
// symbol table.
type FunctionParameter struct {
	typ   types.Type
	index int
	name  string
}

func NewFunctionParameter(typ types.Type, index int) *FunctionParameter {
	return &FunctionParameter{typ: typ, index: index, name: UnknownName}
}

func (p *FunctionParameter) Type() types.Type { return p.typ }

func (p *FunctionParameter) Index() int { return p.index }

func (p *FunctionParameter) Name() string { return p.name }

func (p *FunctionParameter) SetName(name string) { p.name = name }

func (p *FunctionParameter) Replace(original, replacement Symbol) {}
