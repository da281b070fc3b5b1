package ir

import (
	"fmt"

	"github.com/krukhlis/llvm-bcj/types"
)

// UnknownName marks a symbol that has not been named, either explicitly from
// the bitcode symbol table or numerically at ExitFunction. It is distinct
// from the empty string, which is the entry block's real name.
const UnknownName = "<anon>"

// Symbol is anything that carries a type and may appear as an operand:
// constants, parameters, blocks, value instructions and the function itself.
type Symbol interface {
	Type() types.Type

	// Replace rewrites every operand slot holding original to replacement.
	// It is invoked during forward-reference resolution; symbols without
	// rewritable operands implement it as a no-op.
	Replace(original, replacement Symbol)
}

// ValueSymbol is a Symbol that additionally carries a name.
type ValueSymbol interface {
	Symbol
	Name() string
	SetName(name string)
}

// ForwardReference stands in for a symbol-table slot that has not been filled
// yet. It records every symbol that took it as an operand so the real symbol
// can be patched in on fill. Placeholders never survive ExitFunction.
type ForwardReference struct {
	index   int
	holders []Symbol
}

func newForwardReference(index int) *ForwardReference {
	return &ForwardReference{index: index}
}

// Index returns the symbol-table slot this placeholder stands for.
func (f *ForwardReference) Index() int { return f.index }

func (f *ForwardReference) Type() types.Type { return types.Unknown }

func (f *ForwardReference) Replace(original, replacement Symbol) {}

func (f *ForwardReference) String() string {
	return fmt.Sprintf("forward reference to %%%d", f.index)
}

func (f *ForwardReference) addHolder(holder Symbol) {
	f.holders = append(f.holders, holder)
}

// resolve patches the real symbol into every holder, in registration order.
func (f *ForwardReference) resolve(replacement Symbol) {
	for _, holder := range f.holders {
		holder.Replace(f, replacement)
	}
	f.holders = nil
}
