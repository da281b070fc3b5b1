package ir

import (
	"slices"
)

// Symbols is the per-function symbol table: an append-only arena addressed by
// 32-bit position. An index may be looked up before it is filled; the lookup
// then yields a ForwardReference that is patched into every registered holder
// when the slot fills.
type Symbols struct {
	symbols []Symbol
	forward map[int]*ForwardReference
}

func NewSymbols() *Symbols {
	return &Symbols{forward: make(map[int]*ForwardReference)}
}

// Len returns the number of filled slots.
func (s *Symbols) Len() int { return len(s.symbols) }

// At returns the symbol filled at index. Unlike Lookup it never creates a
// placeholder; it is the traversal accessor for consumers.
func (s *Symbols) At(index int) Symbol {
	if index < 0 || index >= len(s.symbols) {
		failf(IndexOutOfRange, "symbol %d of %d", index, len(s.symbols))
	}
	return s.symbols[index]
}

// Append fills the next free slot and returns its index. If a forward
// reference was handed out for that slot, every holder is patched first and
// the placeholder is dropped.
func (s *Symbols) Append(sym Symbol) int {
	index := len(s.symbols)
	if ref, ok := s.forward[index]; ok {
		ref.resolve(sym)
		delete(s.forward, index)
	}
	s.symbols = append(s.symbols, sym)
	return index
}

// Lookup returns the symbol at index, or a placeholder when the slot has not
// been filled yet. The caller is not registered for patching; use LookupFor
// when the result is stored into an operand slot.
func (s *Symbols) Lookup(index int) Symbol {
	if index < 0 {
		failf(IndexOutOfRange, "symbol %d", index)
	}
	if index < len(s.symbols) {
		return s.symbols[index]
	}
	return s.forwardRef(index)
}

// LookupFor is Lookup plus registration: when the slot is unfilled, holder is
// recorded so that filling the slot calls holder.Replace(placeholder, real).
func (s *Symbols) LookupFor(index int, holder Symbol) Symbol {
	if index < 0 {
		failf(IndexOutOfRange, "symbol %d", index)
	}
	if index < len(s.symbols) {
		return s.symbols[index]
	}
	ref := s.forwardRef(index)
	ref.addHolder(holder)
	return ref
}

func (s *Symbols) forwardRef(index int) *ForwardReference {
	ref, ok := s.forward[index]
	if !ok {
		ref = newForwardReference(index)
		s.forward[index] = ref
	}
	return ref
}

// Constants resolves a batch of indices that must already hold constants.
// Aggregate construction uses this; a hole or a non-constant is fatal.
func (s *Symbols) Constants(indices []int) []Constant {
	constants := make([]Constant, len(indices))
	for i, index := range indices {
		sym := s.Lookup(index)
		c, ok := sym.(Constant)
		if !ok {
			failf(TypeMismatch, "symbol %d is not a constant", index)
		}
		constants[i] = c
	}
	return constants
}

// SetName attaches a name from the bitcode value symbol table to the symbol
// at index.
func (s *Symbols) SetName(index int, name string) {
	sym := s.At(index)
	v, ok := sym.(ValueSymbol)
	if !ok {
		failf(TypeMismatch, "symbol %d cannot be named", index)
	}
	v.SetName(name)
}

// unresolved returns the indices of slots that still hold placeholders, in
// ascending order.
func (s *Symbols) unresolved() []int {
	indices := make([]int, 0, len(s.forward))
	for index := range s.forward {
		indices = append(indices, index)
	}
	slices.Sort(indices)
	return indices
}
