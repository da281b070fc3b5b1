package ir

import (
	"fmt"
	"strings"
)

// Formatter renders a finalized function in assembly-flavoured text. It is a
// read-only consumer of the visitor surface and exists both as a debugging
// aid and as the reference traversal of the model. Functions must have gone
// through ExitFunction; unnamed symbols render with the unnamed sentinel.
type Formatter struct {
	sb strings.Builder
}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatFunction pretty prints an entire function definition.
func (f *Formatter) FormatFunction(function *FunctionDefinition) string {
	f.sb.Reset()
	fmt.Fprintf(&f.sb, "define %s %s(", function.FunctionType().ReturnType, function.Name())
	for i, parameter := range function.Parameters() {
		if i > 0 {
			f.sb.WriteString(", ")
		}
		f.sb.WriteString(f.operand(parameter))
	}
	f.sb.WriteString(") {\n")
	function.Accept(f)
	f.sb.WriteString("}\n")
	return f.sb.String()
}

// Visit renders one block: a label header, except for the entry block, then
// its instructions in insertion order.
func (f *Formatter) Visit(block *Block) {
	if block.Name() != "" {
		fmt.Fprintf(&f.sb, "%s:\n", block.Name())
	}
	block.Accept(f)
}

// label renders a block reference. The entry block's empty name prints as
// %0, the implicit entry label consumers use.
func (f *Formatter) label(block *Block) string {
	if block.Name() == "" {
		return "label %0"
	}
	return "label %" + block.Name()
}

// value renders a symbol reference without its type.
func (f *Formatter) value(s Symbol) string {
	switch sym := s.(type) {
	case *FunctionDefinition:
		return sym.Name()
	case *IntegerConstant:
		return fmt.Sprintf("%d", sym.Value())
	case *FloatingPointConstant:
		return fmt.Sprintf("0x%X", sym.Bits())
	case *NullConstant:
		return "null"
	case *UndefinedConstant:
		return "undef"
	case *StringConstant:
		return fmt.Sprintf("c%q", sym.Value())
	case *ArrayConstant:
		return f.elements(sym.Elements(), "[", "]")
	case *StructureConstant:
		return f.elements(sym.Elements(), "{ ", " }")
	case *VectorConstant:
		return f.elements(sym.Elements(), "<", ">")
	case *BinaryOperationConstant:
		return fmt.Sprintf("%s (%s, %s)", sym.Operator(), f.operand(sym.LHS()), f.operand(sym.RHS()))
	case *CastConstant:
		return fmt.Sprintf("%s (%s to %s)", sym.Operator(), f.operand(sym.Value()), sym.Type())
	case *CompareConstant:
		return fmt.Sprintf("%s (%s, %s)", sym.Operator(), f.operand(sym.LHS()), f.operand(sym.RHS()))
	case *GetElementPointerConstant:
		var sb strings.Builder
		sb.WriteString("getelementptr ")
		if sym.IsInbounds() {
			sb.WriteString("inbounds ")
		}
		sb.WriteString("(" + f.operand(sym.BasePointer()))
		for _, index := range sym.Indices() {
			sb.WriteString(", " + f.operand(index))
		}
		sb.WriteString(")")
		return sb.String()
	case *BlockAddressConstant:
		return fmt.Sprintf("blockaddress(%s, %s)", f.value(sym.Function()), f.label(sym.Block()))
	case ValueSymbol:
		return "%" + sym.Name()
	case *ForwardReference:
		return sym.String()
	}
	return fmt.Sprintf("<%T>", s)
}

// operand renders a symbol reference with its type.
func (f *Formatter) operand(s Symbol) string {
	return s.Type().String() + " " + f.value(s)
}

func (f *Formatter) elements(elements []Constant, open, closing string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, e := range elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.operand(e))
	}
	sb.WriteString(closing)
	return sb.String()
}

func (f *Formatter) line(format string, args ...any) {
	fmt.Fprintf(&f.sb, "  "+format+"\n", args...)
}

func (f *Formatter) assign(v ValueInstruction) string {
	return fmt.Sprintf("%%%s = ", v.Name())
}

func (f *Formatter) VisitAllocate(i *AllocateInstruction) {
	f.line("%salloca %s, %s, align %d", f.assign(i), i.Type(), f.operand(i.Count()), i.Align())
}

func (f *Formatter) VisitBinaryOperation(i *BinaryOperationInstruction) {
	var flags strings.Builder
	for _, flag := range i.Flags() {
		flags.WriteString(string(flag) + " ")
	}
	f.line("%s%s %s%s %s, %s", f.assign(i), i.Operator(), flags.String(), i.Type(), f.value(i.LHS()), f.value(i.RHS()))
}

func (f *Formatter) VisitBranch(i *BranchInstruction) {
	f.line("br %s", f.label(i.Successor()))
}

func (f *Formatter) VisitCall(i *CallInstruction) {
	f.line("%scall %s %s(%s)", f.assign(i), i.Type(), f.value(i.Target()), f.arguments(i.Arguments()))
}

func (f *Formatter) VisitCast(i *CastInstruction) {
	f.line("%s%s %s to %s", f.assign(i), i.Operator(), f.operand(i.Value()), i.Type())
}

func (f *Formatter) VisitCompare(i *CompareInstruction) {
	f.line("%s%s %s, %s", f.assign(i), i.Operator(), f.operand(i.LHS()), f.value(i.RHS()))
}

func (f *Formatter) VisitConditionalBranch(i *ConditionalBranchInstruction) {
	f.line("br %s, %s, %s", f.operand(i.Condition()), f.label(i.TrueSuccessor()), f.label(i.FalseSuccessor()))
}

func (f *Formatter) VisitExtractElement(i *ExtractElementInstruction) {
	f.line("%sextractelement %s, %s", f.assign(i), f.operand(i.Vector()), f.operand(i.Index()))
}

func (f *Formatter) VisitExtractValue(i *ExtractValueInstruction) {
	f.line("%sextractvalue %s, %d", f.assign(i), f.operand(i.Aggregate()), i.Index())
}

func (f *Formatter) VisitGetElementPointer(i *GetElementPointerInstruction) {
	var sb strings.Builder
	sb.WriteString("getelementptr ")
	if i.IsInbounds() {
		sb.WriteString("inbounds ")
	}
	sb.WriteString(f.operand(i.BasePointer()))
	for _, index := range i.Indices() {
		sb.WriteString(", " + f.operand(index))
	}
	f.line("%s%s", f.assign(i), sb.String())
}

func (f *Formatter) VisitIndirectBranch(i *IndirectBranchInstruction) {
	labels := make([]string, len(i.Successors()))
	for n, successor := range i.Successors() {
		labels[n] = f.label(successor)
	}
	f.line("indirectbr %s, [%s]", f.operand(i.Address()), strings.Join(labels, ", "))
}

func (f *Formatter) VisitInsertElement(i *InsertElementInstruction) {
	f.line("%sinsertelement %s, %s, %s", f.assign(i), f.operand(i.Vector()), f.operand(i.Value()), f.operand(i.Index()))
}

func (f *Formatter) VisitInsertValue(i *InsertValueInstruction) {
	f.line("%sinsertvalue %s, %s, %d", f.assign(i), f.operand(i.Aggregate()), f.operand(i.Value()), i.Index())
}

func (f *Formatter) VisitLoad(i *LoadInstruction) {
	volatile := ""
	if i.IsVolatile() {
		volatile = "volatile "
	}
	f.line("%sload %s%s, %s, align %d", f.assign(i), volatile, i.Type(), f.operand(i.Source()), i.Align())
}

func (f *Formatter) VisitPhi(i *PhiInstruction) {
	var cases []string
	for n, value := range i.Values() {
		label := i.Blocks()[n].Name()
		if label == "" {
			label = "0"
		}
		cases = append(cases, fmt.Sprintf("[ %s, %%%s ]", f.value(value), label))
	}
	f.line("%sphi %s %s", f.assign(i), i.Type(), strings.Join(cases, ", "))
}

func (f *Formatter) VisitReturn(i *ReturnInstruction) {
	if i.Value() == nil {
		f.line("ret void")
		return
	}
	f.line("ret %s", f.operand(i.Value()))
}

func (f *Formatter) VisitSelect(i *SelectInstruction) {
	f.line("%sselect %s, %s, %s", f.assign(i), f.operand(i.Condition()), f.operand(i.TrueValue()), f.operand(i.FalseValue()))
}

func (f *Formatter) VisitShuffleVector(i *ShuffleVectorInstruction) {
	f.line("%sshufflevector %s, %s, %s", f.assign(i), f.operand(i.Vector1()), f.operand(i.Vector2()), f.operand(i.Mask()))
}

func (f *Formatter) VisitStore(i *StoreInstruction) {
	volatile := ""
	if i.IsVolatile() {
		volatile = "volatile "
	}
	f.line("store %s%s, %s, align %d", volatile, f.operand(i.Source()), f.operand(i.Destination()), i.Align())
}

func (f *Formatter) VisitSwitch(i *SwitchInstruction) {
	var cases []string
	for n, value := range i.CaseValues() {
		cases = append(cases, fmt.Sprintf("%s, %s", f.operand(value), f.label(i.CaseBlocks()[n])))
	}
	f.line("switch %s, %s [ %s ]", f.operand(i.Condition()), f.label(i.DefaultBlock()), strings.Join(cases, "  "))
}

func (f *Formatter) VisitSwitchOld(i *SwitchOldInstruction) {
	var cases []string
	for n, constant := range i.CaseConstants() {
		cases = append(cases, fmt.Sprintf("%d, %s", constant, f.label(i.CaseBlocks()[n])))
	}
	f.line("switch %s, %s [ %s ]", f.operand(i.Condition()), f.label(i.DefaultBlock()), strings.Join(cases, "  "))
}

func (f *Formatter) VisitUnreachable(i *UnreachableInstruction) {
	f.line("unreachable")
}

func (f *Formatter) VisitVoidCall(i *VoidCallInstruction) {
	f.line("call void %s(%s)", f.value(i.Target()), f.arguments(i.Arguments()))
}

func (f *Formatter) arguments(arguments []Symbol) string {
	rendered := make([]string, len(arguments))
	for n, argument := range arguments {
		rendered[n] = f.operand(argument)
	}
	return strings.Join(rendered, ", ")
}
