package msp430

// Step fetches the instruction word at PC, advances PC past it, classifies
// it, and dispatches to the matching execution routine. Every fatal
// condition returns one of the error types in errors.go; none of them leave
// the Machine in an undefined state, only a partially mutated one (spec.md
// §4.8: an error propagates leaving registers and memory as they stood at
// the point of failure). Grounded on
// _examples/Urethramancer-m68k/cpu/cpu.go's Step (fetch, decode, dispatch by
// class, surface the first error) and original_source/src/msp430.cpp's
// step_instruction.
func (m *Machine) Step() error {
	pc := m.registers[PC]
	instr, err := m.readWord(pc)
	if err != nil {
		return err
	}
	m.fault = faultSite{Addr: pc, Word: instr}
	m.registers[PC] = pc + 2

	switch classify(instr) {
	case classSingleOperand:
		return m.executeSingleOp(decodeSingleOp(instr), instr)
	case classConditional:
		return m.executeConditional(decodeConditional(instr))
	case classDualOperand:
		return m.executeDualOp(decodeDualOp(instr))
	default:
		return &IllegalInstructionError{faultSite: m.fault, Reason: "reserved top nibble 0000"}
	}
}
