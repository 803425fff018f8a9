package msp430

// executeSingleOp carries out a decoded single-operand instruction.
// Grounded on original_source/src/msp430.cpp's execute_decoded_single_op for
// the per-opcode semantics, and on
// _examples/Urethramancer-m68k/cpu/trap.go's opRTS for the stack-pointer
// push/pop discipline (decrement-then-write on the way down, read-then-
// increment on the way back).
//
// Addressing-mode side effects (the @Rn+ auto-increment step) always follow
// the instruction's real bw bit (fields.byteOp), even for opcodes like SWPB,
// SXT and CALL whose operand *value* is always read/written at a fixed
// width — those two notions are resolved separately below, matching
// original_source/src/msp430.cpp's single_op_loc (which always consults
// op.bw for the increment) versus its per-opcode Destination::read<Mode>/
// write<Mode> calls (which hardcode Word for those three opcodes).
func (m *Machine) executeSingleOp(fields singleOpFields, instr uint16) error {
	switch fields.opcode {
	case opPUSH:
		// SP is decremented before the operand is resolved, matching
		// original_source/src/msp430.cpp's PUSH case — this ordering is
		// observable for an operand addressed relative to SP itself (e.g.
		// "PUSH @SP").
		m.registers[SP] -= 2
		dest, err := m.resolveSingleOpTarget(fields.target, fields.as, fields.byteOp)
		if err != nil {
			return err
		}
		value, err := dest.read(m, fields.byteOp)
		if err != nil {
			return err
		}
		// Byte-mode PUSH still consumes 2 bytes of stack (spec.md §3
		// invariant); only the low byte is written, leaving mem[SP+1]
		// whatever it already held (spec.md §9 open question).
		return m.writeSized(m.registers[SP], value, fields.byteOp)

	case opCALL:
		dest, err := m.resolveSingleOpTarget(fields.target, fields.as, fields.byteOp)
		if err != nil {
			return err
		}
		target, err := dest.read(m, false) // CALL's target is always word-sized.
		if err != nil {
			return err
		}
		m.registers[SP] -= 2
		if err := m.writeWord(m.registers[SP], m.registers[PC]); err != nil {
			return err
		}
		m.registers[PC] = target
		return nil

	case opRETI:
		if instr&0x3F != 0 {
			return &IllegalInstructionError{faultSite: m.fault, Reason: "RETI with nonzero argument bits"}
		}
		sr, err := m.readWord(m.registers[SP])
		if err != nil {
			return err
		}
		pc, err := m.readWord(m.registers[SP] + 2)
		if err != nil {
			return err
		}
		m.registers[SR] = sr
		m.registers[PC] = pc
		m.registers[SP] += 4
		return nil

	case opSWPB:
		dest, err := m.resolveSingleOpTarget(fields.target, fields.as, fields.byteOp)
		if err != nil {
			return err
		}
		value, err := dest.read(m, false) // SWPB always operates on a full word.
		if err != nil {
			return err
		}
		swapped := (value>>8)&0xFF | (value&0xFF)<<8
		return dest.write(m, swapped, false) // Flags unchanged.

	case opSXT:
		dest, err := m.resolveSingleOpTarget(fields.target, fields.as, fields.byteOp)
		if err != nil {
			return err
		}
		low, err := dest.read(m, true) // Sign-extend always reads a byte...
		if err != nil {
			return err
		}
		extended := uint16(int16(int8(low)))
		if err := dest.write(m, extended, false); err != nil { // ...and writes a word.
			return err
		}
		m.applyFlags(extended != 0, extended == 0, extended&0x8000 != 0, false)
		return nil

	case opRRC:
		return m.executeRotate(fields, true)

	case opRRA:
		return m.executeRotate(fields, false)

	default:
		return &IllegalInstructionError{faultSite: m.fault, Reason: "reserved single-operand opcode"}
	}
}

// executeRotate implements RRC (withCarry=true) and RRA (withCarry=false):
// compose an (n+1)-bit value by folding the carry-in into the mode's carry
// position, shift right by one, and take the bit shifted out as the new
// carry. RRC folds in the current C flag; RRA folds in the value's own sign
// bit (arithmetic shift, sign-replicating). Unlike SWPB/SXT/CALL, the
// rotates' value width matches the instruction's own bw bit throughout.
func (m *Machine) executeRotate(fields singleOpFields, withCarry bool) error {
	dest, err := m.resolveSingleOpTarget(fields.target, fields.as, fields.byteOp)
	if err != nil {
		return err
	}
	value, err := dest.read(m, fields.byteOp)
	if err != nil {
		return err
	}

	c := constantsFor(fields.byteOp)
	wide := uint32(value)
	if withCarry {
		if m.registers[SR]&FlagC != 0 {
			wide |= c.carry
		}
	} else {
		if wide&c.sign != 0 {
			wide |= c.carry
		}
	}
	carryOut := wide&1 != 0
	wide >>= 1

	result := uint16(wide) & uint16(c.mask)
	if err := dest.write(m, result, fields.byteOp); err != nil {
		return err
	}
	m.applyFlags(carryOut, result == 0, uint32(result)&c.sign != 0, false)
	return nil
}
