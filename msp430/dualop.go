package msp430

// executeDualOp carries out a decoded dual-operand instruction: fetch the
// source value, resolve the destination, then dispatch on the 4-bit opcode.
// Grounded on _examples/Urethramancer-m68k/cpu/arithmetic.go's opADD (fetch
// operands, compute, set flags, write back) and
// original_source/src/msp430.cpp's execute_decoded_dual_op, which this
// follows closely for the ALU-family opcodes.
func (m *Machine) executeDualOp(fields dualOpFields) error {
	source, err := m.resolveSource(fields.source, fields.as, fields.byteOp)
	if err != nil {
		return err
	}
	dest, err := m.resolveDualDest(fields.dest, fields.ad)
	if err != nil {
		return err
	}

	if fields.opcode == opMOV {
		return dest.write(m, source, fields.byteOp)
	}

	c := constantsFor(fields.byteOp)
	sourceSign := uint32(source)&c.sign != 0
	target, err := dest.read(m, fields.byteOp)
	if err != nil {
		return err
	}
	destSign := uint32(target)&c.sign != 0
	carryIn := uint32(0)
	if m.registers[SR]&FlagC != 0 {
		carryIn = 1
	}

	switch fields.opcode {
	case opADD:
		result := uint32(target) + uint32(source)
		m.applyFlags(arithmeticFlags(sourceSign, destSign, result, fields.byteOp))
		return dest.write(m, uint16(result), fields.byteOp)

	case opADDC:
		result := uint32(target) + uint32(source) + carryIn
		m.applyFlags(arithmeticFlags(sourceSign, destSign, result, fields.byteOp))
		return dest.write(m, uint16(result), fields.byteOp)

	case opSUBC:
		inverted := (^source) & uint16(c.mask)
		result := uint32(target) + uint32(inverted) + carryIn
		m.applyFlags(arithmeticFlags(!sourceSign, destSign, result, fields.byteOp))
		return dest.write(m, uint16(result), fields.byteOp)

	case opSUB:
		inverted := (^source) & uint16(c.mask)
		result := uint32(target) + uint32(inverted) + 1
		m.applyFlags(arithmeticFlags(!sourceSign, destSign, result, fields.byteOp))
		return dest.write(m, uint16(result), fields.byteOp)

	case opCMP:
		inverted := (^source) & uint16(c.mask)
		result := uint32(target) + uint32(inverted) + 1
		m.applyFlags(arithmeticFlags(!sourceSign, destSign, result, fields.byteOp))
		return nil // CMP never writes back.

	case opDADD:
		return &UnimplementedError{faultSite: m.fault, Reason: "DADD (BCD add)"}

	case opBIT:
		result := target & source
		m.applyFlags(logicalFlags(result, fields.byteOp))
		return nil // BIT never writes back.

	case opBIC:
		result := target &^ source
		return dest.write(m, result, fields.byteOp) // BIC updates no flags.

	case opBIS:
		result := target | source
		return dest.write(m, result, fields.byteOp) // BIS updates no flags.

	case opXOR:
		result := target ^ source
		m.applyFlags(logicalFlags(result, fields.byteOp))
		return dest.write(m, result, fields.byteOp)

	case opAND:
		result := target & source
		m.applyFlags(logicalFlags(result, fields.byteOp))
		return dest.write(m, result, fields.byteOp)

	default:
		return &IllegalInstructionError{faultSite: m.fault, Reason: "reserved dual-operand opcode"}
	}
}
