package msp430

// singleOpFields is the field layout of a single-operand instruction word:
// 000100 · opcode(3) · bw(1) · As(2) · target(4).
type singleOpFields struct {
	opcode uint16
	byteOp bool
	as     uint16
	target uint16
}

func decodeSingleOp(instr uint16) singleOpFields {
	return singleOpFields{
		opcode: (instr >> 7) & 0x7,
		byteOp: (instr>>6)&0x1 != 0,
		as:     (instr >> 4) & 0x3,
		target: instr & 0xF,
	}
}

// conditionalFields is the field layout of a conditional-jump word:
// 001 · condition(3) · offset(10, signed).
type conditionalFields struct {
	condition uint16
	offset    int16
}

func decodeConditional(instr uint16) conditionalFields {
	cond := (instr >> 10) & 0x7
	raw := instr & 0x3FF
	// Sign-extend the 10-bit field to 16 bits.
	offset := int16(raw<<6) >> 6
	return conditionalFields{condition: cond, offset: offset}
}

// dualOpFields is the field layout of a dual-operand word:
// opcode(4) · source(4) · Ad(1) · bw(1) · As(2) · dest(4).
type dualOpFields struct {
	opcode uint16
	source uint16
	ad     uint16
	byteOp bool
	as     uint16
	dest   uint16
}

func decodeDualOp(instr uint16) dualOpFields {
	return dualOpFields{
		opcode: (instr >> 12) & 0xF,
		source: (instr >> 8) & 0xF,
		ad:     (instr >> 7) & 0x1,
		byteOp: (instr>>6)&0x1 != 0,
		as:     (instr >> 4) & 0x3,
		dest:   instr & 0xF,
	}
}
