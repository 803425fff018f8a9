package msp430

// executeConditional carries out a decoded conditional-jump instruction:
// the ten-bit signed offset (already sign-extended and left in word units
// by decodeConditional) is doubled and added to PC only if the condition
// holds against the current flags. Grounded on
// original_source/src/msp430.cpp's execute_decoded_conditional and on
// _examples/Urethramancer-m68k/cpu/branch.go's opBRA (test predicate,
// conditionally add a pre-computed displacement to PC).
func (m *Machine) executeConditional(fields conditionalFields) error {
	sr := m.registers[SR]
	var take bool
	switch fields.condition {
	case condJNE:
		take = sr&FlagZ == 0
	case condJEQ:
		take = sr&FlagZ != 0
	case condJNC:
		take = sr&FlagC == 0
	case condJC:
		take = sr&FlagC != 0
	case condJN:
		take = sr&FlagN != 0
	case condJGE:
		take = (sr&FlagN != 0) == (sr&FlagV != 0)
	case condJL:
		take = (sr&FlagN != 0) != (sr&FlagV != 0)
	case condJMP:
		take = true
	default:
		return &IllegalInstructionError{faultSite: m.fault, Reason: "reserved conditional code"}
	}

	if take {
		m.registers[PC] = uint16(int32(m.registers[PC]) + int32(fields.offset)*2)
	}
	return nil
}
