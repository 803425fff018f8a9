package msp430

// sizeConstants bundles the three width-dependent masks spec.md §4.4 names:
// M (value mask), S (sign bit) and K (carry-out bit), for the given byte/word
// mode.
type sizeConstants struct {
	mask  uint32
	sign  uint32
	carry uint32
}

func constantsFor(byteMode bool) sizeConstants {
	if byteMode {
		return sizeConstants{mask: 0xFF, sign: 0x80, carry: 0x100}
	}
	return sizeConstants{mask: 0xFFFF, sign: 0x8000, carry: 0x10000}
}

// arithmeticFlags implements spec.md §4.4's standard ALU rule for the
// arithmetic family (ADD/ADDC/SUBC/SUB/CMP): C is the carry out of the
// 32-bit result, Z is result==0 within the operand width, N is the result's
// sign bit, and V is set iff both operand signs agreed and differ from the
// result's sign. result must already be the raw (possibly >width) sum —
// the caller does not pre-mask it here, matching
// original_source/src/msp430.cpp's alu_flags_update, which reads the carry
// bit straight out of the unmasked 32-bit accumulator.
func arithmeticFlags(sourceSign, destSign bool, result uint32, byteMode bool) (carry, zero, sign, overflow bool) {
	c := constantsFor(byteMode)
	carry = result&c.carry != 0
	zero = result&c.mask == 0
	sign = result&c.sign != 0
	overflow = (sourceSign != sign) && (destSign != sign)
	return
}

// logicalFlags implements spec.md §4.4's rule for AND/BIT/XOR: N is the
// result's sign bit, Z is result==0, C is simply !Z, and V is always clear.
// This is the documented MSP430 behavior for the AND-family and is used here
// instead of feeding a bitwise result through arithmeticFlags, which would
// always report C=0 (a bitwise result never sets the carry-out bit) — see
// SPEC_FULL.md's §9 note on the BIT/CMP open question.
func logicalFlags(result uint16, byteMode bool) (carry, zero, sign, overflow bool) {
	c := constantsFor(byteMode)
	zero = uint32(result)&c.mask == 0
	sign = uint32(result)&c.sign != 0
	carry = !zero
	overflow = false
	return
}

// applyFlags writes carry/zero/sign/overflow into SR, leaving every other
// bit (including IE) untouched — the only bits any ALU/shift instruction may
// modify are {C,Z,N,V} (spec.md §8 invariant 5).
func (m *Machine) applyFlags(carry, zero, sign, overflow bool) {
	sr := m.registers[SR] &^ flagALU
	if carry {
		sr |= FlagC
	}
	if zero {
		sr |= FlagZ
	}
	if sign {
		sr |= FlagN
	}
	if overflow {
		sr |= FlagV
	}
	m.registers[SR] = sr
}
