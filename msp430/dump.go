package msp430

import "fmt"

// Dump renders the fixed-layout 156-byte register/flag snapshot described
// in spec.md §6.4. It is the one diagnostic surface the core owns directly
// (logging itself is left to the front-end); ported field-for-field from
// original_source/src/msp430.cpp's print(), including its flag-letter
// ordering (C, Z, N, V, I) and its choice of big-endian hex digit order
// within each 4-digit field regardless of the machine's own little-endian
// memory layout.
func (m *Machine) Dump() string {
	r := m.registers
	flags := dumpFlags(r[SR])
	return fmt.Sprintf(
		" pc %04x  sp %04x  sr %04x cg2 %04x\n"+
			" r4 %04x  r5 %04x  r6 %04x  r7 %04x\n"+
			" r8 %04x  r9 %04x r10 %04x r11 %04x\n"+
			"r12 %04x r13 %04x r14 %04x r15 %04x\n"+
			"flags %s\n",
		r[PC], r[SP], r[SR], r[CG],
		r[4], r[5], r[6], r[7],
		r[8], r[9], r[10], r[11],
		r[12], r[13], r[14], r[15],
		flags,
	)
}

// dumpFlags spells the 5-character flag string: each position is its letter
// if the bit is set, else a space, in the fixed order C,Z,N,V,I.
func dumpFlags(sr uint16) string {
	letters := [5]struct {
		bit   uint16
		label byte
	}{
		{FlagC, 'C'},
		{FlagZ, 'Z'},
		{FlagN, 'N'},
		{FlagV, 'V'},
		{FlagI, 'I'},
	}
	out := make([]byte, 5)
	for i, l := range letters {
		if sr&l.bit != 0 {
			out[i] = l.label
		} else {
			out[i] = ' '
		}
	}
	return string(out)
}
