package msp430

import "encoding/binary"

// rawReadWord and rawWriteWord read/write a little-endian 16-bit value
// directly from the backing RAM array, with no bounds, alignment or MMIO
// checks. Callers (memory.go) are responsible for all of that; these two
// helpers exist so the byte-order choice lives in exactly one place, the way
// the teacher's endian.go isolates WriteU16/ReadU16 from the rest of the
// addressing code. MSP430 is little-endian, unlike the m68k this helper was
// adapted from, so the byte order here is binary.LittleEndian rather than
// BigEndian.
func (m *Machine) rawReadWord(addr uint16) uint16 {
	return binary.LittleEndian.Uint16(m.ram[addr:])
}

func (m *Machine) rawWriteWord(addr uint16, v uint16) {
	binary.LittleEndian.PutUint16(m.ram[addr:], v)
}
