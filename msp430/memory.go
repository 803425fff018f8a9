package msp430

// readByte and writeByte access a single byte of RAM. MMIO is never
// accessible in byte mode (spec.md §4.3): any byte-mode access landing in the
// MMIO window is an MMIOError, not a silent RAM read.
func (m *Machine) readByte(addr uint16) (uint16, error) {
	if addr >= mmioBase {
		return 0, &MMIOError{faultSite: m.fault, Addr16: addr, Reason: "MMIO accessed in byte mode"}
	}
	return uint16(m.ram[addr]), nil
}

func (m *Machine) writeByte(addr uint16, value uint16) error {
	if addr >= mmioBase {
		return &MMIOError{faultSite: m.fault, Addr16: addr, Reason: "MMIO accessed in byte mode"}
	}
	m.ram[addr] = byte(value)
	return nil
}

// readWord and writeWord access a little-endian 16-bit value, dispatching to
// MMIO when the address falls in the reserved window and requiring 2-byte
// alignment everywhere (RAM and MMIO alike).
func (m *Machine) readWord(addr uint16) (uint16, error) {
	if addr&1 != 0 {
		return 0, &UnalignedError{faultSite: m.fault, Addr16: addr}
	}
	if addr >= mmioBase {
		return m.readMMIO(addr, m.fault)
	}
	return m.rawReadWord(addr), nil
}

func (m *Machine) writeWord(addr uint16, value uint16) error {
	if addr&1 != 0 {
		return &UnalignedError{faultSite: m.fault, Addr16: addr}
	}
	if addr >= mmioBase {
		return m.writeMMIO(addr, value, m.fault)
	}
	m.rawWriteWord(addr, value)
	return nil
}

// readSized and writeSized dispatch on byte/word mode, used throughout the
// decoder and execution engine so callers don't re-derive the byte-vs-word
// branch themselves.
func (m *Machine) readSized(addr uint16, byteMode bool) (uint16, error) {
	if byteMode {
		return m.readByte(addr)
	}
	return m.readWord(addr)
}

func (m *Machine) writeSized(addr uint16, value uint16, byteMode bool) error {
	if byteMode {
		return m.writeByte(addr, value)
	}
	return m.writeWord(addr, value)
}

// fetchExtensionWord reads the word at PC as an instruction extension word
// (an offset, absolute address, or #imm operand) and advances PC by 2. It is
// always a word-mode RAM read; extension words are never fetched from MMIO
// in practice since PC never legitimately points into that window.
func (m *Machine) fetchExtensionWord() (uint16, error) {
	v, err := m.readWord(m.registers[PC])
	if err != nil {
		return 0, err
	}
	m.registers[PC] += 2
	return v, nil
}
