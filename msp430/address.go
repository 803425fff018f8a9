package msp430

// resolveSource computes a dual-operand instruction's source value, given
// its register and As field. It implements the priority order from spec.md
// §4.2: PC immediate, then the SR (CG1) and CG (CG2) constant-generator
// rewrites, then the general-register rules. Single-operand instructions do
// not use it: their operand is resolved to a location by
// resolveSingleOpTarget and read through that destination, so the constant
// generators are not available as single-op operands.
func (m *Machine) resolveSource(reg, as uint16, byteMode bool) (uint16, error) {
	if reg == PC {
		switch as {
		case modeIndirect:
			return 0, &UnsupportedAddressingError{faultSite: m.fault}
		case modeIndirectInc:
			return m.fetchExtensionWord()
		}
		// as == modeRegister or modeIndexed: fall through as an ordinary
		// register.
	}

	if reg == SR {
		switch as {
		case modeRegister:
			return m.registers[SR], nil
		case modeIndirect:
			return 4, nil
		case modeIndirectInc:
			return 8, nil
		case modeIndexed:
			addr, err := m.fetchExtensionWord()
			if err != nil {
				return 0, err
			}
			return m.readSized(addr, byteMode)
		}
	}

	if reg == CG {
		constants := [4]uint16{0, 1, 2, 0xFFFF}
		return constants[as], nil
	}

	switch as {
	case modeRegister:
		return m.registers[reg], nil
	case modeIndexed:
		base := m.registers[reg]
		offset, err := m.fetchExtensionWord()
		if err != nil {
			return 0, err
		}
		return m.readSized(base+offset, byteMode)
	case modeIndirect:
		return m.readSized(m.registers[reg], byteMode)
	case modeIndirectInc:
		addr := m.registers[reg]
		v, err := m.readSized(addr, byteMode)
		if err != nil {
			return 0, err
		}
		if byteMode && reg == SP {
			m.registers[reg] += 2 // @SP+ always keeps the stack word-aligned.
		} else if byteMode {
			m.registers[reg] += 1
		} else {
			m.registers[reg] += 2
		}
		return v, nil
	}
	panic("unreachable As value")
}

// resolveDualDest computes the write-capable destination for a dual-operand
// instruction's Ad field (spec.md §4.2).
func (m *Machine) resolveDualDest(reg, ad uint16) (destination, error) {
	if ad == destRegister {
		return registerDestination(reg), nil
	}

	if reg == SR {
		addr, err := m.fetchExtensionWord()
		if err != nil {
			return destination{}, err
		}
		return memoryDestination(addr), nil
	}
	if reg == CG {
		return destination{}, &IllegalInstructionError{faultSite: m.fault, Reason: "x(CG2) destination addressing"}
	}

	base := m.registers[reg]
	offset, err := m.fetchExtensionWord()
	if err != nil {
		return destination{}, err
	}
	return memoryDestination(base + offset), nil
}

// resolveSingleOpTarget computes the write-capable destination for a
// single-operand instruction's target register and As field. As=0 always
// returns a register handle outright (even for SR/CG — see destination.go
// for why a CG write there is harmless); any other As with target=CG is
// illegal, and target=SR only accepts As=1 (absolute addressing).
func (m *Machine) resolveSingleOpTarget(reg, as uint16, byteMode bool) (destination, error) {
	if as == modeRegister {
		return registerDestination(reg), nil
	}

	if reg == CG {
		return destination{}, &IllegalInstructionError{faultSite: m.fault, Reason: "illegal target register CG2"}
	}

	if reg == SR {
		if as == modeIndexed {
			addr, err := m.fetchExtensionWord()
			if err != nil {
				return destination{}, err
			}
			return memoryDestination(addr), nil
		}
		return destination{}, &IllegalInstructionError{faultSite: m.fault, Reason: "illegal target register CG1"}
	}

	switch as {
	case modeIndexed:
		base := m.registers[reg]
		offset, err := m.fetchExtensionWord()
		if err != nil {
			return destination{}, err
		}
		return memoryDestination(base + offset), nil
	case modeIndirect:
		return memoryDestination(m.registers[reg]), nil
	case modeIndirectInc:
		addr := m.registers[reg]
		if byteMode && reg > SP {
			m.registers[reg] += 1
		} else {
			m.registers[reg] += 2
		}
		return memoryDestination(addr), nil
	}
	panic("unreachable As value")
}
