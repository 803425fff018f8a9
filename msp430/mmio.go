package msp430

// MMIO port addresses. The window [mmioBase, 0x10000) is never backed by
// plain storage; every access to it dispatches here instead.
const (
	mmioBase = 0xFF00
	portUART = 0xFFA2
	portExit = 0xFFFE
)

// readMMIO and writeMMIO implement the two-port device table described in
// SPEC_FULL.md §4.3: a fixed lookup by address rather than a general
// Device/DeviceMap registry (grounded on the shape of
// _examples/hexaflex-zz-svm/vm/device.go's DeviceMap, scaled down because
// spec.md's Non-goals rule out any peripheral beyond UART and the halt
// port). Byte-mode and misaligned access are caught by the caller in
// memory.go before these are reached.
func (m *Machine) readMMIO(addr uint16, fault faultSite) (uint16, error) {
	switch addr {
	case portUART:
		if m.uartRead == nil {
			return 0, &MMIOError{faultSite: fault, Addr16: addr, Reason: "no UART read hook installed"}
		}
		return uint16(m.uartRead()), nil
	default:
		return 0, &MMIOError{faultSite: fault, Addr16: addr, Reason: "read from unknown MMIO device"}
	}
}

func (m *Machine) writeMMIO(addr uint16, value uint16, fault faultSite) error {
	switch addr {
	case portUART:
		if m.uartPrint != nil {
			m.uartPrint(byte(value))
		}
		return nil
	case portExit:
		return &HaltError{faultSite: fault}
	default:
		return &MMIOError{faultSite: fault, Addr16: addr, Reason: "write to unknown MMIO device"}
	}
}
