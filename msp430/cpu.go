// Package msp430 implements the core of a TI MSP430 instruction-set
// emulator: an ELF loader, an instruction decoder with MSP430 addressing
// modes, and an execution engine covering the ALU, shifter, control flow and
// a small MMIO window for UART and program exit.
package msp430

// Machine owns the emulator's RAM, register file and UART hooks.
type Machine struct {
	// ram is the flat 64 KiB unified code/data address space. Addresses
	// 0xFF00..0xFFFF are reserved for MMIO and never read or written as
	// plain storage.
	ram [ramSize]byte
	// registers holds R0..R15. R0=PC, R1=SP, R2=SR (CG1), R3=CG2.
	registers [16]uint16

	// uartPrint and uartRead are supplied by the front-end at construction,
	// per the Design Notes redesign: the original keeps these as process-wide
	// static hooks, this implementation stores them on the Machine instead.
	uartPrint func(byte)
	uartRead  func() byte

	// fault tracks the address and raw word of the instruction currently
	// being executed, so memory and MMIO errors deep in the call stack can
	// report where they happened without threading it through every call.
	fault faultSite
}

const ramSize = 0x10000

// Register indices.
const (
	PC = 0
	SP = 1
	SR = 2
	CG = 3
)

// Status register flag bits.
const (
	FlagC uint16 = 1 << 0
	FlagZ uint16 = 1 << 1
	FlagN uint16 = 1 << 2
	FlagI uint16 = 1 << 3
	FlagV uint16 = 1 << 8

	// flagALU is the set of bits any ALU/shift instruction may touch.
	flagALU = FlagC | FlagZ | FlagN | FlagV
)

// NewMachine creates a Machine with zeroed RAM and registers. print is
// called with one byte whenever the guest writes the UART MMIO port; read is
// called whenever the guest reads it and returns one byte (it may block; the
// core places no timeout on it). With a nil print hook, UART writes are
// dropped; with a nil read hook, a UART read fails with an MMIOError.
func NewMachine(print func(byte), read func() byte) *Machine {
	return &Machine{
		uartPrint: print,
		uartRead:  read,
	}
}

// Registers returns a copy of the register file, indexed 0..15.
func (m *Machine) Registers() [16]uint16 {
	return m.registers
}

// Register reads register n (0..15) directly, with no constant-generator
// rewrite. Use this for inspection; the decoder applies the full
// As-dependent rewrite during instruction execution.
func (m *Machine) Register(n int) uint16 {
	return m.registers[n]
}

// SetRegister writes register n directly, bypassing any addressing-mode
// semantics. Writing to CG (R3) is a no-op, matching the invariant that the
// constant generator register is never a real storage cell.
func (m *Machine) SetRegister(n int, v uint16) {
	if n == CG {
		return
	}
	m.registers[n] = v
}

// RAM returns the underlying 64 KiB address space for inspection. Callers
// must not treat the MMIO window (0xFF00..0xFFFF) as holding meaningful
// stored bytes.
func (m *Machine) RAM() []byte {
	return m.ram[:]
}
