package msp430

import (
	"fmt"

	"github.com/pkg/errors"
)

// faultSite carries the address and raw word of the instruction a step
// failed on, so callers can report "what" and "where" without re-fetching it
// themselves. This is the one deliberate addition over the reference
// implementation: original_source/src/msp430.cpp's error paths throw bare
// std::runtime_error with no instruction context.
type faultSite struct {
	Addr uint16
	Word uint16
}

func (f faultSite) String() string {
	return fmt.Sprintf("%04x: instruction %04x", f.Addr, f.Word)
}

// IllegalInstructionError is returned for a reserved top-nibble encoding, a
// reserved single-operand opcode, an illegal destination encoding such as
// x(CG2), or a RETI with nonzero low bits.
type IllegalInstructionError struct {
	faultSite
	Reason string
}

func (e *IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction at %s: %s", e.faultSite, e.Reason)
}

// UnalignedError is returned for a word-mode access (RAM or MMIO) at an odd
// address.
type UnalignedError struct {
	faultSite
	Addr16 uint16
}

func (e *UnalignedError) Error() string {
	return fmt.Sprintf("unaligned word access to %#04x at %s", e.Addr16, e.faultSite)
}

// UnsupportedAddressingError is returned for @PC in source-field encoding
// (As=2 with Rs=PC), the one addressing form the core deliberately does not
// implement.
type UnsupportedAddressingError struct {
	faultSite
}

func (e *UnsupportedAddressingError) Error() string {
	return fmt.Sprintf("unsupported @PC addressing at %s", e.faultSite)
}

// MMIOError is returned for a byte-mode MMIO access or an access to an
// MMIO address with no registered port.
type MMIOError struct {
	faultSite
	Addr16 uint16
	Reason string
}

func (e *MMIOError) Error() string {
	return fmt.Sprintf("MMIO error at %#04x (%s) at %s", e.Addr16, e.Reason, e.faultSite)
}

// HaltError is returned when the guest writes the exit port (0xFFFE). It is
// a terminator, not a bug: callers should treat it as a successful stop.
type HaltError struct {
	faultSite
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("MMIO exit triggered at %s", e.faultSite)
}

// UnimplementedError is returned for DADD, the one dual-operand opcode this
// core deliberately does not implement.
type UnimplementedError struct {
	faultSite
	Reason string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented: %s at %s", e.Reason, e.faultSite)
}

// LoadError is returned by Load for any failure reading or validating an
// ELF image: I/O failure, truncated read, bad e_machine/e_phentsize, or a
// PT_LOAD segment that does not fit in RAM. Reason distinguishes these
// causes the way original_source/src/msp430.cpp's three distinct
// std::runtime_error call sites do, without introducing new top-level error
// kinds spec.md does not name.
type LoadError struct {
	Reason string
	cause  error
}

func (e *LoadError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("load failed: %s: %v", e.Reason, e.cause)
	}
	return fmt.Sprintf("load failed: %s", e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.cause
}

func newLoadError(reason string, cause error) *LoadError {
	return &LoadError{Reason: reason, cause: errors.WithStack(cause)}
}
