package msp430

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Elf32 constants this loader validates or consumes (spec.md §4.1/§6.1).
// Only e_machine and e_phentsize are checked; every other ELF ident field
// (class, data encoding, version) is accepted unconditionally, which is why
// this loader cannot be built on the stdlib debug/elf package — see
// SPEC_FULL.md §4.1.
const (
	emMSP430      = 0x69
	elfHeaderSize = 52
	phdrSize      = 32
	ptLoad        = 1
)

// elf32Header is the subset of Elf32_Ehdr this loader reads, laid out at the
// fixed byte offsets of the real structure (e_ident is 16 bytes, skipped).
type elf32Header struct {
	machine   uint16
	entry     uint32
	phOffset  uint32
	phEntSize uint16
	phNum     uint16
}

func parseElf32Header(buf []byte) elf32Header {
	return elf32Header{
		machine:   binary.LittleEndian.Uint16(buf[18:20]),
		entry:     binary.LittleEndian.Uint32(buf[24:28]),
		phOffset:  binary.LittleEndian.Uint32(buf[28:32]),
		phEntSize: binary.LittleEndian.Uint16(buf[42:44]),
		phNum:     binary.LittleEndian.Uint16(buf[44:46]),
	}
}

// elf32ProgramHeader is the subset of Elf32_Phdr this loader reads.
type elf32ProgramHeader struct {
	pType  uint32
	offset uint32
	paddr  uint32
	filesz uint32
}

func parseElf32ProgramHeader(buf []byte) elf32ProgramHeader {
	return elf32ProgramHeader{
		pType:  binary.LittleEndian.Uint32(buf[0:4]),
		offset: binary.LittleEndian.Uint32(buf[4:8]),
		paddr:  binary.LittleEndian.Uint32(buf[12:16]),
		filesz: binary.LittleEndian.Uint32(buf[16:20]),
	}
}

// readAt fills buf from image starting at offset, wrapping any short read or
// I/O failure into a *LoadError the way original_source/src/msp430.cpp's
// read_into lambda turns every fread/fseek failure into a runtime_error.
func readAt(image io.ReaderAt, buf []byte, offset int64) error {
	n, err := image.ReadAt(buf, offset)
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return newLoadError("short read", errors.Wrapf(err, "at offset %#x", offset))
	}
	return nil
}

// Load populates RAM and the register file from an Elf32 little-endian
// image targeting the MSP430 (spec.md §4.1). image must support random
// access (an *os.File or a *bytes.Reader both satisfy io.ReaderAt); the
// loader seeks to each header and PT_LOAD segment independently rather than
// assuming a forward-only stream, mirroring the fseek-per-section discipline
// of original_source/src/msp430.cpp's load_file.
func (m *Machine) Load(image io.ReaderAt) error {
	var headerBuf [elfHeaderSize]byte
	if err := readAt(image, headerBuf[:], 0); err != nil {
		return err
	}
	header := parseElf32Header(headerBuf[:])

	if header.machine != emMSP430 {
		return newLoadError("bad e_machine value", nil)
	}
	if header.phEntSize != phdrSize {
		return newLoadError("bad e_phentsize value", nil)
	}

	for i := range m.ram {
		m.ram[i] = 0
	}

	for i := uint16(0); i < header.phNum; i++ {
		var phdrBuf [phdrSize]byte
		offset := int64(header.phOffset) + int64(i)*phdrSize
		if err := readAt(image, phdrBuf[:], offset); err != nil {
			return err
		}
		phdr := parseElf32ProgramHeader(phdrBuf[:])

		if phdr.pType != ptLoad {
			continue
		}
		if uint64(phdr.paddr)+uint64(phdr.filesz) > ramSize {
			return newLoadError("LOAD segment out of range", nil)
		}

		segment := m.ram[phdr.paddr : phdr.paddr+phdr.filesz]
		if err := readAt(image, segment, int64(phdr.offset)); err != nil {
			return err
		}
	}

	m.registers = [16]uint16{}
	m.registers[PC] = uint16(header.entry)
	return nil
}

// LoadFile is a convenience wrapper that opens path and calls Load. It is
// not the argv-driven command-line front-end spec.md excludes from scope —
// just a thin os.File adapter so callers don't need to construct an
// io.ReaderAt themselves.
func (m *Machine) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return newLoadError("open failed", err)
	}
	defer f.Close()
	return m.Load(f)
}
