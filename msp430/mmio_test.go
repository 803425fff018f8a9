package msp430

import (
	"errors"
	"testing"
)

func TestMMIOUartRoundTrip(t *testing.T) {
	var written []byte
	feed := []byte{0x42}
	m := NewMachine(
		func(b byte) { written = append(written, b) },
		func() byte { return feed[0] },
	)

	if err := m.writeWord(portUART, 0x55); err != nil {
		t.Fatalf("writeWord(UART): %v", err)
	}
	if len(written) != 1 || written[0] != 0x55 {
		t.Errorf("written = %v, want [0x55]", written)
	}

	v, err := m.readWord(portUART)
	if err != nil {
		t.Fatalf("readWord(UART): %v", err)
	}
	if v != 0x42 {
		t.Errorf("readWord(UART) = %#x, want 0x42", v)
	}
}

func TestMMIOByteModeIsFatal(t *testing.T) {
	m := NewMachine(nil, nil)
	_, err := m.readByte(portUART)
	var mmioErr *MMIOError
	if !errors.As(err, &mmioErr) {
		t.Fatalf("readByte(UART) = %v, want *MMIOError", err)
	}
}

func TestMMIOUnknownPortIsFatal(t *testing.T) {
	m := NewMachine(nil, nil)
	_, err := m.readWord(0xFF00)
	var mmioErr *MMIOError
	if !errors.As(err, &mmioErr) {
		t.Fatalf("readWord(0xFF00) = %v, want *MMIOError", err)
	}
}

func TestMMIOExitWriteHalts(t *testing.T) {
	m := NewMachine(nil, nil)
	err := m.writeWord(portExit, 0)
	var halt *HaltError
	if !errors.As(err, &halt) {
		t.Fatalf("writeWord(EXIT) = %v, want *HaltError", err)
	}
}

func TestUnalignedWordAccessIsFatal(t *testing.T) {
	m := NewMachine(nil, nil)
	_, err := m.readWord(1)
	var unaligned *UnalignedError
	if !errors.As(err, &unaligned) {
		t.Fatalf("readWord(1) = %v, want *UnalignedError", err)
	}
}
