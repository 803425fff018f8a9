package msp430

import (
	"strings"
	"testing"
)

func TestDumpLayoutAndFlagLetters(t *testing.T) {
	m := NewMachine(nil, nil)
	m.SetRegister(PC, 0x0200)
	m.SetRegister(SR, FlagC|FlagN)
	out := m.Dump()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Dump() has %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "pc 0200") {
		t.Errorf("first line = %q, want to contain \"pc 0200\"", lines[0])
	}
	if lines[4] != "flags C N  " {
		t.Errorf("flags line = %q, want \"flags C N  \"", lines[4])
	}
}

func TestDumpFlagsAllClear(t *testing.T) {
	if got, want := dumpFlags(0), "     "; got != want {
		t.Errorf("dumpFlags(0) = %q, want %q", got, want)
	}
}

func TestDumpFlagsAllSet(t *testing.T) {
	all := FlagC | FlagZ | FlagN | FlagV | FlagI
	if got, want := dumpFlags(all), "CZNVI"; got != want {
		t.Errorf("dumpFlags(all) = %q, want %q", got, want)
	}
}
