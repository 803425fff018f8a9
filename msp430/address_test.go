package msp430

import "testing"

func TestResolveSourceConstantGenerators(t *testing.T) {
	tests := []struct {
		name string
		reg  uint16
		as   uint16
		want uint16
	}{
		{"SR register direct", SR, modeRegister, 0}, // SR itself, zeroed initially
		{"SR indirect constant 4", SR, modeIndirect, 4},
		{"SR indirect-inc constant 8", SR, modeIndirectInc, 8},
		{"CG register direct constant 0", CG, modeRegister, 0},
		{"CG indexed constant 1", CG, modeIndexed, 1},
		{"CG indirect constant 2", CG, modeIndirect, 2},
		{"CG indirect-inc constant -1", CG, modeIndirectInc, 0xFFFF},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(nil, nil)
			got, err := m.resolveSource(tc.reg, tc.as, false)
			if err != nil {
				t.Fatalf("resolveSource: %v", err)
			}
			if got != tc.want {
				t.Errorf("resolveSource(%d,%d) = %#x, want %#x", tc.reg, tc.as, got, tc.want)
			}
		})
	}
}

func TestResolveSourceIndexedSRIsAbsolute(t *testing.T) {
	m := NewMachine(nil, nil)
	writeWordRaw(m, 0x200, 0xABCD)
	m.SetRegister(PC, 0)
	writeWordRaw(m, 0, 0x0200) // extension word: absolute address
	got, err := m.resolveSource(SR, modeIndexed, false)
	if err != nil {
		t.Fatalf("resolveSource: %v", err)
	}
	if got != 0xABCD {
		t.Errorf("resolveSource(SR, indexed) = %#x, want 0xABCD", got)
	}
	if m.Register(PC) != 2 {
		t.Errorf("PC = %#x, want advanced by 2 past the extension word", m.Register(PC))
	}
}

func TestResolveSourcePCImmediate(t *testing.T) {
	m := NewMachine(nil, nil)
	writeWordRaw(m, 0, 0x1111)
	got, err := m.resolveSource(PC, modeIndirectInc, false)
	if err != nil {
		t.Fatalf("resolveSource: %v", err)
	}
	if got != 0x1111 {
		t.Errorf("resolveSource(PC, Rn+) = %#x, want 0x1111", got)
	}
	if m.Register(PC) != 2 {
		t.Errorf("PC = %#x, want advanced by 2", m.Register(PC))
	}
}

func TestResolveSourcePCIndirectIsUnsupported(t *testing.T) {
	m := NewMachine(nil, nil)
	_, err := m.resolveSource(PC, modeIndirect, false)
	if _, ok := err.(*UnsupportedAddressingError); !ok {
		t.Fatalf("resolveSource(PC, @Rn) error type = %T, want *UnsupportedAddressingError", err)
	}
}

func TestResolveSourceAutoIncrementStepSize(t *testing.T) {
	tests := []struct {
		name     string
		reg      uint16
		byteMode bool
		want     uint16
	}{
		{"word mode general register", 4, false, 2},
		{"byte mode general register above SP", 4, true, 1},
		{"byte mode SP itself stays word-stepped", SP, true, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(nil, nil)
			m.SetRegister(int(tc.reg), 0x300)
			if _, err := m.resolveSource(tc.reg, modeIndirectInc, tc.byteMode); err != nil {
				t.Fatalf("resolveSource: %v", err)
			}
			if got := m.Register(int(tc.reg)); got != 0x300+tc.want {
				t.Errorf("register after @Rn+ = %#x, want %#x", got, 0x300+tc.want)
			}
		})
	}
}

func TestResolveSingleOpTargetIllegalCG(t *testing.T) {
	m := NewMachine(nil, nil)
	_, err := m.resolveSingleOpTarget(CG, modeIndexed, false)
	if _, ok := err.(*IllegalInstructionError); !ok {
		t.Fatalf("resolveSingleOpTarget(CG, indexed) error type = %T, want *IllegalInstructionError", err)
	}
}

func TestResolveDualDestIllegalCGIndexed(t *testing.T) {
	m := NewMachine(nil, nil)
	_, err := m.resolveDualDest(CG, destIndexed)
	if _, ok := err.(*IllegalInstructionError); !ok {
		t.Fatalf("resolveDualDest(CG, indexed) error type = %T, want *IllegalInstructionError", err)
	}
}
