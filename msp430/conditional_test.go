package msp430

import "testing"

func TestExecuteConditionalPredicates(t *testing.T) {
	tests := []struct {
		name      string
		condition uint16
		sr        uint16
		wantTaken bool
	}{
		{"JNE taken when Z clear", condJNE, 0, true},
		{"JNE not taken when Z set", condJNE, FlagZ, false},
		{"JEQ taken when Z set", condJEQ, FlagZ, true},
		{"JNC taken when C clear", condJNC, 0, true},
		{"JC taken when C set", condJC, FlagC, true},
		{"JN taken when N set", condJN, FlagN, true},
		{"JN not taken when N clear", condJN, 0, false},
		{"JGE taken when N==V both clear", condJGE, 0, true},
		{"JGE taken when N==V both set", condJGE, FlagN | FlagV, true},
		{"JGE not taken when N!=V", condJGE, FlagN, false},
		{"JL taken when N!=V", condJL, FlagN, true},
		{"JL not taken when N==V", condJL, 0, false},
		{"JMP always taken", condJMP, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(nil, nil)
			m.SetRegister(PC, 0x100)
			m.SetRegister(SR, tc.sr)
			if err := m.executeConditional(conditionalFields{condition: tc.condition, offset: 10}); err != nil {
				t.Fatalf("executeConditional: %v", err)
			}
			want := uint16(0x100)
			if tc.wantTaken {
				want = 0x100 + 20
			}
			if got := m.Register(PC); got != want {
				t.Errorf("PC = %#x, want %#x", got, want)
			}
		})
	}
}

func TestDecodeConditionalSignExtendsOffset(t *testing.T) {
	tests := []struct {
		instr      uint16
		wantCond   uint16
		wantOffset int16
	}{
		{0x3FFC, condJMP, -4},
		{0x3C01, condJMP, 1},
		{0x3C00, condJMP, 0},
	}
	for _, tc := range tests {
		fields := decodeConditional(tc.instr)
		if fields.condition != tc.wantCond {
			t.Errorf("decodeConditional(%#04x).condition = %d, want %d", tc.instr, fields.condition, tc.wantCond)
		}
		if fields.offset != tc.wantOffset {
			t.Errorf("decodeConditional(%#04x).offset = %d, want %d", tc.instr, fields.offset, tc.wantOffset)
		}
	}
}
