package target

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSWO/pkg/script"
)

func TestFormatLiteral(t *testing.T) {
	cases := []struct {
		ins  script.Instruction
		want string
	}{
		{
			script.Instruction{Dest: script.Register(0xE000EDFC), Op: script.OpAssign, Value: script.Literal(0x1000000), Size: 4},
			"set {int}0xe000edfc = 0x1000000\n",
		},
		{
			script.Instruction{Dest: script.Register(0xE0042004), Op: script.OpSet, Value: script.Literal(0x20), Size: 4},
			"set {int}0xe0042004 |= 0x20\n",
		},
		{
			// clear-bits of a literal arrives pre-complemented
			script.Instruction{Dest: script.Register(0x40020400), Op: script.OpClear, Value: script.Literal(^uint32(0xc0)), Size: 4},
			"set {int}0x40020400 &= 0xffffff3f\n",
		},
	}
	for _, tc := range cases {
		got, err := Format(tc.ins, nil)
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("Format = %q, want %q", got, tc.want)
		}
	}
}

func TestFormatMasksValueToSize(t *testing.T) {
	ins := script.Instruction{Dest: script.Literal(0x1000), Op: script.OpAssign, Value: script.Literal(0x12345678), Size: 2}
	got, err := Format(ins, nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "set {short}0x1000 = 0x5678\n" {
		t.Errorf("Format = %q", got)
	}

	ins.Size = 1
	got, err = Format(ins, nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "set {char}0x1000 = 0x78\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatParameterSubstitution(t *testing.T) {
	// TPIU_SPPR = $0 with protocol 2 (asynchronous)
	ins := script.Instruction{Dest: script.Register(0xE00400F0), Op: script.OpAssign, Value: script.Param(0), Size: 4}
	got, err := Format(ins, []uint32{2})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "set {int}0xe00400f0 = 0x2\n" {
		t.Errorf("Format = %q", got)
	}

	// parameter destination ($3 = $2)
	ins = script.Instruction{Dest: script.Param(3), Op: script.OpAssign, Value: script.Param(2), Size: 4}
	got, err = Format(ins, []uint32{0, 0, 115200, 0x20000010})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "set {int}0x20000010 = 0x1c200\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatAbsentParameter(t *testing.T) {
	// a destination parameter resolved to the absent sentinel skips the
	// instruction; the same instruction formats once the value exists
	ins := script.Instruction{Dest: script.Param(0), Op: script.OpClearInvParam, Value: script.Literal(0x0F), Size: 1}

	if _, err := Format(ins, []uint32{ParamAbsent}); !errors.Is(err, ErrParamAbsent) {
		t.Fatalf("expected ErrParamAbsent, got %v", err)
	}
	if _, err := Format(ins, nil); !errors.Is(err, ErrParamAbsent) {
		t.Fatalf("expected ErrParamAbsent for a missing slot, got %v", err)
	}

	got, err := Format(ins, []uint32{0x1000})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "set {char}0x1000 &= ~0xf\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatClearInvertedParameter(t *testing.T) {
	// ITM_TER &= ~$0: the complement stays symbolic and the tilde abuts the
	// substituted operand
	ins := script.Instruction{Dest: script.Register(0xE0000E00), Op: script.OpClearInvParam, Value: script.Param(0), Size: 4}
	got, err := Format(ins, []uint32{0x3})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "set {int}0xe0000e00 &= ~0x3\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatLiteralAddressNeverAliasesSentinel(t *testing.T) {
	// a literal destination of 0xFFFFFFFF is a valid (if odd) address; only
	// a substituted parameter can be absent
	ins := script.Instruction{Dest: script.Literal(0xFFFFFFFF), Op: script.OpAssign, Value: script.Literal(1), Size: 4}
	got, err := Format(ins, nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "set {int}0xffffffff = 0x1\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatInvalidSize(t *testing.T) {
	ins := script.Instruction{Dest: script.Literal(0x1000), Op: script.OpAssign, Value: script.Literal(1), Size: 3}
	if _, err := Format(ins, nil); err == nil {
		t.Fatal("expected error for invalid size")
	}
}
