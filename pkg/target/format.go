package target

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSWO/pkg/script"
)

// ParamAbsent is the reserved parameter value signaling that a required
// runtime address or symbol could not be resolved by the caller. Formatting
// an instruction whose destination resolves to it fails with ErrParamAbsent,
// and the caller skips that one instruction.
const ParamAbsent = ^uint32(0)

// Format resolves an instruction's runtime parameters against the supplied
// values and renders it as a remote "set memory" directive, e.g.
//
//	set {int}0xe0000e80 |= 0x11\n
//
// The value is masked to the instruction's operand size. OpClearInvParam
// renders the freshly substituted parameter as "&= ~0x…", leaving the
// complement to the remote side; the tilde abuts the operand.
func Format(ins script.Instruction, params []uint32) (string, error) {
	address, err := resolve(ins.Dest, params)
	if err != nil {
		return "", err
	}
	if ins.Dest.Kind == script.KindParam && address == ParamAbsent {
		return "", ErrParamAbsent
	}
	value, err := resolve(ins.Value, params)
	if err != nil {
		return "", err
	}
	neg := ""
	if ins.Op == script.OpClearInvParam {
		neg = "~"
	}

	switch ins.Size {
	case 1:
		return fmt.Sprintf("set {char}0x%x %s %s0x%x\n", address, ins.Op, neg, value&0xff), nil
	case 2:
		return fmt.Sprintf("set {short}0x%x %s %s0x%x\n", address, ins.Op, neg, value&0xffff), nil
	case 4:
		return fmt.Sprintf("set {int}0x%x %s %s0x%x\n", address, ins.Op, neg, value), nil
	default:
		return "", fmt.Errorf("target: invalid operand size %d", ins.Size)
	}
}

func resolve(op script.Operand, params []uint32) (uint32, error) {
	if op.Kind != script.KindParam {
		return op.Value, nil
	}
	if op.Index >= len(params) {
		return 0, ErrParamAbsent
	}
	return params[op.Index], nil
}
