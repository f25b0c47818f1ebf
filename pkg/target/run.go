package target

import "errors"

// RunScript resolves and formats the named script in one call: a fresh
// cursor is walked to the end, every instruction is rendered with the given
// runtime parameters, and instructions whose required parameter is absent
// are skipped rather than failing the sequence. The returned strings are the
// remote "set memory" directives in declaration order.
func (s *Session) RunScript(name string, params []uint32) ([]string, error) {
	cur, err := s.Cursor(name)
	if err != nil {
		return nil, err
	}
	var cmds []string
	for {
		ins, err := cur.Next()
		if errors.Is(err, ErrScriptExhausted) {
			return cmds, nil
		}
		if err != nil {
			return cmds, err
		}
		cmd, err := Format(ins, params)
		if errors.Is(err, ErrParamAbsent) {
			continue
		}
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds, cmd)
	}
}
