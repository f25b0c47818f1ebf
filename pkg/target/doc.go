// Package target resolves and replays device initialization scripts for one
// loaded MCU.
//
// This package builds on the device catalogs and the script compiler,
// assembling the register table and the compiled scripts that apply to a
// given MCU family, layering a user overlay file on top, and rendering the
// instructions as remote "set memory" directives.
//
// # Overview
//
// The target package provides:
//   - Session: the definition database for the currently loaded MCU
//   - Cursor: a forward-only iterator over one compiled script
//   - Format: parameter substitution and directive rendering
//
// # Usage
//
// Basic usage follows this pattern:
//
//	// 1. Create a session, pointing it at the user's overlay file
//	session, err := target.NewSession(target.WithOverlayFile(path))
//
//	// 2. Load the scripts for the detected MCU
//	count, err := session.Load("STM32F407", "M4")
//
//	// 3. Run a script with its runtime parameters
//	params := []uint32{2, clock/bitrate - 1, bitrate, target.ParamAbsent}
//	cmds, err := session.RunScript("swo_generic", params)
//
//	// 4. Or pull instructions one at a time through the replay cursor
//	for {
//		ins, err := session.Next("swo_device")
//		if errors.Is(err, target.ErrScriptExhausted) {
//			break
//		}
//		cmd, err := target.Format(ins, nil)
//		// transmit cmd over the debug connection
//	}
//
// Loading a different MCU tears down the database and invalidates any
// in-flight cursor; replaying a script for the same MCU requires
// ResetCursor (or a fresh Cursor).
package target
