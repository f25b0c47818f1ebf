package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSWO/pkg/target"
	"github.com/spf13/cobra"
)

var paramFlags []string

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Dry-run a script and print the generated directives",
	Long: `Resolve the named script for the given MCU and print the remote
"set memory" directives it generates. Runtime parameters are supplied as
index=value pairs; omitted parameters count as absent, so instructions that
need them are skipped.

Examples:
  otswo run swo_device --mcu STM32F407 --arch M4
  otswo run swo_generic --mcu STM32F407 --param 0=2 --param 1=71 --param 2=1000000
  otswo run swo_channels --mcu LPC812 --arch M0 --param 0=0x3 --param 1=0x10000400`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayVar(&paramFlags, "param", nil,
		"runtime parameter as index=value (repeatable)")
}

func runRun(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	params, err := parseParams(paramFlags)
	if err != nil {
		return err
	}

	cmds, err := session.RunScript(args[0], params)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("%d directive(s):\n", len(cmds))
	}
	for _, c := range cmds {
		fmt.Print(c)
	}
	return nil
}

// parseParams turns repeated index=value flags into the parameter vector.
// Unset slots hold the absent sentinel.
func parseParams(flags []string) ([]uint32, error) {
	params := make([]uint32, 10)
	for i := range params {
		params[i] = target.ParamAbsent
	}
	for _, f := range flags {
		idx, val, found := strings.Cut(f, "=")
		if !found {
			return nil, fmt.Errorf("invalid parameter %q, want index=value", f)
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n >= len(params) {
			return nil, fmt.Errorf("invalid parameter index %q", idx)
		}
		v, err := strconv.ParseUint(val, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter value %q: %w", val, err)
		}
		params[n] = uint32(v)
	}
	return params, nil
}
