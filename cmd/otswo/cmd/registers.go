package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registersCmd = &cobra.Command{
	Use:   "registers",
	Short: "Show the resolved register table for an MCU",
	Long: `Print the register definitions that apply to the given MCU, with any
overlay overrides already applied.

Examples:
  otswo registers --mcu STM32F407
  otswo registers --mcu LPC1343 --overlay ./my-scripts`,
	Args: cobra.NoArgs,
	RunE: runRegisters,
}

func init() {
	rootCmd.AddCommand(registersCmd)
}

func runRegisters(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	for _, reg := range session.Registers() {
		fmt.Printf("  %-20s 0x%08x  %d byte(s)\n", reg.Name, reg.Address, reg.Size)
	}
	return nil
}
