package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scripts resolved for an MCU",
	Long: `Load the built-in catalog plus the user overlay for the given MCU and
print the names of the scripts that apply.

Examples:
  otswo list --mcu STM32F407 --arch M4
  otswo list --mcu "LPC1343 M3"`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	names := session.ScriptNames()
	if len(names) == 0 {
		fmt.Printf("No scripts match %s\n", mcuName)
		return nil
	}
	for _, name := range names {
		cur, err := session.Cursor(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-16s %d instruction(s)\n", name, cur.Len())
	}
	return nil
}
