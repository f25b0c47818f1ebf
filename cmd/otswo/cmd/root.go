package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceSWO/pkg/target"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	mcuName     string
	archName    string
	overlayPath string
)

var rootCmd = &cobra.Command{
	Use:   "otswo",
	Short: "SWO trace configuration script resolver",
	Long: `Resolves and interprets device-specific initialization scripts for SWO
tracing on Cortex-M targets. Scripts are selected by MCU family name (with
optional core architecture), compiled against the matching register
definitions, and rendered as remote "set memory" directives.

Examples:
  otswo list --mcu STM32F407 --arch M4               # scripts for an MCU
  otswo registers --mcu STM32F407                    # resolved register table
  otswo run swo_device --mcu STM32F407 --arch M4     # dry-run a script`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&mcuName, "mcu", "", "MCU family name (e.g. STM32F407)")
	rootCmd.PersistentFlags().StringVar(&archName, "arch", "", "Cortex core architecture (M0, M3, M4, ...)")
	rootCmd.PersistentFlags().StringVar(&overlayPath, "overlay", "", "overlay file path (default: per-user data directory)")
}

// newSession builds a session from the global flags and loads the MCU.
func newSession() (*target.Session, error) {
	if mcuName == "" {
		return nil, fmt.Errorf("--mcu is required")
	}
	path := overlayPath
	if path == "" {
		path = defaultOverlayPath()
	}
	var opts []target.Option
	if path != "" {
		opts = append(opts, target.WithOverlayFile(path))
	}
	session, err := target.NewSession(opts...)
	if err != nil {
		return nil, err
	}
	count, err := session.Load(mcuName, archName)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Loaded %d script(s) for %s", count, mcuName)
		if archName != "" {
			fmt.Printf(" (%s)", archName)
		}
		fmt.Println()
		for _, w := range session.Warnings() {
			fmt.Printf("  warning: %s\n", w)
		}
	}
	return session, nil
}

// defaultOverlayPath returns the per-user overlay location.
func defaultOverlayPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "OpenTraceSWO", "otswo-scripts")
}
