// Package main is the entry point for the cart CLI.
package main

import (
	"fmt"
	"os"

	"github.com/blububb/cart/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagVerbose bool
	flagNoColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cart",
	Short: "cart - the Blububb storefront shopping cart",
	Long: `cart manages the Blububb storefront shopping cart from the terminal.

The cart is one JSON document stored under the key blububb_cart. Every
command loads it, applies one change and saves it back, updating the
badge and the drawer. The document lives in .cart/ by default; set
backend in .cartconfig.yaml to keep it in Redis or PostgreSQL instead.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			cli.SetColorEnabled(false)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log storage and event activity to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.SetVersionTemplate("cart version {{.Version}}\n")
}
