package main

import (
	"fmt"
	"strconv"

	"github.com/blububb/cart/internal/cli"
	"github.com/blububb/cart/internal/storage"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price <amount>",
	Short: "Format an amount as a price",
	Long: `Format a whole amount the way the storefront displays prices.

Uses locale and currency_prefix from .cartconfig.yaml when run inside a
workspace, otherwise Indonesian grouping with the "Rp " prefix.

Example:
  cart price 1250000   # Rp 1.250.000`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return &cli.ValidationError{Field: "amount", Message: fmt.Sprintf("%q is not a whole number", args[0])}
	}

	cfg := storage.DefaultConfig()
	if s, err := storage.Open("."); err == nil {
		if cfg, err = s.LoadConfig(); err != nil {
			return err
		}
	}

	f, err := formatterFor(cfg)
	if err != nil {
		return err
	}
	fmt.Println(f.Format(amount))
	return nil
}
