package main

import (
	"fmt"

	"github.com/blububb/cart/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a cart workspace",
	Long: `Create a .cart/ directory in the current directory.

The file backend keeps the cart document in .cart/data/. Backend and
display settings are read from .cartconfig.yaml next to .cart/.

Fails if .cart/ already exists in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := storage.Init("."); err != nil {
		return err
	}
	fmt.Println("Initialized cart in .cart/")
	return nil
}
