package main

import (
	"fmt"

	"github.com/blububb/cart/internal/model"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:               "remove <product-id>",
	Aliases:           []string{"rm"},
	Short:             "Remove a product from the cart",
	Args:              cobra.ExactArgs(1),
	RunE:              runRemove,
	ValidArgsFunction: completeProductIDs,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	productID := model.NormalizeProductID(args[0])

	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.requireItem(ctx, productID); err != nil {
		return err
	}
	if _, err := sess.store.Remove(ctx, productID); err != nil {
		return err
	}
	fmt.Printf("Removed %s.\n", productID)
	sess.printBadge()
	return nil
}
