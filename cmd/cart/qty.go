package main

import (
	"fmt"
	"strconv"

	"github.com/blububb/cart/internal/cli"
	"github.com/blububb/cart/internal/model"
	"github.com/spf13/cobra"
)

var qtyCmd = &cobra.Command{
	Use:   "qty <product-id> <quantity>",
	Short: "Set the quantity of a product",
	Long: `Set the quantity of a product already in the cart.

A quantity of zero or less removes the product.

Examples:
  cart qty KB-01 3
  cart qty KB-01 0     # same as cart remove KB-01`,
	Args:              cobra.ExactArgs(2),
	RunE:              runQty,
	ValidArgsFunction: completeProductIDs,
}

func init() {
	rootCmd.AddCommand(qtyCmd)
}

func runQty(cmd *cobra.Command, args []string) error {
	productID := model.NormalizeProductID(args[0])
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return &cli.ValidationError{Field: "quantity", Message: fmt.Sprintf("%q is not a whole number", args[1])}
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.requireItem(ctx, productID); err != nil {
		return err
	}
	cart, err := sess.store.UpdateQuantity(ctx, productID, quantity)
	if err != nil {
		return err
	}
	if item := cart.Find(productID); item != nil {
		fmt.Printf("%s x%d\n", productID, item.Quantity)
	} else {
		fmt.Printf("Removed %s.\n", productID)
	}
	sess.printBadge()
	return nil
}
