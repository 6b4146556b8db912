package main

import (
	"github.com/blububb/cart/internal/cli"
	"github.com/blububb/cart/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product",
	Long: `Add one unit of a product to the cart.

Adding a product already in the cart increases its quantity by one; the
name, price and image of the existing line are kept.

Examples:
  cart add KB-01 --name="Kemeja Batik" --price=150000
  cart add TS-02 --name=Tee --price=50000 --image=img/tee.jpg`,
	Args:              cobra.ExactArgs(1),
	RunE:              runAdd,
	ValidArgsFunction: completeProductIDs,
}

var (
	addName  string
	addPrice int64
	addImage string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "product name (required)")
	addCmd.Flags().Int64Var(&addPrice, "price", 0, "unit price in whole rupiah")
	addCmd.Flags().StringVar(&addImage, "image", "", "product image URL")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	product := model.Product{
		ID:    model.NormalizeProductID(args[0]),
		Name:  addName,
		Price: addPrice,
		Image: addImage,
	}
	if err := model.ValidateProduct(product); err != nil {
		return &cli.ValidationError{Message: err.Error()}
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if _, err := sess.store.Add(ctx, product); err != nil {
		return err
	}
	sess.printBadge()
	return nil
}
