package main

import (
	"fmt"
	"strings"

	"github.com/blububb/cart/internal/cli"
	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/view"
	"github.com/spf13/cobra"
)

var pressCmd = &cobra.Command{
	Use:   "press <action> <product-id>",
	Short: "Press a drawer control for a product",
	Long: `Press one of the per-line controls of the cart drawer.

Actions are increment, decrement and remove; any unique prefix works.
Decrementing a product with quantity 1 removes it.

Examples:
  cart press inc KB-01
  cart press dec KB-01
  cart press r KB-01`,
	Args:              cobra.ExactArgs(2),
	RunE:              runPress,
	ValidArgsFunction: completeActionsThenProducts,
}

func init() {
	rootCmd.AddCommand(pressCmd)
}

func runPress(cmd *cobra.Command, args []string) error {
	name, err := cli.MatchPrefix("action", args[0], view.ActionNames())
	if err != nil {
		return err
	}
	kind, err := view.ParseActionKind(name)
	if err != nil {
		return err
	}
	productID := model.NormalizeProductID(args[1])

	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.requireItem(ctx, productID); err != nil {
		return err
	}
	cart, err := view.NewDispatcher(sess.store).Dispatch(ctx, view.Action{Kind: kind, ProductID: productID})
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

// completeActionsThenProducts completes action names, then product IDs.
func completeActionsThenProducts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return completeProductIDs(cmd, args[1:], toComplete)
	}
	var out []string
	for _, name := range view.ActionNames() {
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
