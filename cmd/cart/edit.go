package main

import (
	"bytes"
	"fmt"

	"github.com/blububb/cart/internal/cli"
	"github.com/blububb/cart/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the cart document in $EDITOR",
	Long: `Open the stored cart document in $VISUAL or $EDITOR.

After saving, subtotals, the total and the item count are recomputed from
the edited prices and quantities. Lines with a quantity of zero or less are
dropped and duplicate product IDs are merged. Exit without saving to cancel.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	content, err := model.MarshalCartIndent(sess.store.Load(ctx))
	if err != nil {
		return err
	}

	edited, err := cli.EditInEditor(content, ".json")
	if err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSpace(edited), bytes.TrimSpace(content)) {
		fmt.Println("No changes.")
		return nil
	}

	cart, err := model.UnmarshalCart(edited)
	if err != nil {
		return &cli.ValidationError{Field: "cart document", Message: err.Error()}
	}
	if _, err := sess.store.Replace(ctx, cart); err != nil {
		return err
	}
	fmt.Println("Cart updated.")
	sess.printBadge()
	return nil
}
