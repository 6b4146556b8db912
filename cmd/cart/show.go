package main

import (
	"fmt"
	"os"

	"github.com/blububb/cart/internal/view"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart drawer",
	Long: `Show the cart drawer: one line per product with unit price, quantity
and subtotal, followed by the cart total.

With --html, print the drawer and badge markup used by the storefront.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var showHTML bool

func init() {
	showCmd.Flags().BoolVar(&showHTML, "html", false, "print storefront markup")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if showHTML {
		fmt.Println(view.BadgeHTML(sess.badge))
		return view.RenderHTML(os.Stdout, sess.drawer.View())
	}
	view.RenderText(os.Stdout, sess.drawer.View())
	return nil
}
