package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Print the cart badge count",
	Long: `Print the number of units in the cart, as shown on the header badge.
The badge is hidden on the storefront when the count is zero.`,
	Args: cobra.NoArgs,
	RunE: runBadge,
}

func init() {
	rootCmd.AddCommand(badgeCmd)
}

func runBadge(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	fmt.Println(sess.badge.Count())
	return nil
}
