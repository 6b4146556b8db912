package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Print the cart total",
	Args:  cobra.NoArgs,
	RunE:  runTotal,
}

var totalRaw bool

func init() {
	totalCmd.Flags().BoolVar(&totalRaw, "raw", false, "print the unformatted amount")
	rootCmd.AddCommand(totalCmd)
}

func runTotal(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	total := sess.store.GetTotal(ctx)
	if totalRaw {
		fmt.Println(total)
		return nil
	}
	fmt.Println(sess.formatter.Format(total))
	return nil
}
