package main

import (
	"fmt"

	"github.com/blububb/cart/internal/cli"
	"github.com/spf13/cobra"
)

var popupCmd = &cobra.Command{
	Use:   "popup [dismiss|reset]",
	Short: "Show or change the promotional popup state",
	Long: `Without arguments, report whether the promotional popup will be shown.

  cart popup dismiss   record that the visitor closed the popup
  cart popup reset     show the popup again on the next visit`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: popupActions,
	RunE:      runPopup,
}

var popupActions = []string{"dismiss", "reset"}

func init() {
	rootCmd.AddCommand(popupCmd)
}

func runPopup(cmd *cobra.Command, args []string) error {
	action := ""
	if len(args) == 1 {
		var err error
		if action, err = cli.MatchPrefix("popup action", args[0], popupActions); err != nil {
			return err
		}
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	switch action {
	case "dismiss":
		if err := sess.popup.Dismiss(ctx); err != nil {
			return err
		}
		fmt.Println("Popup dismissed.")
	case "reset":
		if err := sess.popup.Reset(ctx); err != nil {
			return err
		}
		fmt.Println("Popup will be shown again.")
	default:
		if sess.popup.ShouldShow(ctx) {
			fmt.Printf("Popup shown after %s.\n", sess.config.PopupDelay())
		} else {
			fmt.Println(cli.Gray("Popup dismissed."))
		}
	}
	return nil
}
