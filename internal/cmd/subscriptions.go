package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/binharry/binharry-cli/internal/tui"
	"github.com/binharry/binharry-cli/internal/ux"
)

var subsCmd = &cobra.Command{
	Use:     "subscriptions",
	Aliases: []string{"subs", "abonnements"},
	Short:   "View your subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var subsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "subscriptions list")
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")

		result, err := a.client.MySubscriptions(cmd.Context(), page, limit, status)
		if err != nil {
			return err
		}

		headers, rows := ux.SubscriptionRows(result.Items)
		return printTable(headers, rows, result, ux.PageFooter(result.Page, result.TotalPages, result.Total))
	},
}

var subsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "List your active subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "subscriptions active")
		if err != nil {
			return err
		}

		subs, err := a.client.ActiveSubscriptions(cmd.Context())
		if err != nil {
			return err
		}

		if len(subs) == 0 {
			fmt.Println("Aucun abonnement actif.")
			return nil
		}

		headers, rows := ux.SubscriptionRows(subs)
		return printTable(headers, rows, subs, "")
	},
}

var subsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel one of your subscriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "subscriptions cancel")
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid subscription id: %s", args[0])
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			confirmed, err := tui.PromptForConfirmation(fmt.Sprintf("Annuler l'abonnement %d ?", id), false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Annulé.")
				return nil
			}
		}

		if err := a.client.CancelSubscription(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Abonnement annulé.")
		return nil
	},
}

func init() {
	subsListCmd.Flags().Int("page", 1, "page number")
	subsListCmd.Flags().Int("limit", 20, "subscriptions per page")
	subsListCmd.Flags().String("status", "", "filter by status: actif, expire or annule")

	subsCancelCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	subsCmd.AddCommand(subsListCmd)
	subsCmd.AddCommand(subsActiveCmd)
	subsCmd.AddCommand(subsCancelCmd)

	rootCmd.AddCommand(subsCmd)
}
