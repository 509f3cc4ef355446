package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/tui"
	"github.com/binharry/binharry-cli/internal/ux"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administration panel (admin and founder accounts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// admin users

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage member accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List members",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin users list")
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		search, _ := cmd.Flags().GetString("search")
		role, _ := cmd.Flags().GetString("role")

		result, err := a.client.Users(cmd.Context(), api.UserListOptions{
			Page:   page,
			Limit:  limit,
			Search: search,
			Role:   role,
		})
		if err != nil {
			return err
		}

		headers, rows := ux.UserRows(result.Items)
		return printTable(headers, rows, result, ux.PageFooter(result.Page, result.TotalPages, result.Total))
	},
}

var adminUsersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin users show")
		if err != nil {
			return err
		}

		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		user, err := a.client.User(cmd.Context(), id)
		if err != nil {
			return err
		}

		f, err := newFormatter()
		if err != nil {
			return err
		}
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(user)
		}

		fmt.Printf("%s <%s>\n", user.DisplayName(), user.Email)
		fmt.Printf("ID: %d · Rôle: %s · Actif: %v · Vérifié: %v\n", user.ID, user.Role, user.Active(), user.Verified())
		fmt.Printf("Inscrit le: %s\n", user.CreatedAt)
		return nil
	},
}

var adminUsersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a member's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin users update")
		if err != nil {
			return err
		}

		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		var update api.UserUpdate
		if cmd.Flags().Changed("nom") {
			nom, _ := cmd.Flags().GetString("nom")
			update.Nom = &nom
		}
		if cmd.Flags().Changed("prenom") {
			prenom, _ := cmd.Flags().GetString("prenom")
			update.Prenom = &prenom
		}
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			update.Email = &email
		}
		if cmd.Flags().Changed("role") {
			roleStr, _ := cmd.Flags().GetString("role")
			role := api.Role(roleStr)
			update.Role = &role
		}
		if cmd.Flags().Changed("active") {
			active, _ := cmd.Flags().GetBool("active")
			update.IsActive = &active
		}

		user, err := a.client.UpdateUser(cmd.Context(), id, update)
		if err != nil {
			return err
		}
		fmt.Printf("Membre mis à jour: %s (%s)\n", user.DisplayName(), user.Role)
		return nil
	},
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deactivate a member, or remove it permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin users delete")
		if err != nil {
			return err
		}

		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		permanent, _ := cmd.Flags().GetBool("permanent")
		yes, _ := cmd.Flags().GetBool("yes")

		if permanent && !yes {
			confirmed, err := tui.PromptForConfirmation(fmt.Sprintf("Supprimer DÉFINITIVEMENT le membre %d ?", id), false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Annulé.")
				return nil
			}
		}

		if err := a.client.DeleteUser(cmd.Context(), id, permanent); err != nil {
			return err
		}
		if permanent {
			fmt.Println("Membre supprimé définitivement.")
		} else {
			fmt.Println("Membre désactivé.")
		}
		return nil
	},
}

var adminUsersAdhesionCmd = &cobra.Command{
	Use:   "adhesion <id>",
	Short: "Grant or revoke a member's adhesion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin users adhesion")
		if err != nil {
			return err
		}

		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		remove, _ := cmd.Flags().GetBool("remove")
		action := api.AdhesionAdd
		if remove {
			action = api.AdhesionRemove
		}

		if err := a.client.ToggleAdhesion(cmd.Context(), id, action); err != nil {
			return err
		}
		if remove {
			fmt.Println("Adhésion retirée.")
		} else {
			fmt.Println("Adhésion accordée.")
		}
		return nil
	},
}

var adminUsersAvatarCmd = &cobra.Command{
	Use:   "delete-avatar <id>",
	Short: "Remove a member's avatar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin users delete-avatar")
		if err != nil {
			return err
		}

		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		if err := a.client.DeleteUserAvatar(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Avatar supprimé.")
		return nil
	},
}

// admin subscriptions

var adminSubsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Manage member subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminSubsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin subscriptions list")
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")
		subType, _ := cmd.Flags().GetString("type")
		userID, _ := cmd.Flags().GetInt64("user")

		result, err := a.client.Subscriptions(cmd.Context(), api.SubscriptionListOptions{
			Page:   page,
			Limit:  limit,
			Status: status,
			Type:   subType,
			UserID: userID,
		})
		if err != nil {
			return err
		}

		headers, rows := ux.SubscriptionRows(result.Items)
		return printTable(headers, rows, result, ux.PageFooter(result.Page, result.TotalPages, result.Total))
	},
}

var adminSubsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a subscription for a member",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin subscriptions create")
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetInt64("user")
		subType, _ := cmd.Flags().GetString("type")
		nom, _ := cmd.Flags().GetString("nom")
		description, _ := cmd.Flags().GetString("description")
		debut, _ := cmd.Flags().GetString("debut")
		fin, _ := cmd.Flags().GetString("fin")
		prix, _ := cmd.Flags().GetFloat64("prix")

		if userID <= 0 || subType == "" || nom == "" || debut == "" {
			return fmt.Errorf("--user, --type, --nom and --debut are required")
		}

		err = a.client.CreateSubscription(cmd.Context(), api.SubscriptionCreate{
			UtilisateurID: userID,
			Type:          subType,
			Nom:           nom,
			Description:   description,
			DateDebut:     debut,
			DateFin:       fin,
			Prix:          prix,
		})
		if err != nil {
			return err
		}
		fmt.Println("Abonnement créé.")
		return nil
	},
}

var adminSubsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin subscriptions update")
		if err != nil {
			return err
		}

		id, err := parseID(args[0], "subscription")
		if err != nil {
			return err
		}

		var update api.SubscriptionUpdate
		if cmd.Flags().Changed("statut") {
			statut, _ := cmd.Flags().GetString("statut")
			update.Statut = &statut
		}
		if cmd.Flags().Changed("fin") {
			fin, _ := cmd.Flags().GetString("fin")
			update.DateFin = &fin
		}
		if cmd.Flags().Changed("prix") {
			prix, _ := cmd.Flags().GetFloat64("prix")
			update.Prix = &prix
		}

		if err := a.client.UpdateSubscription(cmd.Context(), id, update); err != nil {
			return err
		}
		fmt.Println("Abonnement mis à jour.")
		return nil
	},
}

var adminSubsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin subscriptions delete")
		if err != nil {
			return err
		}

		id, err := parseID(args[0], "subscription")
		if err != nil {
			return err
		}

		if err := a.client.DeleteSubscription(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Abonnement supprimé.")
		return nil
	},
}

// admin broadcast and stats

var adminBroadcastCmd = &cobra.Command{
	Use:   "broadcast",
	Short: "Send an announcement to every member's mailbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin broadcast")
		if err != nil {
			return err
		}

		sujet, _ := cmd.Flags().GetString("sujet")
		contenu, _ := cmd.Flags().GetString("contenu")

		if sujet == "" || contenu == "" {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--sujet and --contenu are required in non-interactive mode")
			}
			in, err := tui.RunComposeForm()
			if err != nil {
				return err
			}
			sujet, contenu = in.Sujet, in.Contenu
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			confirmed, err := tui.PromptForConfirmation("Envoyer ce message à TOUS les membres ?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Annulé.")
				return nil
			}
		}

		if err := a.client.Broadcast(cmd.Context(), sujet, contenu); err != nil {
			return err
		}
		fmt.Println("Annonce diffusée.")
		return nil
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show membership and revenue statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd.Context(), "admin stats")
		if err != nil {
			return err
		}

		userStats, err := a.client.UserStats(cmd.Context())
		if err != nil {
			return err
		}
		subStats, err := a.client.SubscriptionStats(cmd.Context())
		if err != nil {
			return err
		}

		f, err := newFormatter()
		if err != nil {
			return err
		}
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(map[string]any{"users": userStats, "subscriptions": subStats})
		}

		fmt.Println("Membres")
		fmt.Printf("  total: %d · actifs: %d · vérifiés: %d · adhérents: %d · admins: %d\n",
			userStats.TotalUsers, userStats.ActiveUsers, userStats.VerifiedUsers, userStats.Adherents, userStats.AdminUsers)

		if len(userStats.RegistrationsPerMonth) > 0 {
			fmt.Println("  inscriptions par mois:")
			for _, bucket := range userStats.RegistrationsPerMonth {
				fmt.Printf("    %s: %d\n", bucket.Period(), bucket.Count)
			}
		}

		fmt.Println("Abonnements")
		fmt.Printf("  total: %d · actifs: %d · revenus: %.2f€\n", subStats.Total, subStats.Actifs, subStats.Revenus)
		for _, byType := range subStats.ParType {
			fmt.Printf("    %s: %d (%.2f€)\n", byType.Type, byType.Count, byType.TotalPrix)
		}
		return nil
	},
}

func parseID(arg, kind string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %s", kind, arg)
	}
	return id, nil
}

func init() {
	adminUsersListCmd.Flags().Int("page", 1, "page number")
	adminUsersListCmd.Flags().Int("limit", 20, "users per page")
	adminUsersListCmd.Flags().String("search", "", "search by name or email")
	adminUsersListCmd.Flags().String("role", "", "filter by role: user, admin or founder")

	adminUsersUpdateCmd.Flags().String("nom", "", "new last name")
	adminUsersUpdateCmd.Flags().String("prenom", "", "new first name")
	adminUsersUpdateCmd.Flags().String("email", "", "new email address")
	adminUsersUpdateCmd.Flags().String("role", "", "new role: user, admin or founder")
	adminUsersUpdateCmd.Flags().Bool("active", true, "account active state")

	adminUsersDeleteCmd.Flags().Bool("permanent", false, "remove permanently instead of deactivating")
	adminUsersDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	adminUsersAdhesionCmd.Flags().Bool("remove", false, "revoke instead of grant")

	adminUsersCmd.AddCommand(adminUsersListCmd)
	adminUsersCmd.AddCommand(adminUsersShowCmd)
	adminUsersCmd.AddCommand(adminUsersUpdateCmd)
	adminUsersCmd.AddCommand(adminUsersDeleteCmd)
	adminUsersCmd.AddCommand(adminUsersAdhesionCmd)
	adminUsersCmd.AddCommand(adminUsersAvatarCmd)

	adminSubsListCmd.Flags().Int("page", 1, "page number")
	adminSubsListCmd.Flags().Int("limit", 20, "subscriptions per page")
	adminSubsListCmd.Flags().String("status", "", "filter by status")
	adminSubsListCmd.Flags().String("type", "", "filter by type: mensuel, annuel or evenement")
	adminSubsListCmd.Flags().Int64("user", 0, "filter by member id")

	adminSubsCreateCmd.Flags().Int64("user", 0, "member id (required)")
	adminSubsCreateCmd.Flags().String("type", "", "subscription type (required)")
	adminSubsCreateCmd.Flags().String("nom", "", "subscription name (required)")
	adminSubsCreateCmd.Flags().String("description", "", "description")
	adminSubsCreateCmd.Flags().String("debut", "", "start date, YYYY-MM-DD (required)")
	adminSubsCreateCmd.Flags().String("fin", "", "end date, YYYY-MM-DD")
	adminSubsCreateCmd.Flags().Float64("prix", 0, "price in euros")

	adminSubsUpdateCmd.Flags().String("statut", "", "new status: actif, expire or annule")
	adminSubsUpdateCmd.Flags().String("fin", "", "new end date")
	adminSubsUpdateCmd.Flags().Float64("prix", 0, "new price")

	adminSubsCmd.AddCommand(adminSubsListCmd)
	adminSubsCmd.AddCommand(adminSubsCreateCmd)
	adminSubsCmd.AddCommand(adminSubsUpdateCmd)
	adminSubsCmd.AddCommand(adminSubsDeleteCmd)

	adminBroadcastCmd.Flags().String("sujet", "", "announcement subject")
	adminBroadcastCmd.Flags().String("contenu", "", "announcement body")
	adminBroadcastCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminSubsCmd)
	adminCmd.AddCommand(adminBroadcastCmd)
	adminCmd.AddCommand(adminStatsCmd)

	rootCmd.AddCommand(adminCmd)
}
