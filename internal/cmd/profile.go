package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/tui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your member profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "profile show")
		if err != nil {
			return err
		}

		user, err := a.client.Me(cmd.Context())
		if err != nil {
			return err
		}
		a.store.ReplaceUser(user)

		f, err := newFormatter()
		if err != nil {
			return err
		}
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(user)
		}

		fmt.Printf("%s <%s>\n", user.DisplayName(), user.Email)
		fmt.Printf("Rôle: %s\n", user.Role)
		fmt.Printf("Membre depuis: %s\n", user.CreatedAt)
		fmt.Printf("Email vérifié: %v\n", user.Verified())
		if user.AvatarURL != nil {
			fmt.Printf("Avatar: %s\n", *user.AvatarURL)
		}
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your name or avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "profile update")
		if err != nil {
			return err
		}

		var update api.ProfileUpdate
		if cmd.Flags().Changed("nom") {
			nom, _ := cmd.Flags().GetString("nom")
			update.Nom = &nom
		}
		if cmd.Flags().Changed("prenom") {
			prenom, _ := cmd.Flags().GetString("prenom")
			update.Prenom = &prenom
		}
		if cmd.Flags().Changed("avatar-url") {
			avatar, _ := cmd.Flags().GetString("avatar-url")
			update.AvatarURL = &avatar
		}

		if update.Nom == nil && update.Prenom == nil && update.AvatarURL == nil {
			return fmt.Errorf("nothing to update: pass --nom, --prenom or --avatar-url")
		}

		user, err := a.client.UpdateProfile(cmd.Context(), update)
		if err != nil {
			return err
		}
		a.store.ReplaceUser(user)

		fmt.Printf("Profil mis à jour: %s\n", user.DisplayName())
		return nil
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "profile password")
		if err != nil {
			return err
		}

		current, _ := cmd.Flags().GetString("current")
		next, _ := cmd.Flags().GetString("new")

		if current == "" || next == "" {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--current and --new are required in non-interactive mode")
			}
			in, err := tui.RunChangePasswordForm()
			if err != nil {
				return err
			}
			current, next = in.Current, in.New
		}

		if err := a.client.ChangePassword(cmd.Context(), current, next); err != nil {
			return err
		}
		fmt.Println("Mot de passe changé.")
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "profile delete")
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			confirmed, err := tui.PromptForConfirmation("Supprimer définitivement ton compte ?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Annulé.")
				return nil
			}
		}

		if err := a.client.DeleteAccount(cmd.Context()); err != nil {
			return err
		}
		a.store.Logout()
		fmt.Println("Compte supprimé.")
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("nom", "", "new last name")
	profileUpdateCmd.Flags().String("prenom", "", "new first name")
	profileUpdateCmd.Flags().String("avatar-url", "", "new avatar URL")

	profilePasswordCmd.Flags().String("current", "", "current password")
	profilePasswordCmd.Flags().String("new", "", "new password (8 characters minimum)")

	profileDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePasswordCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	rootCmd.AddCommand(profileCmd)
}
