package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binharry/binharry-cli/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the BinHarry session",
	Long: `Manage your BinHarry session.

Credentials are stored in ~/.binharry/auth.json. Subcommands cover
registering, logging in and out, checking who you are, and email
verification.

Examples:
  binharry auth login --email marie@example.com
  binharry auth register
  binharry auth status
  binharry auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--email and --password are required in non-interactive mode")
			}
			in, err := tui.RunLoginForm()
			if err != nil {
				return err
			}
			email, password = in.Email, in.Password
		}

		user, err := a.store.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Connecté en tant que %s (%s)\n", user.DisplayName(), user.Role)
		if !user.Verified() {
			fmt.Println("⚠ Email non vérifié — lance 'binharry auth verify-email --resend'")
		}
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		nom, _ := cmd.Flags().GetString("nom")
		prenom, _ := cmd.Flags().GetString("prenom")

		if email == "" || password == "" || nom == "" || prenom == "" {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--email, --password, --nom and --prenom are required in non-interactive mode")
			}
			in, err := tui.RunRegisterForm()
			if err != nil {
				return err
			}
			email, password, nom, prenom = in.Email, in.Password, in.Nom, in.Prenom
		}

		user, err := a.store.Register(cmd.Context(), email, password, nom, prenom)
		if err != nil {
			return err
		}

		fmt.Printf("Bienvenue %s ! Un email de vérification a été envoyé à %s.\n", user.Prenom, user.Email)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		a.store.Logout()
		fmt.Println("Déconnecté.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getSession(cmd.Context())
		if err != nil {
			return err
		}

		user := a.store.CurrentUser()
		if user == nil {
			fmt.Println("Non connecté.")
			return nil
		}

		fmt.Printf("Connecté: %s <%s>\n", user.DisplayName(), user.Email)
		fmt.Printf("Rôle: %s\n", user.Role)
		fmt.Printf("Email vérifié: %v\n", user.Verified())
		return nil
	},
}

var authVerifyEmailCmd = &cobra.Command{
	Use:   "verify-email",
	Short: "Verify an email address or resend the verification mail",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		resend, _ := cmd.Flags().GetBool("resend")

		if token != "" {
			a, err := getApp()
			if err != nil {
				return err
			}
			if err := a.client.VerifyEmail(cmd.Context(), token); err != nil {
				return err
			}
			fmt.Println("Email vérifié.")
			return nil
		}

		if resend {
			a, err := requireSession(cmd.Context(), "auth verify-email --resend")
			if err != nil {
				return err
			}
			if err := a.client.SendVerificationEmail(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Email de vérification renvoyé.")
			return nil
		}

		return fmt.Errorf("either --token or --resend is required")
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "email address")
	authLoginCmd.Flags().String("password", "", "password")

	authRegisterCmd.Flags().String("email", "", "email address")
	authRegisterCmd.Flags().String("password", "", "password (8 characters minimum)")
	authRegisterCmd.Flags().String("nom", "", "last name")
	authRegisterCmd.Flags().String("prenom", "", "first name")

	authVerifyEmailCmd.Flags().String("token", "", "verification token from the email link")
	authVerifyEmailCmd.Flags().Bool("resend", false, "resend the verification email")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authVerifyEmailCmd)

	rootCmd.AddCommand(authCmd)
}
