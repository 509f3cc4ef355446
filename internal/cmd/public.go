package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Browse the public member directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		members, err := a.client.Members(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(members))
		for _, m := range members {
			rows = append(rows, []string{
				fmt.Sprintf("%d", m.ID),
				m.Prenom + " " + m.Nom,
				m.CreatedAt,
			})
		}
		return printTable([]string{"ID", "NOM", "MEMBRE DEPUIS"}, rows, members, "")
	},
}

var bdeCmd = &cobra.Command{
	Use:   "bde",
	Short: "Show the association's board",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		members, err := a.client.BDEMembers(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(members))
		for _, m := range members {
			rows = append(rows, []string{
				m.Prenom + " " + m.Nom,
				m.Poste,
			})
		}
		return printTable([]string{"NOM", "POSTE"}, rows, members, "")
	},
}

var annoncesCmd = &cobra.Command{
	Use:   "annonces",
	Short: "List public announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		annonces, err := a.client.Annonces(cmd.Context())
		if err != nil {
			return err
		}

		f, err := newFormatter()
		if err != nil {
			return err
		}
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(annonces)
		}

		if len(annonces) == 0 {
			fmt.Println("Aucune annonce.")
			return nil
		}

		for _, annonce := range annonces {
			fmt.Printf("── %s\n", annonce.Titre)
			if annonce.DateEvenement != nil {
				fmt.Printf("   📅 %s\n", *annonce.DateEvenement)
			}
			fmt.Printf("   %s\n\n", annonce.Contenu)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(bdeCmd)
	rootCmd.AddCommand(annoncesCmd)
}
