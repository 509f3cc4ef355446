package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/binharry/binharry-cli/internal/catalog"
	"github.com/binharry/binharry-cli/internal/ux"
)

var boutiqueCmd = &cobra.Command{
	Use:     "boutique",
	Aliases: []string{"shop"},
	Short:   "Browse the merch catalog",
	Long: `Browse the BinHarry merch catalog.

Orders are taken in person at the association office; the catalog shows
what exists, prices and stock.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var boutiqueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")
		category := catalog.Category(categoryFlag)

		products := catalog.ByCategory(category)
		if len(products) == 0 {
			return fmt.Errorf("unknown category: %s (supported: vetement, accessoire, goodies)", categoryFlag)
		}

		headers, rows := ux.ProductRows(products)
		return printTable(headers, rows, products, "")
	},
}

var boutiqueShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product, ok := catalog.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown product: %s", args[0])
		}

		f, err := newFormatter()
		if err != nil {
			return err
		}
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(product)
		}

		fmt.Printf("%s (%s)\n", product.Name, product.Variant)
		fmt.Printf("%s\n", product.Description)
		fmt.Printf("Prix: %.0f€ · Catégorie: %s\n", product.Price, catalog.CategoryLabel(product.Category))
		if len(product.Sizes) > 0 {
			fmt.Printf("Tailles: %s\n", strings.Join(product.Sizes, ", "))
		}
		if product.InStock {
			fmt.Println("En stock — commande au local de l'asso")
		} else {
			fmt.Println("Épuisé")
		}
		return nil
	},
}

func init() {
	boutiqueListCmd.Flags().String("category", "", "filter: vetement, accessoire or goodies")

	boutiqueCmd.AddCommand(boutiqueListCmd)
	boutiqueCmd.AddCommand(boutiqueShowCmd)

	rootCmd.AddCommand(boutiqueCmd)
}
