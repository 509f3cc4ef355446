package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/gamejam"
	"github.com/binharry/binharry-cli/internal/reaction"
	"github.com/binharry/binharry-cli/internal/ux"
)

var gamejamCmd = &cobra.Command{
	Use:   "gamejam",
	Short: "GameJam editions, games and reactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var gamejamEditionsCmd = &cobra.Command{
	Use:   "editions",
	Short: "List GameJam editions",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0)
		for _, edition := range gamejam.Editions() {
			rows = append(rows, []string{
				edition.Year,
				fmt.Sprintf("%d", len(edition.Games)),
			})
		}
		return printTable([]string{"EDITION", "JEUX"}, rows, gamejam.Editions(), "")
	},
}

var gamejamGamesCmd = &cobra.Command{
	Use:   "games [edition]",
	Short: "List an edition's games with live reaction counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edition, err := resolveEdition(args)
		if err != nil {
			return err
		}

		a, err := getSession(cmd.Context())
		if err != nil {
			return err
		}

		agg, err := reaction.NewAggregator(a.client, edition.Year, a.store.CanSeeVoters, a.logger)
		if err != nil {
			return err
		}
		if err := agg.Load(cmd.Context()); err != nil {
			// Counts are decoration on the static list; the games still show.
			a.logger.Warn("failed to load reactions", "edition", edition.Year, "error", err.Error())
		}

		headers, rows := ux.GameRows(edition, agg)
		return printTable(headers, rows, edition, "")
	},
}

var gamejamReactionsCmd = &cobra.Command{
	Use:   "reactions <game-id> [edition]",
	Short: "Show your reactions on a game, and the voter breakdown for admins",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		edition, err := resolveEdition(args[1:])
		if err != nil {
			return err
		}

		game, ok := edition.Game(args[0])
		if !ok {
			return fmt.Errorf("unknown game %q in edition %s", args[0], edition.Year)
		}

		a, err := getSession(cmd.Context())
		if err != nil {
			return err
		}

		agg, err := reaction.NewAggregator(a.client, edition.Year, a.store.CanSeeVoters, a.logger)
		if err != nil {
			return err
		}
		if err := agg.Load(cmd.Context()); err != nil {
			return err
		}

		summary := agg.Summary(game.ID)
		fmt.Printf("%s — %s\n", game.Title, game.Team)
		fmt.Printf("👍 %d · 👎 %d · ❤ %d\n", summary.Likes, summary.Dislikes, summary.Hearts)

		if a.store.IsAuthenticated() {
			own := agg.OwnReaction(game.ID)
			var mine []string
			if own.Like {
				mine = append(mine, "👍")
			}
			if own.Dislike {
				mine = append(mine, "👎")
			}
			if own.Heart {
				mine = append(mine, "❤")
			}
			if len(mine) == 0 {
				fmt.Println("Tes réactions: aucune")
			} else {
				fmt.Printf("Tes réactions: %s\n", strings.Join(mine, " "))
			}
		}

		if voters := agg.Voters(game.ID); voters != nil {
			fmt.Println("Votes:")
			for _, v := range voters {
				var marks []string
				if v.Like {
					marks = append(marks, "👍")
				}
				if v.Dislike {
					marks = append(marks, "👎")
				}
				if v.Heart {
					marks = append(marks, "❤")
				}
				fmt.Printf("  %s %s: %s\n", v.UserPrenom, v.UserNom, strings.Join(marks, " "))
			}
		}
		return nil
	},
}

var gamejamReactCmd = &cobra.Command{
	Use:   "react <game-id> <like|dislike|heart> [edition]",
	Short: "Toggle a reaction on a game",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		edition, err := resolveEdition(args[2:])
		if err != nil {
			return err
		}

		game, ok := edition.Game(args[0])
		if !ok {
			return fmt.Errorf("unknown game %q in edition %s", args[0], edition.Year)
		}
		kind := api.ReactionKind(args[1])

		a, err := requireSession(cmd.Context(), "gamejam react")
		if err != nil {
			return err
		}

		agg, err := reaction.NewAggregator(a.client, edition.Year, a.store.CanSeeVoters, a.logger)
		if err != nil {
			return err
		}
		if err := agg.Toggle(cmd.Context(), game.ID, kind); err != nil {
			return err
		}

		summary := agg.Summary(game.ID)
		state := "retirée"
		if agg.OwnReaction(game.ID).Has(kind) {
			state = "ajoutée"
		}
		fmt.Printf("Réaction %s %s sur %s — 👍 %d · 👎 %d · ❤ %d\n",
			kind, state, game.Title, summary.Likes, summary.Dislikes, summary.Hearts)
		return nil
	},
}

// resolveEdition picks the named edition, or the latest when none is given
func resolveEdition(args []string) (gamejam.Edition, error) {
	if len(args) == 0 || args[0] == "" {
		return gamejam.Latest(), nil
	}
	edition, ok := gamejam.ByYear(args[0])
	if !ok {
		return gamejam.Edition{}, fmt.Errorf("unknown edition: %s", args[0])
	}
	return edition, nil
}

func init() {
	gamejamCmd.AddCommand(gamejamEditionsCmd)
	gamejamCmd.AddCommand(gamejamGamesCmd)
	gamejamCmd.AddCommand(gamejamReactionsCmd)
	gamejamCmd.AddCommand(gamejamReactCmd)

	rootCmd.AddCommand(gamejamCmd)
}
