// Package gamejam carries the static GameJam edition catalog: editions,
// podium winners and the full game list. Reaction counts live server-side;
// this package only knows which games exist.
package gamejam

// Game is one entry in an edition's game list
type Game struct {
	ID        string
	Title     string
	Team      string
	ImageFile string
	GithubURL string
	Rank      int    // 1..3 for podium winners, 0 otherwise
	TopLabel  string // "Top 4", "Top 5" for ranked non-podium entries
}

// Winner reports whether the game made the podium
func (g Game) Winner() bool { return g.Rank >= 1 && g.Rank <= 3 }

// RankLabel returns the French ordinal shown next to podium entries
func (g Game) RankLabel() string {
	switch g.Rank {
	case 1:
		return "1er"
	case 2:
		return "2eme"
	case 3:
		return "3eme"
	}
	return g.TopLabel
}

// Edition is one GameJam edition, identified by its year key
type Edition struct {
	Year  string
	Games []Game
}

// Winners returns the podium entries in rank order
func (e Edition) Winners() []Game {
	var winners []Game
	for rank := 1; rank <= 3; rank++ {
		for _, g := range e.Games {
			if g.Rank == rank {
				winners = append(winners, g)
			}
		}
	}
	return winners
}

// Game looks up a game by id within the edition
func (e Edition) Game(id string) (Game, bool) {
	for _, g := range e.Games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

var editions = []Edition{
	{
		Year: "2026",
		Games: []Game{
			{
				ID:        "2026-top-1",
				Title:     "La Legende Deux Gustave Et Les Couleurs Perdu",
				Team:      "Les Table Tope",
				ImageFile: "La légende deux gustave et les couleurs Perdu.png",
				Rank:      1,
			},
			{
				ID:        "2026-top-2",
				Title:     "Nova and his missing sister",
				Team:      "Index Error Line 69",
				ImageFile: "Nova and his missing sister.png",
				Rank:      2,
			},
			{
				ID:        "2026-top-3",
				Title:     "Freddy Blanchard's Pizza Simulator",
				Team:      "celeR",
				ImageFile: "FNAF Blanchard.png",
				GithubURL: "https://github.com/nallaLH/GameJam4.git",
				Rank:      3,
			},
			{
				ID:        "2026-top-4",
				Title:     "Baddielands",
				Team:      "Ubergames",
				ImageFile: "Baddielands.png",
				TopLabel:  "Top 4",
			},
			{
				ID:        "2026-top-5",
				Title:     "Otamotone",
				Team:      "Poupoule et Poulette",
				ImageFile: "Otamotone.png",
				GithubURL: "https://github.com/nar0ji/otamatone",
				TopLabel:  "Top 5",
			},
			{
				ID:        "2026-game-6",
				Title:     "CuistoBongo",
				Team:      "Equipe non renseignee",
				ImageFile: "cuistoBongo.png",
				GithubURL: "https://iut-info.univ-reims.fr/gitlab/sauv0045/gj-4-team-bamboo",
			},
			{
				ID:        "2026-game-7",
				Title:     "Beesounours",
				Team:      "Equipe non renseignee",
				ImageFile: "Beesounours.png",
				GithubURL: "https://reshomy.itch.io/beesounours",
			},
		},
	},
}

// Editions returns all known editions, most recent first
func Editions() []Edition {
	out := make([]Edition, len(editions))
	copy(out, editions)
	return out
}

// Latest returns the most recent edition
func Latest() Edition {
	return editions[0]
}

// ByYear looks up an edition by its year key
func ByYear(year string) (Edition, bool) {
	for _, e := range editions {
		if e.Year == year {
			return e, true
		}
	}
	return Edition{}, false
}
