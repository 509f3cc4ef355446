package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/catalog"
	"github.com/binharry/binharry-cli/internal/gamejam"
	"github.com/binharry/binharry-cli/internal/reaction"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Table renders rows as aligned columns with a styled header
func Table(headers []string, rows [][]string, noColor bool) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	line := formatRow(headers, widths)
	if !noColor {
		line = headerStyle.Render(line)
	}
	b.WriteString(line + "\n")

	for _, row := range rows {
		b.WriteString(formatRow(row, widths) + "\n")
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

// UserRows converts admin user records into table rows
func UserRows(users []api.AdminUser) ([]string, [][]string) {
	headers := []string{"ID", "NOM", "EMAIL", "ROLE", "VERIFIE", "ACTIF"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			fmt.Sprintf("%d", u.ID),
			u.DisplayName(),
			u.Email,
			string(u.Role),
			yesNo(u.Verified()),
			yesNo(u.Active()),
		})
	}
	return headers, rows
}

// MessageRows converts mailbox messages into table rows
func MessageRows(messages []api.Message) ([]string, [][]string) {
	headers := []string{"ID", "DE", "SUJET", "DATE", "LU"}
	rows := make([][]string, 0, len(messages))
	for _, m := range messages {
		flag := ""
		if m.Flagged() {
			flag = "⚑ "
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.ID),
			m.Sender(),
			flag + m.Sujet,
			m.CreatedAt,
			yesNo(m.Read()),
		})
	}
	return headers, rows
}

// SubscriptionRows converts subscriptions into table rows
func SubscriptionRows(subs []api.Abonnement) ([]string, [][]string) {
	headers := []string{"ID", "TYPE", "DEBUT", "FIN", "PRIX", "STATUT"}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		fin := "-"
		if s.DateFin != nil {
			fin = *s.DateFin
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID),
			s.Type,
			s.DateDebut,
			fin,
			fmt.Sprintf("%.2f€", s.Prix),
			s.Statut,
		})
	}
	return headers, rows
}

// GameRows converts an edition's games plus the live reaction snapshot into
// table rows. Counts come from the aggregator; zero-count games still list.
func GameRows(edition gamejam.Edition, agg *reaction.Aggregator) ([]string, [][]string) {
	headers := []string{"RANG", "JEU", "EQUIPE", "👍", "👎", "❤"}
	rows := make([][]string, 0, len(edition.Games))
	for _, g := range edition.Games {
		var summary reaction.Summary
		if agg != nil {
			summary = agg.Summary(g.ID)
		}
		rows = append(rows, []string{
			g.RankLabel(),
			g.Title,
			g.Team,
			fmt.Sprintf("%d", summary.Likes),
			fmt.Sprintf("%d", summary.Dislikes),
			fmt.Sprintf("%d", summary.Hearts),
		})
	}
	return headers, rows
}

// ProductRows converts catalog products into table rows
func ProductRows(products []catalog.Product) ([]string, [][]string) {
	headers := []string{"ID", "NOM", "VARIANTE", "PRIX", "STOCK"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		stock := "oui"
		if !p.InStock {
			stock = "épuisé"
		}
		name := p.Name
		if p.New {
			name += " ✦"
		}
		rows = append(rows, []string{
			p.ID,
			name,
			p.Variant,
			fmt.Sprintf("%.0f€", p.Price),
			stock,
		})
	}
	return headers, rows
}

// Badge renders a short highlighted marker, like unread counts
func Badge(text string, noColor bool) string {
	if noColor {
		return text
	}
	return badgeStyle.Render(text)
}

// Dim renders secondary text
func Dim(text string, noColor bool) string {
	if noColor {
		return text
	}
	return dimStyle.Render(text)
}

// Alert renders warning text
func Alert(text string, noColor bool) string {
	if noColor {
		return text
	}
	return alertStyle.Render(text)
}

func yesNo(v bool) string {
	if v {
		return "oui"
	}
	return "non"
}
