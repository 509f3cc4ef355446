package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/binharry/binharry-cli/internal/api"
)

// mailboxView is the screen currently displayed
type mailboxView int

const (
	viewList mailboxView = iota
	viewDetail
)

// Styles contains lipgloss styles for the mailbox browser
type Styles struct {
	Title    lipgloss.Style
	Unread   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Flag     lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1),
		Unread: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).
			Foreground(lipgloss.Color("230")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Flag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

// Mailbox is the interactive message browser
type Mailbox struct {
	client *api.Client

	messages   []api.Message
	page       int
	totalPages int
	total      int
	cursor     int

	view     mailboxView
	loading  bool
	spinner  spinner.Model
	width    int
	height   int
	quitting bool
	lastErr  string

	styles Styles
}

// NewMailbox creates a mailbox browser bound to the gateway
func NewMailbox(client *api.Client) Mailbox {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return Mailbox{
		client:  client,
		page:    1,
		view:    viewList,
		loading: true,
		spinner: sp,
		styles:  DefaultStyles(),
	}
}

// Messages exchanged with the gateway

// PageLoadedMsg carries a freshly fetched mailbox page
type PageLoadedMsg struct {
	Page *api.Page[api.Message]
}

// ActionDoneMsg reports a completed mark/delete action; the list reloads
type ActionDoneMsg struct{}

// ErrMsg carries a failed gateway call
type ErrMsg struct {
	Err error
}

// Init starts the first page load (required by Bubble Tea)
func (m Mailbox) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPage(m.page))
}

func (m Mailbox) loadPage(page int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Messages(context.Background(), api.MessageListOptions{Page: page})
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PageLoadedMsg{Page: result}
	}
}

func (m Mailbox) markRead(id int64, read bool) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.MarkRead(context.Background(), id, read); err != nil {
			return ErrMsg{Err: err}
		}
		return ActionDoneMsg{}
	}
}

func (m Mailbox) markImportant(id int64, important bool) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.MarkImportant(context.Background(), id, important); err != nil {
			return ErrMsg{Err: err}
		}
		return ActionDoneMsg{}
	}
}

func (m Mailbox) deleteMessage(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteMessage(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return ActionDoneMsg{}
	}
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Mailbox) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg:
		m.loading = false
		m.lastErr = ""
		m.messages = msg.Page.Items
		m.page = msg.Page.Page
		m.totalPages = msg.Page.TotalPages
		m.total = msg.Page.Total
		if m.cursor >= len(m.messages) {
			m.cursor = 0
		}
		return m, nil

	case ActionDoneMsg:
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadPage(m.page))

	case ErrMsg:
		m.loading = false
		m.lastErr = msg.Err.Error()
		return m, nil
	}

	return m, nil
}

func (m Mailbox) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.view == viewDetail {
		switch msg.String() {
		case "esc", "q":
			m.view = viewList
		case "i":
			if sel := m.selected(); sel != nil {
				return m, m.markImportant(sel.ID, !sel.Flagged())
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.messages)-1 {
			m.cursor++
		}

	case "enter":
		sel := m.selected()
		if sel == nil {
			return m, nil
		}
		m.view = viewDetail
		if !sel.Read() {
			return m, m.markRead(sel.ID, true)
		}

	case "i":
		if sel := m.selected(); sel != nil {
			return m, m.markImportant(sel.ID, !sel.Flagged())
		}

	case "d":
		if sel := m.selected(); sel != nil {
			return m, m.deleteMessage(sel.ID)
		}

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadPage(m.page))

	case "n", "right":
		if m.page < m.totalPages {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadPage(m.page+1))
		}

	case "p", "left":
		if m.page > 1 {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadPage(m.page-1))
		}
	}

	return m, nil
}

func (m Mailbox) selected() *api.Message {
	if m.cursor < 0 || m.cursor >= len(m.messages) {
		return nil
	}
	return &m.messages[m.cursor]
}

// View renders the mailbox (required by Bubble Tea)
func (m Mailbox) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("📬 Messagerie") + "\n")

	if m.lastErr != "" {
		b.WriteString(m.styles.Error.Render("✗ "+m.lastErr) + "\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View() + " chargement...\n")
		return b.String()
	}

	if m.view == viewDetail {
		return b.String() + m.renderDetail()
	}

	return b.String() + m.renderList()
}

func (m Mailbox) renderList() string {
	var b strings.Builder

	if len(m.messages) == 0 {
		b.WriteString(m.styles.Muted.Render("Aucun message") + "\n")
	}

	for i, message := range m.messages {
		line := fmt.Sprintf("%-20s %s", message.Sender(), message.Sujet)
		if message.Flagged() {
			line = m.styles.Flag.Render("⚑ ") + line
		} else {
			line = "  " + line
		}

		switch {
		case i == m.cursor:
			line = m.styles.Selected.Render("> " + line)
		case !message.Read():
			line = m.styles.Unread.Render("• " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("page %d/%d (%d messages)", m.page, m.totalPages, m.total)) + "\n")
	b.WriteString(m.styles.Help.Render("↑/↓ naviguer · entrée lire · i important · d supprimer · n/p page · q quitter"))
	return b.String()
}

func (m Mailbox) renderDetail() string {
	sel := m.selected()
	if sel == nil {
		return m.styles.Muted.Render("Aucun message")
	}

	var b strings.Builder
	b.WriteString(m.styles.Unread.Render(sel.Sujet) + "\n")
	b.WriteString(m.styles.Muted.Render("De: "+sel.Sender()+" · "+sel.CreatedAt) + "\n\n")
	b.WriteString(sel.Contenu + "\n")
	b.WriteString(m.styles.Help.Render("échap retour · i important"))
	return b.String()
}
