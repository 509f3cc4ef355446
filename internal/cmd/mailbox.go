package cmd

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/tui"
	"github.com/binharry/binharry-cli/internal/ux"
)

var mailboxCmd = &cobra.Command{
	Use:     "mailbox",
	Aliases: []string{"messages"},
	Short:   "Read and send internal messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var mailboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List received messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "mailbox list")
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		unread, _ := cmd.Flags().GetBool("unread")
		sent, _ := cmd.Flags().GetBool("sent")

		var result *api.Page[api.Message]
		if sent {
			result, err = a.client.SentMessages(cmd.Context(), page, limit)
		} else {
			result, err = a.client.Messages(cmd.Context(), api.MessageListOptions{Page: page, Limit: limit, Unread: unread})
		}
		if err != nil {
			return err
		}

		headers, rows := ux.MessageRows(result.Items)
		return printTable(headers, rows, result, ux.PageFooter(result.Page, result.TotalPages, result.Total))
	},
}

var mailboxBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the mailbox interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "mailbox browse")
		if err != nil {
			return err
		}
		if !tui.IsInteractive() {
			return fmt.Errorf("mailbox browse needs a terminal; use 'binharry mailbox list' instead")
		}

		program := tea.NewProgram(tui.NewMailbox(a.client))
		_, err = program.Run()
		return err
	},
}

var mailboxReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Read one message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "mailbox read")
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid message id: %s", args[0])
		}

		message, err := a.client.Message(cmd.Context(), id)
		if err != nil {
			return err
		}

		if !message.Read() {
			if err := a.client.MarkRead(cmd.Context(), id, true); err != nil {
				a.logger.Warn("failed to mark message read", "id", id, "error", err.Error())
			}
		}

		fmt.Printf("De: %s\nDate: %s\nSujet: %s\n\n%s\n", message.Sender(), message.CreatedAt, message.Sujet, message.Contenu)
		return nil
	},
}

var mailboxSendCmd = &cobra.Command{
	Use:   "send <destinataire-id>",
	Short: "Send a message to another member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "mailbox send")
		if err != nil {
			return err
		}

		destinataire, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recipient id: %s", args[0])
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

		if err := a.client.SendMessage(cmd.Context(), destinataire, sujet, contenu); err != nil {
			return err
		}
		fmt.Println("Message envoyé.")
		return nil
	},
}

var mailboxMarkCmd = &cobra.Command{
	Use:   "mark <id>",
	Short: "Mark a message read, unread or important",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "mailbox mark")
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid message id: %s", args[0])
		}

		changed := false
		if cmd.Flags().Changed("read") {
			read, _ := cmd.Flags().GetBool("read")
			if err := a.client.MarkRead(cmd.Context(), id, read); err != nil {
				return err
			}
			changed = true
		}
		if cmd.Flags().Changed("important") {
			important, _ := cmd.Flags().GetBool("important")
			if err := a.client.MarkImportant(cmd.Context(), id, important); err != nil {
				return err
			}
			changed = true
		}

		if !changed {
			return fmt.Errorf("nothing to do: pass --read or --important")
		}
		fmt.Println("Message mis à jour.")
		return nil
	},
}

var mailboxDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "mailbox delete")
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid message id: %s", args[0])
		}

		if err := a.client.DeleteMessage(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Message supprimé.")
		return nil
	},
}

var mailboxUnreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Show the unread message count",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireSession(cmd.Context(), "mailbox unread")
		if err != nil {
			return err
		}

		count, err := a.client.UnreadCount(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%d message(s) non lu(s)\n", count)
		return nil
	},
}

func init() {
	mailboxListCmd.Flags().Int("page", 1, "page number")
	mailboxListCmd.Flags().Int("limit", 20, "messages per page")
	mailboxListCmd.Flags().Bool("unread", false, "only unread messages")
	mailboxListCmd.Flags().Bool("sent", false, "show sent messages instead")

	mailboxSendCmd.Flags().String("sujet", "", "message subject")
	mailboxSendCmd.Flags().String("contenu", "", "message body")

	mailboxMarkCmd.Flags().Bool("read", true, "mark read (=false to mark unread)")
	mailboxMarkCmd.Flags().Bool("important", true, "flag important (=false to unflag)")

	mailboxCmd.AddCommand(mailboxListCmd)
	mailboxCmd.AddCommand(mailboxBrowseCmd)
	mailboxCmd.AddCommand(mailboxReadCmd)
	mailboxCmd.AddCommand(mailboxSendCmd)
	mailboxCmd.AddCommand(mailboxMarkCmd)
	mailboxCmd.AddCommand(mailboxDeleteCmd)
	mailboxCmd.AddCommand(mailboxUnreadCmd)

	rootCmd.AddCommand(mailboxCmd)
}
