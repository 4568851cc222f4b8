package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/edututor/internal/lessons"
	"github.com/abhisek/edututor/internal/store"
	"github.com/abhisek/edututor/internal/ui/theme"
)

var learnCmd = &cobra.Command{
	Use:   "learn <topic>",
	Short: "Generate a short learning module on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := newProvider(cmd.Context(), s)
		if err != nil {
			return err
		}

		svc := lessons.NewService(provider, lessons.Config{
			MaxTokens:   cfg.Lesson.MaxTokens,
			Temperature: cfg.Lesson.Temperature,
		})

		ctx, cancel := withLLMTimeout(cmd.Context())
		defer cancel()
		lesson, err := svc.Generate(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(lesson.Title))
		fmt.Fprintln(out, theme.Card.Render(lesson.Explanation))
		for _, term := range lesson.KeyTerms {
			fmt.Fprintf(out, "  %s %s\n", theme.OptionLabel.Render("•"), term)
		}

		if !save {
			fmt.Fprintln(out, theme.Hint.Render("Run again with --save to keep it in your library."))
			return nil
		}
		entry := &store.LibraryEntry{
			UserID:  userFlag(cmd),
			Topic:   lesson.Topic,
			Content: lesson.Content(),
		}
		if err := s.LibraryRepo().Add(cmd.Context(), entry); err != nil {
			return err
		}
		fmt.Fprintln(out, theme.Correct.Render(fmt.Sprintf("Saved to your library as #%d.", entry.ID)))
		return nil
	},
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved learning modules",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved learning modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		full, _ := cmd.Flags().GetBool("full")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.LibraryRepo().List(cmd.Context(), userFlag(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "You haven't saved any modules yet.")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %s  %s\n",
				theme.OptionLabel.Render(fmt.Sprintf("#%-4d", e.ID)),
				e.CreatedAt.Local().Format("2006-01-02"),
				e.Topic)
			if full {
				fmt.Fprintln(out, theme.Card.Render(e.Content))
			}
		}
		return nil
	},
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a saved learning module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		user := userFlag(cmd)
		if err := s.LibraryRepo().Remove(cmd.Context(), user, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("module #%d not found in %s's library", id, user)
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Removed from your library.")
		return nil
	},
}

func init() {
	learnCmd.Flags().Bool("save", false, "Save the module to your library")
	learnCmd.Flags().StringP("user", "u", "", "Learner ID (default from config)")

	libraryCmd.PersistentFlags().StringP("user", "u", "", "Learner ID (default from config)")
	libraryListCmd.Flags().Bool("full", false, "Print each module's content")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
}
