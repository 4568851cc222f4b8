package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/edututor/internal/store"
	"github.com/abhisek/edututor/internal/ui/components"
	"github.com/abhisek/edututor/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show quiz history grouped by topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		user := userFlag(cmd)
		if all {
			user = ""
		}
		results, err := s.ResultRepo().ListResults(cmd.Context(), user)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No quizzes taken yet.")
			return nil
		}

		if all {
			printStudentSummary(out, results)
			return nil
		}
		printTopicHistory(out, user, results)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("user", "u", "", "Learner ID (default from config)")
	historyCmd.Flags().Bool("all", false, "Summarise every learner instead of one")
}

type topicGroup struct {
	topic   string
	results []store.QuizResult
}

// groupByTopic groups results by topic in order of first appearance.
func groupByTopic(results []store.QuizResult) []topicGroup {
	var groups []topicGroup
	index := map[string]int{}
	for _, r := range results {
		i, ok := index[r.Topic]
		if !ok {
			i = len(groups)
			index[r.Topic] = i
			groups = append(groups, topicGroup{topic: r.Topic})
		}
		groups[i].results = append(groups[i].results, r)
	}
	return groups
}

func printTopicHistory(out io.Writer, user string, results []store.QuizResult) {
	fmt.Fprintln(out, theme.Title.Render("Quiz history for "+user))
	for _, g := range groupByTopic(results) {
		fmt.Fprintln(out)
		attempts := "attempt"
		if len(g.results) != 1 {
			attempts = "attempts"
		}
		fmt.Fprintln(out, theme.Question.Render(fmt.Sprintf("%s (%d %s)", g.topic, len(g.results), attempts)))
		for _, r := range g.results {
			bar := components.ScoreBar{Correct: r.Score, Total: r.Total, Width: 30}
			fmt.Fprintf(out, "  %s  %-6s  %s  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.Level,
				bar.View(),
				theme.Hint.Render(r.ID))
		}
	}
}

type studentSummary struct {
	user       string
	quizzes    int
	percentSum float64
}

func (s studentSummary) average() float64 {
	if s.quizzes == 0 {
		return 0
	}
	return s.percentSum / float64(s.quizzes)
}

// summarizeStudents aggregates results per learner, sorted by user ID.
func summarizeStudents(results []store.QuizResult) []studentSummary {
	byUser := map[string]*studentSummary{}
	for _, r := range results {
		s, ok := byUser[r.UserID]
		if !ok {
			s = &studentSummary{user: r.UserID}
			byUser[r.UserID] = s
		}
		s.quizzes++
		s.percentSum += r.Percentage()
	}

	out := make([]studentSummary, 0, len(byUser))
	for _, s := range byUser {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].user < out[j].user })
	return out
}

func printStudentSummary(out io.Writer, results []store.QuizResult) {
	fmt.Fprintln(out, theme.Title.Render("All learners"))
	fmt.Fprintf(out, "%-20s  %8s  %8s\n", "Learner", "Quizzes", "Average")
	for _, s := range summarizeStudents(results) {
		fmt.Fprintf(out, "%-20s  %8d  %7.1f%%\n", truncate(s.user, 20), s.quizzes, s.average())
	}
}
