package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/edututor/internal/logger"
	"github.com/abhisek/edututor/internal/quizgen"
	"github.com/abhisek/edututor/internal/store"
	"github.com/abhisek/edututor/internal/ui/components"
	"github.com/abhisek/edututor/internal/ui/quizview"
	"github.com/abhisek/edututor/internal/ui/theme"
)

// errNoQuestions is returned when every attempt yields an empty quiz.
var errNoQuestions = errors.New("the model did not produce any valid questions; try again or rephrase the topic")

var quizCmd = &cobra.Command{
	Use:   "quiz [topic]",
	Short: "Generate a multiple-choice quiz and take it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().StringP("topic", "t", "", "Quiz topic (or pass it as an argument)")
	quizCmd.Flags().StringP("level", "l", "easy", "Difficulty: easy, medium or hard")
	quizCmd.Flags().IntP("count", "n", 0, "Number of questions (default from config)")
	quizCmd.Flags().StringP("user", "u", "", "Learner ID for saved results (default from config)")
	quizCmd.Flags().Bool("json", false, "Print the validated quiz as JSON instead of running it")
	quizCmd.Flags().Int("attempts", 0, "Regenerate up to this many times while the quiz comes back empty (default from config)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if len(args) == 1 {
		topic = args[0]
	}
	level, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")
	if count == 0 {
		count = cfg.Quiz.Count
	}
	attempts, _ := cmd.Flags().GetInt("attempts")
	if attempts <= 0 {
		attempts = cfg.Quiz.Attempts
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	qcfg := cfg.QuizgenConfig()
	req, err := quizgen.Request{Topic: topic, Level: quizgen.Level(level), Count: count}.Normalize(qcfg)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	provider, err := newProvider(cmd.Context(), s)
	if err != nil {
		return err
	}

	engine := quizgen.NewEngine(
		quizgen.NewProviderGenerator(provider, qcfg),
		qcfg,
		quizgen.WithLogger(logger.Get()),
	)

	quiz, err := generateQuiz(cmd.Context(), engine, req, attempts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := quizgen.Export(quiz)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	in := cmd.InOrStdin()
	var answers []string
	if isTerminal(in) {
		answers, err = quizview.Run(cmd.Context(), quiz, in, out)
		if err != nil {
			return err
		}
	} else {
		answers = administer(out, in, quiz)
	}
	res := quizgen.Score(quiz, answers)
	printResult(out, quiz, res)

	result := &store.QuizResult{
		UserID: userFlag(cmd),
		Topic:  quiz.Topic,
		Level:  string(quiz.Level),
		Score:  res.Correct,
		Total:  res.Total,
	}
	if err := s.ResultRepo().SaveResult(cmd.Context(), result); err != nil {
		return err
	}
	fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Saved as %s for %s.", result.ID, result.UserID)))
	return nil
}

// isTerminal reports whether in is an interactive terminal. Piped input
// falls back to the line-based quiz.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// generateQuiz runs the engine up to attempts times, stopping at the
// first non-empty quiz. Errors from the engine end the loop at once.
// The engine always runs at least once.
func generateQuiz(ctx context.Context, engine *quizgen.Engine, req quizgen.Request, attempts int) (*quizgen.Quiz, error) {
	attempts = max(attempts, 1)
	for i := 1; i <= attempts; i++ {
		callCtx, cancel := withLLMTimeout(ctx)
		quiz, err := engine.Generate(callCtx, req)
		cancel()
		if err != nil {
			return nil, err
		}
		if !quiz.Empty() {
			return quiz, nil
		}
		logger.Get().Warn("empty quiz, regenerating",
			zap.Int("attempt", i),
			zap.Int("attempts", attempts))
	}
	return nil, errNoQuestions
}

// administer presents each question and reads one answer line per
// question from in. Used when in is not a terminal. Input ends early on EOF; unanswered questions get an
// empty answer.
func administer(out io.Writer, in io.Reader, quiz *quizgen.Quiz) []string {
	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Quiz: %s (%s)", quiz.Topic, quiz.Level)))
	if quiz.Short() {
		fmt.Fprintln(out, theme.Warning.Render(fmt.Sprintf(
			"Only %d of %d requested questions passed validation.", quiz.Len(), quiz.Requested)))
	}
	fmt.Fprintln(out, theme.Hint.Render("Answer with the option letter or the answer text."))

	scanner := bufio.NewScanner(in)
	answers := make([]string, 0, quiz.Len())
	for i, q := range quiz.Questions {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Question.Render(fmt.Sprintf("%d. %s", i+1, q.Text)))
		for j, opt := range q.Options {
			label := theme.OptionLabel.Render(string(rune('A'+j)) + ")")
			fmt.Fprintf(out, "   %s %s\n", label, opt)
		}
		fmt.Fprint(out, "Your answer: ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		answers = append(answers, quizgen.ResolveChoice(scanner.Text(), q))
	}
	return answers
}

func printResult(out io.Writer, quiz *quizgen.Quiz, res quizgen.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Title.Render("Results"))
	for i, qr := range res.Questions {
		mark := theme.Correct.Render("✓")
		detail := ""
		if !qr.Correct {
			mark = theme.Incorrect.Render("✗")
			submitted := qr.Submitted
			if strings.TrimSpace(submitted) == "" {
				submitted = "(no answer)"
			}
			detail = theme.Hint.Render(fmt.Sprintf(" you said %q, answer: %s", submitted, qr.Question.Answer))
		}
		fmt.Fprintf(out, "%s %d. %s%s\n", mark, i+1, qr.Question.Text, detail)
	}
	fmt.Fprintln(out)
	bar := components.ScoreBar{Label: quiz.Topic, Correct: res.Correct, Total: res.Total, Width: 60}
	fmt.Fprintln(out, bar.View())
}
