package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flag-quiz-service/internal/catalog"
	"flag-quiz-service/internal/domain"
	"flag-quiz-service/internal/game"
)

// NewQuestionCmd prints a question built from the built-in catalog.
func NewQuestionCmd() *cobra.Command {
	var (
		difficulty string
		options    int
		previous   string
		lang       string
	)
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Print a generated question from the built-in catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := game.BuildQuestion(game.DefaultSource, catalog.Countries(), domain.Difficulty(difficulty), previous, options)
			if err != nil {
				return err
			}
			language := domain.Language(lang)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "flag: %s\n", q.Correct.FlagURL)
			for i, opt := range q.Options {
				marker := " "
				if opt.Code == q.Correct.Code {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %d. %s (%s)\n", marker, i+1, opt.Name(language), opt.Code)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", string(domain.DifficultyEasy), "easy, medium, hard, or empty for basic")
	cmd.Flags().IntVar(&options, "options", game.DefaultOptionCount, "number of options")
	cmd.Flags().StringVar(&previous, "previous", "", "country code to avoid as the answer")
	cmd.Flags().StringVar(&lang, "lang", string(domain.LangEN), "display language")
	return cmd
}
