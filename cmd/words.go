package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/romatype/internal/romaji"
	"github.com/abhisek/romatype/internal/vocab"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the vocabulary (optionally one tier) and validate it",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if rules, _ := cmd.Flags().GetBool("rules"); rules {
			printRules(out)
			return nil
		}

		tiers := vocab.AllDifficulties()
		if name, _ := cmd.Flags().GetString("difficulty"); name != "" {
			d, err := vocab.ParseDifficulty(name)
			if err != nil {
				return err
			}
			tiers = []vocab.Difficulty{d}
		}

		for _, d := range tiers {
			printTier(out, d)
		}

		if err := vocab.Validate(); err != nil {
			return err
		}
		total := lo.SumBy(tiers, func(d vocab.Difficulty) int { return len(vocab.Words(d)) })
		fmt.Fprintf(out, "%d words, tables valid\n", total)
		return nil
	},
}

func printTier(out io.Writer, d vocab.Difficulty) {
	t := vocab.DefaultTiming(d)
	fmt.Fprintf(out, "%s  (%gs / word, %ds session)  %s\n",
		d.DisplayName(), t.PerWord.Seconds(), t.SessionSeconds(), vocab.Blurb(d))
	fmt.Fprintf(out, "  %-12s  %-16s  %s\n", "Display", "Romaji", "Canonical")
	fmt.Fprintln(out, "  "+strings.Repeat("─", 44))

	for _, w := range vocab.Words(d) {
		canon := romaji.Normalize(w.Input)
		if canon == w.Input {
			canon = ""
		}
		fmt.Fprintf(out, "  %s  %-16s  %s\n", padDisplay(w.Display, 12), w.Input, canon)
	}
	fmt.Fprintln(out)
}

// padDisplay pads Japanese text assuming two columns per character.
func padDisplay(s string, width int) string {
	cols := lo.SumBy([]rune(s), func(r rune) int {
		if r < 0x1100 {
			return 1
		}
		return 2
	})
	if cols >= width {
		return s
	}
	return s + strings.Repeat(" ", width-cols)
}

func printRules(out io.Writer) {
	fmt.Fprintf(out, "%-6s  %s\n", "From", "To")
	fmt.Fprintln(out, strings.Repeat("─", 14))
	for _, r := range romaji.Rules() {
		fmt.Fprintf(out, "%-6s  %s\n", r.From, r.To)
	}
}

func init() {
	wordsCmd.Flags().StringP("difficulty", "d", "", "Only list this tier (easy, normal, hard)")
	wordsCmd.Flags().Bool("rules", false, "Print the spelling-equivalence rules instead")
}
