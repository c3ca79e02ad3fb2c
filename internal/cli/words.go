package cli

import (
	"fmt"
	"os"

	"github.com/sarscrub/sarscrub/internal/config"
	"github.com/sarscrub/sarscrub/internal/redact"
	"github.com/sarscrub/sarscrub/internal/report"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "redact-words",
	Short: "Blank listed words and phrases in extracted text",
	Long: "Redact-words loads the operator's term list (one word or phrase per line)\n" +
		"and blanks every whole-word, case-insensitive match in the .txt files under\n" +
		"the export tree, reporting which terms fired per file. Update the list and\n" +
		"rerun until the output is clean; reruns only ever add redactions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		terms, err := redact.LoadTerms(cfg.TermsFile)
		if err != nil {
			return runtimeErr(err)
		}
		if len(terms) == 0 {
			fmt.Fprintf(os.Stdout, "No words loaded from %s - nothing to redact.\n", cfg.TermsFile)
			return nil
		}

		rep := report.New()
		w, dropped := redact.NewWordRedactor(cfg.Placeholder, terms)
		for _, term := range dropped {
			rep.Warnf("Skipping term %q: it overlaps the placeholder token", term)
		}
		if w == nil {
			fmt.Fprintln(os.Stdout, "No usable words loaded - nothing to redact.")
			return nil
		}

		if err := w.Run(cfg.Root, rep); err != nil {
			return runtimeErr(err)
		}
		return nil
	},
}

func init() {
	wordsCmd.Flags().StringVar(&flagRoot, "root", "", "Export tree root (default: output.export)")
	wordsCmd.Flags().StringVar(&flagList, "list", "", "Term list file (default: redact_words.txt)")
	wordsCmd.Flags().StringVar(&flagPlaceholder, "placeholder", "", "Replacement token for redacted content")
}
