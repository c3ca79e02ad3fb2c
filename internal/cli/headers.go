package cli

import (
	"github.com/sarscrub/sarscrub/internal/config"
	"github.com/sarscrub/sarscrub/internal/redact"
	"github.com/sarscrub/sarscrub/internal/report"
	"github.com/spf13/cobra"
)

var headersCmd = &cobra.Command{
	Use:   "redact-headers",
	Short: "Blank header fields and email addresses in extracted text",
	Long: "Redact-headers scans every .txt file under the export tree, blanking the\n" +
		"values of recognized header fields (including folded continuation lines)\n" +
		"and any bare email address elsewhere in the text. Files are rewritten\n" +
		"atomically and only when something changed, so reruns are safe.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		h := redact.NewHeaderRedactor(cfg.Placeholder, cfg.HeaderFields)
		if err := h.Run(cfg.Root, report.New()); err != nil {
			return runtimeErr(err)
		}
		return nil
	},
}

func init() {
	headersCmd.Flags().StringVar(&flagRoot, "root", "", "Export tree root (default: output.export)")
	headersCmd.Flags().StringVar(&flagPlaceholder, "placeholder", "", "Replacement token for redacted content")
}
