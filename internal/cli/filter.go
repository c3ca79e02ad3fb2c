package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarscrub/sarscrub/internal/config"
	"github.com/sarscrub/sarscrub/internal/filter"
	"github.com/sarscrub/sarscrub/internal/htmltext"
	"github.com/sarscrub/sarscrub/internal/report"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Prune attachment noise and convert HTML bodies to text",
	Long: "Filter deletes known metadata files, keeps attachments whose filename\n" +
		"contains the subject's name (moving them into the holding folder), deletes\n" +
		"other document-extension files, and then converts remaining HTML message\n" +
		"bodies into plain text. Deletions are irreversible; run against a copy if\n" +
		"the original export must be preserved.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		name := flagName
		if name == "" {
			name, err = promptName(os.Stdin, os.Stdout)
			if err != nil {
				return fmt.Errorf("reading match name: %w", err)
			}
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return fmt.Errorf("a non-empty match name is required")
		}

		rep := report.New()
		opts := filter.Options{
			Root:           cfg.Root,
			Match:          name,
			AttachmentsDir: cfg.AttachmentsDir,
			Extensions:     cfg.MatchExtensions,
			AlwaysDelete:   cfg.AlwaysDelete,
			CleanupDirs:    cfg.CleanupDirs,
		}
		if err := filter.Run(opts, rep); err != nil {
			return runtimeErr(err)
		}
		if err := htmltext.Run(cfg.Root, rep); err != nil {
			return runtimeErr(err)
		}
		return nil
	},
}

// promptName asks the operator for the identifying string used to keep
// attachments. Only this stage takes interactive input.
func promptName(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the name to keep (firstname surname): ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input given")
	}
	return scanner.Text(), nil
}

func init() {
	filterCmd.Flags().StringVar(&flagRoot, "root", "", "Export tree root (default: output.export)")
	filterCmd.Flags().StringVar(&flagName, "name", "", "Identifying name for attachments to keep (prompted when omitted)")
}
