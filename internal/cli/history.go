package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant-cli/verdant/pkg/session"
)

// newHistoryCmd creates the history command, listing recorded sessions
// newest first.
func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded study sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			recs, err := store.List()
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println(styleDim.Render("No sessions recorded yet. Start one with: verdant grow"))
				return nil
			}

			if limit > 0 && len(recs) > limit {
				recs = recs[:limit]
			}
			for _, r := range recs {
				line := fmt.Sprintf("%s  %s  %s",
					styleValue.Render(r.StartedAt.Format("2006-01-02 15:04")),
					styleLabel.Render(fmt.Sprintf("%-18s", r.Variant)),
					styleValue.Render(fmt.Sprintf("%.0f min", r.PlannedMins)),
				)
				if r.SVGPath != "" {
					line += "  " + styleDim.Render(r.SVGPath)
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n sessions (0 = all)")
	return cmd
}
