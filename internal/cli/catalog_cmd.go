package cli

import (
	"fmt"

	"stillness/internal/cli/formatter"

	"github.com/spf13/cobra"
)

func newPatternsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List available breathing patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range app.Catalog.Patterns {
				phases := fmt.Sprintf("%d-%d", p.Inhale, p.Exhale)
				if p.Hold > 0 || p.HoldAfter > 0 {
					phases = fmt.Sprintf("%d-%d-%d", p.Inhale, p.Hold, p.Exhale)
					if p.HoldAfter > 0 {
						phases += fmt.Sprintf("-%d", p.HoldAfter)
					}
				}
				fmt.Printf("%s %-12s %s  %s\n",
					p.Icon,
					formatter.Bold(p.ID),
					formatter.StyleBlue.Render(phases),
					formatter.Dim(p.Description),
				)
			}
			return nil
		},
	}
}

func newSoundsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sounds",
		Short: "List available ambient sounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range app.Catalog.Sounds {
				fmt.Printf("%s %-10s %s\n",
					s.Icon,
					formatter.Bold(s.ID),
					formatter.Dim(s.Description),
				)
			}
			return nil
		},
	}
}
