package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListRotasCmd creates the listRotas command
func ListRotasCmd(appFn AppFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "listRotas",
		Short: "List all stored rotas",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()

			summaries, err := app.Database.ListRotas(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list rotas: %w", err)
			}

			if len(summaries) == 0 {
				fmt.Println("No rotas stored")
				return nil
			}

			for _, s := range summaries {
				fmt.Printf("%s  week of %s  %s  v%d\n",
					s.ID, s.WeekStartDate.Format("2006-01-02"), s.Status, s.Version)
			}
			return nil
		},
	}
}
