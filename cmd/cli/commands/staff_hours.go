package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/services"
)

// StaffHoursCmd creates the staffHours command
func StaffHoursCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staffHours",
		Short: "Show per-staff weekly hours and labor cost for a rota",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")

			totals, err := services.StaffHours(app.Ctx, app.Database, app.Logger, rotaID)
			if err != nil {
				return err
			}

			staffIDs := make([]string, 0, len(totals))
			for id := range totals {
				staffIDs = append(staffIDs, id)
			}
			sort.Strings(staffIDs)

			var totalHours, totalCost float64
			for _, id := range staffIDs {
				t := totals[id]
				fmt.Printf("%-20s %6.2fh  £%.2f\n", id, t.Hours, t.Cost)
				totalHours += t.Hours
				totalCost += t.Cost
			}
			fmt.Printf("%-20s %6.2fh  £%.2f\n", "total", totalHours, totalCost)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.MarkFlagRequired("rota")

	return cmd
}
