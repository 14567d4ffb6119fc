package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/model"
	"github.com/emberandoak/staffrota/pkg/core/services"
)

// RecommendStaffCmd creates the recommendStaff command
func RecommendStaffCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommendStaff",
		Short: "Rank the best available staff for a shift's role slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")
			shiftID, _ := cmd.Flags().GetString("shift")
			roleFlag, _ := cmd.Flags().GetString("role")

			role := model.Role(roleFlag)
			if !role.IsValid() {
				return fmt.Errorf("unknown role %q", roleFlag)
			}

			recs, err := services.GetStaffRecommendations(app.Ctx, app.Database, app.Cfg, app.Logger, rotaID, shiftID, role)
			if err != nil {
				return err
			}

			if len(recs) == 0 {
				fmt.Println("No eligible staff for this slot")
				return nil
			}

			for i, rec := range recs {
				fmt.Printf("%d. %s  %.1f/%.1f (%.1f%%)  %s  strengths: %s\n",
					i+1, rec.StaffID, rec.TotalScore, rec.MaxPossible, rec.Percentage,
					rec.Tier, strings.Join(rec.TopStrengths, ", "))
			}
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.Flags().String("shift", "", "Shift id")
	cmd.Flags().String("role", "", "Role slot to fill")
	cmd.MarkFlagRequired("rota")
	cmd.MarkFlagRequired("shift")
	cmd.MarkFlagRequired("role")

	return cmd
}
