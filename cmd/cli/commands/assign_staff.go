package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/services"
)

// AssignStaffCmd creates the assignStaff command
func AssignStaffCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignStaff",
		Short: "Assign a staff member to a shift, checked against the hard constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")
			shiftID, _ := cmd.Flags().GetString("shift")
			staffID, _ := cmd.Flags().GetString("staff")

			if err := services.AssignStaffToShift(app.Ctx, app.Database, app.Cfg, app.Logger, rotaID, shiftID, staffID); err != nil {
				return err
			}
			fmt.Printf("Assigned %s to shift %s\n", staffID, shiftID)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.Flags().String("shift", "", "Shift id")
	cmd.Flags().String("staff", "", "Staff id")
	cmd.MarkFlagRequired("rota")
	cmd.MarkFlagRequired("shift")
	cmd.MarkFlagRequired("staff")

	return cmd
}

// RemoveStaffCmd creates the removeStaff command
func RemoveStaffCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "removeStaff",
		Short: "Remove a staff member's assignment from a shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")
			shiftID, _ := cmd.Flags().GetString("shift")
			staffID, _ := cmd.Flags().GetString("staff")

			if err := services.RemoveStaffFromShift(app.Ctx, app.Database, app.Logger, rotaID, shiftID, staffID); err != nil {
				return err
			}
			fmt.Printf("Removed %s from shift %s\n", staffID, shiftID)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.Flags().String("shift", "", "Shift id")
	cmd.Flags().String("staff", "", "Staff id")
	cmd.MarkFlagRequired("rota")
	cmd.MarkFlagRequired("shift")
	cmd.MarkFlagRequired("staff")

	return cmd
}
