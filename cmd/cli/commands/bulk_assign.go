package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/services"
)

// BulkAssignCmd creates the bulkAssign command. Assignments are given as
// repeated shiftID:staffID pairs and applied independently.
func BulkAssignCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulkAssign",
		Short: "Assign several staff members to shifts in one call",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")
			pairs, _ := cmd.Flags().GetStringSlice("assign")

			assignments := make([]services.BulkAssignment, 0, len(pairs))
			for _, pair := range pairs {
				shiftID, staffID, ok := strings.Cut(pair, ":")
				if !ok || shiftID == "" || staffID == "" {
					return fmt.Errorf("invalid assignment %q, expected shiftID:staffID", pair)
				}
				assignments = append(assignments, services.BulkAssignment{
					ShiftID: shiftID,
					StaffID: staffID,
				})
			}

			results := services.BulkAssignStaff(app.Ctx, app.Database, app.Cfg, app.Logger, rotaID, assignments)

			succeeded := 0
			for _, r := range results {
				if r.OK {
					succeeded++
					fmt.Printf("ok    %s -> %s\n", r.StaffID, r.ShiftID)
				} else {
					fmt.Printf("fail  %s -> %s: %v\n", r.StaffID, r.ShiftID, r.Err)
				}
			}
			fmt.Printf("%d/%d assignments applied\n", succeeded, len(results))
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.Flags().StringSlice("assign", nil, "Assignment as shiftID:staffID, repeatable")
	cmd.MarkFlagRequired("rota")
	cmd.MarkFlagRequired("assign")

	return cmd
}
