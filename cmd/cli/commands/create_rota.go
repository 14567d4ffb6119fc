package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/model"
	"github.com/emberandoak/staffrota/pkg/core/services"
)

// CreateRotaCmd creates the createRota command for building rotas by hand
// without templates
func CreateRotaCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createRota",
		Short: "Create an empty draft rota for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			week, _ := cmd.Flags().GetString("week")

			weekStart, err := model.ParseDate(week)
			if err != nil {
				return fmt.Errorf("invalid week start date: %w", err)
			}

			rota, err := services.CreateRota(app.Ctx, app.Database, app.Logger, weekStart)
			if err != nil {
				return err
			}
			fmt.Printf("Created draft rota %s for week of %s\n", rota.ID, week)
			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")

	return cmd
}

// AddShiftCmd creates the addShift command
func AddShiftCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addShift",
		Short: "Add a manually defined shift to a draft rota",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")
			dateFlag, _ := cmd.Flags().GetString("date")
			startFlag, _ := cmd.Flags().GetString("start")
			endFlag, _ := cmd.Flags().GetString("end")
			roleFlags, _ := cmd.Flags().GetStringSlice("require")

			date, err := model.ParseDate(dateFlag)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
			start, err := model.ParseClock(startFlag)
			if err != nil {
				return fmt.Errorf("invalid start time: %w", err)
			}
			end, err := model.ParseClock(endFlag)
			if err != nil {
				return fmt.Errorf("invalid end time: %w", err)
			}

			requirements, err := parseRoleRequirements(roleFlags)
			if err != nil {
				return err
			}

			shift, err := services.AddShift(app.Ctx, app.Database, app.Cfg, app.Logger,
				rotaID, date, start, end, requirements)
			if err != nil {
				return err
			}
			fmt.Printf("Added shift %s on %s %s-%s\n", shift.ID, dateFlag, startFlag, endFlag)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.Flags().String("date", "", "Shift date (YYYY-MM-DD)")
	cmd.Flags().String("start", "", "Start time (HH:MM)")
	cmd.Flags().String("end", "", "End time (HH:MM)")
	cmd.Flags().StringSlice("require", nil, "Role requirement as role:count, repeatable")
	cmd.MarkFlagRequired("rota")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	cmd.MarkFlagRequired("require")

	return cmd
}

// RemoveShiftCmd creates the removeShift command
func RemoveShiftCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "removeShift",
		Short: "Remove a shift from a draft rota",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")
			shiftID, _ := cmd.Flags().GetString("shift")

			if err := services.RemoveShift(app.Ctx, app.Database, app.Logger, rotaID, shiftID); err != nil {
				return err
			}
			fmt.Printf("Removed shift %s\n", shiftID)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.Flags().String("shift", "", "Shift id")
	cmd.MarkFlagRequired("rota")
	cmd.MarkFlagRequired("shift")

	return cmd
}

func parseRoleRequirements(pairs []string) ([]model.RoleRequirement, error) {
	requirements := make([]model.RoleRequirement, 0, len(pairs))
	for _, pair := range pairs {
		roleName, countStr, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid requirement %q, expected role:count", pair)
		}
		role := model.Role(roleName)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q", roleName)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid count %q for role %s", countStr, roleName)
		}
		requirements = append(requirements, model.RoleRequirement{Role: role, Count: count})
	}
	return requirements, nil
}
