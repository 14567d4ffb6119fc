package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/model"
	"github.com/emberandoak/staffrota/pkg/core/services"
)

// GenerateRotaCmd creates the generateRota command
func GenerateRotaCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRota",
		Short: "Generate a draft rota for a week from the active shift templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()

			week, _ := cmd.Flags().GetString("week")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			noAssign, _ := cmd.Flags().GetBool("no-auto-assign")
			templateIDs, _ := cmd.Flags().GetStringSlice("templates")
			dayNames, _ := cmd.Flags().GetStringSlice("days")

			weekStart, err := model.ParseDate(week)
			if err != nil {
				return err
			}

			days, err := parseWeekdays(dayNames)
			if err != nil {
				return err
			}

			opts := engine.GenerationOptions{
				WeekStartDate:   weekStart,
				UseTemplates:    true,
				AutoAssignStaff: !noAssign,
				TemplateIDs:     templateIDs,
				Days:            days,
			}

			result, err := services.GenerateRota(app.Ctx, app.Database, app.Cfg, app.Logger, opts, dryRun)
			if err != nil {
				return err
			}

			printGenerationResult(result, dryRun)
			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")
	cmd.Flags().Bool("dry-run", false, "Run without saving the rota")
	cmd.Flags().Bool("no-auto-assign", false, "Expand templates without assigning staff")
	cmd.Flags().StringSlice("templates", nil, "Restrict generation to these template ids")
	cmd.Flags().StringSlice("days", nil, "Restrict generation to these weekdays (e.g. Monday,Friday)")

	return cmd
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	lookup := map[string]time.Weekday{
		"Sunday": time.Sunday, "Monday": time.Monday, "Tuesday": time.Tuesday,
		"Wednesday": time.Wednesday, "Thursday": time.Thursday,
		"Friday": time.Friday, "Saturday": time.Saturday,
	}
	var days []time.Weekday
	for _, name := range names {
		day, ok := lookup[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, day)
	}
	return days, nil
}

func printGenerationResult(result *engine.GenerationResult, dryRun bool) {
	fmt.Printf("Rota %s (week of %s)\n", result.Rota.ID, model.FormatDate(result.Rota.WeekStartDate))
	fmt.Printf("  Shifts: %d  Slots filled: %d/%d  Candidates considered: %d  Elapsed: %s\n",
		len(result.Rota.Shifts),
		result.Summary.SlotsFilled, result.Summary.SlotsRequested,
		result.Summary.CandidatesConsidered, result.Summary.Elapsed)

	for _, shift := range result.Rota.Shifts {
		fmt.Printf("  %s %s-%s\n", model.FormatDate(shift.Date), shift.StartTime, shift.EndTime)
		for _, slot := range shift.RoleSlots {
			fmt.Printf("    %-15s %d/%d %v\n", slot.Role, len(slot.AssignedStaffIDs), slot.RequiredCount, slot.AssignedStaffIDs)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  [%s] %s\n", w.RuleID, w.Message)
		}
	}

	if dryRun {
		fmt.Println("Dry run - rota was not saved")
	}
}
