package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/services"
)

// ValidateRotaCmd creates the validateRota command
func ValidateRotaCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validateRota",
		Short: "Re-check every assignment in a rota against the hard constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")

			result, err := services.ValidateRota(app.Ctx, app.Database, app.Cfg, app.Logger, rotaID)
			if err != nil {
				return err
			}

			printValidationResult(result)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.MarkFlagRequired("rota")

	return cmd
}

func printValidationResult(result engine.ValidationResult) {
	if result.Valid() {
		fmt.Println("No violations")
	} else {
		fmt.Printf("Violations (%d):\n", len(result.Violations))
		for _, v := range result.Violations {
			fmt.Printf("  [%s] shift=%s staff=%s %s\n", v.RuleID, v.ShiftID, v.StaffID, v.Message)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  [%s] %s\n", w.RuleID, w.Message)
		}
	}
}
