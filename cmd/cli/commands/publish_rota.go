package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/pkg/core/model"
	"github.com/emberandoak/staffrota/pkg/core/services"
)

// PublishRotaCmd creates the publishRota command
func PublishRotaCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishRota",
		Short: "Validate a draft rota and publish it when no violations remain",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")

			result, err := services.PublishRota(app.Ctx, app.Database, app.Cfg, app.Logger, rotaID)
			if errors.Is(err, model.ErrValidationFailed) {
				fmt.Println("Publish rejected:")
				printValidationResult(result)
				return err
			}
			if err != nil {
				return err
			}

			fmt.Printf("Rota %s published\n", rotaID)
			printValidationResult(result)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.MarkFlagRequired("rota")

	return cmd
}

// UnpublishRotaCmd creates the unpublishRota command
func UnpublishRotaCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpublishRota",
		Short: "Revert a published rota to draft so it can be edited",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")

			if err := services.UnpublishRota(app.Ctx, app.Database, app.Logger, rotaID); err != nil {
				return err
			}
			fmt.Printf("Rota %s reverted to draft\n", rotaID)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.MarkFlagRequired("rota")

	return cmd
}

// ArchiveRotaCmd creates the archiveRota command
func ArchiveRotaCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archiveRota",
		Short: "Move a rota into the terminal archived state",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")

			if err := services.ArchiveRota(app.Ctx, app.Database, app.Logger, rotaID); err != nil {
				return err
			}
			fmt.Printf("Rota %s archived\n", rotaID)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.MarkFlagRequired("rota")

	return cmd
}

// DeleteRotaCmd creates the deleteRota command
func DeleteRotaCmd(appFn AppFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deleteRota",
		Short: "Delete a draft rota",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFn()
			rotaID, _ := cmd.Flags().GetString("rota")

			if err := services.DeleteRota(app.Ctx, app.Database, app.Logger, rotaID); err != nil {
				return err
			}
			fmt.Printf("Rota %s deleted\n", rotaID)
			return nil
		},
	}

	cmd.Flags().String("rota", "", "Rota id")
	cmd.MarkFlagRequired("rota")

	return cmd
}
