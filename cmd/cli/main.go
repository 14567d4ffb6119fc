package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberandoak/staffrota/cmd/cli/commands"
	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/postgres"
	"github.com/emberandoak/staffrota/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "staffrota",
		Short: "Staff rota CLI - generate and manage weekly rotas",
		Long:  `A CLI tool for generating weekly staff rotas, validating assignments against hard constraints, and managing the rota lifecycle.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.MigrateCmd(appRef))
	rootCmd.AddCommand(commands.GenerateRotaCmd(appRef))
	rootCmd.AddCommand(commands.CreateRotaCmd(appRef))
	rootCmd.AddCommand(commands.AddShiftCmd(appRef))
	rootCmd.AddCommand(commands.RemoveShiftCmd(appRef))
	rootCmd.AddCommand(commands.ValidateRotaCmd(appRef))
	rootCmd.AddCommand(commands.PublishRotaCmd(appRef))
	rootCmd.AddCommand(commands.UnpublishRotaCmd(appRef))
	rootCmd.AddCommand(commands.ArchiveRotaCmd(appRef))
	rootCmd.AddCommand(commands.DeleteRotaCmd(appRef))
	rootCmd.AddCommand(commands.AssignStaffCmd(appRef))
	rootCmd.AddCommand(commands.RemoveStaffCmd(appRef))
	rootCmd.AddCommand(commands.BulkAssignCmd(appRef))
	rootCmd.AddCommand(commands.StaffHoursCmd(appRef))
	rootCmd.AddCommand(commands.RecommendStaffCmd(appRef))
	rootCmd.AddCommand(commands.ListRotasCmd(appRef))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// appRef lets commands resolve the app after PersistentPreRunE has built it
func appRef() *commands.AppContext {
	return app
}

func initApp(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app = &commands.AppContext{
		Cfg:      cfg,
		Logger:   logger,
		Database: database,
		Ctx:      ctx,
	}
	return nil
}
