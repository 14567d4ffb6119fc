package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/postgres"
)

// AppContext holds the application dependencies shared by all commands
type AppContext struct {
	Cfg      *config.Config
	Logger   *zap.Logger
	Database *postgres.DB
	Ctx      context.Context
}

// AppFunc resolves the app context after the root command's setup has run
type AppFunc func() *AppContext
