package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/pkg/app"
	"github.com/h809829-coder/agrosmart/pkg/mcptools"
)

func newMCPCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve recommendation tools to MCP clients over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := bootstrap(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer database.Close(db)

			core, _, err := app.NewCore(cmd.Context(), db)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcptools.New(version, core.Recommend, core.Crops))
		},
	}
}
