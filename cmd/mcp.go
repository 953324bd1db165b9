package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshnutrients/agrichat/internal/advisor"
	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/db"
	mcpserver "github.com/freshnutrients/agrichat/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the product catalog and recommendation tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := catalog.NewStore(database)
		resolver := advisor.NewResolver(store, logger)

		mcpserver.Version = Version

		// Stdout carries MCP protocol messages; status goes to stderr.
		fmt.Fprintf(os.Stderr, "agrichat MCP server started on stdio (database=%s)\n", cfg.Database.Path)

		srv := mcpserver.NewServer(store, resolver, logger)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
