package main

import (
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/webchat-preview/internal/config"
)

var (
	serveDir    string
	serveConfig config.Config
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve the patcher as MCP tools over stdio",
		Long: `serve runs a Model Context Protocol server on stdio exposing the
patch and steps tools. The optional directory is the default testing
app checkout for patch calls.`,
		Example: `webchat-preview serve ./testing-app`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		serveDir = args[0]
	} else {
		var err error
		serveDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	serveConfig = cfg

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "webchat-preview",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
