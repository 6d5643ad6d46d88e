package main

import (
	"context"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"prolom/internal/logging"
	mcpserver "prolom/internal/mcp"
	"prolom/internal/store"
)

var serveFlags struct {
	db string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the cipher tools
(list_corpora, encrypt_text, score_text, solve_cipher) to MCP clients.

The server watches for parent process death and self-terminates when its
client disappears, so disconnects do not leave zombie processes behind.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.db, "db", "", "Store DB path for saved runs (default $PROLOM_DB or "+store.DefaultDBPath+")")
}

func runServe(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(dbPath(serveFlags.db))
	if err != nil {
		return err
	}
	defer st.Close()

	srv := mcpserver.NewServer(st)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting prolom MCP server over stdio")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
