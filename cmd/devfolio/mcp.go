package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio/internal/cli"
	"github.com/aretw0/devfolio/pkg/adapters/mcp"
	"github.com/aretw0/devfolio/pkg/portfolio"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes portfolio validation as MCP tools.
With --store, portfolios can also be stored and read back through the configured store.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, v, err := setup(cmd, "mcp")
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		addr, _ := cmd.Flags().GetString("addr")
		withStore, _ := cmd.Flags().GetBool("store")

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		opts := []mcp.Option{mcp.WithLogger(logger)}
		if withStore {
			b, err := cli.OpenBackend(sigCtx, cfg.Store, logger)
			if err != nil {
				return err
			}
			defer b.Close()

			mgrOpts := []portfolio.Option{
				portfolio.WithValidator(v),
				portfolio.WithLogger(logger),
				portfolio.WithSource("mcp"),
			}
			if b.Locker != nil {
				mgrOpts = append(mgrOpts, portfolio.WithLocker(b.Locker))
			}
			opts = append(opts, mcp.WithManager(portfolio.NewManager(b.Store, mgrOpts...)))
		}

		srv := mcp.NewServer(v, opts...)

		switch transport {
		case "stdio":
			logger.Info("Starting DevFolio MCP Server (Stdio)")
			return srv.ServeStdio()
		case "sse":
			return srv.ServeSSE(sigCtx, addr)
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().String("addr", ":8081", "Address to listen on (only for SSE)")
	mcpCmd.Flags().Bool("store", false, "Enable the storage tools backed by the configured store")
}
