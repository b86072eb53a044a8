package commands

import (
	"log/slog"
	"net"

	"github.com/kralicky/tools-lite/pkg/jsonrpc2"
	"github.com/protonav/protonav/pkg/lsp"
	"github.com/protonav/protonav/pkg/lsprpc"
	"github.com/spf13/cobra"
)

// BuildServeCmd builds the serve command, which connects back to the editor
// over a unix socket and runs the language server on it.
func BuildServeCmd() *cobra.Command {
	var pipe string
	var logLevel string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the language server",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(slog.New(lsp.NewLogHandler(cmd.ErrOrStderr())))
			if err := lsp.SetLogLevel(logLevel); err != nil {
				return err
			}

			cc, err := net.Dial("unix", pipe)
			if err != nil {
				return err
			}
			stream := jsonrpc2.NewHeaderStream(cc)
			conn := jsonrpc2.NewConn(stream)
			return lsprpc.NewStreamServer().ServeStream(cmd.Context(), conn)
		},
	}

	cmd.Flags().StringVar(&pipe, "pipe", "", "socket name to listen on")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "initial log level (debug|info|warn|error)")
	cmd.MarkFlagRequired("pipe")

	return cmd
}
