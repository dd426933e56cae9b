package main

import (
	"github.com/dhamidi/nanocalc/langserver"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			return langserver.New(version).RunStdio()
		},
	}

	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 1, "log verbosity")

	return cmd
}
