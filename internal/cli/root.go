package cli

import (
	"os"

	"github.com/spf13/cobra"

	"mymath/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "mymath",
		Short:        "Trigonometry on angles given in degrees",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(logger.Config{
				Out:   cmd.ErrOrStderr(),
				Debug: debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(newSinCmd(), newNEDCmd())
	return cmd
}
