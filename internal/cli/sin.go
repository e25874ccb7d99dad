package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "mymath/internal/errors"
	"mymath/internal/logger"
	"mymath/trigonometry"
)

func newSinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sin [--] <degrees>...",
		Short: "Print the sine of each angle",
		Long:  "Print the sine of each angle given in degrees. Put -- before negative angles.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angles, err := parseAngles(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, d := range angles {
				v := trigonometry.Sin(d)
				logger.L().Debug("sin.evaluated", "degrees", d, "sine", v)
				fmt.Fprintf(out, "%s\t%s\n", args[i], formatFloat(v))
			}
			return nil
		},
	}
}

func parseAngles(args []string) ([]float64, error) {
	angles := make([]float64, 0, len(args))
	for _, a := range args {
		d, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAngle, a)
		}
		angles = append(angles, d)
	}
	return angles, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
