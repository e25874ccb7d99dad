package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mymath/internal/logger"
	"mymath/internal/navigation"
)

func newNEDCmd() *cobra.Command {
	var (
		off    navigation.Offset
		yaw    float64
		target = navigation.DefaultTarget()
	)

	cmd := &cobra.Command{
		Use:   "ned",
		Short: "Rotate a body frame offset into a local NED position target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg := target.PositionTarget(off, yaw)
			logger.L().Debug("ned.target",
				"yaw", yaw,
				"system", msg.TargetSystem,
				"component", msg.TargetComponent,
			)

			fmt.Fprintf(cmd.OutOrStdout(), "north=%s east=%s down=%s\n",
				formatFloat(float64(msg.X)),
				formatFloat(float64(msg.Y)),
				formatFloat(float64(msg.Z)),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float32Var(&off.Forward, "forward", 0, "metres ahead of the vehicle")
	f.Float32Var(&off.Right, "right", 0, "metres to the right of the vehicle")
	f.Float32Var(&off.Down, "down", 0, "metres below the origin (negative is up)")
	f.Float64Var(&yaw, "yaw", 0, "heading in degrees, clockwise from north")
	f.Uint8Var(&target.System, "system", target.System, "target system id")
	f.Uint8Var(&target.Component, "component", target.Component, "target component id")
	return cmd
}
