// Package navigation turns body frame offsets into MAVLink local NED position targets.
package navigation

import (
	"fmt"

	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"
	"github.com/bluenviron/gomavlib/v3/pkg/message"

	"mymath/internal/attitude"
	apperrors "mymath/internal/errors"
	"mymath/trigonometry"
)

// Offset is a displacement relative to the vehicle's heading.
type Offset struct {
	Forward float32
	Right   float32
	Down    float32
}

// Target addresses the vehicle component that receives position targets.
type Target struct {
	System    uint8
	Component uint8
}

func DefaultTarget() Target {
	return Target{System: 1, Component: 1}
}

// PositionTarget rotates off by yawDegrees (clockwise from north) into the local NED frame.
func (t Target) PositionTarget(off Offset, yawDegrees float64) *common.MessageSetPositionTargetLocalNed {
	sin := trigonometry.Sin(yawDegrees)
	cos := trigonometry.Sin(yawDegrees + 90)
	forward, right := float64(off.Forward), float64(off.Right)

	return &common.MessageSetPositionTargetLocalNed{
		TargetSystem:    t.System,
		TargetComponent: t.Component,
		CoordinateFrame: common.MAV_FRAME_LOCAL_NED,
		X:               float32(forward*cos - right*sin),
		Y:               float32(forward*sin + right*cos),
		Z:               off.Down,
	}
}

// FromAttitude reads the heading from an ATTITUDE or ATTITUDE_QUATERNION message
// and returns the position target for off.
func (t Target) FromAttitude(msg message.Message, off Offset) (*common.MessageSetPositionTargetLocalNed, error) {
	yaw, err := Heading(msg)
	if err != nil {
		return nil, err
	}

	return t.PositionTarget(off, yaw), nil
}

// Heading returns the yaw in degrees carried by an attitude message.
func Heading(msg message.Message) (float64, error) {
	switch m := msg.(type) {
	case *common.MessageAttitude:
		return attitude.FromRadians(m.Roll, m.Pitch, m.Yaw).Yaw, nil
	case *common.MessageAttitudeQuaternion:
		q := attitude.Quaternion{
			W: float64(m.Q1),
			X: float64(m.Q2),
			Y: float64(m.Q3),
			Z: float64(m.Q4),
		}
		return q.Euler().Yaw, nil
	default:
		return 0, fmt.Errorf("%w: %T", apperrors.ErrUnsupportedMessage, msg)
	}
}
