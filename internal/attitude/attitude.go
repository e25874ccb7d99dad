// Package attitude converts between Euler angles in degrees and unit quaternions.
package attitude

import (
	"math"

	"mymath/internal/common"
	"mymath/trigonometry"
)

// Euler holds roll, pitch and yaw in degrees.
type Euler struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

type Quaternion struct {
	W, X, Y, Z float64
}

// FromRadians builds an Euler value from attitude fields reported in radians.
func FromRadians(roll, pitch, yaw float32) Euler {
	return Euler{
		Roll:  common.RadiansToDegrees(float64(roll)),
		Pitch: common.RadiansToDegrees(float64(pitch)),
		Yaw:   common.RadiansToDegrees(float64(yaw)),
	}
}

// FromEulerDegrees returns the quaternion for a yaw-pitch-roll (ZYX) rotation.
func FromEulerDegrees(e Euler) Quaternion {
	// Half angles
	cy := cos(e.Yaw * 0.5)
	sy := trigonometry.Sin(e.Yaw * 0.5)
	cr := cos(e.Roll * 0.5)
	sr := trigonometry.Sin(e.Roll * 0.5)
	cp := cos(e.Pitch * 0.5)
	sp := trigonometry.Sin(e.Pitch * 0.5)

	return Quaternion{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// Euler returns the rotation as roll, pitch and yaw in degrees.
func (q Quaternion) Euler() Euler {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll := math.Atan2(sinrCosp, cosrCosp)

	var pitch float64
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw := math.Atan2(sinyCosp, cosyCosp)

	return Euler{
		Roll:  common.RadiansToDegrees(roll),
		Pitch: common.RadiansToDegrees(pitch),
		Yaw:   common.RadiansToDegrees(yaw),
	}
}

func cos(degrees float64) float64 {
	return math.Cos(common.DegreesToRadians(degrees))
}
